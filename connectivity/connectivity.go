package connectivity

import (
	"github.com/katalvlaran/algods/core"
	"github.com/katalvlaran/algods/dfs"
)

// ConnectedComponents labels the weakly connected components of an
// undirected graph. The zero Count before Find distinguishes "not run"
// from "one component".
type ConnectedComponents[V core.VertexID] struct {
	labels []V
	marked []bool
	count  int
}

// NewConnectedComponents prepares an empty structure for a graph of n
// vertices. Call Find before querying.
func NewConnectedComponents[V core.VertexID](n int) *ConnectedComponents[V] {
	return &ConnectedComponents[V]{
		labels: make([]V, n),
		marked: make([]bool, n),
	}
}

// Find sweeps g in ascending vertex order, labeling each component with
// its smallest vertex id. g must have exactly the vertex count the
// structure was sized for.
func (c *ConnectedComponents[V]) Find(g *core.Graph[V]) {
	n := g.VertexCount()
	for v := 0; v < n; v++ {
		if !c.marked[v] {
			dfs.Component[V](g, c.marked, c.labels, V(v), V(v))
			c.count++
		}
	}
}

// Connected reports whether v and w share a component. The second
// result is false until both vertices have been reached by Find.
func (c *ConnectedComponents[V]) Connected(v, w V) (bool, bool) {
	if !c.marked[v] || !c.marked[w] {
		return false, false
	}

	return c.labels[v] == c.labels[w], true
}

// Label returns the component label of v; the second result is false
// until v has been reached by Find.
func (c *ConnectedComponents[V]) Label(v V) (V, bool) {
	if !c.marked[v] {
		var zero V

		return zero, false
	}

	return c.labels[v], true
}

// Count reports the number of components found so far.
func (c *ConnectedComponents[V]) Count() int { return c.count }

// StrongComponents labels the strongly connected components of a
// directed graph using Kosaraju's two passes.
type StrongComponents[V core.VertexID] struct {
	labels []V
	marked []bool
	count  int
}

// NewStrongComponents prepares an empty structure for a graph of n
// vertices. Call Find before querying.
func NewStrongComponents[V core.VertexID](n int) *StrongComponents[V] {
	return &StrongComponents[V]{
		labels: make([]V, n),
		marked: make([]bool, n),
	}
}

// Find labels the strong components of g. Pass one sorts the reversed
// graph by depth-first finish time; pass two seeds component sweeps on g
// in reverse finish order, so each sweep stays inside one component.
func (s *StrongComponents[V]) Find(g *core.Digraph[V]) {
	topo := dfs.NewTopologicalSort[V](g.VertexCount())
	topo.DepthFirstOrder(g.Reverse())

	for seed := range topo.Order() {
		if !s.marked[seed] {
			dfs.Component(g, s.marked, s.labels, seed, seed)
			s.count++
		}
	}
}

// Connected reports whether v and w are mutually reachable. The second
// result is false until both vertices have been reached by Find.
func (s *StrongComponents[V]) Connected(v, w V) (bool, bool) {
	if !s.marked[v] || !s.marked[w] {
		return false, false
	}

	return s.labels[v] == s.labels[w], true
}

// Label returns the strong-component label of v; the second result is
// false until v has been reached by Find.
func (s *StrongComponents[V]) Label(v V) (V, bool) {
	if !s.marked[v] {
		var zero V

		return zero, false
	}

	return s.labels[v], true
}

// Count reports the number of strong components found so far.
func (s *StrongComponents[V]) Count() int { return s.count }
