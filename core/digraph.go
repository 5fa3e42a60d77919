package core

import "slices"

// Digraph is a simple directed graph over dense vertex ids, stored as one
// hash set of out-neighbors per vertex. Re-inserting an existing edge is
// a no-op with respect to the edge count and in-degrees.
type Digraph[V VertexID] struct {
	out      []map[V]struct{} // out[u] = set of vertices u points to
	inDegree []int            // inDegree[v] maintained on every new edge
	edges    int              // number of distinct directed edges
}

// NewDigraph creates a directed graph with n isolated vertices.
// Panics if n is not representable by V.
func NewDigraph[V VertexID](n int) *Digraph[V] {
	g := &Digraph[V]{}
	g.AddVertices(n)

	return g
}

// DigraphFromEdges builds a directed graph from (from, to) pairs, growing
// the vertex set to fit the largest referenced id. Duplicate pairs are
// recorded once.
func DigraphFromEdges[V VertexID](edges [][2]V) *Digraph[V] {
	g := NewDigraph[V](0)
	for _, e := range edges {
		g.growFor(e[0], e[1])
		g.AddEdge(e[0], e[1])
	}

	return g
}

// growFor extends the vertex set so that both u and v are valid ids.
func (g *Digraph[V]) growFor(u, v V) {
	m := max(uint64(u), uint64(v))
	if need := int(m) + 1; need > len(g.out) {
		g.AddVertices(need - len(g.out))
	}
}

// AddVertex appends one isolated vertex.
// Panics if the new count is not representable by V.
func (g *Digraph[V]) AddVertex() {
	g.AddVertices(1)
}

// AddVertices appends n isolated vertices.
// Panics if the new count is not representable by V.
func (g *Digraph[V]) AddVertices(n int) {
	newSize := len(g.out) + n
	checkGrowth[V](newSize)
	for i := 0; i < n; i++ {
		g.out = append(g.out, make(map[V]struct{}))
	}
	g.inDegree = append(g.inDegree, make([]int, n)...)
}

// AddEdge inserts the directed edge from→to. The edge count and
// inDegree(to) grow only if the edge was not already present.
// Panics if either endpoint is out of range.
func (g *Digraph[V]) AddEdge(from, to V) {
	checkEndpoint(from, len(g.out))
	checkEndpoint(to, len(g.out))
	if _, ok := g.out[from][to]; ok {
		return
	}
	g.out[from][to] = struct{}{}
	g.inDegree[to]++
	g.edges++
}

// Reverse returns a new graph with every edge's direction flipped.
func (g *Digraph[V]) Reverse() *Digraph[V] {
	rev := NewDigraph[V](len(g.out))
	for u := range g.out {
		for v := range g.out[u] {
			rev.AddEdge(v, V(u))
		}
	}

	return rev
}

// VertexCount reports the number of vertices. O(1).
func (g *Digraph[V]) VertexCount() int { return len(g.out) }

// EdgeCount reports the number of distinct directed edges. O(1).
func (g *Digraph[V]) EdgeCount() int { return g.edges }

// Neighbors returns the out-neighbors of v in ascending order.
// Panics if v is out of range.
func (g *Digraph[V]) Neighbors(v V) []V {
	checkEndpoint(v, len(g.out))
	nbrs := make([]V, 0, len(g.out[v]))
	for u := range g.out[v] {
		nbrs = append(nbrs, u)
	}
	slices.Sort(nbrs)

	return nbrs
}

// InEdges returns the vertices pointing to v, in ascending order. O(V+E).
func (g *Digraph[V]) InEdges(v V) []V {
	checkEndpoint(v, len(g.out))
	var sources []V
	for u := range g.out {
		if _, ok := g.out[u][v]; ok {
			sources = append(sources, V(u))
		}
	}

	return sources
}

// OutDegree reports the number of vertices v points to. O(1).
func (g *Digraph[V]) OutDegree(v V) int {
	checkEndpoint(v, len(g.out))

	return len(g.out[v])
}

// InDegree reports the number of vertices pointing to v, maintained
// incrementally by AddEdge. O(1).
func (g *Digraph[V]) InDegree(v V) int {
	checkEndpoint(v, len(g.out))

	return g.inDegree[v]
}

// AverageDegree reports the integer part of edges per vertex.
// Panics on a graph with no vertices.
func (g *Digraph[V]) AverageDegree() int {
	if len(g.out) == 0 {
		panic("core: average degree of a graph with no vertices")
	}

	return g.edges / len(g.out)
}

// SelfLoopCount reports the number of vertices pointing to themselves.
func (g *Digraph[V]) SelfLoopCount() int {
	count := 0
	for u := range g.out {
		if _, ok := g.out[u][V(u)]; ok {
			count++
		}
	}

	return count
}
