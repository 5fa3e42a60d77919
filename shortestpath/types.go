package shortestpath

import (
	"github.com/katalvlaran/algods/core"
)

// Algorithm selects the relaxation strategy FindPaths runs.
type Algorithm int

const (
	// Dijkstra is heap-based label setting, the default strategy.
	Dijkstra Algorithm = iota
	// DAGRelax relaxes once per vertex in topological order and is only
	// meaningful on acyclic graphs.
	DAGRelax
	// BellmanFord sweeps all edges up to V-1 times with early exit.
	BellmanFord
	// SPFA is Bellman-Ford driven by a queue of improved vertices with
	// the small-label-first heuristic.
	SPFA
)

// String returns the conventional name of the strategy.
func (a Algorithm) String() string {
	switch a {
	case Dijkstra:
		return "dijkstra"
	case DAGRelax:
		return "dag-relax"
	case BellmanFord:
		return "bellman-ford"
	case SPFA:
		return "spfa"
	default:
		return "unknown"
	}
}

// ShortestPaths holds the distance and predecessor tables of one
// single-source computation. Distances start at the weight type's
// sentinel meaning unreachable, predecessors at the vertex type's
// sentinel meaning none.
type ShortestPaths[V core.VertexID, W core.Weight] struct {
	source V
	algo   Algorithm
	distTo []W
	edgeTo []V
}

// New prepares empty tables for a graph of n vertices rooted at source,
// to be filled by FindPaths with the given strategy. Panics if source is
// not a valid position in [0, n).
func New[V core.VertexID, W core.Weight](source V, n int, algo Algorithm) *ShortestPaths[V, W] {
	if uint64(source) >= uint64(n) {
		panic("shortestpath: source out of range")
	}
	s := &ShortestPaths[V, W]{
		source: source,
		algo:   algo,
		distTo: make([]W, n),
		edgeTo: make([]V, n),
	}
	for v := range s.distTo {
		s.distTo[v] = core.MaxWeight[W]()
		s.edgeTo[v] = core.MaxVertexID[V]()
	}
	s.distTo[source] = 0

	return s
}

// Source returns the root of the shortest-path tree.
func (s *ShortestPaths[V, W]) Source() V { return s.source }

// Strategy returns the algorithm FindPaths runs.
func (s *ShortestPaths[V, W]) Strategy() Algorithm { return s.algo }

// FindPaths fills the tables by running the selected strategy over g.
// g must have exactly the vertex count the tables were sized for.
func (s *ShortestPaths[V, W]) FindPaths(g *core.WeightedDigraph[V, W]) {
	switch s.algo {
	case DAGRelax:
		s.dagRelax(g)
	case BellmanFord:
		s.bellmanFord(g)
	case SPFA:
		s.spfa(g)
	default:
		s.dijkstra(g)
	}
}

// DistTo returns the shortest-path distance from the source to v; the
// second result is false when v is unreachable.
func (s *ShortestPaths[V, W]) DistTo(v V) (W, bool) {
	if s.distTo[v] == core.MaxWeight[W]() {
		var zero W

		return zero, false
	}

	return s.distTo[v], true
}

// EdgeTo returns the predecessor of v on its shortest path; the second
// result is false when v has none, which covers both the source itself
// and unreachable vertices.
func (s *ShortestPaths[V, W]) EdgeTo(v V) (V, bool) {
	if s.edgeTo[v] == core.MaxVertexID[V]() {
		var zero V

		return zero, false
	}

	return s.edgeTo[v], true
}

// PathTo returns the shortest path from target back to the source,
// target first source last. The second result is false when target is
// unreachable.
func (s *ShortestPaths[V, W]) PathTo(target V) ([]V, bool) {
	if s.distTo[target] == core.MaxWeight[W]() {
		return nil, false
	}
	path := []V{target}
	for v := target; v != s.source; {
		v = s.edgeTo[v]
		path = append(path, v)
	}

	return path, true
}

// relax records the improved route from→to of length w in both tables.
// The caller has already established that it is an improvement.
func relax[V core.VertexID, W core.Weight](distTo []W, edgeTo []V, from, to V, w W) {
	distTo[to] = distTo[from] + w
	edgeTo[to] = from
}
