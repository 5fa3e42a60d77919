package core

import (
	"cmp"
	"slices"
)

// WeightedEdge is one (destination, weight) record in a WeightedDigraph's
// out-edge set.
type WeightedEdge[V VertexID, W Weight] struct {
	To     V
	Weight W
}

// Arc is a (from, to, weight) triple consumed by WeightedDigraphFromEdges.
type Arc[V VertexID, W Weight] struct {
	From   V
	To     V
	Weight W
}

// WeightedDigraph is a directed multigraph: out-edge sets are keyed by the
// whole (destination, weight) record, so two parallel edges between the
// same pair with different weights are distinct and both retained.
// Re-inserting an identical (to, weight) record is a no-op.
type WeightedDigraph[V VertexID, W Weight] struct {
	out      []map[WeightedEdge[V, W]]struct{}
	inDegree []int
	edges    int
}

// NewWeightedDigraph creates an edge-weighted directed graph with n
// isolated vertices. Panics if n is not representable by V.
func NewWeightedDigraph[V VertexID, W Weight](n int) *WeightedDigraph[V, W] {
	g := &WeightedDigraph[V, W]{}
	g.AddVertices(n)

	return g
}

// WeightedDigraphFromEdges builds a graph from (from, to, weight) triples,
// growing the vertex set to fit the largest referenced id.
func WeightedDigraphFromEdges[V VertexID, W Weight](arcs []Arc[V, W]) *WeightedDigraph[V, W] {
	g := NewWeightedDigraph[V, W](0)
	for _, a := range arcs {
		m := max(uint64(a.From), uint64(a.To))
		if need := int(m) + 1; need > len(g.out) {
			g.AddVertices(need - len(g.out))
		}
		g.AddEdge(a.From, a.To, a.Weight)
	}

	return g
}

// AddVertex appends one isolated vertex.
func (g *WeightedDigraph[V, W]) AddVertex() {
	g.AddVertices(1)
}

// AddVertices appends n isolated vertices.
// Panics if the new count is not representable by V.
func (g *WeightedDigraph[V, W]) AddVertices(n int) {
	checkGrowth[V](len(g.out) + n)
	for i := 0; i < n; i++ {
		g.out = append(g.out, make(map[WeightedEdge[V, W]]struct{}))
	}
	g.inDegree = append(g.inDegree, make([]int, n)...)
}

// AddEdge inserts the directed edge from→to carrying weight w. The edge
// count and inDegree(to) grow only if the exact (to, w) record was not
// already present; a parallel edge with a different weight counts as new.
// Panics if either endpoint is out of range.
func (g *WeightedDigraph[V, W]) AddEdge(from, to V, w W) {
	checkEndpoint(from, len(g.out))
	checkEndpoint(to, len(g.out))
	rec := WeightedEdge[V, W]{To: to, Weight: w}
	if _, ok := g.out[from][rec]; ok {
		return
	}
	g.out[from][rec] = struct{}{}
	g.inDegree[to]++
	g.edges++
}

// VertexCount reports the number of vertices. O(1).
func (g *WeightedDigraph[V, W]) VertexCount() int { return len(g.out) }

// EdgeCount reports the number of distinct (from, to, weight) edges. O(1).
func (g *WeightedDigraph[V, W]) EdgeCount() int { return g.edges }

// Edges returns the out-edge records of v sorted by (To, Weight).
// Panics if v is out of range.
func (g *WeightedDigraph[V, W]) Edges(v V) []WeightedEdge[V, W] {
	checkEndpoint(v, len(g.out))
	edges := make([]WeightedEdge[V, W], 0, len(g.out[v]))
	for rec := range g.out[v] {
		edges = append(edges, rec)
	}
	slices.SortFunc(edges, func(a, b WeightedEdge[V, W]) int {
		if c := cmp.Compare(a.To, b.To); c != 0 {
			return c
		}

		return cmp.Compare(a.Weight, b.Weight)
	})

	return edges
}

// Neighbors returns the destination of every out-edge of v in ascending
// order; a destination reached by k parallel edges appears k times.
func (g *WeightedDigraph[V, W]) Neighbors(v V) []V {
	edges := g.Edges(v)
	nbrs := make([]V, len(edges))
	for i, e := range edges {
		nbrs[i] = e.To
	}

	return nbrs
}

// OutDegree reports the number of out-edge records of v. O(1).
func (g *WeightedDigraph[V, W]) OutDegree(v V) int {
	checkEndpoint(v, len(g.out))

	return len(g.out[v])
}

// InDegree reports the number of edge records pointing to v, maintained
// incrementally by AddEdge. O(1).
func (g *WeightedDigraph[V, W]) InDegree(v V) int {
	checkEndpoint(v, len(g.out))

	return g.inDegree[v]
}

// AverageDegree reports the integer part of edges per vertex.
// Panics on a graph with no vertices.
func (g *WeightedDigraph[V, W]) AverageDegree() int {
	if len(g.out) == 0 {
		panic("core: average degree of a graph with no vertices")
	}

	return g.edges / len(g.out)
}

// SelfLoopCount reports the number of vertices with at least one edge to
// themselves.
func (g *WeightedDigraph[V, W]) SelfLoopCount() int {
	count := 0
	for u := range g.out {
		for rec := range g.out[u] {
			if rec.To == V(u) {
				count++
				break
			}
		}
	}

	return count
}
