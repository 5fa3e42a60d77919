package core

import "slices"

// Graph is a simple undirected graph over dense vertex ids. Every edge is
// recorded symmetrically in both endpoints' neighbor sets; self-loops are
// recorded once. The edge count tracks distinct unordered endpoint pairs.
type Graph[V VertexID] struct {
	adj   []map[V]struct{}
	edges int
}

// NewGraph creates an undirected graph with n isolated vertices.
// Panics if n is not representable by V.
func NewGraph[V VertexID](n int) *Graph[V] {
	g := &Graph[V]{}
	g.AddVertices(n)

	return g
}

// GraphFromEdges builds an undirected graph from endpoint pairs, growing
// the vertex set to fit the largest referenced id.
func GraphFromEdges[V VertexID](edges [][2]V) *Graph[V] {
	g := NewGraph[V](0)
	for _, e := range edges {
		m := max(uint64(e[0]), uint64(e[1]))
		if need := int(m) + 1; need > len(g.adj) {
			g.AddVertices(need - len(g.adj))
		}
		g.AddEdge(e[0], e[1])
	}

	return g
}

// AddVertex appends one isolated vertex.
func (g *Graph[V]) AddVertex() {
	g.AddVertices(1)
}

// AddVertices appends n isolated vertices.
// Panics if the new count is not representable by V.
func (g *Graph[V]) AddVertices(n int) {
	checkGrowth[V](len(g.adj) + n)
	for i := 0; i < n; i++ {
		g.adj = append(g.adj, make(map[V]struct{}))
	}
}

// AddEdge inserts the undirected edge {v, w}, recording it in both
// endpoints' neighbor sets (once for a self-loop). Re-insertion is a
// no-op. Panics if either endpoint is out of range.
func (g *Graph[V]) AddEdge(v, w V) {
	checkEndpoint(v, len(g.adj))
	checkEndpoint(w, len(g.adj))
	if _, ok := g.adj[v][w]; ok {
		return
	}
	g.adj[v][w] = struct{}{}
	g.adj[w][v] = struct{}{}
	g.edges++
}

// VertexCount reports the number of vertices. O(1).
func (g *Graph[V]) VertexCount() int { return len(g.adj) }

// EdgeCount reports the number of distinct undirected edges. O(1).
func (g *Graph[V]) EdgeCount() int { return g.edges }

// Neighbors returns the vertices adjacent to v in ascending order.
// Panics if v is out of range.
func (g *Graph[V]) Neighbors(v V) []V {
	checkEndpoint(v, len(g.adj))
	nbrs := make([]V, 0, len(g.adj[v]))
	for u := range g.adj[v] {
		nbrs = append(nbrs, u)
	}
	slices.Sort(nbrs)

	return nbrs
}

// Degree reports the number of vertices adjacent to v. O(1).
func (g *Graph[V]) Degree(v V) int {
	checkEndpoint(v, len(g.adj))

	return len(g.adj[v])
}

// AverageDegree reports the integer part of edges per vertex.
// Panics on a graph with no vertices.
func (g *Graph[V]) AverageDegree() int {
	if len(g.adj) == 0 {
		panic("core: average degree of a graph with no vertices")
	}

	return g.edges / len(g.adj)
}

// SelfLoopCount reports the number of vertices adjacent to themselves.
func (g *Graph[V]) SelfLoopCount() int {
	count := 0
	for u := range g.adj {
		if _, ok := g.adj[u][V(u)]; ok {
			count++
		}
	}

	return count
}
