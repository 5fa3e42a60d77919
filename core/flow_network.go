package core

import "fmt"

// FlowEdge is one capacitated edge of a FlowNetwork. The flow field is
// the only mutable part of a graph during any algorithm in this module;
// the invariant 0 ≤ flow ≤ capacity holds at all times.
type FlowEdge[V VertexID, W Weight] struct {
	from     V
	to       V
	flow     W
	capacity W
}

// NewFlowEdge creates an edge from→to with an initial flow and capacity.
// Panics if flow exceeds capacity.
func NewFlowEdge[V VertexID, W Weight](from, to V, flow, capacity W) *FlowEdge[V, W] {
	if flow > capacity {
		panic(fmt.Sprintf("core: flow %d exceeds capacity %d on edge %d→%d",
			uint64(flow), uint64(capacity), uint64(from), uint64(to)))
	}

	return &FlowEdge[V, W]{from: from, to: to, flow: flow, capacity: capacity}
}

// From returns the tail vertex.
func (e *FlowEdge[V, W]) From() V { return e.from }

// To returns the head vertex.
func (e *FlowEdge[V, W]) To() V { return e.to }

// Flow returns the current flow.
func (e *FlowEdge[V, W]) Flow() W { return e.flow }

// Capacity returns the capacity.
func (e *FlowEdge[V, W]) Capacity() W { return e.capacity }

// Other returns the endpoint opposite to v.
// Panics if v is neither endpoint.
func (e *FlowEdge[V, W]) Other(v V) V {
	switch v {
	case e.from:
		return e.to
	case e.to:
		return e.from
	default:
		panic(fmt.Sprintf("core: illegal endpoint %d on edge %d→%d",
			uint64(v), uint64(e.from), uint64(e.to)))
	}
}

// ResidualCapacityTo reports how much additional flow can be pushed
// toward v: capacity−flow in the forward direction, or the current flow
// when traversing the edge backward (the amount that can be cancelled).
// Panics if v is neither endpoint.
func (e *FlowEdge[V, W]) ResidualCapacityTo(v V) W {
	switch v {
	case e.to:
		return e.capacity - e.flow
	case e.from:
		return e.flow
	default:
		panic(fmt.Sprintf("core: illegal endpoint %d on edge %d→%d",
			uint64(v), uint64(e.from), uint64(e.to)))
	}
}

// AddResidualFlowTo pushes delta units of flow toward v: forward
// traversal increases the edge's flow, backward traversal decreases it
// (flow cancellation). Panics if v is neither endpoint; correct
// predecessor bookkeeping in the caller makes that unreachable.
func (e *FlowEdge[V, W]) AddResidualFlowTo(v V, delta W) {
	switch v {
	case e.to:
		e.flow += delta
	case e.from:
		e.flow -= delta
	default:
		panic(fmt.Sprintf("core: illegal endpoint %d on edge %d→%d",
			uint64(v), uint64(e.from), uint64(e.to)))
	}
}

// FlowNetwork stores, per vertex, the list of forward FlowEdges leaving
// it and a parallel backward list of the edges entering it. Both lists
// share the same *FlowEdge records, so pushing flow through one view is
// visible through the other and earlier flow can be cancelled.
type FlowNetwork[V VertexID, W Weight] struct {
	out   [][]*FlowEdge[V, W] // forward edges leaving each vertex
	back  [][]*FlowEdge[V, W] // residual views: edges entering each vertex
	edges int
}

// NewFlowNetwork creates a flow network with n isolated vertices.
// Panics if n is not representable by V.
func NewFlowNetwork[V VertexID, W Weight](n int) *FlowNetwork[V, W] {
	g := &FlowNetwork[V, W]{}
	g.AddVertices(n)

	return g
}

// AddVertex appends one isolated vertex.
func (g *FlowNetwork[V, W]) AddVertex() {
	g.AddVertices(1)
}

// AddVertices appends n isolated vertices.
// Panics if the new count is not representable by V.
func (g *FlowNetwork[V, W]) AddVertices(n int) {
	checkGrowth[V](len(g.out) + n)
	for i := 0; i < n; i++ {
		g.out = append(g.out, nil)
		g.back = append(g.back, nil)
	}
}

// AddEdge inserts a forward edge from→to with an initial flow and
// capacity, wiring it into both endpoints' lists. An edge identical in
// all four fields to an existing forward edge is a no-op.
// Panics if either endpoint is out of range or flow exceeds capacity.
func (g *FlowNetwork[V, W]) AddEdge(from, to V, flow, capacity W) {
	checkEndpoint(from, len(g.out))
	checkEndpoint(to, len(g.out))
	for _, e := range g.out[from] {
		if e.to == to && e.flow == flow && e.capacity == capacity {
			return
		}
	}
	e := NewFlowEdge(from, to, flow, capacity)
	g.out[from] = append(g.out[from], e)
	g.back[to] = append(g.back[to], e)
	g.edges++
}

// OutEdges returns the forward edges leaving v, in insertion order.
// Panics if v is out of range.
func (g *FlowNetwork[V, W]) OutEdges(v V) []*FlowEdge[V, W] {
	checkEndpoint(v, len(g.out))

	return g.out[v]
}

// BackEdges returns the residual views of the edges entering v, in
// insertion order. Panics if v is out of range.
func (g *FlowNetwork[V, W]) BackEdges(v V) []*FlowEdge[V, W] {
	checkEndpoint(v, len(g.out))

	return g.back[v]
}

// VertexCount reports the number of vertices. O(1).
func (g *FlowNetwork[V, W]) VertexCount() int { return len(g.out) }

// EdgeCount reports the number of forward edges. O(1).
func (g *FlowNetwork[V, W]) EdgeCount() int { return g.edges }

// OutDegree reports the number of forward edges leaving v. O(1).
func (g *FlowNetwork[V, W]) OutDegree(v V) int {
	checkEndpoint(v, len(g.out))

	return len(g.out[v])
}

// InDegree reports the number of forward edges entering v. O(1).
func (g *FlowNetwork[V, W]) InDegree(v V) int {
	checkEndpoint(v, len(g.out))

	return len(g.back[v])
}

// AverageDegree reports the integer part of edges per vertex.
// Panics on a network with no vertices.
func (g *FlowNetwork[V, W]) AverageDegree() int {
	if len(g.out) == 0 {
		panic("core: average degree of a graph with no vertices")
	}

	return g.edges / len(g.out)
}
