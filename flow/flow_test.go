package flow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algods/core"
	"github.com/katalvlaran/algods/flow"
)

// clrsNetwork builds the 6-vertex network whose maximum 0→5 flow is 23.
func clrsNetwork() *core.FlowNetwork[uint8, uint16] {
	net := core.NewFlowNetwork[uint8, uint16](6)
	net.AddEdge(0, 1, 0, 16)
	net.AddEdge(0, 2, 0, 13)
	net.AddEdge(1, 3, 0, 12)
	net.AddEdge(2, 1, 0, 4)
	net.AddEdge(2, 4, 0, 14)
	net.AddEdge(3, 2, 0, 9)
	net.AddEdge(3, 5, 0, 20)
	net.AddEdge(4, 3, 0, 7)
	net.AddEdge(4, 5, 0, 4)

	return net
}

// flowTotals sums the flow leaving and entering v.
func flowTotals[V core.VertexID, W core.Weight](net *core.FlowNetwork[V, W], v V) (out, in W) {
	for _, e := range net.OutEdges(v) {
		out += e.Flow()
	}
	for _, e := range net.BackEdges(v) {
		in += e.Flow()
	}

	return out, in
}

// TestFordFulkerson_CLRS: the textbook value.
func TestFordFulkerson_CLRS(t *testing.T) {
	net := clrsNetwork()
	ff := flow.NewFordFulkerson[uint8, uint16]()
	ff.FindFlows(net, 0, 5)

	got, ok := ff.MaxFlow()
	require.True(t, ok)
	assert.Equal(t, uint16(23), got)
}

// TestFordFulkerson_Feasibility: the witnessing assignment respects
// capacities and conserves flow at internal vertices.
func TestFordFulkerson_Feasibility(t *testing.T) {
	net := clrsNetwork()
	ff := flow.NewFordFulkerson[uint8, uint16]()
	ff.FindFlows(net, 0, 5)
	total, ok := ff.MaxFlow()
	require.True(t, ok)

	for v := uint8(0); v < uint8(net.VertexCount()); v++ {
		for _, e := range net.OutEdges(v) {
			assert.LessOrEqual(t, e.Flow(), e.Capacity())
		}
	}
	for v := uint8(1); v < 5; v++ {
		out, in := flowTotals(net, v)
		assert.Equal(t, in, out, "vertex %d leaks flow", v)
	}

	srcOut, srcIn := flowTotals(net, uint8(0))
	assert.Equal(t, total, srcOut-srcIn)
	sinkOut, sinkIn := flowTotals(net, uint8(5))
	assert.Equal(t, total, sinkIn-sinkOut)
}

// TestFordFulkerson_TwoRoutes: a network where the naive greedy route
// must be partially cancelled through a backward edge.
func TestFordFulkerson_TwoRoutes(t *testing.T) {
	net := core.NewFlowNetwork[uint16, uint32](6)
	net.AddEdge(0, 1, 0, 10)
	net.AddEdge(0, 2, 0, 10)
	net.AddEdge(1, 3, 0, 4)
	net.AddEdge(1, 4, 0, 8)
	net.AddEdge(2, 4, 0, 9)
	net.AddEdge(3, 5, 0, 10)
	net.AddEdge(4, 3, 0, 6)
	net.AddEdge(4, 5, 0, 10)

	ff := flow.NewFordFulkerson[uint16, uint32]()
	ff.FindFlows(net, 0, 5)
	got, ok := ff.MaxFlow()
	require.True(t, ok)
	assert.Equal(t, uint32(19), got)
}

// TestFordFulkerson_NoPath: a disconnected sink yields zero flow.
func TestFordFulkerson_NoPath(t *testing.T) {
	net := core.NewFlowNetwork[uint8, uint8](4)
	net.AddEdge(0, 1, 0, 5)
	net.AddEdge(2, 3, 0, 5)

	ff := flow.NewFordFulkerson[uint8, uint8]()
	ff.FindFlows(net, 0, 3)
	got, ok := ff.MaxFlow()
	require.True(t, ok)
	assert.Equal(t, uint8(0), got)
}

// TestFordFulkerson_BeforeRun: no result until FindFlows.
func TestFordFulkerson_BeforeRun(t *testing.T) {
	ff := flow.NewFordFulkerson[uint8, uint8]()
	_, ok := ff.MaxFlow()
	assert.False(t, ok)
}

// TestFordFulkerson_SameSourceSink: degenerate endpoints abort.
func TestFordFulkerson_SameSourceSink(t *testing.T) {
	net := core.NewFlowNetwork[uint8, uint8](2)
	ff := flow.NewFordFulkerson[uint8, uint8]()
	assert.Panics(t, func() { ff.FindFlows(net, 1, 1) })
}
