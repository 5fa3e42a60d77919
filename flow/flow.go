package flow

import (
	"github.com/katalvlaran/algods/core"
	"github.com/katalvlaran/algods/queue"
)

// FordFulkerson computes the maximum flow between one source and one
// sink, mutating the network's edge flows into a witnessing assignment.
type FordFulkerson[V core.VertexID, W core.Weight] struct {
	maxFlow W
	ran     bool
}

// NewFordFulkerson prepares a computation with no result yet.
func NewFordFulkerson[V core.VertexID, W core.Weight]() *FordFulkerson[V, W] {
	return &FordFulkerson[V, W]{}
}

// MaxFlow returns the total flow found by FindFlows; the second result
// is false until FindFlows has run.
func (f *FordFulkerson[V, W]) MaxFlow() (W, bool) {
	if !f.ran {
		var zero W

		return zero, false
	}

	return f.maxFlow, true
}

// FindFlows augments net along breadth-first residual paths from source
// to sink until none remains, then records the total. Edge flows in net
// are updated in place. Panics if source equals sink.
func (f *FordFulkerson[V, W]) FindFlows(net *core.FlowNetwork[V, W], source, sink V) {
	if source == sink {
		panic("flow: source equals sink")
	}
	edgeTo := make([]*core.FlowEdge[V, W], net.VertexCount())
	var total W

	for f.hasAugmentingPath(net, source, sink, edgeTo) {
		// 1. walk sink→source for the bottleneck residual
		bottleneck := core.MaxWeight[W]()
		for v := sink; v != source; v = edgeTo[v].Other(v) {
			bottleneck = min(bottleneck, edgeTo[v].ResidualCapacityTo(v))
		}

		// 2. push it along the same path
		for v := sink; v != source; v = edgeTo[v].Other(v) {
			edgeTo[v].AddResidualFlowTo(v, bottleneck)
		}
		total += bottleneck
	}

	f.maxFlow = total
	f.ran = true
}

// hasAugmentingPath searches the residual graph breadth-first, recording
// in edgeTo the edge over which each vertex was first reached. Forward
// edges count when under capacity, backward edges when carrying
// cancellable flow.
func (f *FordFulkerson[V, W]) hasAugmentingPath(
	net *core.FlowNetwork[V, W], source, sink V, edgeTo []*core.FlowEdge[V, W],
) bool {
	marked := make([]bool, net.VertexCount())
	frontier := queue.NewQueue[V](net.VertexCount())
	marked[source] = true
	frontier.Enqueue(source)

	reach := func(v V, e *core.FlowEdge[V, W]) {
		w := e.Other(v)
		if marked[w] || e.ResidualCapacityTo(w) == 0 {
			return
		}
		marked[w] = true
		edgeTo[w] = e
		frontier.Enqueue(w)
	}

	for {
		v, ok := frontier.Dequeue()
		if !ok {
			break
		}
		for _, e := range net.OutEdges(v) {
			reach(v, e)
		}
		for _, e := range net.BackEdges(v) {
			reach(v, e)
		}
	}

	return marked[sink]
}
