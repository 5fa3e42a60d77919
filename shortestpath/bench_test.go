package shortestpath_test

import (
	"testing"

	"github.com/katalvlaran/algods/core"
	"github.com/katalvlaran/algods/shortestpath"
	"github.com/katalvlaran/algods/utils"
)

// benchGraph builds a layered digraph of n vertices where each vertex
// points at the next few, with pseudo-random weights.
func benchGraph(n int) *core.WeightedDigraph[uint32, uint32] {
	weights := utils.RandomVector[uint32](3*n, 1000)
	g := core.NewWeightedDigraph[uint32, uint32](n)
	for i := 0; i < n; i++ {
		for span := 1; span <= 3 && i+span < n; span++ {
			g.AddEdge(uint32(i), uint32(i+span), weights[3*i+span-1]+1)
		}
	}

	return g
}

// BenchmarkFindPaths compares the four strategies on one acyclic
// 10k-vertex graph.
func BenchmarkFindPaths(b *testing.B) {
	const n = 10_000
	g := benchGraph(n)

	for _, algo := range allAlgorithms {
		b.Run(algo.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				sp := shortestpath.New[uint32, uint32](0, n, algo)
				sp.FindPaths(g)
			}
		})
	}
}
