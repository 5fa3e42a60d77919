package bfs_test

import (
	"testing"

	"github.com/katalvlaran/algods/bfs"
	"github.com/katalvlaran/algods/core"
)

// BenchmarkBFS_Chain measures one sweep over a 10k-vertex chain.
func BenchmarkBFS_Chain(b *testing.B) {
	const n = 10_000
	g := core.NewDigraph[uint32](n)
	for i := 0; i < n-1; i++ {
		g.AddEdge(uint32(i), uint32(i+1))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		search := bfs.NewBreadthFirstSearch[uint32](n, 0)
		search.FindPaths(g)
	}
}

// BenchmarkBFS_Grid measures one sweep over a 100x100 grid, the
// branchy counterpart to the chain.
func BenchmarkBFS_Grid(b *testing.B) {
	const side = 100
	g := core.NewGraph[uint32](side * side)
	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			v := uint32(i*side + j)
			if j+1 < side {
				g.AddEdge(v, v+1)
			}
			if i+1 < side {
				g.AddEdge(v, v+side)
			}
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		search := bfs.NewBreadthFirstSearch[uint32](side*side, 0)
		search.FindPaths(g)
	}
}
