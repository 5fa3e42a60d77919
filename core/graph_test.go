package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/algods/core"
)

// TestGraph_Symmetry: an undirected edge is visible from both endpoints
// and counted once.
func TestGraph_Symmetry(t *testing.T) {
	g := core.NewGraph[uint8](3)
	g.AddEdge(0, 1)
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, []uint8{1}, g.Neighbors(0))
	assert.Equal(t, []uint8{0}, g.Neighbors(1))

	// inserting the mirrored pair is a no-op
	g.AddEdge(1, 0)
	assert.Equal(t, 1, g.EdgeCount())
}

// TestGraph_SelfLoops: a self-loop is recorded once and counted per
// vertex.
func TestGraph_SelfLoops(t *testing.T) {
	g := core.NewGraph[uint8](3)
	g.AddEdge(0, 1)
	g.AddEdge(0, 0)
	g.AddEdge(1, 1)
	g.AddEdge(2, 2)
	g.AddEdge(2, 1)
	g.AddEdge(2, 0)
	assert.Equal(t, 3, g.SelfLoopCount())
	assert.Equal(t, 6, g.EdgeCount())
	assert.Equal(t, []uint8{0}, g.Neighbors(0)[:1])
}

// TestGraph_FromEdges grows to fit the largest id, keeping distinct
// unordered pairs.
func TestGraph_FromEdges(t *testing.T) {
	g := core.GraphFromEdges([][2]uint8{{0, 0}, {0, 1}, {2, 3}, {3, 4}, {5, 1}})
	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, 5, g.EdgeCount())
	g.AddVertex()
	assert.Equal(t, 7, g.VertexCount())
}

// TestGraph_Panics mirrors the directed precondition checks.
func TestGraph_Panics(t *testing.T) {
	assert.Panics(t, func() {
		g := core.NewGraph[uint8](2)
		g.AddEdge(0, 2)
	})
	assert.Panics(t, func() {
		core.NewGraph[uint16](0).AverageDegree()
	})
}
