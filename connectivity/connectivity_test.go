package connectivity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algods/connectivity"
	"github.com/katalvlaran/algods/core"
)

// TestConnectedComponents_TwoIslands: {0,1} and {2,3} never mix.
func TestConnectedComponents_TwoIslands(t *testing.T) {
	g := core.GraphFromEdges([][2]uint8{{0, 0}, {0, 1}, {2, 3}})
	cc := connectivity.NewConnectedComponents[uint8](g.VertexCount())
	cc.Find(g)

	assert.Equal(t, 2, cc.Count())
	same, ok := cc.Connected(0, 1)
	require.True(t, ok)
	assert.True(t, same)
	same, ok = cc.Connected(1, 2)
	require.True(t, ok)
	assert.False(t, same)
}

// TestConnectedComponents_IsolatedVertex: a fresh vertex is its own
// component.
func TestConnectedComponents_IsolatedVertex(t *testing.T) {
	g := core.GraphFromEdges([][2]uint8{{0, 0}, {0, 1}, {2, 3}, {3, 4}, {5, 1}})
	g.AddVertex()
	require.Equal(t, 7, g.VertexCount())

	cc := connectivity.NewConnectedComponents[uint8](g.VertexCount())
	cc.Find(g)

	assert.Equal(t, 3, cc.Count())
	same, ok := cc.Connected(1, 2)
	require.True(t, ok)
	assert.False(t, same)
	same, ok = cc.Connected(6, 3)
	require.True(t, ok)
	assert.False(t, same)
	same, ok = cc.Connected(0, 5)
	require.True(t, ok)
	assert.True(t, same)

	label, ok := cc.Label(6)
	require.True(t, ok)
	assert.Equal(t, uint8(6), label)
}

// TestConnectedComponents_BeforeFind: queries fail until the sweep runs.
func TestConnectedComponents_BeforeFind(t *testing.T) {
	cc := connectivity.NewConnectedComponents[uint8](4)
	assert.Equal(t, 0, cc.Count())
	_, ok := cc.Connected(0, 1)
	assert.False(t, ok)
	_, ok = cc.Label(2)
	assert.False(t, ok)
}

// TestConnectedComponents_RepeatedQueries: after one Find run, repeated
// reads return identical answers; queries never mutate the labels.
func TestConnectedComponents_RepeatedQueries(t *testing.T) {
	g := core.GraphFromEdges([][2]uint8{{0, 0}, {0, 1}, {2, 3}, {3, 4}, {5, 1}})
	cc := connectivity.NewConnectedComponents[uint8](g.VertexCount())
	cc.Find(g)

	countFirst := cc.Count()
	for v := uint8(0); int(v) < g.VertexCount(); v++ {
		label1, ok1 := cc.Label(v)
		label2, ok2 := cc.Label(v)
		require.True(t, ok1)
		assert.Equal(t, ok1, ok2)
		assert.Equal(t, label1, label2, "label of %d changed between reads", v)

		same1, _ := cc.Connected(0, v)
		same2, _ := cc.Connected(0, v)
		assert.Equal(t, same1, same2, "connectivity of (0,%d) changed between reads", v)
	}
	assert.Equal(t, countFirst, cc.Count())
}

// TestStrongComponents_OneWayEdges: a one-directional edge does not make
// its endpoints strongly connected.
func TestStrongComponents_OneWayEdges(t *testing.T) {
	g := core.DigraphFromEdges([][2]uint8{
		{0, 0}, {0, 1}, {1, 0}, {1, 3}, {2, 4}, {3, 0}, {5, 7},
	})
	scc := connectivity.NewStrongComponents[uint8](g.VertexCount())
	scc.Find(g)

	// {0,1,3} plus five singletons
	assert.Equal(t, 6, scc.Count())
	same, ok := scc.Connected(0, 1)
	require.True(t, ok)
	assert.True(t, same)
	for _, pair := range [][2]uint8{{1, 2}, {5, 7}, {2, 4}} {
		same, ok = scc.Connected(pair[0], pair[1])
		require.True(t, ok)
		assert.False(t, same)
	}
}

// TestStrongComponents_MergedCycle: adding the 4->2 back edge fuses
// {2,4} into one component.
func TestStrongComponents_MergedCycle(t *testing.T) {
	g := core.DigraphFromEdges([][2]uint8{
		{0, 0}, {0, 1}, {1, 0}, {1, 3}, {1, 4}, {2, 4}, {3, 0}, {4, 2}, {5, 7},
	})
	scc := connectivity.NewStrongComponents[uint8](g.VertexCount())
	scc.Find(g)

	assert.Equal(t, 5, scc.Count())
	same, ok := scc.Connected(2, 4)
	require.True(t, ok)
	assert.True(t, same)
	same, ok = scc.Connected(1, 2)
	require.True(t, ok)
	assert.False(t, same)
}

// TestStrongComponents_Classic13: the well-known 13-vertex digraph with
// five strong components.
func TestStrongComponents_Classic13(t *testing.T) {
	g := core.DigraphFromEdges([][2]uint16{
		{4, 2}, {2, 3}, {3, 2}, {6, 0}, {0, 1}, {2, 0}, {11, 12},
		{12, 9}, {9, 10}, {9, 11}, {7, 9}, {10, 12}, {11, 4}, {4, 3},
		{3, 5}, {6, 8}, {8, 6}, {5, 4}, {0, 5}, {6, 4}, {6, 9}, {7, 6},
	})
	require.Equal(t, 13, g.VertexCount())

	scc := connectivity.NewStrongComponents[uint16](g.VertexCount())
	scc.Find(g)
	assert.Equal(t, 5, scc.Count())

	groups := [][]uint16{
		{1},
		{0, 2, 3, 4, 5},
		{9, 10, 11, 12},
		{6, 8},
		{7},
	}
	for _, group := range groups {
		for _, v := range group[1:] {
			same, ok := scc.Connected(group[0], v)
			require.True(t, ok)
			assert.True(t, same, "expected %d and %d in one component", group[0], v)
		}
	}
	same, ok := scc.Connected(0, 9)
	require.True(t, ok)
	assert.False(t, same)
}
