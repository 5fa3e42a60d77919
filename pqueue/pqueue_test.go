package pqueue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algods/pqueue"
)

// TestPriorityQueue_MaxOriented: largest out first.
func TestPriorityQueue_MaxOriented(t *testing.T) {
	pq := pqueue.New[int](3, pqueue.MaxOriented)
	assert.True(t, pq.IsEmpty())
	pq.Insert(0)
	pq.Insert(1)
	pq.Insert(2)
	require.Equal(t, 3, pq.Len())

	top, ok := pq.Peek()
	require.True(t, ok)
	assert.Equal(t, 2, top)

	for want := 2; want >= 0; want-- {
		got, ok := pq.Delete()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok = pq.Delete()
	assert.False(t, ok)
}

// TestPriorityQueue_MinOriented: smallest out first, duplicates kept.
func TestPriorityQueue_MinOriented(t *testing.T) {
	pq := pqueue.New[uint32](0, pqueue.MinOriented)
	for _, v := range []uint32{5, 1, 4, 1, 9, 0} {
		pq.Insert(v)
	}

	var drained []uint32
	for !pq.IsEmpty() {
		v, _ := pq.Delete()
		drained = append(drained, v)
	}
	assert.Equal(t, []uint32{0, 1, 1, 4, 5, 9}, drained)
}

// TestPriorityQueue_Strings: any ordered type works.
func TestPriorityQueue_Strings(t *testing.T) {
	pq := pqueue.New[string](4, pqueue.MinOriented)
	pq.Insert("pear")
	pq.Insert("apple")
	pq.Insert("fig")

	got, ok := pq.Delete()
	require.True(t, ok)
	assert.Equal(t, "apple", got)
	got, ok = pq.Peek()
	require.True(t, ok)
	assert.Equal(t, "fig", got)
}

// TestPriorityQueue_ZeroValue: usable without New, min-oriented.
func TestPriorityQueue_ZeroValue(t *testing.T) {
	var pq pqueue.PriorityQueue[int]
	assert.Equal(t, pqueue.MinOriented, pq.Orientation())
	pq.Insert(3)
	pq.Insert(1)
	got, ok := pq.Delete()
	require.True(t, ok)
	assert.Equal(t, 1, got)
}
