package pqueue

import (
	"golang.org/x/exp/constraints"
)

// Orientation selects which end of the ordering a queue serves first.
type Orientation int

const (
	// MinOriented serves the smallest element first.
	MinOriented Orientation = iota
	// MaxOriented serves the largest element first.
	MaxOriented
)

// String returns the conventional name of the orientation.
func (o Orientation) String() string {
	if o == MaxOriented {
		return "max"
	}

	return "min"
}

// PriorityQueue is a binary heap serving elements in the order its
// Orientation dictates. The zero value is a usable min-oriented queue.
type PriorityQueue[T constraints.Ordered] struct {
	items []T
	kind  Orientation
}

// New creates an empty queue of the given orientation with room for
// capacity elements before the backing slice grows.
func New[T constraints.Ordered](capacity int, kind Orientation) *PriorityQueue[T] {
	return &PriorityQueue[T]{
		items: make([]T, 0, capacity),
		kind:  kind,
	}
}

// Orientation reports which end of the ordering the queue serves first.
func (pq *PriorityQueue[T]) Orientation() Orientation { return pq.kind }

// Len reports the number of queued elements.
func (pq *PriorityQueue[T]) Len() int { return len(pq.items) }

// IsEmpty reports whether the queue holds no elements.
func (pq *PriorityQueue[T]) IsEmpty() bool { return len(pq.items) == 0 }

// Insert adds item to the queue.
func (pq *PriorityQueue[T]) Insert(item T) {
	pq.items = append(pq.items, item)
	pq.swim(len(pq.items) - 1)
}

// Peek returns the extremal element without removing it; the second
// result is false when the queue is empty.
func (pq *PriorityQueue[T]) Peek() (T, bool) {
	if len(pq.items) == 0 {
		var zero T

		return zero, false
	}

	return pq.items[0], true
}

// Delete removes and returns the extremal element; the second result is
// false when the queue is empty.
func (pq *PriorityQueue[T]) Delete() (T, bool) {
	n := len(pq.items)
	if n == 0 {
		var zero T

		return zero, false
	}
	top := pq.items[0]
	pq.items[0] = pq.items[n-1]
	var zero T
	pq.items[n-1] = zero
	pq.items = pq.items[:n-1]
	pq.sink(0)

	return top, true
}

// before reports whether the element at i must sit above the one at j.
func (pq *PriorityQueue[T]) before(i, j int) bool {
	if pq.kind == MaxOriented {
		return pq.items[i] > pq.items[j]
	}

	return pq.items[i] < pq.items[j]
}

func (pq *PriorityQueue[T]) swim(k int) {
	for k > 0 {
		parent := (k - 1) / 2
		if !pq.before(k, parent) {
			break
		}
		pq.items[k], pq.items[parent] = pq.items[parent], pq.items[k]
		k = parent
	}
}

func (pq *PriorityQueue[T]) sink(k int) {
	n := len(pq.items)
	for {
		child := 2*k + 1
		if child >= n {
			break
		}
		if right := child + 1; right < n && pq.before(right, child) {
			child = right
		}
		if !pq.before(child, k) {
			break
		}
		pq.items[k], pq.items[child] = pq.items[child], pq.items[k]
		k = child
	}
}
