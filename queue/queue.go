package queue

// Queue is a first-in-first-out container. Dequeued slots are reclaimed
// once they make up more than half of the backing slice, so a long-lived
// queue that never drains does not accumulate dead capacity.
// The zero value is an empty queue ready for use.
type Queue[T any] struct {
	items []T
	head  int
}

// NewQueue creates an empty queue with room for capacity items before
// the backing slice grows.
func NewQueue[T any](capacity int) *Queue[T] {
	return &Queue[T]{items: make([]T, 0, capacity)}
}

// Enqueue appends item at the back.
func (q *Queue[T]) Enqueue(item T) {
	q.items = append(q.items, item)
}

// Dequeue removes and returns the front item; the second result is false
// when the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if q.head >= len(q.items) {
		return zero, false
	}
	item := q.items[q.head]
	q.items[q.head] = zero // release the slot for the garbage collector
	q.head++
	switch {
	case q.head == len(q.items):
		q.items = q.items[:0]
		q.head = 0
	case q.head > len(q.items)/2:
		// shift the live items down over the drained prefix
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}

	return item, true
}

// Peek returns the front item without removing it; the second result is
// false when the queue is empty.
func (q *Queue[T]) Peek() (T, bool) {
	var zero T
	if q.head >= len(q.items) {
		return zero, false
	}

	return q.items[q.head], true
}

// Len reports the number of queued items.
func (q *Queue[T]) Len() int { return len(q.items) - q.head }

// IsEmpty reports whether the queue holds no items.
func (q *Queue[T]) IsEmpty() bool { return q.Len() == 0 }
