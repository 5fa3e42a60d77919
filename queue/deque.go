package queue

// Deque is a double-ended queue: items enter at either end and leave at
// the front. The zero value is an empty deque ready for use.
type Deque[T any] struct {
	items []T
}

// NewDeque creates an empty deque with room for capacity items before
// the backing slice grows.
func NewDeque[T any](capacity int) *Deque[T] {
	return &Deque[T]{items: make([]T, 0, capacity)}
}

// PushBack appends item at the back.
func (d *Deque[T]) PushBack(item T) {
	d.items = append(d.items, item)
}

// PushFront prepends item at the front.
func (d *Deque[T]) PushFront(item T) {
	d.items = append(d.items, item)
	copy(d.items[1:], d.items)
	d.items[0] = item
}

// PopFront removes and returns the front item; the second result is
// false when the deque is empty.
func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if len(d.items) == 0 {
		return zero, false
	}
	item := d.items[0]
	copy(d.items, d.items[1:])
	d.items[len(d.items)-1] = zero
	d.items = d.items[:len(d.items)-1]

	return item, true
}

// Front returns the front item without removing it; the second result is
// false when the deque is empty.
func (d *Deque[T]) Front() (T, bool) {
	var zero T
	if len(d.items) == 0 {
		return zero, false
	}

	return d.items[0], true
}

// Len reports the number of items held.
func (d *Deque[T]) Len() int { return len(d.items) }

// IsEmpty reports whether the deque holds no items.
func (d *Deque[T]) IsEmpty() bool { return len(d.items) == 0 }
