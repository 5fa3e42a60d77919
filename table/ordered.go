package table

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// OrderedTable keeps its keys in one ascending slice with values in a
// parallel slice, so rank queries reduce to binary search. Put and
// Delete shift the tail of both slices.
// The zero value is an empty table ready for use.
type OrderedTable[K constraints.Ordered, V any] struct {
	keys   []K
	values []V
}

// NewOrderedTable creates an empty table with room for capacity pairs
// before the backing slices grow.
func NewOrderedTable[K constraints.Ordered, V any](capacity int) *OrderedTable[K, V] {
	return &OrderedTable[K, V]{
		keys:   make([]K, 0, capacity),
		values: make([]V, 0, capacity),
	}
}

// Len reports the number of pairs held.
func (t *OrderedTable[K, V]) Len() int { return len(t.keys) }

// IsEmpty reports whether the table holds no pairs.
func (t *OrderedTable[K, V]) IsEmpty() bool { return len(t.keys) == 0 }

// Put associates value with key, replacing the previous value when the
// key is already present.
func (t *OrderedTable[K, V]) Put(key K, value V) {
	i, found := slices.BinarySearch(t.keys, key)
	if found {
		t.values[i] = value

		return
	}
	t.keys = slices.Insert(t.keys, i, key)
	t.values = slices.Insert(t.values, i, value)
}

// Get returns the value associated with key; the second result is false
// when the key is absent.
func (t *OrderedTable[K, V]) Get(key K) (V, bool) {
	i, found := slices.BinarySearch(t.keys, key)
	if !found {
		var zero V

		return zero, false
	}

	return t.values[i], true
}

// Contains reports whether key is present.
func (t *OrderedTable[K, V]) Contains(key K) bool {
	_, found := slices.BinarySearch(t.keys, key)

	return found
}

// Delete removes key and returns the value it held; the second result
// is false when the key is absent.
func (t *OrderedTable[K, V]) Delete(key K) (V, bool) {
	i, found := slices.BinarySearch(t.keys, key)
	if !found {
		var zero V

		return zero, false
	}
	value := t.values[i]
	t.keys = slices.Delete(t.keys, i, i+1)
	t.values = slices.Delete(t.values, i, i+1)

	return value, true
}

// Min returns the smallest key; the second result is false on an empty
// table.
func (t *OrderedTable[K, V]) Min() (K, bool) {
	if len(t.keys) == 0 {
		var zero K

		return zero, false
	}

	return t.keys[0], true
}

// Max returns the largest key; the second result is false on an empty
// table.
func (t *OrderedTable[K, V]) Max() (K, bool) {
	if len(t.keys) == 0 {
		var zero K

		return zero, false
	}

	return t.keys[len(t.keys)-1], true
}

// Floor returns the largest key ≤ key; the second result is false when
// every key is larger.
func (t *OrderedTable[K, V]) Floor(key K) (K, bool) {
	i, found := slices.BinarySearch(t.keys, key)
	if found {
		return key, true
	}
	if i == 0 {
		var zero K

		return zero, false
	}

	return t.keys[i-1], true
}

// Ceil returns the smallest key ≥ key; the second result is false when
// every key is smaller.
func (t *OrderedTable[K, V]) Ceil(key K) (K, bool) {
	i, _ := slices.BinarySearch(t.keys, key)
	if i == len(t.keys) {
		var zero K

		return zero, false
	}

	return t.keys[i], true
}

// RangeKeys returns the keys in the half-open interval [low, high), in
// ascending order. The result is a fresh slice.
func (t *OrderedTable[K, V]) RangeKeys(low, high K) []K {
	lo, _ := slices.BinarySearch(t.keys, low)
	hi, _ := slices.BinarySearch(t.keys, high)

	return slices.Clone(t.keys[lo:hi])
}

// RangeCount reports the number of keys in the half-open interval
// [low, high).
func (t *OrderedTable[K, V]) RangeCount(low, high K) int {
	lo, _ := slices.BinarySearch(t.keys, low)
	hi, _ := slices.BinarySearch(t.keys, high)

	return hi - lo
}

// Keys returns every key in ascending order. The result is a fresh
// slice.
func (t *OrderedTable[K, V]) Keys() []K { return slices.Clone(t.keys) }
