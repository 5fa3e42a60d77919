package table

import "golang.org/x/exp/constraints"

type bstNode[K constraints.Ordered, V any] struct {
	key   K
	value V
	left  *bstNode[K, V]
	right *bstNode[K, V]
}

// BSTTable is an unbalanced binary search tree. Its shape depends on
// insertion order: random orders give logarithmic depth, a sorted
// insertion order degrades it to a linked list. There is no deletion.
// The zero value is an empty table ready for use.
type BSTTable[K constraints.Ordered, V any] struct {
	root *bstNode[K, V]
	size int
}

// NewBSTTable creates an empty tree.
func NewBSTTable[K constraints.Ordered, V any]() *BSTTable[K, V] {
	return &BSTTable[K, V]{}
}

// Len reports the number of pairs held.
func (t *BSTTable[K, V]) Len() int { return t.size }

// IsEmpty reports whether the tree holds no pairs.
func (t *BSTTable[K, V]) IsEmpty() bool { return t.size == 0 }

// Put associates value with key, replacing the previous value when the
// key is already present.
func (t *BSTTable[K, V]) Put(key K, value V) {
	link := &t.root
	for *link != nil {
		n := *link
		switch {
		case key < n.key:
			link = &n.left
		case key > n.key:
			link = &n.right
		default:
			n.value = value

			return
		}
	}
	*link = &bstNode[K, V]{key: key, value: value}
	t.size++
}

// Get returns the value associated with key; the second result is false
// when the key is absent.
func (t *BSTTable[K, V]) Get(key K) (V, bool) {
	for n := t.root; n != nil; {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return n.value, true
		}
	}
	var zero V

	return zero, false
}

// Contains reports whether key is present.
func (t *BSTTable[K, V]) Contains(key K) bool {
	_, found := t.Get(key)

	return found
}

// Min returns the smallest key, the leftmost node; the second result is
// false on an empty tree.
func (t *BSTTable[K, V]) Min() (K, bool) {
	if t.root == nil {
		var zero K

		return zero, false
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}

	return n.key, true
}

// Max returns the largest key, the rightmost node; the second result is
// false on an empty tree.
func (t *BSTTable[K, V]) Max() (K, bool) {
	if t.root == nil {
		var zero K

		return zero, false
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}

	return n.key, true
}

// Floor returns the largest key ≤ key; the second result is false when
// every key is larger. Going left can only shrink keys, so the last
// node passed while going right is the running floor candidate.
func (t *BSTTable[K, V]) Floor(key K) (K, bool) {
	var (
		best    K
		haveOne bool
	)
	for n := t.root; n != nil; {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			best, haveOne = n.key, true
			n = n.right
		default:
			return n.key, true
		}
	}

	return best, haveOne
}

// Ceil returns the smallest key ≥ key; the second result is false when
// every key is smaller.
func (t *BSTTable[K, V]) Ceil(key K) (K, bool) {
	var (
		best    K
		haveOne bool
	)
	for n := t.root; n != nil; {
		switch {
		case key < n.key:
			best, haveOne = n.key, true
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return n.key, true
		}
	}

	return best, haveOne
}

// Keys returns every key in ascending order via an iterative in-order
// traversal. The result is a fresh slice.
func (t *BSTTable[K, V]) Keys() []K {
	keys := make([]K, 0, t.size)
	var stack []*bstNode[K, V]
	n := t.root
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.left
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		keys = append(keys, n.key)
		n = n.right
	}

	return keys
}
