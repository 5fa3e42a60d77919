package table

// UnorderedTable is a hash-map backed symbol table. Point operations
// are expected O(1); there are no ordered queries.
// The zero value is not usable; call NewUnorderedTable.
type UnorderedTable[K comparable, V any] struct {
	items map[K]V
}

// NewUnorderedTable creates an empty table.
func NewUnorderedTable[K comparable, V any]() *UnorderedTable[K, V] {
	return &UnorderedTable[K, V]{items: make(map[K]V)}
}

// Len reports the number of pairs held.
func (t *UnorderedTable[K, V]) Len() int { return len(t.items) }

// IsEmpty reports whether the table holds no pairs.
func (t *UnorderedTable[K, V]) IsEmpty() bool { return len(t.items) == 0 }

// Put associates value with key, replacing the previous value when the
// key is already present.
func (t *UnorderedTable[K, V]) Put(key K, value V) {
	t.items[key] = value
}

// Get returns the value associated with key; the second result is false
// when the key is absent.
func (t *UnorderedTable[K, V]) Get(key K) (V, bool) {
	value, found := t.items[key]

	return value, found
}

// Contains reports whether key is present.
func (t *UnorderedTable[K, V]) Contains(key K) bool {
	_, found := t.items[key]

	return found
}

// Delete removes key and returns the value it held; the second result
// is false when the key is absent.
func (t *UnorderedTable[K, V]) Delete(key K) (V, bool) {
	value, found := t.items[key]
	if found {
		delete(t.items, key)
	}

	return value, found
}
