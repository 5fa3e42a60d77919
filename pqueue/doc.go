// Package pqueue provides a slice-backed binary-heap priority queue
// whose orientation, min first or max first, is chosen at construction
// instead of being baked into the element type's ordering.
//
// Complexity: Insert and Delete are O(log n), Peek is O(1).
// Not safe for concurrent use.
package pqueue
