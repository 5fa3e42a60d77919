// Package sorting provides four classic in-place comparison sorts,
// generic over any ordered element type.
//
// What
//
//   - Insertion: O(n²) worst case, O(n) on nearly sorted input, stable.
//   - Merge: O(n log n) always, stable, O(n) auxiliary space.
//   - Quick: O(n log n) expected with middle-element pivots, in place.
//   - Heap: O(n log n) worst case, in place, not stable.
//
// All four sort ascending; wrap elements to invert the order.
package sorting
