// Package searching provides binary search over ascending slices,
// generic over any ordered element type.
package searching
