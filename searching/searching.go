package searching

import (
	"golang.org/x/exp/constraints"
)

// BinarySearch returns a position of target in the ascending slice
// items; the second result is false when target is absent. With
// duplicates any matching position may be returned. Behavior on an
// unsorted slice is undefined.
func BinarySearch[T constraints.Ordered](items []T, target T) (int, bool) {
	lo, hi := 0, len(items)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch {
		case items[mid] < target:
			lo = mid + 1
		case items[mid] > target:
			hi = mid - 1
		default:
			return mid, true
		}
	}

	return 0, false
}
