package sorting

import (
	"golang.org/x/exp/constraints"
)

// Insertion sorts items ascending by repeated insertion into the sorted
// prefix. Stable.
func Insertion[T constraints.Ordered](items []T) {
	for i := 1; i < len(items); i++ {
		for j := i; j > 0 && items[j] < items[j-1]; j-- {
			items[j], items[j-1] = items[j-1], items[j]
		}
	}
}

// Merge sorts items ascending by recursive halving and merging. Stable,
// allocates one n-sized auxiliary buffer.
func Merge[T constraints.Ordered](items []T) {
	if len(items) < 2 {
		return
	}
	aux := make([]T, len(items))
	mergeSort(items, aux, 0, len(items))
}

// mergeSort sorts items[lo:hi) using aux as scratch.
func mergeSort[T constraints.Ordered](items, aux []T, lo, hi int) {
	if hi-lo < 2 {
		return
	}
	mid := lo + (hi-lo)/2
	mergeSort(items, aux, lo, mid)
	mergeSort(items, aux, mid, hi)
	if items[mid-1] <= items[mid] {
		return
	}
	copy(aux[lo:hi], items[lo:hi])
	i, j := lo, mid
	for k := lo; k < hi; k++ {
		switch {
		case i == mid:
			items[k] = aux[j]
			j++
		case j == hi:
			items[k] = aux[i]
			i++
		case aux[j] < aux[i]:
			items[k] = aux[j]
			j++
		default:
			items[k] = aux[i]
			i++
		}
	}
}

// Quick sorts items ascending by Hoare partitioning around the middle
// element. In place, not stable.
func Quick[T constraints.Ordered](items []T) {
	quickSort(items, 0, len(items)-1)
}

func quickSort[T constraints.Ordered](items []T, lo, hi int) {
	if lo >= hi {
		return
	}
	pivot := items[lo+(hi-lo)/2]
	i, j := lo-1, hi+1
	for {
		for {
			i++
			if items[i] >= pivot {
				break
			}
		}
		for {
			j--
			if items[j] <= pivot {
				break
			}
		}
		if i >= j {
			break
		}
		items[i], items[j] = items[j], items[i]
	}
	quickSort(items, lo, j)
	quickSort(items, j+1, hi)
}

// Heap sorts items ascending by building a max-heap and repeatedly
// moving its root past the shrinking heap boundary. In place, not
// stable.
func Heap[T constraints.Ordered](items []T) {
	n := len(items)
	for k := n/2 - 1; k >= 0; k-- {
		sink(items, k, n)
	}
	for n > 1 {
		n--
		items[0], items[n] = items[n], items[0]
		sink(items, 0, n)
	}
}

// sink restores the max-heap property below position k within items[:n).
func sink[T constraints.Ordered](items []T, k, n int) {
	for {
		child := 2*k + 1
		if child >= n {
			return
		}
		if right := child + 1; right < n && items[right] > items[child] {
			child = right
		}
		if items[k] >= items[child] {
			return
		}
		items[k], items[child] = items[child], items[k]
		k = child
	}
}
