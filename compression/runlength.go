package compression

import (
	"os"

	"github.com/bits-and-blooms/bitset"
)

// RunLength holds a bit sequence for run-length coding. The underlying
// bitset has no notion of logical length, so the structure carries its
// own.
type RunLength struct {
	bits *bitset.BitSet
	n    uint
}

// New creates an empty bit sequence.
func New() *RunLength {
	return &RunLength{bits: bitset.New(0)}
}

// FromBitSet wraps the first n bits of b as a sequence. The bitset is
// retained, not copied.
func FromBitSet(b *bitset.BitSet, n uint) *RunLength {
	return &RunLength{bits: b, n: n}
}

// FromFile reads a file and returns its content as a bit sequence,
// least significant bit of each byte first.
func FromFile(path string) (*RunLength, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	r := New()
	for _, b := range data {
		for i := 0; i < 8; i++ {
			r.Push(b&(1<<i) != 0)
		}
	}

	return r, nil
}

// Push appends one bit.
func (r *RunLength) Push(bit bool) {
	r.bits.SetTo(r.n, bit)
	r.n++
}

// Len reports the number of bits held.
func (r *RunLength) Len() uint { return r.n }

// IsEmpty reports whether the sequence holds no bits.
func (r *RunLength) IsEmpty() bool { return r.n == 0 }

// Bits returns the backing bitset. Only the first Len bits are
// meaningful.
func (r *RunLength) Bits() *bitset.BitSet { return r.bits }

// Bit returns the bit at position k. Panics if k is past the end.
func (r *RunLength) Bit(k uint) bool {
	if k >= r.n {
		panic("compression: bit index out of range")
	}

	return r.bits.Test(k)
}

// Compress returns the alternating run counts of the sequence together
// with its bit length. Even positions count zeros, odd positions count
// ones; a sequence opening with a one gets a leading zero-length run.
// An empty sequence compresses to no runs.
func (r *RunLength) Compress() ([]uint, uint) {
	if r.n == 0 {
		return nil, 0
	}
	var runs []uint
	current := r.bits.Test(0)
	if current {
		runs = append(runs, 0)
	}
	var run uint
	for k := uint(0); k < r.n; k++ {
		if r.bits.Test(k) == current {
			run++

			continue
		}
		runs = append(runs, run)
		run = 1
		current = !current
	}
	runs = append(runs, run)

	return runs, r.n
}

// Expand rebuilds the bit sequence described by alternating run counts,
// zeros first. capacity sizes the backing bitset up front and may be
// zero.
func Expand(runs []uint, capacity uint) *RunLength {
	r := &RunLength{bits: bitset.New(capacity)}
	for i, run := range runs {
		bit := i%2 == 1
		for j := uint(0); j < run; j++ {
			r.Push(bit)
		}
	}

	return r
}
