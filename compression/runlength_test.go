package compression_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algods/compression"
)

func pushAll(r *compression.RunLength, bits ...int) {
	for _, b := range bits {
		r.Push(b == 1)
	}
}

// TestCompress_ZeroFirst: even run positions count zeros.
func TestCompress_ZeroFirst(t *testing.T) {
	r := compression.New()
	pushAll(r, 0, 1, 1, 1)

	runs, n := r.Compress()
	assert.Equal(t, []uint{1, 3}, runs)
	assert.Equal(t, uint(4), n)
}

// TestCompress_OneFirst: a leading one forces a zero-length zero run.
func TestCompress_OneFirst(t *testing.T) {
	r := compression.New()
	pushAll(r, 1, 0, 0, 1)

	runs, n := r.Compress()
	assert.Equal(t, []uint{0, 1, 2, 1}, runs)
	assert.Equal(t, uint(4), n)
}

// TestCompress_Empty: no bits, no runs.
func TestCompress_Empty(t *testing.T) {
	r := compression.New()
	assert.True(t, r.IsEmpty())
	runs, n := r.Compress()
	assert.Nil(t, runs)
	assert.Equal(t, uint(0), n)
}

// TestExpand_RoundTrip: Expand inverts Compress bit for bit.
func TestExpand_RoundTrip(t *testing.T) {
	fixtures := [][]int{
		{0, 0, 1, 1, 1},
		{1},
		{0},
		{1, 0, 1, 0, 1},
		{0, 0, 0, 0, 0, 0, 1},
	}
	for _, fixture := range fixtures {
		r := compression.New()
		pushAll(r, fixture...)

		runs, n := r.Compress()
		back := compression.Expand(runs, n)
		require.Equal(t, r.Len(), back.Len(), "%v", fixture)
		for k := uint(0); k < r.Len(); k++ {
			assert.Equal(t, r.Bit(k), back.Bit(k), "%v bit %d", fixture, k)
		}
	}
}

// TestFromFile_BitOrder: bytes expand least significant bit first.
func TestFromFile_BitOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload")
	require.NoError(t, os.WriteFile(path, []byte{0x01, 0x02}, 0o600))

	r, err := compression.FromFile(path)
	require.NoError(t, err)
	require.Equal(t, uint(16), r.Len())

	assert.True(t, r.Bit(0))
	for k := uint(1); k < 9; k++ {
		assert.False(t, r.Bit(k), "bit %d", k)
	}
	assert.True(t, r.Bit(9))

	runs, n := r.Compress()
	back := compression.Expand(runs, n)
	assert.Equal(t, r.Len(), back.Len())
}

// TestFromFile_Missing: a missing path is an error, not a panic.
func TestFromFile_Missing(t *testing.T) {
	_, err := compression.FromFile(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

// TestBit_OutOfRange: reading past the end aborts.
func TestBit_OutOfRange(t *testing.T) {
	r := compression.New()
	r.Push(true)
	assert.Panics(t, func() { r.Bit(1) })
}
