package utils

import (
	"bufio"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/katalvlaran/algods/core"
)

// ReadLines reads a text file into one string per line, newline
// stripped.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("utils: open %s: %w", path, err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("utils: read %s: %w", path, err)
	}

	return lines, nil
}

// RandomVector returns n values drawn uniformly from [0, bound).
// Panics if bound is zero.
func RandomVector[V core.VertexID](n int, bound V) []V {
	if bound == 0 {
		panic("utils: zero bound")
	}
	vec := make([]V, n)
	for i := range vec {
		vec[i] = V(rand.Uint64N(uint64(bound)))
	}

	return vec
}
