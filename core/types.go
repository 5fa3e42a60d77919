// Package core: capability contracts shared by every graph representation
// and algorithm package.
//
// This file declares the VertexID and Weight bounds, their reserved
// sentinels, the minimal VertexInfo read surface, and the internal
// range-check helpers.
package core

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// VertexID is the capability contract for vertex identifiers: any unsigned
// integer type. Valid identifiers are dense positions in
// [0, VertexCount); conversion to and from int is lossless in that range.
// The all-ones value (MaxVertexID) is reserved as the "no vertex yet"
// sentinel in predecessor arrays and must never name a real vertex, which
// is why graph growth panics before reaching it.
type VertexID interface {
	constraints.Unsigned
}

// Weight is the capability contract for edge weights, distances and
// flow/capacity quantities: any unsigned integer type. The zero value is
// the additive identity; the all-ones value (MaxWeight) is reserved as
// the "unreachable" distance sentinel.
type Weight interface {
	constraints.Unsigned
}

// MaxVertexID returns the reserved sentinel of V: its largest
// representable value.
func MaxVertexID[V VertexID]() V {
	var zero V

	return ^zero
}

// MaxWeight returns the reserved sentinel of W: its largest representable
// value.
func MaxWeight[W Weight]() W {
	var zero W

	return ^zero
}

// VertexInfo is the minimal read surface a traversal needs from a graph:
// the number of vertices and the out-neighbors of one vertex. Digraph,
// Graph and WeightedDigraph all implement it, so DFS/BFS and everything
// layered on them run unchanged over any of the three.
type VertexInfo[V VertexID] interface {
	// Neighbors returns the out-neighbors of v in ascending order.
	// For a weighted multigraph a destination may appear once per
	// distinct parallel edge.
	Neighbors(v V) []V

	// VertexCount reports the number of vertices.
	VertexCount() int
}

// checkEndpoint panics when v is not a valid position in [0, n).
// Precondition violations are programmer errors, not runtime conditions.
func checkEndpoint[V VertexID](v V, n int) {
	if uint64(v) >= uint64(n) {
		panic(fmt.Sprintf("core: vertex %d out of range [0,%d)", uint64(v), n))
	}
}

// checkGrowth panics when growing a graph to size n would collide with
// the id type's sentinel; silent wraparound would corrupt every
// predecessor table built later.
func checkGrowth[V VertexID](n int) {
	if uint64(n) >= uint64(MaxVertexID[V]()) {
		panic(fmt.Sprintf("core: %d vertices not representable by the vertex id type (max %d)",
			n, uint64(MaxVertexID[V]())))
	}
}
