package dfs

import (
	"github.com/katalvlaran/algods/core"
)

// frame is one level of the explicit traversal stack: a vertex, its
// neighbor snapshot and the scan position within it. The snapshot is
// taken once per push so map-backed adjacency is sorted only once.
type frame[V core.VertexID] struct {
	vertex    V
	neighbors []V
	next      int
}

// Paths runs one depth-first sweep over g from origin, recording
// reachability in marked and tree edges in edgeTo. Both slices are
// caller-owned and must be at least g.VertexCount() long; marked entries
// already true are treated as visited.
func Paths[V core.VertexID](g core.VertexInfo[V], marked []bool, edgeTo []V, origin V) {
	marked[origin] = true
	stack := []frame[V]{{vertex: origin, neighbors: g.Neighbors(origin)}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.neighbors) {
			stack = stack[:len(stack)-1]

			continue
		}
		w := top.neighbors[top.next]
		top.next++
		if marked[w] {
			continue
		}
		marked[w] = true
		edgeTo[w] = top.vertex
		stack = append(stack, frame[V]{vertex: w, neighbors: g.Neighbors(w)})
	}
}

// Component stamps every vertex reachable from origin, origin included,
// with the given component label in labels, marking them on the way.
func Component[V core.VertexID](g core.VertexInfo[V], marked []bool, labels []V, origin, component V) {
	marked[origin] = true
	labels[origin] = component
	stack := []frame[V]{{vertex: origin, neighbors: g.Neighbors(origin)}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.neighbors) {
			stack = stack[:len(stack)-1]

			continue
		}
		w := top.neighbors[top.next]
		top.next++
		if marked[w] {
			continue
		}
		marked[w] = true
		labels[w] = component
		stack = append(stack, frame[V]{vertex: w, neighbors: g.Neighbors(w)})
	}
}

// Postorder appends every vertex reachable from origin to postorder in
// the order the traversal finishes them, origin last, and returns the
// grown slice.
func Postorder[V core.VertexID](g core.VertexInfo[V], marked []bool, postorder []V, origin V) []V {
	marked[origin] = true
	stack := []frame[V]{{vertex: origin, neighbors: g.Neighbors(origin)}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.neighbors) {
			postorder = append(postorder, top.vertex)
			stack = stack[:len(stack)-1]

			continue
		}
		w := top.neighbors[top.next]
		top.next++
		if marked[w] {
			continue
		}
		marked[w] = true
		stack = append(stack, frame[V]{vertex: w, neighbors: g.Neighbors(w)})
	}

	return postorder
}

// DepthFirstSearch holds the tree of one depth-first sweep from a fixed
// origin and answers path queries against it. Unlike its breadth-first
// counterpart the reported paths are not shortest, only existent.
type DepthFirstSearch[V core.VertexID] struct {
	origin V
	marked []bool
	edgeTo []V
}

// NewDepthFirstSearch prepares an empty search state for a graph of n
// vertices rooted at origin. Call FindPaths before querying.
func NewDepthFirstSearch[V core.VertexID](n int, origin V) *DepthFirstSearch[V] {
	return &DepthFirstSearch[V]{
		origin: origin,
		marked: make([]bool, n),
		edgeTo: make([]V, n),
	}
}

// Origin returns the root of the search tree.
func (d *DepthFirstSearch[V]) Origin() V { return d.origin }

// FindPaths sweeps g from the origin, filling the reachability marks and
// the tree. g must have exactly the vertex count the search was sized
// for.
func (d *DepthFirstSearch[V]) FindPaths(g core.VertexInfo[V]) {
	Paths(g, d.marked, d.edgeTo, d.origin)
}

// HasPathTo reports whether target was reached from the origin.
func (d *DepthFirstSearch[V]) HasPathTo(target V) bool {
	return d.marked[target]
}

// PathTo returns a tree path from target back to the origin, target
// first origin last. The second result is false when target is
// unreachable.
func (d *DepthFirstSearch[V]) PathTo(target V) ([]V, bool) {
	if !d.marked[target] {
		return nil, false
	}
	path := []V{target}
	for v := target; v != d.origin; {
		v = d.edgeTo[v]
		path = append(path, v)
	}

	return path, true
}
