package bfs

import (
	"github.com/katalvlaran/algods/core"
	"github.com/katalvlaran/algods/queue"
)

// BFS runs one breadth-first sweep over g from source, recording
// reachability in marked and tree edges in edgeTo. Both slices are
// caller-owned and must be at least g.VertexCount() long; marked entries
// already true are treated as visited, which lets repeated calls share
// one pair of slices across sources.
func BFS[V core.VertexID](g core.VertexInfo[V], marked []bool, edgeTo []V, source V) {
	frontier := queue.NewQueue[V](g.VertexCount())
	marked[source] = true
	frontier.Enqueue(source)

	for {
		v, ok := frontier.Dequeue()
		if !ok {
			break
		}
		for _, w := range g.Neighbors(v) {
			if marked[w] {
				continue
			}
			marked[w] = true
			edgeTo[w] = v
			frontier.Enqueue(w)
		}
	}
}

// BreadthFirstSearch holds the predecessor tree of one breadth-first
// sweep from a fixed origin and answers path queries against it.
type BreadthFirstSearch[V core.VertexID] struct {
	origin V
	marked []bool
	edgeTo []V
}

// NewBreadthFirstSearch prepares an empty search state for a graph of n
// vertices rooted at origin. Call FindPaths before querying.
func NewBreadthFirstSearch[V core.VertexID](n int, origin V) *BreadthFirstSearch[V] {
	return &BreadthFirstSearch[V]{
		origin: origin,
		marked: make([]bool, n),
		edgeTo: make([]V, n),
	}
}

// Origin returns the root of the search tree.
func (b *BreadthFirstSearch[V]) Origin() V { return b.origin }

// FindPaths sweeps g from the origin, filling the reachability marks and
// the predecessor tree. g must have exactly the vertex count the search
// was sized for.
func (b *BreadthFirstSearch[V]) FindPaths(g core.VertexInfo[V]) {
	BFS(g, b.marked, b.edgeTo, b.origin)
}

// HasPathTo reports whether target was reached from the origin.
func (b *BreadthFirstSearch[V]) HasPathTo(target V) bool {
	return b.marked[target]
}

// PathTo returns the tree path from target back to the origin, fewest
// edges first hop last. The second result is false when target is
// unreachable.
func (b *BreadthFirstSearch[V]) PathTo(target V) ([]V, bool) {
	if !b.marked[target] {
		return nil, false
	}
	path := []V{target}
	for v := target; v != b.origin; {
		v = b.edgeTo[v]
		path = append(path, v)
	}

	return path, true
}
