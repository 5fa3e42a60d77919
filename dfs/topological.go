package dfs

import (
	"iter"

	"github.com/katalvlaran/algods/core"
)

// TopologicalSort orders the vertices of a directed acyclic graph by
// depth-first finish time. Running it on a graph with a cycle is
// undefined: the sort still produces a permutation of the vertices, but
// no linear extension exists for it to agree with.
type TopologicalSort[V core.VertexID] struct {
	finished []V
	marked   []bool
}

// NewTopologicalSort prepares an empty sort for a graph of n vertices.
// Call DepthFirstOrder before querying.
func NewTopologicalSort[V core.VertexID](n int) *TopologicalSort[V] {
	return &TopologicalSort[V]{marked: make([]bool, n)}
}

// DepthFirstOrder sweeps every vertex of g in ascending id order,
// appending each to the finish sequence once its descendants are done.
// g must have exactly the vertex count the sort was sized for.
func (t *TopologicalSort[V]) DepthFirstOrder(g core.VertexInfo[V]) {
	n := g.VertexCount()
	for v := 0; v < n; v++ {
		if !t.marked[v] {
			t.finished = Postorder(g, t.marked, t.finished, V(v))
		}
	}
}

// ReversePostorder returns the vertices in depth-first finish order,
// first finished first. Reading it back to front yields a topological
// order; Order does exactly that. The slice is owned by the sort and
// must not be mutated.
func (t *TopologicalSort[V]) ReversePostorder() []V {
	return t.finished
}

// Order yields a topological order of the graph, one vertex at a time,
// without materializing the reversed sequence.
func (t *TopologicalSort[V]) Order() iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := len(t.finished) - 1; i >= 0; i-- {
			if !yield(t.finished[i]) {
				return
			}
		}
	}
}
