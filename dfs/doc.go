// Package dfs provides depth-first search over any core.VertexInfo graph
// in three flavors, plus the topological sort built on the postorder one.
//
// What
//
//   - Paths: records tree edges into a predecessor slice, answering
//     "how do I get from the origin to X".
//   - Component: stamps every vertex reachable from the origin with one
//     component label. The connectivity package sweeps it over all
//     vertices.
//   - Postorder: appends each vertex once all its descendants are done.
//     TopologicalSort and the strong-components pass are built on it.
//   - DepthFirstSearch: a per-origin wrapper over Paths answering PathTo.
//   - TopologicalSort: a full-graph sweep exposing the finish order and a
//     lazily reversed topological Order.
//
// Why
//
//	One traversal, three bookkeeping modes. Keeping the primitives
//	separate keeps each caller's intent visible instead of threading mode
//	flags through a single function.
//
// Determinism
//
//	All three walk neighbors in the ascending order VertexInfo
//	guarantees, with an explicit stack replaying exactly the recursive
//	visit order, so trees, labels and postorders are reproducible.
//
// Complexity (V = vertices, E = edges)
//
//   - Time:   O(V + E) per sweep.
//   - Memory: O(V) for the stack and marks.
package dfs
