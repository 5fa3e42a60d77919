// Package bfs provides breadth-first search over any core.VertexInfo
// graph, producing reachability marks and a shortest-edge-count
// predecessor tree rooted at one origin.
//
// What
//
//   - BFS: the raw frontier sweep writing into caller-owned marked and
//     edgeTo slices.
//   - BreadthFirstSearch: a per-origin wrapper that owns those slices and
//     answers PathTo queries as origin-rooted paths.
//
// Why
//
//   - Unweighted shortest paths in O(V + E).
//   - The augmenting-path search inside the max-flow package is the same
//     sweep over residual edges.
//
// Determinism
//
//	Neighbors are visited in the ascending order VertexInfo guarantees,
//	so the traversal and every reported path are reproducible run to run.
//
// Complexity (V = vertices, E = edges)
//
//   - Time:   O(V + E), each vertex enqueued at most once.
//   - Memory: O(V) for the frontier, marks and predecessor tree.
package bfs
