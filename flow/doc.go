// Package flow computes the maximum flow of a core.FlowNetwork with the
// Ford-Fulkerson method, Edmonds-Karp flavored: augmenting paths are
// found breadth-first, shortest in edge count first.
//
// What
//
//   - FordFulkerson: repeatedly finds an augmenting path in the residual
//     graph, pushes its bottleneck along it, and stops when the sink is
//     no longer reachable. The value pushed is then the maximum flow and
//     the edges hold one witnessing assignment.
//
// Residual traversal follows forward edges with spare capacity and
// backward edges with cancellable flow, so earlier augmentations can be
// partially undone by later ones.
//
// Complexity (V = vertices, E = edges)
//
//   - Time:   O(V * E * E) with breadth-first augmenting paths.
//   - Memory: O(V) per path search.
//
// Determinism
//
//	Residual edges are scanned in insertion order, forward lists before
//	backward ones, so the sequence of augmenting paths is reproducible.
//	The final per-edge flows depend on that sequence; only the total is
//	canonical.
package flow
