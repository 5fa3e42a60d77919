// Package connectivity answers "are v and w connected" in constant time
// after one linear preprocessing pass.
//
// What
//
//   - ConnectedComponents: weak components of an undirected Graph. One
//     depth-first sweep labels every vertex with the smallest vertex id
//     of its component.
//   - StrongComponents: strongly connected components of a Digraph via
//     Kosaraju's two-pass scheme. The first pass computes depth-first
//     finish times on the reversed graph; the second labels components
//     on the original, seeded in reverse finish order.
//
// Why
//
//	Reachability queries repeat; the traversal that answers them should
//	not. Both structures pay O(V + E) once and O(1) per Connected call.
//
// Determinism
//
//	Sweeps run in ascending vertex id order over ascending neighbor
//	lists, so labels and counts are reproducible.
package connectivity
