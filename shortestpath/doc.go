// Package shortestpath computes single-source shortest paths over a
// core.WeightedDigraph with a choice of four relaxation strategies
// behind one query surface.
//
// What
//
//   - Dijkstra: binary-heap label setting. The workhorse for general
//     digraphs with unsigned weights.
//   - DAGRelax: one relaxation pass in topological order. Linear time,
//     meaningful only on acyclic graphs.
//   - BellmanFord: up to V-1 edge sweeps with early exit once a sweep
//     changes nothing.
//   - SPFA: Bellman-Ford restricted to a work queue of recently improved
//     vertices, with the small-label-first ordering heuristic.
//
// All four fill the same distance and predecessor tables, so DistTo,
// EdgeTo and PathTo behave identically whatever the strategy.
//
// Why
//
//	The strategies trade generality for speed: DAGRelax is O(V+E) but
//	needs acyclicity, Dijkstra is O(E log V) always, BellmanFord and
//	SPFA are O(VE) worst case but sweep-free on already-settled regions.
//	Keeping them behind one type makes them interchangeable in callers
//	and directly comparable in tests.
//
// Determinism
//
//	Edges relax in the ascending (To, Weight) order the graph
//	guarantees and the heap breaks distance ties by vertex id, so the
//	predecessor tree is reproducible even when several shortest paths
//	tie.
//
// Undefined inputs
//
//	Weights are unsigned, so negative cycles cannot exist. Distances
//	that would exceed the weight type's sentinel overflow silently;
//	DAGRelax on a cyclic graph relaxes in a non-linear order. Neither
//	is detected.
package shortestpath
