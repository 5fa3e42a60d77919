// Package algods is a teaching-grade collection of classic algorithms and
// data structures, centered on a generic graph processing toolkit.
//
// 🚀 What is algods?
//
//	A small, dependency-light library that brings together:
//		• Core graph types: directed, undirected, edge-weighted, flow networks —
//		  adjacency lists over dense unsigned vertex ids
//		• Traversals: DFS (paths, component labels, postorder) and BFS
//		• Ordering: topological sort via reverse postorder
//		• Connectivity: weak components and Kosaraju strong components
//		• Shortest paths: Dijkstra, DAG relaxation, Bellman–Ford, SPFA
//		• Max flow: Ford–Fulkerson with BFS augmenting paths (Edmonds–Karp)
//		• Companions: queues, priority queue, symbol tables, sorting,
//		  binary search, run-length bit compression, small I/O helpers
//
// ✨ Why choose algods?
//
//   - Dense & generic – vertex ids are any unsigned integer type; arrays,
//     not maps, back every per-vertex table
//   - Predictable – neighbor iteration is sorted, results are reproducible
//   - Honest error model – programmer errors panic, absent values return
//     a comma-ok, algorithmic preconditions are documented rather than
//     silently "fixed"
//   - Pure Go – no cgo
//
// Everything is organized under focused subpackages:
//
//	core/         — Digraph, Graph, WeightedDigraph, FlowNetwork + contracts
//	bfs/, dfs/    — traversal primitives and path/search objects
//	connectivity/ — weak and strong components
//	shortestpath/ — the four single-source algorithms over shared state
//	flow/         — Ford–Fulkerson max flow
//	queue/, pqueue/, table/, sorting/, searching/, compression/, utils/
//
// Quick ASCII example:
//
//	    0──▶1
//	    │
//	    ▼
//	    2──▶3──▶4
//
//	a five-vertex DAG; its unique reverse postorder from a full DFS
//	sweep is a valid topological order reversed.
//
// Dive into each package's doc.go for complexity notes and usage.
package algods
