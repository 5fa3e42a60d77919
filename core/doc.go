// Package core defines the vertex-id and weight capability contracts and
// the adjacency-list graph representations every algorithm package builds
// on: Digraph, Graph (undirected), WeightedDigraph, and FlowNetwork.
//
// What
//
//   - VertexID / Weight: generic bounds over unsigned integer types. A
//     vertex id is a dense position in [0, VertexCount); the all-ones
//     value of the type (MaxVertexID, MaxWeight) is reserved as the
//     "unreachable" sentinel and is never a valid id or distance.
//   - Digraph: simple directed graph; AddEdge is idempotent and in-degrees
//     are tracked incrementally.
//   - Graph: simple undirected graph; each edge is recorded symmetrically
//     in both endpoints' neighbor sets, self-loops once.
//   - WeightedDigraph: directed multigraph whose edge sets are keyed by
//     (destination, weight): two parallel edges with different weights
//     are distinct and both retained. This is deliberate; only the
//     unweighted graphs enforce simple-graph semantics.
//   - FlowNetwork: per-vertex forward edge lists plus parallel backward
//     (residual) views of the same FlowEdge records, enabling flow
//     cancellation. Invariant: 0 ≤ flow ≤ capacity on every edge.
//
// Error model
//
//	Out-of-range endpoints, growth past the id type's sentinel, a flow
//	edge inserted with flow > capacity, and AverageDegree on an empty
//	graph are programmer errors: they panic. "Not found" style queries
//	return a comma-ok instead.
//
// Determinism
//
//	Neighbors and Edges return freshly sorted slices, so iteration order
//	is reproducible across runs even though the underlying sets are maps.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - AddEdge, degree queries: O(1) expected (hash-set membership).
//   - Neighbors(v): O(deg(v) log deg(v)) due to sorting on query.
//   - Reverse, InEdges, SelfLoopCount: O(V + E).
//
// Lifecycle: graphs are created empty or pre-sized and only ever grow;
// there is no deletion API.
package core
