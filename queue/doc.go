// Package queue provides the two FIFO-style containers the traversal and
// relaxation algorithms in this module are built on: a plain Queue and a
// double-ended Deque.
//
// What
//
//   - Queue[T]: enqueue at the back, dequeue at the front. Backs the BFS
//     frontier and the Ford–Fulkerson augmenting-path search.
//   - Deque[T]: additionally push at the front and peek it. Backs SPFA's
//     small-label-first heuristic.
//
// Both are slice-backed with amortized O(1) operations and are not safe
// for concurrent use; every algorithm in this module owns its containers
// exclusively for the duration of one run.
package queue
