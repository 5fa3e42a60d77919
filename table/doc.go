// Package table provides symbol tables mapping keys to values under
// three different trade-offs.
//
// What
//
//   - UnorderedTable: hash-map backed. Fastest point operations, no
//     ordered queries.
//   - OrderedTable: one ascending key slice plus a parallel value slice.
//     Logarithmic lookups, linear inserts, and the full ordered query
//     surface: Min, Max, Floor, Ceil, half-open ranges.
//   - BSTTable: an unbalanced binary search tree. Logarithmic operations
//     on random insertion order, degrading to linear on sorted input; no
//     deletion.
//
// All lookups are comma-ok; Put replaces the value of an existing key
// without growing the table.
//
// Complexity (n = pairs held)
//
//   - UnorderedTable: Put/Get/Delete O(1) expected.
//   - OrderedTable: Get/Floor/Ceil O(log n), Put/Delete O(n),
//     Min/Max O(1).
//   - BSTTable: Put/Get/Floor O(log n) average, O(n) worst case.
package table
