// Package compression provides run-length encoding of bit sequences.
//
// What
//
//   - RunLength: an append-only bit sequence with an explicit length,
//     backed by a bitset.
//   - Compress turns the sequence into alternating run counts, zeros
//     first: when the sequence opens with a one a zero-length run is
//     emitted so positions always mean "even index counts zeros".
//   - Expand inverts Compress exactly.
//
// Why
//
//	Long same-bit runs, as in sparse adjacency dumps or scanned images,
//	shrink to a handful of counters while short mixed input degrades
//	gracefully to one counter per run.
package compression
