// Package rope implements an immutable, persistent byte rope (Rope).
//
// A Rope represents a sequence of bytes as a DAG of small nodes: literals
// owning flat buffers, concatenations, and repetitions. It is significantly
// more efficient than a flat []byte for large sequences built by repeated
// concatenation, repetition or sub-range extraction.
//
// Features:
//   - Immutable: every operation returns a new Rope, sharing unchanged
//     structure with the original.
//   - Concurrent: safe for concurrent readers without locks. Thread-safe
//     `Handle` for atomic updates.
//   - Efficient: O(1) Concat and Repeat, O(log N) indexing, structural
//     sharing on Slice; materialization only on demand.
//   - Compact repetitions: Repeat(n) is one node for any n, and slicing a
//     repetition never expands it.
//   - Flexible: pluggable balancing strategies (Fibonacci, AVL) through the
//     Builder.
//   - IO-friendly: implements io.WriterTo and json.Marshaler.
//
// The sequence is raw bytes; the package attaches no text semantics.
package rope
