// Package rangespace materializes a finite range space: for a fixed point set
// P and range collection R, the subset of P each range contains.
//
// Representation:
//
//   - Points are identified by their index in the slice the Space was built
//     from. Every subset handled by the builders (nets, halves, blocks,
//     hitting sets) is a []int of such indices.
//   - Each range's members are kept in a roaring bitmap, index-aligned with R.
//   - An inverse index maps every point to the sorted ranges containing it, which
//     is what the incremental discrepancy and greedy coverage loops iterate.
//
// A Space is read-only after Build and safe for concurrent readers. Builders
// that shrink their working set keep using the original Space; Restrict gives
// the recomputed alternative.
//
// Complexity of Build: O(|R|·|P|) predicate evaluations; no spatial index.
package rangespace
