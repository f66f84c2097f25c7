// Package timeset provides an ordered, deduplicated set of snapshot
// identifiers — the per-edge "timestamp set" of a temporal graph.
//
// What:
//
//   - Set stores int64 snapshot ids in a B-tree, strictly increasing,
//     no duplicates.
//   - Add / AddSpan report which ids were newly inserted, so callers can
//     derive aggregate counters from actual set transitions instead of
//     raw call counts.
//   - Range and AscendFrom expose lower-bound ("first id ≥ pivot")
//     iteration for time-slice reconstruction.
//
// Why:
//
//   - Long-lived edges accumulate thousands of snapshots; membership and
//     range extraction must stay O(log n), not linear.
//   - Interval semantics (appear → vanish) need bulk span insertion with
//     precise first-insertion reporting.
//
// Complexity:
//
//   - Add, Remove, Contains: O(log n).
//   - AddSpan(from, to): O((to-from)·log n).
//   - Range, Values: O(log n + k) where k is the result size.
//
// Concurrency:
//
//   - A Set is NOT self-synchronized; the owning graph serializes access.
package timeset
