// SPDX-License-Identifier: MIT
// Package: dynagraph/timeset
//
// timeset.go - the Set type: an ordered, deduplicated collection of
// int64 snapshot ids backed by a generic B-tree.
//
// Contract:
//   - Values are strictly increasing with no duplicates (tree invariant).
//   - Add/AddSpan report first insertions so derived counters stay exact.
//   - Range/AscendFrom use lower-bound positioning, never exact-match.

package timeset

import "github.com/tidwall/btree"

// snapshotLess orders snapshot ids ascending.
func snapshotLess(a, b int64) bool { return a < b }

// Set is an ordered set of snapshot ids.
//
// The zero value is not usable; construct with New or From.
type Set struct {
	tree *btree.BTreeG[int64]
}

// New returns an empty Set.
// Complexity: O(1).
func New() *Set {
	return &Set{tree: btree.NewBTreeG[int64](snapshotLess)}
}

// From returns a Set holding the given ids, deduplicated.
// Complexity: O(k·log k).
func From(ids ...int64) *Set {
	s := New()
	for _, t := range ids {
		s.tree.Set(t)
	}
	return s
}

// Add inserts t and reports whether it was newly inserted
// (false means t was already present).
// Complexity: O(log n).
func (s *Set) Add(t int64) bool {
	_, replaced := s.tree.Set(t)
	return !replaced
}

// AddSpan inserts every id in the half-open span [from, to) and returns
// the ids that were newly inserted, in ascending order. An empty or
// inverted span inserts nothing.
// Complexity: O((to-from)·log n).
func (s *Set) AddSpan(from, to int64) []int64 {
	var fresh []int64
	for t := from; t < to; t++ {
		if s.Add(t) {
			fresh = append(fresh, t)
		}
	}
	return fresh
}

// Remove deletes t and reports whether it was present.
// Complexity: O(log n).
func (s *Set) Remove(t int64) bool {
	_, deleted := s.tree.Delete(t)
	return deleted
}

// Contains reports whether t is in the set.
// Complexity: O(log n).
func (s *Set) Contains(t int64) bool {
	_, ok := s.tree.Get(t)
	return ok
}

// Len returns the number of ids in the set. O(1).
func (s *Set) Len() int { return s.tree.Len() }

// Min returns the smallest id, or ok=false when the set is empty.
func (s *Set) Min() (int64, bool) { return s.tree.Min() }

// Max returns the largest id, or ok=false when the set is empty.
func (s *Set) Max() (int64, bool) { return s.tree.Max() }

// Values returns all ids in ascending order.
// Complexity: O(n).
func (s *Set) Values() []int64 {
	out := make([]int64, 0, s.tree.Len())
	s.tree.Scan(func(t int64) bool {
		out = append(out, t)
		return true
	})
	return out
}

// Range returns the ids in the closed range [from, to], ascending.
// The scan starts at the first id ≥ from (lower bound), so a missing
// exact lower endpoint never hides later overlapping ids.
// Complexity: O(log n + k).
func (s *Set) Range(from, to int64) []int64 {
	var out []int64
	s.tree.Ascend(from, func(t int64) bool {
		if t > to {
			return false
		}
		out = append(out, t)
		return true
	})
	return out
}

// AscendFrom calls fn for every id ≥ pivot in ascending order until fn
// returns false.
// Complexity: O(log n + k).
func (s *Set) AscendFrom(pivot int64, fn func(t int64) bool) {
	s.tree.Ascend(pivot, fn)
}

// Clone returns an independent copy of the set.
// Complexity: O(1) amortized (copy-on-write tree clone).
func (s *Set) Clone() *Set {
	return &Set{tree: s.tree.Copy()}
}
