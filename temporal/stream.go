// SPDX-License-Identifier: MIT
// Package: dynagraph/temporal
//
// stream.go - chronological replay of the event log and aggregate
// snapshot queries over the derived counters.

package temporal

import "sort"

// StreamEdges replays every recorded interaction in ascending snapshot
// order; entries within one snapshot keep their original call order.
// Iteration stops early when fn returns false. This is a pure read —
// the log is never mutated — and each call restarts from the beginning.
//
// fn runs under the graph's read lock and must not mutate g.
// Complexity: O(S·logS + L) for S snapshots and L log entries.
func (g *DynGraph) StreamEdges(fn func(Interaction) bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	keys := make([]int64, 0, len(g.log))
	for t := range g.log {
		keys = append(keys, t)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	for _, t := range keys {
		for _, e := range g.log[t] {
			if !fn(Interaction{U: e.u, V: e.v, Op: e.op, Time: t}) {
				return
			}
		}
	}
}

// Interactions materializes the full chronological stream.
func (g *DynGraph) Interactions() []Interaction {
	var out []Interaction
	g.StreamEdges(func(it Interaction) bool {
		out = append(out, it)
		return true
	})

	return out
}

// TemporalSnapshots returns the ascending list of snapshot ids at which
// at least one edge is present.
// Complexity: O(S·logS).
func (g *DynGraph) TemporalSnapshots() []int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int64, 0, len(g.counters))
	for t := range g.counters {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// NumberOfInteractions returns the number of edges present at snapshot
// t. Returns ErrSnapshotNotFound when no edge carries t.
// Complexity: O(1).
func (g *DynGraph) NumberOfInteractions(t int64) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.counters[t]
	if !ok {
		return 0, ErrSnapshotNotFound
	}

	return n, nil
}

// InteractionCounts returns a copy of the full snapshot → edge-count
// mapping.
// Complexity: O(S).
func (g *DynGraph) InteractionCounts() map[int64]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[int64]int, len(g.counters))
	for t, n := range g.counters {
		out[t] = n
	}

	return out
}
