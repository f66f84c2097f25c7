// SPDX-License-Identifier: MIT
// Package temporal_test: chronological streaming and aggregate
// snapshot-counter contracts, including the two-path reference scenario.
package temporal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dynagraph/temporal"
)

// TestStreamEdges_Scenario locks in the reference behavior: two paths,
// one snapshot apart, replayed in exact call order.
func TestStreamEdges_Scenario(t *testing.T) {
	g := pathGraph(t) // 0–1–2–3 at t=0, 3–4–5–6 at t=1

	assert.Equal(t, []temporal.Interaction{
		{U: "0", V: "1", Op: temporal.OpAppear, Time: 0},
		{U: "1", V: "2", Op: temporal.OpAppear, Time: 0},
		{U: "2", V: "3", Op: temporal.OpAppear, Time: 0},
		{U: "3", V: "4", Op: temporal.OpAppear, Time: 1},
		{U: "4", V: "5", Op: temporal.OpAppear, Time: 1},
		{U: "5", V: "6", Op: temporal.OpAppear, Time: 1},
	}, g.Interactions())

	assert.Equal(t, []int64{0, 1}, g.TemporalSnapshots())

	n, err := g.NumberOfInteractions(0)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

// TestStreamEdges_Ordering verifies the two ordering guarantees:
// ascending snapshot ids, and within a snapshot, original call order —
// regardless of the order snapshots were recorded in.
func TestStreamEdges_Ordering(t *testing.T) {
	g := temporal.NewDynGraph()
	require.NoError(t, g.AddEdge("A", "B", 5))
	require.NoError(t, g.AddEdge("C", "D", 1))
	require.NoError(t, g.AddEdge("E", "F", 5))
	require.NoError(t, g.AddEdgeSpan("G", "H", 2, 4))

	its := g.Interactions()
	require.Len(t, its, 5)
	for i := 1; i < len(its); i++ {
		assert.LessOrEqual(t, its[i-1].Time, its[i].Time, "snapshot ids non-decreasing")
	}
	// Within t=5, call order is preserved.
	assert.Equal(t, temporal.Interaction{U: "A", V: "B", Op: temporal.OpAppear, Time: 5}, its[3])
	assert.Equal(t, temporal.Interaction{U: "E", V: "F", Op: temporal.OpAppear, Time: 5}, its[4])
	// The vanish entry lands at its own snapshot.
	assert.Equal(t, temporal.Interaction{U: "G", V: "H", Op: temporal.OpVanish, Time: 4}, its[2])
}

// TestStreamEdges_EarlyStop verifies lazy consumption: returning false
// halts iteration.
func TestStreamEdges_EarlyStop(t *testing.T) {
	g := pathGraph(t)

	var seen int
	g.StreamEdges(func(temporal.Interaction) bool {
		seen++
		return seen < 2
	})
	assert.Equal(t, 2, seen)
}

// TestStreamEdges_Restartable verifies that consecutive replays yield
// identical streams (pure read, never consumed).
func TestStreamEdges_Restartable(t *testing.T) {
	g := pathGraph(t)

	first := g.Interactions()
	second := g.Interactions()
	assert.Equal(t, first, second)
}

// TestNumberOfInteractions verifies counter lookups and the sentinel
// for unrecorded snapshots.
func TestNumberOfInteractions(t *testing.T) {
	g := pathGraph(t)

	n, err := g.NumberOfInteractions(1)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = g.NumberOfInteractions(7)
	assert.ErrorIs(t, err, temporal.ErrSnapshotNotFound)

	counts := g.InteractionCounts()
	assert.Equal(t, map[int64]int{0: 3, 1: 3}, counts)

	// The returned mapping is a copy, not a window into the graph.
	counts[0] = 99
	n, err = g.NumberOfInteractions(0)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

// TestStream_EmptyGraph verifies the degenerate cases.
func TestStream_EmptyGraph(t *testing.T) {
	g := temporal.NewDynGraph()

	assert.Empty(t, g.Interactions())
	assert.Empty(t, g.TemporalSnapshots())
	_, err := g.NumberOfInteractions(0)
	assert.ErrorIs(t, err, temporal.ErrSnapshotNotFound)
}
