// SPDX-License-Identifier: MIT
// Package: dynagraph/temporal
//
// slice.go - time-bounded sub-graph reconstruction.
//
// Contract:
//   - Selection per edge is plain closed-range intersection
//     {x ∈ times : tFrom ≤ x ≤ tTo}, located by lower-bound search, so
//     an edge whose first in-window timestamp lies above tFrom is still
//     captured (partial overlaps, gaps from repeated appear/vanish
//     cycles, and self-loops need no special cases).
//   - The result is a fresh DynGraph rebuilt through AddEdge; mutating
//     it never affects the source.

package temporal

// TimeSlice returns a new DynGraph containing, for every edge, exactly
// the timestamps that fall in the closed range [tFrom, tTo]. Edges with
// no timestamp in the range are skipped. Returns ErrInvalidInterval
// when tFrom > tTo.
// Complexity: O(E·(log n + k)) for k selected ids per edge.
func (g *DynGraph) TimeSlice(tFrom, tTo int64) (*DynGraph, error) {
	if tFrom > tTo {
		return nil, ErrInvalidInterval
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	h := NewDynGraph()
	for _, e := range g.topo.EdgeList() {
		selected := e.Rec.Times.Range(tFrom, tTo)
		if len(selected) == 0 {
			continue // no overlap with the window
		}
		if err := h.AddEdge(e.U, e.V, selected...); err != nil {
			return nil, err
		}
	}

	return h, nil
}

// Slice returns the single-snapshot slice, TimeSlice(t, t).
func (g *DynGraph) Slice(t int64) (*DynGraph, error) {
	return g.TimeSlice(t, t)
}
