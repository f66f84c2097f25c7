// SPDX-License-Identifier: MIT
// Package: dynagraph/temporal
//
// mutate.go - edge insertion and removal.
//
// Contract:
//   - Every mutation updates timestamp set, event log, and counters
//     under one write-lock critical section.
//   - Counters are derived: incremented only for ids NEWLY inserted
//     into an edge's timestamp set, decremented on actual removal,
//     pruned at zero. Invariant: counters[t] == |{edges : t ∈ times}|.
//   - The log is a call audit: one "+" entry per supplied appearance id
//     per call (even when the id was already present), one "-" entry at
//     the vanishing id when given. Removals do not append log entries.

package temporal

// AddEdge records the edge (u,v) as present at each given appearance
// snapshot. Missing endpoints are created automatically; repeated ids
// merge into the existing timestamp set without duplication.
// Returns ErrMissingTimestamp when no appearance id is supplied, or
// core.ErrEmptyVertexID for an empty endpoint.
// Complexity: O(k·log n) for k appearance ids.
func (g *DynGraph) AddEdge(u, v string, appear ...int64) error {
	if len(appear) == 0 {
		return ErrMissingTimestamp
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addEdgeLocked(u, v, appear, nil)
}

// AddEdgeSpan records the edge (u,v) as continuously present over the
// half-open span [appear, vanish): every snapshot in the span joins the
// timestamp set, one "+" entry is logged at appear and one "-" entry at
// vanish. Returns ErrInvalidVanishing when vanish ≤ appear.
// Complexity: O((vanish-appear)·log n).
func (g *DynGraph) AddEdgeSpan(u, v string, appear, vanish int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addEdgeLocked(u, v, []int64{appear}, &vanish)
}

// AddEdgeInterval is the multi-appearance form of AddEdgeSpan: all ids
// in appear join the set, plus the span [max(appear), vanish).
// Returns ErrMissingTimestamp when appear is empty and
// ErrInvalidVanishing when vanish ≤ max(appear).
func (g *DynGraph) AddEdgeInterval(u, v string, appear []int64, vanish int64) error {
	if len(appear) == 0 {
		return ErrMissingTimestamp
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addEdgeLocked(u, v, appear, &vanish)
}

// addEdgeLocked performs the three-structure update. Caller holds g.mu.
func (g *DynGraph) addEdgeLocked(u, v string, appear []int64, vanish *int64) error {
	maxAppear := appear[0]
	for _, t := range appear[1:] {
		if t > maxAppear {
			maxAppear = t
		}
	}
	if vanish != nil && *vanish <= maxAppear {
		return ErrInvalidVanishing
	}

	rec, err := g.topo.EnsureEdge(u, v)
	if err != nil {
		return err
	}

	// Timestamp set + derived counters: count first insertions only.
	for _, t := range appear {
		if rec.Times.Add(t) {
			g.counters[t]++
		}
	}
	if vanish != nil {
		for _, t := range rec.Times.AddSpan(maxAppear, *vanish) {
			g.counters[t]++
		}
	}

	// Call-audit log: one "+" per supplied id, in call order.
	for _, t := range appear {
		g.log[t] = append(g.log[t], event{u: u, v: v, op: OpAppear})
	}
	if vanish != nil {
		g.log[*vanish] = append(g.log[*vanish], event{u: u, v: v, op: OpVanish})
	}

	return nil
}

// AddEdgesFrom records every pair as present at snapshot t, in order.
// The first failing pair aborts the call; earlier pairs stay applied.
func (g *DynGraph) AddEdgesFrom(pairs []Pair, t int64) error {
	for _, p := range pairs {
		if err := g.AddEdge(p.U, p.V, t); err != nil {
			return err
		}
	}

	return nil
}

// RemoveEdge deletes the edge (u,v) entirely: every timestamp, both
// adjacency directions, in one atomic step. Counters shed the edge's
// whole contribution. Returns ErrEdgeNotFound if the pair has no record.
// Complexity: O(|times|·log n).
func (g *DynGraph) RemoveEdge(u, v string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	rec, ok := g.topo.EdgeRecordOf(u, v)
	if !ok {
		return ErrEdgeNotFound
	}
	for _, t := range rec.Times.Values() {
		g.dropCounterLocked(t)
	}

	return g.topo.RemoveEdge(u, v)
}

// RemoveEdgeAt deletes snapshot t from the edge's timestamp set, if
// present; when the set empties, the record itself is removed from both
// adjacency directions. An absent t on an existing edge is a no-op.
// Returns ErrEdgeNotFound if the pair has no record.
// Complexity: O(log n).
func (g *DynGraph) RemoveEdgeAt(u, v string, t int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	rec, ok := g.topo.EdgeRecordOf(u, v)
	if !ok {
		return ErrEdgeNotFound
	}
	if !rec.Times.Remove(t) {
		return nil // t was never present on this edge
	}
	g.dropCounterLocked(t)
	if rec.Times.Len() == 0 {
		return g.topo.RemoveEdge(u, v)
	}

	return nil
}

// dropCounterLocked decrements counters[t] and prunes the key at zero.
// Caller holds g.mu.
func (g *DynGraph) dropCounterLocked(t int64) {
	if g.counters[t]--; g.counters[t] <= 0 {
		delete(g.counters, t)
	}
}

// RemoveEdgesFrom deletes every listed edge entirely, in order.
// Policy: fail-fast — the first missing pair aborts with
// ErrEdgeNotFound; pairs removed before it stay removed.
func (g *DynGraph) RemoveEdgesFrom(pairs []Pair) error {
	for _, p := range pairs {
		if err := g.RemoveEdge(p.U, p.V); err != nil {
			return err
		}
	}

	return nil
}

// RemoveEdgesFromAt deletes snapshot t from every listed edge, with the
// same fail-fast policy as RemoveEdgesFrom.
func (g *DynGraph) RemoveEdgesFromAt(pairs []Pair, t int64) error {
	for _, p := range pairs {
		if err := g.RemoveEdgeAt(p.U, p.V, t); err != nil {
			return err
		}
	}

	return nil
}
