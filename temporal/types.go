// SPDX-License-Identifier: MIT
// Package: dynagraph/temporal
//
// types.go - declares Op, Interaction, Pair, the DynGraph orchestrator,
// and its constructors (NewDynGraph, Copy).

package temporal

import (
	"sync"

	"github.com/katalvlaran/dynagraph/core"
)

// Op marks the kind of a recorded interaction.
type Op string

const (
	// OpAppear marks an edge-presence entry.
	OpAppear Op = "+"

	// OpVanish marks an edge-vanishing entry.
	OpVanish Op = "-"
)

// Interaction is one entry of the chronological stream: the pair of
// endpoints, the operation, and the snapshot at which it was recorded.
type Interaction struct {
	U, V string
	Op   Op
	Time int64
}

// Pair identifies an unordered edge for bulk operations.
type Pair struct {
	U, V string
}

// event is one in-snapshot log entry; the snapshot id is the log key.
type event struct {
	u, v string
	op   Op
}

// DynGraph is the temporal edge index.
//
// It owns the static topology plus two temporal structures:
//
//   - log:      snapshot id → mutation-call entries in append order
//     (call audit, never deduplicated, never compacted);
//   - counters: snapshot id → number of edges whose timestamp set
//     contains that id (derived, always consistent with the sets).
//
// mu serializes every mutation across all three structures as one
// logical unit; readers acquiring RLock never observe a timestamp
// inserted without its counter and log entry.
type DynGraph struct {
	mu sync.RWMutex

	topo     *core.Graph
	log      map[int64][]event
	counters map[int64]int
}

// NewDynGraph creates an empty temporal graph.
// Complexity: O(1)
func NewDynGraph() *DynGraph {
	return &DynGraph{
		topo:     core.NewGraph(),
		log:      make(map[int64][]event),
		counters: make(map[int64]int),
	}
}

// Copy returns a deep, independent copy of g: topology, timestamp sets,
// event log, and counters. Mutating the copy never affects g.
// Complexity: O(V + E + L) where L is the total log length.
func (g *DynGraph) Copy() *DynGraph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	h := NewDynGraph()
	for _, id := range g.topo.Vertices() {
		_ = h.topo.AddVertex(id) // id is non-empty by construction
	}
	for _, e := range g.topo.EdgeList() {
		rec, _ := h.topo.EnsureEdge(e.U, e.V)
		rec.Times = e.Rec.Times.Clone()
		for k, v := range e.Rec.Attrs {
			rec.Attrs[k] = v
		}
	}
	for t, entries := range g.log {
		h.log[t] = append([]event(nil), entries...)
	}
	for t, n := range g.counters {
		h.counters[t] = n
	}

	return h
}

// Topology exposes the underlying static topology (read-mostly; mutate
// through DynGraph methods to keep the temporal structures consistent).
func (g *DynGraph) Topology() *core.Graph {
	return g.topo
}
