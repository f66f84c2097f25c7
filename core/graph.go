// Package core: Graph method implementations.
//
// All public methods are thread-safe via a single RWMutex; unexported
// *Locked helpers assume the caller holds the lock. Adjacency is stored
// as adjacency[u][v] = *EdgeRecord with both directions aliasing one
// record, so edge mutation is constant-time and symmetric by design
// of the data layout, not by double bookkeeping.

package core

import (
	"sort"

	"github.com/katalvlaran/dynagraph/timeset"
)

// AddVertex inserts a new vertex with the given ID into the Graph.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(id)
	return nil
}

// addVertexLocked inserts id if absent. Caller holds g.mu.
func (g *Graph) addVertexLocked(id string) {
	if _, exists := g.vertices[id]; exists {
		return
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}
	g.adjacency[id] = make(map[string]*EdgeRecord)
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// Vertices returns all vertex IDs in sorted order.
// Complexity: O(V·logV)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the total number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EnsureEdge returns the shared record for the pair (u,v), creating the
// endpoints and an empty record on first use. Both adjacency directions
// are linked to the same record before the method returns.
// Returns ErrEmptyVertexID if either endpoint is empty.
// Complexity: O(1) amortized.
func (g *Graph) EnsureEdge(u, v string) (*EdgeRecord, error) {
	if u == "" || v == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	// Auto-vivify endpoints (idempotent).
	g.addVertexLocked(u)
	g.addVertexLocked(v)

	if rec, ok := g.adjacency[u][v]; ok {
		return rec, nil
	}
	rec := &EdgeRecord{Times: timeset.New(), Attrs: make(map[string]interface{})}
	// One record, two slots: a self-loop occupies a single slot.
	g.adjacency[u][v] = rec
	g.adjacency[v][u] = rec

	return rec, nil
}

// EdgeRecordOf returns the shared record for (u,v), if any.
// Complexity: O(1).
func (g *Graph) EdgeRecordOf(u, v string) (*EdgeRecord, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	rec, ok := g.adjacency[u][v]
	return rec, ok
}

// RemoveEdge deletes the record for (u,v) from BOTH adjacency directions
// as one atomic step; no reader can observe the pair half-removed.
// Returns ErrEdgeNotFound if the pair has no record.
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.removeEdgeLocked(u, v)
}

// removeEdgeLocked unlinks both slots of (u,v). Caller holds g.mu.
func (g *Graph) removeEdgeLocked(u, v string) error {
	if _, ok := g.adjacency[u][v]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.adjacency[u], v)
	if u != v { // self-loop occupies a single slot
		delete(g.adjacency[v], u)
	}

	return nil
}

// AdjacentOf returns a copy of the adjacency row for n: neighbor ID →
// shared record. Returns ErrVertexNotFound if n is absent.
// Complexity: O(deg(n)).
func (g *Graph) AdjacentOf(n string) (map[string]*EdgeRecord, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	row, ok := g.adjacency[n]
	if _, exists := g.vertices[n]; !exists || !ok {
		return nil, ErrVertexNotFound
	}
	out := make(map[string]*EdgeRecord, len(row))
	for nbr, rec := range row {
		out[nbr] = rec
	}

	return out, nil
}

// NeighborIDs returns the IDs of all vertices adjacent to n, sorted.
// Returns ErrVertexNotFound if n is absent.
// Complexity: O(deg·log deg).
func (g *Graph) NeighborIDs(n string) ([]string, error) {
	row, err := g.AdjacentOf(n)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(row))
	for nbr := range row {
		ids = append(ids, nbr)
	}
	sort.Strings(ids)

	return ids, nil
}

// EdgeList returns every unique undirected edge as a canonical (U ≤ V)
// entry, sorted by U then V for determinism.
// Complexity: O(E·logE)
func (g *Graph) EdgeList() []EdgeEntry {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []EdgeEntry
	for u, row := range g.adjacency {
		for v, rec := range row {
			if u > v { // emit each unordered pair once; loops pass as u == v
				continue
			}
			out = append(out, EdgeEntry{U: u, V: v, Rec: rec})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}

// EdgeCount returns the number of unique undirected edges.
// Complexity: O(E).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for u, row := range g.adjacency {
		for v := range row {
			if u <= v {
				n++
			}
		}
	}

	return n
}

// Clear resets the graph to the empty state.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.vertices = make(map[string]*Vertex)
	g.adjacency = make(map[string]map[string]*EdgeRecord)
}
