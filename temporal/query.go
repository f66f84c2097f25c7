// SPDX-License-Identifier: MIT
// Package: dynagraph/temporal
//
// query.go - snapshot-filtered and flattened read operations.
//
// Naming contract: X answers over the flattened graph (every snapshot
// merged), XAt filters to one snapshot. All At-filtered lookups consult
// the authoritative timestamp sets with O(log n) membership tests.

package temporal

import (
	"errors"
	"sort"

	"github.com/katalvlaran/dynagraph/core"
)

// HasEdge reports whether (u,v) has a record on the flattened graph.
// Complexity: O(1).
func (g *DynGraph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.topo.EdgeRecordOf(u, v)
	return ok
}

// HasEdgeAt reports whether (u,v) is present at snapshot t. Symmetric:
// HasEdgeAt(u,v,t) == HasEdgeAt(v,u,t) because both directions share
// one record.
// Complexity: O(log n).
func (g *DynGraph) HasEdgeAt(u, v string, t int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	rec, ok := g.topo.EdgeRecordOf(u, v)
	return ok && rec.Times.Contains(t)
}

// Neighbors returns the nodes adjacent to n on the flattened graph,
// sorted. Returns ErrNodeNotFound if n is absent.
// Complexity: O(deg·log deg).
func (g *DynGraph) Neighbors(n string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids, err := g.topo.NeighborIDs(n)
	if err != nil {
		return nil, nodeErr(err)
	}

	return ids, nil
}

// NeighborsAt returns the nodes adjacent to n at snapshot t, sorted.
// Returns ErrNodeNotFound if n is absent; a present node with no
// qualifying neighbors yields an empty slice.
// Complexity: O(deg·log n).
func (g *DynGraph) NeighborsAt(n string, t int64) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	row, err := g.topo.AdjacentOf(n)
	if err != nil {
		return nil, nodeErr(err)
	}
	ids := make([]string, 0, len(row))
	for nbr, rec := range row {
		if rec.Times.Contains(t) {
			ids = append(ids, nbr)
		}
	}
	sort.Strings(ids)

	return ids, nil
}

// Degree returns the flattened degree of n; a self-loop counts double.
// Returns ErrNodeNotFound if n is absent.
// Complexity: O(deg).
func (g *DynGraph) Degree(n string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	row, err := g.topo.AdjacentOf(n)
	if err != nil {
		return 0, nodeErr(err)
	}

	return flatDegree(n, row), nil
}

// DegreeAt returns the degree of n at snapshot t; a self-loop present
// at t counts double. Returns ErrNodeNotFound if n is absent.
// Complexity: O(deg·log n).
func (g *DynGraph) DegreeAt(n string, t int64) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	row, err := g.topo.AdjacentOf(n)
	if err != nil {
		return 0, nodeErr(err)
	}

	return degreeAt(n, row, t), nil
}

// Degrees returns the flattened degree of every node.
// Complexity: O(V + E).
func (g *DynGraph) Degrees() map[string]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string]int)
	for _, n := range g.topo.Vertices() {
		row, err := g.topo.AdjacentOf(n)
		if err != nil {
			continue
		}
		out[n] = flatDegree(n, row)
	}

	return out
}

// DegreesAt returns the degree of every node at snapshot t.
// Complexity: O(V + E·log n).
func (g *DynGraph) DegreesAt(t int64) map[string]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.degreesAtLocked(t)
}

// degreesAtLocked computes per-node degrees at t. Caller holds g.mu.
func (g *DynGraph) degreesAtLocked(t int64) map[string]int {
	out := make(map[string]int)
	for _, n := range g.topo.Vertices() {
		row, err := g.topo.AdjacentOf(n)
		if err != nil {
			continue
		}
		out[n] = degreeAt(n, row, t)
	}

	return out
}

// Size returns the number of edges on the flattened graph
// (sum of degrees over two; a self-loop counts as one edge).
// Complexity: O(V + E).
func (g *DynGraph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.topo.EdgeCount()
}

// SizeAt returns the number of edges present at snapshot t.
// Complexity: O(V + E·log n).
func (g *DynGraph) SizeAt(t int64) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	sum := 0
	for _, d := range g.degreesAtLocked(t) {
		sum += d
	}

	return sum / 2
}

// NumberOfEdges reports 1 if (u,v) has a record, else 0.
func (g *DynGraph) NumberOfEdges(u, v string) int {
	if g.HasEdge(u, v) {
		return 1
	}
	return 0
}

// NumberOfEdgesAt reports 1 if (u,v) is present at snapshot t, else 0.
func (g *DynGraph) NumberOfEdgesAt(u, v string, t int64) int {
	if g.HasEdgeAt(u, v, t) {
		return 1
	}
	return 0
}

// HasNode reports whether n exists on the flattened graph.
func (g *DynGraph) HasNode(n string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.topo.HasVertex(n)
}

// HasNodeAt reports whether n is active (degree > 0) at snapshot t.
func (g *DynGraph) HasNodeAt(n string, t int64) bool {
	d, err := g.DegreeAt(n, t)
	return err == nil && d > 0
}

// Nodes returns every node of the flattened graph, sorted.
func (g *DynGraph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.topo.Vertices()
}

// NodesAt returns the nodes active (degree > 0) at snapshot t, sorted.
func (g *DynGraph) NodesAt(t int64) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []string
	for n, d := range g.degreesAtLocked(t) {
		if d > 0 {
			out = append(out, n)
		}
	}
	sort.Strings(out)

	return out
}

// NumberOfNodes returns the node count of the flattened graph.
func (g *DynGraph) NumberOfNodes() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.topo.VertexCount()
}

// NumberOfNodesAt returns the count of nodes active at snapshot t.
func (g *DynGraph) NumberOfNodesAt(t int64) int {
	return len(g.NodesAt(t))
}

// Order is an alias for NumberOfNodes.
func (g *DynGraph) Order() int { return g.NumberOfNodes() }

// OrderAt is an alias for NumberOfNodesAt.
func (g *DynGraph) OrderAt(t int64) int { return g.NumberOfNodesAt(t) }

// IsEmpty reports whether the graph has no edges (nodes may exist).
func (g *DynGraph) IsEmpty() bool {
	return g.Size() == 0
}

// Density returns 2m/(n·(n-1)) for the flattened graph, or 0 when
// there are no edges or fewer than two nodes. Self-loops count in m,
// so dense loopy graphs can exceed 1.
func (g *DynGraph) Density() float64 {
	return density(g.NumberOfNodes(), g.Size())
}

// DensityAt returns 2m/(n·(n-1)) at snapshot t, with n counting only
// nodes active at t.
func (g *DynGraph) DensityAt(t int64) float64 {
	return density(g.NumberOfNodesAt(t), g.SizeAt(t))
}

// DegreeHistogram returns the frequency of each flattened degree value;
// the degree is the index into the returned slice.
func (g *DynGraph) DegreeHistogram() []int {
	return histogram(g.Degrees())
}

// DegreeHistogramAt returns the frequency of each degree value at
// snapshot t; the degree is the index into the returned slice.
func (g *DynGraph) DegreeHistogramAt(t int64) []int {
	return histogram(g.DegreesAt(t))
}

// Helpers:
////////////////////

// flatDegree counts the flattened degree from an adjacency row;
// a self-loop contributes two.
func flatDegree(n string, row map[string]*core.EdgeRecord) int {
	d := len(row)
	if _, loop := row[n]; loop {
		d++
	}

	return d
}

// degreeAt counts the degree at snapshot t from an adjacency row;
// a self-loop present at t contributes two.
func degreeAt(n string, row map[string]*core.EdgeRecord, t int64) int {
	d := 0
	for nbr, rec := range row {
		if !rec.Times.Contains(t) {
			continue
		}
		d++
		if nbr == n {
			d++ // self-loop counts double
		}
	}

	return d
}

// density computes 2m/(n(n-1)); zero for edgeless or sub-two-node graphs.
func density(n, m int) float64 {
	if m == 0 || n <= 1 {
		return 0
	}

	return 2 * float64(m) / (float64(n) * float64(n-1))
}

// histogram folds a degree map into frequency-by-degree.
func histogram(degrees map[string]int) []int {
	maxDeg := 0
	for _, d := range degrees {
		if d > maxDeg {
			maxDeg = d
		}
	}
	if len(degrees) == 0 {
		return nil
	}
	hist := make([]int, maxDeg+1)
	for _, d := range degrees {
		hist[d]++
	}

	return hist
}

// nodeErr maps core vertex lookups onto the package sentinel.
func nodeErr(err error) error {
	if errors.Is(err, core.ErrVertexNotFound) {
		return ErrNodeNotFound
	}

	return err
}
