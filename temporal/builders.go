// SPDX-License-Identifier: MIT
// Package: dynagraph/temporal
//
// builders.go - convenience generators: path, star, and cycle shapes
// recorded at a single snapshot.
//
// Contract:
//   - Each generator expands its node list into pairs and feeds them to
//     AddEdgesFrom in a stable order, so the event log reflects the
//     shape's natural traversal.
//   - Parameter minima are validated early with ErrTooFewNodes.

package temporal

import "fmt"

// File-local parameter minima.
const (
	minPathNodes  = 2
	minStarNodes  = 2
	minCycleNodes = 3
)

// AddPath records the path nodes[0]–nodes[1]–…–nodes[k-1] as present at
// snapshot t. Requires at least two nodes.
// Complexity: O(k·log n).
func (g *DynGraph) AddPath(nodes []string, t int64) error {
	if len(nodes) < minPathNodes {
		return fmt.Errorf("AddPath: %d node(s) < min=%d: %w", len(nodes), minPathNodes, ErrTooFewNodes)
	}
	pairs := make([]Pair, 0, len(nodes)-1)
	for i := 1; i < len(nodes); i++ {
		pairs = append(pairs, Pair{U: nodes[i-1], V: nodes[i]})
	}

	return g.AddEdgesFrom(pairs, t)
}

// AddStar records a star at snapshot t: nodes[0] is the hub, connected
// to every remaining node. Requires at least two nodes.
// Complexity: O(k·log n).
func (g *DynGraph) AddStar(nodes []string, t int64) error {
	if len(nodes) < minStarNodes {
		return fmt.Errorf("AddStar: %d node(s) < min=%d: %w", len(nodes), minStarNodes, ErrTooFewNodes)
	}
	hub := nodes[0]
	pairs := make([]Pair, 0, len(nodes)-1)
	for _, n := range nodes[1:] {
		pairs = append(pairs, Pair{U: hub, V: n})
	}

	return g.AddEdgesFrom(pairs, t)
}

// AddCycle records the cycle nodes[0]–…–nodes[k-1]–nodes[0] as present
// at snapshot t. Requires at least three nodes (a two-node "cycle"
// would duplicate one undirected edge).
// Complexity: O(k·log n).
func (g *DynGraph) AddCycle(nodes []string, t int64) error {
	if len(nodes) < minCycleNodes {
		return fmt.Errorf("AddCycle: %d node(s) < min=%d: %w", len(nodes), minCycleNodes, ErrTooFewNodes)
	}
	pairs := make([]Pair, 0, len(nodes))
	for i := 1; i < len(nodes); i++ {
		pairs = append(pairs, Pair{U: nodes[i-1], V: nodes[i]})
	}
	pairs = append(pairs, Pair{U: nodes[len(nodes)-1], V: nodes[0]})

	return g.AddEdgesFrom(pairs, t)
}
