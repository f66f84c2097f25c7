// SPDX-License-Identifier: MIT
package temporal_test

import (
	"fmt"

	"github.com/katalvlaran/dynagraph/temporal"
)

// ExampleDynGraph demonstrates recording two path interactions one
// snapshot apart and querying them.
func ExampleDynGraph() {
	g := temporal.NewDynGraph()
	_ = g.AddPath([]string{"0", "1", "2", "3"}, 0)
	_ = g.AddPath([]string{"3", "4", "5", "6"}, 1)

	d0, _ := g.DegreeAt("1", 0)
	d1, _ := g.DegreeAt("1", 1)
	fmt.Println("degree(1) at t=0:", d0)
	fmt.Println("degree(1) at t=1:", d1)
	fmt.Println("size at t=0:", g.SizeAt(0))
	fmt.Println("snapshots:", g.TemporalSnapshots())

	// Output:
	// degree(1) at t=0: 2
	// degree(1) at t=1: 0
	// size at t=0: 3
	// snapshots: [0 1]
}

// ExampleDynGraph_AddEdgeSpan shows interval presence: an edge that
// appears at 0 and vanishes at 5 exists over [0, 5).
func ExampleDynGraph_AddEdgeSpan() {
	g := temporal.NewDynGraph()
	_ = g.AddEdgeSpan("A", "B", 0, 5)

	fmt.Println("present at 4:", g.HasEdgeAt("A", "B", 4))
	fmt.Println("present at 5:", g.HasEdgeAt("A", "B", 5))

	// Output:
	// present at 4: true
	// present at 5: false
}

// ExampleDynGraph_TimeSlice extracts the induced graph over a snapshot
// range as an independent copy.
func ExampleDynGraph_TimeSlice() {
	g := temporal.NewDynGraph()
	_ = g.AddPath([]string{"A", "B", "C"}, 0)
	_ = g.AddPath([]string{"C", "D", "E"}, 1)
	_ = g.AddPath([]string{"E", "F", "G"}, 2)

	h, _ := g.TimeSlice(0, 1)
	fmt.Println("sliced size:", h.Size())
	fmt.Println("has E–F:", h.HasEdge("E", "F"))

	// Output:
	// sliced size: 4
	// has E–F: false
}

// ExampleDynGraph_StreamEdges replays the full interaction history in
// chronological order.
func ExampleDynGraph_StreamEdges() {
	g := temporal.NewDynGraph()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdgeSpan("B", "C", 0, 2)

	g.StreamEdges(func(it temporal.Interaction) bool {
		fmt.Printf("(%s, %s, %s, %d)\n", it.U, it.V, it.Op, it.Time)
		return true
	})

	// Output:
	// (B, C, +, 0)
	// (A, B, +, 1)
	// (B, C, -, 2)
}
