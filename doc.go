// Package dynagraph is an in-memory index for graphs whose edges exist
// only at discrete time snapshots — record when every interaction happens,
// then ask "who was adjacent to whom at time t" without rebuilding anything.
//
// 🚀 What is dynagraph?
//
//	A thread-safe library for temporal (snapshot-indexed) graphs:
//		• Timestamped edges: each edge carries the ordered set of snapshots
//		  at which it is present, with interval (appear→vanish) filling
//		• Temporal queries: neighbors, degree, size, density — at any snapshot
//		• Time slicing: extract the induced graph over a snapshot range
//		  as a fresh, independent copy
//		• Chronological streaming: replay every interaction in time order
//
// ✨ Why choose dynagraph?
//
//   - Minimal API, clear naming — X for the flattened graph, XAt for snapshot t
//   - Rock-solid guarantees — R/W locks, one shared record per edge so
//     mutation through either endpoint is visible from the other
//   - Ordered-set timestamps — membership and range scans are O(log n),
//     not linear, even for long-lived edges
//
// Under the hood, everything is organized under three subpackages:
//
//	timeset/  — ordered, deduplicated snapshot-id sets (B-tree backed)
//	core/     — static topology: vertices and shared-record adjacency
//	temporal/ — the temporal edge index: mutation, queries, slicing, streams
//
// Quick ASCII example:
//
//	    t=0: A───B───C        t=1: C───D───E
//
//	two path interactions, one snapshot apart; Degree(B) at t=0 is 2,
//	at t=1 it is 0, and TimeSlice(0, 1) reproduces both.
//
// Dive into the temporal package docs for the full API surface.
//
//	go get github.com/katalvlaran/dynagraph/temporal
package dynagraph
