// Package temporal implements the temporal edge index: an undirected
// graph whose edges exist only at discrete time snapshots, with
// snapshot-filtered queries, time slicing, and chronological replay.
//
// What:
//
//   - DynGraph composes three correlated structures: per-edge ordered
//     timestamp sets (authoritative), an append-only per-snapshot event
//     log of every mutation call, and per-snapshot interaction counters
//     derived from the timestamp sets.
//   - Mutations: AddEdge (one or many appearance snapshots),
//     AddEdgeSpan / AddEdgeInterval (continuous presence up to a
//     vanishing snapshot), RemoveEdge / RemoveEdgeAt, bulk variants,
//     and the AddPath / AddStar / AddCycle generators.
//   - Queries come in pairs: X answers over the flattened graph, XAt
//     filters to one snapshot — HasEdge(At), Neighbors(At), Degree(At),
//     Size(At), Density(At), Nodes(At), and friends.
//   - TimeSlice(tFrom, tTo) reconstructs the induced graph over a closed
//     snapshot range as a fresh, independent DynGraph.
//   - StreamEdges replays every recorded interaction in ascending
//     snapshot order, entries within a snapshot in original call order.
//
// Why:
//
//   - Interaction networks (contact traces, message logs, link churn)
//     need "who was adjacent at time t" answered without rebuilding a
//     graph per query.
//
// Consistency model:
//
//   - The timestamp sets are the single source of truth. Counters are
//     incremented only when an id is NEWLY inserted into an edge's set
//     and decremented on removal, so counters[t] always equals the
//     number of edges whose set contains t. The event log is a call
//     audit: re-adding a present id still appends an entry.
//   - Every mutation updates all three structures under one write lock;
//     readers never observe a partially applied call.
//
// Complexity:
//
//   - AddEdge: O(k·log n) for k appearance ids; spans add O(span length).
//   - Snapshot-filtered queries: O(deg·log n) per node.
//   - TimeSlice: O(E·(log n + k)) for k selected ids per edge.
//
// Errors:
//
//   - ErrMissingTimestamp: mutation without an appearance snapshot.
//   - ErrInvalidVanishing: vanishing id not beyond every appearance id.
//   - ErrEdgeNotFound, ErrNodeNotFound: query/removal on absent entities.
//   - ErrSnapshotNotFound: interaction count for an unrecorded snapshot.
//   - ErrInvalidInterval: inverted time-slice range.
//   - ErrTooFewNodes: generator called with too short a node list.
package temporal
