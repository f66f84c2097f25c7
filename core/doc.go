// Package core defines the static topology of a temporal graph: the
// vertex set and an undirected adjacency map whose entries share one
// mutable record per unordered vertex pair.
//
// What:
//
//   - Graph stores vertices and adjacency; adjacency[u][v] and
//     adjacency[v][u] alias the SAME *EdgeRecord, so a timestamp added
//     through either endpoint is immediately visible from the other.
//   - EdgeRecord carries the edge's ordered timestamp set plus an opaque
//     attribute map; core never interprets either.
//   - EnsureEdge auto-vivifies missing endpoints and creates the shared
//     record on first use; RemoveEdge drops both adjacency slots as one
//     atomic step under the write lock.
//
// Why:
//
//   - The temporal index above needs exactly three services: vertex
//     existence, adjacency lookup, and a per-edge mutable record. Keeping
//     them in a dedicated package keeps the index free of bookkeeping.
//
// Complexity:
//
//   - EnsureEdge, EdgeRecordOf, RemoveEdge: O(1) amortized.
//   - Vertices, NeighborIDs, EdgeList: O(k·log k) for k results (sorted).
//
// Errors:
//
//   - ErrEmptyVertexID: vertex ID is the empty string.
//   - ErrVertexNotFound: adjacency query on an absent vertex.
//   - ErrEdgeNotFound: removal of a pair with no record.
package core
