// Package core: type declarations for the static topology.
//
// This file declares Vertex, EdgeRecord, EdgeEntry, Graph, sentinel
// errors, and the NewGraph constructor. Method implementations live in
// graph.go.

package core

import (
	"errors"
	"sync"

	"github.com/katalvlaran/dynagraph/timeset"
)

// Sentinel errors for static-topology operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Metadata stores arbitrary key-value data and is shared on shallow copies.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data. It is not deep-copied.
	Metadata map[string]interface{}
}

// EdgeRecord is the single mutable record shared by both adjacency
// directions of an unordered vertex pair.
//
// Both adjacency[u][v] and adjacency[v][u] hold the same pointer;
// mutating Times through one endpoint is visible from the other.
type EdgeRecord struct {
	// Times is the ordered set of snapshot ids at which the edge is present.
	Times *timeset.Set

	// Attrs stores arbitrary edge attributes. Opaque to core.
	Attrs map[string]interface{}
}

// EdgeEntry identifies one unique undirected edge: the canonical pair
// (U ≤ V) and its shared record.
type EdgeEntry struct {
	U, V string
	Rec  *EdgeRecord
}

// Graph is the static topology: vertex set plus shared-record adjacency.
//
// mu guards vertices and adjacency together; an edge mutation always
// touches both directions under one critical section, so no reader can
// observe a half-linked pair.
type Graph struct {
	mu sync.RWMutex // guards vertices and adjacency

	vertices  map[string]*Vertex               // vertex ID → Vertex
	adjacency map[string]map[string]*EdgeRecord // adjacency[u][v] → shared record
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]*Vertex),
		adjacency: make(map[string]map[string]*EdgeRecord),
	}
}
