package temporal

import "errors"

var (
	// ErrMissingTimestamp indicates a mutation without an appearance
	// snapshot; a temporal edge must always declare when it begins.
	ErrMissingTimestamp = errors.New("temporal: appearance snapshot not specified")

	// ErrInvalidVanishing indicates a vanishing snapshot that does not
	// strictly exceed every appearance snapshot.
	ErrInvalidVanishing = errors.New("temporal: vanishing snapshot must exceed appearance")

	// ErrEdgeNotFound indicates a removal or lookup on a pair with no record.
	ErrEdgeNotFound = errors.New("temporal: edge not found")

	// ErrNodeNotFound indicates a neighbor/degree query on an absent node.
	ErrNodeNotFound = errors.New("temporal: node not found")

	// ErrSnapshotNotFound indicates an interaction-count query for a
	// snapshot id with no recorded presence.
	ErrSnapshotNotFound = errors.New("temporal: snapshot not present")

	// ErrInvalidInterval indicates an inverted time-slice range (from > to).
	ErrInvalidInterval = errors.New("temporal: invalid time interval")

	// ErrTooFewNodes indicates a path/star/cycle generator received a
	// node list shorter than the shape requires.
	ErrTooFewNodes = errors.New("temporal: too few nodes")
)
