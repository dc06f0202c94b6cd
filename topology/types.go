// File: types.go
// Role: Topology and Edge types, sentinel errors, constructor.
// Concurrency:
//   - mu guards nodes and edges; Edge values handed out are copies.

package topology

import (
	"errors"
	"sync"
)

// Sentinel errors for topology operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("topology: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("topology: edge not found")

	// ErrNodeExists indicates a duplicate node ID.
	ErrNodeExists = errors.New("topology: node already exists")

	// ErrEdgeExists indicates a duplicate edge ID.
	ErrEdgeExists = errors.New("topology: edge already exists")

	// ErrEdgeAlreadyAttached indicates that the requested end of an edge is
	// already connected to a node.
	ErrEdgeAlreadyAttached = errors.New("topology: edge already attached")

	// ErrDanglingEdge indicates an edge connected to no node at all.
	ErrDanglingEdge = errors.New("topology: edge not connected to any node")

	// ErrIsolatedNode indicates a node that shares no edge with another node.
	ErrIsolatedNode = errors.New("topology: node not connected to any other node")

	// ErrCycle indicates intermediate states forming a closed path.
	ErrCycle = errors.New("topology: cycle through intermediate states")

	// ErrTooFewStates indicates a builder called with too few initial or final states.
	ErrTooFewStates = errors.New("topology: too few states")
)

// NoNode marks an open edge end.
const NoNode = -1

// Edge is a particle state. Origin is the node the edge starts at and End
// the node it ends at; either may be NoNode.
type Edge struct {
	ID     int
	Origin int
	End    int
}

// IsInitial reports whether e enters the topology.
func (e Edge) IsInitial() bool { return e.Origin == NoNode }

// IsFinal reports whether e leaves the topology.
func (e Edge) IsFinal() bool { return e.End == NoNode }

// IsIntermediate reports whether e connects two nodes.
func (e Edge) IsIntermediate() bool { return !e.IsInitial() && !e.IsFinal() }

// Topology is a mutable, concurrency-safe decay topology.
type Topology struct {
	mu    sync.RWMutex
	nodes map[int]struct{}
	edges map[int]*Edge
}

// New returns an empty Topology.
// Complexity: O(1)
func New() *Topology {
	return &Topology{
		nodes: make(map[int]struct{}),
		edges: make(map[int]*Edge),
	}
}
