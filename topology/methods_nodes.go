// File: methods_nodes.go
// Role: node insertion and attachment of edge ends to nodes.

package topology

import "fmt"

// AddNode inserts an interaction node.
// Returns ErrNodeExists if id is already present.
// Complexity: O(1)
func (t *Topology) AddNode(id int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.nodes[id]; ok {
		return fmt.Errorf("%w: %d", ErrNodeExists, id)
	}
	t.nodes[id] = struct{}{}

	return nil
}

// HasNode reports whether id is a node of t.
func (t *Topology) HasNode(id int) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.nodes[id]

	return ok
}

// AttachIngoing makes node the end of each edge in edgeIDs.
//
// The operation is atomic: every edge is checked before any is modified.
// Errors: ErrNodeNotFound, ErrEdgeNotFound, ErrEdgeAlreadyAttached.
// Complexity: O(k)
func (t *Topology) AttachIngoing(node int, edgeIDs ...int) error {
	return t.attach(node, edgeIDs, func(e *Edge) *int { return &e.End })
}

// AttachOutgoing makes node the origin of each edge in edgeIDs.
// Same contract as AttachIngoing.
func (t *Topology) AttachOutgoing(node int, edgeIDs ...int) error {
	return t.attach(node, edgeIDs, func(e *Edge) *int { return &e.Origin })
}

func (t *Topology) attach(node int, edgeIDs []int, end func(*Edge) *int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.nodes[node]; !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, node)
	}
	for _, id := range edgeIDs {
		e, ok := t.edges[id]
		if !ok {
			return fmt.Errorf("%w: %d", ErrEdgeNotFound, id)
		}
		if *end(e) != NoNode {
			return fmt.Errorf("%w: edge %d at node %d", ErrEdgeAlreadyAttached, id, *end(e))
		}
	}
	for _, id := range edgeIDs {
		*end(t.edges[id]) = node
	}

	return nil
}
