// File: methods_edges.go
// Role: edge insertion and lookup.

package topology

import "fmt"

// AddEdge inserts an open edge with both ends unattached.
// Returns ErrEdgeExists if id is already present.
// Complexity: O(1)
func (t *Topology) AddEdge(id int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.edges[id]; ok {
		return fmt.Errorf("%w: %d", ErrEdgeExists, id)
	}
	t.edges[id] = &Edge{ID: id, Origin: NoNode, End: NoNode}

	return nil
}

// Edge returns a copy of the edge with the given id.
func (t *Topology) Edge(id int) (Edge, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e, ok := t.edges[id]
	if !ok {
		return Edge{}, fmt.Errorf("%w: %d", ErrEdgeNotFound, id)
	}

	return *e, nil
}
