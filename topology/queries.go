// File: queries.go
// Role: read-only views over nodes and edges.
// Determinism:
//   - Every slice is sorted ascending by ID.

package topology

import (
	"fmt"
	"maps"
	"slices"
)

// Nodes returns the node IDs in ascending order.
func (t *Topology) Nodes() []int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return slices.Sorted(maps.Keys(t.nodes))
}

// Edges returns copies of all edges sorted by ID.
func (t *Topology) Edges() []Edge {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.selectLocked(func(Edge) bool { return true })
}

// EdgeIDs returns all edge IDs in ascending order.
func (t *Topology) EdgeIDs() []int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return slices.Sorted(maps.Keys(t.edges))
}

// IngoingEdgeIDs returns the edges ending at node.
func (t *Topology) IngoingEdgeIDs(node int) ([]int, error) {
	return t.nodeEdges(node, func(e Edge) bool { return e.End == node })
}

// OutgoingEdgeIDs returns the edges originating at node.
func (t *Topology) OutgoingEdgeIDs(node int) ([]int, error) {
	return t.nodeEdges(node, func(e Edge) bool { return e.Origin == node })
}

// InitialStateEdgeIDs returns the edges without an origin node.
func (t *Topology) InitialStateEdgeIDs() []int { return t.ids(Edge.IsInitial) }

// FinalStateEdgeIDs returns the edges without an end node.
func (t *Topology) FinalStateEdgeIDs() []int { return t.ids(Edge.IsFinal) }

// IntermediateEdgeIDs returns the edges connecting two nodes.
func (t *Topology) IntermediateEdgeIDs() []int { return t.ids(Edge.IsIntermediate) }

// OriginatingFinalStateEdgeIDs returns the final-state edges reachable
// downstream from node, following outgoing edges breadth first.
func (t *Topology) OriginatingFinalStateEdgeIDs(node int) ([]int, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if _, ok := t.nodes[node]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, node)
	}
	var (
		out     []int
		queue   = []int{node}
		visited = map[int]bool{node: true}
	)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, e := range t.selectLocked(func(e Edge) bool { return e.Origin == current }) {
			if e.IsFinal() {
				out = append(out, e.ID)
				continue
			}
			if !visited[e.End] {
				visited[e.End] = true
				queue = append(queue, e.End)
			}
		}
	}
	slices.Sort(out)

	return out, nil
}

func (t *Topology) nodeEdges(node int, keep func(Edge) bool) ([]int, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if _, ok := t.nodes[node]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, node)
	}

	return edgeIDs(t.selectLocked(keep)), nil
}

func (t *Topology) ids(keep func(Edge) bool) []int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return edgeIDs(t.selectLocked(keep))
}

// selectLocked requires t.mu to be held.
func (t *Topology) selectLocked(keep func(Edge) bool) []Edge {
	out := make([]Edge, 0, len(t.edges))
	for _, id := range slices.Sorted(maps.Keys(t.edges)) {
		if e := *t.edges[id]; keep(e) {
			out = append(out, e)
		}
	}

	return out
}

func edgeIDs(edges []Edge) []int {
	out := make([]int, len(edges))
	for i, e := range edges {
		out[i] = e.ID
	}

	return out
}
