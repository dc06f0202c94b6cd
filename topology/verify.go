// File: verify.go
// Role: structural consistency check.

package topology

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// Verify checks that t is a well-formed topology:
//   - every edge is attached to at least one node (ErrDanglingEdge);
//   - attached ends reference existing nodes (ErrNodeNotFound);
//   - with two or more nodes, every node shares an edge with another node
//     (ErrIsolatedNode);
//   - intermediate states never form a closed path (ErrCycle).
//
// All violations are reported, joined in ID order.
func (t *Topology) Verify() error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var errs []error
	linked := make(map[int]bool, len(t.nodes))
	for _, id := range slices.Sorted(maps.Keys(t.edges)) {
		e := t.edges[id]
		if e.Origin == NoNode && e.End == NoNode {
			errs = append(errs, fmt.Errorf("%w: %d", ErrDanglingEdge, id))
			continue
		}
		for _, n := range []int{e.Origin, e.End} {
			if _, ok := t.nodes[n]; n != NoNode && !ok {
				errs = append(errs, fmt.Errorf("%w: %d referenced by edge %d", ErrNodeNotFound, n, id))
			}
		}
		if e.Origin != NoNode && e.End != NoNode && e.Origin != e.End {
			linked[e.Origin] = true
			linked[e.End] = true
		}
	}
	if len(t.nodes) > 1 {
		for _, n := range slices.Sorted(maps.Keys(t.nodes)) {
			if !linked[n] {
				errs = append(errs, fmt.Errorf("%w: %d", ErrIsolatedNode, n))
			}
		}
	}

	if c := t.findCycleLocked(); c != nil {
		errs = append(errs, fmt.Errorf("%w: %v", ErrCycle, c))
	}

	return errors.Join(errs...)
}
