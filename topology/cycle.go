// File: cycle.go
// Role: detection of closed paths through intermediate states.
// Determinism:
//   - Nodes and their outgoing edges are visited in ascending ID order, so
//     the reported cycle is stable.

package topology

import (
	"maps"
	"slices"
)

// Visitation states of the three-color depth-first search.
const (
	white = iota // unvisited
	gray         // on the current path
	black        // finished
)

// FindCycle returns the nodes of a directed cycle, starting and ending at
// the same node, or nil when t is acyclic. A self-loop yields [n n].
func (t *Topology) FindCycle() []int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.findCycleLocked()
}

// findCycleLocked requires t.mu to be held.
func (t *Topology) findCycleLocked() []int {
	next := make(map[int][]int, len(t.nodes))
	for _, id := range slices.Sorted(maps.Keys(t.edges)) {
		e := t.edges[id]
		if e.Origin != NoNode && e.End != NoNode {
			next[e.Origin] = append(next[e.Origin], e.End)
		}
	}
	state := make(map[int]int, len(t.nodes))
	var path []int

	var visit func(n int) []int
	visit = func(n int) []int {
		state[n] = gray
		path = append(path, n)
		for _, m := range next[n] {
			switch state[m] {
			case white:
				if c := visit(m); c != nil {
					return c
				}
			case gray:
				start := slices.Index(path, m)
				return append(slices.Clone(path[start:]), m)
			}
		}
		path = path[:len(path)-1]
		state[n] = black

		return nil
	}
	for _, n := range slices.Sorted(maps.Keys(t.nodes)) {
		if state[n] == white {
			if c := visit(n); c != nil {
				return c
			}
		}
	}

	return nil
}
