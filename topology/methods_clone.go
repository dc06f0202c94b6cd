// File: methods_clone.go
// Role: deep copy.

package topology

// Clone returns an independent deep copy of t.
// Complexity: O(V + E)
func (t *Topology) Clone() *Topology {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := New()
	for id := range t.nodes {
		out.nodes[id] = struct{}{}
	}
	for id, e := range t.edges {
		c := *e
		out.edges[id] = &c
	}

	return out
}
