// File: builders.go
// Role: canonical topology constructors.
// Determinism:
//   - Initial states are numbered -1, -2, ...; final states 0..n-1;
//     intermediate states continue from n.

package topology

import "fmt"

// NBody returns a single interaction node with nInitial incoming and
// nFinal outgoing edges. Both counts must be at least 1.
func NBody(nInitial, nFinal int) (*Topology, error) {
	if nInitial < 1 || nFinal < 1 {
		return nil, fmt.Errorf("%w: %d initial, %d final", ErrTooFewStates, nInitial, nFinal)
	}
	t := New()
	t.nodes[0] = struct{}{}
	for i := 1; i <= nInitial; i++ {
		t.edges[-i] = &Edge{ID: -i, Origin: NoNode, End: 0}
	}
	for i := 0; i < nFinal; i++ {
		t.edges[i] = &Edge{ID: i, Origin: 0, End: NoNode}
	}

	return t, nil
}

// TwoBodyDecay returns the 1 → 2 topology: edge -1 into node 0, edges 0
// and 1 out of it.
func TwoBodyDecay() *Topology {
	t, _ := NBody(1, 2)
	return t
}

// IsobarChain returns the sequential two-body decay of one state into
// nFinal ≥ 2 states. Node i emits final state i together with the
// intermediate edge nFinal+i feeding node i+1; the last node emits the
// final states nFinal-2 and nFinal-1.
//
//	-1 ──►(0)──► 0
//	       └─ n ──►(1)──► 1
//	                └──► 2
func IsobarChain(nFinal int) (*Topology, error) {
	if nFinal < 2 {
		return nil, fmt.Errorf("%w: isobar chain needs 2 final states, got %d", ErrTooFewStates, nFinal)
	}
	t := New()
	last := nFinal - 2
	for n := 0; n <= last; n++ {
		t.nodes[n] = struct{}{}
	}
	t.edges[-1] = &Edge{ID: -1, Origin: NoNode, End: 0}
	for n := 0; n < last; n++ {
		t.edges[n] = &Edge{ID: n, Origin: n, End: NoNode}
		id := nFinal + n
		t.edges[id] = &Edge{ID: id, Origin: n, End: n + 1}
	}
	t.edges[last] = &Edge{ID: last, Origin: last, End: NoNode}
	t.edges[last+1] = &Edge{ID: last + 1, Origin: last, End: NoNode}

	return t, nil
}
