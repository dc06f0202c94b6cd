// File: numbers.go
// Role: identifiers of edge- and node-scoped quantum numbers.
// Determinism:
//   - AllEdgeQNs / AllNodeQNs return identifiers in declaration order.
//   - String() names are snake_case and stable; renderers sort by them.

package quantum

import "fmt"

// EdgeQN identifies a quantum number carried by an edge (a particle state).
type EdgeQN uint8

// Edge quantum numbers.
const (
	EdgePID EdgeQN = iota
	EdgeMass
	EdgeWidth
	EdgeSpinMagnitude
	EdgeSpinProjection
	EdgeCharge
	EdgeIsospinMagnitude
	EdgeIsospinProjection
	EdgeStrangeness
	EdgeCharmness
	EdgeBottomness
	EdgeTopness
	EdgeBaryonNumber
	EdgeElectronLeptonNumber
	EdgeMuonLeptonNumber
	EdgeTauLeptonNumber
	EdgeParity
	EdgeCParity
	EdgeGParity

	edgeQNCount
)

var edgeQNNames = [edgeQNCount]string{
	EdgePID:                  "pid",
	EdgeMass:                 "mass",
	EdgeWidth:                "width",
	EdgeSpinMagnitude:        "spin_magnitude",
	EdgeSpinProjection:       "spin_projection",
	EdgeCharge:               "charge",
	EdgeIsospinMagnitude:     "isospin_magnitude",
	EdgeIsospinProjection:    "isospin_projection",
	EdgeStrangeness:          "strangeness",
	EdgeCharmness:            "charmness",
	EdgeBottomness:           "bottomness",
	EdgeTopness:              "topness",
	EdgeBaryonNumber:         "baryon_number",
	EdgeElectronLeptonNumber: "electron_lepton_number",
	EdgeMuonLeptonNumber:     "muon_lepton_number",
	EdgeTauLeptonNumber:      "tau_lepton_number",
	EdgeParity:               "parity",
	EdgeCParity:              "c_parity",
	EdgeGParity:              "g_parity",
}

// String returns the snake_case name, e.g. "spin_magnitude".
func (q EdgeQN) String() string {
	if q < edgeQNCount {
		return edgeQNNames[q]
	}

	return fmt.Sprintf("EdgeQN(%d)", uint8(q))
}

// AllEdgeQNs lists every edge quantum number in declaration order.
func AllEdgeQNs() []EdgeQN {
	out := make([]EdgeQN, 0, edgeQNCount)
	for q := EdgeQN(0); q < edgeQNCount; q++ {
		out = append(out, q)
	}

	return out
}

// ParseEdgeQN resolves a snake_case name.
func ParseEdgeQN(name string) (EdgeQN, error) {
	for q := EdgeQN(0); q < edgeQNCount; q++ {
		if edgeQNNames[q] == name {
			return q, nil
		}
	}

	return 0, fmt.Errorf("%w: edge %q", ErrUnknownQN, name)
}

// NodeQN identifies a quantum number carried by an interaction node.
type NodeQN uint8

// Node quantum numbers.
const (
	NodeLMagnitude NodeQN = iota
	NodeLProjection
	NodeSMagnitude
	NodeSProjection
	NodeParityPrefactor

	nodeQNCount
)

var nodeQNNames = [nodeQNCount]string{
	NodeLMagnitude:      "l_magnitude",
	NodeLProjection:     "l_projection",
	NodeSMagnitude:      "s_magnitude",
	NodeSProjection:     "s_projection",
	NodeParityPrefactor: "parity_prefactor",
}

// String returns the snake_case name, e.g. "l_magnitude".
func (q NodeQN) String() string {
	if q < nodeQNCount {
		return nodeQNNames[q]
	}

	return fmt.Sprintf("NodeQN(%d)", uint8(q))
}

// AllNodeQNs lists every node quantum number in declaration order.
func AllNodeQNs() []NodeQN {
	out := make([]NodeQN, 0, nodeQNCount)
	for q := NodeQN(0); q < nodeQNCount; q++ {
		out = append(out, q)
	}

	return out
}

// ParseNodeQN resolves a snake_case name.
func ParseNodeQN(name string) (NodeQN, error) {
	for q := NodeQN(0); q < nodeQNCount; q++ {
		if nodeQNNames[q] == name {
			return q, nil
		}
	}

	return 0, fmt.Errorf("%w: node %q", ErrUnknownQN, name)
}
