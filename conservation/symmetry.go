package conservation

import "github.com/katalvlaran/qrules/quantum"

// CheckIdenticalParticleSymmetrization enforces spin statistics when one state
// decays into two or more outgoing states sharing pid and spin projection:
// bosonic daughters forbid parent parity −1, fermionic daughters forbid +1.
// Every other configuration passes, including an undefined parent parity.
//
// For more than two identical daughters the same pairwise criterion is applied
// to the whole multiplet.
func CheckIdenticalParticleSymmetrization(in []quantum.Parity, out []IdenticalParticleSymmetryOutEdgeInput) bool {
	if len(in) != 1 || !identicalStates(out) {
		return true
	}
	if isBoson(out[0].SpinMagnitude) {
		return in[0] != quantum.Minus
	}

	return in[0] != quantum.Plus
}

func identicalStates(states []IdenticalParticleSymmetryOutEdgeInput) bool {
	if len(states) < 2 {
		return false
	}
	ref := states[0]
	for _, s := range states[1:] {
		if s.PID != ref.PID || s.SpinProjection != ref.SpinProjection {
			return false
		}
	}

	return true
}

// IdenticalParticleSymmetrization reads the parent parity and the pid and spin
// state of every daughter.
var IdenticalParticleSymmetrization = NewEdgeRule("IdenticalParticleSymmetrization",
	ParityEdge(quantum.EdgeParity), IdenticalParticleSymmetryOutEdge,
	CheckIdenticalParticleSymmetrization)
