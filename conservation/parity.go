// File: parity.go
// Role: multiplicative conservation laws (P, helicity P, C, G).
// Undecidable cases (undefined parities that cannot be derived) pass, except
// for orbital parity, which fails on any undefined parity.

package conservation

import "github.com/katalvlaran/qrules/quantum"

// isBoson reports whether the spin magnitude is integral.
func isBoson(spin quantum.Fraction) bool { return spin.IsInteger() }

func isParticleAntiparticlePair(pid1, pid2 int64) bool { return pid1 == -pid2 }

// CheckParity implements P_in = P_out·(−1)^L for a 1→2 split.
// Any undefined parity fails; other arities pass. A non-integer L fails.
func CheckParity(in, out []quantum.Parity, l quantum.Fraction) bool {
	for _, p := range append(append([]quantum.Parity(nil), in...), out...) {
		if !p.Defined() {
			return false
		}
	}
	if len(in) != 1 || len(out) != 2 {
		return true
	}
	sign, ok := l.SignPower()
	if !ok {
		return false
	}

	return quantum.ParityProduct(in...) == quantum.ParityProduct(out...)*sign
}

// CheckParityHelicity checks the helicity parity prefactor of a 1→2 split:
//
//	prefactor = P1·P2·P3·(−1)^(S2+S3−S1)
//
// which must equal the declared prefactor. When both outgoing helicities are
// zero a computed prefactor of −1 fails unconditionally. Other arities pass.
func CheckParityHelicity(in, out []HelicityParityEdgeInput, prefactor quantum.Parity) bool {
	if len(in) != 1 || len(out) != 2 {
		return true
	}
	product := 1
	for _, e := range append(append([]HelicityParityEdgeInput(nil), in...), out...) {
		if e.Parity.Defined() {
			product *= e.Parity.Int()
		}
	}
	exponent := out[0].SpinMagnitude.Add(out[1].SpinMagnitude).Sub(in[0].SpinMagnitude)
	sign, ok := exponent.SignPower()
	if !ok {
		return false
	}
	computed := product * sign
	if out[0].SpinProjection.IsZero() && out[1].SpinProjection.IsZero() && computed == -1 {
		return false
	}

	return computed == prefactor.Int()
}

// multiparticleCParity derives the C-parity of one side or reports false when
// it cannot be decided.
func multiparticleCParity(states []CParityEdgeInput, node CParityNodeInput) (int, bool) {
	product, defined := 1, 0
	for _, s := range states {
		if s.CParity.Defined() {
			product *= s.CParity.Int()
			defined++
		}
	}
	if defined == len(states) {
		return product, true
	}
	if len(states) != 2 || !isParticleAntiparticlePair(states[0].PID, states[1].PID) {
		return 0, false
	}
	if isBoson(states[0].SpinMagnitude) {
		return node.LMagnitude.SignPower()
	}
	if !node.SMagnitude.IsInteger() {
		return 0, false
	}

	return node.LMagnitude.Add(node.SMagnitude).SignPower()
}

// CheckCParity implements C_in = C_out. A side without defined C-parities is
// derived from (−1)^L (boson pair) or (−1)^(L+S) (fermion pair) when it is a
// particle/antiparticle pair; if either side stays undecided the rule passes.
func CheckCParity(in, out []CParityEdgeInput, node CParityNodeInput) bool {
	cIn, ok := multiparticleCParity(in, node)
	if !ok {
		return true
	}
	cOut, ok := multiparticleCParity(out, node)
	if !ok {
		return true
	}

	return cIn == cOut
}

// pairGParity derives the G-parity of a particle/antiparticle pair with total
// isospin taken from the single state on the other side.
func pairGParity(isospin quantum.Fraction, pair [2]GParityEdgeInput, node GParityNodeInput) (int, bool) {
	if !isParticleAntiparticlePair(pair[0].PID, pair[1].PID) || !isospin.IsInteger() {
		return 0, false
	}
	exponent := node.LMagnitude.Add(isospin)
	if !isBoson(pair[0].SpinMagnitude) {
		if !node.SMagnitude.IsInteger() {
			return 0, false
		}
		exponent = exponent.Add(node.SMagnitude)
	}

	return exponent.SignPower()
}

// CheckGParity implements G_in = G_out. When every state carries a defined
// G-parity the products are compared. Otherwise a 1→2 or 2→1 split derives
// the pair value (−1)^(L+I) for bosons or (−1)^(L+S+I) for fermions, I being
// the isospin of the single state, and compares it with that state's
// G-parity. Undecidable cases and other arities pass.
func CheckGParity(in, out []GParityEdgeInput, node GParityNodeInput) bool {
	allDefined := true
	for _, s := range append(append([]GParityEdgeInput(nil), in...), out...) {
		if !s.GParity.Defined() {
			allDefined = false
			break
		}
	}
	if allDefined {
		gIn, gOut := 1, 1
		for _, s := range in {
			gIn *= s.GParity.Int()
		}
		for _, s := range out {
			gOut *= s.GParity.Int()
		}
		return gIn == gOut
	}

	var (
		single GParityEdgeInput
		pair   [2]GParityEdgeInput
	)
	switch {
	case len(in) == 1 && len(out) == 2:
		single, pair = in[0], [2]GParityEdgeInput{out[0], out[1]}
	case len(in) == 2 && len(out) == 1:
		single, pair = out[0], [2]GParityEdgeInput{in[0], in[1]}
	default:
		return true
	}
	derived, ok := pairGParity(single.IsospinMagnitude, pair, node)
	if !ok || !single.GParity.Defined() {
		return true
	}

	return derived == single.GParity.Int()
}

// ParityConservation reads the parity of every edge and L of the node.
var ParityConservation = NewFullRule("ParityConservation",
	ParityEdge(quantum.EdgeParity), ParityEdge(quantum.EdgeParity),
	FractionNode(quantum.NodeLMagnitude), CheckParity)

// ParityConservationHelicity compares against the node's parity prefactor.
var ParityConservationHelicity = NewFullRule("ParityConservationHelicity",
	HelicityParityEdge, HelicityParityEdge,
	ParityNode(quantum.NodeParityPrefactor), CheckParityHelicity)

// C- and G-parity conservation.
var (
	CParityConservation = NewFullRule("CParityConservation", CParityEdge, CParityEdge, CParityNode, CheckCParity)
	GParityConservation = NewFullRule("GParityConservation", GParityEdge, GParityEdge, GParityNode, CheckGParity)
)
