package conservation_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qrules/conservation"
	"github.com/katalvlaran/qrules/quantum"
)

var (
	zero  = quantum.Int(0)
	one   = quantum.Int(1)
	two   = quantum.Int(2)
	half  = quantum.Half(1)
	mhalf = quantum.Half(-1)
)

func TestAdditiveRules_RandomLists(t *testing.T) {
	rules := []struct {
		rule conservation.EdgeRule
		q    quantum.EdgeQN
	}{
		{conservation.ChargeConservation, quantum.EdgeCharge},
		{conservation.BaryonNumberConservation, quantum.EdgeBaryonNumber},
		{conservation.ElectronLNConservation, quantum.EdgeElectronLeptonNumber},
		{conservation.MuonLNConservation, quantum.EdgeMuonLeptonNumber},
		{conservation.TauLNConservation, quantum.EdgeTauLeptonNumber},
		{conservation.StrangenessConservation, quantum.EdgeStrangeness},
		{conservation.CharmConservation, quantum.EdgeCharmness},
		{conservation.BottomnessConservation, quantum.EdgeBottomness},
	}
	rng := rand.New(rand.NewSource(42))
	randomSide := func(q quantum.EdgeQN) ([]quantum.EdgeProperties, int) {
		n := 1 + rng.Intn(4)
		edges := make([]quantum.EdgeProperties, n)
		sum := 0
		for i := range edges {
			v := rng.Intn(5) - 2
			sum += v
			edges[i] = quantum.EdgeProperties{q: v}
		}
		return edges, sum
	}
	for _, tc := range rules {
		t.Run(tc.rule.Name(), func(t *testing.T) {
			assert.Equal(t, conservation.KindEdge, tc.rule.Kind())
			assert.Equal(t, []quantum.EdgeQN{tc.q}, tc.rule.EdgeQNs())
			for i := 0; i < 200; i++ {
				in, sumIn := randomSide(tc.q)
				out, sumOut := randomSide(tc.q)
				ok, err := tc.rule.CheckEdges(in, out)
				require.NoError(t, err)
				assert.Equal(t, sumIn == sumOut, ok)
			}
		})
	}
}

func TestCheckAdditive_Fractions(t *testing.T) {
	assert.True(t, conservation.CheckAdditive([]quantum.Fraction{half, half}, []quantum.Fraction{one}))
	assert.False(t, conservation.CheckAdditive([]quantum.Fraction{half}, nil))
	assert.True(t, conservation.CheckAdditive(nil, nil))
}

func TestCheckParity(t *testing.T) {
	m, p := quantum.Minus, quantum.Plus
	// J/psi -> pi+ pi-
	assert.True(t, conservation.CheckParity([]quantum.Parity{m}, []quantum.Parity{m, m}, one))
	assert.False(t, conservation.CheckParity([]quantum.Parity{m}, []quantum.Parity{m, m}, zero))
	assert.True(t, conservation.CheckParity([]quantum.Parity{p}, []quantum.Parity{m, m}, two))
	// undefined parity fails
	assert.False(t, conservation.CheckParity([]quantum.Parity{m}, []quantum.Parity{m, quantum.Undefined}, one))
	// other arities pass
	assert.True(t, conservation.CheckParity([]quantum.Parity{m}, []quantum.Parity{p, p, p}, zero))
	assert.True(t, conservation.CheckParity([]quantum.Parity{m, p}, []quantum.Parity{p}, zero))
	// non-integer L cannot fix the sign
	assert.False(t, conservation.CheckParity([]quantum.Parity{m}, []quantum.Parity{m, m}, half))
}

func TestCheckParityHelicity_ZeroHelicity(t *testing.T) {
	parent := conservation.HelicityParityEdgeInput{Parity: quantum.Plus, SpinMagnitude: one, SpinProjection: zero}
	daughter := conservation.HelicityParityEdgeInput{Parity: quantum.Minus, SpinMagnitude: zero, SpinProjection: zero}
	in := []conservation.HelicityParityEdgeInput{parent}
	out := []conservation.HelicityParityEdgeInput{daughter, daughter}

	// computed prefactor is -1 and both helicities are zero: fails regardless
	assert.False(t, conservation.CheckParityHelicity(in, out, quantum.Plus))
	assert.False(t, conservation.CheckParityHelicity(in, out, quantum.Minus))
}

func TestCheckParityHelicity(t *testing.T) {
	// J/psi(1-) -> gamma(1-) pi0(0-): prefactor = (-1)(-1)(-1)(-1)^(1+0-1) = -1
	in := []conservation.HelicityParityEdgeInput{{Parity: quantum.Minus, SpinMagnitude: one, SpinProjection: one}}
	out := []conservation.HelicityParityEdgeInput{
		{Parity: quantum.Minus, SpinMagnitude: one, SpinProjection: one},
		{Parity: quantum.Minus, SpinMagnitude: zero, SpinProjection: zero},
	}
	assert.True(t, conservation.CheckParityHelicity(in, out, quantum.Minus))
	assert.False(t, conservation.CheckParityHelicity(in, out, quantum.Plus))

	// undefined parities are skipped in the product
	out[1].Parity = quantum.Undefined
	assert.True(t, conservation.CheckParityHelicity(in, out, quantum.Plus))

	// 1 -> 3 passes
	assert.True(t, conservation.CheckParityHelicity(in, append(out, out[0]), quantum.Plus))
}

func TestCheckCParity(t *testing.T) {
	node := func(l, s quantum.Fraction) conservation.CParityNodeInput {
		return conservation.CParityNodeInput{LMagnitude: l, SMagnitude: s}
	}
	jpsi := conservation.CParityEdgeInput{SpinMagnitude: one, PID: 443, CParity: quantum.Minus}
	piPlus := conservation.CParityEdgeInput{SpinMagnitude: zero, PID: 211}
	piMinus := conservation.CParityEdgeInput{SpinMagnitude: zero, PID: -211}
	pi0 := conservation.CParityEdgeInput{SpinMagnitude: zero, PID: 111, CParity: quantum.Plus}
	gamma := conservation.CParityEdgeInput{SpinMagnitude: one, PID: 22, CParity: quantum.Minus}
	proton := conservation.CParityEdgeInput{SpinMagnitude: half, PID: 2212}
	antiproton := conservation.CParityEdgeInput{SpinMagnitude: half, PID: -2212}
	kMinus := conservation.CParityEdgeInput{SpinMagnitude: zero, PID: -321}

	in := []conservation.CParityEdgeInput{jpsi}

	// all defined: product comparison
	assert.True(t, conservation.CheckCParity(in, []conservation.CParityEdgeInput{gamma, pi0}, node(zero, zero)))
	assert.False(t, conservation.CheckCParity(in, []conservation.CParityEdgeInput{pi0, pi0}, node(zero, zero)))

	// boson pair: (-1)^L
	pions := []conservation.CParityEdgeInput{piPlus, piMinus}
	assert.True(t, conservation.CheckCParity(in, pions, node(one, zero)))
	assert.False(t, conservation.CheckCParity(in, pions, node(two, zero)))

	// fermion pair: (-1)^(L+S)
	nucleons := []conservation.CParityEdgeInput{proton, antiproton}
	assert.True(t, conservation.CheckCParity(in, nucleons, node(zero, one)))
	assert.False(t, conservation.CheckCParity(in, nucleons, node(one, one)))
	// half-integer S cannot be decided
	assert.True(t, conservation.CheckCParity(in, nucleons, node(one, half)))

	// not a particle/antiparticle pair: undecidable, passes
	assert.True(t, conservation.CheckCParity(in, []conservation.CParityEdgeInput{piPlus, kMinus}, node(two, zero)))
}

func TestCheckGParity(t *testing.T) {
	node := func(l, s quantum.Fraction) conservation.GParityNodeInput {
		return conservation.GParityNodeInput{LMagnitude: l, SMagnitude: s}
	}
	parent := func(g quantum.Parity) conservation.GParityEdgeInput {
		return conservation.GParityEdgeInput{IsospinMagnitude: one, SpinMagnitude: zero, PID: 9000111, GParity: g}
	}
	pair := []conservation.GParityEdgeInput{
		{IsospinMagnitude: half, SpinMagnitude: zero, PID: 321},
		{IsospinMagnitude: half, SpinMagnitude: zero, PID: -321},
	}

	// (-1)^(L+I) = (-1)^(0+1) = -1
	assert.True(t, conservation.CheckGParity([]conservation.GParityEdgeInput{parent(quantum.Minus)}, pair, node(zero, zero)))
	assert.False(t, conservation.CheckGParity([]conservation.GParityEdgeInput{parent(quantum.Plus)}, pair, node(zero, zero)))
	// the same on the 2 -> 1 side
	assert.True(t, conservation.CheckGParity(pair, []conservation.GParityEdgeInput{parent(quantum.Minus)}, node(zero, zero)))
	assert.False(t, conservation.CheckGParity(pair, []conservation.GParityEdgeInput{parent(quantum.Plus)}, node(zero, zero)))
	// undefined parent G-parity: passes
	assert.True(t, conservation.CheckGParity([]conservation.GParityEdgeInput{parent(quantum.Undefined)}, pair, node(zero, zero)))

	// fermion pair: (-1)^(L+S+I)
	nucleons := []conservation.GParityEdgeInput{
		{IsospinMagnitude: half, SpinMagnitude: half, PID: 2212},
		{IsospinMagnitude: half, SpinMagnitude: half, PID: -2212},
	}
	assert.True(t, conservation.CheckGParity([]conservation.GParityEdgeInput{parent(quantum.Plus)}, nucleons, node(zero, one)))
	assert.False(t, conservation.CheckGParity([]conservation.GParityEdgeInput{parent(quantum.Minus)}, nucleons, node(zero, one)))

	// all defined: plain product
	pion := conservation.GParityEdgeInput{IsospinMagnitude: one, SpinMagnitude: zero, PID: 211, GParity: quantum.Minus}
	omega := conservation.GParityEdgeInput{IsospinMagnitude: zero, SpinMagnitude: one, PID: 223, GParity: quantum.Minus}
	threePions := []conservation.GParityEdgeInput{pion, pion, pion}
	assert.True(t, conservation.CheckGParity([]conservation.GParityEdgeInput{omega}, threePions, node(zero, zero)))
	assert.False(t, conservation.CheckGParity([]conservation.GParityEdgeInput{omega}, threePions[:2], node(zero, zero)))

	// other arities with undefined values pass
	assert.True(t, conservation.CheckGParity([]conservation.GParityEdgeInput{parent(quantum.Plus)}, append(pair, pair[0]), node(zero, zero)))
}

func TestCheckIdenticalParticleSymmetrization(t *testing.T) {
	pi0 := conservation.IdenticalParticleSymmetryOutEdgeInput{SpinMagnitude: zero, SpinProjection: zero, PID: 111}
	proton := func(proj quantum.Fraction) conservation.IdenticalParticleSymmetryOutEdgeInput {
		return conservation.IdenticalParticleSymmetryOutEdgeInput{SpinMagnitude: half, SpinProjection: proj, PID: 2212}
	}
	bosons := []conservation.IdenticalParticleSymmetryOutEdgeInput{pi0, pi0}

	assert.False(t, conservation.CheckIdenticalParticleSymmetrization([]quantum.Parity{quantum.Minus}, bosons))
	assert.True(t, conservation.CheckIdenticalParticleSymmetrization([]quantum.Parity{quantum.Plus}, bosons))
	assert.True(t, conservation.CheckIdenticalParticleSymmetrization([]quantum.Parity{quantum.Undefined}, bosons))

	fermions := []conservation.IdenticalParticleSymmetryOutEdgeInput{proton(half), proton(half)}
	assert.False(t, conservation.CheckIdenticalParticleSymmetrization([]quantum.Parity{quantum.Plus}, fermions))
	assert.True(t, conservation.CheckIdenticalParticleSymmetrization([]quantum.Parity{quantum.Minus}, fermions))

	// different projections are distinguishable
	mixed := []conservation.IdenticalParticleSymmetryOutEdgeInput{proton(half), proton(mhalf)}
	assert.True(t, conservation.CheckIdenticalParticleSymmetrization([]quantum.Parity{quantum.Plus}, mixed))

	// three identical bosons use the same criterion
	assert.False(t, conservation.CheckIdenticalParticleSymmetrization([]quantum.Parity{quantum.Minus}, append(bosons, pi0)))

	// two ingoing states: not applicable
	assert.True(t, conservation.CheckIdenticalParticleSymmetrization([]quantum.Parity{quantum.Minus, quantum.Minus}, bosons))
	// single daughter: not applicable
	assert.True(t, conservation.CheckIdenticalParticleSymmetrization([]quantum.Parity{quantum.Minus}, bosons[:1]))
}

func TestCheckMass(t *testing.T) {
	in := []conservation.MassEdgeInput{{Mass: 1.0}}
	out := []conservation.MassEdgeInput{{Mass: 0.5}, {Mass: 0.5}}

	// strict inequality: equal masses with zero widths fail
	assert.False(t, conservation.CheckMass(in, out, conservation.DefaultMassWidthFactor))
	assert.True(t, conservation.CheckMass([]conservation.MassEdgeInput{{Mass: 1.0, Width: 0.01}}, out, conservation.DefaultMassWidthFactor))
	assert.True(t, conservation.CheckMass(in, []conservation.MassEdgeInput{{Mass: 0.5}, {Mass: 0.6, Width: 0.1}}, 3))
	assert.False(t, conservation.CheckMass(in, []conservation.MassEdgeInput{{Mass: 0.5}, {Mass: 0.6, Width: 0.01}}, 3))

	rule := conservation.NewMassConservation(conservation.DefaultMassWidthFactor)
	assert.Equal(t, "MassConservation", rule.Name())
	ok, err := rule.CheckEdges(
		[]quantum.EdgeProperties{{quantum.EdgeMass: 3.097, quantum.EdgeWidth: 0.0000926}},
		[]quantum.EdgeProperties{{quantum.EdgeMass: 0.0}, {quantum.EdgeMass: 0.135, quantum.EdgeWidth: nil}},
	)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCheckIsospin(t *testing.T) {
	iso := func(mag, proj quantum.Fraction) conservation.IsoSpinEdgeInput {
		return conservation.IsoSpinEdgeInput{Magnitude: mag, Projection: proj}
	}
	rho0 := []conservation.IsoSpinEdgeInput{iso(one, zero)}

	assert.True(t, conservation.CheckIsospin(rho0, []conservation.IsoSpinEdgeInput{iso(one, one), iso(one, quantum.Int(-1))}))
	// rho0 -> pi0 pi0 vanishes: <1 0; 1 0 | 1 0> = 0
	assert.False(t, conservation.CheckIsospin(rho0, []conservation.IsoSpinEdgeInput{iso(one, zero), iso(one, zero)}))
	// projection sums differ
	assert.False(t, conservation.CheckIsospin(rho0, []conservation.IsoSpinEdgeInput{iso(one, one), iso(one, zero)}))
	// invalid state on one side
	assert.False(t, conservation.CheckIsospin([]conservation.IsoSpinEdgeInput{iso(half, one)}, []conservation.IsoSpinEdgeInput{iso(half, half), iso(zero, half)}))
	// Delta++ -> p pi+
	assert.True(t, conservation.CheckIsospin(
		[]conservation.IsoSpinEdgeInput{iso(quantum.Half(3), quantum.Half(3))},
		[]conservation.IsoSpinEdgeInput{iso(half, half), iso(one, one)}))
	// omega(I=0) -> pi+ pi-: I=0 reachable
	assert.True(t, conservation.CheckIsospin(
		[]conservation.IsoSpinEdgeInput{iso(zero, zero)},
		[]conservation.IsoSpinEdgeInput{iso(one, one), iso(one, quantum.Int(-1))}))
	// I=2 parent cannot come from I=1/2 + I=1/2
	assert.False(t, conservation.CheckIsospin(
		[]conservation.IsoSpinEdgeInput{iso(two, zero)},
		[]conservation.IsoSpinEdgeInput{iso(half, half), iso(half, mhalf)}))
}

func TestCheckSpin(t *testing.T) {
	s := func(mag, proj quantum.Fraction) conservation.SpinEdgeInput {
		return conservation.SpinEdgeInput{Magnitude: mag, Projection: proj}
	}
	node := func(l, lz, sm, sz quantum.Fraction) conservation.SpinNodeInput {
		return conservation.SpinNodeInput{LMagnitude: l, LProjection: lz, SMagnitude: sm, SProjection: sz}
	}
	rho := []conservation.SpinEdgeInput{s(one, zero)}
	pions := []conservation.SpinEdgeInput{s(zero, zero), s(zero, zero)}

	assert.True(t, conservation.CheckSpin(rho, pions, node(one, zero, zero, zero)))
	assert.False(t, conservation.CheckSpin(rho, pions, node(zero, zero, zero, zero)))
	// S not reachable from the daughters
	assert.False(t, conservation.CheckSpin(rho, pions, node(zero, zero, one, zero)))
	// projection must match
	assert.False(t, conservation.CheckSpin([]conservation.SpinEdgeInput{s(one, one)}, pions, node(one, zero, zero, zero)))
	assert.True(t, conservation.CheckSpin([]conservation.SpinEdgeInput{s(one, one)}, pions, node(one, one, zero, zero)))
	// 2 -> 1 uses the same coupling
	assert.True(t, conservation.CheckSpin(pions, rho, node(one, zero, zero, zero)))

	// other arities: only integer-ness of the sums
	assert.True(t, conservation.CheckSpin(
		[]conservation.SpinEdgeInput{s(half, half)},
		[]conservation.SpinEdgeInput{s(half, half), s(half, half), s(half, mhalf)}, node(zero, zero, zero, zero)))
	assert.False(t, conservation.CheckSpin(
		[]conservation.SpinEdgeInput{s(one, zero)},
		[]conservation.SpinEdgeInput{s(half, half), s(half, half), s(half, mhalf)}, node(zero, zero, zero, zero)))
}

func TestCheckSpinMagnitude(t *testing.T) {
	node := func(l, sm quantum.Fraction) conservation.SpinMagnitudeNodeInput {
		return conservation.SpinMagnitudeNodeInput{LMagnitude: l, SMagnitude: sm}
	}
	in := []quantum.Fraction{one}
	out := []quantum.Fraction{zero, zero}

	assert.True(t, conservation.CheckSpinMagnitude(in, out, node(one, zero)))
	assert.False(t, conservation.CheckSpinMagnitude(in, out, node(zero, zero)))
	assert.False(t, conservation.CheckSpinMagnitude(in, out, node(zero, one)))
	// J/psi -> p pbar with S=1, L=0 or L=2
	assert.True(t, conservation.CheckSpinMagnitude(in, []quantum.Fraction{half, half}, node(zero, one)))
	assert.True(t, conservation.CheckSpinMagnitude(in, []quantum.Fraction{half, half}, node(two, one)))
	assert.False(t, conservation.CheckSpinMagnitude(in, []quantum.Fraction{half, half}, node(quantum.Int(3), one)))
	// n-body fallback
	assert.True(t, conservation.CheckSpinMagnitude(in, []quantum.Fraction{zero, zero, zero}, node(zero, zero)))
	assert.False(t, conservation.CheckSpinMagnitude(in, []quantum.Fraction{half, zero, zero}, node(zero, zero)))
}

func TestCheckHelicity(t *testing.T) {
	assert.True(t, conservation.CheckHelicity([]quantum.Fraction{one}, []quantum.Fraction{one, zero}))
	assert.True(t, conservation.CheckHelicity([]quantum.Fraction{one}, []quantum.Fraction{one, one}))
	assert.False(t, conservation.CheckHelicity([]quantum.Fraction{one}, []quantum.Fraction{one, quantum.Int(-1)}))
	assert.True(t, conservation.CheckHelicity([]quantum.Fraction{half, half}, []quantum.Fraction{two}))
}

func TestCheckClebschGordanHelicityToCanonical(t *testing.T) {
	s := func(mag, proj quantum.Fraction) conservation.SpinEdgeInput {
		return conservation.SpinEdgeInput{Magnitude: mag, Projection: proj}
	}
	node := func(l, lz, sm, sz quantum.Fraction) conservation.SpinNodeInput {
		return conservation.SpinNodeInput{LMagnitude: l, LProjection: lz, SMagnitude: sm, SProjection: sz}
	}
	rho := []conservation.SpinEdgeInput{s(one, zero)}
	pions := []conservation.SpinEdgeInput{s(zero, zero), s(zero, zero)}

	assert.True(t, conservation.CheckClebschGordanHelicityToCanonical(rho, pions, node(one, zero, zero, zero)))
	// S projection must equal λ1 − λ2
	assert.False(t, conservation.CheckClebschGordanHelicityToCanonical(rho, pions, node(one, zero, one, one)))
	// <1 0; 1 0 | 1 0> vanishes
	vectors := []conservation.SpinEdgeInput{s(one, zero), s(one, zero)}
	assert.False(t, conservation.CheckClebschGordanHelicityToCanonical(rho, vectors, node(one, zero, one, zero)))
	assert.True(t, conservation.CheckClebschGordanHelicityToCanonical(rho, vectors, node(one, zero, two, zero)))
	// λ1 − λ2 = 2 exceeds the parent spin
	assert.False(t, conservation.CheckClebschGordanHelicityToCanonical(rho,
		[]conservation.SpinEdgeInput{s(one, one), s(one, quantum.Int(-1))}, node(one, zero, two, two)))
	// other arities pass
	assert.True(t, conservation.CheckClebschGordanHelicityToCanonical(pions, rho, node(one, zero, zero, zero)))
}

func TestCheckGellMannNishijima(t *testing.T) {
	tests := []struct {
		name string
		in   conservation.GellMannNishijimaInput
		want bool
	}{
		{"pi+", conservation.GellMannNishijimaInput{Charge: one, IsospinProjection: one}, true},
		{"proton", conservation.GellMannNishijimaInput{Charge: one, IsospinProjection: half, BaryonNumber: one}, true},
		{"K+", conservation.GellMannNishijimaInput{Charge: one, IsospinProjection: half, Strangeness: one}, true},
		{"D0", conservation.GellMannNishijimaInput{Charge: zero, IsospinProjection: mhalf, Charmness: one}, true},
		{"wrong charge", conservation.GellMannNishijimaInput{Charge: zero, IsospinProjection: one}, false},
		{"electron exempt", conservation.GellMannNishijimaInput{Charge: quantum.Int(-1), ElectronLeptonNumber: one}, true},
		{"tau exempt", conservation.GellMannNishijimaInput{Charge: quantum.Int(-1), TauLeptonNumber: one}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, conservation.CheckGellMannNishijima(tt.in))
		})
	}
}
