// File: particle.go
// Role: the Particle value type and its conversion to edge properties.
// Determinism:
//   - EdgeProperties always emits the same key set for a given particle.
// Concurrency:
//   - Particle is a value type; Isospin is never mutated after construction.

package particle

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/qrules/quantum"
)

// IsospinState is an isospin magnitude with its third component.
type IsospinState struct {
	Magnitude  quantum.Fraction
	Projection quantum.Fraction
}

// String renders "(I, I3)", e.g. "(1/2, -1/2)".
func (s IsospinState) String() string {
	return fmt.Sprintf("(%s, %s)", s.Magnitude, s.Projection.SignedString())
}

// Particle is the static definition of one particle state.
//
// Parities use quantum.Undefined where a number does not apply, e.g. the
// C-parity of a charged pion. Isospin is nil for states without a defined
// isospin (leptons, the photon).
type Particle struct {
	Name  string
	PID   int64
	Mass  float64
	Width float64

	Spin    quantum.Fraction
	Charge  int64
	Isospin *IsospinState

	Strangeness  int64
	Charmness    int64
	Bottomness   int64
	Topness      int64
	BaryonNumber int64
	ElectronLN   int64
	MuonLN       int64
	TauLN        int64

	Parity  quantum.Parity
	CParity quantum.Parity
	GParity quantum.Parity
}

// IsLepton reports whether p carries any lepton number.
func (p Particle) IsLepton() bool {
	return p.ElectronLN != 0 || p.MuonLN != 0 || p.TauLN != 0
}

// IsAntiparticleOf reports whether p and q form a particle-antiparticle pair.
// Self-conjugate states (pi0, gamma) are their own antiparticle.
func (p Particle) IsAntiparticleOf(q Particle) bool {
	return p.PID == -q.PID || (p.PID == q.PID && p.selfConjugate())
}

// selfConjugate follows the PDG numbering: self-conjugate states carry no
// negative PID partner, which shows in a defined C-parity.
func (p Particle) selfConjugate() bool { return p.CParity.Defined() }

// String returns the particle name.
func (p Particle) String() string { return p.Name }

// EdgeProperties returns p as a raw edge assignment without spin projection.
//
// The parity keys are always present; Undefined parities are stored as nil so
// that rules requiring a parity see an assigned but undefined value.
func EdgeProperties(p Particle) quantum.EdgeProperties {
	props := quantum.EdgeProperties{
		quantum.EdgePID:                  p.PID,
		quantum.EdgeMass:                 p.Mass,
		quantum.EdgeWidth:                p.Width,
		quantum.EdgeSpinMagnitude:        p.Spin,
		quantum.EdgeCharge:               p.Charge,
		quantum.EdgeStrangeness:          p.Strangeness,
		quantum.EdgeCharmness:            p.Charmness,
		quantum.EdgeBottomness:           p.Bottomness,
		quantum.EdgeTopness:              p.Topness,
		quantum.EdgeBaryonNumber:         p.BaryonNumber,
		quantum.EdgeElectronLeptonNumber: p.ElectronLN,
		quantum.EdgeMuonLeptonNumber:     p.MuonLN,
		quantum.EdgeTauLeptonNumber:      p.TauLN,
		quantum.EdgeParity:               parityValue(p.Parity),
		quantum.EdgeCParity:              parityValue(p.CParity),
		quantum.EdgeGParity:              parityValue(p.GParity),
	}
	if p.Isospin != nil {
		props[quantum.EdgeIsospinMagnitude] = p.Isospin.Magnitude
		props[quantum.EdgeIsospinProjection] = p.Isospin.Projection
	}

	return props
}

// StateProperties is EdgeProperties plus a spin projection (helicity).
func StateProperties(p Particle, spinProjection quantum.Fraction) quantum.EdgeProperties {
	props := EdgeProperties(p)
	props[quantum.EdgeSpinProjection] = spinProjection

	return props
}

func parityValue(p quantum.Parity) any {
	if !p.Defined() {
		return nil
	}

	return p
}

// SpinProjections lists -J, -J+1, ..., J for the particle spin J.
// Massless states only have the extreme helicities ±J.
func (p Particle) SpinProjections() []quantum.Fraction {
	if p.Mass == 0 && !p.Spin.IsZero() {
		return []quantum.Fraction{p.Spin.Neg(), p.Spin}
	}
	var out []quantum.Fraction
	for m := p.Spin.Neg(); !p.Spin.Less(m); m = m.Add(quantum.Int(1)) {
		out = append(out, m)
	}

	return out
}

// IsNeutrino reports whether p is a neutrino, following the "nu(" naming.
func (p Particle) IsNeutrino() bool { return strings.HasPrefix(p.Name, "nu(") }
