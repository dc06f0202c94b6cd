// File: inputs.go
// Role: typed rule-input records and their builders from raw assignments.
// Each builder reads only the numbers listed in its QNs; required numbers that
// are absent (or nil) yield ErrMissingQuantumNumber, values of the wrong type
// yield ErrInvalidQuantumNumber. Optional numbers default to zero / Undefined.

package conservation

import (
	"fmt"

	"github.com/katalvlaran/qrules/quantum"
)

// SpinEdgeInput is the spin state of one edge.
type SpinEdgeInput struct {
	Magnitude  quantum.Fraction
	Projection quantum.Fraction
}

// IsoSpinEdgeInput is the isospin state of one edge.
type IsoSpinEdgeInput struct {
	Magnitude  quantum.Fraction
	Projection quantum.Fraction
}

// HelicityParityEdgeInput feeds CheckParityHelicity.
type HelicityParityEdgeInput struct {
	Parity         quantum.Parity
	SpinMagnitude  quantum.Fraction
	SpinProjection quantum.Fraction
}

// CParityEdgeInput feeds CheckCParity. CParity may be Undefined.
type CParityEdgeInput struct {
	SpinMagnitude quantum.Fraction
	PID           int64
	CParity       quantum.Parity
}

// CParityNodeInput holds the L and S magnitudes of the node.
type CParityNodeInput struct {
	LMagnitude quantum.Fraction
	SMagnitude quantum.Fraction
}

// GParityEdgeInput feeds CheckGParity. GParity may be Undefined.
type GParityEdgeInput struct {
	IsospinMagnitude quantum.Fraction
	SpinMagnitude    quantum.Fraction
	PID              int64
	GParity          quantum.Parity
}

// GParityNodeInput holds the L and S magnitudes of the node.
type GParityNodeInput struct {
	LMagnitude quantum.Fraction
	SMagnitude quantum.Fraction
}

// IdenticalParticleSymmetryOutEdgeInput describes one outgoing edge for
// CheckIdenticalParticleSymmetrization.
type IdenticalParticleSymmetryOutEdgeInput struct {
	SpinMagnitude  quantum.Fraction
	SpinProjection quantum.Fraction
	PID            int64
}

// SpinNodeInput is the full (L, S) content of a node.
type SpinNodeInput struct {
	LMagnitude  quantum.Fraction
	LProjection quantum.Fraction
	SMagnitude  quantum.Fraction
	SProjection quantum.Fraction
}

// SpinMagnitudeNodeInput holds only L and S magnitudes.
type SpinMagnitudeNodeInput struct {
	LMagnitude quantum.Fraction
	SMagnitude quantum.Fraction
}

// GellMannNishijimaInput feeds CheckGellMannNishijima.
// Every field except Charge is optional and defaults to 0.
type GellMannNishijimaInput struct {
	Charge               quantum.Fraction
	IsospinProjection    quantum.Fraction
	Strangeness          quantum.Fraction
	Charmness            quantum.Fraction
	Bottomness           quantum.Fraction
	Topness              quantum.Fraction
	BaryonNumber         quantum.Fraction
	ElectronLeptonNumber quantum.Fraction
	MuonLeptonNumber     quantum.Fraction
	TauLeptonNumber      quantum.Fraction
}

// MassEdgeInput holds mass and width of one edge. Width defaults to 0.
type MassEdgeInput struct {
	Mass  float64
	Width float64
}

// Raw value accessors.

func edgeValue(props quantum.EdgeProperties, q quantum.EdgeQN) (any, error) {
	v, ok := props[q]
	if !ok || v == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingQuantumNumber, q)
	}

	return v, nil
}

func edgeFraction(props quantum.EdgeProperties, q quantum.EdgeQN) (quantum.Fraction, error) {
	v, err := edgeValue(props, q)
	if err != nil {
		return quantum.Fraction{}, err
	}
	f, err := quantum.ToFraction(v)
	if err != nil {
		return quantum.Fraction{}, fmt.Errorf("%w: %s: %w", ErrInvalidQuantumNumber, q, err)
	}

	return f, nil
}

func optionalEdgeFraction(props quantum.EdgeProperties, q quantum.EdgeQN) (quantum.Fraction, error) {
	if v, ok := props[q]; !ok || v == nil {
		return quantum.Fraction{}, nil
	}

	return edgeFraction(props, q)
}

func edgeInt(props quantum.EdgeProperties, q quantum.EdgeQN) (int64, error) {
	v, err := edgeValue(props, q)
	if err != nil {
		return 0, err
	}
	n, err := quantum.ToInt(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalidQuantumNumber, q, err)
	}

	return n, nil
}

func edgeFloat(props quantum.EdgeProperties, q quantum.EdgeQN, required bool) (float64, error) {
	v, ok := props[q]
	if !ok || v == nil {
		if required {
			return 0, fmt.Errorf("%w: %s", ErrMissingQuantumNumber, q)
		}
		return 0, nil
	}
	x, err := quantum.ToFloat(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalidQuantumNumber, q, err)
	}

	return x, nil
}

// edgeParity reads a parity. When required, the key must be present but
// may hold nil (Undefined); otherwise absence also means Undefined.
func edgeParity(props quantum.EdgeProperties, q quantum.EdgeQN, required bool) (quantum.Parity, error) {
	v, ok := props[q]
	if !ok {
		if required {
			return quantum.Undefined, fmt.Errorf("%w: %s", ErrMissingQuantumNumber, q)
		}
		return quantum.Undefined, nil
	}
	p, err := quantum.ToParity(v)
	if err != nil {
		return quantum.Undefined, fmt.Errorf("%w: %s: %w", ErrInvalidQuantumNumber, q, err)
	}

	return p, nil
}

func nodeFraction(props quantum.NodeProperties, q quantum.NodeQN) (quantum.Fraction, error) {
	v, ok := props[q]
	if !ok || v == nil {
		return quantum.Fraction{}, fmt.Errorf("%w: %s", ErrMissingQuantumNumber, q)
	}
	f, err := quantum.ToFraction(v)
	if err != nil {
		return quantum.Fraction{}, fmt.Errorf("%w: %s: %w", ErrInvalidQuantumNumber, q, err)
	}

	return f, nil
}

// Single-number inputs.

// FractionEdge reads one required numeric edge number.
func FractionEdge(q quantum.EdgeQN) EdgeInput[quantum.Fraction] {
	return EdgeInput[quantum.Fraction]{
		QNs:   []quantum.EdgeQN{q},
		Build: func(p quantum.EdgeProperties) (quantum.Fraction, error) { return edgeFraction(p, q) },
	}
}

// ParityEdge reads one parity-like edge number; nil means Undefined.
func ParityEdge(q quantum.EdgeQN) EdgeInput[quantum.Parity] {
	return EdgeInput[quantum.Parity]{
		QNs:   []quantum.EdgeQN{q},
		Build: func(p quantum.EdgeProperties) (quantum.Parity, error) { return edgeParity(p, q, true) },
	}
}

// FractionNode reads one required numeric node number.
func FractionNode(q quantum.NodeQN) NodeInput[quantum.Fraction] {
	return NodeInput[quantum.Fraction]{
		QNs:   []quantum.NodeQN{q},
		Build: func(p quantum.NodeProperties) (quantum.Fraction, error) { return nodeFraction(p, q) },
	}
}

// ParityNode reads one required, defined parity-like node number.
func ParityNode(q quantum.NodeQN) NodeInput[quantum.Parity] {
	return NodeInput[quantum.Parity]{
		QNs: []quantum.NodeQN{q},
		Build: func(p quantum.NodeProperties) (quantum.Parity, error) {
			v, ok := p[q]
			if !ok || v == nil {
				return quantum.Undefined, fmt.Errorf("%w: %s", ErrMissingQuantumNumber, q)
			}
			par, err := quantum.ToParity(v)
			if err != nil {
				return quantum.Undefined, fmt.Errorf("%w: %s: %w", ErrInvalidQuantumNumber, q, err)
			}
			return par, nil
		},
	}
}

// Record inputs.

// SpinEdge reads spin magnitude and projection.
var SpinEdge = EdgeInput[SpinEdgeInput]{
	QNs: []quantum.EdgeQN{quantum.EdgeSpinMagnitude, quantum.EdgeSpinProjection},
	Build: func(p quantum.EdgeProperties) (SpinEdgeInput, error) {
		var (
			in  SpinEdgeInput
			err error
		)
		if in.Magnitude, err = edgeFraction(p, quantum.EdgeSpinMagnitude); err != nil {
			return in, err
		}
		in.Projection, err = edgeFraction(p, quantum.EdgeSpinProjection)

		return in, err
	},
}

// IsoSpinEdge reads isospin magnitude and projection.
var IsoSpinEdge = EdgeInput[IsoSpinEdgeInput]{
	QNs: []quantum.EdgeQN{quantum.EdgeIsospinMagnitude, quantum.EdgeIsospinProjection},
	Build: func(p quantum.EdgeProperties) (IsoSpinEdgeInput, error) {
		var (
			in  IsoSpinEdgeInput
			err error
		)
		if in.Magnitude, err = edgeFraction(p, quantum.EdgeIsospinMagnitude); err != nil {
			return in, err
		}
		in.Projection, err = edgeFraction(p, quantum.EdgeIsospinProjection)

		return in, err
	},
}

// HelicityParityEdge reads parity, spin magnitude and helicity.
var HelicityParityEdge = EdgeInput[HelicityParityEdgeInput]{
	QNs: []quantum.EdgeQN{quantum.EdgeParity, quantum.EdgeSpinMagnitude, quantum.EdgeSpinProjection},
	Build: func(p quantum.EdgeProperties) (HelicityParityEdgeInput, error) {
		var (
			in  HelicityParityEdgeInput
			err error
		)
		if in.Parity, err = edgeParity(p, quantum.EdgeParity, true); err != nil {
			return in, err
		}
		if in.SpinMagnitude, err = edgeFraction(p, quantum.EdgeSpinMagnitude); err != nil {
			return in, err
		}
		in.SpinProjection, err = edgeFraction(p, quantum.EdgeSpinProjection)

		return in, err
	},
}

// CParityEdge reads spin magnitude, pid and the optional C-parity.
var CParityEdge = EdgeInput[CParityEdgeInput]{
	QNs: []quantum.EdgeQN{quantum.EdgeSpinMagnitude, quantum.EdgePID, quantum.EdgeCParity},
	Build: func(p quantum.EdgeProperties) (CParityEdgeInput, error) {
		var (
			in  CParityEdgeInput
			err error
		)
		if in.SpinMagnitude, err = edgeFraction(p, quantum.EdgeSpinMagnitude); err != nil {
			return in, err
		}
		if in.PID, err = edgeInt(p, quantum.EdgePID); err != nil {
			return in, err
		}
		in.CParity, err = edgeParity(p, quantum.EdgeCParity, false)

		return in, err
	},
}

// GParityEdge reads isospin and spin magnitudes, pid and the optional G-parity.
var GParityEdge = EdgeInput[GParityEdgeInput]{
	QNs: []quantum.EdgeQN{quantum.EdgeIsospinMagnitude, quantum.EdgeSpinMagnitude, quantum.EdgePID, quantum.EdgeGParity},
	Build: func(p quantum.EdgeProperties) (GParityEdgeInput, error) {
		var (
			in  GParityEdgeInput
			err error
		)
		if in.IsospinMagnitude, err = edgeFraction(p, quantum.EdgeIsospinMagnitude); err != nil {
			return in, err
		}
		if in.SpinMagnitude, err = edgeFraction(p, quantum.EdgeSpinMagnitude); err != nil {
			return in, err
		}
		if in.PID, err = edgeInt(p, quantum.EdgePID); err != nil {
			return in, err
		}
		in.GParity, err = edgeParity(p, quantum.EdgeGParity, false)

		return in, err
	},
}

// IdenticalParticleSymmetryOutEdge reads spin magnitude, projection and pid.
var IdenticalParticleSymmetryOutEdge = EdgeInput[IdenticalParticleSymmetryOutEdgeInput]{
	QNs: []quantum.EdgeQN{quantum.EdgeSpinMagnitude, quantum.EdgeSpinProjection, quantum.EdgePID},
	Build: func(p quantum.EdgeProperties) (IdenticalParticleSymmetryOutEdgeInput, error) {
		var (
			in  IdenticalParticleSymmetryOutEdgeInput
			err error
		)
		if in.SpinMagnitude, err = edgeFraction(p, quantum.EdgeSpinMagnitude); err != nil {
			return in, err
		}
		if in.SpinProjection, err = edgeFraction(p, quantum.EdgeSpinProjection); err != nil {
			return in, err
		}
		in.PID, err = edgeInt(p, quantum.EdgePID)

		return in, err
	},
}

// GellMannNishijimaEdge reads the charge and every optional additive number.
var GellMannNishijimaEdge = EdgeInput[GellMannNishijimaInput]{
	QNs: []quantum.EdgeQN{
		quantum.EdgeCharge,
		quantum.EdgeIsospinProjection,
		quantum.EdgeStrangeness,
		quantum.EdgeCharmness,
		quantum.EdgeBottomness,
		quantum.EdgeTopness,
		quantum.EdgeBaryonNumber,
		quantum.EdgeElectronLeptonNumber,
		quantum.EdgeMuonLeptonNumber,
		quantum.EdgeTauLeptonNumber,
	},
	Build: func(p quantum.EdgeProperties) (GellMannNishijimaInput, error) {
		var (
			in  GellMannNishijimaInput
			err error
		)
		if in.Charge, err = edgeFraction(p, quantum.EdgeCharge); err != nil {
			return in, err
		}
		optional := []struct {
			q   quantum.EdgeQN
			dst *quantum.Fraction
		}{
			{quantum.EdgeIsospinProjection, &in.IsospinProjection},
			{quantum.EdgeStrangeness, &in.Strangeness},
			{quantum.EdgeCharmness, &in.Charmness},
			{quantum.EdgeBottomness, &in.Bottomness},
			{quantum.EdgeTopness, &in.Topness},
			{quantum.EdgeBaryonNumber, &in.BaryonNumber},
			{quantum.EdgeElectronLeptonNumber, &in.ElectronLeptonNumber},
			{quantum.EdgeMuonLeptonNumber, &in.MuonLeptonNumber},
			{quantum.EdgeTauLeptonNumber, &in.TauLeptonNumber},
		}
		for _, o := range optional {
			if *o.dst, err = optionalEdgeFraction(p, o.q); err != nil {
				return in, err
			}
		}

		return in, nil
	},
}

// MassEdge reads the mass and the optional width.
var MassEdge = EdgeInput[MassEdgeInput]{
	QNs: []quantum.EdgeQN{quantum.EdgeMass, quantum.EdgeWidth},
	Build: func(p quantum.EdgeProperties) (MassEdgeInput, error) {
		var (
			in  MassEdgeInput
			err error
		)
		if in.Mass, err = edgeFloat(p, quantum.EdgeMass, true); err != nil {
			return in, err
		}
		in.Width, err = edgeFloat(p, quantum.EdgeWidth, false)

		return in, err
	},
}

// SpinNode reads L and S magnitudes and projections.
var SpinNode = NodeInput[SpinNodeInput]{
	QNs: []quantum.NodeQN{quantum.NodeLMagnitude, quantum.NodeLProjection, quantum.NodeSMagnitude, quantum.NodeSProjection},
	Build: func(p quantum.NodeProperties) (SpinNodeInput, error) {
		var (
			in  SpinNodeInput
			err error
		)
		if in.LMagnitude, err = nodeFraction(p, quantum.NodeLMagnitude); err != nil {
			return in, err
		}
		if in.LProjection, err = nodeFraction(p, quantum.NodeLProjection); err != nil {
			return in, err
		}
		if in.SMagnitude, err = nodeFraction(p, quantum.NodeSMagnitude); err != nil {
			return in, err
		}
		in.SProjection, err = nodeFraction(p, quantum.NodeSProjection)

		return in, err
	},
}

// SpinMagnitudeNode reads L and S magnitudes.
var SpinMagnitudeNode = NodeInput[SpinMagnitudeNodeInput]{
	QNs: []quantum.NodeQN{quantum.NodeLMagnitude, quantum.NodeSMagnitude},
	Build: func(p quantum.NodeProperties) (SpinMagnitudeNodeInput, error) {
		var (
			in  SpinMagnitudeNodeInput
			err error
		)
		if in.LMagnitude, err = nodeFraction(p, quantum.NodeLMagnitude); err != nil {
			return in, err
		}
		in.SMagnitude, err = nodeFraction(p, quantum.NodeSMagnitude)

		return in, err
	},
}

// CParityNode reads L and S magnitudes for CheckCParity.
var CParityNode = NodeInput[CParityNodeInput]{
	QNs: SpinMagnitudeNode.QNs,
	Build: func(p quantum.NodeProperties) (CParityNodeInput, error) {
		in, err := SpinMagnitudeNode.Build(p)

		return CParityNodeInput(in), err
	},
}

// GParityNode reads L and S magnitudes for CheckGParity.
var GParityNode = NodeInput[GParityNodeInput]{
	QNs: SpinMagnitudeNode.QNs,
	Build: func(p quantum.NodeProperties) (GParityNodeInput, error) {
		in, err := SpinMagnitudeNode.Build(p)

		return GParityNodeInput(in), err
	},
}
