// File: create.go
// Role: construction of the layered WEAK → EM → STRONG settings.
// Determinism:
//   - Domains depend only on the particle list and the options; rule sets
//     depend only on the formalism and the options.
// Concurrency:
//   - Each returned InteractionSettings owns its maps.

package settings

import (
	"fmt"

	"github.com/katalvlaran/qrules/conservation"
	"github.com/katalvlaran/qrules/domain"
	"github.com/katalvlaran/qrules/particle"
	"github.com/katalvlaran/qrules/quantum"
)

// Interaction strengths attached to the node settings of each layer.
const (
	WeakStrength   = 1e-4
	EMStrength     = 1.0
	StrongStrength = 60.0
)

var (
	signedUnit = []quantum.Fraction{quantum.Int(-1), quantum.Int(1)}
	leptonUnit = []quantum.Fraction{quantum.Int(-1), quantum.Int(0), quantum.Int(1)}
)

// EdgeDomains derives the edge search domains from a particle list.
//
// Lepton numbers range over {-1, 0, +1}, parity over {-1, +1} and C/G-parity
// over {-1, +1, None}. Charge, baryon number, strangeness, charmness and
// bottomness range over ±(0..max |value|). Spin and isospin magnitudes range
// over 0..max in steps of 1/2 (states without isospin count as 0); their
// projections are the mirrored magnitudes.
func EdgeDomains(db *particle.Collection) map[quantum.EdgeQN]Domain {
	all := db.All()
	collect := func(get func(particle.Particle) quantum.Fraction) []quantum.Fraction {
		out := make([]quantum.Fraction, len(all))
		for i, p := range all {
			out[i] = get(p)
		}
		return out
	}
	signedInt := func(get func(particle.Particle) int64) Domain {
		bound := domain.MaxInteger(collect(func(p particle.Particle) quantum.Fraction { return quantum.Int(get(p)) }))
		return NewDomain(domain.Mirror(domain.Integers(0, bound))...)
	}
	halves := func(get func(particle.Particle) quantum.Fraction) []quantum.Fraction {
		// bounds are multiples of 1/2 by construction
		values, _ := domain.HalfIntegers(quantum.Int(0), domain.MaxHalfInteger(collect(get)))
		return values
	}

	spins := halves(func(p particle.Particle) quantum.Fraction { return p.Spin })
	isospins := halves(func(p particle.Particle) quantum.Fraction {
		if p.Isospin == nil {
			return quantum.Int(0)
		}
		return p.Isospin.Magnitude
	})

	return map[quantum.EdgeQN]Domain{
		quantum.EdgeElectronLeptonNumber: NewDomain(leptonUnit...),
		quantum.EdgeMuonLeptonNumber:     NewDomain(leptonUnit...),
		quantum.EdgeTauLeptonNumber:      NewDomain(leptonUnit...),
		quantum.EdgeParity:               NewDomain(signedUnit...),
		quantum.EdgeCParity:              NewDomainWithUndefined(signedUnit...),
		quantum.EdgeGParity:              NewDomainWithUndefined(signedUnit...),

		quantum.EdgeCharge:       signedInt(func(p particle.Particle) int64 { return p.Charge }),
		quantum.EdgeBaryonNumber: signedInt(func(p particle.Particle) int64 { return p.BaryonNumber }),
		quantum.EdgeStrangeness:  signedInt(func(p particle.Particle) int64 { return p.Strangeness }),
		quantum.EdgeCharmness:    signedInt(func(p particle.Particle) int64 { return p.Charmness }),
		quantum.EdgeBottomness:   signedInt(func(p particle.Particle) int64 { return p.Bottomness }),

		quantum.EdgeSpinMagnitude:     NewDomain(spins...),
		quantum.EdgeSpinProjection:    NewDomain(domain.Mirror(spins)...),
		quantum.EdgeIsospinMagnitude:  NewDomain(isospins...),
		quantum.EdgeIsospinProjection: NewDomain(domain.Mirror(isospins)...),
	}
}

// CreateInteractionSettings builds the settings of every interaction type
// for the given formalism and particle list.
//
// Node rules per formalism:
//
//	helicity            SpinMagnitudeConservation, HelicityConservation
//	canonical           SpinMagnitudeConservation
//	                    (n-body: SpinConservation, LSSpinValidity)
//	canonical-helicity  helicity rules + ClebschGordanHelicityToCanonical, LSSpinValidity
//
// plus MassConservation unless disabled. WEAK adds charge, lepton and
// baryon number conservation and identical-particle symmetrization; EM adds
// charm, strangeness, bottomness, parity and C-parity (and helicity parity
// with a parity_prefactor domain for helicity formalisms); STRONG adds
// isospin and G-parity.
func CreateInteractionSettings(formalism Formalism, db *particle.Collection, opts ...Option) (map[InteractionType]InteractionSettings, error) {
	if !formalism.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormalism, string(formalism))
	}
	if db == nil {
		return nil, ErrNilParticleDB
	}
	o := newOptions(opts)

	edge := EdgeSettings{
		Rules:      NewRuleSet(conservation.IsospinValidity, conservation.GellMannNishijima, conservation.SpinValidity),
		Priorities: EdgeRulePriorities(),
		Domains:    EdgeDomains(db),
	}
	base, err := formalismNodeSettings(formalism, o)
	if err != nil {
		return nil, err
	}

	weak := base.Derive(NewRuleSet(
		conservation.ChargeConservation,
		conservation.ElectronLNConservation,
		conservation.MuonLNConservation,
		conservation.TauLNConservation,
		conservation.BaryonNumberConservation,
		conservation.IdenticalParticleSymmetrization,
	), nil, WeakStrength)

	emRules := NewRuleSet(
		conservation.CharmConservation,
		conservation.StrangenessConservation,
		conservation.BottomnessConservation,
		conservation.ParityConservation,
		conservation.CParityConservation,
	)
	var emDomains map[quantum.NodeQN]Domain
	if formalism.UsesHelicity() {
		emRules = emRules.With(conservation.ParityConservationHelicity)
		emDomains = map[quantum.NodeQN]Domain{quantum.NodeParityPrefactor: NewDomain(signedUnit...)}
	}
	em := weak.Derive(emRules, emDomains, EMStrength)

	strong := em.Derive(NewRuleSet(
		conservation.IsospinConservation,
		conservation.GParityConservation,
	), nil, StrongStrength)

	out := map[InteractionType]InteractionSettings{
		Weak:   {Edge: edge.Clone(), Node: weak},
		EM:     {Edge: edge.Clone(), Node: em},
		Strong: {Edge: edge.Clone(), Node: strong},
	}
	o.logger.Debug("interaction settings created",
		"formalism", string(formalism),
		"n_body", o.nBody,
		"mass_conservation", o.massConservation,
		"weak_rules", weak.Rules.Len(),
		"em_rules", em.Rules.Len(),
		"strong_rules", strong.Rules.Len(),
	)

	return out, nil
}

func formalismNodeSettings(formalism Formalism, o options) (NodeSettings, error) {
	lMagnitudes := []quantum.Fraction{quantum.Int(0)}
	sMagnitudes := []quantum.Fraction{quantum.Int(0)}
	if !o.nBody {
		lMagnitudes = domain.Integers(0, o.maxAngularMomentum)
		var err error
		sMagnitudes, err = domain.HalfIntegers(quantum.Int(0), o.maxSpinMagnitude)
		if err != nil {
			return NodeSettings{}, fmt.Errorf("settings: spin domain: %w", err)
		}
	}

	var (
		rules   RuleSet
		domains map[quantum.NodeQN]Domain
	)
	switch formalism {
	case Helicity, CanonicalHelicity:
		rules = NewRuleSet(conservation.SpinMagnitudeConservation, conservation.HelicityConservation)
		domains = map[quantum.NodeQN]Domain{
			quantum.NodeLMagnitude: NewDomain(lMagnitudes...),
			quantum.NodeSMagnitude: NewDomain(sMagnitudes...),
		}
		if formalism == CanonicalHelicity {
			rules = rules.With(conservation.ClebschGordanHelicityToCanonical, conservation.LSSpinValidity)
			domains[quantum.NodeLProjection] = NewDomain(quantum.Int(0))
			domains[quantum.NodeSProjection] = NewDomain(domain.Mirror(sMagnitudes)...)
		}
	case Canonical:
		rules = NewRuleSet(conservation.SpinMagnitudeConservation)
		if o.nBody {
			rules = NewRuleSet(conservation.SpinConservation, conservation.LSSpinValidity)
		}
		domains = map[quantum.NodeQN]Domain{
			quantum.NodeLMagnitude:  NewDomain(lMagnitudes...),
			quantum.NodeLProjection: NewDomain(domain.Mirror(lMagnitudes)...),
			quantum.NodeSMagnitude:  NewDomain(sMagnitudes...),
			quantum.NodeSProjection: NewDomain(domain.Mirror(sMagnitudes)...),
		}
	default:
		return NodeSettings{}, fmt.Errorf("%w: %q", ErrUnknownFormalism, string(formalism))
	}
	if o.massConservation {
		rules = rules.With(conservation.NewMassConservation(o.massFactor))
	}

	return NodeSettings{
		Rules:      rules,
		Priorities: ConservationLawPriorities(),
		Domains:    domains,
	}, nil
}
