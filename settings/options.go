// File: options.go
// Role: functional options for CreateInteractionSettings.
// Contract:
//   - Option constructors validate and panic on meaningless inputs
//     (negative caps, non-half-integer spins, nil logger).
//   - Later options override earlier ones.

package settings

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/qrules/conservation"
	"github.com/katalvlaran/qrules/quantum"
)

// Defaults applied when no option overrides them.
const (
	DefaultMaxAngularMomentum = 2
	DefaultMassWidthFactor    = conservation.DefaultMassWidthFactor
)

// defaultMaxSpinMagnitude caps the coupled spin S at 2.
var defaultMaxSpinMagnitude = quantum.Int(2)

// Option customizes settings construction.
type Option func(*options)

type options struct {
	nBody              bool
	massFactor         float64
	massConservation   bool
	maxAngularMomentum int64
	maxSpinMagnitude   quantum.Fraction
	logger             *slog.Logger
}

func newOptions(opts []Option) options {
	o := options{
		massFactor:         DefaultMassWidthFactor,
		massConservation:   true,
		maxAngularMomentum: DefaultMaxAngularMomentum,
		maxSpinMagnitude:   defaultMaxSpinMagnitude,
		logger:             slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithNBodyTopology configures settings for single-node n-body topologies:
// L and S are fixed to 0.
func WithNBodyTopology() Option {
	return func(o *options) { o.nBody = true }
}

// WithMassConservationFactor sets the width factor N of MassConservation.
// Panics on a negative factor.
func WithMassConservationFactor(factor float64) Option {
	if factor < 0 {
		panic(fmt.Sprintf("settings: WithMassConservationFactor(%v)", factor))
	}
	return func(o *options) {
		o.massFactor = factor
		o.massConservation = true
	}
}

// WithoutMassConservation drops MassConservation from the node rules.
func WithoutMassConservation() Option {
	return func(o *options) { o.massConservation = false }
}

// WithMaxAngularMomentum caps the orbital angular momentum L.
// Panics on a negative cap.
func WithMaxAngularMomentum(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("settings: WithMaxAngularMomentum(%d)", n))
	}
	return func(o *options) { o.maxAngularMomentum = int64(n) }
}

// WithMaxSpinMagnitude caps the coupled spin S (default 2).
// Panics unless maxSpin is a non-negative multiple of 1/2.
func WithMaxSpinMagnitude(maxSpin quantum.Fraction) Option {
	if maxSpin.Sign() < 0 || !maxSpin.IsHalfInteger() {
		panic(fmt.Sprintf("settings: WithMaxSpinMagnitude(%s)", maxSpin))
	}
	return func(o *options) { o.maxSpinMagnitude = maxSpin }
}

// WithLogger sets the logger for construction diagnostics. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("settings: WithLogger(nil)")
	}
	return func(o *options) { o.logger = l }
}
