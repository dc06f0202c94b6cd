// File: config.go
// Role: YAML form of the CreateInteractionSettings arguments.
// Contract:
//   - Precedence is defaults < file < explicit overrides by the caller.
//   - Validate must pass before Options or ParticleDB are used.

package settings

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qrules/domain"
	"github.com/katalvlaran/qrules/particle"
)

var configValidate = validator.New()

// Config holds everything needed to build interaction settings.
type Config struct {
	Formalism Formalism `yaml:"formalism" validate:"required,oneof=helicity canonical canonical-helicity"`

	// InteractionTypes restricts the reported layers; empty means all.
	InteractionTypes []string `yaml:"interaction_types,omitempty" validate:"dive,required"`

	// Particles is a ParticleList YAML path; empty selects the embedded list.
	Particles string `yaml:"particles,omitempty"`

	NBodyTopology           bool    `yaml:"nbody_topology"`
	MassConservationFactor  float64 `yaml:"mass_conservation_factor" validate:"gte=0"`
	DisableMassConservation bool    `yaml:"disable_mass_conservation"`
	MaxAngularMomentum      int     `yaml:"max_angular_momentum" validate:"gte=0,lte=10"`
	MaxSpinMagnitude        float64 `yaml:"max_spin_magnitude" validate:"gte=0,lte=10"`

	// Threads pins the solver worker count; 0 means all cores.
	Threads int `yaml:"threads" validate:"gte=0"`
}

// DefaultConfig returns the helicity formalism with the default caps.
func DefaultConfig() Config {
	return Config{
		Formalism:              Helicity,
		MassConservationFactor: DefaultMassWidthFactor,
		MaxAngularMomentum:     DefaultMaxAngularMomentum,
		MaxSpinMagnitude:       2,
	}
}

// LoadConfig decodes YAML over DefaultConfig and validates the result.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// LoadConfigFile reads a YAML configuration file.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("settings: open %s: %w", path, err)
	}
	defer f.Close()

	return LoadConfig(f)
}

// Validate checks field ranges, the interaction type names and that the
// spin cap is a multiple of 1/2.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := domain.HalfIntegersFloat(0, c.MaxSpinMagnitude); err != nil {
		return fmt.Errorf("%w: max_spin_magnitude: %w", ErrInvalidConfig, err)
	}
	if _, err := c.Interactions(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Interactions parses InteractionTypes; empty yields all types.
func (c Config) Interactions() ([]InteractionType, error) {
	if len(c.InteractionTypes) == 0 {
		return AllInteractionTypes(), nil
	}
	out := make([]InteractionType, 0, len(c.InteractionTypes))
	for _, name := range c.InteractionTypes {
		t, err := ParseInteractionType(name)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}

	return out, nil
}

// Options converts c into construction options. c must be valid.
func (c Config) Options(logger *slog.Logger) []Option {
	maxSpin, _ := domain.HalfIntegersFloat(c.MaxSpinMagnitude, c.MaxSpinMagnitude)
	opts := []Option{
		WithMaxAngularMomentum(c.MaxAngularMomentum),
		WithMaxSpinMagnitude(maxSpin[0]),
		WithMassConservationFactor(c.MassConservationFactor),
	}
	if c.NBodyTopology {
		opts = append(opts, WithNBodyTopology())
	}
	if c.DisableMassConservation {
		opts = append(opts, WithoutMassConservation())
	}
	if logger != nil {
		opts = append(opts, WithLogger(logger))
	}

	return opts
}

// ParticleDB loads the configured particle list.
func (c Config) ParticleDB() (*particle.Collection, error) {
	if c.Particles == "" {
		return particle.Default()
	}

	return particle.LoadFile(c.Particles)
}

// Build validates c, loads the particle list and creates the settings.
func (c Config) Build(logger *slog.Logger) (map[InteractionType]InteractionSettings, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	db, err := c.ParticleDB()
	if err != nil {
		return nil, err
	}

	return CreateInteractionSettings(c.Formalism, db, c.Options(logger)...)
}
