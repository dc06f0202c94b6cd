package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/qrules/settings"
)

// configFlags binds the settings.Config fields to flags. Explicit flags
// override the --config file, which overrides the defaults.
type configFlags struct {
	path         string
	formalism    string
	interactions []string
	particles    string
	maxL         int
	maxS         float64
	massFactor   float64
	noMass       bool
	nBody        bool
}

func (f *configFlags) register(cmd *cobra.Command) {
	d := settings.DefaultConfig()
	fs := cmd.Flags()
	fs.StringVar(&f.path, "config", "", "YAML configuration file")
	fs.StringVar(&f.formalism, "formalism", string(d.Formalism), "helicity, canonical or canonical-helicity")
	fs.StringSliceVar(&f.interactions, "interaction", nil, "restrict to interaction types (strong, em, weak)")
	fs.StringVar(&f.particles, "particles", "", "ParticleList YAML file, default is the embedded list")
	fs.IntVar(&f.maxL, "max-angular-momentum", d.MaxAngularMomentum, "largest orbital angular momentum L")
	fs.Float64Var(&f.maxS, "max-spin", d.MaxSpinMagnitude, "largest coupled spin S, a multiple of 1/2")
	fs.Float64Var(&f.massFactor, "mass-factor", d.MassConservationFactor, "width factor of mass conservation")
	fs.BoolVar(&f.noMass, "no-mass-conservation", false, "drop the mass conservation rule")
	fs.BoolVar(&f.nBody, "nbody", false, "settings for single-node n-body topologies")
}

func (f *configFlags) config(cmd *cobra.Command) (settings.Config, error) {
	cfg := settings.DefaultConfig()
	if f.path != "" {
		var err error
		if cfg, err = settings.LoadConfigFile(f.path); err != nil {
			return cfg, err
		}
	}
	fs := cmd.Flags()
	if fs.Changed("formalism") {
		cfg.Formalism = settings.Formalism(f.formalism)
	}
	if fs.Changed("interaction") {
		cfg.InteractionTypes = f.interactions
	}
	if fs.Changed("particles") {
		cfg.Particles = f.particles
	}
	if fs.Changed("max-angular-momentum") {
		cfg.MaxAngularMomentum = f.maxL
	}
	if fs.Changed("max-spin") {
		cfg.MaxSpinMagnitude = f.maxS
	}
	if fs.Changed("mass-factor") {
		cfg.MassConservationFactor = f.massFactor
	}
	if fs.Changed("no-mass-conservation") {
		cfg.DisableMassConservation = f.noMass
	}
	if fs.Changed("nbody") {
		cfg.NBodyTopology = f.nBody
	}
	if cfg.Threads > 0 && !cmd.Flags().Changed("threads") {
		if err := settings.SetNumberOfThreads(cfg.Threads); err != nil {
			return cfg, err
		}
	}

	return cfg, cfg.Validate()
}
