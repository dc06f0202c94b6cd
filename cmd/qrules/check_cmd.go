package main

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qrules/particle"
	"github.com/katalvlaran/qrules/quantum"
	"github.com/katalvlaran/qrules/solving"
	"github.com/katalvlaran/qrules/topology"
)

var errTooFewDaughters = errors.New("need at least two daughters")

func newCheckCmd(a *app) *cobra.Command {
	var (
		flags     configFlags
		parent    string
		daughters []string
	)
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Enumerate the allowed node quantum numbers of a decay",
		Example: `  qrules check --parent 'J/psi(1S)' --daughters pi0,gamma
  qrules check --parent 'rho(770)0' --daughters pi+,pi- --formalism canonical`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.config(cmd)
			if err != nil {
				return err
			}
			if len(daughters) < 2 {
				return errTooFewDaughters
			}
			db, err := cfg.ParticleDB()
			if err != nil {
				return err
			}
			all, err := cfg.Build(a.logger)
			if err != nil {
				return err
			}
			allowed, err := cfg.Interactions()
			if err != nil {
				return err
			}

			in, err := findAll(db, []string{parent})
			if err != nil {
				return err
			}
			out, err := findAll(db, daughters)
			if err != nil {
				return err
			}
			top := topology.TwoBodyDecay()
			if len(out) > 2 {
				top, err = topology.NBody(1, len(out))
				if err != nil {
					return err
				}
			}
			states := helicityStates(in[0], out)

			types := solving.FilterInteractionTypes(solving.DetermineInteractionTypes(in, out), allowed, a.logger)
			w := cmd.OutOrStdout()
			header := fmt.Sprintf("%s -> %s", in[0].Name, strings.Join(daughters, " "))
			if len(out) == 2 && out[0].IsAntiparticleOf(out[1]) {
				header += " (particle-antiparticle pair)"
			}
			fmt.Fprintln(w, header)
			for _, t := range types {
				var (
					solutions []solving.Solution
					invalid   solving.ExecutionInfo
					valid     bool
				)
				for _, edges := range states {
					p := solving.NewProblem(top, edges, nil, all[t])
					res, err := solving.Validate(p)
					if err != nil {
						return err
					}
					if len(res.Execution.ViolatedEdgeRules) > 0 {
						invalid = invalid.Merge(res.Execution, false)
						continue
					}
					valid = true
					nodes, err := solving.FindNodeSolutions(cmd.Context(), p, solving.WithLogger(a.logger))
					if err != nil {
						return err
					}
					solutions = append(solutions, solving.Combine(nodes)...)
				}
				if !valid {
					fmt.Fprintf(w, "%s: invalid states, violated %s\n", t, strings.Join(invalid.ViolatedRules(), ", "))
					continue
				}
				solutions = solving.RemoveDuplicateSolutions(solutions)
				fmt.Fprintf(w, "%s: %d solutions\n", t, len(solutions))
				for _, s := range solutions {
					printSolution(w, s)
				}
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&parent, "parent", "", "decaying particle")
	cmd.Flags().StringSliceVar(&daughters, "daughters", nil, "comma separated final-state particles")
	_ = cmd.MarkFlagRequired("parent")
	_ = cmd.MarkFlagRequired("daughters")

	return cmd
}

// helicityStates lists the edge properties of every combination of spin
// projections of the parent (edge -1) and the daughters (edges 0..n-1).
func helicityStates(parent particle.Particle, daughters []particle.Particle) []map[int]quantum.EdgeProperties {
	ids := make([]int, 0, len(daughters)+1)
	ps := make([]particle.Particle, 0, len(daughters)+1)
	ids = append(ids, -1)
	ps = append(ps, parent)
	for i, d := range daughters {
		ids = append(ids, i)
		ps = append(ps, d)
	}

	states := []map[int]quantum.EdgeProperties{{}}
	for k, p := range ps {
		next := make([]map[int]quantum.EdgeProperties, 0, len(states))
		for _, s := range states {
			for _, m := range p.SpinProjections() {
				e := maps.Clone(s)
				e[ids[k]] = particle.StateProperties(p, m)
				next = append(next, e)
			}
		}
		states = next
	}

	return states
}

func findAll(db *particle.Collection, names []string) ([]particle.Particle, error) {
	out := make([]particle.Particle, len(names))
	for i, n := range names {
		p, err := db.FindByName(n)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}

	return out, nil
}

func printSolution(w io.Writer, s solving.Solution) {
	for _, node := range slices.Sorted(maps.Keys(s)) {
		props := s[node]
		parts := make([]string, 0, len(props))
		for _, q := range slices.Sorted(maps.Keys(props)) {
			v := props[q]
			if v == nil {
				parts = append(parts, q.String()+"=None")
				continue
			}
			parts = append(parts, fmt.Sprintf("%s=%v", q, v))
		}
		fmt.Fprintf(w, "  node %d: %s\n", node, strings.Join(parts, " "))
	}
}
