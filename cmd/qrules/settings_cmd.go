package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSettingsCmd(a *app) *cobra.Command {
	var flags configFlags
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Print the edge and node settings of each interaction type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.config(cmd)
			if err != nil {
				return err
			}
			all, err := cfg.Build(a.logger)
			if err != nil {
				return err
			}
			types, err := cfg.Interactions()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, t := range types {
				s := all[t]
				fmt.Fprintf(out, "== %s (strength %g) ==\n", t, s.Node.InteractionStrength)
				fmt.Fprintf(out, "EDGE\n%sNODE\n%s\n", s.Edge, s.Node)
			}
			return nil
		},
	}
	flags.register(cmd)

	return cmd
}
