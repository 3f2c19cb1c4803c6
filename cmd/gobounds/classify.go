package main

import (
	"fmt"

	"github.com/philipparndt/gobounds/pkg/analysis"
	"github.com/spf13/cobra"
)

func newClassifyCmd(a *app) *cobra.Command {
	var f fitFlags

	cmd := &cobra.Command{
		Use:   "classify [a] [b]",
		Short: "Classify the volumes of two models against each other",
		Long: `Fit the same volume kind to both models and report where the volume of b
lies relative to the volume of a: INSIDE, ENCLOSING, SAME, SPANNING or OUTSIDE.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, va, err := a.loadAndFit(cmd.Context(), args[0], &f)
			if err != nil {
				return err
			}
			_, vb, err := a.loadAndFit(cmd.Context(), args[1], &f)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Kind: %s\n", va.Kind())
			fmt.Fprintf(out, "A: %s  center %s\n", args[0], analysis.FormatVector(va.Center()))
			fmt.Fprintf(out, "B: %s  center %s\n", args[1], analysis.FormatVector(vb.Center()))
			fmt.Fprintf(out, "B relative to A: %s\n", va.Classify(vb))
			fmt.Fprintf(out, "A relative to B: %s\n", vb.Classify(va))
			fmt.Fprintf(out, "Intersects: %t\n", va.Intersects(vb))
			return nil
		},
	}

	f.register(cmd)
	return cmd
}
