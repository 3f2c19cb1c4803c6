package main

import (
	"fmt"

	"github.com/philipparndt/gobounds/pkg/analysis"
	"github.com/spf13/cobra"
)

var octantNames = [8]string{
	"north-west-front", "north-west-back",
	"north-east-front", "north-east-back",
	"south-west-front", "south-west-back",
	"south-east-front", "south-east-back",
}

func newOctantsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "octants [file]",
		Short: "Split the aligned bounds of a model into octants",
		Long:  "Print the eight octant boxes of the model's AABB and how many model vertices fall into each.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := a.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			box := model.Bounds().WithTolerance(a.tolerance)
			if !box.IsInit() {
				return fmt.Errorf("%s: %w", args[0], analysis.ErrNoPoints)
			}
			points := model.Points()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Bounds: %s - %s\n", analysis.FormatVector(box.Lower()), analysis.FormatVector(box.Upper()))
			for i, octant := range box.Octants() {
				count := 0
				for _, p := range points {
					if octant.IntersectsPoint(p) {
						count++
					}
				}
				fmt.Fprintf(out, "%-17s %s - %s  vertices: %d\n", octantNames[i]+":",
					analysis.FormatVector(octant.Lower()), analysis.FormatVector(octant.Upper()), count)
			}
			return nil
		},
	}
}
