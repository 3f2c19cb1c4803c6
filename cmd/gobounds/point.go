package main

import (
	"fmt"

	"github.com/philipparndt/gobounds/pkg/analysis"
	"github.com/philipparndt/gobounds/pkg/geometry"
	"github.com/spf13/cobra"
)

func newPointCmd(a *app) *cobra.Command {
	var (
		f       fitFlags
		x, y, z float64
	)

	cmd := &cobra.Command{
		Use:   "point [file]",
		Short: "Query a point against the volume of a model",
		Long:  "Classify a point against the fitted volume and report distances and the nearest and farthest points of the volume.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, v, err := a.loadAndFit(cmd.Context(), args[0], &f)
			if err != nil {
				return err
			}
			p := geometry.NewVector3(x, y, z)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Point: %s\n", analysis.FormatVector(p))
			fmt.Fprintf(out, "Volume: %s\n", v.Kind())
			fmt.Fprintf(out, "  Classification: %s\n", v.ClassifyPoint(p))
			fmt.Fprintf(out, "  Distance: %.6f\n", v.Distance(p))
			fmt.Fprintf(out, "  Max distance: %.6f\n", v.DistanceMax(p))
			fmt.Fprintf(out, "  Nearest point: %s\n", analysis.FormatVector(v.NearestPoint(p)))
			fmt.Fprintf(out, "  Farthest point: %s\n", analysis.FormatVector(v.FarthestPoint(p)))

			vertex, d := analysis.FindNearestVertex(model, p)
			fmt.Fprintf(out, "Nearest model vertex: %s (distance: %.6f)\n", analysis.FormatVector(vertex), d)
			return nil
		},
	}

	f.register(cmd)
	cmd.Flags().Float64Var(&x, "x", 0, "X coordinate")
	cmd.Flags().Float64Var(&y, "y", 0, "Y coordinate")
	cmd.Flags().Float64Var(&z, "z", 0, "Z coordinate")
	cmd.MarkFlagsRequiredTogether("x", "y", "z")
	return cmd
}
