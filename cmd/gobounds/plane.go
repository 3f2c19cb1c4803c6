package main

import (
	"fmt"

	"github.com/philipparndt/gobounds/pkg/bounds"
	"github.com/philipparndt/gobounds/pkg/geometry"
	"github.com/spf13/cobra"
)

func newPlaneCmd(a *app) *cobra.Command {
	var (
		f             fitFlags
		normal, point string
	)

	cmd := &cobra.Command{
		Use:   "plane [file]",
		Short: "Classify the volume of a model against a plane",
		Long: `Locate the fitted volume relative to the plane through --point with
normal --normal: IN_FRONT_OF, BEHIND or COINCIDENT, for the plane and its negation.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := geometry.ParseVector3(normal)
			if err != nil {
				return fmt.Errorf("--normal: %w", err)
			}
			p, err := geometry.ParseVector3(point)
			if err != nil {
				return fmt.Errorf("--point: %w", err)
			}
			plane, err := bounds.NewPlaneFromNormal(n, p)
			if err != nil {
				return err
			}

			_, v, err := a.loadAndFit(cmd.Context(), args[0], &f)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Plane: %s\n", plane)
			fmt.Fprintf(out, "Volume: %s\n", v.Kind())
			fmt.Fprintf(out, "  Side: %s\n", v.ClassifyAgainst(plane))
			fmt.Fprintf(out, "  Intersects: %t\n", v.IntersectsPlane(plane))
			fmt.Fprintf(out, "  Center distance: %.6f\n", plane.Distance(v.Center()))

			negated := plane.Clone()
			negated.Negate()
			fmt.Fprintf(out, "  Side of negated plane: %s\n", v.ClassifyAgainst(negated))
			return nil
		},
	}

	f.register(cmd)
	cmd.Flags().StringVar(&normal, "normal", "0,0,1", "plane normal as x,y,z")
	cmd.Flags().StringVar(&point, "point", "0,0,0", "point on the plane as x,y,z")
	return cmd
}
