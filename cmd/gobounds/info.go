package main

import (
	"fmt"

	"github.com/philipparndt/gobounds/pkg/analysis"
	"github.com/spf13/cobra"
)

func newInfoCmd(a *app) *cobra.Command {
	var output string
	var constraint string

	cmd := &cobra.Command{
		Use:   "info [file]",
		Short: "Display model statistics and all fitted volumes",
		Long:  "Show triangle and vertex counts, surface area, edge statistics and the AABB, sphere and OBB of the model with their tightness.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := analysis.ParseFormat(output)
			if err != nil {
				return err
			}
			f := fitFlags{constraint: constraint}
			_, opts, err := f.options(a)
			if err != nil {
				return err
			}

			filename := args[0]
			model, err := a.load(cmd.Context(), filename)
			if err != nil {
				return err
			}
			volumes, err := analysis.FitAll(model.Points(), opts)
			if err != nil {
				return fmt.Errorf("%s: %w", filename, err)
			}

			result := analysis.AnalyzeModel(model)
			report := analysis.ModelReport{
				Name:        model.Name,
				File:        filename,
				Triangles:   result.TriangleCount,
				Vertices:    result.VertexCount,
				SurfaceArea: result.SurfaceArea,
			}
			reference := result.Bounds.Volume()
			for _, v := range volumes {
				report.Volumes = append(report.Volumes, analysis.NewVolumeReport(v, reference))
			}

			out := cmd.OutOrStdout()
			if format != analysis.FormatText {
				return analysis.Encode(out, format, report)
			}

			fmt.Fprintln(out, "Model Information")
			fmt.Fprintln(out, "=================")
			if model.Name != "" {
				fmt.Fprintf(out, "Name: %s\n", model.Name)
			}
			fmt.Fprintf(out, "File: %s\n\n", filename)

			fmt.Fprintln(out, "Model Statistics:")
			fmt.Fprintf(out, "  Triangles: %d\n", result.TriangleCount)
			fmt.Fprintf(out, "  Vertices: %d\n", result.VertexCount)
			fmt.Fprintf(out, "  Edges: %d\n", result.EdgeCount)
			fmt.Fprintf(out, "  Surface Area: %s\n", analysis.FormatMeasurement(result.SurfaceArea, "square units"))
			fmt.Fprintf(out, "  Edge Lengths: min %.6f, max %.6f, avg %.6f\n\n",
				result.MinEdgeLength, result.MaxEdgeLength, result.AvgEdgeLength)

			for _, r := range report.Volumes {
				analysis.WriteVolumeText(out, r)
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, yaml or json")
	cmd.Flags().StringVar(&constraint, "constraint", "", "keep the oriented box coplanar with xy, xz or yz")
	return cmd
}
