package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/philipparndt/gobounds/pkg/analysis"
	"github.com/philipparndt/gobounds/pkg/stl"
	"github.com/spf13/cobra"
)

func newFitCmd(a *app) *cobra.Command {
	var (
		f      fitFlags
		output string
		export string
		ascii  bool
	)

	cmd := &cobra.Command{
		Use:   "fit [file]",
		Short: "Fit one bounding volume to a model",
		Long: `Fit an axis-aligned box, a bounding sphere or an oriented box to the
vertices of a model and print its center, bounds, axes, extents and corners.
With --export the volume is written as a 12 triangle STL box.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := analysis.ParseFormat(output)
			if err != nil {
				return err
			}

			filename := args[0]
			model, v, err := a.loadAndFit(cmd.Context(), filename, &f)
			if err != nil {
				return err
			}
			report := analysis.NewVolumeReport(v, model.Bounds().Volume())

			if export != "" {
				name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)) + " " + v.Kind().String()
				if err := stl.Save(export, stl.BoxMesh(name, v), ascii); err != nil {
					return err
				}
				a.logger.Info("volume exported", "path", export, "kind", v.Kind())
			}

			out := cmd.OutOrStdout()
			if format != analysis.FormatText {
				return analysis.Encode(out, format, report)
			}
			fmt.Fprintf(out, "File: %s\n", filename)
			analysis.WriteVolumeText(out, report)
			analysis.WriteVerticesText(out, report)
			return nil
		},
	}

	f.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, yaml or json")
	cmd.Flags().StringVar(&export, "export", "", "write the fitted volume as an STL box")
	cmd.Flags().BoolVar(&ascii, "ascii", false, "export ASCII instead of binary STL")
	return cmd
}
