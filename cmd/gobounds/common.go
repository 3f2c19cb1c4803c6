package main

import (
	"context"
	"fmt"

	"github.com/philipparndt/gobounds/internal/loader"
	"github.com/philipparndt/gobounds/pkg/analysis"
	"github.com/philipparndt/gobounds/pkg/bounds"
	"github.com/philipparndt/gobounds/pkg/stl"
	"github.com/spf13/cobra"
)

// fitFlags are the volume selection flags shared by several commands
type fitFlags struct {
	kind       string
	constraint string
}

func (f *fitFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.kind, "kind", "k", "", "volume kind: aabb, sphere or obb (default from settings)")
	cmd.Flags().StringVar(&f.constraint, "constraint", "", "keep an oriented box coplanar with xy, xz or yz (default from settings)")
}

// options resolves the flags against the settings
func (f *fitFlags) options(a *app) (bounds.Kind, analysis.FitOptions, error) {
	kind, err := a.settings.Kind()
	if f.kind != "" {
		kind, err = bounds.ParseKind(f.kind)
	}
	if err != nil {
		return 0, analysis.FitOptions{}, err
	}

	constraint, err := a.settings.Constraint()
	if f.constraint != "" {
		constraint, err = bounds.ParsePlaneConstraint(f.constraint)
	}
	if err != nil {
		return 0, analysis.FitOptions{}, err
	}
	return kind, analysis.FitOptions{Constraint: constraint, Tolerance: a.tolerance}, nil
}

func (a *app) load(ctx context.Context, path string) (*stl.Model, error) {
	model, err := loader.Load(ctx, path, a.logger)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("model loaded", "path", path, "triangles", model.TriangleCount())
	return model, nil
}

// loadAndFit loads a model and fits one volume to its vertices
func (a *app) loadAndFit(ctx context.Context, path string, f *fitFlags) (*stl.Model, bounds.Volume, error) {
	kind, opts, err := f.options(a)
	if err != nil {
		return nil, nil, err
	}
	model, err := a.load(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	v, err := analysis.Fit(model.Points(), kind, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return model, v, nil
}
