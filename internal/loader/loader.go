package loader

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/gobounds/pkg/openscad"
	"github.com/philipparndt/gobounds/pkg/stl"
)

// Load reads a model from an STL file, or renders an OpenSCAD file to a
// temporary STL first.
func Load(ctx context.Context, filePath string, logger *slog.Logger) (*stl.Model, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch ext := strings.ToLower(filepath.Ext(filePath)); ext {
	case ".stl":
		model, err := stl.Parse(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to parse STL file: %w", err)
		}
		return model, nil

	case ".scad":
		abs, err := filepath.Abs(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve path %s: %w", filePath, err)
		}
		logger.Info("rendering OpenSCAD file", "path", abs)
		renderer := openscad.NewRenderer(filepath.Dir(abs))
		renderer.Logger = logger

		tempFile, err := renderer.RenderTemp(ctx, abs)
		if err != nil {
			return nil, fmt.Errorf("failed to render OpenSCAD file: %w", err)
		}
		defer os.Remove(tempFile)

		model, err := stl.Parse(tempFile)
		if err != nil {
			return nil, fmt.Errorf("failed to parse rendered STL: %w", err)
		}
		if model.Name == "" {
			model.Name = strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
		}
		return model, nil

	default:
		return nil, fmt.Errorf("unsupported file type: %q (expected .stl or .scad)", ext)
	}
}

// WatchList returns the files whose change invalidates a model loaded
// from filePath: the file itself plus, for OpenSCAD sources, every
// use/include dependency.
func WatchList(filePath string) ([]string, error) {
	if !openscad.IsSCAD(filePath) {
		return []string{filePath}, nil
	}
	abs, err := filepath.Abs(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", filePath, err)
	}
	deps, err := openscad.NewRenderer(filepath.Dir(abs)).ResolveDependencies(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve dependencies: %w", err)
	}
	return deps, nil
}
