package analysis

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/philipparndt/gobounds/pkg/bounds"
	"github.com/philipparndt/gobounds/pkg/geometry"
	"gopkg.in/yaml.v3"
)

// Triple is a vector in report form
type Triple [3]float64

// NewTriple converts a vector
func NewTriple(v geometry.Vector3) Triple {
	return Triple{v.X, v.Y, v.Z}
}

// VolumeReport describes a fitted volume
type VolumeReport struct {
	Kind      string    `yaml:"kind" json:"kind"`
	Center    Triple    `yaml:"center,flow" json:"center"`
	Lower     Triple    `yaml:"lower,flow" json:"lower"`
	Upper     Triple    `yaml:"upper,flow" json:"upper"`
	Size      Triple    `yaml:"size,flow" json:"size"`
	Axes      [3]Triple `yaml:"axes,flow" json:"axes"`
	Extents   Triple    `yaml:"extents,flow" json:"extents"`
	Radius    float64   `yaml:"radius,omitempty" json:"radius,omitempty"`
	Volume    float64   `yaml:"volume" json:"volume"`
	Tightness float64   `yaml:"tightness,omitempty" json:"tightness,omitempty"`
	Vertices  []Triple  `yaml:"vertices,flow" json:"vertices"`
}

// NewVolumeReport describes v. Tightness is relative to reference, see Tightness.
func NewVolumeReport(v bounds.Volume, reference float64) VolumeReport {
	r := VolumeReport{
		Kind:      v.Kind().String(),
		Center:    NewTriple(v.Center()),
		Lower:     NewTriple(v.Lower()),
		Upper:     NewTriple(v.Upper()),
		Size:      NewTriple(v.Size()),
		Extents:   v.Extents(),
		Volume:    v.Volume(),
		Tightness: Tightness(v, reference),
	}
	for i, axis := range v.Axes() {
		r.Axes[i] = NewTriple(axis)
	}
	if s, ok := v.(*bounds.Sphere); ok {
		r.Radius = s.Radius()
	}
	for _, p := range v.GlobalVertices().Collect() {
		r.Vertices = append(r.Vertices, NewTriple(p))
	}
	return r
}

// ModelReport summarizes a model and the volumes fitted to it
type ModelReport struct {
	Name        string         `yaml:"name,omitempty" json:"name,omitempty"`
	File        string         `yaml:"file" json:"file"`
	Triangles   int            `yaml:"triangles" json:"triangles"`
	Vertices    int            `yaml:"vertices" json:"vertices"`
	SurfaceArea float64        `yaml:"surfaceArea" json:"surfaceArea"`
	Volumes     []VolumeReport `yaml:"volumes" json:"volumes"`
}

// Format names a report encoding
type Format string

const (
	// FormatText is the human readable layout
	FormatText Format = "text"
	// FormatYAML encodes with gopkg.in/yaml.v3
	FormatYAML Format = "yaml"
	// FormatJSON encodes indented JSON
	FormatJSON Format = "json"
)

// ParseFormat parses "text", "yaml" or "json"
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatText, FormatYAML, FormatJSON:
		return f, nil
	case "", "txt":
		return FormatText, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown output format %q", name)
}

// Encode writes value as YAML or JSON
func Encode(w io.Writer, format Format, value interface{}) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(value); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	}
	return fmt.Errorf("format %q is not structured", format)
}

// WriteVolumeText prints a volume report in the text layout
func WriteVolumeText(w io.Writer, r VolumeReport) {
	fmt.Fprintf(w, "%s:\n", strings.ToUpper(r.Kind))
	fmt.Fprintf(w, "  Center: %s\n", formatTriple(r.Center))
	fmt.Fprintf(w, "  Lower: %s\n", formatTriple(r.Lower))
	fmt.Fprintf(w, "  Upper: %s\n", formatTriple(r.Upper))
	fmt.Fprintf(w, "  Size: %s\n", formatTriple(r.Size))
	if r.Radius > 0 {
		fmt.Fprintf(w, "  Radius: %.6f\n", r.Radius)
	}
	if r.Kind == bounds.KindOrientedBox.String() {
		for i, name := range []string{"R", "S", "T"} {
			fmt.Fprintf(w, "  Axis %s: %s  extent %.6f\n", name, formatTriple(r.Axes[i]), r.Extents[i])
		}
	}
	fmt.Fprintf(w, "  Volume: %.6f cubic units\n", r.Volume)
	if r.Tightness > 0 {
		fmt.Fprintf(w, "  Tightness: %.2f%% of AABB\n", r.Tightness*100)
	}
}

// WriteVerticesText prints the corner list of a volume report
func WriteVerticesText(w io.Writer, r VolumeReport) {
	fmt.Fprintln(w, "  Vertices:")
	for i, v := range r.Vertices {
		fmt.Fprintf(w, "    %d: %s\n", i, formatTriple(v))
	}
}

func formatTriple(t Triple) string {
	return FormatVector(geometry.NewVector3(t[0], t[1], t[2]))
}
