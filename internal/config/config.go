package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/philipparndt/gobounds/pkg/bounds"
)

// FileName is the settings file looked up in the user config directory
const FileName = "gobounds.toml"

// Settings holds the user configurable behavior of the CLI
type Settings struct {
	Tolerance ToleranceSettings `toml:"tolerance"`
	Fit       FitSettings       `toml:"fit"`
	Watch     WatchSettings     `toml:"watch"`
	Log       LogSettings       `toml:"log"`
}

// ToleranceSettings configures boundary comparisons
type ToleranceSettings struct {
	Epsilon float64 `toml:"epsilon"`
}

// FitSettings selects the default volume
type FitSettings struct {
	Kind       string `toml:"kind"`
	Constraint string `toml:"constraint"`
}

// WatchSettings configures the watch command
type WatchSettings struct {
	Debounce Duration `toml:"debounce"`
}

// LogSettings configures diagnostics
type LogSettings struct {
	Level string `toml:"level"`
}

// Duration decodes TOML strings such as "250ms"
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in settings
func Default() Settings {
	return Settings{
		Tolerance: ToleranceSettings{Epsilon: bounds.DefaultEpsilon},
		Fit:       FitSettings{Kind: bounds.KindOrientedBox.String(), Constraint: bounds.ConstraintNone.String()},
		Watch:     WatchSettings{Debounce: Duration{250 * time.Millisecond}},
		Log:       LogSettings{Level: "info"},
	}
}

// DefaultPath returns the settings file in the user config directory
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "gobounds", FileName)
}

// Load reads settings from path over the defaults. With explicit unset,
// a missing file yields the defaults; an explicitly named file must exist.
func Load(path string, explicit bool) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}

	meta, err := toml.DecodeFile(path, &s)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Settings{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Settings{}, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}

	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("config %s: %w", path, err)
	}
	return s, nil
}

// Validate checks value ranges and names
func (s Settings) Validate() error {
	eps := s.Tolerance.Epsilon
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		return fmt.Errorf("tolerance.epsilon must be finite and positive, got %v", eps)
	}
	if s.Watch.Debounce.Duration < 0 {
		return fmt.Errorf("watch.debounce must not be negative, got %v", s.Watch.Debounce)
	}
	if _, err := bounds.ParseKind(s.Fit.Kind); err != nil {
		return fmt.Errorf("fit.kind: %w", err)
	}
	if _, err := bounds.ParsePlaneConstraint(s.Fit.Constraint); err != nil {
		return fmt.Errorf("fit.constraint: %w", err)
	}
	return nil
}

// BoundsTolerance returns the configured tolerance
func (s Settings) BoundsTolerance() (bounds.Tolerance, error) {
	return bounds.NewTolerance(s.Tolerance.Epsilon)
}

// Kind returns the configured default volume kind
func (s Settings) Kind() (bounds.Kind, error) {
	return bounds.ParseKind(s.Fit.Kind)
}

// Constraint returns the configured oriented box constraint
func (s Settings) Constraint() (bounds.PlaneConstraint, error) {
	return bounds.ParsePlaneConstraint(s.Fit.Constraint)
}

// Write encodes s as TOML
func (s Settings) Write(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(s); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return f.Close()
}
