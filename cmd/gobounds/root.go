package main

import (
	"log/slog"

	"github.com/philipparndt/gobounds/internal/config"
	"github.com/philipparndt/gobounds/internal/logging"
	"github.com/philipparndt/gobounds/pkg/bounds"
	"github.com/philipparndt/gobounds/version"
	"github.com/spf13/cobra"
)

// app carries the settings resolved from the config file and global flags
type app struct {
	configPath string
	epsilon    float64
	logLevel   string

	settings  config.Settings
	tolerance bounds.Tolerance
	logger    *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "gobounds",
		Short: "Fit and classify bounding volumes of 3D models",
		Long: `gobounds fits axis-aligned boxes, bounding spheres and oriented boxes to
STL and OpenSCAD models, and classifies them against points, planes and
each other.`,
		Version:           version.GetFullVersion(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", config.DefaultPath(), "settings file (TOML)")
	flags.Float64Var(&a.epsilon, "epsilon", bounds.DefaultEpsilon, "boundary tolerance")
	flags.StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn or error")

	rootCmd.AddCommand(
		newInfoCmd(a),
		newFitCmd(a),
		newClassifyCmd(a),
		newPointCmd(a),
		newPlaneCmd(a),
		newOctantsCmd(a),
		newWatchCmd(a),
		newCompletionCmd(),
	)
	return rootCmd
}

// setup loads the settings file and applies flag overrides
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	settings, err := config.Load(a.configPath, flags.Changed("config"))
	if err != nil {
		return err
	}
	if flags.Changed("epsilon") {
		settings.Tolerance.Epsilon = a.epsilon
	}
	if flags.Changed("log-level") {
		settings.Log.Level = a.logLevel
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	a.logger, err = logging.New(cmd.ErrOrStderr(), settings.Log.Level)
	if err != nil {
		return err
	}
	a.tolerance, err = settings.BoundsTolerance()
	if err != nil {
		return err
	}
	a.settings = settings
	a.logger.Debug("settings loaded", "config", a.configPath, "epsilon", settings.Tolerance.Epsilon)
	return nil
}
