package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/philipparndt/gobounds/internal/loader"
	"github.com/philipparndt/gobounds/pkg/analysis"
	"github.com/philipparndt/gobounds/pkg/watcher"
	"github.com/spf13/cobra"
)

func newWatchCmd(a *app) *cobra.Command {
	var (
		f        fitFlags
		debounce time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch [file]",
		Short: "Refit a volume whenever the model changes",
		Long: `Fit a volume and print it, then refit and print again whenever the file
or, for OpenSCAD sources, any of its dependencies changes. Stops on Ctrl+C.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			if !cmd.Flags().Changed("debounce") {
				debounce = a.settings.Watch.Debounce.Duration
			}
			fw, err := watcher.NewFileWatcher(debounce, a.logger)
			if err != nil {
				return err
			}

			filename := args[0]
			refit := func() {
				if err := a.printFit(ctx, cmd, filename, &f); err != nil {
					a.logger.Error("refit failed", "path", filename, "error", err)
				}
				files, err := loader.WatchList(filename)
				if err != nil {
					a.logger.Warn("cannot resolve dependencies", "path", filename, "error", err)
					return
				}
				if err := fw.Watch(files...); err != nil {
					a.logger.Warn("cannot watch files", "error", err)
				}
			}

			refit()
			a.logger.Info("watching for changes", "files", len(fw.Files()))
			return fw.Run(ctx, func(path string) {
				a.logger.Info("file changed", "path", path)
				refit()
			})
		},
	}

	f.register(cmd)
	cmd.Flags().DurationVar(&debounce, "debounce", watcher.DefaultDebounce, "quiet period before refitting")
	return cmd
}

func (a *app) printFit(ctx context.Context, cmd *cobra.Command, filename string, f *fitFlags) error {
	model, v, err := a.loadAndFit(ctx, filename, f)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "[%s] %s\n", time.Now().Format(time.TimeOnly), filename)
	analysis.WriteVolumeText(out, analysis.NewVolumeReport(v, model.Bounds().Volume()))
	fmt.Fprintln(out)
	return nil
}
