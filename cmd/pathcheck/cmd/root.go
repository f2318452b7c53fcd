package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/metaworm/log-error/internal/service/pathcheck"
	"github.com/metaworm/log-error/internal/version"
	"github.com/metaworm/log-error/logging"
)

var (
	// configPath to the logging settings YAML file.
	configPath string
	// level is the minimum severity when no settings file is used.
	level string
	// detail switches failure records to the verbose error rendering.
	detail bool

	// rootCmd represents the base command for inspecting paths.
	rootCmd = &cobra.Command{
		Use:   "pathcheck [paths...]",
		Short: "Report file sizes, absorbing per-path failures into log records.",
		Long: `Inspects each path and prints its size.

A missing path is treated as optional: it produces a warn-level log record
and the run continues. Any other stat failure produces an error-level
record. Per-path failures never fail the run; only usage problems do.
Logging is configured from the YAML settings file when it exists,
otherwise from the --level flag.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &pathcheck.Options{
				ConfigPath: configPath,
				Level:      level,
				Detail:     detail,
				Paths:      args,
				Out:        os.Stdout,
			}

			return pathcheck.Run(ctx, options)
		},
	}
)

// Execute runs the pathcheck CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", logging.DefaultConfigFilename, "path to logging settings file")
	rootCmd.Flags().StringVarP(&level, "level", "l", logging.DefaultLevel, "minimum log level when no settings file is used")
	rootCmd.Flags().BoolVarP(&detail, "detail", "d", false, "render failures in verbose form")
}
