// Package cli implements the gridkit command-line interface.
//
// # Commands
//
//   - basins: size the basins of a digit heightmap
//   - path:   shortest path across a #/. map
//   - show:   print a map after flips, rotations and translation
//   - fetch:  download a puzzle input
//   - config: inspect and edit the configuration file
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// travels in the command's context.Context.
//
// # Tracing
//
// --trace exports spans over OTLP/HTTP, configured by the standard
// OTEL_EXPORTER_OTLP_* environment variables.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridkit/config"
	"github.com/katalvlaran/gridkit/internal/telemetry"
)

var version = "dev"

// SetVersion sets the version reported by --version.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// app holds the global flags and state shared by all commands.
type app struct {
	stderr     io.Writer
	verbose    bool
	trace      bool
	configPath string
	shutdown   func(context.Context) error
}

// Execute runs the gridkit CLI with os.Args.
func Execute() error {
	return NewRootCommand(os.Stderr).ExecuteContext(context.Background())
}

// NewRootCommand builds the command tree. Logs go to stderr; command
// output goes to the command's configured output (stdout by default).
func NewRootCommand(stderr io.Writer) *cobra.Command {
	a := &app{stderr: stderr}

	root := &cobra.Command{
		Use:          "gridkit",
		Short:        "gridkit solves grid puzzles",
		Long:         `gridkit reads rectangular tile maps and runs flood fill, shortest path and geometric transforms over them.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if a.verbose {
				level = log.DebugLevel
			}
			logger := newLogger(a.stderr, level)
			cmd.SetContext(withLogger(cmd.Context(), logger))

			if a.trace {
				shutdown, err := telemetry.Setup(cmd.Context(), version)
				if err != nil {
					logger.Warn("tracing disabled", "err", err)
					return nil
				}
				a.shutdown = shutdown
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.shutdown == nil {
				return nil
			}
			return a.shutdown(cmd.Context())
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	flags.BoolVar(&a.trace, "trace", false, "export OpenTelemetry traces over OTLP/HTTP")
	flags.StringVar(&a.configPath, "config", "", "configuration file (default $XDG_CONFIG_HOME/gridkit/config.toml)")

	root.AddCommand(a.basinsCommand())
	root.AddCommand(a.pathCommand())
	root.AddCommand(a.showCommand())
	root.AddCommand(a.fetchCommand())
	root.AddCommand(a.configCommand())

	return root
}

// resolveConfigPath returns --config or the default location.
func (a *app) resolveConfigPath() (string, error) {
	if a.configPath != "" {
		return a.configPath, nil
	}
	path, err := config.Path()
	if err != nil {
		return "", fmt.Errorf("locate config: %w", err)
	}
	return path, nil
}

// loadConfig reads the configuration, treating a missing file as empty.
func (a *app) loadConfig() (*config.Config, string, error) {
	path, err := a.resolveConfigPath()
	if err != nil {
		return nil, "", err
	}
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}
