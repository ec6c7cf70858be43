package cli

import (
	"fmt"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridkit/config"
)

func (a *app) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and edit the configuration file",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the configuration as TOML",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, _, err := a.loadConfig()
				if err != nil {
					return err
				}
				return toml.NewEncoder(cmd.OutOrStdout()).Encode(cfg)
			},
		},
		&cobra.Command{
			Use:   "set-session VALUE",
			Short: "Store the website session cookie",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.updateConfig(cmd, func(cfg *config.Config) error {
					cfg.Session = args[0]
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "set-path YEAR input|implementation|template PATH",
			Short: "Set a per-year directory or template path",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				year, err := strconv.Atoi(args[0])
				if err != nil || year < 2015 {
					return fmt.Errorf("invalid year %q", args[0])
				}
				return a.updateConfig(cmd, func(cfg *config.Config) error {
					switch args[1] {
					case "input":
						cfg.SetInputFiles(year, args[2])
					case "implementation":
						cfg.SetImplementation(year, args[2])
					case "template":
						cfg.SetDayTemplate(year, args[2])
					default:
						return fmt.Errorf("unknown path kind %q: want input, implementation or template", args[1])
					}
					return nil
				})
			},
		},
	)
	return cmd
}

// updateConfig loads the configuration, applies fn and saves it back.
func (a *app) updateConfig(cmd *cobra.Command, fn func(*config.Config) error) error {
	cfg, path, err := a.loadConfig()
	if err != nil {
		return err
	}
	if err := fn(cfg); err != nil {
		return err
	}
	if err := cfg.SaveTo(path); err != nil {
		return err
	}
	loggerFromContext(cmd.Context()).Info("configuration saved", "path", path)
	return nil
}
