package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-control-systems/thing-doer/components/config"
	"github.com/open-control-systems/thing-doer/components/core"
	"github.com/open-control-systems/thing-doer/components/thing/thcore"
)

type rootOptions struct {
	configPath string
	times      int
	logLevel   string
	logPath    string
}

func newRootCmd() *cobra.Command {
	opts := rootOptions{}

	cmd := &cobra.Command{
		Use:   "thing-doer",
		Short: "Print \"" + thcore.Message + "\" the configured number of times.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			c, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}

			return run(c, cmd.OutOrStdout())
		},
	}

	defaults := config.Default()

	cmd.Flags().StringVar(&opts.configPath, "config", os.Getenv("THING_DOER_CONFIG"),
		"TOML configuration file path")
	cmd.Flags().IntVarP(&opts.times, "times", "n", defaults.Times,
		"number of repetitions")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", defaults.LogLevel,
		"debug|info|warn|error")
	cmd.Flags().StringVar(&opts.logPath, "log-path", os.Getenv("THING_DOER_LOG_PATH"),
		"log file path, stderr if empty")

	return cmd
}

// resolveConfig merges the configuration file with the explicitly set flags.
func resolveConfig(cmd *cobra.Command, opts rootOptions) (config.Config, error) {
	c, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()

	if flags.Changed("times") {
		c.Times = opts.times
	}
	if flags.Changed("log-level") {
		c.LogLevel = opts.logLevel
	}
	if flags.Changed("log-path") || c.LogPath == "" {
		c.LogPath = opts.logPath
	}

	if err := c.Validate(); err != nil {
		return config.Config{}, err
	}

	return c, nil
}

func run(c config.Config, out io.Writer) error {
	fanoutCloser := &core.FanoutCloser{}
	defer fanoutCloser.Close()

	logCloser, err := core.SetupLog(c.LogLevel, c.LogPath)
	if err != nil {
		return fmt.Errorf("failed to setup log: %w", err)
	}
	fanoutCloser.Add("log", logCloser)

	core.Log.Debugw("thing-doer: starting", "times", c.Times)

	thcore.NewRepeatDoer(c.Times, thcore.NewWriterPrinter(out)).DoThing()

	core.Log.Debugw("thing-doer: done", "times", c.Times)

	return nil
}
