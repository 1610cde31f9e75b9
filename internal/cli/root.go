// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

// Package cli implements the formcoach commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/tomtom215/formcoach/internal/config"
	"github.com/tomtom215/formcoach/internal/logging"
)

// Version is set at build time with -ldflags "-X .../internal/cli.Version=...".
var Version = "dev"

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	fixtures string
	logLevel string
	jsonOut  bool
}

// loadConfig loads the layered configuration with flag overrides applied
// and initializes the global logger from it.
func (o *globalOptions) loadConfig() (*config.Config, error) {
	var opts []config.Option
	if o.fixtures != "" {
		opts = append(opts, config.WithFixtures(o.fixtures))
	}
	if o.logLevel != "" {
		opts = append(opts, config.WithLogLevel(o.logLevel))
	}

	cfg, err := config.Load(opts...)
	if err != nil {
		return nil, err
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	return cfg, nil
}

// NewRootCmd builds the top-level command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "formcoach",
		Short:         "Contextual training video recommendations",
		Long:          "Ranks instructional training videos from a video catalog for a described training session.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.fixtures, "fixtures", "", "Use a JSON fixture file as the catalog instead of YouTube")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Override LOG_LEVEL (trace, debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&opts.jsonOut, "json", false, "Print JSON instead of text")

	root.AddCommand(newServeCmd(opts))
	root.AddCommand(newRecommendCmd(opts))
	root.AddCommand(newQueriesCmd(opts))

	return root
}
