// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/formcoach/internal/logging"
)

// ErrCatalogUnavailable is returned by the recommend command when every
// catalog search failed.
var ErrCatalogUnavailable = errors.New("catalog unavailable")

func newRecommendCmd(opts *globalOptions) *cobra.Command {
	flags := &contextFlags{}

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Rank training videos for a training context",
		Example: `  formcoach recommend --category strength --skill beginner --session short --form-demos
  formcoach recommend -c volleyball -s intermediate -m shoulders,core --fixtures videos.json --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rc, err := flags.context()
			if err != nil {
				return err
			}

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			c, err := buildComponents(cfg, logging.Logger())
			if err != nil {
				return err
			}

			ctx := logging.ContextWithRequestID(cmd.Context(), logging.GenerateRequestID())
			resp, err := c.engine.GetContextualRecommendations(ctx, rc)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.jsonOut {
				err = writeJSON(out, resp)
			} else {
				err = writeRecommendations(out, rc, resp)
			}
			if err != nil {
				return err
			}

			if resp.Summary.CatalogUnavailable {
				return fmt.Errorf("%w: all %d searches failed", ErrCatalogUnavailable, resp.Summary.QueriesIssued)
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func newQueriesCmd(opts *globalOptions) *cobra.Command {
	flags := &contextFlags{}

	cmd := &cobra.Command{
		Use:   "queries",
		Short: "Show the catalog searches a training context would issue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rc, err := flags.context()
			if err != nil {
				return err
			}

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			c, err := buildComponents(cfg, logging.Logger())
			if err != nil {
				return err
			}

			queries, filters, err := c.engine.PreviewQueries(rc)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.jsonOut {
				return writeJSON(out, queryPreview{Queries: queries, Filters: filters})
			}
			return writeQueries(out, queries, filters)
		},
	}

	flags.register(cmd)
	return cmd
}
