// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/formcoach/internal/api"
	"github.com/tomtom215/formcoach/internal/logging"
	"github.com/tomtom215/formcoach/internal/metrics"
	"github.com/tomtom215/formcoach/internal/supervisor"
	"github.com/tomtom215/formcoach/internal/supervisor/services"
)

func newServeCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			logging.Info().
				Str("version", Version).
				Str("catalog", cfg.Catalog.Provider).
				Str("api_key", logging.SanitizeToken(cfg.Catalog.APIKey)).
				Str("environment", cfg.Server.Environment).
				Msg("Starting FormCoach")
			if cfg.ShouldWarnAboutCORS() {
				logging.Warn().Msg("CORS allows any origin; set CORS_ORIGINS for production")
			}

			c, err := buildComponents(cfg, logging.Logger())
			if err != nil {
				return err
			}

			var status api.CatalogStatus
			if c.breaker != nil {
				status = c.breaker
			}
			handler := api.NewHandler(c.engine, status)
			router := api.NewRouter(handler, api.MiddlewareConfigFromSecurity(&cfg.Security))

			server := &http.Server{
				Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
				Handler:           router.Setup(),
				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       cfg.Server.Timeout,
				WriteTimeout:      cfg.Server.Timeout,
				IdleTimeout:       60 * time.Second,
			}

			svcLogger := logging.WithComponent("supervisor")
			tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(svcLogger), supervisor.TreeConfig{
				ShutdownTimeout: cfg.Server.ShutdownTimeout,
			})
			if err != nil {
				return fmt.Errorf("failed to create supervisor tree: %w", err)
			}

			tree.AddMaintenanceService(services.NewCacheStatsService(c.engine, cfg.Recommend.StatsInterval, svcLogger))
			tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, svcLogger))

			metrics.SetAppInfo(Version)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
			if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("supervisor tree: %w", err)
			}

			unstopped, _ := tree.UnstoppedServiceReport()
			for _, svc := range unstopped {
				logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
			}

			logging.Info().Msg("Application stopped gracefully")
			return nil
		},
	}
}
