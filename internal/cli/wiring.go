// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

package cli

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/formcoach/internal/catalog"
	"github.com/tomtom215/formcoach/internal/config"
	"github.com/tomtom215/formcoach/internal/recommend"
)

// components are the runtime pieces shared by serve and the one-shot commands.
type components struct {
	engine  *recommend.Engine
	breaker *catalog.CircuitBreakerClient // nil when the breaker is disabled
}

// buildCatalog returns the configured catalog client.
func buildCatalog(cfg *config.Config) (catalog.Client, error) {
	switch cfg.Catalog.Provider {
	case config.CatalogProviderStatic:
		client, err := catalog.LoadStaticClient(cfg.Catalog.FixturesPath)
		if err != nil {
			return nil, err
		}
		return client, nil
	case config.CatalogProviderYouTube:
		return catalog.NewYouTubeClient(&cfg.Catalog), nil
	default:
		return nil, fmt.Errorf("unknown catalog provider %q", cfg.Catalog.Provider)
	}
}

// buildComponents wires catalog, circuit breaker and engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func buildComponents(cfg *config.Config, logger zerolog.Logger) (*components, error) {
	client, err := buildCatalog(cfg)
	if err != nil {
		return nil, err
	}

	c := &components{}
	if cfg.Catalog.CircuitBreaker.Enabled {
		c.breaker = catalog.NewCircuitBreakerClient(client, cfg.Catalog.CircuitBreaker, cfg.Catalog.Provider)
		client = c.breaker
	}

	c.engine, err = recommend.NewEngine(recommend.FromConfig(cfg), client, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create recommendation engine: %w", err)
	}
	return c, nil
}
