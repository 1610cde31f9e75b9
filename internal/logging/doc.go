// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

// Package logging provides centralized zerolog-based structured logging for FormCoach.
//
// The package provides:
//   - Zero-allocation structured logging via zerolog
//   - JSON output for production, console output for development
//   - Context-aware logging with request and correlation ID propagation
//   - An slog adapter so suture's sutureslog handler writes through zerolog
//   - Helpers that mask API keys before they reach log output
//
// # Quick Start
//
//	import "github.com/tomtom215/formcoach/internal/logging"
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Str("category", "strength").Msg("Generating queries")
//	logging.Ctx(ctx).Warn().Err(err).Msg("Catalog search failed")
//
// # Components
//
// Long-lived components derive a child logger once and keep it by value:
//
//	logger := logging.WithComponent("recommend")
//	logger.Info().Int("queries", n).Msg("Fan-out complete")
//
// # Best Practices
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
//
// Never log raw catalog URLs; they carry the API key. Use SanitizeURL.
package logging
