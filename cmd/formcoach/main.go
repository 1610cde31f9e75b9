// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

// Package main is the entry point for the FormCoach command.
//
// FormCoach ranks instructional training videos from an external catalog
// (the YouTube Data API v3, or a local JSON fixture file) for a described
// training session: exercise category, skill level, session length,
// target muscle groups, equipment and viewer preferences.
//
// # Commands
//
//	formcoach serve       run the HTTP API under a suture supervisor tree
//	formcoach recommend   rank videos for a context given as flags
//	formcoach queries     show the catalog searches a context would issue
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Command-line flags (--fixtures, --log-level)
//   - Environment variables (YOUTUBE_API_KEY, HTTP_PORT, RECOMMEND_CONCURRENCY, ...)
//   - Config file (CONFIG_PATH, ./config.yaml or /etc/formcoach/config.yaml)
//   - Built-in defaults
//
// # Example Usage
//
//	export YOUTUBE_API_KEY=your-api-key
//	formcoach serve
//
//	formcoach recommend --fixtures videos.json -c strength -s beginner --session short --form-demos
//
// # Port 3858
//
// The server listens on port 3858 by default.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tomtom215/formcoach/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
