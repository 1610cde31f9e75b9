// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

// Package services provides suture.Service wrappers for FormCoach's
// long-running components.
//
//   - HTTPServerService: runs the API server with graceful shutdown
//   - CacheStatsService: publishes cache and uptime gauges on a ticker
//
// Every wrapper returns ctx.Err() on cancellation and implements
// fmt.Stringer so suture can name it in log events.
package services
