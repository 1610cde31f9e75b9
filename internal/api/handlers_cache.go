// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

package api

import (
	"net/http"
)

// CacheStats handles GET /api/v1/cache/stats.
func (h *Handler) CacheStats(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(h.service.GetCacheStats())
}

// ClearCache handles DELETE /api/v1/cache.
// It empties both tiers and answers with the post-clear statistics.
func (h *Handler) ClearCache(w http.ResponseWriter, r *http.Request) {
	h.service.ClearCache()
	NewResponseWriter(w, r).Success(h.service.GetCacheStats())
}
