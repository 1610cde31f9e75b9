// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

package api

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/formcoach/internal/catalog"
	"github.com/tomtom215/formcoach/internal/recommend"
	"github.com/tomtom215/formcoach/internal/validation"
)

// maxRequestBodyBytes bounds a recommendation request body.
const maxRequestBodyBytes = 1 << 20

// QueryPreview is the response body of POST /api/v1/recommendations/queries.
type QueryPreview struct {
	Queries []string              `json:"queries"`
	Filters catalog.SearchFilters `json:"filters"`
}

// Recommendations handles POST /api/v1/recommendations.
// The body is a training context; the response carries the ranked items
// and a summary of how they were produced.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	rc, ok := decodeContext(rw, w, r)
	if !ok {
		return
	}

	resp, err := h.service.GetContextualRecommendations(r.Context(), rc)
	if err != nil {
		writeEngineError(rw, err)
		return
	}

	rw.Success(resp)
}

// RecommendationQueries handles POST /api/v1/recommendations/queries.
// It returns the catalog queries and filters a context would produce
// without calling the catalog.
func (h *Handler) RecommendationQueries(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	rc, ok := decodeContext(rw, w, r)
	if !ok {
		return
	}

	queries, filters, err := h.service.PreviewQueries(rc)
	if err != nil {
		writeEngineError(rw, err)
		return
	}

	rw.Success(QueryPreview{Queries: queries, Filters: filters})
}

// RecommendationMetrics handles GET /api/v1/recommendations/metrics.
func (h *Handler) RecommendationMetrics(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(h.service.GetMetrics())
}

// decodeContext reads a JSON training context from the request body.
// Unknown fields are rejected so a misspelled preference is not silently
// ignored.
func decodeContext(rw *ResponseWriter, w http.ResponseWriter, r *http.Request) (*recommend.Context, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			rw.Error(http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge, "Request body too large")
			return nil, false
		}
		rw.BadRequest("Failed to read request body")
		return nil, false
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()

	var rc recommend.Context
	if err := dec.Decode(&rc); err != nil {
		rw.BadRequest("Invalid JSON body: " + err.Error())
		return nil, false
	}

	return &rc, true
}

// writeEngineError maps an engine error to an API error response.
func writeEngineError(rw *ResponseWriter, err error) {
	var verr *validation.RequestValidationError
	if errors.As(err, &verr) {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}
	if errors.Is(err, recommend.ErrInvalidContext) {
		rw.ValidationError(err.Error(), nil)
		return
	}
	rw.InternalError("Failed to generate recommendations", err)
}
