// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/formcoach/internal/logging"
)

func TestResponseWriter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		write       func(rw *ResponseWriter)
		wantStatus  int
		wantSuccess bool
		wantCode    string
	}{
		{"success", func(rw *ResponseWriter) { rw.Success(map[string]int{"n": 1}) }, http.StatusOK, true, ""},
		{"created", func(rw *ResponseWriter) { rw.SuccessWithStatus(http.StatusCreated, "ok") }, http.StatusCreated, true, ""},
		{"bad request", func(rw *ResponseWriter) { rw.BadRequest("bad") }, http.StatusBadRequest, false, ErrCodeBadRequest},
		{"not found", func(rw *ResponseWriter) { rw.NotFound("gone") }, http.StatusNotFound, false, ErrCodeNotFound},
		{"too many", func(rw *ResponseWriter) { rw.TooManyRequests("slow down") }, http.StatusTooManyRequests, false, ErrCodeTooManyRequests},
		{"unavailable", func(rw *ResponseWriter) { rw.ServiceUnavailable("down") }, http.StatusServiceUnavailable, false, ErrCodeServiceUnavailable},
		{"internal", func(rw *ResponseWriter) { rw.InternalError("boom", nil) }, http.StatusInternalServerError, false, ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req = req.WithContext(logging.ContextWithRequestID(req.Context(), "req-abc"))
			rec := httptest.NewRecorder()

			tt.write(NewResponseWriter(rec, req))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
				t.Errorf("Content-Type = %q", ct)
			}
			if cc := rec.Header().Get("Cache-Control"); cc != "no-store" {
				t.Errorf("Cache-Control = %q", cc)
			}

			var env envelope
			if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
				t.Fatalf("failed to decode: %v", err)
			}
			if env.Success != tt.wantSuccess {
				t.Errorf("success = %v, want %v", env.Success, tt.wantSuccess)
			}
			if env.Meta == nil || env.Meta.RequestID != "req-abc" {
				t.Errorf("meta = %+v, want request id req-abc", env.Meta)
			}
			if tt.wantCode != "" {
				if env.Error == nil || env.Error.Code != tt.wantCode {
					t.Errorf("error = %+v, want code %s", env.Error, tt.wantCode)
				}
				if env.Error != nil && env.Error.RequestID != "req-abc" {
					t.Errorf("error.request_id = %q", env.Error.RequestID)
				}
			}
		})
	}
}
