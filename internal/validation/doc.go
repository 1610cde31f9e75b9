// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is built lazily and shared; validator caches
// struct metadata, so reusing one instance keeps repeated request validation
// cheap.
//
// Custom tags:
//
//	category        exercise category enum (strength, volleyball, plyometric, recovery)
//	skill_level     skill level enum (beginner, intermediate, advanced)
//	session_length  session-length bucket enum (short, medium, long)
//	language_code   "en", "eng", "pt-BR"
//
// The enum tags delegate to the field's IsValid method, so the value sets
// live next to the types that define them.
//
// Errors are reported with JSON field paths ("preferences.language") and can
// be converted to the API error envelope:
//
//	if verr := validation.ValidateStruct(&rc); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, verr)
//	    return
//	}
package validation
