// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/goccy/go-json"

	"github.com/tomtom215/formcoach/internal/catalog"
	"github.com/tomtom215/formcoach/internal/recommend"
)

type queryPreview struct {
	Queries []string              `json:"queries"`
	Filters catalog.SearchFilters `json:"filters"`
}

func writeJSON(w io.Writer, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// errWriter remembers the first write error so formatting code can print
// line after line and check once.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func writeRecommendations(w io.Writer, rc *recommend.Context, resp *recommend.Response) error {
	ew := &errWriter{w: w}

	ew.printf("Recommendations for %s %s (%s session)\n\n", rc.SkillLevel, rc.Category, rc.SessionLength)

	if len(resp.Items) == 0 {
		ew.printf("No matching videos.\n")
	}
	for i := range resp.Items {
		item := &resp.Items[i]
		v := &item.Video

		ew.printf("%2d. [%s] %s\n", i+1, humanize.Ftoa(item.Score), v.Title)
		ew.printf("    %s | %s min | %s views | https://www.youtube.com/watch?v=%s\n",
			v.ChannelTitle, humanize.Ftoa(item.Metadata.EstimatedDurationMinutes), humanize.Comma(v.ViewCount), v.ID)
		for _, reason := range item.Reasons {
			ew.printf("    + %s\n", reason)
		}
		for _, warning := range item.Warnings {
			ew.printf("    ! %s\n", warning)
		}
	}

	s := &resp.Summary
	ew.printf("\n%d of %d candidates from %d queries in %d ms",
		len(resp.Items), s.Candidates, s.QueriesIssued, s.LatencyMS)
	if s.Partial() {
		ew.printf(" (%d search and %d detail failures)", s.SearchFailures, s.DetailFailures)
	}
	ew.printf("\n")
	if s.CatalogUnavailable {
		ew.printf("The catalog could not be reached; results are empty because no search succeeded.\n")
	}

	return ew.err
}

func writeQueries(w io.Writer, queries []string, filters catalog.SearchFilters) error {
	ew := &errWriter{w: w}
	for i, q := range queries {
		ew.printf("%2d. %s\n", i+1, q)
	}

	parts := []string{
		fmt.Sprintf("max_results=%d", filters.MaxResults),
		"safe_search=" + filters.SafeSearch,
		"duration=" + filters.VideoDuration,
	}
	if filters.Language != "" {
		parts = append(parts, "language="+filters.Language)
	}
	ew.printf("\nfilters: %s\n", strings.Join(parts, " "))
	return ew.err
}
