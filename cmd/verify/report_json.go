package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/edneymatias/antigravity-laravel-kit/internal/checks"
)

// --- JSON output structs ---

type runJSONReport struct {
	Timestamp string          `json:"timestamp"`
	Profile   string          `json:"profile"`
	URL       string          `json:"url,omitempty"`
	AllPassed bool            `json:"allPassed"`
	Counts    countsJSON      `json:"counts"`
	Checks    []checkJSONItem `json:"checks"`
}

type countsJSON struct {
	Total      int `json:"total"`
	Passed     int `json:"passed"`
	Failed     int `json:"failed"`
	Advisories int `json:"advisories,omitempty"`
	Skipped    int `json:"skipped"`
}

type checkJSONItem struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Status   string   `json:"status"`
	Required bool     `json:"required"`
	ExitCode *int     `json:"exitCode,omitempty"`
	Output   []string `json:"output,omitempty"`
}

// writeJSONReport renders the run summary as an indented JSON document.
// Checks appear grouped by category in first-seen order, matching the text
// report.
func writeJSONReport(w io.Writer, profile checks.Profile, url string, summary checks.RunSummary) error {
	report := runJSONReport{
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Profile:   string(profile),
		URL:       url,
		AllPassed: summary.AllPassed(),
		Counts: countsJSON{
			Total:      summary.Total,
			Passed:     summary.Passed,
			Failed:     summary.Failed,
			Advisories: summary.Advisories,
			Skipped:    summary.Skipped,
		},
		Checks: make([]checkJSONItem, 0, summary.Total),
	}
	for _, category := range summary.Categories {
		for _, r := range summary.ByCategory[category] {
			report.Checks = append(report.Checks, checkJSONItem{
				Name:     r.Name,
				Category: r.Category,
				Status:   string(r.Status),
				Required: r.Required,
				ExitCode: r.ExitCode,
				Output:   r.Output,
			})
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	_, err := fmt.Fprint(w, buf.String())
	return err
}
