package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/edneymatias/antigravity-laravel-kit/internal/checks"
	"github.com/edneymatias/antigravity-laravel-kit/internal/orchestration"
	"github.com/edneymatias/antigravity-laravel-kit/internal/projectconfig"
	"github.com/edneymatias/antigravity-laravel-kit/internal/reporting"
)

func newQuickCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quick",
		Short: "Run the quick pre-commit checklist",
		Long: `Run the quick checklist: dependency audit, code style, static analysis,
tests, and migration status, in priority order.

Checks whose prerequisites are absent (e.g. no composer.lock) are skipped,
not failed. The command exits 0 when every executed check passed.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerification(cmd, checks.ProfileQuick)
		},
	}
	addVerificationFlags(cmd)
	return cmd
}

func newFullCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "full",
		Short: "Run the full verification suite",
		Long: `Run the full verification suite: everything in the quick checklist plus
the secrets-tracking check, config and route cache builds, and the frontend
asset build.

All checks always run to completion; a failure never aborts the remaining
checks. The command exits 0 when every executed check passed.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerification(cmd, checks.ProfileFull)
		},
	}
	addVerificationFlags(cmd)
	return cmd
}

func addVerificationFlags(cmd *cobra.Command) {
	cmd.Flags().String("url", "", "Project URL shown in the run header (informational only)")
	cmd.Flags().String("dir", ".", "Project directory to verify")
	cmd.Flags().String("format", "text", "Output format: text | json")
	cmd.Flags().String("junit", "", "Also write a JUnit XML report to this file")
	cmd.Flags().Int("timeout", 0, "Per-check timeout in seconds (0 = wait for completion)")
}

func runVerification(cmd *cobra.Command, profile checks.Profile) error {
	url, _ := cmd.Flags().GetString("url")
	format, _ := cmd.Flags().GetString("format")
	junitPath, _ := cmd.Flags().GetString("junit")
	timeoutFlag, _ := cmd.Flags().GetInt("timeout")

	if format != "text" && format != "json" {
		return fmt.Errorf("invalid format %q: expected text or json", format)
	}

	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return err
	}
	if !filepath.IsAbs(dir) {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		dir = filepath.Join(wd, dir)
	}
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("project directory %s: %w", dir, err)
	}

	cfg, err := projectconfig.Load(dir)
	if err != nil {
		return err
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeoutFlag > 0 {
		timeout = time.Duration(timeoutFlag) * time.Second
	}

	catalog := &checks.Catalog{
		Dir:       dir,
		Overrides: cfg.Checks.Overrides,
		Extras:    extraDefinitions(dir, cfg.Checks.Extra),
	}
	defs := catalog.Build(profile)
	slog.Debug("catalog built", "profile", profile, "checks", len(defs), "dir", dir)

	out := cmd.OutOrStdout()
	progress := out
	reportOut := out
	if format == "json" {
		// JSON mode emits only the report document.
		progress = io.Discard
		reportOut = io.Discard
	}

	printRunHeader(progress, profile, dir, url)

	runner := &checks.Runner{
		Dir:         dir,
		Out:         progress,
		Preview:     previewFor(cfg, profile),
		Timeout:     timeout,
		Interactive: isTerminal(out),
	}
	orch := &orchestration.Orchestrator{
		Definitions: defs,
		Runner:      runner,
		Out:         reportOut,
	}

	summary := orch.Run(cmd.Context())

	if format == "json" {
		if err := writeJSONReport(out, profile, url, summary); err != nil {
			return err
		}
	}
	if junitPath != "" {
		if err := reporting.WriteJUnit(junitPath, summary); err != nil {
			return err
		}
	}

	if orchestration.ExitCode(summary) != orchestration.ExitAllPassed {
		return &CheckFailureError{Failed: summary.Failed}
	}
	return nil
}

//nolint:errcheck
func printRunHeader(w io.Writer, profile checks.Profile, dir, url string) {
	fmt.Fprintf(w, "🔍 Laravel verification — %s profile\n", profile)
	fmt.Fprintf(w, "   Project: %s\n", dir)
	if url != "" {
		fmt.Fprintf(w, "   URL: %s\n", url)
	}
	fmt.Fprintln(w)
}

// previewFor resolves the inline failure preview count for the profile, with
// the profile default as fallback.
func previewFor(cfg *projectconfig.Config, profile checks.Profile) int {
	if profile == checks.ProfileFull && cfg.Preview.Full > 0 {
		return cfg.Preview.Full
	}
	if profile == checks.ProfileQuick && cfg.Preview.Quick > 0 {
		return cfg.Preview.Quick
	}
	return profile.PreviewLines()
}

// extraDefinitions converts user-configured checks into catalog definitions.
// Extras default to required; an if_exists path becomes the applicability
// probe.
func extraDefinitions(dir string, extras []projectconfig.ExtraCheck) []checks.CheckDefinition {
	var defs []checks.CheckDefinition
	for _, e := range extras {
		category := e.Category
		if category == "" {
			category = "Custom"
		}
		required := true
		if e.Required != nil {
			required = *e.Required
		}
		def := checks.CheckDefinition{
			Name:     e.Name,
			Category: category,
			Command:  e.Command,
			Required: required,
		}
		if e.IfExists != "" {
			probe := filepath.Join(dir, e.IfExists)
			def.Applicable = func() bool {
				_, err := os.Stat(probe)
				return err == nil
			}
		}
		defs = append(defs, def)
	}
	return defs
}

// isTerminal reports whether w is the process's terminal stdout, which
// gates the animated spinner.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
