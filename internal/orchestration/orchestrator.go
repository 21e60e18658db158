// Package orchestration wires the check catalog, runner, aggregator, and
// reporter into a single sequential verification run.
package orchestration

import (
	"context"
	"fmt"
	"io"

	"github.com/edneymatias/antigravity-laravel-kit/internal/checks"
	"github.com/edneymatias/antigravity-laravel-kit/internal/reporting"
)

// Exit codes derived from a run's verdict.
const (
	ExitAllPassed   = 0
	ExitCheckFailed = 1
)

// Orchestrator drives one verification run to completion. It is single-use:
// construct one per invocation and call Run exactly once.
type Orchestrator struct {
	// Definitions is the ordered check sequence from the catalog.
	Definitions []checks.CheckDefinition
	// Runner executes applicable checks.
	Runner *checks.Runner
	// Out receives the final grouped report. Use io.Discard to suppress it.
	Out io.Writer
}

// Run executes every definition in order and returns the run summary.
//
// Inapplicable checks are recorded as Skipped without ever invoking the
// runner. Applicable checks run to completion and are recorded regardless of
// outcome; there is no early abort on a required failure, so one run always
// reports the full picture. If the control loop itself panics, the summary
// accumulated so far is still rendered before the panic propagates.
func (o *Orchestrator) Run(ctx context.Context) checks.RunSummary {
	agg := &checks.Aggregator{}

	defer func() {
		if p := recover(); p != nil {
			o.render(agg.Summary())
			panic(p)
		}
	}()

	for _, def := range o.Definitions {
		if def.Applicable != nil && !def.Applicable() {
			agg.Record(o.skipped(def))
			continue
		}
		agg.Record(o.Runner.Run(ctx, def))
	}

	summary := agg.Summary()
	o.render(summary)
	return summary
}

// skipped synthesizes the Skipped result for a check whose prerequisite is
// absent. Skipping is non-punitive: it never contributes to the verdict.
func (o *Orchestrator) skipped(def checks.CheckDefinition) *checks.CheckResult {
	if o.Out != nil {
		fmt.Fprintf(o.Out, "⏭ %s (skipped: prerequisite missing)\n", def.Name) //nolint:errcheck
	}
	return &checks.CheckResult{
		Name:     def.Name,
		Category: def.Category,
		Required: def.Required,
		Status:   checks.StatusSkipped,
	}
}

func (o *Orchestrator) render(summary checks.RunSummary) {
	if o.Out == nil {
		return
	}
	fmt.Fprint(o.Out, reporting.Render(summary)) //nolint:errcheck
}

// ExitCode maps a run verdict to the process exit code: 0 when no gating
// check failed, 1 otherwise.
func ExitCode(summary checks.RunSummary) int {
	if summary.AllPassed() {
		return ExitAllPassed
	}
	return ExitCheckFailed
}
