// Package checks defines the verification check model: static check
// definitions, the shell runner that executes them, and the aggregator
// that folds individual outcomes into a run summary.
package checks

// Status represents the outcome of a single verification check.
type Status string

const (
	// StatusPassed indicates the check's command exited successfully.
	StatusPassed Status = "passed"
	// StatusFailed indicates the command exited non-zero or could not be spawned.
	StatusFailed Status = "failed"
	// StatusSkipped indicates the check's prerequisites were absent and the
	// command was never invoked.
	StatusSkipped Status = "skipped"
)

// CheckResult holds the outcome of attempting one check. It is created once
// per check per run and never mutated afterwards.
type CheckResult struct {
	// Name and Category are copied from the originating CheckDefinition.
	Name     string
	Category string
	// Status is exactly one of Passed, Failed, or Skipped. Skipped is only
	// produced when a prerequisite is missing, never when a command fails.
	Status Status
	// Required mirrors the definition: a failed required check fails the run,
	// a failed advisory check is reported but does not gate.
	Required bool
	// Output is the captured combined stdout+stderr, split into lines,
	// uninterpreted. For spawn failures it carries a synthetic diagnostic.
	Output []string
	// ExitCode is set only when the command actually ran to completion.
	// It is nil for skipped checks and for spawn failures.
	ExitCode *int
}

// Passed reports whether the check succeeded.
func (r *CheckResult) Passed() bool { return r.Status == StatusPassed }

// Gating reports whether this result should fail the overall run.
func (r *CheckResult) Gating() bool { return r.Status == StatusFailed && r.Required }
