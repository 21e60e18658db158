package checks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/fatih/color"
)

// CommandExecutor runs one shell command and reports its combined output and
// exit code. A non-zero exit code is normal data, not an error; err is set
// only when the process could not be spawned at all.
type CommandExecutor interface {
	Execute(ctx context.Context, dir, command string) (output []byte, exitCode int, err error)
}

// ShellExecutor executes commands through "sh -c" with stdout and stderr
// merged, so diagnostics interleave in the order a developer would see them
// in a terminal.
type ShellExecutor struct{}

var _ CommandExecutor = (*ShellExecutor)(nil)

func (ShellExecutor) Execute(ctx context.Context, dir, command string) ([]byte, int, error) {
	//nolint:gosec // check commands come from the catalog and project config, not untrusted input
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	if dir != "" {
		cmd.Dir = dir
	}
	output, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return output, exitErr.ExitCode(), nil
		}
		// Non-exit error: the shell itself could not be started.
		return output, 0, err
	}
	return output, 0, nil
}

// Runner executes one check at a time against a project directory, emitting a
// live progress line per check. Progress output is purely informational; the
// returned CheckResult is the data contract.
type Runner struct {
	// Dir is the working directory inherited by every check command.
	Dir string
	// Out receives progress lines. Use io.Discard to silence them.
	Out io.Writer
	// Preview is how many output lines to echo inline when a check fails.
	Preview int
	// Timeout bounds a single check's execution. Zero means block until the
	// command exits, which is the default behavior.
	Timeout time.Duration
	// Interactive enables the animated spinner while a command runs.
	Interactive bool
	// Exec is the command executor; nil means ShellExecutor.
	Exec CommandExecutor
}

var (
	passMark = color.New(color.FgGreen).Sprint("✅")
	failMark = color.New(color.FgRed).Sprint("❌")
)

// Run executes def's command and classifies the outcome. Spawn failures are
// absorbed into a Failed result with a synthetic diagnostic line; Run never
// returns an error and never produces a Skipped result.
func (r *Runner) Run(ctx context.Context, def CheckDefinition) *CheckResult {
	executor := r.Exec
	if executor == nil {
		executor = ShellExecutor{}
	}

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	stop := r.startProgress(def.Name)
	output, code, err := executor.Execute(ctx, r.Dir, def.Command)
	stop()

	result := &CheckResult{
		Name:     def.Name,
		Category: def.Category,
		Required: def.Required,
		Output:   splitLines(output),
	}

	if err != nil {
		result.Status = StatusFailed
		result.Output = append(result.Output, fmt.Sprintf("cannot run %q: %v", def.Command, err))
		r.reportResult(def, result)
		return result
	}

	result.ExitCode = &code
	passed := code == 0
	if def.InvertExit {
		passed = !passed
	}
	if passed {
		result.Status = StatusPassed
	} else {
		result.Status = StatusFailed
	}
	r.reportResult(def, result)
	return result
}

// reportResult prints the one-line pass/fail indicator and, on failure, a
// short inline preview of the command output.
func (r *Runner) reportResult(def CheckDefinition, result *CheckResult) {
	if r.Out == nil {
		return
	}
	if result.Status == StatusPassed {
		fmt.Fprintf(r.Out, "%s %s\n", passMark, def.Name) //nolint:errcheck
		return
	}
	fmt.Fprintf(r.Out, "%s %s\n", failMark, def.Name) //nolint:errcheck
	for _, line := range previewLines(result.Output, r.Preview) {
		fmt.Fprintf(r.Out, "   │ %s\n", line) //nolint:errcheck
	}
}

// previewLines returns up to n non-empty lines from output.
func previewLines(output []string, n int) []string {
	if n <= 0 {
		n = 3
	}
	var preview []string
	for _, line := range output {
		if strings.TrimSpace(line) == "" {
			continue
		}
		preview = append(preview, line)
		if len(preview) == n {
			break
		}
	}
	return preview
}

// splitLines splits raw command output into lines, dropping the trailing
// newline artifact.
func splitLines(output []byte) []string {
	trimmed := strings.TrimRight(string(output), "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}
