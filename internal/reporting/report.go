// Package reporting renders run summaries for humans (grouped text report)
// and for CI systems (JUnit XML).
package reporting

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/edneymatias/antigravity-laravel-kit/internal/checks"
)

const reportWidth = 46

var (
	headerColor   = color.New(color.Bold)
	categoryColor = color.New(color.FgCyan, color.Bold)
	passColor     = color.New(color.FgGreen)
	failColor     = color.New(color.FgRed, color.Bold)
	warnColor     = color.New(color.FgYellow)
)

// statusGlyph returns the fixed glyph for a result, with advisory failures
// downgraded to a warning.
func statusGlyph(r *checks.CheckResult) string {
	switch r.Status {
	case checks.StatusPassed:
		return passColor.Sprint("✅")
	case checks.StatusSkipped:
		return warnColor.Sprint("⏭")
	case checks.StatusFailed:
		if !r.Required {
			return warnColor.Sprint("⚠️")
		}
		return failColor.Sprint("❌")
	}
	return "—"
}

// Render formats the grouped summary report. It is a pure function: the
// caller decides whether and where to print the result.
//
// Categories appear in first-seen order; within a category, checks appear in
// execution order. Failed checks carry an indented output preview.
func Render(summary checks.RunSummary) string {
	var b strings.Builder
	rule := strings.Repeat("━", reportWidth)

	fmt.Fprintf(&b, "\n%s\n", rule)
	fmt.Fprintf(&b, " %s\n", headerColor.Sprint("VERIFICATION REPORT"))
	fmt.Fprintf(&b, "%s\n", rule)

	for _, category := range summary.Categories {
		fmt.Fprintf(&b, "\n%s\n", categoryColor.Sprint(category))
		for _, r := range summary.ByCategory[category] {
			if label := statusLabel(r); label != "" {
				fmt.Fprintf(&b, "  %s %s%s\n", statusGlyph(r), padName(r.Name), label)
			} else {
				fmt.Fprintf(&b, "  %s %s\n", statusGlyph(r), r.Name)
			}
			if r.Status == checks.StatusFailed {
				for _, line := range previewFor(r) {
					fmt.Fprintf(&b, "       %s\n", line)
				}
			}
		}
	}

	fmt.Fprintf(&b, "\n%s\n", strings.Repeat("─", reportWidth))
	fmt.Fprintf(&b, "Total: %d  Passed: %d  Failed: %d  Skipped: %d\n",
		summary.Total, summary.Passed, summary.Failed, summary.Skipped)
	if summary.Advisories > 0 {
		fmt.Fprintf(&b, "Advisory failures (non-gating): %d\n", summary.Advisories)
	}

	if summary.AllPassed() {
		fmt.Fprintf(&b, "\n%s\n", passColor.Sprint("✅ All verification checks passed."))
	} else {
		fmt.Fprintf(&b, "\n%s\n", failColor.Sprintf("❌ Verification failed: %d check(s) did not pass.", summary.Failed))
	}
	return b.String()
}

// statusLabel returns the trailing annotation for non-passing results.
func statusLabel(r *checks.CheckResult) string {
	switch {
	case r.Status == checks.StatusSkipped:
		return warnColor.Sprint("skipped (prerequisite missing)")
	case r.Status == checks.StatusFailed && !r.Required:
		return warnColor.Sprint("failed (advisory)")
	case r.Status == checks.StatusFailed && r.ExitCode != nil:
		return failColor.Sprintf("failed (exit %d)", *r.ExitCode)
	case r.Status == checks.StatusFailed:
		return failColor.Sprint("failed")
	}
	return ""
}

// padName pads a check name to a fixed display width so status labels line
// up. Display width, not byte length: names may contain wide runes.
func padName(name string) string {
	const nameWidth = 22
	w := runewidth.StringWidth(name)
	if w >= nameWidth {
		return name + " "
	}
	return name + strings.Repeat(" ", nameWidth-w)
}

// previewFor returns the output lines echoed under a failed check in the
// report. The report shows a slightly longer excerpt than the live preview.
func previewFor(r *checks.CheckResult) []string {
	const maxLines = 5
	var lines []string
	for _, line := range r.Output {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == maxLines {
			lines = append(lines, "…")
			break
		}
	}
	return lines
}
