package checks

// Aggregator collects check results in execution order and derives the run
// summary. It is append-only: recorded results are never mutated or removed.
type Aggregator struct {
	results []*CheckResult
}

// RunSummary is a pure projection over all recorded results.
type RunSummary struct {
	Total  int
	Passed int
	// Failed counts required checks whose status is Failed. Skipped checks
	// never count as failed, and neither do advisory failures.
	Failed int
	// Advisories counts non-required checks whose status is Failed.
	Advisories int
	Skipped    int
	// Categories lists category labels in first-seen order.
	Categories []string
	// ByCategory maps each category to its results in execution order.
	ByCategory map[string][]*CheckResult
}

// AllPassed reports the overall verdict; it is derived solely from the
// gating failure count.
func (s RunSummary) AllPassed() bool { return s.Failed == 0 }

// Record appends one result. Results must be recorded in execution order.
func (a *Aggregator) Record(r *CheckResult) {
	a.results = append(a.results, r)
}

// Results returns the recorded results in execution order.
func (a *Aggregator) Results() []*CheckResult { return a.results }

// Summary computes the run summary from everything recorded so far. It has
// no side effects: calling it repeatedly without intervening Record calls
// yields equal values.
func (a *Aggregator) Summary() RunSummary {
	s := RunSummary{
		Total:      len(a.results),
		ByCategory: make(map[string][]*CheckResult),
	}
	for _, r := range a.results {
		if _, seen := s.ByCategory[r.Category]; !seen {
			s.Categories = append(s.Categories, r.Category)
		}
		s.ByCategory[r.Category] = append(s.ByCategory[r.Category], r)

		switch r.Status {
		case StatusPassed:
			s.Passed++
		case StatusSkipped:
			s.Skipped++
		case StatusFailed:
			if r.Required {
				s.Failed++
			} else {
				s.Advisories++
			}
		}
	}
	return s
}
