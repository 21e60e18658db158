package checks

// Profile selects which sequence of checks a run executes.
type Profile string

const (
	// ProfileQuick runs the priority-ordered checklist: dependency audit,
	// code style, static analysis, tests, migration status.
	ProfileQuick Profile = "quick"
	// ProfileFull runs the quick set plus the secret-tracking check, the
	// config and route cache builds, and the frontend asset build.
	ProfileFull Profile = "full"
)

// PreviewLines returns how many output lines a failed check shows inline
// during execution for this profile.
func (p Profile) PreviewLines() int {
	if p == ProfileFull {
		return 5
	}
	return 3
}

// CheckDefinition is the static descriptor of a potential check. Definitions
// are built by the catalog and never mutated after construction.
type CheckDefinition struct {
	// Name is a human-readable identifier, unique within a run.
	Name string
	// Category groups related checks in the report (e.g. "Security", "Tests").
	Category string
	// Command is the shell command line executed through "sh -c".
	Command string
	// Required marks the check as gating: a failure fails the whole run.
	// Non-required checks are advisory.
	Required bool
	// InvertExit flips the pass condition: the check passes when the command
	// exits non-zero. Used for "this must NOT be the case" probes such as a
	// secrets file being tracked in version control.
	InvertExit bool
	// Applicable decides, immediately before the check's turn, whether its
	// prerequisites are present. A nil predicate means always applicable.
	Applicable func() bool
}
