package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess     = 0 // All executed checks passed
	ExitCheckFailed = 1 // One or more checks failed
	ExitError       = 2 // Configuration or runtime error
)

// CheckFailureError indicates that the run itself completed, but one or more
// required checks failed verification.
type CheckFailureError struct {
	Failed int
}

func (e *CheckFailureError) Error() string {
	return fmt.Sprintf("verification failed: %d check(s) did not pass", e.Failed)
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		// Check failures are the expected CI-gating outcome; everything
		// else is a configuration or runtime error.
		var checkErr *CheckFailureError
		if errors.As(err, &checkErr) {
			os.Exit(ExitCheckFailed)
		}
		os.Exit(ExitError)
	}
}
