package checks

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// startProgress shows a live indicator for the named check while its command
// runs. On a terminal it animates a spinner on the current line and clears it
// when stopped, so the result glyph can overwrite it; otherwise it emits a
// single static line. The returned function stops the indicator and blocks
// until the line is cleared.
func (r *Runner) startProgress(name string) (stop func()) {
	if r.Out == nil {
		return func() {}
	}
	if !r.Interactive {
		fmt.Fprintf(r.Out, "▶ %s\n", name) //nolint:errcheck
		return func() {}
	}

	done := make(chan struct{})
	cleared := make(chan struct{})
	var once sync.Once
	go func() {
		i := 0
		for {
			select {
			case <-done:
				width := len(name) + 14
				fmt.Fprintf(r.Out, "\r%s\r", strings.Repeat(" ", width)) //nolint:errcheck
				close(cleared)
				return
			case <-time.After(100 * time.Millisecond):
				frame := spinnerFrames[i%len(spinnerFrames)]
				fmt.Fprintf(r.Out, "\r%s %s (running)", frame, name) //nolint:errcheck
				i++
			}
		}
	}()
	return func() {
		once.Do(func() { close(done) })
		<-cleared
	}
}
