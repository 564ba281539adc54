package runner

import (
	"context"
	"strings"
)

// Compile-time check that RecordingExecutor implements Executor.
var _ Executor = (*RecordingExecutor)(nil)

// RecordingExecutor captures executed steps without running anything.
// When FailOn is non-empty, the first step whose display contains it
// fails with a CommandError (status FailStatus, defaulting to 1).
type RecordingExecutor struct {
	Commands   []string
	Dirs       []string
	FailOn     string
	FailStatus int
}

func (r *RecordingExecutor) Run(_ context.Context, step Step, dir string) error {
	r.Commands = append(r.Commands, step.Display)
	r.Dirs = append(r.Dirs, dir)

	if r.FailOn != "" && strings.Contains(step.Display, r.FailOn) {
		status := r.FailStatus
		if status == 0 {
			status = 1
		}
		return &CommandError{Command: step.Display, ExitStatus: status}
	}
	return nil
}
