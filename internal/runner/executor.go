package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Executor runs a single step in the given working directory.
type Executor interface {
	Run(ctx context.Context, step Step, dir string) error
}

// CommandError reports an external command that exited non-zero. The
// process exit status is propagated to the user.
type CommandError struct {
	Command    string
	ExitStatus int
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q exited with status %d", e.Command, e.ExitStatus)
}

// Compile-time check that ExecExecutor implements Executor.
var _ Executor = (*ExecExecutor)(nil)

// ExecExecutor runs steps with os/exec. Child output streams to Stdout
// and Stderr (the process streams when nil); stdin is inherited so git
// can prompt for credentials.
type ExecExecutor struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (e *ExecExecutor) Run(ctx context.Context, step Step, dir string) error {
	if len(step.Argv) == 0 {
		return nil
	}

	cmd := exec.CommandContext(ctx, step.Argv[0], step.Argv[1:]...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin

	cmd.Stdout = e.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = e.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &CommandError{Command: step.Display, ExitStatus: exitErr.ExitCode()}
		}
		return fmt.Errorf("executing %s: %w", step.Argv[0], err)
	}

	return nil
}
