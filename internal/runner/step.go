package runner

import (
	"runtime"
	"strconv"
	"strings"
)

// Step is a single external command in an execution sequence.
type Step struct {
	// Display is the human-readable command line, echoed before running
	// and in dry runs.
	Display string
	// Argv is the program and its arguments. For shell-delegated steps
	// this is the shell invocation wrapping the original command line.
	Argv []string
}

// shellMeta are the characters that force delegation to the system shell.
const shellMeta = "|&;<>()$`\\\"'*?[]#~"

// NewStep converts a configured command string into an executable step.
// Commands containing shell metacharacters run through the system shell
// (sh -c, or cmd /c on Windows); plain commands are whitespace-split
// into an argv.
func NewStep(command string) Step {
	if strings.ContainsAny(command, shellMeta) {
		return Step{Display: command, Argv: shellArgv(command)}
	}
	return Step{Display: command, Argv: strings.Fields(command)}
}

// argvStep builds a step from a literal argv. Arguments containing
// whitespace are quoted in the display form only.
func argvStep(argv ...string) Step {
	display := make([]string, len(argv))
	for i, arg := range argv {
		if strings.ContainsAny(arg, " \t") {
			display[i] = strconv.Quote(arg)
		} else {
			display[i] = arg
		}
	}
	return Step{Display: strings.Join(display, " "), Argv: argv}
}

func shellArgv(command string) []string {
	if runtime.GOOS == "windows" {
		return []string{"cmd", "/c", command}
	}
	return []string{"sh", "-c", command}
}
