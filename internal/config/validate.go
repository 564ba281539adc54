package config

import (
	"fmt"
	"strings"
)

// UnknownHookError reports a hooks entry that names no custom task.
type UnknownHookError struct {
	Hook      string
	Available []string
}

func (e *UnknownHookError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("hook %q does not match any custom task (none defined)", e.Hook)
	}
	return fmt.Sprintf("hook %q does not match any custom task (have: %s)", e.Hook, strings.Join(e.Available, ", "))
}

// validate checks the document for structural errors. Checks run in a
// fixed order so the same defect always produces the same message.
func validate(rc *GlitterRc) error {
	seenTasks := make(map[string]bool)
	for _, task := range rc.CustomTasks {
		if task.Name == "" {
			return fmt.Errorf("custom task missing name")
		}
		if seenTasks[task.Name] {
			return fmt.Errorf("custom task %q defined twice", task.Name)
		}
		seenTasks[task.Name] = true
	}

	for _, hook := range rc.Hooks {
		if !seenTasks[hook] {
			return &UnknownHookError{Hook: hook, Available: rc.CustomTaskNames()}
		}
	}

	seenArgs := make(map[int]bool)
	for i, spec := range rc.CommitMessageArguments {
		if spec.Argument < 1 {
			return fmt.Errorf("commit_message_arguments entry %d: argument index must be at least 1, got %d", i, spec.Argument)
		}
		if seenArgs[spec.Argument] {
			return fmt.Errorf("commit_message_arguments: argument %d configured twice", spec.Argument)
		}
		seenArgs[spec.Argument] = true
	}

	seenActions := make(map[string]bool)
	for i, override := range rc.Arguments {
		if override.Action == "" {
			return fmt.Errorf("arguments entry %d missing action", i)
		}
		if seenActions[override.Action] {
			return fmt.Errorf("duplicate arguments override for action %q", override.Action)
		}
		seenActions[override.Action] = true
		if len(override.Arguments) > 0 {
			return fmt.Errorf("arguments override for %q cannot set positional arguments", override.Action)
		}
	}

	return nil
}
