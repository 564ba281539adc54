package runner

import (
	"github.com/glitterhq/glitter/internal/action"
	"github.com/glitterhq/glitter/internal/config"
)

// BuildSteps converts a dispatch plan into the ordered step list for one
// invocation: fetch first when requested, then hooks, then the action's
// own commands.
func BuildSteps(plan action.Plan, args config.ResolvedArguments, message string) []Step {
	var steps []Step

	if plan.Fetch {
		steps = append(steps, argvStep("git", "fetch"))
	}

	for _, hook := range plan.Hooks {
		steps = append(steps, NewStep(hook))
	}

	switch {
	case plan.Kind == action.PlanBuiltin && plan.Builtin == action.BuiltinPush:
		steps = append(steps, pushSteps(args, message)...)
	case plan.Kind == action.PlanBuiltin && plan.Builtin == action.BuiltinUndo:
		steps = append(steps, argvStep("git", "reset", "--soft", "HEAD~1"))
	default:
		for _, command := range plan.Commands {
			steps = append(steps, NewStep(command))
		}
	}

	return steps
}

// pushSteps stages everything, commits with the expanded message, and
// syncs with the remote. The branch and nohost settings pick the sync
// variant: nohost skips the pull and creates the upstream on push.
func pushSteps(args config.ResolvedArguments, message string) []Step {
	steps := []Step{
		argvStep("git", "add", "."),
		argvStep("git", "commit", "-m", message),
	}

	switch {
	case args.Branch == "":
		steps = append(steps,
			argvStep("git", "pull"),
			argvStep("git", "push"))
	case args.NoHost:
		steps = append(steps,
			argvStep("git", "push", "--set-upstream", "origin", args.Branch))
	default:
		steps = append(steps,
			argvStep("git", "pull", "origin", args.Branch),
			argvStep("git", "push", "origin", args.Branch))
	}

	return steps
}
