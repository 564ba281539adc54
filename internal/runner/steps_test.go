package runner

import (
	"testing"

	"github.com/glitterhq/glitter/internal/action"
	"github.com/glitterhq/glitter/internal/config"
	"github.com/stretchr/testify/require"
)

func displays(steps []Step) []string {
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = s.Display
	}
	return out
}

func TestBuildSteps_PushDefault(t *testing.T) {
	plan := action.Plan{Kind: action.PlanBuiltin, Builtin: action.BuiltinPush}

	steps := BuildSteps(plan, config.ResolvedArguments{}, "wip")

	require.Equal(t, []string{
		"git add .",
		"git commit -m wip",
		"git pull",
		"git push",
	}, displays(steps))
}

func TestBuildSteps_PushWithBranch(t *testing.T) {
	plan := action.Plan{Kind: action.PlanBuiltin, Builtin: action.BuiltinPush}
	args := config.ResolvedArguments{Branch: "main"}

	steps := BuildSteps(plan, args, "feat: add login")

	require.Equal(t, []string{
		"git add .",
		`git commit -m "feat: add login"`,
		"git pull origin main",
		"git push origin main",
	}, displays(steps))
}

func TestBuildSteps_PushNoHost(t *testing.T) {
	plan := action.Plan{Kind: action.PlanBuiltin, Builtin: action.BuiltinPush}
	args := config.ResolvedArguments{Branch: "feature/login", NoHost: true}

	steps := BuildSteps(plan, args, "wip")

	require.Equal(t, []string{
		"git add .",
		"git commit -m wip",
		"git push --set-upstream origin feature/login",
	}, displays(steps))
}

func TestBuildSteps_FetchAndHooksComeFirst(t *testing.T) {
	plan := action.Plan{
		Kind:    action.PlanBuiltin,
		Builtin: action.BuiltinPush,
		Hooks:   []string{"cargo fmt", "cargo clippy"},
		Fetch:   true,
	}

	steps := BuildSteps(plan, config.ResolvedArguments{}, "wip")

	require.Equal(t, []string{
		"git fetch",
		"cargo fmt",
		"cargo clippy",
		"git add .",
		"git commit -m wip",
		"git pull",
		"git push",
	}, displays(steps))
}

func TestBuildSteps_Undo(t *testing.T) {
	plan := action.Plan{Kind: action.PlanBuiltin, Builtin: action.BuiltinUndo}

	steps := BuildSteps(plan, config.ResolvedArguments{}, "")

	require.Equal(t, []string{"git reset --soft HEAD~1"}, displays(steps))
}

func TestBuildSteps_UndoWithHooks(t *testing.T) {
	plan := action.Plan{
		Kind:    action.PlanBuiltin,
		Builtin: action.BuiltinUndo,
		Hooks:   []string{"make lint"},
	}

	steps := BuildSteps(plan, config.ResolvedArguments{}, "")

	require.Equal(t, []string{
		"make lint",
		"git reset --soft HEAD~1",
	}, displays(steps))
}

func TestBuildSteps_CustomTask(t *testing.T) {
	plan := action.Plan{
		Kind:     action.PlanCustom,
		Name:     "ship",
		Commands: []string{"cargo test", "cargo publish"},
	}

	steps := BuildSteps(plan, config.ResolvedArguments{}, "")

	require.Equal(t, []string{"cargo test", "cargo publish"}, displays(steps))
}

func TestBuildSteps_CustomTaskNoCommands(t *testing.T) {
	plan := action.Plan{Kind: action.PlanCustom, Name: "noop"}

	steps := BuildSteps(plan, config.ResolvedArguments{}, "")

	require.Empty(t, steps)
}
