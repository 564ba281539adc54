package action

import (
	"fmt"
	"strings"

	"github.com/glitterhq/glitter/internal/config"
)

// PlanKind says whether a plan runs a built-in action or a custom task.
type PlanKind int

const (
	PlanBuiltin PlanKind = iota
	PlanCustom
)

func (k PlanKind) String() string {
	switch k {
	case PlanBuiltin:
		return "builtin"
	case PlanCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Plan is the executable outcome of dispatching one action.
type Plan struct {
	Kind    PlanKind
	Builtin Builtin // valid when Kind is PlanBuiltin
	Name    string  // action name as typed

	// Commands holds the custom task's command list, or for the hooks
	// builtin the flattened hook commands. Empty means a no-op task.
	Commands []string

	// Hooks holds the commands to run before the main task. Empty when
	// no_verify is set or the config defines no hooks.
	Hooks []string

	// Fetch asks the executor to fetch from the remote first. Only set on
	// commit-style plans.
	Fetch bool
}

// UnknownActionError reports an action that is neither a builtin nor a
// custom task.
type UnknownActionError struct {
	Action    string
	Available []string
}

func (e *UnknownActionError) Error() string {
	return fmt.Sprintf("unknown action %q (available: %s)", e.Action, strings.Join(e.Available, ", "))
}

// Dispatch resolves the action named by res against the configuration.
// Custom tasks match first by exact name, so a custom task may shadow a
// builtin; builtin aliases apply only when no custom task matched. Hooks
// attach to every plan except the hooks builtin itself, and only while
// no_verify is off.
func Dispatch(res config.ResolvedArguments, rc *config.GlitterRc) (Plan, error) {
	if task, ok := rc.LookupTask(res.Action); ok {
		plan := Plan{Kind: PlanCustom, Name: res.Action, Commands: task.Execute}
		attachHooks(&plan, res, rc)
		return plan, nil
	}

	builtin, ok := ParseBuiltin(res.Action)
	if !ok {
		return Plan{}, &UnknownActionError{Action: res.Action, Available: availableActions(rc)}
	}

	plan := Plan{Kind: PlanBuiltin, Builtin: builtin, Name: res.Action}
	switch builtin {
	case BuiltinPush:
		plan.Fetch = rc.FetchEnabled()
	case BuiltinRun:
		name, err := runTarget(res, rc)
		if err != nil {
			return Plan{}, err
		}
		task, _ := rc.LookupTask(name)
		plan.Commands = task.Execute
	case BuiltinHooks:
		plan.Commands = rc.HookCommands()
	}
	attachHooks(&plan, res, rc)
	return plan, nil
}

// runTarget picks the custom task the run builtin should execute: its
// first positional argument.
func runTarget(res config.ResolvedArguments, rc *config.GlitterRc) (string, error) {
	if len(res.Arguments) == 0 {
		if len(rc.CustomTasks) == 0 {
			return "", fmt.Errorf("run needs a custom task name, and none are defined")
		}
		return "", fmt.Errorf("run needs a custom task name (have: %s)", strings.Join(rc.CustomTaskNames(), ", "))
	}
	name := res.Arguments[0]
	if _, ok := rc.LookupTask(name); !ok {
		return "", &UnknownActionError{Action: name, Available: rc.CustomTaskNames()}
	}
	return name, nil
}

// attachHooks adds the configured hook commands to plans other than the
// hooks builtin, which manages hooks itself.
func attachHooks(plan *Plan, res config.ResolvedArguments, rc *config.GlitterRc) {
	if res.NoVerify {
		return
	}
	if plan.Kind == PlanBuiltin && plan.Builtin == BuiltinHooks {
		return
	}
	plan.Hooks = rc.HookCommands()
}

// availableActions lists everything dispatch could have matched: builtins
// first, then custom tasks in document order.
func availableActions(rc *config.GlitterRc) []string {
	names := make([]string, 0, len(rc.CustomTasks)+len(Builtins()))
	for _, b := range Builtins() {
		names = append(names, b.String())
	}
	names = append(names, rc.CustomTaskNames()...)
	return names
}
