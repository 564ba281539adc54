// Package action resolves action names to executable task plans.
package action

// Builtin identifies one of the fixed built-in actions.
type Builtin int

const (
	BuiltinPush Builtin = iota
	BuiltinActions
	BuiltinRun
	BuiltinUndo
	BuiltinHooks
)

func (b Builtin) String() string {
	switch b {
	case BuiltinPush:
		return "push"
	case BuiltinActions:
		return "actions"
	case BuiltinRun:
		return "run"
	case BuiltinUndo:
		return "undo"
	case BuiltinHooks:
		return "hooks"
	default:
		return "unknown"
	}
}

// ParseBuiltin resolves an action name, including its aliases, to a
// builtin. Matching is case-sensitive.
func ParseBuiltin(name string) (Builtin, bool) {
	switch name {
	case "push", "p", "commit":
		return BuiltinPush, true
	case "actions", "action":
		return BuiltinActions, true
	case "run":
		return BuiltinRun, true
	case "undo":
		return BuiltinUndo, true
	case "hooks":
		return BuiltinHooks, true
	default:
		return 0, false
	}
}

// Builtins returns all built-in actions in display order.
func Builtins() []Builtin {
	return []Builtin{BuiltinPush, BuiltinActions, BuiltinRun, BuiltinUndo, BuiltinHooks}
}
