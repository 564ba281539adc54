// Package glitter provides a public Go API for the glitter workflow
// engine: load a .glitterrc, resolve an invocation against it, and build
// the commit message and command sequence without executing anything.
//
// Basic usage:
//
//	res, err := glitter.Plan(glitter.Options{
//	    Dir:       "/path/to/repo",
//	    Action:    "push",
//	    Arguments: []string{"feat", "login", "add the login page"},
//	})
//	fmt.Println(res.Message)  // "feat(login): add the login page"
//	for _, command := range res.Commands {
//	    fmt.Println(command)  // "git add .", "git commit -m ...", ...
//	}
package glitter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glitterhq/glitter/internal/action"
	"github.com/glitterhq/glitter/internal/config"
	"github.com/glitterhq/glitter/internal/runner"
	"github.com/glitterhq/glitter/internal/template"
)

// Options configures one invocation. Flag fields left false stay unset,
// so a per-action override in the configuration can still switch them on.
type Options struct {
	// Action is the action to dispatch: a builtin (push, undo, run,
	// hooks, actions) or a custom task name (required).
	Action string

	// Arguments are the positional arguments after the action.
	Arguments []string

	// Dir is the directory whose .glitterrc applies. Defaults to ".".
	Dir string

	// ConfigPath points at an explicit configuration file. Empty means
	// auto-detect .glitterrc in Dir, falling back to the defaults.
	ConfigPath string

	// Branch is the branch to pull from and push to. Empty means the
	// current branch's upstream.
	Branch string

	// Dry marks the invocation as a dry run.
	Dry bool

	// NoHost skips host integration: no pull, upstream created on push.
	NoHost bool

	// Raw uses the arguments as the commit message, bypassing the
	// template.
	Raw bool

	// NoVerify skips the configured hooks.
	NoVerify bool
}

// Result describes the resolved invocation.
type Result struct {
	// Action is the action name as typed.
	Action string

	// Kind says what matched: "builtin" or "custom".
	Kind string

	// Message is the expanded commit message. Empty for actions that do
	// not commit.
	Message string

	// Commands lists the command lines in execution order: fetch first
	// when configured, then hooks, then the action's own commands.
	Commands []string

	// Branch is the resolved target branch, empty for the current one.
	Branch string

	// DryRun reports whether the invocation resolved to a dry run.
	DryRun bool
}

// Plan resolves an invocation to its commit message and command
// sequence. Nothing is executed and the repository is never touched.
func Plan(opts Options) (*Result, error) {
	if opts.Action == "" {
		return nil, errors.New("action is required")
	}

	// 1. Load configuration.
	rc, err := loadConfig(opts)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	// 2. Resolve the effective arguments.
	res, err := config.Resolve(cliArguments(opts), rc)
	if err != nil {
		return nil, err
	}

	// 3. Dispatch the action.
	plan, err := action.Dispatch(res, rc)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Action: res.Action,
		Kind:   plan.Kind.String(),
		Branch: res.Branch,
		DryRun: res.Dry,
	}

	// The actions builtin only lists what is available; it has no
	// command sequence.
	if plan.Kind == action.PlanBuiltin && plan.Builtin == action.BuiltinActions {
		return result, nil
	}

	// 4. Expand the commit message for commit-style plans.
	if plan.Kind == action.PlanBuiltin && plan.Builtin == action.BuiltinPush {
		result.Message, err = template.Expand(rc.CommitMessageTemplate(), res.Arguments, rc.CommitMessageArguments, res.Raw)
		if err != nil {
			return nil, err
		}
	}

	// 5. Build the command sequence.
	for _, step := range runner.BuildSteps(plan, res, result.Message) {
		result.Commands = append(result.Commands, step.Display)
	}

	return result, nil
}

// Config wraps a loaded .glitterrc document.
type Config struct {
	rc *config.GlitterRc
}

// LoadConfig reads and validates a .glitterrc file.
func LoadConfig(path string) (*Config, error) {
	rc, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return &Config{rc: rc}, nil
}

// CustomTasks returns the names of the configured custom tasks.
func (c *Config) CustomTasks() []string {
	return c.rc.CustomTaskNames()
}

// Hooks returns the configured hook names.
func (c *Config) Hooks() []string {
	return c.rc.Hooks
}

// CommitMessageTemplate returns the effective commit message template.
func (c *Config) CommitMessageTemplate() string {
	return c.rc.CommitMessageTemplate()
}

// ExpandMessage renders the configured commit message template against
// positional arguments, applying the case transforms and type checks.
func (c *Config) ExpandMessage(args []string) (string, error) {
	return template.Expand(c.rc.CommitMessageTemplate(), args, c.rc.CommitMessageArguments, false)
}

// cliArguments maps the public options onto the resolver's input. A
// false flag stays unset rather than explicit, preserving override
// precedence.
func cliArguments(opts Options) config.Arguments {
	return config.Arguments{
		Action:    opts.Action,
		Arguments: opts.Arguments,
		RCPath:    opts.ConfigPath,
		Branch:    opts.Branch,
		Dry:       triState(opts.Dry),
		NoHost:    triState(opts.NoHost),
		Raw:       triState(opts.Raw),
		NoVerify:  triState(opts.NoVerify),
	}
}

func triState(v bool) config.TriState {
	if v {
		return config.Explicit(true)
	}
	return config.TriState{}
}

// loadConfig loads the document for one invocation: the explicit path
// when given, else Dir/.glitterrc when present, else the defaults.
func loadConfig(opts Options) (*config.GlitterRc, error) {
	if opts.ConfigPath != "" {
		return config.Load(opts.ConfigPath)
	}

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, config.DefaultRCName)
	if _, err := os.Stat(path); err == nil {
		return config.Load(path)
	}
	return config.DefaultConfiguration(), nil
}
