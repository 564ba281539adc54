// Package config provides .glitterrc loading, validation, and effective
// argument resolution for glitter.
package config

// DefaultCommitMessage is the template used when a .glitterrc does not set
// commit_message: every positional argument, space-joined.
const DefaultCommitMessage = "$1+"

// DefaultRCName is the conventional configuration file name, looked up in
// the working directory when no explicit path is given.
const DefaultRCName = ".glitterrc"

// Arguments carries one invocation's inputs: the action, its positional
// arguments, and the flag values. The same shape appears in .glitterrc as
// a per-action override entry, which is why every field is optional.
type Arguments struct {
	Action    string   `yaml:"action"`
	Arguments []string `yaml:"arguments"`
	RCPath    string   `yaml:"rc_path"`
	Branch    string   `yaml:"branch"`
	Dry       TriState `yaml:"dry"`
	NoHost    TriState `yaml:"nohost"`
	Raw       TriState `yaml:"raw"`
	NoVerify  TriState `yaml:"no_verify"`
}

// CommitMessageArgument configures one positional slot of the commit
// message template: which argument it applies to (1-based), an optional
// case transform, and an optional allow-list of values checked after the
// transform.
type CommitMessageArgument struct {
	Argument  int      `yaml:"argument"`
	Case      string   `yaml:"case"`
	TypeEnums []string `yaml:"type_enums"`
}

// CustomTask is a named sequence of commands runnable as an action or
// referenced from hooks.
type CustomTask struct {
	Name    string   `yaml:"name"`
	Execute []string `yaml:"execute"`
}

// GlitterRc is the root .glitterrc document. CommitMessage and Fetch are
// pointers so an absent key can be told apart from an explicit value; use
// the accessors for resolved values.
type GlitterRc struct {
	CommitMessage          *string                 `yaml:"commit_message"`
	Arguments              []Arguments             `yaml:"arguments"`
	CommitMessageArguments []CommitMessageArgument `yaml:"commit_message_arguments"`
	Fetch                  *bool                   `yaml:"fetch"`
	CustomTasks            []CustomTask            `yaml:"custom_tasks"`
	Hooks                  []string                `yaml:"hooks"`
	Default                bool                    `yaml:"__default"`
}

// CommitMessageTemplate returns the configured template, or the default
// when the document omits commit_message.
func (rc *GlitterRc) CommitMessageTemplate() string {
	return derefString(rc.CommitMessage, DefaultCommitMessage)
}

// FetchEnabled reports whether commit-style actions should fetch from the
// remote before doing anything else.
func (rc *GlitterRc) FetchEnabled() bool {
	return derefBool(rc.Fetch, false)
}

// LookupTask returns the custom task with the given name. Lookup is exact.
func (rc *GlitterRc) LookupTask(name string) (CustomTask, bool) {
	for _, task := range rc.CustomTasks {
		if task.Name == name {
			return task, true
		}
	}
	return CustomTask{}, false
}

// CustomTaskNames returns the names of all custom tasks in document order.
func (rc *GlitterRc) CustomTaskNames() []string {
	names := make([]string, 0, len(rc.CustomTasks))
	for _, task := range rc.CustomTasks {
		names = append(names, task.Name)
	}
	return names
}

// HookCommands flattens the hooks list into the command sequences of the
// custom tasks it names, in hook order. Validation guarantees every hook
// resolves, so unknown names are skipped here.
func (rc *GlitterRc) HookCommands() []string {
	var commands []string
	for _, hook := range rc.Hooks {
		task, ok := rc.LookupTask(hook)
		if !ok {
			continue
		}
		commands = append(commands, task.Execute...)
	}
	return commands
}
