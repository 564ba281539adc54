package config

import (
	"fmt"
	"strings"
)

// ResolvedArguments is the fully resolved argument set for one invocation,
// with precedence applied: command line first, then the matching per-action
// override from .glitterrc, then defaults.
type ResolvedArguments struct {
	Action    string
	Arguments []string
	RCPath    string
	Branch    string
	Dry       bool
	NoHost    bool
	Raw       bool
	NoVerify  bool
}

// ConfigMismatchError reports an arguments override whose action matches
// the typed action only when letter case is ignored.
type ConfigMismatchError struct {
	Typed      string
	Configured string
}

func (e *ConfigMismatchError) Error() string {
	return fmt.Sprintf("action %q does not match override %q configured in .glitterrc: action names are case-sensitive", e.Typed, e.Configured)
}

// Resolve merges the command-line arguments with the override matching
// cli.Action and produces the effective argument set. Override matching is
// exact and happens against the action as typed, before any alias handling.
// An override that matches only case-insensitively is a mismatch error
// rather than a silent miss.
func Resolve(cli Arguments, rc *GlitterRc) (ResolvedArguments, error) {
	override, err := findOverride(cli.Action, rc.Arguments)
	if err != nil {
		return ResolvedArguments{}, err
	}

	res := ResolvedArguments{
		Action:    cli.Action,
		Arguments: cli.Arguments,
		RCPath:    pickString(cli.RCPath, override.RCPath, DefaultRCName),
		Branch:    pickString(cli.Branch, override.Branch, ""),
		Dry:       pickFlag(cli.Dry, override.Dry),
		NoHost:    pickFlag(cli.NoHost, override.NoHost),
		Raw:       pickFlag(cli.Raw, override.Raw),
		NoVerify:  pickFlag(cli.NoVerify, override.NoVerify),
	}
	return res, nil
}

// findOverride locates the override entry for the typed action. A zero
// Arguments comes back when nothing matches, so callers can read fields
// without nil checks.
func findOverride(action string, overrides []Arguments) (Arguments, error) {
	for _, override := range overrides {
		if override.Action == action {
			return override, nil
		}
	}
	for _, override := range overrides {
		if strings.EqualFold(override.Action, action) {
			return Arguments{}, &ConfigMismatchError{Typed: action, Configured: override.Action}
		}
	}
	return Arguments{}, nil
}

// pickString returns the first non-empty value.
func pickString(cli, override, fallback string) string {
	if cli != "" {
		return cli
	}
	if override != "" {
		return override
	}
	return fallback
}

// pickFlag applies flag precedence: a flag set on the command line wins
// outright, otherwise the override's state resolves (unset means false).
func pickFlag(cli, override TriState) bool {
	if cli.IsSet() {
		return cli.Resolve()
	}
	return override.Resolve()
}
