package config

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

type triStateKind int

const (
	triUnset triStateKind = iota
	triImplicit
	triExplicit
)

// TriState is a boolean flag value that distinguishes "never mentioned"
// from "mentioned without a value" and "given an explicit value". A bare
// --dry means implicit true; --dry=false carries an explicit false that
// survives merging exactly like an explicit true. The zero value is unset.
type TriState struct {
	kind  triStateKind
	value bool
}

// ImplicitTrue returns the state produced by naming a flag without a value.
func ImplicitTrue() TriState {
	return TriState{kind: triImplicit}
}

// Explicit returns a TriState carrying an explicit boolean.
func Explicit(v bool) TriState {
	return TriState{kind: triExplicit, value: v}
}

// Resolve collapses the flag to a boolean: an explicit value wins, a bare
// mention means true, and an unmentioned flag means false.
func (t TriState) Resolve() bool {
	switch t.kind {
	case triImplicit:
		return true
	case triExplicit:
		return t.value
	default:
		return false
	}
}

// IsSet reports whether the flag was mentioned at all.
func (t TriState) IsSet() bool {
	return t.kind != triUnset
}

// String implements pflag.Value. Unset flags render empty so no default
// shows up in usage text.
func (t TriState) String() string {
	switch t.kind {
	case triImplicit:
		return "true"
	case triExplicit:
		return strconv.FormatBool(t.value)
	default:
		return ""
	}
}

// Set implements pflag.Value. The flag is registered with NoOptDefVal
// "true", so a bare mention arrives here as "true" and becomes implicit;
// any other boolean spelling is an explicit value.
func (t *TriState) Set(s string) error {
	if s == "true" {
		*t = ImplicitTrue()
		return nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("invalid boolean value %q", s)
	}
	*t = Explicit(v)
	return nil
}

// Type implements pflag.Value.
func (t TriState) Type() string {
	return "bool"
}

// UnmarshalYAML implements yaml.Unmarshaler. Flag values written in a
// .glitterrc override are explicit booleans.
func (t *TriState) UnmarshalYAML(value *yaml.Node) error {
	var v bool
	if err := value.Decode(&v); err != nil {
		return err
	}
	*t = Explicit(v)
	return nil
}
