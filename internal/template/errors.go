package template

import (
	"fmt"
	"strings"
)

// MissingArgumentError reports a template or spec reference to a
// positional argument that was not supplied.
type MissingArgumentError struct {
	Index int
	Have  int
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("commit message needs argument %d but only %d supplied", e.Index, e.Have)
}

// InvalidEnumValueError reports an argument whose value, after its case
// transform, is not in the slot's allow-list.
type InvalidEnumValueError struct {
	Index   int
	Value   string
	Allowed []string
}

func (e *InvalidEnumValueError) Error() string {
	return fmt.Sprintf("argument %d value %q is not one of: %s", e.Index, e.Value, strings.Join(e.Allowed, ", "))
}

// UnknownCaseTransformError reports a commit_message_arguments case name
// outside the supported set.
type UnknownCaseTransformError struct {
	Name string
}

func (e *UnknownCaseTransformError) Error() string {
	return fmt.Sprintf("unknown case transform %q (supported: %s)", e.Name, strings.Join(SupportedTransforms(), ", "))
}
