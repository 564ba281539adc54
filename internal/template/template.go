// Package template expands commit message templates of the form
// "$1($2): $3+" against positional arguments.
package template

import (
	"strconv"
	"strings"

	"github.com/glitterhq/glitter/internal/config"
)

// Expand renders a commit message template. $N substitutes the Nth
// positional argument (1-based); $N+ substitutes argument N and everything
// after it, space-joined; any other character copies verbatim, including a
// $ not followed by a digit. Argument specs apply wherever a slot is
// consumed: case transform first, then the type_enums membership check on
// the transformed value. Raw mode ignores the template and the specs and
// space-joins the arguments as given.
func Expand(tmpl string, args []string, specs []config.CommitMessageArgument, raw bool) (string, error) {
	if raw {
		if len(args) == 0 {
			return "", &MissingArgumentError{Index: 1, Have: 0}
		}
		return strings.Join(args, " "), nil
	}

	// Spec indices must land on supplied arguments even when the template
	// never references them.
	for _, spec := range specs {
		if spec.Argument > len(args) {
			return "", &MissingArgumentError{Index: spec.Argument, Have: len(args)}
		}
	}

	var b strings.Builder
	for i := 0; i < len(tmpl); {
		if tmpl[i] != '$' {
			b.WriteByte(tmpl[i])
			i++
			continue
		}

		j := i + 1
		for j < len(tmpl) && isDigit(tmpl[j]) {
			j++
		}
		if j == i+1 {
			b.WriteByte('$')
			i++
			continue
		}

		n, _ := strconv.Atoi(tmpl[i+1 : j])
		i = j

		if i < len(tmpl) && tmpl[i] == '+' {
			i++
			if n > len(args) {
				return "", &MissingArgumentError{Index: n, Have: len(args)}
			}
			for k := n; k <= len(args); k++ {
				value, err := resolveSlot(k, args, specs)
				if err != nil {
					return "", err
				}
				if k > n {
					b.WriteByte(' ')
				}
				b.WriteString(value)
			}
			continue
		}

		value, err := resolveSlot(n, args, specs)
		if err != nil {
			return "", err
		}
		b.WriteString(value)
	}

	return b.String(), nil
}

// resolveSlot produces the value for the 1-based slot n with its argument
// spec applied.
func resolveSlot(n int, args []string, specs []config.CommitMessageArgument) (string, error) {
	if n < 1 || n > len(args) {
		return "", &MissingArgumentError{Index: n, Have: len(args)}
	}
	value := args[n-1]

	spec, ok := findSpec(n, specs)
	if !ok {
		return value, nil
	}

	value, err := applyCase(spec.Case, value)
	if err != nil {
		return "", err
	}
	if len(spec.TypeEnums) > 0 && !sliceContains(spec.TypeEnums, value) {
		return "", &InvalidEnumValueError{Index: n, Value: value, Allowed: spec.TypeEnums}
	}
	return value, nil
}

func findSpec(n int, specs []config.CommitMessageArgument) (config.CommitMessageArgument, bool) {
	for _, spec := range specs {
		if spec.Argument == n {
			return spec, true
		}
	}
	return config.CommitMessageArgument{}, false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func sliceContains(ss []string, s string) bool {
	for _, item := range ss {
		if item == s {
			return true
		}
	}
	return false
}
