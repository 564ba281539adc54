package template

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glitterhq/glitter/internal/config"

	"pgregory.net/rapid"
)

// genArgs generates a non-empty positional argument list without spaces,
// so joined output can be split back apart unambiguously.
func genArgs(t *rapid.T) []string {
	n := rapid.IntRange(1, 6).Draw(t, "numArgs")
	args := make([]string, n)
	for i := range args {
		args[i] = rapid.StringMatching(`[a-zA-Z0-9_-]{1,12}`).Draw(t, fmt.Sprintf("arg_%d", i))
	}
	return args
}

// genLiteral generates template text with no argument references.
func genLiteral(t *rapid.T, label string) string {
	return rapid.StringMatching(`[a-zA-Z :(),._-]{0,20}`).Draw(t, label)
}

func TestExpandProperty_RawJoinsArguments(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		args := genArgs(rt)
		tmpl := genLiteral(rt, "tmpl")

		got, err := Expand(tmpl, args, nil, true)
		if err != nil {
			rt.Fatalf("unexpected error: %v", err)
		}
		if got != strings.Join(args, " ") {
			rt.Errorf("raw expansion = %q, want %q", got, strings.Join(args, " "))
		}
	})
}

func TestExpandProperty_DefaultTemplateMatchesRaw(t *testing.T) {
	// "$1+" and raw mode both mean "all arguments, space-joined".
	rapid.Check(t, func(rt *rapid.T) {
		args := genArgs(rt)

		templated, err := Expand("$1+", args, nil, false)
		if err != nil {
			rt.Fatalf("templated expansion failed: %v", err)
		}
		raw, err := Expand("ignored", args, nil, true)
		if err != nil {
			rt.Fatalf("raw expansion failed: %v", err)
		}
		if templated != raw {
			rt.Errorf("templated = %q, raw = %q", templated, raw)
		}
	})
}

func TestExpandProperty_LiteralTemplatePassesThrough(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		tmpl := genLiteral(rt, "tmpl")
		args := genArgs(rt)

		got, err := Expand(tmpl, args, nil, false)
		if err != nil {
			rt.Fatalf("unexpected error: %v", err)
		}
		if got != tmpl {
			rt.Errorf("literal template changed: got %q, want %q", got, tmpl)
		}
	})
}

func TestExpandProperty_ReferenceBeyondArgumentsFails(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		args := genArgs(rt)
		beyond := len(args) + rapid.IntRange(1, 10).Draw(rt, "beyond")

		_, err := Expand(fmt.Sprintf("$%d", beyond), args, nil, false)
		if err == nil {
			rt.Fatalf("expected error for $%d with %d args", beyond, len(args))
		}
		merr, ok := err.(*MissingArgumentError)
		if !ok {
			rt.Fatalf("error type = %T, want *MissingArgumentError", err)
		}
		if merr.Index != beyond || merr.Have != len(args) {
			rt.Errorf("error = {%d %d}, want {%d %d}", merr.Index, merr.Have, beyond, len(args))
		}
	})
}

func TestExpandProperty_EnumMembershipDecides(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		allowed := []string{"fix", "feat", "chore", "docs"}
		specs := []config.CommitMessageArgument{{Argument: 1, TypeEnums: allowed}}

		member := rapid.SampledFrom(allowed).Draw(rt, "member")
		got, err := Expand("$1", []string{member}, specs, false)
		if err != nil {
			rt.Fatalf("member %q rejected: %v", member, err)
		}
		if got != member {
			rt.Errorf("expansion = %q, want %q", got, member)
		}

		outsider := rapid.StringMatching(`[a-z]{3,10}`).Draw(rt, "outsider")
		if sliceContains(allowed, outsider) {
			return
		}
		_, err = Expand("$1", []string{outsider}, specs, false)
		if _, ok := err.(*InvalidEnumValueError); !ok {
			rt.Errorf("outsider %q: error = %v, want *InvalidEnumValueError", outsider, err)
		}
	})
}
