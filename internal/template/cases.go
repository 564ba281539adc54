package template

import (
	"sort"
	"strings"

	"github.com/iancoleman/strcase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// transforms maps the case names usable in commit_message_arguments to
// their implementations. The set is extensible through RegisterTransform.
var transforms = map[string]func(string) string{
	"snake":           strcase.ToSnake,
	"screaming-snake": strcase.ToScreamingSnake,
	"kebab":           strcase.ToKebab,
	"camel":           strcase.ToLowerCamel,
	"pascal":          strcase.ToCamel,
	"lower":           strings.ToLower,
	"upper":           strings.ToUpper,
	"title":           titleCase,
}

func titleCase(s string) string {
	return cases.Title(language.Und).String(s)
}

// RegisterTransform adds or replaces a named case transform.
func RegisterTransform(name string, fn func(string) string) {
	transforms[name] = fn
}

// SupportedTransforms returns the registered transform names, sorted.
func SupportedTransforms() []string {
	names := make([]string, 0, len(transforms))
	for name := range transforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// applyCase runs the named transform over value. An empty name is the
// identity.
func applyCase(name, value string) (string, error) {
	if name == "" {
		return value, nil
	}
	fn, ok := transforms[name]
	if !ok {
		return "", &UnknownCaseTransformError{Name: name}
	}
	return fn(value), nil
}
