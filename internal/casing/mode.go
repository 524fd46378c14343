package casing

import (
	"fmt"
	"strings"
)

// Mode names a casing convention.
type Mode string

const (
	Snake  Mode = "snake"
	Camel  Mode = "camel"
	Pascal Mode = "pascal"
	Upper  Mode = "upper"
	Lower  Mode = "lower"
	Kebab  Mode = "kebab"
)

// Func converts a key or a dot-path.
type Func func(string) string

// Wildcard is the path segment that is never cased.
const Wildcard = "*"

// Modes returns every supported mode.
func Modes() []Mode {
	return []Mode{Snake, Camel, Pascal, Upper, Lower, Kebab}
}

// ParseMode returns the Mode named s.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes() {
		if string(m) == s {
			return m, nil
		}
	}

	return "", fmt.Errorf("unknown case %q (supported: %s)", s, strings.Join(modeNames(), ", "))
}

func modeNames() []string {
	modes := Modes()
	names := make([]string, len(modes))

	for i, m := range modes {
		names[i] = string(m)
	}

	return names
}

// For returns the casing function for m. A deep function converts a bare key;
// a shallow one converts every segment of a dot-path except "*".
// An unknown mode yields the identity function.
func For(m Mode, deep bool) Func {
	var fn Func

	switch m {
	case Snake:
		fn = ToSnake
	case Camel:
		fn = ToCamel
	case Pascal:
		fn = ToPascal
	case Kebab:
		fn = ToKebab
	case Upper:
		return strings.ToUpper
	case Lower:
		return strings.ToLower
	default:
		return func(s string) string { return s }
	}

	if deep {
		return fn
	}

	return splitCaseJoin(fn)
}

func splitCaseJoin(fn Func) Func {
	return func(s string) string {
		parts := strings.Split(s, ".")
		for i, p := range parts {
			if p != Wildcard {
				parts[i] = fn(p)
			}
		}

		return strings.Join(parts, ".")
	}
}
