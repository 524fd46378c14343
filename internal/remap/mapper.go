package remap

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"env-remapper/internal/casing"
	"env-remapper/internal/diagnostic"
	"env-remapper/internal/tree"
)

// Diagnostic codes recorded by the mapper.
const (
	CodeInput         = "input"
	CodeInvalidPath   = "invalid_path"
	CodeWildcardReset = "wildcard_prefix_reset"
)

const previewLimit = 120

// Entry is a single flat input: a dot-path and its already typed value.
type Entry struct {
	Path  string
	Value any
}

// Mapper merges entries into a tree.
type Mapper struct {
	// Case converts every input path before it is parsed. Nil leaves paths as they are.
	Case casing.Func
	// Strict records a warning whenever a wildcard entry discards an existing
	// value at its prefix.
	Strict bool
	// Diags receives warnings and per-input traces. Nil discards them.
	Diags *diagnostic.Diagnostics
}

// Map merges entries into a new tree using the shallow casing function fn.
func Map(entries []Entry, fn casing.Func, diags *diagnostic.Diagnostics) *tree.Object {
	m := &Mapper{Case: fn, Diags: diags}

	return m.Map(entries)
}

// Map merges entries, in order, into a new tree. Later entries overwrite
// earlier ones at the same path.
func (m *Mapper) Map(entries []Entry) *tree.Object {
	diags := m.Diags
	if diags == nil {
		diags = &diagnostic.Diagnostics{}
	}

	root := tree.New()

	for _, e := range entries {
		path := e.Path
		if m.Case != nil {
			path = m.Case(path)
		}

		diags.AddInfo(CodeInput, "input", path,
			slog.String("type", tree.KindOf(e.Value).String()),
			slog.String("value", preview(e.Value)),
		)

		p, err := ParsePath(path)
		if err != nil {
			// Malformed wildcard paths only matter for array values.
			if isWildcardError(err) && !isArray(e.Value) {
				continue
			}

			diags.AddWarning(CodeInvalidPath, err.Error(), e.Path)

			continue
		}

		switch p.Kind {
		case PathPlain:
			tree.SetPath(root, p.Segments, e.Value)
		case PathWildcard:
			m.mergeWildcard(root, p, e, diags)
		}
	}

	return root
}

// mergeWildcard spreads the array value of e over the objects of the array at
// the path prefix, index by index.
func (m *Mapper) mergeWildcard(root *tree.Object, p Path, e Entry, diags *diagnostic.Diagnostics) {
	values, ok := e.Value.([]any)
	if !ok {
		return
	}

	current, exists := tree.GetPath(root, p.Prefix)

	elements, reusable := objectArray(current)
	if exists && !reusable && m.Strict && !isEmptyArray(current) {
		diags.AddWarning(CodeWildcardReset,
			fmt.Sprintf("existing %s value at %q replaced by a new array", tree.KindOf(current), strings.Join(p.Prefix, ".")),
			e.Path)
	}

	for i, v := range values {
		var el *tree.Object

		if i < len(elements) {
			el, _ = elements[i].(*tree.Object)
		}

		if el == nil {
			el = tree.New()

			if i < len(elements) {
				elements[i] = el
			} else {
				elements = append(elements, el)
			}
		}

		tree.SetPath(el, p.Suffix, v)
	}

	if len(elements) > 0 {
		tree.SetPath(root, p.Prefix, elements)
	}
}

// objectArray returns v when it is an array whose first element is an object.
func objectArray(v any) ([]any, bool) {
	arr, ok := v.([]any)
	if !ok || len(arr) == 0 {
		return nil, false
	}

	if _, ok := arr[0].(*tree.Object); !ok {
		return nil, false
	}

	return arr, true
}

func isWildcardError(err error) bool {
	return errors.Is(err, ErrMultipleWildcards) || errors.Is(err, ErrEmptyWildcardKey)
}

func isArray(v any) bool {
	_, ok := v.([]any)
	return ok
}

func isEmptyArray(v any) bool {
	arr, ok := v.([]any)
	return ok && len(arr) == 0
}

// preview renders v as compact JSON, truncated for log output.
func preview(v any) string {
	b, err := tree.EncodeJSON(v, "")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}

	s := []rune(string(b))
	if len(s) <= previewLimit {
		return string(s)
	}

	return string(s[:previewLimit]) + "..."
}
