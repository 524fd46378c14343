package remap

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"env-remapper/internal/casing"
)

// UnsafeSegment is rejected in every input path.
const UnsafeSegment = "__proto__"

var (
	ErrMultipleWildcards = errors.New("more than one wildcard segment")
	ErrEmptyWildcardKey  = errors.New("must specify a key on both sides of the wildcard (e.g. 'key1.*.key2')")
	ErrUnsafeSegment     = errors.New("segment " + UnsafeSegment + " is not allowed")
)

// PathKind classifies a parsed path.
type PathKind int

const (
	PathPlain PathKind = iota
	PathWildcard
)

// Path is a tokenized input path.
type Path struct {
	Kind     PathKind
	Segments []string
	// Prefix and Suffix are the segments before and after the wildcard.
	// They are only set for PathWildcard.
	Prefix []string
	Suffix []string
}

// ParsePath tokenizes a dot-path and classifies it.
// Supports: "key", "nested.key", "list.*.key", "deep.list.*.nested.key".
// A "*" in first or last position is an ordinary key.
func ParsePath(path string) (Path, error) {
	segments := strings.Split(path, ".")

	if slices.Contains(segments, UnsafeSegment) {
		return Path{}, fmt.Errorf("invalid path %q: %w", path, ErrUnsafeSegment)
	}

	wildcard := -1

	for i, seg := range segments {
		if seg != casing.Wildcard {
			continue
		}

		if wildcard >= 0 {
			return Path{}, fmt.Errorf("invalid path %q: %w", path, ErrMultipleWildcards)
		}

		wildcard = i
	}

	if wildcard <= 0 || wildcard == len(segments)-1 {
		return Path{Kind: PathPlain, Segments: segments}, nil
	}

	prefix := segments[:wildcard]
	suffix := segments[wildcard+1:]

	if strings.Join(prefix, ".") == "" || strings.Join(suffix, ".") == "" {
		return Path{}, fmt.Errorf("invalid path %q: %w", path, ErrEmptyWildcardKey)
	}

	return Path{
		Kind:     PathWildcard,
		Segments: segments,
		Prefix:   prefix,
		Suffix:   suffix,
	}, nil
}
