package remap

import (
	"env-remapper/internal/casing"
	"env-remapper/internal/diagnostic"
	"env-remapper/internal/tree"
)

// Options controls a run.
type Options struct {
	// Case is the casing applied to input paths.
	Case casing.Mode
	// Depth is the maximum object depth of the result, 0 for unlimited.
	Depth int
	// DeepCasing also renames keys nested inside input values.
	DeepCasing bool
	// Strict reports wildcard entries that discard an existing value.
	Strict bool
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{Case: casing.Camel}
}

// Run maps entries into a tree and trims it according to opts.
func Run(entries []Entry, opts Options, diags *diagnostic.Diagnostics) *tree.Object {
	m := &Mapper{
		Case:   casing.For(opts.Case, false),
		Strict: opts.Strict,
		Diags:  diags,
	}

	return Trim(m.Map(entries), casing.For(opts.Case, true), opts.Depth, opts.DeepCasing)
}
