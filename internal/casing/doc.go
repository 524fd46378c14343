// Package casing converts identifiers and dot-paths between naming
// conventions.
//
// Supported modes:
//   - snake:  "multi_word"
//   - camel:  "multiWord"
//   - pascal: "MultiWord"
//   - kebab:  "multi-word"
//   - upper:  plain upper-casing, no word splitting
//   - lower:  plain lower-casing, no word splitting
//
// A shallow Func (For(mode, false)) converts each dot-separated segment of a
// path and leaves the wildcard segment "*" untouched. A deep Func
// (For(mode, true)) converts a single bare key and is used when renaming keys
// of already built objects.
package casing
