// Package tree provides the value model produced by the remapper.
//
// A value is one of:
//   - a scalar: nil, bool, float64 or string
//   - an object: *Object, an insertion-ordered string-keyed map
//   - an array: []any holding further values
//
// Object is a plain data structure with no inherited members, so a key such as
// "__proto__" is only ever an ordinary entry. Key order is preserved through
// JSON and YAML encoding.
package tree
