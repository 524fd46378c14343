package remap

import (
	"env-remapper/internal/casing"
	"env-remapper/internal/tree"
)

// Trim renames and prunes t in place and returns it.
//
// With deepCasing every key of every object is renamed once with fn (arrays
// are walked, not renamed) and a key renamed to __proto__ is removed. With a
// positive depth, objects and arrays that would sit deeper than depth object
// levels are removed; array indices are not a level. A depth of 0 means
// unlimited.
func Trim(t *tree.Object, fn casing.Func, depth int, deepCasing bool) *tree.Object {
	if depth == 0 && !deepCasing {
		return t
	}

	if !deepCasing {
		fn = nil
	}

	trimObject(t, fn, depth)

	return t
}

func trimObject(o *tree.Object, rename casing.Func, depth int) {
	if rename != nil {
		o.RenameKeys(rename)
		o.Delete(UnsafeSegment)
	}

	for _, k := range o.Keys() {
		v, _ := o.Get(k)
		if !tree.KindOf(v).IsContainer() {
			continue
		}

		if depth == 1 {
			o.Delete(k)
			continue
		}

		switch c := v.(type) {
		case *tree.Object:
			trimObject(c, rename, nextDepth(depth))
		case []any:
			trimArray(c, rename, nextDepth(depth))
		}
	}
}

// trimArray applies depth to every element without consuming a level.
func trimArray(a []any, rename casing.Func, depth int) {
	for _, el := range a {
		switch c := el.(type) {
		case *tree.Object:
			trimObject(c, rename, depth)
		case []any:
			trimArray(c, rename, depth)
		}
	}
}

func nextDepth(depth int) int {
	if depth == 0 {
		return 0
	}

	return depth - 1
}
