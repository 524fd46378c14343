package tree

import (
	"slices"
)

// Object is a string-keyed map that remembers insertion order.
// The zero value is an empty object ready to use.
type Object struct {
	keys   []string
	values map[string]any
}

// New returns an empty object.
func New() *Object {
	return &Object{values: map[string]any{}}
}

// Len returns the number of entries.
func (o *Object) Len() int {
	return len(o.keys)
}

// Keys returns a copy of the keys in insertion order.
func (o *Object) Keys() []string {
	return slices.Clone(o.keys)
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// Set stores v under key. A new key is appended to the order; an existing key
// keeps its position.
func (o *Object) Set(key string, v any) {
	if o.values == nil {
		o.values = map[string]any{}
	}

	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}

	o.values[key] = v
}

// Delete removes key and reports whether it was present.
func (o *Object) Delete(key string) bool {
	if _, ok := o.values[key]; !ok {
		return false
	}

	delete(o.values, key)
	o.keys = slices.DeleteFunc(o.keys, func(k string) bool { return k == key })

	return true
}

// RenameKeys replaces every key k with rename(k), applied once per key.
// When two keys rename to the same result the later value wins and the entry
// keeps the position of the first.
func (o *Object) RenameKeys(rename func(string) string) {
	keys := make([]string, 0, len(o.keys))
	values := make(map[string]any, len(o.values))

	for _, k := range o.keys {
		nk := rename(k)
		if _, ok := values[nk]; !ok {
			keys = append(keys, nk)
		}

		values[nk] = o.values[k]
	}

	o.keys = keys
	o.values = values
}
