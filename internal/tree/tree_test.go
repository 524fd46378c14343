package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObject_PreservesInsertionOrder(t *testing.T) {
	o := New()
	o.Set("b", 1.0)
	o.Set("a", 2.0)
	o.Set("c", 3.0)
	o.Set("a", 4.0)

	assert.Equal(t, []string{"b", "a", "c"}, o.Keys())

	v, ok := o.Get("a")
	require.True(t, ok)
	assert.Equal(t, 4.0, v)

	assert.True(t, o.Delete("a"))
	assert.False(t, o.Delete("a"))
	assert.Equal(t, []string{"b", "c"}, o.Keys())
	assert.Equal(t, 2, o.Len())
}

func TestObject_ZeroValueIsUsable(t *testing.T) {
	var o Object
	o.Set("k", "v")

	assert.True(t, o.Has("k"))
	assert.Equal(t, 1, o.Len())
}

func TestObject_ProtoKeyIsOrdinary(t *testing.T) {
	o := New()
	o.Set("__proto__", "bad")

	fresh := New()
	assert.False(t, fresh.Has("__proto__"))
	assert.Equal(t, 0, fresh.Len())
	assert.Equal(t, []string{"__proto__"}, o.Keys())
}

func TestObject_RenameKeys(t *testing.T) {
	o := New()
	o.Set("one_two", 1.0)
	o.Set("three", 2.0)
	o.Set("oneTwo", 3.0)

	o.RenameKeys(func(s string) string {
		if s == "one_two" {
			return "oneTwo"
		}
		return s + "_x"
	})

	assert.Equal(t, []string{"oneTwo", "three_x", "oneTwo_x"}, o.Keys())

	calls := 0
	o.RenameKeys(func(s string) string {
		calls++
		return s
	})
	assert.Equal(t, 3, calls)
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		value    any
		expected Kind
		name     string
	}{
		{nil, KindNull, "null"},
		{true, KindBool, "boolean"},
		{1.5, KindNumber, "number"},
		{"s", KindString, "string"},
		{New(), KindObject, "object"},
		{[]any{}, KindArray, "array"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := KindOf(tt.value)
			assert.Equal(t, tt.expected, k)
			assert.Equal(t, tt.name, k.String())
		})
	}

	assert.Equal(t, Kind(0), KindOf(42))
	assert.Equal(t, "Kind(0)", Kind(0).String())
	assert.True(t, KindArray.IsContainer())
	assert.False(t, KindString.IsContainer())
}

func TestSetPath_CreatesIntermediates(t *testing.T) {
	root := New()
	SetPath(root, []string{"a", "b", "c"}, 1.0)
	SetPath(root, []string{"a", "d"}, "x")

	got, err := EncodeJSON(root, "")
	require.NoError(t, err)
	assert.Equal(t, `{"a":{"b":{"c":1},"d":"x"}}`, string(got))
}

func TestSetPath_LastWriteWins(t *testing.T) {
	root := New()
	SetPath(root, []string{"a", "b"}, 1.0)
	SetPath(root, []string{"a"}, "scalar")
	SetPath(root, []string{"a", "c"}, true)

	got, err := EncodeJSON(root, "")
	require.NoError(t, err)
	assert.Equal(t, `{"a":{"c":true}}`, string(got))
}

func TestSetPath_ArrayIndexes(t *testing.T) {
	root := New()
	SetPath(root, []string{"arr"}, []any{New(), "two"})
	SetPath(root, []string{"arr", "0", "k"}, 1.0)
	SetPath(root, []string{"arr", "1", "k"}, 2.0)
	SetPath(root, []string{"arr", "2"}, 3.0)
	SetPath(root, []string{"arr", "9", "k"}, 4.0)

	got, err := EncodeJSON(root, "")
	require.NoError(t, err)
	assert.Equal(t, `{"arr":{"9":{"k":4}}}`, string(got))

	root = New()
	SetPath(root, []string{"arr"}, []any{New()})
	SetPath(root, []string{"arr", "0", "k"}, 1.0)
	SetPath(root, []string{"arr", "1"}, "appended")

	got, err = EncodeJSON(root, "")
	require.NoError(t, err)
	assert.Equal(t, `{"arr":[{"k":1},"appended"]}`, string(got))
}

func TestSetPath_EmptyPathIsNoop(t *testing.T) {
	root := New()
	SetPath(root, nil, 1.0)
	assert.Equal(t, 0, root.Len())
}

func TestGetPath(t *testing.T) {
	root := New()
	SetPath(root, []string{"a", "list"}, []any{"x", New()})
	SetPath(root, []string{"a", "list", "1", "k"}, "v")

	v, ok := GetPath(root, []string{"a", "list", "1", "k"})
	require.True(t, ok)
	assert.Equal(t, "v", v)

	_, ok = GetPath(root, []string{"a", "list", "2"})
	assert.False(t, ok)

	_, ok = GetPath(root, []string{"a", "list", "01"})
	assert.False(t, ok)

	_, ok = GetPath(root, []string{"a", "list", "+1"})
	assert.False(t, ok)

	_, ok = GetPath(root, []string{"a", "missing"})
	assert.False(t, ok)

	v, ok = GetPath(root, nil)
	require.True(t, ok)
	assert.Same(t, root, v)
}

func TestEncodeJSON_NoHTMLEscape(t *testing.T) {
	root := New()
	root.Set("html", "<b>&</b>")
	root.Set("nested", []any{New(), nil, 1.5})

	got, err := EncodeJSON(root, "")
	require.NoError(t, err)
	assert.Equal(t, `{"html":"<b>&</b>","nested":[{},null,1.5]}`, string(got))

	pretty, err := EncodeJSON(root, "  ")
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  \"html\": \"<b>&</b>\"")
}

func TestEncodeYAML_PreservesOrder(t *testing.T) {
	root := New()
	root.Set("zeta", 1.0)
	inner := New()
	inner.Set("b", "true")
	inner.Set("a", false)
	root.Set("alpha", []any{inner})

	got, err := EncodeYAML(root)
	require.NoError(t, err)
	assert.Equal(t, "zeta: 1\nalpha:\n  - b: \"true\"\n    a: false\n", string(got))
}
