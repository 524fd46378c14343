package remap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"env-remapper/internal/casing"
	"env-remapper/internal/tree"
)

const simpleFixture = `{
	"one": 1,
	"two": {"one": 1},
	"three": {"two": {"one": 1}},
	"numbers": [1, 2, 3],
	"array": [
		{"test": "key1", "deeper": {"deep": 1}},
		{"test": "key2"}
	]
}`

func simple(t *testing.T) *tree.Object {
	t.Helper()

	o, ok := decode(t, simpleFixture).(*tree.Object)
	require.True(t, ok)

	return o
}

func TestTrim(t *testing.T) {
	tests := []struct {
		name     string
		depth    int
		expected string
	}{
		{
			name:     "unlimited",
			depth:    0,
			expected: simpleFixture,
		},
		{
			name:     "depth 1",
			depth:    1,
			expected: `{"one": 1}`,
		},
		{
			name:  "depth 2",
			depth: 2,
			expected: `{
				"one": 1,
				"two": {"one": 1},
				"three": {},
				"numbers": [1, 2, 3],
				"array": [{"test": "key1"}, {"test": "key2"}]
			}`,
		},
		{
			name:     "depth 3",
			depth:    3,
			expected: simpleFixture,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Trim(simple(t), casing.For(casing.Snake, true), tt.depth, false)
			requireJSON(t, tt.expected, got)
		})
	}
}

func TestTrim_ReturnsSameObject(t *testing.T) {
	in := simple(t)

	assert.Same(t, in, Trim(in, casing.For(casing.Snake, true), 0, false))
	assert.Same(t, in, Trim(in, casing.For(casing.Snake, true), 2, true))
}

func TestTrim_WithDeepCasing(t *testing.T) {
	in, ok := decode(t, `{
		"one": {"two": 2, "tooDeep": {"three": 3}},
		"arr": [{"two": 2, "tooDeep": {"three": 3}}]
	}`).(*tree.Object)
	require.True(t, ok)

	got := Trim(in, casing.For(casing.Snake, true), 2, true)

	requireJSON(t, `{"one": {"two": 2}, "arr": [{"two": 2}]}`, got)
}

func TestTrim_DeepCasingUnlimited(t *testing.T) {
	in, ok := decode(t, `{"OuterKey": {"InnerKey": [{"LeafKey": [[{"NestedKey": 1}]]}]}}`).(*tree.Object)
	require.True(t, ok)

	got := Trim(in, casing.For(casing.Snake, true), 0, true)

	requireJSON(t, `{"outer_key": {"inner_key": [{"leaf_key": [[{"nested_key": 1}]]}]}}`, got)
}

func TestTrim_ArraysAreTransparent(t *testing.T) {
	in, ok := decode(t, `{"a": [[{"b": {"c": 1}, "d": 2}]]}`).(*tree.Object)
	require.True(t, ok)

	got := Trim(in, nil, 2, false)

	requireJSON(t, `{"a": [[{"d": 2}]]}`, got)
}

func TestTrim_KeepsScalarsAtLastLevel(t *testing.T) {
	in, ok := decode(t, `{"a": {"b": {"c": "leaf", "d": [1], "e": null}}}`).(*tree.Object)
	require.True(t, ok)

	got := Trim(in, nil, 3, false)

	requireJSON(t, `{"a": {"b": {"c": "leaf", "e": null}}}`, got)
}

func TestRun_DepthAndCasing(t *testing.T) {
	entries := []Entry{
		{Path: "SERVER.HOST_NAME", Value: "localhost"},
		{Path: "SERVER.TLS.CERT_FILE", Value: "/tmp/cert"},
		{Path: "ITEMS.*.ITEM_NAME", Value: []any{"a", "b"}},
	}

	got := Run(entries, Options{Case: casing.Pascal, Depth: 2}, nil)

	requireJSON(t, `{"Server": {"HostName": "localhost"}, "Items": [{"ItemName": "a"}, {"ItemName": "b"}]}`, got)
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.Equal(t, casing.Camel, opts.Case)
	assert.Zero(t, opts.Depth)
	assert.False(t, opts.DeepCasing)
	assert.False(t, opts.Strict)
}

func TestTrim_DropsKeysRenamedToProto(t *testing.T) {
	in, ok := decode(t, `{"a": {"__PROTO__": {"x": 1}, "b": 2}, "list": [{"__PROTO__": 3}]}`).(*tree.Object)
	require.True(t, ok)

	got := Trim(in, casing.For(casing.Lower, true), 0, true)

	requireJSON(t, `{"a": {"b": 2}, "list": [{}]}`, got)
}

func TestRun_DeepCasingNeverEmitsProto(t *testing.T) {
	got := Run([]Entry{{Path: "a", Value: decode(t, `{"__PROTO__": {"x": 1}}`)}},
		Options{Case: casing.Lower, DeepCasing: true}, nil)

	requireJSON(t, `{"a": {}}`, got)

	b, err := tree.EncodeJSON(got, "")
	require.NoError(t, err)
	assert.NotContains(t, string(b), UnsafeSegment)
}
