package merge_test

import (
	"fmt"
	"testing"

	"github.com/0xalexb/hjarta-config/config/merge"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		base     map[string]any
		overlay  map[string]any
		expected map[string]any
	}{
		{
			name:     "overlay adds keys",
			base:     map[string]any{"a": 1},
			overlay:  map[string]any{"b": 2},
			expected: map[string]any{"a": 1, "b": 2},
		},
		{
			name:     "primitives are replaced",
			base:     map[string]any{"key1": "low"},
			overlay:  map[string]any{"key1": "high"},
			expected: map[string]any{"key1": "high"},
		},
		{
			name:     "objects merge recursively",
			base:     map[string]any{"db": map[string]any{"host": "localhost", "port": 5432}},
			overlay:  map[string]any{"db": map[string]any{"port": 6543}},
			expected: map[string]any{"db": map[string]any{"host": "localhost", "port": 6543}},
		},
		{
			name:     "arrays replace arrays",
			base:     map[string]any{"list": []any{1, 2, 3}},
			overlay:  map[string]any{"list": []any{4}},
			expected: map[string]any{"list": []any{4}},
		},
		{
			name:     "arrays replace objects",
			base:     map[string]any{"list": map[string]any{"a": 1}},
			overlay:  map[string]any{"list": []any{"x"}},
			expected: map[string]any{"list": []any{"x"}},
		},
		{
			name:     "objects replace primitives",
			base:     map[string]any{"db": "sqlite"},
			overlay:  map[string]any{"db": map[string]any{"driver": "postgres"}},
			expected: map[string]any{"db": map[string]any{"driver": "postgres"}},
		},
		{
			name:     "primitives replace objects",
			base:     map[string]any{"db": map[string]any{"driver": "postgres"}},
			overlay:  map[string]any{"db": "sqlite"},
			expected: map[string]any{"db": "sqlite"},
		},
		{
			name:     "typed slices are arrays",
			base:     map[string]any{"hosts": []any{"a", "b"}},
			overlay:  map[string]any{"hosts": []string{"c"}},
			expected: map[string]any{"hosts": []string{"c"}},
		},
		{
			name:     "nil overlay value overwrites",
			base:     map[string]any{"a": 1},
			overlay:  map[string]any{"a": nil},
			expected: map[string]any{"a": nil},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			merge.Merge(testCase.base, testCase.overlay)

			assert.Equal(t, testCase.expected, testCase.base)
		})
	}
}

func TestMerge_DoesNotAliasOverlay(t *testing.T) {
	t.Parallel()

	overlay := map[string]any{"db": map[string]any{"host": "a"}, "list": []any{map[string]any{"x": 1}}}
	base := map[string]any{}

	merge.Merge(base, overlay)
	merge.Merge(base, map[string]any{"db": map[string]any{"host": "b"}})

	base["list"].([]any)[0].(map[string]any)["x"] = 2

	assert.Equal(t, "a", overlay["db"].(map[string]any)["host"])
	assert.Equal(t, 1, overlay["list"].([]any)[0].(map[string]any)["x"])
}

func TestIsObject(t *testing.T) {
	t.Parallel()

	var nilMap map[string]any

	assert.True(t, merge.IsObject(map[string]any{}))
	assert.False(t, merge.IsObject(nilMap))
	assert.False(t, merge.IsObject([]any{}))
	assert.False(t, merge.IsObject("x"))
	assert.False(t, merge.IsObject(nil))
}

func TestIsArray(t *testing.T) {
	t.Parallel()

	assert.True(t, merge.IsArray([]any{}))
	assert.True(t, merge.IsArray([]int{1}))
	assert.True(t, merge.IsArray([2]string{"a", "b"}))
	assert.False(t, merge.IsArray([]byte("abc")))
	assert.False(t, merge.IsArray(map[string]any{}))
	assert.False(t, merge.IsArray(nil))
	assert.False(t, merge.IsArray(42))
}

func TestClone(t *testing.T) {
	t.Parallel()

	original := map[string]any{"a": []any{map[string]any{"b": 1}}}
	cloned, ok := merge.Clone(original).(map[string]any)
	require.True(t, ok)

	cloned["a"].([]any)[0].(map[string]any)["b"] = 2

	assert.Equal(t, 1, original["a"].([]any)[0].(map[string]any)["b"])
}

func genValue(t *rapid.T, depth int, label string) any {
	maxKind := 3
	if depth == 0 {
		maxKind = 1
	}

	switch rapid.IntRange(0, maxKind).Draw(t, label+".kind") {
	case 0:
		return rapid.IntRange(-5, 5).Draw(t, label+".int")
	case 1:
		return rapid.StringMatching(`[a-z]{0,3}`).Draw(t, label+".string")
	case 2:
		size := rapid.IntRange(0, 3).Draw(t, label+".len")
		list := make([]any, 0, size)

		for i := range size {
			list = append(list, genValue(t, depth-1, fmt.Sprintf("%s[%d]", label, i)))
		}

		return list
	default:
		return genObject(t, depth-1, label)
	}
}

func genObject(t *rapid.T, depth int, label string) map[string]any {
	keys := rapid.SliceOfDistinct(rapid.SampledFrom([]string{"a", "b", "c", "d"}), rapid.ID[string]).Draw(t, label+".keys")
	object := make(map[string]any, len(keys))

	for _, key := range keys {
		object[key] = genValue(t, depth, label+"."+key)
	}

	return object
}

func TestMerge_EmptyOverlayIsNoOp(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		base := genObject(t, 3, "base")
		expected := merge.Clone(base)

		merge.Merge(base, map[string]any{})
		merge.Merge(base, map[string]any{})

		assert.Equal(t, expected, base)
	})
}

func TestMerge_KeepsBaseOnlyKeysAndAppliesOverlay(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		base := genObject(t, 3, "base")
		overlay := genObject(t, 3, "overlay")
		original := merge.Clone(base).(map[string]any)
		overlaySnapshot := merge.Clone(overlay)

		merge.Merge(base, overlay)

		for key, value := range original {
			if _, inOverlay := overlay[key]; !inOverlay {
				assert.Equal(t, value, base[key], "base-only key %q changed", key)
			}
		}

		for key, value := range overlay {
			if !merge.IsObject(value) || !merge.IsObject(original[key]) {
				assert.Equal(t, value, base[key], "overlay key %q not applied", key)
			}
		}

		assert.Equal(t, overlaySnapshot, overlay, "overlay must not be mutated")
	})
}
