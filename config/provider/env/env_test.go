package env

import (
	"bytes"
	"context"
	"log/slog"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/0xalexb/hjarta-config/config"
	"github.com/0xalexb/hjarta-config/config/paths"
	"github.com/0xalexb/hjarta-config/config/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) config.ReadContext {
	t.Helper()

	pathMap, err := paths.Build(schema.Object(
		schema.Prop("key1", schema.String()),
		schema.Prop("key2", schema.Number()),
		schema.Prop("nested", schema.Object(
			schema.Prop("key3", schema.Boolean()),
		)),
		schema.Prop("objectArray", schema.Array(schema.Object(
			schema.Prop("key4", schema.String()),
		))),
		schema.Prop("primitiveArray", schema.Array(schema.String())),
		schema.Prop("arrayArray", schema.Array(schema.Array(schema.String()))),
		schema.Prop("validBigint", schema.BigInt()),
		schema.Prop("invalidBigint", schema.BigInt()),
	))
	require.NoError(t, err)

	return config.ReadContext{Paths: pathMap, Env: "test"}
}

func read(t *testing.T, opts ...Option) map[string]any {
	t.Helper()

	result, err := NewProvider(opts...).Read(context.Background(), testContext(t))
	require.NoError(t, err)

	return result
}

func TestRead_WithPrefix(t *testing.T) {
	t.Parallel()

	result := read(t, WithPrefix("APP_"), WithVariables(map[string]string{
		"APP_KEY1":        "value1",
		"APP_KEY2":        "42",
		"APP_NESTED_KEY3": "true",
	}))

	assert.Equal(t, map[string]any{
		"key1":   "value1",
		"key2":   float64(42),
		"nested": map[string]any{"key3": true},
	}, result)
}

func TestRead_WithoutPrefix(t *testing.T) {
	t.Parallel()

	result := read(t, WithVariables(map[string]string{
		"KEY1":        "value1",
		"KEY2":        "42",
		"NESTED_KEY3": "true",
	}))

	assert.Equal(t, map[string]any{
		"key1":   "value1",
		"key2":   float64(42),
		"nested": map[string]any{"key3": true},
	}, result)
}

func TestRead_ObjectArrayIndices(t *testing.T) {
	t.Parallel()

	result := read(t, WithVariables(map[string]string{
		"OBJECT_ARRAY_0_KEY4": "value4",
		"OBJECT_ARRAY_1_KEY4": "value5",
	}))

	assert.Equal(t, map[string]any{
		"objectArray": []any{
			map[string]any{"key4": "value4"},
			map[string]any{"key4": "value5"},
		},
	}, result)
}

func TestRead_PrimitiveArrayIndices(t *testing.T) {
	t.Parallel()

	result := read(t, WithVariables(map[string]string{
		"PRIMITIVE_ARRAY_0": "value4",
		"PRIMITIVE_ARRAY_1": "value5",
	}))

	assert.Equal(t, map[string]any{
		"primitiveArray": []any{"value4", "value5"},
	}, result)
}

func TestRead_NestedArrayIndices(t *testing.T) {
	t.Parallel()

	result := read(t, WithVariables(map[string]string{
		"ARRAY_ARRAY_0_0": "value1",
		"ARRAY_ARRAY_0_1": "value2",
		"ARRAY_ARRAY_1_0": "value3",
		"ARRAY_ARRAY_1_1": "value4",
	}))

	assert.Equal(t, map[string]any{
		"arrayArray": []any{
			[]any{"value1", "value2"},
			[]any{"value3", "value4"},
		},
	}, result)
}

func TestRead_SparseIndicesLeaveGaps(t *testing.T) {
	t.Parallel()

	result := read(t, WithVariables(map[string]string{
		"PRIMITIVE_ARRAY_2": "c",
	}))

	assert.Equal(t, map[string]any{
		"primitiveArray": []any{nil, nil, "c"},
	}, result)
}

func TestRead_IgnoresPartialArrayMatches(t *testing.T) {
	t.Parallel()

	result := read(t, WithVariables(map[string]string{
		"OBJECT_ARRAY_0_KEY5":  "value4",
		"OBJECT_ARRAY_X_KEY4":  "value4",
		"OBJECT_ARRAY_0":       "value4",
		"PRIMITIVE_ARRAY_0_1":  "value4",
		"OBJECT_ARRAY_0_KEY4_": "value4",
	}))

	assert.Empty(t, result)
}

func TestRead_IgnoresVariablesWithoutPrefix(t *testing.T) {
	t.Parallel()

	result := read(t, WithPrefix("APP_"), WithVariables(map[string]string{
		"OTHER_KEY1": "value1",
		"APP_KEY2":   "42",
		"KEY1":       "value1",
	}))

	assert.Equal(t, map[string]any{"key2": float64(42)}, result)
}

func TestRead_IgnoresUnknownVariables(t *testing.T) {
	t.Parallel()

	result := read(t, WithVariables(map[string]string{
		"KEY1":        "value1",
		"UNKNOWN_KEY": "value2",
	}))

	assert.Equal(t, map[string]any{"key1": "value1"}, result)
}

func TestRead_CastsValues(t *testing.T) {
	t.Parallel()

	result := read(t, WithVariables(map[string]string{
		"KEY1":           "value1",
		"KEY2":           "not a number",
		"NESTED_KEY3":    "false",
		"VALID_BIGINT":   "12345",
		"INVALID_BIGINT": "abc",
	}))

	assert.Equal(t, map[string]any{
		"key1":          "value1",
		"key2":          "not a number",
		"nested":        map[string]any{"key3": false},
		"validBigint":   big.NewInt(12345),
		"invalidBigint": "abc",
	}, result)
}

func TestRead_CollapsesUnderscoreRuns(t *testing.T) {
	t.Parallel()

	result := read(t, WithVariables(map[string]string{
		"NESTED__KEY3": "1",
	}))

	assert.Equal(t, map[string]any{"nested": map[string]any{"key3": true}}, result)
}

func TestRead_MixedCaseVariableNames(t *testing.T) {
	t.Parallel()

	result := read(t, WithVariables(map[string]string{
		"objectArray_0_key4": "camel",
		"validBigint":        "7",
	}))

	assert.Equal(t, map[string]any{
		"objectArray": []any{map[string]any{"key4": "camel"}},
		"validBigint": big.NewInt(7),
	}, result)
}

func TestRead_DropsOutOfRangeIndices(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	result := read(t, WithLogger(logger), WithVariables(map[string]string{
		"PRIMITIVE_ARRAY_99999999999999999999": "x",
		"PRIMITIVE_ARRAY_5000":                 "y",
	}))

	assert.Empty(t, result)
	assert.Contains(t, buf.String(), "index out of range")
}

func TestRead_FirstMatchingPathWins(t *testing.T) {
	t.Parallel()

	pathMap, err := paths.Build(schema.Object(
		schema.Prop("list", schema.Union(
			schema.Array(schema.String()),
			schema.Object(schema.Prop("0", schema.Number())),
		)),
	))
	require.NoError(t, err)

	result, err := NewProvider(WithVariables(map[string]string{
		"LIST_0": "7",
	})).Read(context.Background(), config.ReadContext{Paths: pathMap})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"list": []any{"7"}}, result)
}

func TestRead_ShapeConflictsReplaceContainers(t *testing.T) {
	t.Parallel()

	pathMap, err := paths.Build(schema.Union(
		schema.Object(schema.Prop("items", schema.Array(schema.Number()))),
		schema.Object(schema.Prop("items", schema.Object(schema.Prop("first", schema.String())))),
	))
	require.NoError(t, err)

	result, err := NewProvider(WithVariables(map[string]string{
		"ITEMS_0":     "3",
		"ITEMS_FIRST": "x",
	})).Read(context.Background(), config.ReadContext{Paths: pathMap})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"items": map[string]any{"first": "x"}}, result)
}

func TestRead_NilPaths(t *testing.T) {
	t.Parallel()

	result, err := NewProvider(WithVariables(map[string]string{"KEY1": "x"})).Read(context.Background(), config.ReadContext{})

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestRead_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewProvider(WithVariables(map[string]string{"KEY1": "x"})).Read(ctx, testContext(t))

	require.ErrorIs(t, err, context.Canceled)
}

func TestRead_ProcessEnvironment(t *testing.T) {
	t.Setenv("HJARTA_TEST_KEY1", "from-process")

	result := read(t, WithPrefix("HJARTA_TEST_"))

	assert.Equal(t, map[string]any{"key1": "from-process"}, result)
}

func TestRead_Dotenv(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := filepath.Join(dir, ".env")
	second := filepath.Join(dir, ".env.local")

	require.NoError(t, os.WriteFile(first, []byte("APP_KEY1=from-file\nAPP_KEY2=1\nAPP_NESTED_KEY3=true\n"), 0o600))
	require.NoError(t, os.WriteFile(second, []byte("APP_KEY2=2\n"), 0o600))

	result := read(t,
		WithPrefix("APP_"),
		WithDotenv(first, second),
		WithVariables(map[string]string{"APP_NESTED_KEY3": "false"}),
	)

	assert.Equal(t, map[string]any{
		"key1":   "from-file",
		"key2":   float64(2),
		"nested": map[string]any{"key3": false},
	}, result)
}

func TestRead_MissingDotenv(t *testing.T) {
	t.Parallel()

	_, err := NewProvider(WithDotenv(filepath.Join(t.TempDir(), "missing.env"))).Read(context.Background(), testContext(t))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading dotenv files")
}
