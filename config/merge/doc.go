// Package merge combines raw configuration trees.
//
// Raw configuration is built from map[string]any objects and []any arrays
// with scalar leaves. Merge folds an overlay into a base in place:
//   - arrays in the overlay replace whatever the base holds (no element-wise merge),
//   - objects present on both sides are merged recursively,
//   - any other overlay value overwrites the base value.
//
// Keys that exist only in the base are never removed.
package merge
