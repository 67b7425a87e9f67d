package merge

import "reflect"

// Merge folds overlay into base. base is modified in place; overlay is left
// untouched because every value taken from it is cloned.
func Merge(base, overlay map[string]any) {
	for key, value := range overlay {
		if IsArray(value) {
			base[key] = Clone(value)

			continue
		}

		overlayObject, overlayIsObject := value.(map[string]any)
		baseObject, baseIsObject := base[key].(map[string]any)

		if overlayIsObject && baseIsObject && baseObject != nil {
			Merge(baseObject, overlayObject)

			continue
		}

		base[key] = Clone(value)
	}
}

// IsObject reports whether value is a raw configuration object.
func IsObject(value any) bool {
	object, ok := value.(map[string]any)

	return ok && object != nil
}

// IsArray reports whether value is array-like. Besides []any it accepts any
// slice or array type, except byte slices which are treated as scalars.
func IsArray(value any) bool {
	switch value.(type) {
	case nil, []byte:
		return false
	case []any:
		return true
	}

	kind := reflect.TypeOf(value).Kind()

	return kind == reflect.Slice || kind == reflect.Array
}

// Clone returns a deep copy of raw objects and []any arrays. Other values are
// returned as is.
func Clone(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		if typed == nil {
			return typed
		}

		out := make(map[string]any, len(typed))
		for key, child := range typed {
			out[key] = Clone(child)
		}

		return out
	case []any:
		if typed == nil {
			return typed
		}

		out := make([]any, len(typed))
		for i, child := range typed {
			out[i] = Clone(child)
		}

		return out
	default:
		return value
	}
}
