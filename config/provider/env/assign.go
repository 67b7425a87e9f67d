package env

import "strconv"

// assign writes value into raw at the given path segments, creating
// intermediate containers on the way. A missing container becomes an array
// when the segment addressing it is numeric and an object otherwise; an
// existing container of the wrong shape is replaced.
func assign(raw map[string]any, segments []string, value any) {
	if len(segments) == 0 {
		return
	}

	key, rest := segments[0], segments[1:]
	raw[key] = place(raw[key], rest, value)
}

func place(node any, segments []string, value any) any {
	if len(segments) == 0 {
		return value
	}

	key, rest := segments[0], segments[1:]

	if index, ok := parseIndex(key); ok {
		list, isList := node.([]any)
		if !isList {
			if object, isObject := node.(map[string]any); isObject {
				object[key] = place(object[key], rest, value)

				return object
			}
		}

		for len(list) <= index {
			list = append(list, nil)
		}

		list[index] = place(list[index], rest, value)

		return list
	}

	object, ok := node.(map[string]any)
	if !ok {
		object = make(map[string]any)
	}

	object[key] = place(object[key], rest, value)

	return object
}

func parseIndex(segment string) (int, bool) {
	if !isIndex(segment) {
		return 0, false
	}

	index, err := strconv.Atoi(segment)
	if err != nil {
		return 0, false
	}

	return index, true
}
