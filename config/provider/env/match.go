package env

import (
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/0xalexb/hjarta-config/config/paths"
	"github.com/0xalexb/hjarta-config/config/schema"
)

// candidate is a path table entry prepared for matching.
type candidate struct {
	path       string
	hint       schema.Scalar
	normalized string
	segments   []string
	wildcards  bool
}

type matcher struct {
	candidates []candidate
}

type match struct {
	path     string
	hint     schema.Scalar
	maxIndex int
}

func newMatcher(pathMap *paths.Map) *matcher {
	candidates := make([]candidate, 0, pathMap.Len())

	for path, hint := range pathMap.All() {
		normalized := normalizePath(path)
		segments := strings.Split(normalized, paths.Separator)

		candidates = append(candidates, candidate{
			path:       path,
			hint:       hint,
			normalized: normalized,
			segments:   segments,
			wildcards:  slices.Contains(segments, paths.Wildcard),
		})
	}

	return &matcher{candidates: candidates}
}

// match resolves a prefix-stripped variable name to a concrete path. The
// first candidate in path table order wins.
func (m *matcher) match(key string) (match, bool) {
	normalizedKey := normalizeKey(key)

	var keySegments []string

	for _, c := range m.candidates {
		if c.normalized == normalizedKey {
			return match{path: c.path, hint: c.hint}, true
		}

		if !c.wildcards {
			continue
		}

		if keySegments == nil {
			keySegments = strings.Split(normalizedKey, paths.Separator)
		}

		indices, ok := injectIndices(c.segments, keySegments, normalizedKey)
		if !ok {
			continue
		}

		return match{
			path:     substituteIndices(c.path, indices),
			hint:     c.hint,
			maxIndex: largestIndex(indices),
		}, true
	}

	return match{}, false
}

// injectIndices walks the normalized schema segments against the key
// segments. A wildcard accepts a purely numeric key segment, which is
// recorded as an index; every other segment must be equal.
func injectIndices(segments, keySegments []string, normalizedKey string) ([]string, bool) {
	if len(segments) != len(keySegments) {
		return nil, false
	}

	indices := make([]string, 0, 1)
	indexed := make([]string, len(segments))

	for i, segment := range segments {
		keySegment := keySegments[i]

		if segment == paths.Wildcard && isIndex(keySegment) {
			indices = append(indices, keySegment)
			indexed[i] = keySegment

			continue
		}

		if segment != keySegment {
			return nil, false
		}

		indexed[i] = segment
	}

	if strings.Join(indexed, paths.Separator) != normalizedKey {
		return nil, false
	}

	return indices, true
}

// substituteIndices fills the wildcard segments of path in order.
func substituteIndices(path string, indices []string) string {
	segments := strings.Split(path, paths.Separator)
	next := 0

	for i, segment := range segments {
		if segment == paths.Wildcard && next < len(indices) {
			segments[i] = indices[next]
			next++
		}
	}

	return strings.Join(segments, paths.Separator)
}

func largestIndex(indices []string) int {
	largest := 0

	for _, index := range indices {
		value, err := strconv.Atoi(index)
		if err != nil {
			return math.MaxInt
		}

		largest = max(largest, value)
	}

	return largest
}

// normalizeKey turns a variable name into a dotted, word-split, lower-case
// path. Runs of underscores separate segments.
func normalizeKey(key string) string {
	var builder strings.Builder

	underscore := false

	for _, r := range key {
		if r == '_' {
			underscore = true

			continue
		}

		if underscore {
			builder.WriteString(paths.Separator)

			underscore = false
		}

		builder.WriteRune(r)
	}

	if underscore {
		builder.WriteString(paths.Separator)
	}

	return normalizePath(builder.String())
}

// normalizePath word-splits every segment of a dotted path. Wildcard
// segments are kept as is.
func normalizePath(path string) string {
	segments := strings.Split(path, paths.Separator)

	for i, segment := range segments {
		if segment == paths.Wildcard {
			continue
		}

		segments[i] = noCase(segment)
	}

	return strings.Join(segments, paths.Separator)
}

// noCase lower-cases the words of s and joins them with the path separator.
func noCase(s string) string {
	words := splitWords(s)
	for i, word := range words {
		words[i] = strings.ToLower(word)
	}

	return strings.Join(words, paths.Separator)
}

// splitWords splits s at lower-to-upper transitions ("camelCase"), before
// the last capital of an acronym followed by a lower-case letter
// ("HTTPServer") and at every character that is neither a letter nor a
// digit. Digits stay attached to the preceding letters.
func splitWords(s string) []string {
	runes := []rune(s)
	words := make([]string, 0, 2)
	current := make([]rune, 0, len(runes))

	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}

	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()

			continue
		}

		if len(current) > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]

			switch {
			case unicode.IsLower(prev) || unicode.IsDigit(prev):
				flush()
			case unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
				flush()
			}
		}

		current = append(current, r)
	}

	flush()

	return words
}

func isIndex(segment string) bool {
	if segment == "" {
		return false
	}

	for _, r := range segment {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
