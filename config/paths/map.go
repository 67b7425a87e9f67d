package paths

import (
	"iter"

	"github.com/0xalexb/hjarta-config/config/schema"
)

// Wildcard is the path segment standing for any array index.
const Wildcard = "#"

// Separator joins path segments.
const Separator = "."

// Entry is a single leaf path and its type hint.
type Entry struct {
	Path string
	Hint schema.Scalar
}

// Map is an ordered, read-only table of leaf paths.
type Map struct {
	entries []Entry
	index   map[string]int
}

func newMap() *Map {
	return &Map{index: make(map[string]int)}
}

// Get returns the type hint registered for path.
func (m *Map) Get(path string) (schema.Scalar, bool) {
	i, ok := m.index[path]
	if !ok {
		return "", false
	}

	return m.entries[i].Hint, true
}

// Len returns the number of registered paths.
func (m *Map) Len() int {
	return len(m.entries)
}

// All iterates paths and hints in registration order.
func (m *Map) All() iter.Seq2[string, schema.Scalar] {
	return func(yield func(string, schema.Scalar) bool) {
		for _, entry := range m.entries {
			if !yield(entry.Path, entry.Hint) {
				return
			}
		}
	}
}

// Entries returns a copy of the entries in registration order.
func (m *Map) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)

	return out
}

// add registers path with hint. Re-registering the same hint is a no-op.
func (m *Map) add(path string, hint schema.Scalar) error {
	if i, ok := m.index[path]; ok {
		existing := m.entries[i].Hint
		if existing != hint {
			return &SchemaError{
				Path: path,
				Err:  ErrCollision,
				msg:  "type '" + string(existing) + "' vs '" + string(hint) + "'",
			}
		}

		return nil
	}

	m.index[path] = len(m.entries)
	m.entries = append(m.entries, Entry{Path: path, Hint: hint})

	return nil
}
