package jsonschema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/0xalexb/hjarta-config/config/merge"
	"github.com/0xalexb/hjarta-config/config/schema"
)

var (
	// ErrInvalidDocument is returned when the schema document is not valid JSON.
	ErrInvalidDocument = errors.New("invalid json schema document")
	// ErrInvalid is returned by Validate when the configuration does not match the schema.
	ErrInvalid = errors.New("configuration does not match schema")
)

// Schema is a config.Schema backed by a JSON Schema document.
type Schema[T any] struct {
	root     schema.Node
	compiled *gojsonschema.Schema
}

// New compiles document and derives its schema tree.
func New[T any](document []byte) (*Schema[T], error) {
	root, err := buildTree(document)
	if err != nil {
		return nil, err
	}

	compiled, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(document))
	if err != nil {
		return nil, fmt.Errorf("compiling json schema: %w", err)
	}

	return &Schema[T]{root: root, compiled: compiled}, nil
}

// Root implements config.Schema.
func (s *Schema[T]) Root() schema.Node {
	return s.root
}

// Validate fills declared defaults, validates raw against the document and
// decodes it into T. raw is not modified.
func (s *Schema[T]) Validate(raw map[string]any) (T, error) {
	var out T

	if raw == nil {
		raw = map[string]any{}
	}

	value := applyDefaults(s.root, merge.Clone(raw))

	data, err := json.Marshal(value)
	if err != nil {
		return out, fmt.Errorf("encoding configuration: %w", err)
	}

	result, err := s.compiled.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return out, fmt.Errorf("validating configuration: %w", err)
	}

	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, resultErr := range result.Errors() {
			details = append(details, resultErr.String())
		}

		return out, fmt.Errorf("%w: %s", ErrInvalid, strings.Join(details, "; "))
	}

	err = json.Unmarshal(data, &out)
	if err != nil {
		return out, fmt.Errorf("decoding configuration: %w", err)
	}

	return out, nil
}

// applyDefaults sets missing object properties that declare a default.
func applyDefaults(node schema.Node, value any) any {
	switch typed := node.(type) {
	case *schema.ObjectType:
		object, ok := value.(map[string]any)
		if !ok {
			return value
		}

		for _, field := range typed.Fields() {
			current, present := object[field.Name]
			if !present {
				fallback, ok := defaultOf(field.Node)
				if !ok {
					continue
				}

				current = merge.Clone(fallback)
			}

			object[field.Name] = applyDefaults(field.Node, current)
		}

		return object
	case *schema.ArrayType:
		list, ok := value.([]any)
		if !ok {
			return value
		}

		for i, element := range list {
			list[i] = applyDefaults(typed.Element(), element)
		}

		return list
	case *schema.WrapperType:
		return applyDefaults(typed.Inner(), value)
	default:
		return value
	}
}

func defaultOf(node schema.Node) (any, bool) {
	for {
		wrapper, ok := node.(*schema.WrapperType)
		if !ok {
			return nil, false
		}

		if wrapper.Kind() == schema.KindDefault {
			return wrapper.DefaultValue(), true
		}

		node = wrapper.Inner()
	}
}
