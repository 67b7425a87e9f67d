package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the selected section is not found in the YAML document.
var ErrPathNotFound = errors.New("path not found")

// Parser decodes YAML documents into raw configuration values.
type Parser struct {
	section string
}

// Option defines a function type for configuring a Parser.
type Option func(*Parser)

// WithSection only decodes the given colon-separated section of the document.
func WithSection(section string) Option {
	return func(p *Parser) {
		p.section = section
	}
}

// NewParser creates a new YAML parser instance.
func NewParser(opts ...Option) *Parser {
	parser := &Parser{}

	for _, apply := range opts {
		apply(parser)
	}

	return parser
}

// Parse decodes data. Mappings become map[string]any and sequences []any.
func (p *Parser) Parse(data []byte) (any, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	var value any

	if p.section == "" {
		err := yaml.Unmarshal(data, &value)
		if err != nil {
			return nil, fmt.Errorf("unmarshal error: %w", err)
		}

		return normalize(value), nil
	}

	yamlPath := convertToYAMLPath(p.section)

	pathObj, err := yaml.PathString(yamlPath)
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", p.section, err)
	}

	err = pathObj.Read(bytes.NewReader(data), &value)
	if err != nil {
		if yaml.IsNotFoundNodeError(err) {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, p.section)
		}

		return nil, fmt.Errorf("reading path %q: %w", p.section, err)
	}

	return normalize(value), nil
}

// convertToYAMLPath converts a colon-separated path to goccy/go-yaml PathString format.
// Examples:
//   - "key" -> "$.key"
//   - "api:permissions" -> "$.api.permissions"
func convertToYAMLPath(path string) string {
	parts := strings.Split(path, ":")

	return "$." + strings.Join(parts, ".")
}

// normalize converts mappings with non-string keys into map[string]any.
func normalize(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		for key, child := range typed {
			typed[key] = normalize(child)
		}

		return typed
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, child := range typed {
			out[fmt.Sprint(key)] = normalize(child)
		}

		return out
	case []any:
		for i, child := range typed {
			typed[i] = normalize(child)
		}

		return typed
	default:
		return value
	}
}
