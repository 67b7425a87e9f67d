package toml

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// Parser decodes TOML documents into raw configuration values.
type Parser struct{}

// NewParser creates a new TOML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes data into a map[string]any.
func (p *Parser) Parse(data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyData
	}

	var value map[string]any

	err := toml.Unmarshal(data, &value)
	if err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, column := decodeErr.Position()

			return nil, fmt.Errorf("unmarshal error at line %d column %d: %w", row, column, err)
		}

		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return value, nil
}
