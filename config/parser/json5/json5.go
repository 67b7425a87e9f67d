package json5

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tailscale/hujson"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// Parser decodes JSON5 style documents into raw configuration values.
type Parser struct{}

// NewParser creates a new JSON5 parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse strips comments and trailing commas from data and decodes the result.
func (p *Parser) Parse(data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyData
	}

	standard, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("standardize error: %w", err)
	}

	var value any

	err = json.Unmarshal(standard, &value)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return value, nil
}
