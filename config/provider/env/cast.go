package env

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/0xalexb/hjarta-config/config/schema"
)

// cast converts a raw variable value according to hint. Numbers that cannot
// be parsed are returned unchanged so validation can report them.
func cast(value string, hint schema.Scalar) any {
	switch hint {
	case schema.BooleanHint:
		return strings.EqualFold(value, "true") || value == "1"
	case schema.NumberHint:
		number, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || math.IsNaN(number) || math.IsInf(number, 0) {
			return value
		}

		return number
	case schema.BigIntHint:
		number, ok := new(big.Int).SetString(strings.TrimSpace(value), 0)
		if !ok {
			return value
		}

		return number
	default:
		return value
	}
}
