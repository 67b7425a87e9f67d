package structschema

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

var (
	bigIntType    = reflect.TypeFor[big.Int]()
	bigIntPtrType = reflect.TypeFor[*big.Int]()
	timeType      = reflect.TypeFor[time.Time]()
)

// ErrBigInt is returned when a value cannot be converted to a big.Int.
var ErrBigInt = errors.New("cannot convert to big.Int")

// timeHook parses strings into time.Time trying each layout in turn.
func timeHook(layouts []string) mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to != timeType {
			return data, nil
		}

		value := strings.TrimSpace(reflect.ValueOf(data).String())

		var lastErr error

		for _, layout := range layouts {
			parsed, err := time.Parse(layout, value)
			if err == nil {
				return parsed, nil
			}

			lastErr = err
		}

		return nil, fmt.Errorf("parsing time %q: %w", value, lastErr)
	}
}

// bigIntHook converts strings, numbers and big.Int values into big.Int and
// *big.Int targets.
func bigIntHook() mapstructure.DecodeHookFuncType {
	return func(_ reflect.Type, to reflect.Type, data any) (any, error) {
		if to != bigIntType && to != bigIntPtrType {
			return data, nil
		}

		number, err := toBigInt(data)
		if err != nil {
			return nil, err
		}

		if to == bigIntPtrType {
			return number, nil
		}

		return *number, nil
	}
}

func toBigInt(data any) (*big.Int, error) {
	switch typed := data.(type) {
	case *big.Int:
		if typed == nil {
			return new(big.Int), nil
		}

		return new(big.Int).Set(typed), nil
	case big.Int:
		return new(big.Int).Set(&typed), nil
	case string:
		number, ok := new(big.Int).SetString(strings.TrimSpace(typed), 0)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrBigInt, typed)
		}

		return number, nil
	case float32, float64:
		value := reflect.ValueOf(typed).Float()
		if math.IsNaN(value) || math.IsInf(value, 0) || value != math.Trunc(value) {
			return nil, fmt.Errorf("%w: %v", ErrBigInt, typed)
		}

		number, _ := big.NewFloat(value).Int(nil)

		return number, nil
	case int, int8, int16, int32, int64:
		return big.NewInt(reflect.ValueOf(typed).Int()), nil
	case uint, uint8, uint16, uint32, uint64:
		return new(big.Int).SetUint64(reflect.ValueOf(typed).Uint()), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrBigInt, data)
	}
}
