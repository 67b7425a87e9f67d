package structschema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"dario.cat/mergo"
	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"

	"github.com/0xalexb/hjarta-config/config/schema"
)

// DefaultTagName is the struct tag holding configuration key names.
const DefaultTagName = "config"

var (
	// ErrNotStruct is returned by New when T is not a struct type.
	ErrNotStruct = errors.New("configuration type must be a struct")
	// ErrInvalid is returned by Validate when a validate tag fails.
	ErrInvalid = errors.New("configuration failed validation")
)

// Schema is a config.Schema backed by the Go struct T.
type Schema[T any] struct {
	tagName   string
	defaults  func() T
	validate  *validator.Validate
	timeForms []string
	root      schema.Node
}

// Option defines a function type for configuring a Schema.
type Option[T any] func(*Schema[T])

// WithTagName sets the struct tag used for key names.
func WithTagName[T any](name string) Option[T] {
	return func(s *Schema[T]) {
		s.tagName = name
	}
}

// WithDefaults fills zero fields of every decoded value from fn(). fn is
// called on each Validate, so pointers it returns are never shared.
func WithDefaults[T any](fn func() T) Option[T] {
	return func(s *Schema[T]) {
		s.defaults = fn
	}
}

// WithValidator replaces the validator instance, for example one with custom
// validations registered.
func WithValidator[T any](validate *validator.Validate) Option[T] {
	return func(s *Schema[T]) {
		s.validate = validate
	}
}

// WithTimeLayouts sets the layouts tried when decoding strings into
// time.Time. The default is time.RFC3339.
func WithTimeLayouts[T any](layouts ...string) Option[T] {
	return func(s *Schema[T]) {
		s.timeForms = layouts
	}
}

// New reflects T into a schema tree.
func New[T any](opts ...Option[T]) (*Schema[T], error) {
	typ := reflect.TypeFor[T]()
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: got %s", ErrNotStruct, typ)
	}

	s := &Schema[T]{
		tagName:   DefaultTagName,
		timeForms: []string{time.RFC3339},
	}

	for _, apply := range opts {
		apply(s)
	}

	if s.validate == nil {
		s.validate = validator.New(validator.WithRequiredStructEnabled())
	}

	s.root = (&builder{tagName: s.tagName}).build(typ)

	return s, nil
}

// Root implements config.Schema.
func (s *Schema[T]) Root() schema.Node {
	return s.root
}

// Validate decodes raw into T, applies defaults and runs struct validation.
func (s *Schema[T]) Validate(raw map[string]any) (T, error) {
	var out T

	decoder, err := mapstructure.NewDecoder(s.decoderConfig(&out))
	if err != nil {
		return out, fmt.Errorf("failed to create decoder: %w", err)
	}

	err = decoder.Decode(raw)
	if err != nil {
		return out, fmt.Errorf("decoding configuration: %w", err)
	}

	if s.defaults != nil {
		err = mergo.Merge(&out, s.defaults())
		if err != nil {
			return out, fmt.Errorf("applying defaults: %w", err)
		}
	}

	err = s.validate.Struct(out)
	if err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return out, fmt.Errorf("validating configuration: %w", err)
		}

		details := make([]string, 0, len(fieldErrs))
		for _, fieldErr := range fieldErrs {
			details = append(details, fmt.Sprintf("%s failed on '%s'", fieldErr.Namespace(), fieldErr.Tag()))
		}

		return out, fmt.Errorf("%w: %s", ErrInvalid, strings.Join(details, "; "))
	}

	return out, nil
}

func (s *Schema[T]) decoderConfig(result *T) *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		TagName:          s.tagName,
		Squash:           true,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			timeHook(s.timeForms),
			bigIntHook(),
		),
		Result: result,
	}
}
