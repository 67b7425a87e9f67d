package config

import (
	"context"

	"github.com/0xalexb/hjarta-config/config/merge"
	"github.com/0xalexb/hjarta-config/config/paths"
	"github.com/0xalexb/hjarta-config/config/schema"
)

// ReadContext is handed to every provider on each Resolve call.
type ReadContext struct {
	// Paths is the leaf path table derived from the resolver's schema.
	Paths *paths.Map
	// Env is the environment name, such as "development" or "production".
	Env string
}

// Provider defines an interface for reading a raw configuration tree.
// The returned map is built from map[string]any objects, []any arrays and
// scalar leaves.
type Provider interface {
	Read(ctx context.Context, rc ReadContext) (map[string]any, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context, rc ReadContext) (map[string]any, error)

// Read implements Provider.
func (f ProviderFunc) Read(ctx context.Context, rc ReadContext) (map[string]any, error) {
	return f(ctx, rc)
}

// Static returns a Provider that always yields a copy of raw.
func Static(raw map[string]any) Provider {
	return ProviderFunc(func(_ context.Context, _ ReadContext) (map[string]any, error) {
		object, _ := merge.Clone(raw).(map[string]any)
		if object == nil {
			object = map[string]any{}
		}

		return object, nil
	})
}

// Schema defines an interface for the declared configuration schema.
// Root exposes the schema tree used to derive environment variable paths;
// Validate turns the merged raw tree into a typed value or fails with a
// diagnostic.
type Schema[T any] interface {
	Root() schema.Node
	Validate(raw map[string]any) (T, error)
}

type schemaFunc[T any] struct {
	root     schema.Node
	validate func(raw map[string]any) (T, error)
}

func (s schemaFunc[T]) Root() schema.Node { return s.root }

func (s schemaFunc[T]) Validate(raw map[string]any) (T, error) { return s.validate(raw) }

// SchemaFunc pairs a schema tree with a validation function.
func SchemaFunc[T any](root schema.Node, validate func(raw map[string]any) (T, error)) Schema[T] {
	return schemaFunc[T]{root: root, validate: validate}
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}
