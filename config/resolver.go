package config

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/0xalexb/hjarta-config/config/merge"
	"github.com/0xalexb/hjarta-config/config/paths"
)

type rankedProvider struct {
	provider Provider
	priority int
	order    int
}

// Resolver merges ranked providers and validates the result against a schema.
//
// Providers may be added until the first Resolve call starts; Resolve itself
// is safe for concurrent use.
type Resolver[T any] struct {
	schema    Schema[T]
	paths     *paths.Map
	env       string
	logger    *slog.Logger
	mu        sync.Mutex
	providers []rankedProvider
}

// NewResolver creates a Resolver for s. The schema tree is flattened once;
// an ambiguous schema fails here with a *paths.SchemaError.
func NewResolver[T any](s Schema[T], opts ...Option) (*Resolver[T], error) {
	options := newOptions(opts)

	pathMap, err := paths.Build(s.Root())
	if err != nil {
		return nil, fmt.Errorf("building schema paths: %w", err)
	}

	return &Resolver[T]{
		schema: s,
		paths:  pathMap,
		env:    options.Environment,
		logger: options.Logger,
	}, nil
}

// AddProvider registers a provider. Lower priorities are read first, so
// higher priorities override them; equal priorities keep registration order.
func (r *Resolver[T]) AddProvider(provider Provider, priority int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.providers = append(r.providers, rankedProvider{
		provider: provider,
		priority: priority,
		order:    len(r.providers),
	})
}

// Paths returns the path table derived from the schema.
func (r *Resolver[T]) Paths() *paths.Map {
	return r.paths
}

// Environment returns the environment name passed to providers.
func (r *Resolver[T]) Environment() string {
	return r.env
}

// Resolve reads every provider, merges their output and validates it.
func (r *Resolver[T]) Resolve(ctx context.Context) (T, error) {
	var zero T

	raw, err := r.Raw(ctx)
	if err != nil {
		return zero, err
	}

	result, err := r.schema.Validate(raw)
	if err != nil {
		return zero, &ValidationError{Err: err}
	}

	if defaulter, ok := asHook[Defaulter](&result); ok {
		if defaulter.SetDefaults() {
			r.logger.Info("defaults applied", slog.String("env", r.env))
		}
	}

	if validator, ok := asHook[Validator](&result); ok {
		err = validator.Validate()
		if err != nil {
			return zero, &ValidationError{Err: err}
		}
	}

	return result, nil
}

// Raw reads and merges every provider without validating the result.
func (r *Resolver[T]) Raw(ctx context.Context) (map[string]any, error) {
	r.mu.Lock()
	providers := slices.Clone(r.providers)
	r.mu.Unlock()

	slices.SortStableFunc(providers, func(a, b rankedProvider) int {
		return cmp.Compare(a.priority, b.priority)
	})

	rc := ReadContext{Paths: r.paths, Env: r.env}
	raw := make(map[string]any)

	for _, item := range providers {
		if item.provider == nil {
			return nil, fmt.Errorf("provider #%d (priority %d): %w", item.order, item.priority, ErrNilProvider)
		}

		err := ctx.Err()
		if err != nil {
			return nil, fmt.Errorf("resolving config: %w", err)
		}

		data, err := item.provider.Read(ctx, rc)
		if err != nil {
			return nil, fmt.Errorf("reading provider #%d (priority %d): %w", item.order, item.priority, err)
		}

		r.logger.Debug("provider read",
			slog.Int("priority", item.priority),
			slog.Int("order", item.order),
			slog.Int("keys", len(data)))

		merge.Merge(raw, data)
	}

	return raw, nil
}

// asHook finds H on the result itself (pointer results) or on its address.
func asHook[H any, T any](result *T) (H, bool) {
	if hook, ok := any(*result).(H); ok {
		return hook, true
	}

	hook, ok := any(result).(H)

	return hook, ok
}
