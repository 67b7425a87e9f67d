package env

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/0xalexb/hjarta-config/config"
	"github.com/0xalexb/hjarta-config/config/paths"

	"github.com/joho/godotenv"
)

// MaxIndex is the largest array index accepted from a variable name.
// Variables addressing higher indices are dropped.
const MaxIndex = 1 << 12

// Provider implements config.Provider for environment variables.
type Provider struct {
	prefix    string
	variables map[string]string
	dotenv    []string
	logger    *slog.Logger
}

// Option defines a function type for configuring a Provider.
type Option func(*Provider)

// WithPrefix only considers variables starting with prefix. The prefix is
// matched exactly and stripped before path matching.
func WithPrefix(prefix string) Option {
	return func(p *Provider) {
		p.prefix = prefix
	}
}

// WithVariables replaces the process environment with variables.
func WithVariables(variables map[string]string) Option {
	return func(p *Provider) {
		p.variables = variables
	}
}

// WithDotenv reads additional variables from dotenv files. Files are read on
// every Read call; variables from the environment (or WithVariables) take
// precedence over file values, and later files override earlier ones.
func WithDotenv(files ...string) Option {
	return func(p *Provider) {
		p.dotenv = append(p.dotenv, files...)
	}
}

// WithLogger sets the logger used to report dropped variables.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Provider) {
		p.logger = logger
	}
}

// NewProvider creates an environment variable Provider.
func NewProvider(opts ...Option) *Provider {
	provider := &Provider{}

	for _, apply := range opts {
		apply(provider)
	}

	if provider.logger == nil {
		provider.logger = slog.Default()
	}

	return provider
}

// Read maps matching variables onto the path table and returns the resulting
// raw configuration tree.
func (p *Provider) Read(ctx context.Context, rc config.ReadContext) (map[string]any, error) {
	variables, err := p.collect()
	if err != nil {
		return nil, err
	}

	raw := make(map[string]any)

	if rc.Paths == nil {
		return raw, nil
	}

	matcher := newMatcher(rc.Paths)

	for _, key := range slices.Sorted(maps.Keys(variables)) {
		err := ctx.Err()
		if err != nil {
			return nil, fmt.Errorf("reading environment: %w", err)
		}

		if !strings.HasPrefix(key, p.prefix) {
			continue
		}

		match, ok := matcher.match(strings.TrimPrefix(key, p.prefix))
		if !ok {
			continue
		}

		if match.maxIndex > MaxIndex {
			p.logger.Warn("environment variable index out of range",
				slog.String("variable", key),
				slog.Int("index", match.maxIndex),
				slog.Int("max", MaxIndex))

			continue
		}

		p.logger.Debug("environment variable mapped",
			slog.String("variable", key),
			slog.String("path", match.path),
			slog.String("type", string(match.hint)))

		assign(raw, strings.Split(match.path, paths.Separator), cast(variables[key], match.hint))
	}

	return raw, nil
}

func (p *Provider) collect() (map[string]string, error) {
	variables := make(map[string]string)

	if len(p.dotenv) > 0 {
		fromFiles, err := godotenv.Read(p.dotenv...)
		if err != nil {
			return nil, fmt.Errorf("reading dotenv files: %w", err)
		}

		maps.Copy(variables, fromFiles)
	}

	if p.variables != nil {
		maps.Copy(variables, p.variables)

		return variables, nil
	}

	for _, entry := range os.Environ() {
		key, value, ok := strings.Cut(entry, "=")
		if ok {
			variables[key] = value
		}
	}

	return variables, nil
}
