package config

import (
	"log/slog"
	"os"
)

// EnvironmentVariable names the variable consulted for the default environment.
const EnvironmentVariable = "APP_ENV"

// DefaultEnvironment is used when neither WithEnvironment nor
// EnvironmentVariable provide a name.
const DefaultEnvironment = "development"

// Options holds resolver settings.
type Options struct {
	Environment string
	Logger      *slog.Logger
}

// Option defines a function type for applying resolver options.
type Option func(*Options)

// WithEnvironment sets the environment name passed to providers.
func WithEnvironment(env string) Option {
	return func(opts *Options) {
		opts.Environment = env
	}
}

// WithLogger sets the logger used by the resolver.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

func newOptions(opts []Option) Options {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	if options.Environment == "" {
		options.Environment = os.Getenv(EnvironmentVariable)
	}

	if options.Environment == "" {
		options.Environment = DefaultEnvironment
	}

	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	return options
}
