package hjarta

import (
	"log/slog"

	"github.com/0xalexb/hjarta-config/config"
	"github.com/0xalexb/hjarta-config/config/provider/env"
	"github.com/0xalexb/hjarta-config/config/provider/file"
)

// Priorities of the providers registered by NewDefaultResolver. Environment
// variables override configuration files.
const (
	FilePriority = 100
	EnvPriority  = 200
)

// DefaultOptions holds settings for NewDefaultResolver.
type DefaultOptions struct {
	EnvPrefix   string
	ConfigDir   string
	Environment string
	Dotenv      []string
	Logger      *slog.Logger
}

// DefaultOption defines a function type for applying default resolver options.
type DefaultOption func(*DefaultOptions)

// WithEnvPrefix only maps environment variables starting with prefix, such as "APP_".
func WithEnvPrefix(prefix string) DefaultOption {
	return func(opts *DefaultOptions) {
		opts.EnvPrefix = prefix
	}
}

// WithConfigDir sets the directory searched for configuration files.
// Defaults to "config" under the working directory.
func WithConfigDir(dir string) DefaultOption {
	return func(opts *DefaultOptions) {
		opts.ConfigDir = dir
	}
}

// WithEnvironment sets the environment name, overriding APP_ENV.
func WithEnvironment(name string) DefaultOption {
	return func(opts *DefaultOptions) {
		opts.Environment = name
	}
}

// WithDotenv loads the given dotenv files below the process environment.
func WithDotenv(files ...string) DefaultOption {
	return func(opts *DefaultOptions) {
		opts.Dotenv = append(opts.Dotenv, files...)
	}
}

// WithResolverLogger sets the logger shared by the resolver and its providers.
func WithResolverLogger(logger *slog.Logger) DefaultOption {
	return func(opts *DefaultOptions) {
		opts.Logger = logger
	}
}

// NewDefaultResolver creates a Resolver reading configuration files at
// FilePriority and environment variables at EnvPriority.
func NewDefaultResolver[T any](s config.Schema[T], opts ...DefaultOption) (*config.Resolver[T], error) {
	var options DefaultOptions

	for _, apply := range opts {
		apply(&options)
	}

	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	resolverOpts := []config.Option{config.WithLogger(options.Logger)}
	if options.Environment != "" {
		resolverOpts = append(resolverOpts, config.WithEnvironment(options.Environment))
	}

	resolver, err := config.NewResolver(s, resolverOpts...)
	if err != nil {
		return nil, err
	}

	fileOpts := []file.Option{file.WithLogger(options.Logger)}
	if options.ConfigDir != "" {
		fileOpts = append(fileOpts, file.WithBasePath(options.ConfigDir))
	}

	resolver.AddProvider(file.NewProvider(fileOpts...), FilePriority)
	resolver.AddProvider(env.NewProvider(
		env.WithPrefix(options.EnvPrefix),
		env.WithDotenv(options.Dotenv...),
		env.WithLogger(options.Logger),
	), EnvPriority)

	return resolver, nil
}
