package hjarta

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"github.com/0xalexb/hjarta-config/config"
)

// ConfigModule returns an Fx module providing the *config.Resolver[T] built
// by NewDefaultResolver and the *T it resolves at startup. The resolver logs
// through the *slog.Logger found in the container unless opts set another.
func ConfigModule[T any](s config.Schema[T], opts ...DefaultOption) fx.Option {
	return fx.Module("config",
		fx.Provide(func(logger *slog.Logger) (*config.Resolver[T], error) {
			resolverOpts := append([]DefaultOption{WithResolverLogger(logger)}, opts...)

			return NewDefaultResolver(s, resolverOpts...)
		}),
		fx.Provide(func(resolver *config.Resolver[T]) (*T, error) {
			cfg, err := resolver.Resolve(context.Background())
			if err != nil {
				return nil, fmt.Errorf("resolving config for %s environment: %w", resolver.Environment(), err)
			}

			return &cfg, nil
		}),
	)
}
