package config_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/0xalexb/hjarta-config/config"
	"github.com/0xalexb/hjarta-config/config/provider/env"
	"github.com/0xalexb/hjarta-config/config/schema"
)

// AppConfig represents application configuration.
type AppConfig struct {
	Host string
	Port int
}

// SetDefaults sets default values for the configuration.
func (c *AppConfig) SetDefaults() bool {
	changed := false

	if c.Host == "" {
		c.Host = "localhost"
		changed = true
	}

	if c.Port == 0 {
		c.Port = 8080
		changed = true
	}

	return changed
}

// Validate validates the configuration.
func (c *AppConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}

var appSchema = config.SchemaFunc(
	schema.Object(
		schema.Prop("host", schema.Optional(schema.String())),
		schema.Prop("port", schema.Optional(schema.Number())),
	),
	func(raw map[string]any) (AppConfig, error) {
		var cfg AppConfig

		if host, ok := raw["host"].(string); ok {
			cfg.Host = host
		}

		switch port := raw["port"].(type) {
		case nil:
		case float64:
			cfg.Port = int(port)
		default:
			return cfg, fmt.Errorf("port: expected number, got %T", port)
		}

		return cfg, nil
	},
)

func ExampleResolver() {
	resolver, err := config.NewResolver(appSchema, config.WithEnvironment("production"))
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	// Lower priorities are read first, so environment variables override files.
	resolver.AddProvider(config.Static(map[string]any{"host": "example.com", "port": float64(80)}), 100)
	resolver.AddProvider(env.NewProvider(
		env.WithPrefix("APP_"),
		env.WithVariables(map[string]string{"APP_PORT": "9000"}),
	), 200)

	cfg, err := resolver.Resolve(context.Background())
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	fmt.Printf("Host: %s\n", cfg.Host)
	fmt.Printf("Port: %d\n", cfg.Port)
	// Output:
	// Host: example.com
	// Port: 9000
}

func ExampleResolver_defaults() {
	resolver, err := config.NewResolver(appSchema)
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	// AppConfig implements Defaulter, so missing values are filled after validation.
	resolver.AddProvider(config.Static(map[string]any{"port": float64(3000)}), 0)

	cfg, err := resolver.Resolve(context.Background())
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	fmt.Printf("Address: %s:%d\n", cfg.Host, cfg.Port)
	// Output:
	// Address: localhost:3000
}

func ExampleResolver_validationError() {
	resolver, err := config.NewResolver(appSchema)
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	resolver.AddProvider(env.NewProvider(
		env.WithVariables(map[string]string{"PORT": "not-a-number"}),
	), 0)

	_, err = resolver.Resolve(context.Background())

	var validationErr *config.ValidationError
	fmt.Println(errors.As(err, &validationErr))
	fmt.Println(err)
	// Output:
	// true
	// failed to parse config: port: expected number, got string
}

func ExampleResolver_Paths() {
	resolver, err := config.NewResolver(config.SchemaFunc(
		schema.Object(
			schema.Prop("database", schema.Object(
				schema.Prop("replicas", schema.Array(schema.Object(
					schema.Prop("host", schema.String()),
					schema.Prop("port", schema.Number()),
				))),
			)),
			schema.Prop("debug", schema.Boolean()),
		),
		func(raw map[string]any) (map[string]any, error) { return raw, nil },
	))
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	for path, hint := range resolver.Paths().All() {
		fmt.Printf("%s: %s\n", path, hint)
	}
	// Output:
	// database.replicas.#.host: string
	// database.replicas.#.port: number
	// debug: boolean
}
