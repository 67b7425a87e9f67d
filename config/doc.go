// Package config resolves application configuration from ranked sources.
//
// The package uses an interface-based design with four extension points:
//   - Provider: reads a raw configuration tree (files, environment, code)
//   - Schema: exposes a schema tree and validates the merged raw tree into T
//   - Defaulter: applies default values to the validated result
//   - Validator: performs final semantic checks on the result
//
// # Resolution
//
// A Resolver derives a path table from the schema once (see config/paths),
// then on every Resolve call reads each provider in ascending priority order
// and deep-merges the results (see config/merge), so higher priorities win.
// The merged tree is handed to the Schema for validation:
//
//	low priority  (file, 100)  {"db": {"host": "localhost", "port": 5432}}
//	high priority (env,  200)  {"db": {"port": 6543}}
//	merged                     {"db": {"host": "localhost", "port": 6543}}
//
// Providers are read sequentially; a provider that blocks stalls Resolve
// until its context is done.
//
// # Example
//
//	resolver, err := config.NewResolver(mySchema, config.WithEnvironment("production"))
//	if err != nil {
//	    // *paths.SchemaError: the schema is ambiguous
//	}
//	resolver.AddProvider(file.NewProvider(), 100)
//	resolver.AddProvider(env.NewProvider(env.WithPrefix("APP_")), 200)
//	cfg, err := resolver.Resolve(ctx)
package config
