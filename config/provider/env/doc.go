// Package env provides an environment variable Provider for the config package.
//
// Variable names are matched against the resolver's path table (see
// config/paths) without any explicit mapping. After the optional prefix is
// stripped, runs of underscores become path separators and every segment is
// split into lower-case words, so both sides of the comparison look alike:
//
//	APP_SERVER_LISTEN_ADDR  -> server.listen.addr
//	server.listenAddr       -> server.listen.addr
//
// Numeric segments fill array wildcards in the schema path:
//
//	OBJECT_ARRAY_0_KEY4     -> objectArray.0.key4   (schema: objectArray.#.key4)
//	ARRAY_ARRAY_1_0         -> arrayArray.1.0       (schema: arrayArray.#.#)
//
// Values are cast according to the matched path's type hint: booleans accept
// "true" (any case) and "1"; numbers and big integers fall back to the raw
// string when they cannot be parsed, leaving the final verdict to schema
// validation. Variables that match no path are ignored.
//
// Usage:
//
//	provider := env.NewProvider(env.WithPrefix("APP_"), env.WithDotenv(".env"))
//	resolver.AddProvider(provider, 200)
package env
