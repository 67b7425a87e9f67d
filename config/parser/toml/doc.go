// Package toml provides a TOML parser for the config file provider.
//
// Decoding is done by github.com/pelletier/go-toml/v2. Integers decode as
// int64, floats as float64, and tables as map[string]any.
package toml
