// Package json provides a JSON parser for the config file provider.
package json
