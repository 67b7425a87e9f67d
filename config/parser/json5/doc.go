// Package json5 provides a parser for JSON with comments and trailing commas.
//
// Documents are standardized with github.com/tailscale/hujson before being
// decoded, so the accepted syntax is the JWCC subset of JSON5: line and
// block comments plus trailing commas in objects and arrays.
package json5
