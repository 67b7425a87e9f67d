// Package yaml provides a YAML parser for the config file provider.
//
// This package uses github.com/goccy/go-yaml for YAML parsing with native
// PathString support for section selection. The parser converts
// colon-separated sections (e.g., "services:api") to YAML path format
// (e.g., "$.services.api") internally.
//
// Usage:
//
//	parser := yaml.NewParser()
//	value, err := parser.Parse(data)
//
// Section Selection:
//   - No section -> entire document
//   - Single key "key" -> "$.key"
//   - Nested section "api:permissions" -> "$.api.permissions"
package yaml
