// Package jsonschema adapts JSON Schema documents to config.Schema.
//
// The document is compiled with github.com/xeipuuv/gojsonschema for
// validation, and walked with github.com/tidwall/gjson to build the schema
// tree the resolver derives environment variable paths from. gjson keeps
// properties in document order, so the first declared property wins when two
// properties normalize to the same variable name.
//
// Keyword mapping:
//
//	type: object, properties  -> schema.Object (fields not in required are Optional)
//	type: array, items        -> schema.Array
//	type: string              -> schema.String()
//	type: number, integer     -> schema.Number()
//	format: bigint            -> schema.BigInt()
//	type: boolean             -> schema.Boolean()
//	type: null                -> schema.Null
//	type: [t1, t2]            -> schema.Union (a single partner of null becomes Nullable)
//	anyOf, oneOf, allOf       -> schema.Union
//	enum (all strings)        -> schema.Enum
//	enum, const               -> schema.Literal
//	nullable: true            -> schema.Nullable
//	default                   -> schema.Default
//	readOnly: true            -> schema.Readonly
//	$ref (local)              -> the referenced definition
//
// Recursive references and anything not listed become schema.Custom.
//
// Usage:
//
//	s, err := jsonschema.New[AppConfig](document)
//	resolver, err := config.NewResolver[AppConfig](s)
package jsonschema
