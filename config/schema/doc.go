// Package schema defines the minimal capability interface that configuration
// schemas expose to the rest of the config packages.
//
// A schema is a tree of Nodes. Every node reports a Kind from a closed set and
// implements the capability interface matching that kind:
//
//	KindObject                      -> ObjectNode   (ordered fields)
//	KindArray                       -> ArrayNode    (element node)
//	KindUnion                       -> UnionNode    (ordered options)
//	KindPrimitive, KindEnum,
//	KindTemplateLiteral             -> ScalarNode   (type hint)
//	KindLiteral                     -> LiteralNode  (allowed values)
//	KindOptional, KindNullable,
//	KindDefault, KindEffect,
//	KindReadonly, KindNonOptional   -> WrapperNode  (inner node)
//	KindCustom                      -> DescribedNode (optional)
//	KindNull                        -> no capability
//
// The package does not validate values. Adapters such as
// config/schema/jsonschema and config/schema/structschema translate an
// external schema language into this tree, and the builders in this package
// allow trees to be declared directly:
//
//	root := schema.Object(
//	    schema.Prop("host", schema.String()),
//	    schema.Prop("ports", schema.Array(schema.Number())),
//	)
package schema
