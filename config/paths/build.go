package paths

import (
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"slices"
	"strings"

	"github.com/0xalexb/hjarta-config/config/schema"
)

// shape classifies a union branch.
type shape int

const (
	shapeNone shape = iota
	shapeStructured
	shapePrimitive
)

type builder struct {
	paths *Map
}

// Build flattens root into a Map of leaf paths.
//
// Build panics if a node reports a Kind outside the schema package's
// enumeration, or does not implement the capability interface of its kind.
func Build(root schema.Node) (*Map, error) {
	b := &builder{paths: newMap()}

	err := b.walk(root, "")
	if err != nil {
		return nil, err
	}

	return b.paths, nil
}

func (b *builder) walk(node schema.Node, path string) error {
	if node == nil {
		return nil
	}

	switch node.Kind() {
	case schema.KindObject:
		for _, field := range capability[schema.ObjectNode](node).Fields() {
			err := b.walk(field.Node, join(path, field.Name))
			if err != nil {
				return err
			}
		}

		return nil
	case schema.KindArray:
		return b.walk(capability[schema.ArrayNode](node).Element(), path+Separator+Wildcard)
	case schema.KindOptional, schema.KindNullable, schema.KindDefault,
		schema.KindEffect, schema.KindReadonly, schema.KindNonOptional:
		return b.walk(capability[schema.WrapperNode](node).Inner(), path)
	case schema.KindUnion:
		return b.union(capability[schema.UnionNode](node), path)
	case schema.KindPrimitive, schema.KindEnum, schema.KindTemplateLiteral,
		schema.KindLiteral, schema.KindNull, schema.KindCustom:
		hint, ok, err := leafHint(node, path)
		if err != nil || !ok {
			return err
		}

		return b.paths.add(path, hint)
	case schema.KindInvalid:
		fallthrough
	default:
		panic(fmt.Sprintf("paths: unsupported schema node kind %s (%d) of type %T", node.Kind(), int(node.Kind()), node))
	}
}

func (b *builder) union(node schema.UnionNode, path string) error {
	var structured []schema.Node

	var hints []schema.Scalar

	for _, option := range node.Options() {
		kind, optionHints, err := classify(option, path)
		if err != nil {
			return err
		}

		switch kind {
		case shapeStructured:
			structured = append(structured, option)
		case shapePrimitive:
			hints = appendUnique(hints, optionHints...)
		case shapeNone:
		}
	}

	if len(structured) > 0 {
		if len(hints) > 0 {
			return &SchemaError{Path: path, Err: ErrMixedUnion}
		}

		for _, option := range structured {
			err := b.walk(option, path)
			if err != nil {
				return err
			}
		}

		return nil
	}

	switch len(hints) {
	case 0:
		return nil
	case 1:
		return b.paths.add(path, hints[0])
	default:
		return &SchemaError{Path: path, Err: ErrMixedPrimitives, msg: joinHints(hints)}
	}
}

// classify reports whether a union branch is structured (object or array),
// primitive (with its possible hints) or denotes nothing representable.
func classify(node schema.Node, path string) (shape, []schema.Scalar, error) {
	for node != nil && node.Kind().IsWrapper() {
		node = capability[schema.WrapperNode](node).Inner()
	}

	if node == nil {
		return shapeNone, nil, nil
	}

	switch node.Kind() {
	case schema.KindObject, schema.KindArray:
		return shapeStructured, nil, nil
	case schema.KindUnion:
		var hints []schema.Scalar

		for _, option := range capability[schema.UnionNode](node).Options() {
			kind, optionHints, err := classify(option, path)
			if err != nil {
				return shapeNone, nil, err
			}

			if kind == shapeStructured {
				return shapeStructured, nil, nil
			}

			hints = appendUnique(hints, optionHints...)
		}

		if len(hints) == 0 {
			return shapeNone, nil, nil
		}

		return shapePrimitive, hints, nil
	case schema.KindPrimitive, schema.KindEnum, schema.KindTemplateLiteral,
		schema.KindLiteral, schema.KindNull, schema.KindCustom:
		hint, ok, err := leafHint(node, path)
		if err != nil || !ok {
			return shapeNone, nil, err
		}

		return shapePrimitive, []schema.Scalar{hint}, nil
	default:
		panic(fmt.Sprintf("paths: unsupported schema node kind %s (%d) of type %T", node.Kind(), int(node.Kind()), node))
	}
}

// leafHint resolves the type hint of a leaf node. ok is false when the node
// contributes no path.
func leafHint(node schema.Node, path string) (schema.Scalar, bool, error) {
	switch node.Kind() {
	case schema.KindEnum, schema.KindTemplateLiteral:
		return schema.StringHint, true, nil
	case schema.KindPrimitive:
		hint := capability[schema.ScalarNode](node).Scalar()
		if !hint.Valid() {
			panic(fmt.Sprintf("paths: primitive node %T reports unsupported type hint %q", node, hint))
		}

		return hint, true, nil
	case schema.KindLiteral:
		return literalHint(capability[schema.LiteralNode](node).Values(), path)
	case schema.KindCustom:
		described, ok := node.(schema.DescribedNode)
		if !ok {
			return "", false, nil
		}

		return describedHint(described.Describe())
	default:
		return "", false, nil
	}
}

func literalHint(values []any, path string) (schema.Scalar, bool, error) {
	var hints []schema.Scalar

	for _, value := range values {
		if value == nil {
			continue
		}

		hint, ok := literalKind(value)
		if !ok {
			return "", false, &SchemaError{Path: path, Err: ErrUnsupportedLiteral, msg: fmt.Sprintf("%T", value)}
		}

		hints = appendUnique(hints, hint)
	}

	switch len(hints) {
	case 0:
		return "", false, nil
	case 1:
		return hints[0], true, nil
	default:
		return "", false, &SchemaError{Path: path, Err: ErrMixedLiterals, msg: joinHints(hints)}
	}
}

func literalKind(value any) (schema.Scalar, bool) {
	switch value.(type) {
	case string:
		return schema.StringHint, true
	case bool:
		return schema.BooleanHint, true
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return schema.NumberHint, true
	case *big.Int, big.Int:
		return schema.BigIntHint, true
	default:
		return "", false
	}
}

func describedHint(description string) (schema.Scalar, bool, error) {
	switch strings.ToLower(strings.TrimSpace(description)) {
	case "string":
		return schema.StringHint, true, nil
	case "number", "integer":
		return schema.NumberHint, true, nil
	case "boolean":
		return schema.BooleanHint, true, nil
	case "bigint":
		return schema.BigIntHint, true, nil
	default:
		return "", false, nil
	}
}

func capability[T schema.Node](node schema.Node) T {
	c, ok := node.(T)
	if !ok {
		panic(fmt.Sprintf("paths: %s node %T does not implement %s", node.Kind(), node, reflect.TypeFor[T]()))
	}

	return c
}

func join(parent, name string) string {
	if parent == "" {
		return name
	}

	return parent + Separator + name
}

func appendUnique(hints []schema.Scalar, more ...schema.Scalar) []schema.Scalar {
	for _, hint := range more {
		if !slices.Contains(hints, hint) {
			hints = append(hints, hint)
		}
	}

	return hints
}

func joinHints(hints []schema.Scalar) string {
	parts := make([]string, len(hints))
	for i, hint := range hints {
		parts[i] = string(hint)
	}

	return strings.Join(parts, ", ")
}
