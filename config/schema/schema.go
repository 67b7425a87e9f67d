package schema

// Kind identifies the shape of a schema node.
type Kind int

// Node kinds. The set is closed: consumers switch over it exhaustively.
const (
	KindInvalid Kind = iota
	KindObject
	KindArray
	KindUnion
	KindPrimitive
	KindEnum
	KindLiteral
	KindTemplateLiteral
	KindNull
	KindOptional
	KindNullable
	KindDefault
	KindEffect
	KindReadonly
	KindNonOptional
	KindCustom
)

var kindNames = map[Kind]string{
	KindInvalid:         "invalid",
	KindObject:          "object",
	KindArray:           "array",
	KindUnion:           "union",
	KindPrimitive:       "primitive",
	KindEnum:            "enum",
	KindLiteral:         "literal",
	KindTemplateLiteral: "template-literal",
	KindNull:            "null",
	KindOptional:        "optional",
	KindNullable:        "nullable",
	KindDefault:         "default",
	KindEffect:          "effect",
	KindReadonly:        "readonly",
	KindNonOptional:     "non-optional",
	KindCustom:          "custom",
}

func (k Kind) String() string {
	name, ok := kindNames[k]
	if !ok {
		return "unknown"
	}

	return name
}

// IsWrapper reports whether nodes of this kind delegate to a single inner
// node without contributing a path segment.
func (k Kind) IsWrapper() bool {
	switch k {
	case KindOptional, KindNullable, KindDefault, KindEffect, KindReadonly, KindNonOptional:
		return true
	default:
		return false
	}
}

// Scalar is the primitive type hint attached to a leaf path.
type Scalar string

// Supported type hints.
const (
	StringHint  Scalar = "string"
	NumberHint  Scalar = "number"
	BooleanHint Scalar = "boolean"
	BigIntHint  Scalar = "bigint"
)

// Valid reports whether s is one of the supported type hints.
func (s Scalar) Valid() bool {
	switch s {
	case StringHint, NumberHint, BooleanHint, BigIntHint:
		return true
	default:
		return false
	}
}

// Node is a schema tree node.
type Node interface {
	Kind() Kind
}

// Field is a named child of an object node.
type Field struct {
	Name string
	Node Node
}

// ObjectNode is implemented by KindObject nodes.
type ObjectNode interface {
	Node
	Fields() []Field
}

// ArrayNode is implemented by KindArray nodes.
type ArrayNode interface {
	Node
	Element() Node
}

// UnionNode is implemented by KindUnion nodes.
type UnionNode interface {
	Node
	Options() []Node
}

// WrapperNode is implemented by wrapper kinds (see Kind.IsWrapper).
type WrapperNode interface {
	Node
	Inner() Node
}

// ScalarNode is implemented by KindPrimitive, KindEnum and KindTemplateLiteral nodes.
type ScalarNode interface {
	Node
	Scalar() Scalar
}

// LiteralNode is implemented by KindLiteral nodes. Values holds the allowed
// alternatives; nil stands for null/undefined.
type LiteralNode interface {
	Node
	Values() []any
}

// DescribedNode may be implemented by KindCustom nodes to report a generic
// type classification such as "string", "number" or "boolean".
type DescribedNode interface {
	Node
	Describe() string
}
