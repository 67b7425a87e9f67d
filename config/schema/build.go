package schema

// ObjectType is an object node with ordered fields.
type ObjectType struct {
	fields []Field
}

// Object creates an object node. Field order is preserved.
func Object(fields ...Field) *ObjectType {
	return &ObjectType{fields: fields}
}

// Prop creates an object field.
func Prop(name string, node Node) Field {
	return Field{Name: name, Node: node}
}

// Kind implements Node.
func (o *ObjectType) Kind() Kind { return KindObject }

// Fields returns the object fields in declaration order.
func (o *ObjectType) Fields() []Field { return o.fields }

// ArrayType is an array node.
type ArrayType struct {
	element Node
}

// Array creates an array node with the given element node.
func Array(element Node) *ArrayType {
	return &ArrayType{element: element}
}

// Kind implements Node.
func (a *ArrayType) Kind() Kind { return KindArray }

// Element returns the element node.
func (a *ArrayType) Element() Node { return a.element }

// UnionType is a union node.
type UnionType struct {
	options []Node
}

// Union creates a union of the given options.
func Union(options ...Node) *UnionType {
	return &UnionType{options: options}
}

// Kind implements Node.
func (u *UnionType) Kind() Kind { return KindUnion }

// Options returns the union branches in declaration order.
func (u *UnionType) Options() []Node { return u.options }

// ScalarType is a primitive, enum or template literal node.
type ScalarType struct {
	kind   Kind
	scalar Scalar
	values []string
}

// String creates a string primitive.
func String() *ScalarType { return &ScalarType{kind: KindPrimitive, scalar: StringHint} }

// Number creates a number primitive.
func Number() *ScalarType { return &ScalarType{kind: KindPrimitive, scalar: NumberHint} }

// Boolean creates a boolean primitive.
func Boolean() *ScalarType { return &ScalarType{kind: KindPrimitive, scalar: BooleanHint} }

// BigInt creates a bigint primitive.
func BigInt() *ScalarType { return &ScalarType{kind: KindPrimitive, scalar: BigIntHint} }

// Enum creates a string enumeration.
func Enum(values ...string) *ScalarType {
	return &ScalarType{kind: KindEnum, scalar: StringHint, values: values}
}

// TemplateLiteral creates a template literal node, which always carries strings.
func TemplateLiteral() *ScalarType {
	return &ScalarType{kind: KindTemplateLiteral, scalar: StringHint}
}

// Kind implements Node.
func (s *ScalarType) Kind() Kind { return s.kind }

// Scalar returns the type hint.
func (s *ScalarType) Scalar() Scalar { return s.scalar }

// EnumValues returns the enumeration members, if any.
func (s *ScalarType) EnumValues() []string { return s.values }

// LiteralType is a literal node.
type LiteralType struct {
	values []any
}

// Literal creates a literal node accepting any of values. A nil value stands
// for null/undefined.
func Literal(values ...any) *LiteralType {
	return &LiteralType{values: values}
}

// Kind implements Node.
func (l *LiteralType) Kind() Kind { return KindLiteral }

// Values returns the allowed values.
func (l *LiteralType) Values() []any { return l.values }

type nullType struct{}

func (nullType) Kind() Kind { return KindNull }

// Null creates a node that only admits null/undefined.
func Null() Node { return nullType{} }

// WrapperType delegates to an inner node.
type WrapperType struct {
	kind     Kind
	inner    Node
	defaults any
}

// Optional marks inner as optional.
func Optional(inner Node) *WrapperType { return &WrapperType{kind: KindOptional, inner: inner} }

// Nullable marks inner as nullable.
func Nullable(inner Node) *WrapperType { return &WrapperType{kind: KindNullable, inner: inner} }

// Default attaches a default value to inner.
func Default(inner Node, value any) *WrapperType {
	return &WrapperType{kind: KindDefault, inner: inner, defaults: value}
}

// Effect wraps inner in a transformation or pipe.
func Effect(inner Node) *WrapperType { return &WrapperType{kind: KindEffect, inner: inner} }

// Readonly marks inner as read-only.
func Readonly(inner Node) *WrapperType { return &WrapperType{kind: KindReadonly, inner: inner} }

// NonOptional marks inner as required.
func NonOptional(inner Node) *WrapperType { return &WrapperType{kind: KindNonOptional, inner: inner} }

// Kind implements Node.
func (w *WrapperType) Kind() Kind { return w.kind }

// Inner returns the wrapped node.
func (w *WrapperType) Inner() Node { return w.inner }

// DefaultValue returns the value attached by Default, or nil.
func (w *WrapperType) DefaultValue() any { return w.defaults }

// CustomType is an opaque node. Its description, if any, is used to infer a
// type hint.
type CustomType struct {
	name        string
	description string
}

// Custom creates an opaque node. description is a generic classification such
// as "string" or "number"; leave it empty when nothing is known.
func Custom(name, description string) *CustomType {
	return &CustomType{name: name, description: description}
}

// Kind implements Node.
func (c *CustomType) Kind() Kind { return KindCustom }

// Name returns the custom node name.
func (c *CustomType) Name() string { return c.name }

// Describe implements DescribedNode.
func (c *CustomType) Describe() string { return c.description }
