package jsonschema

import (
	"slices"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/0xalexb/hjarta-config/config/schema"
)

const anyName = "any"

type builder struct {
	document gjson.Result
	visiting []string
}

func buildTree(document []byte) (schema.Node, error) {
	if !gjson.ValidBytes(document) {
		return nil, ErrInvalidDocument
	}

	b := &builder{document: gjson.ParseBytes(document)}

	return b.build(b.document), nil
}

func (b *builder) build(value gjson.Result) schema.Node {
	if !value.IsObject() {
		// Boolean schemas and garbage accept anything.
		return schema.Custom(anyName, "")
	}

	if ref, ok := child(value, "$ref"); ok {
		return b.reference(ref.String())
	}

	node := b.base(value)

	if value.Get("nullable").Bool() {
		node = schema.Nullable(node)
	}

	if fallback := value.Get("default"); fallback.Exists() {
		node = schema.Default(node, fallback.Value())
	}

	if value.Get("readOnly").Bool() {
		node = schema.Readonly(node)
	}

	return node
}

func (b *builder) base(value gjson.Result) schema.Node {
	if enum := value.Get("enum"); enum.IsArray() {
		return enumNode(enum.Array())
	}

	if constant := value.Get("const"); constant.Exists() {
		return schema.Literal(constant.Value())
	}

	for _, keyword := range []string{"anyOf", "oneOf", "allOf"} {
		if branches := value.Get(keyword); branches.IsArray() {
			return schema.Union(b.buildAll(branches.Array())...)
		}
	}

	kind := value.Get("type")

	switch {
	case kind.IsArray():
		return b.typeList(value, kind.Array())
	case kind.Type == gjson.String:
		return b.typed(value, kind.String())
	case value.Get("properties").Exists():
		return b.typed(value, "object")
	case value.Get("items").Exists():
		return b.typed(value, "array")
	default:
		return schema.Custom(anyName, "")
	}
}

func (b *builder) typeList(value gjson.Result, kinds []gjson.Result) schema.Node {
	var (
		options  []schema.Node
		nullable bool
	)

	for _, kind := range kinds {
		if kind.String() == "null" {
			nullable = true

			continue
		}

		options = append(options, b.typed(value, kind.String()))
	}

	switch {
	case len(options) == 0 && nullable:
		return schema.Null()
	case len(options) == 0:
		return schema.Custom(anyName, "")
	case len(options) == 1 && nullable:
		return schema.Nullable(options[0])
	case nullable:
		return schema.Union(append(options, schema.Null())...)
	default:
		return schema.Union(options...)
	}
}

func (b *builder) typed(value gjson.Result, kind string) schema.Node {
	if value.Get("format").String() == "bigint" {
		switch kind {
		case "string", "integer", "number":
			return schema.BigInt()
		}
	}

	switch kind {
	case "object":
		return b.object(value)
	case "array":
		return b.array(value)
	case "string":
		return schema.String()
	case "number", "integer":
		return schema.Number()
	case "boolean":
		return schema.Boolean()
	case "null":
		return schema.Null()
	default:
		return schema.Custom(kind, "")
	}
}

func (b *builder) object(value gjson.Result) schema.Node {
	var required []string

	for _, name := range value.Get("required").Array() {
		required = append(required, name.String())
	}

	var fields []schema.Field

	value.Get("properties").ForEach(func(key, property gjson.Result) bool {
		node := b.build(property)
		if !slices.Contains(required, key.String()) {
			node = schema.Optional(node)
		}

		fields = append(fields, schema.Prop(key.String(), node))

		return true
	})

	return schema.Object(fields...)
}

func (b *builder) array(value gjson.Result) schema.Node {
	items := value.Get("items")

	switch {
	case items.IsArray():
		return schema.Array(schema.Union(b.buildAll(items.Array())...))
	case items.Exists():
		return schema.Array(b.build(items))
	default:
		return schema.Array(schema.Custom(anyName, ""))
	}
}

func (b *builder) buildAll(values []gjson.Result) []schema.Node {
	nodes := make([]schema.Node, 0, len(values))
	for _, value := range values {
		nodes = append(nodes, b.build(value))
	}

	return nodes
}

func (b *builder) reference(ref string) schema.Node {
	if slices.Contains(b.visiting, ref) {
		return schema.Custom(ref, "")
	}

	target, ok := b.resolve(ref)
	if !ok {
		return schema.Custom(ref, "")
	}

	b.visiting = append(b.visiting, ref)
	node := b.build(target)
	b.visiting = b.visiting[:len(b.visiting)-1]

	return node
}

// resolve follows a local JSON pointer such as "#/$defs/server".
func (b *builder) resolve(ref string) (gjson.Result, bool) {
	pointer, ok := strings.CutPrefix(ref, "#")
	if !ok {
		return gjson.Result{}, false
	}

	current := b.document

	for _, token := range strings.Split(strings.TrimPrefix(pointer, "/"), "/") {
		if token == "" {
			continue
		}

		token = strings.ReplaceAll(strings.ReplaceAll(token, "~1", "/"), "~0", "~")

		next, found := child(current, token)
		if !found {
			return gjson.Result{}, false
		}

		current = next
	}

	return current, true
}

func child(parent gjson.Result, token string) (gjson.Result, bool) {
	if parent.IsArray() {
		index, err := strconv.Atoi(token)
		if err != nil {
			return gjson.Result{}, false
		}

		elements := parent.Array()
		if index < 0 || index >= len(elements) {
			return gjson.Result{}, false
		}

		return elements[index], true
	}

	var (
		result gjson.Result
		found  bool
	)

	parent.ForEach(func(key, value gjson.Result) bool {
		if key.String() == token {
			result, found = value, true

			return false
		}

		return true
	})

	return result, found
}

func enumNode(members []gjson.Result) schema.Node {
	values := make([]any, 0, len(members))
	strs := make([]string, 0, len(members))

	for _, member := range members {
		values = append(values, member.Value())

		if member.Type == gjson.String {
			strs = append(strs, member.String())
		}
	}

	if len(strs) == len(members) && len(members) > 0 {
		return schema.Enum(strs...)
	}

	return schema.Literal(values...)
}
