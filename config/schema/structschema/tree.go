package structschema

import (
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/0xalexb/hjarta-config/config/schema"
)

var (
	durationType = reflect.TypeFor[time.Duration]()
	bytesType    = reflect.TypeFor[[]byte]()
)

type builder struct {
	tagName  string
	visiting []reflect.Type
}

func (b *builder) build(typ reflect.Type) schema.Node {
	switch typ {
	case durationType, timeType, bytesType:
		return schema.String()
	case bigIntType:
		return schema.BigInt()
	}

	switch typ.Kind() {
	case reflect.Pointer:
		return schema.Optional(b.build(typ.Elem()))
	case reflect.Struct:
		if slices.Contains(b.visiting, typ) {
			return schema.Custom(typ.String(), "")
		}

		b.visiting = append(b.visiting, typ)
		node := schema.Object(b.fields(typ)...)
		b.visiting = b.visiting[:len(b.visiting)-1]

		return node
	case reflect.Slice, reflect.Array:
		return schema.Array(b.build(typ.Elem()))
	case reflect.String:
		return schema.String()
	case reflect.Bool:
		return schema.Boolean()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return schema.Number()
	default:
		return schema.Custom(typ.String(), "")
	}
}

func (b *builder) fields(typ reflect.Type) []schema.Field {
	var fields []schema.Field

	for i := range typ.NumField() {
		field := typ.Field(i)

		name, squash, skip := b.fieldName(field)
		if skip {
			continue
		}

		if squash {
			if object, ok := b.build(field.Type).(*schema.ObjectType); ok {
				fields = append(fields, object.Fields()...)
			}

			continue
		}

		fields = append(fields, schema.Prop(name, b.build(field.Type)))
	}

	return fields
}

// fieldName mirrors how mapstructure names and squashes fields.
func (b *builder) fieldName(field reflect.StructField) (name string, squash, skip bool) {
	tag := field.Tag.Get(b.tagName)
	name, options, _ := strings.Cut(tag, ",")

	if name == "-" {
		return "", false, true
	}

	embeddedStruct := field.Anonymous && field.Type.Kind() == reflect.Struct
	if (embeddedStruct && name == "") || slices.Contains(strings.Split(options, ","), "squash") {
		return "", true, false
	}

	if !field.IsExported() {
		return "", false, true
	}

	if name == "" {
		name = field.Name
	}

	return name, false, false
}
