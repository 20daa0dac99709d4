package openapi

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// SchemaKind 解析结果是对象(包括标量)还是数组
type SchemaKind int

const (
	SchemaObject SchemaKind = iota
	SchemaArray
)

// Resolved is the outcome of resolving one field spec.
type Resolved struct {
	Kind   SchemaKind
	Schema *openapi3.Schema
}

func (r Resolved) IsArray() bool {
	return r.Kind == SchemaArray
}

// ResolveField turns a field spec into a schema node. It is total: every
// spec, however malformed, produces a schema.
func ResolveField(spec FieldSpec) Resolved {
	var schema *openapi3.Schema
	kind := SchemaObject

	switch spec.Type {
	case TypeString, TypeTimestamp:
		schema = openapi3.NewStringSchema()
		if spec.Enum != nil {
			enum := make([]interface{}, len(spec.Enum))
			for i, e := range spec.Enum {
				enum[i] = e
			}
			schema.Enum = enum
		}
	case TypeNumber, TypeInteger:
		schema = openapi3.NewFloat64Schema()
	case TypeBoolean, TypeBool:
		schema = openapi3.NewBoolSchema()
	case TypeObject:
		schema = openapi3.NewObjectSchema()
		for _, inner := range spec.Fields {
			if !inner.HasName {
				continue
			}
			schema.Properties[inner.Name] = ResolveField(inner).Schema.NewRef()
			// 注意: optional 为 true 时才加入 required
			if inner.Optional {
				addRequired(schema, inner.Name)
			}
		}
	case TypeArray:
		kind = SchemaArray
		schema = openapi3.NewArraySchema()
		if spec.Items != nil {
			schema.Items = ResolveField(*spec.Items).Schema.NewRef()
		} else {
			schema.Items = (&openapi3.Schema{}).NewRef()
		}
	default:
		schema = &openapi3.Schema{}
	}

	schema.Description = spec.Description
	return Resolved{Kind: kind, Schema: schema}
}

// AppendField resolves a declaration list entry and attaches it to object as
// a required property. Entries without a field name are skipped.
func AppendField(object *openapi3.Schema, spec FieldSpec) *openapi3.Schema {
	if !spec.HasName {
		return object
	}
	if object.Properties == nil {
		object.Properties = make(openapi3.Schemas)
	}

	object.Properties[spec.Name] = ResolveField(spec).Schema.NewRef()
	addRequired(object, spec.Name)
	return object
}

// ObjectOf 把一组字段声明合成一个对象
func ObjectOf(specs []FieldSpec) *openapi3.Schema {
	object := openapi3.NewObjectSchema()
	for _, spec := range specs {
		object = AppendField(object, spec)
	}
	return object
}

func addRequired(schema *openapi3.Schema, name string) {
	for _, s := range schema.Required {
		if s == name {
			return
		}
	}
	schema.Required = append(schema.Required, name)
}
