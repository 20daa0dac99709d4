package openapi

// FieldType 声明里 type 的取值
type FieldType string

const (
	TypeString    FieldType = "string"
	TypeTimestamp FieldType = "timestamp"
	TypeNumber    FieldType = "number"
	TypeInteger   FieldType = "integer"
	TypeBoolean   FieldType = "boolean"
	TypeBool      FieldType = "bool"
	TypeObject    FieldType = "object"
	TypeArray     FieldType = "array"
)

// FieldSpec is one entry of a declaration list with every default filled in.
//
// Defaults: a missing or non-string type is TypeString, a missing or
// non-string description is "", optional is false unless it is the boolean
// true. An unrecognised type string is kept as-is and resolves to an untyped
// schema.
type FieldSpec struct {
	Name        string
	HasName     bool
	Type        FieldType
	Description string
	Enum        []string
	Fields      []FieldSpec
	Items       *FieldSpec
	Optional    bool
}

// NewFieldSpec 读取一个字段声明, 所有缺省值都在这里补齐
func NewFieldSpec(v Value) FieldSpec {
	spec := FieldSpec{
		Type:        TypeString,
		Description: v.Get("description").StrOr(""),
	}
	spec.Name, spec.HasName = v.Get("field").Str()

	if ty, ok := v.Get("type").Str(); ok {
		spec.Type = FieldType(ty)
	}

	if optional, ok := v.Get("optional").Bool(); ok {
		spec.Optional = optional
	}

	if enum, ok := v.Get("enum").Sequence(); ok {
		spec.Enum = make([]string, 0, len(enum))
		for _, e := range enum {
			if s, ok := e.Str(); ok {
				spec.Enum = append(spec.Enum, s)
			}
		}
	}

	if fields, ok := v.Get("fields").Sequence(); ok {
		spec.Fields = NewFieldSpecs(fields)
	}

	if items := v.Get("items"); !items.IsAbsent() {
		item := NewFieldSpec(items)
		spec.Items = &item
	}

	return spec
}

func NewFieldSpecs(list []Value) []FieldSpec {
	got := make([]FieldSpec, 0, len(list))
	for _, v := range list {
		got = append(got, NewFieldSpec(v))
	}
	return got
}
