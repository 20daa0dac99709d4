package openapi

import (
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFieldScalars(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"string", "{field: a, type: string}", openapi3.TypeString},
		{"timestamp", "{field: a, type: timestamp}", openapi3.TypeString},
		{"number", "{field: a, type: number}", openapi3.TypeNumber},
		{"integer", "{field: a, type: integer}", openapi3.TypeNumber},
		{"boolean", "{field: a, type: boolean}", openapi3.TypeBoolean},
		{"bool", "{field: a, type: bool}", openapi3.TypeBoolean},
		{"missing type", "{field: a}", openapi3.TypeString},
		{"non string type", "{field: a, type: 12}", openapi3.TypeString},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveField(mustField(t, tt.src))
			assert.False(t, got.IsArray())
			assert.True(t, got.Schema.Type.Is(tt.want), "got %v", got.Schema.Type)
			assert.Equal(t, "", got.Schema.Description)
		})
	}
}

func TestResolveFieldUnknownType(t *testing.T) {
	got := ResolveField(mustField(t, "{field: a, type: uuid, description: an id}"))

	assert.False(t, got.IsArray())
	assert.Nil(t, got.Schema.Type)
	assert.Equal(t, "an id", got.Schema.Description)
}

func TestResolveFieldDescription(t *testing.T) {
	got := ResolveField(mustField(t, "{field: a, description: [not, a, string]}"))
	assert.Equal(t, "", got.Schema.Description)

	got = ResolveField(mustField(t, "{field: a, type: integer, description: amount}"))
	assert.Equal(t, "amount", got.Schema.Description)
}

func TestResolveFieldEnum(t *testing.T) {
	got := ResolveField(mustField(t, "{field: a, type: string, enum: [a, b, c]}"))

	assert.True(t, got.Schema.Type.Is(openapi3.TypeString))
	assert.Equal(t, []interface{}{"a", "b", "c"}, got.Schema.Enum)
}

func TestResolveFieldEnumDropsNonStrings(t *testing.T) {
	got := ResolveField(mustField(t, "{field: a, enum: [a, 1, true, b]}"))
	assert.Equal(t, []interface{}{"a", "b"}, got.Schema.Enum)

	got = ResolveField(mustField(t, "{field: a, type: integer, enum: [a, b]}"))
	assert.Nil(t, got.Schema.Enum)
}

func TestResolveFieldObject(t *testing.T) {
	got := ResolveField(mustField(t, `
field: two
type: object
fields:
  - field: a
    type: string
  - field: b
    type: integer
    optional: true
  - type: boolean
    description: no name, dropped
`))

	require.False(t, got.IsArray())
	schema := got.Schema
	assert.True(t, schema.Type.Is(openapi3.TypeObject))
	require.Len(t, schema.Properties, 2)
	assert.True(t, schema.Properties["a"].Value.Type.Is(openapi3.TypeString))
	assert.True(t, schema.Properties["b"].Value.Type.Is(openapi3.TypeNumber))
	// optional: true 的字段进入 required, 其他字段不进入
	assert.Equal(t, []string{"b"}, schema.Required)
}

func TestResolveFieldObjectWithoutFields(t *testing.T) {
	got := ResolveField(mustField(t, "{field: two, type: object}"))

	assert.True(t, got.Schema.Type.Is(openapi3.TypeObject))
	assert.Empty(t, got.Schema.Properties)
	assert.Empty(t, got.Schema.Required)
}

func TestResolveFieldArray(t *testing.T) {
	got := ResolveField(mustField(t, `
field: three
type: array
description: list
items:
  type: integer
`))

	require.True(t, got.IsArray())
	assert.True(t, got.Schema.Type.Is(openapi3.TypeArray))
	assert.Equal(t, "list", got.Schema.Description)
	require.NotNil(t, got.Schema.Items)
	assert.True(t, got.Schema.Items.Value.Type.Is(openapi3.TypeNumber))
}

func TestResolveFieldArrayWithoutItems(t *testing.T) {
	got := ResolveField(mustField(t, "{field: three, type: array}"))

	require.True(t, got.IsArray())
	require.NotNil(t, got.Schema.Items)
	assert.Nil(t, got.Schema.Items.Value.Type)
	assert.Empty(t, got.Schema.Items.Value.Properties)
}

func TestResolveFieldNested(t *testing.T) {
	got := ResolveField(mustField(t, `
field: matrix
type: array
items:
  type: array
  items:
    type: object
    fields:
      - field: x
        type: number
      - field: tags
        type: array
        items:
          type: string
          enum: [red, green]
`))

	require.True(t, got.IsArray())
	inner := got.Schema.Items.Value
	require.True(t, inner.Type.Is(openapi3.TypeArray))
	object := inner.Items.Value
	require.True(t, object.Type.Is(openapi3.TypeObject))
	assert.True(t, object.Properties["x"].Value.Type.Is(openapi3.TypeNumber))
	tags := object.Properties["tags"].Value
	require.True(t, tags.Type.Is(openapi3.TypeArray))
	assert.Equal(t, []interface{}{"red", "green"}, tags.Items.Value.Enum)
}

func TestAppendField(t *testing.T) {
	object := openapi3.NewObjectSchema()
	object = AppendField(object, mustField(t, "{field: one, type: integer}"))
	object = AppendField(object, mustField(t, "{field: one, type: string}"))
	object = AppendField(object, mustField(t, "{type: string}"))
	object = AppendField(object, mustField(t, "{field: two, optional: false}"))

	require.Len(t, object.Properties, 2)
	assert.True(t, object.Properties["one"].Value.Type.Is(openapi3.TypeString))
	assert.Equal(t, []string{"one", "two"}, object.Required)
}
