package openapi

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// QueryParameters builds the query parameters listed under allowlist.query.
// Query values reach the server undecoded, so every parameter is a string
// whatever type the declaration gives it.
func QueryParameters(declaration Value) ([]*openapi3.Parameter, bool) {
	return allowlistParameters(declaration, "query", openapi3.ParameterInQuery)
}

// HeaderParameters builds the header parameters listed under allowlist.headers.
func HeaderParameters(declaration Value) ([]*openapi3.Parameter, bool) {
	return allowlistParameters(declaration, "headers", openapi3.ParameterInHeader)
}

func allowlistParameters(declaration Value, section, in string) ([]*openapi3.Parameter, bool) {
	list, ok := declaration.Path("allowlist", section).Sequence()
	if !ok {
		return nil, false
	}

	got := make([]*openapi3.Parameter, 0, len(list))
	for _, item := range list {
		name, ok := item.Get("field").Str()
		if !ok {
			continue
		}
		got = append(got, &openapi3.Parameter{
			Name:        name,
			In:          in,
			Description: item.Get("description").StrOr(""),
			Required:    true,
			Schema:      openapi3.NewStringSchema().NewRef(),
		})
	}
	return got, true
}

// RequestBody builds the JSON request body from allowlist.body. The returned
// schema is the body object itself, for the component registry.
func RequestBody(declaration Value) (*openapi3.RequestBody, *openapi3.Schema, bool) {
	list, ok := declaration.Path("allowlist", "body").Sequence()
	if !ok {
		return nil, nil, false
	}

	schema := ObjectOf(NewFieldSpecs(list))
	body := openapi3.NewRequestBody().
		WithRequired(true).
		WithJSONSchema(schema)
	return body, schema, true
}

// Response builds the 200 response from response.fields. Every response is a
// JSON list of the declared object; an empty field list means no response.
func Response(declaration Value) (*openapi3.Response, *openapi3.Schema, bool) {
	list, ok := declaration.Path("response", "fields").Sequence()
	if !ok || len(list) == 0 {
		return nil, nil, false
	}

	schema := ObjectOf(NewFieldSpecs(list))
	response := openapi3.NewResponse().
		WithDescription("").
		WithJSONSchema(openapi3.NewArraySchema().WithItems(schema))
	return response, schema, true
}
