package openapi

import (
	"net/http"
	"runtime"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-home-admin/apidoc/parser"
	"github.com/sirupsen/logrus"
)

// Builder turns endpoints into operations and whole projects into documents.
type Builder struct {
	// Logger receives the malformed-declaration warnings; nil means the
	// logrus standard logger.
	Logger logrus.FieldLogger
	// Workers limits concurrent endpoint resolution in Build; <= 0 means
	// runtime.NumCPU().
	Workers int
}

func NewBuilder() *Builder {
	return &Builder{
		Logger:  logrus.StandardLogger(),
		Workers: runtime.NumCPU(),
	}
}

func (b *Builder) log() logrus.FieldLogger {
	if b.Logger == nil {
		return logrus.StandardLogger()
	}
	return b.Logger
}

// SchemaName 组件名: 角色 + 路径, "/" 换成 "_" 后转大驼峰
func SchemaName(role, path string) string {
	return parser.StringToUpperCamel(role + strings.ReplaceAll(path, "/", "_"))
}

// Operation builds the operation for one endpoint together with the named
// schemas it contributes to the component registry (zero, one or two).
func (b *Builder) Operation(e Endpoint) (*openapi3.Operation, map[string]*openapi3.Schema) {
	path := e.URLPath()
	operation := &openapi3.Operation{
		OperationID: path,
		Tags:        []string{endpointTag(e)},
	}
	schemas := make(map[string]*openapi3.Schema)

	declaration, ok := ParseDeclaration(b.log(), path, e.Declaration())
	if !ok {
		return operation, schemas
	}

	if description := declaration.Get("description"); !description.IsAbsent() {
		if s, ok := description.Str(); ok {
			operation.Description = s
		} else {
			b.log().WithField("path", path).Warn("declaration.description must be a string")
		}
	}

	if response, schema, ok := Response(declaration); ok {
		operation.Responses = openapi3.NewResponses(
			openapi3.WithStatus(http.StatusOK, &openapi3.ResponseRef{Value: response}),
		)
		schemas[SchemaName("Response", path)] = schema
	}

	switch e.Method() {
	case MethodGet:
		if params, ok := QueryParameters(declaration); ok {
			for _, param := range params {
				operation.AddParameter(param)
			}
		}
	case MethodPost:
		if body, schema, ok := RequestBody(declaration); ok {
			operation.RequestBody = &openapi3.RequestBodyRef{Value: body}
			schemas[SchemaName("Post", path)] = schema
		}
	}

	if headers, ok := HeaderParameters(declaration); ok {
		for _, param := range headers {
			operation.AddParameter(param)
		}
	}

	return operation, schemas
}
