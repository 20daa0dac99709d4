package openapi

// DefaultTag 未指定 tag 的接口
const DefaultTag = "api"

// DefaultVersion 项目未提供版本号时使用
const DefaultVersion = "0.1.0"

// Method 声明支持的请求方式
type Method string

const (
	MethodGet  Method = "GET"
	MethodPost Method = "POST"
)

// Endpoint is one routed URL with an optional raw YAML declaration.
type Endpoint interface {
	URLPath() string
	Method() Method
	// Tag returns the operation tag; "" means DefaultTag.
	Tag() string
	// Declaration returns nil when the endpoint has no declaration.
	Declaration() *string
}

// Project supplies the document info and the endpoints to describe.
type Project interface {
	Title() string
	// Version returns the document version; "" means DefaultVersion.
	Version() string
	Endpoints() []Endpoint
}

func endpointTag(e Endpoint) string {
	if tag := e.Tag(); tag != "" {
		return tag
	}
	return DefaultTag
}

func projectVersion(p Project) string {
	if v := p.Version(); v != "" {
		return v
	}
	return DefaultVersion
}
