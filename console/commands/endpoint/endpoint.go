package endpoint

import (
	"fmt"
	"strings"

	"github.com/go-home-admin/apidoc/openapi"
)

// Endpoint 一个已注册的接口
type Endpoint struct {
	path        string
	method      openapi.Method
	tag         string
	declaration *string
}

func NewEndpoint(path string, method openapi.Method, tag string, declaration *string) *Endpoint {
	return &Endpoint{
		path:        path,
		method:      method,
		tag:         tag,
		declaration: declaration,
	}
}

func (e *Endpoint) URLPath() string {
	return e.path
}

func (e *Endpoint) Method() openapi.Method {
	return e.method
}

func (e *Endpoint) Tag() string {
	return e.tag
}

func (e *Endpoint) Declaration() *string {
	return e.declaration
}

// ParseMethod 不区分大小写, 只支持 get 和 post
func ParseMethod(s string) (openapi.Method, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(openapi.MethodGet):
		return openapi.MethodGet, nil
	case string(openapi.MethodPost):
		return openapi.MethodPost, nil
	default:
		return "", fmt.Errorf("unsupported method %q", s)
	}
}

// Project 接口集合, 实现 openapi.Project
type Project struct {
	title     string
	version   string
	endpoints []*Endpoint
}

func NewProject(title, version string, endpoints []*Endpoint) *Project {
	return &Project{
		title:     title,
		version:   version,
		endpoints: endpoints,
	}
}

func (p *Project) Title() string {
	return p.title
}

func (p *Project) Version() string {
	return p.version
}

func (p *Project) Endpoints() []openapi.Endpoint {
	got := make([]openapi.Endpoint, len(p.endpoints))
	for i, e := range p.endpoints {
		got[i] = e
	}
	return got
}

// Append 追加其他来源的接口
func (p *Project) Append(endpoints ...*Endpoint) {
	p.endpoints = append(p.endpoints, endpoints...)
}

// Fill 只填充为空的标题和版本
func (p *Project) Fill(title, version string) {
	if p.title == "" {
		p.title = title
	}
	if p.version == "" {
		p.version = version
	}
}

// Override 非空的标题和版本覆盖原值
func (p *Project) Override(title, version string) {
	if title != "" {
		p.title = title
	}
	if version != "" {
		p.version = version
	}
}
