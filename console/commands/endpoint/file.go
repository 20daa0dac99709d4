package endpoint

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-home-admin/apidoc/parser"
	"gopkg.in/yaml.v2"
)

type manifest struct {
	Title     string             `yaml:"title"`
	Version   string             `yaml:"version"`
	Endpoints []manifestEndpoint `yaml:"endpoints"`
}

type manifestEndpoint struct {
	Path   string `yaml:"path"`
	Method string `yaml:"method"`
	Tag    string `yaml:"tag"`
	// 字符串是原始声明; mapping 视为 declaration 的内容
	Declaration     interface{} `yaml:"declaration"`
	DeclarationFile string      `yaml:"declaration_file"`
}

// LoadManifest 读取接口清单文件, declaration_file 相对清单所在目录
func LoadManifest(file string) (*Project, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	m := manifest{}
	if err = yaml.Unmarshal(content, &m); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", file, err)
	}

	endpoints := make([]*Endpoint, 0, len(m.Endpoints))
	for i, me := range m.Endpoints {
		e, err := me.endpoint(filepath.Dir(file))
		if err != nil {
			return nil, fmt.Errorf("manifest %s: endpoints[%d]: %w", file, i, err)
		}
		endpoints = append(endpoints, e)
	}

	return NewProject(m.Title, m.Version, endpoints), nil
}

func (me manifestEndpoint) endpoint(base string) (*Endpoint, error) {
	if me.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	method, err := ParseMethod(me.Method)
	if err != nil {
		return nil, err
	}

	var declaration *string
	switch d := me.Declaration.(type) {
	case nil:
	case string:
		declaration = &d
	default:
		by, err := yaml.Marshal(map[string]interface{}{"declaration": d})
		if err != nil {
			return nil, err
		}
		s := string(by)
		declaration = &s
	}

	if me.DeclarationFile != "" {
		if declaration != nil {
			return nil, fmt.Errorf("%s: declaration and declaration_file are exclusive", me.Path)
		}
		file := me.DeclarationFile
		if !filepath.IsAbs(file) {
			file = filepath.Join(base, file)
		}
		by, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		s := string(by)
		declaration = &s
	}

	return NewEndpoint(me.Path, method, me.Tag, declaration), nil
}

type dirHeader struct {
	Path   string `yaml:"path"`
	Method string `yaml:"method"`
	Tag    string `yaml:"tag"`
}

// LoadDir 目录下每个 yaml 文件是一个接口, path/method/tag 与 declaration 同级,
// 整个文件内容作为原始声明
func LoadDir(dir string) ([]*Endpoint, error) {
	files, err := parser.LoadFiles(dir, ".yaml", ".yml")
	if err != nil {
		return nil, err
	}

	endpoints := make([]*Endpoint, 0, len(files))
	for _, f := range files {
		content, err := os.ReadFile(f.Path())
		if err != nil {
			return nil, err
		}
		h := dirHeader{}
		if err = yaml.Unmarshal(content, &h); err != nil {
			return nil, fmt.Errorf("%s: %w", f.Path(), err)
		}
		if h.Path == "" {
			return nil, fmt.Errorf("%s: path is required", f.Path())
		}
		method, err := ParseMethod(h.Method)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.Path(), err)
		}
		s := string(content)
		endpoints = append(endpoints, NewEndpoint(h.Path, method, h.Tag, &s))
	}

	return endpoints, nil
}
