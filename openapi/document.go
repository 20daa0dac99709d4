package openapi

import (
	"context"
	"runtime"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// OpenAPIVersion 生成文档的 openapi 字段
const OpenAPIVersion = "3.0.3"

type builtEndpoint struct {
	endpoint  Endpoint
	operation *openapi3.Operation
	schemas   map[string]*openapi3.Schema
}

func (b *Builder) workers() int {
	if b.Workers <= 0 {
		return runtime.NumCPU()
	}
	return b.Workers
}

// Build resolves every endpoint of project and folds the results into one
// document. Endpoints are resolved concurrently and merged in the order the
// project lists them, so on a duplicate (path, method) or a colliding schema
// name the later endpoint wins; both cases are logged.
//
// The only error is the cancellation of ctx.
func (b *Builder) Build(ctx context.Context, project Project) (*openapi3.T, error) {
	endpoints := project.Endpoints()
	results := make([]builtEndpoint, len(endpoints))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers())
	for i, e := range endpoints {
		i, e := i, e
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			operation, schemas := b.Operation(e)
			results[i] = builtEndpoint{endpoint: e, operation: operation, schemas: schemas}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	doc := NewDocument(project.Title(), projectVersion(project))
	owners := make(map[string]string)
	for _, r := range results {
		b.merge(doc, r, owners)
	}
	return doc, nil
}

// NewDocument 空文档
func NewDocument(title, version string) *openapi3.T {
	return &openapi3.T{
		OpenAPI: OpenAPIVersion,
		Info: &openapi3.Info{
			Title:   title,
			Version: version,
		},
		Paths: openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas: make(openapi3.Schemas),
		},
	}
}

func (b *Builder) merge(doc *openapi3.T, r builtEndpoint, owners map[string]string) {
	path := r.endpoint.URLPath()
	method := string(r.endpoint.Method())
	if r.endpoint.Method() != MethodGet && r.endpoint.Method() != MethodPost {
		b.log().WithFields(logrus.Fields{
			"path":   path,
			"method": method,
		}).Warn("unsupported method, endpoint skipped")
		return
	}

	item := doc.Paths.Value(path)
	if item == nil {
		item = &openapi3.PathItem{}
		doc.Paths.Set(path, item)
	}
	if item.GetOperation(method) != nil {
		b.log().WithFields(logrus.Fields{
			"path":   path,
			"method": method,
		}).Warn("duplicate endpoint, the later declaration replaces the earlier one")
	}
	item.SetOperation(method, r.operation)

	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if owner, ok := owners[name]; ok {
			b.log().WithFields(logrus.Fields{
				"schema":   name,
				"previous": owner,
				"path":     path,
			}).Warn("schema name collision, the later schema replaces the earlier one")
		}
		owners[name] = path
		doc.Components.Schemas[name] = r.schemas[name].NewRef()
	}
}
