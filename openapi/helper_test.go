package openapi

import (
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

type testEndpoint struct {
	path        string
	method      Method
	tag         string
	declaration *string
}

func (e testEndpoint) URLPath() string      { return e.path }
func (e testEndpoint) Method() Method       { return e.method }
func (e testEndpoint) Tag() string          { return e.tag }
func (e testEndpoint) Declaration() *string { return e.declaration }

type testProject struct {
	version   string
	endpoints []Endpoint
}

func (p testProject) Title() string         { return "Test" }
func (p testProject) Version() string       { return p.version }
func (p testProject) Endpoints() []Endpoint { return p.endpoints }

func decl(s string) *string {
	return &s
}

func newTestBuilder() (*Builder, *logtest.Hook) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return &Builder{Logger: logger, Workers: 4}, hook
}

// mustValue 解析测试用 yaml
func mustValue(t *testing.T, src string) Value {
	t.Helper()
	var tree interface{}
	require.NoError(t, yaml.Unmarshal([]byte(src), &tree))
	return NewValue(tree)
}

func mustField(t *testing.T, src string) FieldSpec {
	t.Helper()
	return NewFieldSpec(mustValue(t, src))
}
