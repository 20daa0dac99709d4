package endpoint

import (
	"testing"

	"github.com/go-home-admin/apidoc/openapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	for in, want := range map[string]openapi.Method{
		"get":    openapi.MethodGet,
		"GET":    openapi.MethodGet,
		" Post ": openapi.MethodPost,
	} {
		got, err := ParseMethod(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseMethod("delete")
	assert.Error(t, err)
	_, err = ParseMethod("")
	assert.Error(t, err)
}

func TestProject(t *testing.T) {
	p := NewProject("", "1.0.0", []*Endpoint{
		NewEndpoint("/a", openapi.MethodGet, "", nil),
	})
	p.Append(NewEndpoint("/b", openapi.MethodPost, "admin", nil))

	p.Fill("demo", "9.9.9")
	assert.Equal(t, "demo", p.Title())
	assert.Equal(t, "1.0.0", p.Version())

	p.Override("", "2.0.0")
	assert.Equal(t, "demo", p.Title())
	assert.Equal(t, "2.0.0", p.Version())

	endpoints := p.Endpoints()
	require.Len(t, endpoints, 2)
	assert.Equal(t, "/a", endpoints[0].URLPath())
	assert.Equal(t, openapi.MethodPost, endpoints[1].Method())
	assert.Equal(t, "admin", endpoints[1].Tag())
	assert.Nil(t, endpoints[1].Declaration())
}
