package gazelle_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbrattli/gazelle"
)

type tenant struct {
	Name string
}

func TestContext_typed_values(t *testing.T) {
	t.Parallel()

	c := newCtx(http.MethodGet, "/")

	_, ok := gazelle.GetValue[tenant](c)
	assert.False(t, ok)

	gazelle.SetValue(c, tenant{Name: "acme"})

	got, ok := gazelle.GetValue[tenant](c)
	require.True(t, ok)
	assert.Equal(t, "acme", got.Name)
}

func TestContext_values_flow_through_chain(t *testing.T) {
	t.Parallel()

	setTenant := func(c *gazelle.Context, next gazelle.Next) (gazelle.Outcome, error) {
		gazelle.SetValue(c, tenant{Name: "acme"})
		return next(c)
	}

	h := gazelle.Chain(setTenant, gazelle.Lazy(func(c *gazelle.Context) gazelle.Handler {
		got, _ := gazelle.GetValue[tenant](c)
		return gazelle.Text(got.Name)
	}))

	c := newCtx(http.MethodGet, "/")
	out, err := h(c, gazelle.Finish)
	require.NoError(t, err)

	assert.Equal(t, gazelle.Handled, out)
	assert.Equal(t, "acme", string(c.Response.Body()))
}

func TestContext_path_starts_as_url_path(t *testing.T) {
	t.Parallel()

	c := newCtx(http.MethodGet, "/a/b?x=1")
	assert.Equal(t, "/a/b", c.Path())
}
