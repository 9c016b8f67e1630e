package gazelle_test

import (
	"net/http"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbrattli/gazelle"
)

var assets = fstest.MapFS{
	"index.html":   {Data: []byte("<html><body>hi</body></html>")},
	"css/site.css": {Data: []byte("body { margin: 0 }")},
}

func TestFile(t *testing.T) {
	t.Parallel()

	c := newCtx(http.MethodGet, "/")
	out, err := gazelle.File(assets, "index.html")(c, gazelle.Finish)
	require.NoError(t, err)

	assert.Equal(t, gazelle.Handled, out)
	assert.Contains(t, c.Response.ContentType(), "text/html")
	assert.Equal(t, "<html><body>hi</body></html>", string(c.Response.Body()))
}

func TestFile_missing_is_terminal_404(t *testing.T) {
	t.Parallel()

	c := newCtx(http.MethodGet, "/")
	out, err := gazelle.File(assets, "nope.html")(c, gazelle.Finish)
	require.NoError(t, err)

	// A missing file ends the response with 404; it does not fall through.
	assert.Equal(t, gazelle.Handled, out)
	assert.Equal(t, http.StatusNotFound, c.Response.Status())
}

func TestFiles_under_subroute(t *testing.T) {
	t.Parallel()

	h := gazelle.SubRoute("/static", gazelle.Files(assets))

	c := newCtx(http.MethodGet, "/static/css/site.css")
	out, err := h(c, gazelle.Finish)
	require.NoError(t, err)

	assert.Equal(t, gazelle.Handled, out)
	assert.Contains(t, c.Response.ContentType(), "text/css")
	assert.Equal(t, "body { margin: 0 }", string(c.Response.Body()))
}

func TestFiles_missing_declines(t *testing.T) {
	t.Parallel()

	h := gazelle.Choose(
		gazelle.SubRoute("/static", gazelle.Files(assets)),
		gazelle.Chain(gazelle.SetStatus(http.StatusNotFound), gazelle.Text("Not found")),
	)

	c := newCtx(http.MethodGet, "/static/nope.css")
	out, err := h(c, gazelle.Finish)
	require.NoError(t, err)

	assert.Equal(t, gazelle.Handled, out)
	assert.Equal(t, http.StatusNotFound, c.Response.Status())
	assert.Equal(t, "Not found", string(c.Response.Body()))
}

func TestFiles_rejects_traversal(t *testing.T) {
	t.Parallel()

	h := gazelle.SubRoute("/static", gazelle.Files(assets))

	c := newCtx(http.MethodGet, "/static/../go.mod")
	out, err := h(c, gazelle.Finish)
	require.NoError(t, err)
	assert.Equal(t, gazelle.NotHandled, out)
}
