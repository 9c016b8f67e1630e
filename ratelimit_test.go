package gazelle_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbrattli/gazelle"
)

func TestThrottle_allows_within_burst(t *testing.T) {
	t.Parallel()

	h := gazelle.Then(
		gazelle.Throttle(gazelle.ThrottleConfig{Rate: 1, Burst: 2}),
		gazelle.Text("ok"),
	)

	for range 2 {
		c := newCtx(http.MethodGet, "/")
		out, err := h(c, gazelle.Finish)
		require.NoError(t, err)
		assert.Equal(t, gazelle.Handled, out)
		assert.Equal(t, "ok", string(c.Response.Body()))
	}
}

func TestThrottle_over_limit_is_429(t *testing.T) {
	t.Parallel()

	h := gazelle.Then(
		gazelle.Throttle(gazelle.ThrottleConfig{Rate: 1, Burst: 1}),
		gazelle.Text("ok"),
	)

	c := newCtx(http.MethodGet, "/")
	_, err := h(c, gazelle.Finish)
	require.NoError(t, err)

	c = newCtx(http.MethodGet, "/")
	out, err := h(c, gazelle.Finish)
	require.NoError(t, err)

	assert.Equal(t, gazelle.Handled, out)
	assert.Equal(t, http.StatusTooManyRequests, c.Response.Status())
	assert.Equal(t, "1", c.Response.Header().Get("Retry-After"))
}

func TestThrottle_keys_are_independent(t *testing.T) {
	t.Parallel()

	h := gazelle.Then(
		gazelle.Throttle(gazelle.ThrottleConfig{
			Rate:    1,
			Burst:   1,
			KeyFunc: func(r *http.Request) string { return r.Header.Get("X-Key") },
		}),
		gazelle.Text("ok"),
	)

	exhaust := newCtx(http.MethodGet, "/")
	exhaust.Request.Header.Set("X-Key", "a")
	_, err := h(exhaust, gazelle.Finish)
	require.NoError(t, err)

	other := newCtx(http.MethodGet, "/")
	other.Request.Header.Set("X-Key", "b")
	out, err := h(other, gazelle.Finish)
	require.NoError(t, err)

	assert.Equal(t, gazelle.Handled, out)
	assert.Equal(t, "ok", string(other.Response.Body()))
}

func TestThrottle_custom_on_limit(t *testing.T) {
	t.Parallel()

	h := gazelle.Then(
		gazelle.Throttle(gazelle.ThrottleConfig{
			Rate:  1,
			Burst: 1,
			OnLimit: gazelle.Chain(
				gazelle.SetStatus(http.StatusServiceUnavailable),
				gazelle.Text("slow down"),
			),
		}),
		gazelle.Text("ok"),
	)

	_, err := h(newCtx(http.MethodGet, "/"), gazelle.Finish)
	require.NoError(t, err)

	c := newCtx(http.MethodGet, "/")
	out, err := h(c, gazelle.Finish)
	require.NoError(t, err)

	assert.Equal(t, gazelle.Handled, out)
	assert.Equal(t, http.StatusServiceUnavailable, c.Response.Status())
	assert.Equal(t, "slow down", string(c.Response.Body()))
}
