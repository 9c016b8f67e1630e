package gazelle_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbrattli/gazelle"
)

func TestError(t *testing.T) {
	t.Parallel()

	err := gazelle.Error(http.StatusNotFound, "not found")
	assert.EqualError(t, err, "not found")

	var sc gazelle.StatusCoder
	require.ErrorAs(t, err, &sc)
	assert.Equal(t, http.StatusNotFound, sc.StatusCode())
}

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := gazelle.Errorf(http.StatusBadRequest, "invalid %s", "email")
	assert.EqualError(t, err, "invalid email")
}

func TestErrorStatus(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err    error
		expect int
	}{
		"with StatusCoder": {
			err:    gazelle.Error(http.StatusForbidden, "forbidden"),
			expect: http.StatusForbidden,
		},
		"without StatusCoder": {
			err:    errors.New("plain error"),
			expect: http.StatusInternalServerError,
		},
		"bind error": {
			err:    &gazelle.BindError{Kind: gazelle.ErrBindBody, Err: errors.New("bad json")},
			expect: http.StatusBadRequest,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expect, gazelle.ErrorStatus(tc.err))
		})
	}
}

func TestBindError_unwraps_kind_and_cause(t *testing.T) {
	t.Parallel()

	cause := errors.New("unexpected EOF")
	err := &gazelle.BindError{Kind: gazelle.ErrBindBody, Err: cause}

	assert.ErrorIs(t, err, gazelle.ErrBindBody)
	assert.ErrorIs(t, err, cause)
	assert.EqualError(t, err, "bind body: unexpected EOF")
}
