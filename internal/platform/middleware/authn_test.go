// Copyright (c) 2026 Tutoria. All rights reserved.

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutoria-app/tutoria/internal/platform/constants"
	"github.com/tutoria-app/tutoria/internal/platform/ctxutil"
	"github.com/tutoria-app/tutoria/internal/platform/middleware"
	"github.com/tutoria-app/tutoria/internal/platform/sec"
)

// stubDecoder accepts exactly one token string.
type stubDecoder struct {
	token    string
	identity *sec.Identity
}

func (d *stubDecoder) Decode(token string) (*sec.Identity, error) {
	if token == d.token {
		return d.identity, nil
	}
	return nil, sec.ErrTokenInvalid
}

// echoIdentity records what the downstream handler saw in context.
type echoIdentity struct {
	called   bool
	identity *sec.Identity
	token    string
}

func (e *echoIdentity) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	e.called = true
	e.identity = ctxutil.GetIdentity(request.Context())
	e.token = ctxutil.GetToken(request.Context())
	writer.WriteHeader(http.StatusOK)
}

func TestAuthenticate(t *testing.T) {
	decoder := &stubDecoder{token: "good-token", identity: &sec.Identity{ID: 7, Name: "alice"}}

	t.Run("no_cookie_proceeds_anonymously", func(t *testing.T) {
		downstream := &echoIdentity{}
		handler := middleware.Authenticate(decoder)(downstream)

		request := httptest.NewRequest(http.MethodGet, "/", nil)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.True(t, downstream.called)
		assert.Nil(t, downstream.identity)
		assert.Empty(t, downstream.token)
	})

	t.Run("valid_cookie_injects_identity_and_token", func(t *testing.T) {
		downstream := &echoIdentity{}
		handler := middleware.Authenticate(decoder)(downstream)

		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.AddCookie(&http.Cookie{Name: constants.AccessTokenCookieName, Value: "good-token"})
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		require.NotNil(t, downstream.identity)
		assert.Equal(t, int64(7), downstream.identity.ID)
		assert.Equal(t, "good-token", downstream.token)
	})

	t.Run("invalid_cookie_fails_the_request", func(t *testing.T) {
		downstream := &echoIdentity{}
		handler := middleware.Authenticate(decoder)(downstream)

		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.AddCookie(&http.Cookie{Name: constants.AccessTokenCookieName, Value: "bad-token"})
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.False(t, downstream.called)
	})
}

func TestRequireAuth(t *testing.T) {
	t.Run("anonymous_blocked", func(t *testing.T) {
		downstream := &echoIdentity{}
		handler := middleware.RequireAuth(downstream)

		request := httptest.NewRequest(http.MethodGet, "/", nil)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.False(t, downstream.called)
	})

	t.Run("authenticated_passes", func(t *testing.T) {
		downstream := &echoIdentity{}
		handler := middleware.RequireAuth(downstream)

		request := httptest.NewRequest(http.MethodGet, "/", nil)
		ctx := ctxutil.WithIdentity(request.Context(), &sec.Identity{ID: 7, Name: "alice"})
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request.WithContext(ctx))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.True(t, downstream.called)
	})
}
