// Copyright (c) 2026 Tutoria. All rights reserved.

package middleware

import (
	"net/http"

	"github.com/tutoria-app/tutoria/internal/platform/constants"
	"github.com/tutoria-app/tutoria/internal/platform/ctxutil"
	"github.com/tutoria-app/tutoria/internal/platform/respond"
	"github.com/tutoria-app/tutoria/internal/platform/sec"
)

// TokenDecoder defines the interface needed to verify session tokens in middleware.
//
// # Why an interface?
//
// Defining TokenDecoder here decouples the middleware from the concrete
// [sec.TokenCodec], allowing us to easily inject fakes during unit testing.
type TokenDecoder interface {
	Decode(token string) (*sec.Identity, error)
}

// Authenticate extracts and verifies the session token from the request cookie.
//
// # Flow
//  1. Read the 'access_token' cookie.
//  2. If absent, request proceeds as anonymous. This is the safe extraction
//     mode: pages that render differently for logged-out visitors rely on it.
//  3. If present, decode and verify the token via [TokenDecoder].
//  4. Inject the [*sec.Identity] and the raw token into the request context.
//
// An invalid or expired cookie fails the request here rather than proceeding
// anonymously: a client that presents a token expects to be logged in, and a
// silent downgrade would mask expiry from the user.
func Authenticate(decoder TokenDecoder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// ── 1. Anonymous Access ───────────────────────────────────────────
			token := sec.FromRequestSafe(request, constants.AccessTokenCookieName)
			if token == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Token Verification ─────────────────────────────────────────
			identity, err := decoder.Decode(token)
			if err != nil {
				respond.Error(writer, request, err)
				return
			}

			// ── 3. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithIdentity(request.Context(), identity)
			ctx = ctxutil.WithToken(ctx, token)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that are not authenticated.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
//
// # Flow
//  1. Check if a [*sec.Identity] exists in context.
//  2. If missing, abort with HTTP 401 Unauthorized.
//
// Role and ownership enforcement is not done here: those decisions need a
// fresh user-record lookup and belong to the guard layer.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		identity := ctxutil.GetIdentity(request.Context())
		if identity == nil {
			respond.Error(writer, request, sec.ErrTokenNotFound)
			return
		}
		next.ServeHTTP(writer, request)
	})
}
