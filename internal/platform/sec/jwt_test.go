// Copyright (c) 2026 Tutoria. All rights reserved.

package sec_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutoria-app/tutoria/internal/platform/constants"
	"github.com/tutoria-app/tutoria/internal/platform/sec"
)

func newTestCodec(t *testing.T) *sec.TokenCodec {
	t.Helper()
	codec, err := sec.NewTokenCodec("test-secret-key-for-tests-only", constants.AuthIssuer)
	require.NoError(t, err)
	return codec
}

/*
TestTokenCodec_RoundTrip verifies that an encoded identity decodes back
unchanged.
*/
func TestTokenCodec_RoundTrip(t *testing.T) {
	codec := newTestCodec(t)
	identity := sec.Identity{ID: 42, Name: "John"}

	token, err := codec.Encode(identity, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	decoded, err := codec.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, identity.ID, decoded.ID)
	assert.Equal(t, identity.Name, decoded.Name)
}

/*
TestTokenCodec_EmptySecret verifies the codec refuses to start without a
signing secret.
*/
func TestTokenCodec_EmptySecret(t *testing.T) {
	_, err := sec.NewTokenCodec("", constants.AuthIssuer)
	assert.Error(t, err)
}

/*
TestTokenCodec_IncompleteIdentity verifies that encoding fails closed on a
missing user id or name.
*/
func TestTokenCodec_IncompleteIdentity(t *testing.T) {
	codec := newTestCodec(t)

	_, err := codec.Encode(sec.Identity{ID: 0, Name: "John"}, time.Hour)
	assert.ErrorIs(t, err, sec.ErrTokenCreation)

	_, err = codec.Encode(sec.Identity{ID: 42, Name: ""}, time.Hour)
	assert.ErrorIs(t, err, sec.ErrTokenCreation)
}

/*
TestTokenCodec_Expired verifies that an expired token surfaces distinctly
from a tampered one.
*/
func TestTokenCodec_Expired(t *testing.T) {
	codec := newTestCodec(t)

	token, err := codec.Encode(sec.Identity{ID: 42, Name: "John"}, -time.Minute)
	require.NoError(t, err)

	_, err = codec.Decode(token)
	assert.ErrorIs(t, err, sec.ErrTokenExpired)
}

/*
TestTokenCodec_Tampered verifies that signature or payload manipulation is
rejected as invalid.
*/
func TestTokenCodec_Tampered(t *testing.T) {
	codec := newTestCodec(t)

	token, err := codec.Encode(sec.Identity{ID: 42, Name: "John"}, time.Hour)
	require.NoError(t, err)

	// Flip a character near the end of the signature.
	tampered := token[:len(token)-2] + "xx"
	_, err = codec.Decode(tampered)
	assert.ErrorIs(t, err, sec.ErrTokenInvalid)

	_, err = codec.Decode("not.a.token")
	assert.ErrorIs(t, err, sec.ErrTokenInvalid)

	_, err = codec.Decode("")
	assert.ErrorIs(t, err, sec.ErrTokenInvalid)
}

/*
TestTokenCodec_WrongSecret verifies that a token signed with another secret
does not verify.
*/
func TestTokenCodec_WrongSecret(t *testing.T) {
	codec := newTestCodec(t)
	otherCodec, err := sec.NewTokenCodec("a-different-secret-entirely", constants.AuthIssuer)
	require.NoError(t, err)

	token, err := otherCodec.Encode(sec.Identity{ID: 42, Name: "John"}, time.Hour)
	require.NoError(t, err)

	_, err = codec.Decode(token)
	assert.ErrorIs(t, err, sec.ErrTokenInvalid)
}

/*
TestFromRequest verifies cookie extraction and its safe variant.
*/
func TestFromRequest(t *testing.T) {
	t.Run("missing_cookie", func(t *testing.T) {
		request, _ := http.NewRequest(http.MethodGet, "/", nil)

		_, err := sec.FromRequest(request, constants.AccessTokenCookieName)
		assert.ErrorIs(t, err, sec.ErrTokenNotFound)
		assert.Empty(t, sec.FromRequestSafe(request, constants.AccessTokenCookieName))
	})

	t.Run("present_cookie", func(t *testing.T) {
		request, _ := http.NewRequest(http.MethodGet, "/", nil)
		request.AddCookie(&http.Cookie{Name: constants.AccessTokenCookieName, Value: "raw-token"})

		token, err := sec.FromRequest(request, constants.AccessTokenCookieName)
		require.NoError(t, err)
		assert.Equal(t, "raw-token", token)
		assert.Equal(t, "raw-token", sec.FromRequestSafe(request, constants.AccessTokenCookieName))
	})

	t.Run("empty_cookie_value", func(t *testing.T) {
		request, _ := http.NewRequest(http.MethodGet, "/", nil)
		request.AddCookie(&http.Cookie{Name: constants.AccessTokenCookieName, Value: ""})

		_, err := sec.FromRequest(request, constants.AccessTokenCookieName)
		assert.ErrorIs(t, err, sec.ErrTokenNotFound)
	})
}
