// Copyright (c) 2026 Tutoria. All rights reserved.

// Package sec provides cryptographic primitives and session token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, Token Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer. Token encode/verify is pure and side-effect-free; the
// signing secret and TTL are process-wide immutable configuration.
package sec

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the user identity claim carried inside a session token.
//
// It is ephemeral: reconstructed per request from the token and never cached
// server-side. Holding a valid Identity proves authentication only — every
// privilege decision still requires a fresh user-record lookup.
type Identity struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// AccessClaims is the payload embedded inside a session token.
//
// # Wire Format
//
// The decoded JSON claims are {"sub": <user name>, "uid": <user id>,
// "exp": <unix timestamp>} plus standard issuer/issued-at metadata.
type AccessClaims struct {
	jwt.RegisteredClaims

	// UserID is abbreviated to keep the token payload small.
	UserID int64 `json:"uid"`
}

// TokenCodec handles generation and verification of session tokens using a
// symmetric MAC (HS256).
type TokenCodec struct {
	secret []byte
	issuer string
}

// NewTokenCodec creates a new TokenCodec signing with the given shared secret.
func NewTokenCodec(secret, issuer string) (*TokenCodec, error) {
	if secret == "" {
		return nil, fmt.Errorf("sec: token secret must not be empty")
	}
	return &TokenCodec{
		secret: []byte(secret),
		issuer: issuer,
	}, nil
}

// Encode creates a signed session token for the given identity, expiring
// after timeToLive.
//
// It fails with [ErrTokenCreation] if the identity is incomplete or signing
// fails.
func (codec *TokenCodec) Encode(identity Identity, timeToLive time.Duration) (string, error) {
	if identity.ID == 0 || identity.Name == "" {
		return "", ErrTokenCreation
	}

	currentTime := time.Now()
	claims := AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Name,
			Issuer:    codec.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
		UserID: identity.ID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(codec.secret)
	if err != nil {
		return "", ErrTokenCreation
	}

	return signedToken, nil
}

// Decode verifies the signature and expiry of a session token and returns
// the embedded [Identity].
//
// # Failure Modes
//   - [ErrTokenExpired] when the exp claim is in the past.
//   - [ErrTokenInvalid] for any signature mismatch, malformed payload, or
//     missing required claim (subject, user id).
//
// Decoding and verification are atomic: an unverified payload is never
// partially trusted.
func (codec *TokenCodec) Decode(tokenString string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return codec.secret, nil
	})

	if err != nil {
		// The library folds expiry into the validation error chain; expired
		// tokens must surface distinctly from tampered ones.
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*AccessClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	if claims.Subject == "" || claims.UserID == 0 {
		return nil, ErrTokenInvalid
	}

	return &Identity{
		ID:   claims.UserID,
		Name: claims.Subject,
	}, nil
}

// FromRequest reads the raw session token from the request's session cookie.
// It fails with [ErrTokenNotFound] when the cookie is absent or empty.
func FromRequest(request *http.Request, cookieName string) (string, error) {
	cookie, err := request.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return "", ErrTokenNotFound
	}
	return cookie.Value, nil
}

// FromRequestSafe reads the raw session token from the request's session
// cookie, returning the empty string when it is absent.
//
// It exists for pages that render differently for logged-out visitors: the
// caller treats an empty token as an anonymous request instead of erroring.
func FromRequestSafe(request *http.Request, cookieName string) string {
	cookie, err := request.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
