// Copyright (c) 2026 Tutoria. All rights reserved.

package sec

import "github.com/tutoria-app/tutoria/internal/platform/apperr"

// # Error Taxonomy
//
// Authentication failures (identity cannot be established) are 401s with a
// distinct machine code per kind but a deliberately generic message: the API
// never reveals whether a user name exists or why exactly a token was
// rejected. Authorization failures (identity established, privilege lacking)
// are 403s. Handlers compare against these sentinels with errors.Is.

var (
	// ErrTokenNotFound is returned when a request carries no session cookie.
	ErrTokenNotFound = apperr.AuthFailure("TOKEN_NOT_FOUND", "Authentication required")

	// ErrTokenInvalid is returned for any signature mismatch, malformed
	// payload, or missing required claim.
	ErrTokenInvalid = apperr.AuthFailure("TOKEN_INVALID", "Invalid session token")

	// ErrTokenExpired is returned when the token's exp claim is in the past.
	ErrTokenExpired = apperr.AuthFailure("TOKEN_EXPIRED", "Session has expired")

	// ErrTokenCreation is returned when signing a new token fails.
	ErrTokenCreation = apperr.AuthFailure("TOKEN_CREATION_FAILED", "Could not create session token")

	// ErrIncorrectCredentials is returned for a failed login. The same value
	// covers both "no such user" and "wrong password" to prevent user
	// enumeration.
	ErrIncorrectCredentials = apperr.AuthFailure("INCORRECT_CREDENTIALS", "Incorrect user name or password")

	// ErrAccessDenied is returned when an authenticated user lacks the
	// privilege or ownership an operation requires.
	ErrAccessDenied = apperr.Forbidden("Access denied")
)
