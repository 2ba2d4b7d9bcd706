// Copyright (c) 2026 Tutoria. All rights reserved.

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tutoria-app/tutoria/internal/platform/ctxutil"
	"github.com/tutoria-app/tutoria/internal/platform/sec"
	"github.com/tutoria-app/tutoria/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
IntParam retrieves a named URL parameter and parses it as a positive int64.

Returns:
  - int64: Parsed value
  - error: Validation error when the parameter is missing or not a positive integer
*/
func IntParam(request *http.Request, name string) (int64, error) {
	raw := chi.URLParam(request, name)
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return 0, validate.RequiredError(name, "Must be a positive integer")
	}
	return value, nil
}

/*
Token extracts the raw session token from the request context.

Returns an empty string if the request is anonymous.
*/
func Token(request *http.Request) string {
	return ctxutil.GetToken(request.Context())
}

/*
Identity extracts the authenticated user identity from the request context.

Returns nil if the request is not authenticated.
*/
func Identity(request *http.Request) *sec.Identity {
	return ctxutil.GetIdentity(request.Context())
}

/*
RequiredIdentity ensures the request is authenticated and returns the identity.

Returns:
  - *sec.Identity: The authenticated user identity
  - error: sec.ErrTokenNotFound if the request carries no session token
*/
func RequiredIdentity(request *http.Request) (*sec.Identity, error) {

	// Get the identity decoded by the Authenticate middleware
	identity := ctxutil.GetIdentity(request.Context())

	// If the user is not authenticated, return an error
	if identity == nil {
		return nil, sec.ErrTokenNotFound
	}

	return identity, nil
}

/*
RequiredUserID returns the user ID of the currently logged-in user.

Returns:
  - int64: User ID
  - error: sec.ErrTokenNotFound if not authenticated
*/
func RequiredUserID(request *http.Request) (int64, error) {

	// Get the identity
	identity, err := RequiredIdentity(request)

	// If the user is not authenticated, return an error
	if err != nil {
		return 0, err
	}

	return identity.ID, nil
}
