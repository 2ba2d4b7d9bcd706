// Copyright (c) 2026 Tutoria. All rights reserved.

/*
Package auth provides the HTTP delivery layer for the session lifecycle.

It implements the gateway for registration, login, and logout.

# Architecture

The handler acts as a thin mediation layer between the web and domain services:
  - Protocol: JSON for registration; form-encoded login for browser clients.
  - Security: Issues the session cookie and validates its presence on logout.
  - Verification: Enforces strict input validation before passing to [Service].

This layer is strictly responsible for transport concerns (status codes, headers, cookies).
*/
package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tutoria-app/tutoria/internal/platform/constants"
	requestutil "github.com/tutoria-app/tutoria/internal/platform/request"
	"github.com/tutoria-app/tutoria/internal/platform/respond"
	"github.com/tutoria-app/tutoria/internal/platform/sec"
	"github.com/tutoria-app/tutoria/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements authentication-related HTTP endpoints.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] configured with authentication-specific routes.
//
// # Endpoints
//   - POST /register : Creates a new account.
//   - POST /login    : Authenticates and sets the session cookie.
//   - POST /logout   : Clears the session cookie.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/register", handler.register)
	router.Post("/login", handler.login)
	router.Post("/logout", handler.logout)

	return router
}

// # Request Payloads

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

/*
Register handles the creation of a new user account.

POST /api/v1/auth/register

Description: Validates input, checks for identity conflicts, and persists
a new user profile to the database.

Request:
  - Body: registerRequest (Name, Email, Password)

Response:
  - 201: User: Created user profile
  - 400: ErrInvalidJSON: Bad input or validation failure
  - 409: ErrConflict: Name or Email already exists
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).
		MinLen(FieldName, input.Name, 3).
		MaxLen(FieldName, input.Name, 256).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Required(FieldPassword, input.Password).
		MinLen(FieldPassword, input.Password, constants.MinPasswordLength)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.Register(request.Context(), RegisterInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	})

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, user)
}

/*
Login authenticates a user and establishes a stateless session.

POST /api/v1/auth/login

Description: Verifies the form-encoded credentials, encodes a signed session
token, and sets it as an httponly cookie whose Max-Age equals the token TTL.
Browser clients are redirected; the cookie is the whole session state.

Request:
  - Body: application/x-www-form-urlencoded (username, password)

Response:
  - 302: Redirect with the session cookie set
  - 401: INCORRECT_CREDENTIALS: Invalid name or password (indistinguishable)
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	if err := request.ParseForm(); err != nil {
		respond.Error(writer, request, validate.ErrInvalidForm)
		return
	}

	name := request.PostFormValue(FieldUsername)
	password := request.PostFormValue(FieldPassword)

	validator := &validate.Validator{}
	validator.Required(FieldUsername, name)
	validator.Required(FieldPassword, password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Login(request.Context(), LoginInput{
		Name:     name,
		Password: password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	http.SetCookie(writer, &http.Cookie{
		Name:     constants.AccessTokenCookieName,
		Value:    session.AccessToken,
		Path:     "/",
		MaxAge:   int(handler.authService.TokenTTL().Seconds()),
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	respond.Redirect(writer, request, "/api/v1/users/me", http.StatusFound)
}

/*
Logout terminates the current session by clearing the cookie.

POST /api/v1/auth/logout

Description: Fails when no session cookie is present; otherwise instructs the
client to drop it. The token itself remains valid until natural expiry,
which is a stated limitation of the stateless design.

Response:
  - 204: No Content: Cookie cleared
  - 401: TOKEN_NOT_FOUND: No session cookie present
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	_, err := sec.FromRequest(request, constants.AccessTokenCookieName)
	if err := handler.authService.Logout(err == nil); err != nil {
		respond.Error(writer, request, err)
		return
	}

	http.SetCookie(writer, &http.Cookie{
		Name:     constants.AccessTokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	respond.NoContent(writer)
}
