// Copyright (c) 2026 Tutoria. All rights reserved.

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tutoria-app/tutoria/internal/platform/constants"
	"github.com/tutoria-app/tutoria/internal/platform/middleware"
	requestutil "github.com/tutoria-app/tutoria/internal/platform/request"
	"github.com/tutoria-app/tutoria/internal/platform/respond"
	"github.com/tutoria-app/tutoria/internal/platform/sec"
	"github.com/tutoria-app/tutoria/internal/platform/validate"
	"github.com/tutoria-app/tutoria/internal/users/auth"
	"github.com/tutoria-app/tutoria/internal/users/guard"
)

// Handler implements the HTTP layer for user account management.
type Handler struct {
	accountService *Service
	authGuard      *guard.Guard
}

// NewHandler constructs a new account [Handler].
func NewHandler(service *Service, authGuard *guard.Guard) *Handler {
	return &Handler{
		accountService: service,
		authGuard:      authGuard,
	}
}

// Routes returns a [chi.Router] configured with the account domain's endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Own profile shortcut, rejected up front without a session
	router.With(middleware.RequireAuth).Get("/me", handler.getMe)

	// Public profile discovery
	router.Get("/{id}", handler.getProfile)

	// Guarded mutations
	router.Put("/{id}", handler.updateProfile)
	router.Patch("/{id}/status", handler.updateStatus)
	router.Delete("/{id}", handler.deleteUser)

	return router
}

/*
GET /api/v1/users/me.

Description: Retrieves the profile of the authenticated user.

Response:
  - 200: Profile
  - 401: TOKEN_NOT_FOUND: Authentication required
*/
func (handler *Handler) getMe(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.accountService.GetProfile(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, profile)
}

/*
GET /api/v1/users/{id}.

Description: Retrieves a public profile. No authentication required.

Response:
  - 200: Profile
  - 404: NOT_FOUND: No such user
*/
func (handler *Handler) getProfile(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.accountService.GetProfile(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, profile)
}

// updateProfileRequest defines the expected JSON payload for profile updates.
type updateProfileRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

/*
PUT /api/v1/users/{id}.

Description: Replaces the account's name, email, and password. Authorized for
the account owner or an admin (self-or-role guard).

Response:
  - 200: User: The updated account
  - 401: Authentication failure (missing/expired/invalid token)
  - 403: ACCESS_DENIED: Neither the account owner nor an admin
*/
func (handler *Handler) updateProfile(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if _, err := handler.authGuard.RequireSelfOrRole(
		request.Context(), requestutil.Token(request), userID, sec.CredentialAdmin,
	); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateProfileRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	v := &validate.Validator{}
	v.Required(auth.FieldName, input.Name).
		MinLen(auth.FieldName, input.Name, 3).
		MaxLen(auth.FieldName, input.Name, 256).
		Required(auth.FieldEmail, input.Email).
		Email(auth.FieldEmail, input.Email).
		Required(auth.FieldPassword, input.Password).
		MinLen(auth.FieldPassword, input.Password, constants.MinPasswordLength)

	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.UpdateProfile(request.Context(), userID, UpdateProfileInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

// updateStatusRequest defines the admin-only status payload.
type updateStatusRequest struct {
	IsActive   bool   `json:"is_active"`
	Credential string `json:"credential"`
}

/*
PATCH /api/v1/users/{id}/status.

Description: Sets the account's activity flag and privilege tier. Admin only.
The target's new credential comes from the request, but the caller's own
privilege is always re-derived server-side from the token and a fresh lookup.

Response:
  - 200: Message: Status updated
  - 401: Authentication failure
  - 403: ACCESS_DENIED: Caller is not an admin
*/
func (handler *Handler) updateStatus(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if _, err := handler.authGuard.RequireRole(
		request.Context(), requestutil.Token(request), sec.CredentialAdmin,
	); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateStatusRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	credential, err := sec.ParseCredential(input.Credential)
	if err != nil {
		respond.Error(writer, request, validate.RequiredError(auth.FieldCredential, "Must be one of: user, moderator, admin"))
		return
	}

	if err := handler.accountService.UpdateStatus(request.Context(), userID, input.IsActive, credential); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{
		auth.FieldMessage: "User status updated",
	})
}

/*
DELETE /api/v1/users/{id}.

Description: Permanently removes the account. Authorized for the account
owner or an admin.

Response:
  - 204: No Content
  - 401: Authentication failure
  - 403: ACCESS_DENIED: Neither the account owner nor an admin
*/
func (handler *Handler) deleteUser(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if _, err := handler.authGuard.RequireSelfOrRole(
		request.Context(), requestutil.Token(request), userID, sec.CredentialAdmin,
	); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.accountService.Delete(request.Context(), userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
