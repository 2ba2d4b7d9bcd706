// Copyright (c) 2026 Tutoria. All rights reserved.

package classifier

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tutoria-app/tutoria/internal/platform/apperr"
	requestutil "github.com/tutoria-app/tutoria/internal/platform/request"
	"github.com/tutoria-app/tutoria/internal/platform/respond"
	"github.com/tutoria-app/tutoria/internal/platform/sec"
	"github.com/tutoria-app/tutoria/internal/platform/validate"
	"github.com/tutoria-app/tutoria/internal/users/guard"
)

type Handler struct {
	service   *Service
	authGuard *guard.Guard
}

func NewHandler(service *Service, authGuard *guard.Guard) *Handler {
	return &Handler{
		service:   service,
		authGuard: authGuard,
	}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public reads
	router.Get("/{kind}", handler.listClassifiers)
	router.Get("/{kind}/{code}", handler.getClassifier)

	// Reference data is curated by moderators and admins only.
	router.Post("/{kind}", handler.addClassifier)
	router.Put("/{kind}/{code}", handler.editClassifier)
	router.Delete("/{kind}/{code}", handler.deleteClassifier)

	return router
}

// kindParam resolves the {kind} URL segment or reports a validation error.
func kindParam(request *http.Request) (Kind, error) {
	kind, err := ParseKind(requestutil.Param(request, "kind"))
	if err != nil {
		return "", apperr.ValidationError("Unknown classifier kind", apperr.FieldError{
			Field:   FieldKind,
			Message: "must be one of: theme, type, dist_type",
		})
	}
	return kind, nil
}

// langQuery reads the optional ?lang= query parameter. Zero means no
// translation lookup; display values come back empty.
func langQuery(request *http.Request) int {
	code, err := strconv.Atoi(request.URL.Query().Get("lang"))
	if err != nil || code < 0 {
		return 0
	}
	return code
}

func (handler *Handler) listClassifiers(writer http.ResponseWriter, request *http.Request) {
	kind, err := kindParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	entries, err := handler.service.ListByKind(request.Context(), kind, langQuery(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, entries)
}

func (handler *Handler) getClassifier(writer http.ResponseWriter, request *http.Request) {
	kind, err := kindParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	code, err := requestutil.IntParam(request, "code")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.service.GetClassifier(request.Context(), kind, int(code), langQuery(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, entry)
}

type classifierRequest struct {
	WordCode int `json:"word_code"`
}

func (input *classifierRequest) validate() error {
	v := &validate.Validator{}
	v.Positive(FieldWordCode, int64(input.WordCode))
	return v.Err()
}

func (handler *Handler) addClassifier(writer http.ResponseWriter, request *http.Request) {
	kind, err := kindParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if _, err := handler.authGuard.RequireRole(
		request.Context(), requestutil.Token(request), sec.CredentialModerator,
	); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input classifierRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if err := input.validate(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry := &Classifier{
		Kind:     kind,
		WordCode: input.WordCode,
	}
	if err := handler.service.AddClassifier(request.Context(), entry); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, entry)
}

func (handler *Handler) editClassifier(writer http.ResponseWriter, request *http.Request) {
	kind, err := kindParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	code, err := requestutil.IntParam(request, "code")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if _, err := handler.authGuard.RequireRole(
		request.Context(), requestutil.Token(request), sec.CredentialModerator,
	); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input classifierRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if err := input.validate(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry := &Classifier{
		Code:     int(code),
		Kind:     kind,
		WordCode: input.WordCode,
	}
	if err := handler.service.EditClassifier(request.Context(), entry); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entry)
}

func (handler *Handler) deleteClassifier(writer http.ResponseWriter, request *http.Request) {
	kind, err := kindParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	code, err := requestutil.IntParam(request, "code")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if _, err := handler.authGuard.RequireRole(
		request.Context(), requestutil.Token(request), sec.CredentialModerator,
	); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteClassifier(request.Context(), kind, int(code)); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
