// Copyright (c) 2026 Tutoria. All rights reserved.

package language

import (
	"net/http"

	"github.com/go-chi/chi/v5"

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
	router.Get("/", handler.listLanguages)
	router.Get("/ui", handler.listUILanguages)
	router.Get("/{abbreviation}", handler.getLanguage)

	// Reference data is curated by moderators and admins only.
	router.Post("/", handler.addLanguage)
	router.Put("/{code}", handler.editLanguage)
	router.Delete("/{code}", handler.deleteLanguage)

	return router
}

func (handler *Handler) listLanguages(writer http.ResponseWriter, request *http.Request) {
	languages, err := handler.service.ListLanguages(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, languages)
}

func (handler *Handler) listUILanguages(writer http.ResponseWriter, request *http.Request) {
	languages, err := handler.service.ListUILanguages(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, languages)
}

func (handler *Handler) getLanguage(writer http.ResponseWriter, request *http.Request) {
	abbreviation := requestutil.Param(request, "abbreviation")

	lang, err := handler.service.GetLanguage(request.Context(), abbreviation)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, lang)
}

type languageRequest struct {
	Abbreviation string `json:"abbreviation"`
	Value        string `json:"value"`
	IsUILang     bool   `json:"is_ui_lang"`
}

func (input *languageRequest) validate() error {
	v := &validate.Validator{}
	v.Required(FieldAbbreviation, input.Abbreviation).
		MinLen(FieldAbbreviation, input.Abbreviation, 2).
		MaxLen(FieldAbbreviation, input.Abbreviation, 3).
		Required(FieldValue, input.Value).
		MaxLen(FieldValue, input.Value, 100)
	return v.Err()
}

func (handler *Handler) addLanguage(writer http.ResponseWriter, request *http.Request) {
	if _, err := handler.authGuard.RequireRole(
		request.Context(), requestutil.Token(request), sec.CredentialModerator,
	); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input languageRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if err := input.validate(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	lang := &Language{
		Abbreviation: input.Abbreviation,
		Value:        input.Value,
		IsUILang:     input.IsUILang,
	}
	if err := handler.service.AddLanguage(request.Context(), lang); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, lang)
}

func (handler *Handler) editLanguage(writer http.ResponseWriter, request *http.Request) {
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

	var input languageRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if err := input.validate(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	lang := &Language{
		Code:         int(code),
		Abbreviation: input.Abbreviation,
		Value:        input.Value,
		IsUILang:     input.IsUILang,
	}
	if err := handler.service.EditLanguage(request.Context(), lang); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, lang)
}

func (handler *Handler) deleteLanguage(writer http.ResponseWriter, request *http.Request) {
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

	if err := handler.service.DeleteLanguage(request.Context(), int(code)); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
