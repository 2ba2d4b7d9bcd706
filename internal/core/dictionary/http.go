// Copyright (c) 2026 Tutoria. All rights reserved.

package dictionary

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
	router.Get("/lexicon/{langCode}", handler.getLexicon)
	router.Get("/search/{langCode}", handler.search)
	router.Get("/words/{wordCode}", handler.listTranslations)

	// The dictionary is curated by moderators and admins only.
	router.Post("/words", handler.addWord)
	router.Put("/words/{id}", handler.editWord)
	router.Delete("/words/{id}", handler.deleteWord)

	return router
}

func langCodeParam(request *http.Request) (int, error) {
	code, err := strconv.Atoi(requestutil.Param(request, "langCode"))
	if err != nil || code <= 0 {
		return 0, apperr.ValidationError("Invalid language code", apperr.FieldError{
			Field:   FieldLangCode,
			Message: "must be a positive integer",
		})
	}
	return code, nil
}

func (handler *Handler) getLexicon(writer http.ResponseWriter, request *http.Request) {
	langCode, err := langCodeParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	lexicon, err := handler.service.Lexicon(request.Context(), langCode)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, lexicon)
}

func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	langCode, err := langCodeParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	query := request.URL.Query().Get(FieldQuery)
	if query == "" {
		respond.Error(writer, request, validate.RequiredError(FieldQuery, "search query is required"))
		return
	}

	matches, err := handler.service.Search(request.Context(), langCode, query)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, matches)
}

func (handler *Handler) listTranslations(writer http.ResponseWriter, request *http.Request) {
	wordCode, err := requestutil.IntParam(request, "wordCode")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	words, err := handler.service.Translations(request.Context(), int(wordCode))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, words)
}

type wordRequest struct {
	WordCode int    `json:"word_code"`
	LangCode int    `json:"lang_code"`
	Value    string `json:"value"`
}

func (input *wordRequest) validate() error {
	v := &validate.Validator{}
	v.Positive(FieldLangCode, int64(input.LangCode)).
		Required(FieldValue, input.Value).
		MaxLen(FieldValue, input.Value, 500)
	if input.WordCode < 0 {
		v.Custom(FieldWordCode, true, "must not be negative")
	}
	return v.Err()
}

func (handler *Handler) addWord(writer http.ResponseWriter, request *http.Request) {
	if _, err := handler.authGuard.RequireRole(
		request.Context(), requestutil.Token(request), sec.CredentialModerator,
	); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input wordRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if err := input.validate(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	word := &Word{
		WordCode: input.WordCode,
		LangCode: input.LangCode,
		Value:    input.Value,
	}
	if err := handler.service.AddWord(request.Context(), word); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, word)
}

type wordValueRequest struct {
	Value string `json:"value"`
}

func (handler *Handler) editWord(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
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

	var input wordValueRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	v := &validate.Validator{}
	v.Required(FieldValue, input.Value).MaxLen(FieldValue, input.Value, 500)
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	word, err := handler.service.EditWord(request.Context(), id, input.Value)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, word)
}

func (handler *Handler) deleteWord(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
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

	if err := handler.service.DeleteWord(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
