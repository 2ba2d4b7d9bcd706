// Copyright (c) 2026 Tutoria. All rights reserved.

package tutorial

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/tutoria-app/tutoria/internal/platform/request"
	"github.com/tutoria-app/tutoria/internal/platform/respond"
	"github.com/tutoria-app/tutoria/internal/platform/validate"
	"github.com/tutoria-app/tutoria/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listTutorials)
	router.Get("/{id}", handler.getTutorial)
	router.Post("/", handler.addTutorial)
	router.Put("/{id}", handler.editTutorial)
	router.Delete("/{id}", handler.deleteTutorial)

	return router
}

// filterFromQuery maps list query parameters onto a Filter. Absent or
// malformed values fall back to "any".
func filterFromQuery(request *http.Request) Filter {
	query := request.URL.Query()
	atoi := func(key string) int {
		value, err := strconv.Atoi(query.Get(key))
		if err != nil || value < 0 {
			return 0
		}
		return value
	}

	return Filter{
		TypeCode:     atoi(FieldTypeCode),
		ThemeCode:    atoi(FieldThemeCode),
		LanguageCode: atoi(FieldLanguageCode),
		DistTypeCode: atoi(FieldDistTypeCode),
		WhoAddedID:   int64(atoi("who_added_id")),
	}
}

func (handler *Handler) listTutorials(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	tutorials, total, err := handler.service.ListTutorials(
		request.Context(),
		requestutil.Token(request),
		filterFromQuery(request),
		params,
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, tutorials, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) getTutorial(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	tutorial, err := handler.service.GetTutorial(request.Context(), requestutil.Token(request), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tutorial)
}

type tutorialRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	TypeCode     int    `json:"type_code"`
	ThemeCode    int    `json:"theme_code"`
	LanguageCode int    `json:"language_code"`
	DistTypeCode int    `json:"dist_type_code"`
	SourceLink   string `json:"source_link"`
}

func (input *tutorialRequest) validate() error {
	v := &validate.Validator{}
	v.Required(FieldTitle, input.Title).
		MaxLen(FieldTitle, input.Title, 200).
		MaxLen(FieldDescription, input.Description, 2000).
		Positive(FieldTypeCode, int64(input.TypeCode)).
		Positive(FieldThemeCode, int64(input.ThemeCode)).
		Positive(FieldLanguageCode, int64(input.LanguageCode)).
		Positive(FieldDistTypeCode, int64(input.DistTypeCode)).
		Required(FieldSourceLink, input.SourceLink).
		URL(FieldSourceLink, input.SourceLink)
	return v.Err()
}

func (input *tutorialRequest) toTutorial() *Tutorial {
	return &Tutorial{
		Title:        input.Title,
		Description:  input.Description,
		TypeCode:     input.TypeCode,
		ThemeCode:    input.ThemeCode,
		LanguageCode: input.LanguageCode,
		DistTypeCode: input.DistTypeCode,
		SourceLink:   input.SourceLink,
	}
}

func (handler *Handler) addTutorial(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Require an authenticated contributor ──
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 2. Decode and validate the payload ──
	var input tutorialRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if err := input.validate(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 3. Store the entry under the contributor ──
	tutorial := input.toTutorial()
	tutorial.WhoAddedID = userID
	if err := handler.service.AddTutorial(request.Context(), tutorial); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, tutorial)
}

func (handler *Handler) editTutorial(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input tutorialRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if err := input.validate(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	tutorial, err := handler.service.EditTutorial(
		request.Context(), requestutil.Token(request), id, input.toTutorial(),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, tutorial)
}

func (handler *Handler) deleteTutorial(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteTutorial(
		request.Context(), requestutil.Token(request), id,
	); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
