// Copyright (c) 2026 Tutoria. All rights reserved.

package tutorial

import (
	"context"
	"log/slog"

	"github.com/tutoria-app/tutoria/internal/platform/sec"
	"github.com/tutoria-app/tutoria/internal/users/guard"
	"github.com/tutoria-app/tutoria/pkg/pagination"
)

// EditorCredential is the tier that may modify any tutorial regardless of
// who contributed it.
const EditorCredential = sec.CredentialModerator

type Service struct {
	repo      Repository
	authGuard *guard.Guard
	logger    *slog.Logger
}

func NewService(repo Repository, authGuard *guard.Guard, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		authGuard: authGuard,
		logger:    logger,
	}
}

/*
ListTutorials returns one page of the catalog with per-entry edit rights.

Description: The viewer is resolved once for the whole page. An anonymous or
invalid token degrades to a read-only listing instead of failing.

Parameters:
  - context: context.Context
  - token: raw session token, may be empty
  - filter: catalog filter
  - params: page and limit

Returns:
  - []*Tutorial: the page, each entry annotated with Editable
  - int: total matching entries
  - error: Repository errors
*/
func (service *Service) ListTutorials(context context.Context, token string, filter Filter, params pagination.Params) ([]*Tutorial, int, error) {
	tutorials, total, err := service.repo.List(context, filter, params)
	if err != nil {
		return nil, 0, err
	}

	viewer, err := service.authGuard.RequireRole(context, token, sec.CredentialUser)
	if err != nil {
		// Read-only view; entries keep Editable=false.
		return tutorials, total, nil
	}

	canModerate := viewer.Credential.Satisfies(EditorCredential)
	for _, tutorial := range tutorials {
		tutorial.Editable = canModerate || tutorial.WhoAddedID == viewer.ID
	}

	return tutorials, total, nil
}

// GetTutorial loads one entry and annotates it with the viewer's edit rights.
func (service *Service) GetTutorial(context context.Context, token string, id int64) (*Tutorial, error) {
	tutorial, err := service.repo.Get(context, id)
	if err != nil {
		return nil, err
	}

	tutorial.Editable = service.authGuard.CanEditResource(
		context, token, id, EditorCredential, service.repo,
	)
	return tutorial, nil
}

// AddTutorial stores a new entry. The caller has already resolved the
// contributor from the session token.
func (service *Service) AddTutorial(context context.Context, tutorial *Tutorial) error {
	if err := service.repo.Create(context, tutorial); err != nil {
		return err
	}

	tutorial.Editable = true
	service.logger.Info("tutorial_added",
		slog.Int64("id", tutorial.ID),
		slog.Int64("who_added_id", tutorial.WhoAddedID),
	)
	return nil
}

/*
EditTutorial updates an entry on behalf of its contributor or a moderator.

Parameters:
  - context: context.Context
  - token: raw session token
  - id: tutorial to update
  - updated: new field values (identity fields ignored)

Returns:
  - *Tutorial: the stored entry after the update
  - error: authorization failures, apperr.NotFound, repository errors
*/
func (service *Service) EditTutorial(context context.Context, token string, id int64, updated *Tutorial) (*Tutorial, error) {
	if _, err := service.authGuard.RequireOwnerOrRole(
		context, token, id, EditorCredential, service.repo,
	); err != nil {
		return nil, err
	}

	tutorial, err := service.repo.Get(context, id)
	if err != nil {
		return nil, err
	}

	tutorial.Title = updated.Title
	tutorial.Description = updated.Description
	tutorial.TypeCode = updated.TypeCode
	tutorial.ThemeCode = updated.ThemeCode
	tutorial.LanguageCode = updated.LanguageCode
	tutorial.DistTypeCode = updated.DistTypeCode
	tutorial.SourceLink = updated.SourceLink

	if err := service.repo.Update(context, tutorial); err != nil {
		return nil, err
	}

	tutorial.Editable = true
	service.logger.Info("tutorial_updated",
		slog.Int64("id", id),
		slog.Int64("who_added_id", tutorial.WhoAddedID),
	)
	return tutorial, nil
}

// DeleteTutorial removes an entry on behalf of its contributor or a moderator.
func (service *Service) DeleteTutorial(context context.Context, token string, id int64) error {
	if _, err := service.authGuard.RequireOwnerOrRole(
		context, token, id, EditorCredential, service.repo,
	); err != nil {
		return err
	}

	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Info("tutorial_deleted", slog.Int64("id", id))
	return nil
}
