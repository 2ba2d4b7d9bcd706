// Copyright (c) 2026 Tutoria. All rights reserved.

package classifier

import (
	"context"
	"log/slog"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListByKind(context context.Context, kind Kind, langCode int) ([]*Classifier, error) {
	return service.repo.ListByKind(context, kind, langCode)
}

func (service *Service) GetClassifier(context context.Context, kind Kind, code int, langCode int) (*Classifier, error) {
	return service.repo.Get(context, kind, code, langCode)
}

func (service *Service) AddClassifier(context context.Context, entry *Classifier) error {
	if err := service.repo.Create(context, entry); err != nil {
		return err
	}
	service.logger.Info("classifier_added",
		slog.String("kind", string(entry.Kind)),
		slog.Int("code", entry.Code),
	)
	return nil
}

func (service *Service) EditClassifier(context context.Context, entry *Classifier) error {
	return service.repo.Update(context, entry)
}

func (service *Service) DeleteClassifier(context context.Context, kind Kind, code int) error {
	if err := service.repo.Delete(context, kind, code); err != nil {
		return err
	}
	service.logger.Info("classifier_deleted",
		slog.String("kind", string(kind)),
		slog.Int("code", code),
	)
	return nil
}
