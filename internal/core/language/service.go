// Copyright (c) 2026 Tutoria. All rights reserved.

package language

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

func (service *Service) ListLanguages(context context.Context) ([]*Language, error) {
	return service.repo.ListLanguages(context)
}

func (service *Service) ListUILanguages(context context.Context) ([]*Language, error) {
	return service.repo.ListUILanguages(context)
}

func (service *Service) GetLanguage(context context.Context, abbreviation string) (*Language, error) {
	return service.repo.GetByAbbreviation(context, abbreviation)
}

func (service *Service) AddLanguage(context context.Context, language *Language) error {
	if err := service.repo.Create(context, language); err != nil {
		return err
	}
	service.logger.Info("language_added", slog.String("abbreviation", language.Abbreviation))
	return nil
}

func (service *Service) EditLanguage(context context.Context, language *Language) error {
	return service.repo.Update(context, language)
}

func (service *Service) DeleteLanguage(context context.Context, code int) error {
	if err := service.repo.Delete(context, code); err != nil {
		return err
	}
	service.logger.Info("language_deleted", slog.Int("code", code))
	return nil
}
