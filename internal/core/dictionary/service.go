// Copyright (c) 2026 Tutoria. All rights reserved.

package dictionary

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/tutoria-app/tutoria/internal/platform/constants"
	"github.com/tutoria-app/tutoria/pkg/textnorm"
)

type Service struct {
	repo   Repository
	cache  LexiconCache
	logger *slog.Logger
}

func NewService(repo Repository, cache LexiconCache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

/*
Lexicon returns the word_code to value mapping for one language.

Description: Reads through the Redis cache. A cache failure is logged and
degraded to a repository read, never surfaced to the caller.

Parameters:
  - context: context.Context
  - langCode: the language whose lexicon is requested

Returns:
  - Lexicon: complete mapping for the language (possibly empty)
  - error: Repository errors
*/
func (service *Service) Lexicon(context context.Context, langCode int) (Lexicon, error) {
	cached, err := service.cache.Get(context, langCode)
	if err != nil {
		service.logger.Warn("lexicon_cache_read_failed",
			slog.Int("lang_code", langCode),
			slog.String("error", err.Error()),
		)
	}
	if cached != nil {
		return cached, nil
	}

	words, err := service.repo.ListByLanguage(context, langCode)
	if err != nil {
		return nil, err
	}

	lexicon := make(Lexicon, len(words))
	for _, word := range words {
		lexicon[word.WordCode] = word.Value
	}

	if err := service.cache.Set(context, langCode, lexicon, constants.LexiconCacheTTL); err != nil {
		service.logger.Warn("lexicon_cache_write_failed",
			slog.Int("lang_code", langCode),
			slog.String("error", err.Error()),
		)
	}

	return lexicon, nil
}

/*
Search finds words in one language whose folded form contains the query.

Description: Both the query and candidate values run through the same
Unicode folding, so "Hello" matches "héllo" and vice versa.

Parameters:
  - context: context.Context
  - langCode: language to search in
  - query: raw user input

Returns:
  - []*Word: matches ordered by word code (IDs are not resolved)
  - error: Repository errors
*/
func (service *Service) Search(context context.Context, langCode int, query string) ([]*Word, error) {
	lexicon, err := service.Lexicon(context, langCode)
	if err != nil {
		return nil, err
	}

	needle := textnorm.Key(query)
	if needle == "" {
		return nil, nil
	}

	var matches []*Word
	for wordCode, value := range lexicon {
		if strings.Contains(textnorm.Key(value), needle) {
			matches = append(matches, &Word{
				WordCode: wordCode,
				LangCode: langCode,
				Value:    value,
			})
		}
	}

	slices.SortFunc(matches, func(a, b *Word) int { return a.WordCode - b.WordCode })
	return matches, nil
}

func (service *Service) Translations(context context.Context, wordCode int) ([]*Word, error) {
	return service.repo.ListByWordCode(context, wordCode)
}

// AddWord stores a translation. A zero WordCode allocates a fresh code, which
// is how a brand-new word enters the dictionary.
func (service *Service) AddWord(context context.Context, word *Word) error {
	if word.WordCode == 0 {
		code, err := service.repo.NextWordCode(context)
		if err != nil {
			return err
		}
		word.WordCode = code
	}

	if err := service.repo.Create(context, word); err != nil {
		return err
	}

	service.invalidate(context, word.LangCode)
	service.logger.Info("word_added",
		slog.Int("word_code", word.WordCode),
		slog.Int("lang_code", word.LangCode),
	)
	return nil
}

func (service *Service) EditWord(context context.Context, id int64, value string) (*Word, error) {
	word, err := service.repo.Get(context, id)
	if err != nil {
		return nil, err
	}

	word.Value = value
	if err := service.repo.Update(context, word); err != nil {
		return nil, err
	}

	service.invalidate(context, word.LangCode)
	return word, nil
}

func (service *Service) DeleteWord(context context.Context, id int64) error {
	// Fetch first so the right language cache can be invalidated.
	word, err := service.repo.Get(context, id)
	if err != nil {
		return err
	}

	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.invalidate(context, word.LangCode)
	service.logger.Info("word_deleted",
		slog.Int64("id", id),
		slog.Int("word_code", word.WordCode),
	)
	return nil
}

func (service *Service) invalidate(context context.Context, langCode int) {
	if err := service.cache.Invalidate(context, langCode); err != nil {
		service.logger.Warn("lexicon_cache_invalidate_failed",
			slog.Int("lang_code", langCode),
			slog.String("error", err.Error()),
		)
	}
}
