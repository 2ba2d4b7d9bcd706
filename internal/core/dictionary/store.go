// Copyright (c) 2026 Tutoria. All rights reserved.

package dictionary

import (
	"context"
	"time"
)

// Repository defines the data access contract for words.
type Repository interface {
	ListByLanguage(context context.Context, langCode int) ([]*Word, error)
	ListByWordCode(context context.Context, wordCode int) ([]*Word, error)
	Get(context context.Context, id int64) (*Word, error)
	NextWordCode(context context.Context) (int, error)
	Create(context context.Context, word *Word) error
	Update(context context.Context, word *Word) error
	Delete(context context.Context, id int64) error
}

// LexiconCache caches the assembled per-language lexicon.
//
// Get returns a nil Lexicon on a cache miss; a cache failure is an error so
// callers can fall through to the repository.
type LexiconCache interface {
	Get(context context.Context, langCode int) (Lexicon, error)
	Set(context context.Context, langCode int, lexicon Lexicon, ttl time.Duration) error
	Invalidate(context context.Context, langCode int) error
}
