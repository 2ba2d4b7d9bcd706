// Copyright (c) 2026 Tutoria. All rights reserved.

package classifier

import "context"

// Repository defines the data access contract.
//
// Read methods take a language code so display values can be resolved from
// the dictionary in a single query.
type Repository interface {
	ListByKind(context context.Context, kind Kind, langCode int) ([]*Classifier, error)
	Get(context context.Context, kind Kind, code int, langCode int) (*Classifier, error)
	Create(context context.Context, entry *Classifier) error
	Update(context context.Context, entry *Classifier) error
	Delete(context context.Context, kind Kind, code int) error
}
