// Copyright (c) 2026 Tutoria. All rights reserved.

package language

import "context"

// Repository defines the data access contract.
type Repository interface {
	ListLanguages(context context.Context) ([]*Language, error)
	ListUILanguages(context context.Context) ([]*Language, error)
	GetByAbbreviation(context context.Context, abbreviation string) (*Language, error)
	Create(context context.Context, language *Language) error
	Update(context context.Context, language *Language) error
	Delete(context context.Context, code int) error
}
