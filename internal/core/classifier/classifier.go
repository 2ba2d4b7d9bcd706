// Copyright (c) 2026 Tutoria. All rights reserved.

// Package classifier manages the catalog's tutorial classification axes:
// themes, tutorial types, and distribution types.
//
// The three axes share one shape (a code pointing at a dictionary word), so
// they live in a single table and package, keyed by [Kind]. Display values
// are resolved per language through the dictionary's shared word codes.
package classifier

import "fmt"

// Kind discriminates the classification axis a code belongs to.
type Kind string

const (
	KindTheme    Kind = "theme"
	KindType     Kind = "type"
	KindDistType Kind = "dist_type"
)

// ParseKind maps a URL segment to a [Kind].
func ParseKind(value string) (Kind, error) {
	switch Kind(value) {
	case KindTheme, KindType, KindDistType:
		return Kind(value), nil
	}
	return "", fmt.Errorf("classifier: unknown kind %q", value)
}

// Classifier represents one classification entry.
//
// Value carries the dictionary translation for the requested language; it is
// empty when no translation exists for that language.
type Classifier struct {
	Code     int    `json:"code"`
	Kind     Kind   `json:"kind"`
	WordCode int    `json:"word_code"`
	Value    string `json:"value,omitempty"`
}

// Field identifiers for validation.
const (
	FieldKind     = "kind"
	FieldWordCode = "word_code"
)
