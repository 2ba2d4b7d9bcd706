// Copyright (c) 2026 Tutoria. All rights reserved.

package schema

// CatalogClassifierTable represents the 'catalog.classifier' table.
//
// Themes, tutorial types, and distribution types share one shape (a code
// plus a dictionary word code), so they live in a single table keyed by kind.
type CatalogClassifierTable struct {
	Table    string
	Code     string
	Kind     string
	WordCode string
}

// CatalogClassifier is the schema definition for catalog.classifier.
var CatalogClassifier = CatalogClassifierTable{
	Table:    "catalog.classifier",
	Code:     "code",
	Kind:     "kind",
	WordCode: "word_code",
}
