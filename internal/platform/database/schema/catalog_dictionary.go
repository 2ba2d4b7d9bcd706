// Copyright (c) 2026 Tutoria. All rights reserved.

package schema

// CatalogDictionaryTable represents the 'catalog.dictionary' table.
//
// A word is identified by word_code and carries one row per language, so
// classifiers and UI strings share translations instead of duplicating them.
type CatalogDictionaryTable struct {
	Table    string
	ID       string
	WordCode string
	LangCode string
	Value    string
}

// CatalogDictionary is the schema definition for catalog.dictionary.
var CatalogDictionary = CatalogDictionaryTable{
	Table:    "catalog.dictionary",
	ID:       "id",
	WordCode: "word_code",
	LangCode: "lang_code",
	Value:    "value",
}
