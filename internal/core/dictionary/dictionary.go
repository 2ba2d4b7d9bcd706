// Copyright (c) 2026 Tutoria. All rights reserved.

/*
Package dictionary stores the catalog's translatable strings.

Every translatable thing in the catalog (classifier names, curated UI
strings) is a word: a stable word_code with one row per language. Reads are
served from a per-language lexicon that is cached in Redis and invalidated
on every write.
*/
package dictionary

// Word is one translation of a word code into one language.
type Word struct {
	ID       int64  `json:"id"`
	WordCode int    `json:"word_code"`
	LangCode int    `json:"lang_code"`
	Value    string `json:"value"`
}

// Lexicon maps word codes to their display values for a single language.
type Lexicon map[int]string

// Field identifiers for validation.
const (
	FieldWordCode = "word_code"
	FieldLangCode = "lang_code"
	FieldValue    = "value"
	FieldQuery    = "q"
)
