// Copyright (c) 2026 Tutoria. All rights reserved.

// Package language manages the catalog's supported languages.
//
// Languages serve two roles: tutorials are attributed to the language they
// are written in, and a subset (is_ui_lang) can render the UI itself via the
// dictionary lexicon.
package language

// Language represents a spoken/written language supported by the system.
type Language struct {
	Code         int    `json:"code"`
	Abbreviation string `json:"abbreviation"`
	Value        string `json:"value"`
	IsUILang     bool   `json:"is_ui_lang"`
}

// Field identifiers for validation.
const (
	FieldCode         = "code"
	FieldAbbreviation = "abbreviation"
	FieldValue        = "value"
)
