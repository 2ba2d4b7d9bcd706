// Copyright (c) 2026 Tutoria. All rights reserved.

package schema

// CatalogLanguageTable represents the 'catalog.language' table.
type CatalogLanguageTable struct {
	Table        string
	Code         string
	Abbreviation string
	Value        string
	IsUILang     string
}

// CatalogLanguage is the schema definition for catalog.language.
var CatalogLanguage = CatalogLanguageTable{
	Table:        "catalog.language",
	Code:         "code",
	Abbreviation: "abbreviation",
	Value:        "value",
	IsUILang:     "is_ui_lang",
}
