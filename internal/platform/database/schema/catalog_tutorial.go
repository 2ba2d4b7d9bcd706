// Copyright (c) 2026 Tutoria. All rights reserved.

package schema

// CatalogTutorialTable represents the 'catalog.tutorial' table.
type CatalogTutorialTable struct {
	Table        string
	ID           string
	Title        string
	Description  string
	TypeCode     string
	ThemeCode    string
	LanguageCode string
	DistTypeCode string
	SourceLink   string
	WhoAddedID   string
	CreatedAt    string
	UpdatedAt    string
}

// CatalogTutorial is the schema definition for catalog.tutorial.
var CatalogTutorial = CatalogTutorialTable{
	Table:        "catalog.tutorial",
	ID:           "id",
	Title:        "title",
	Description:  "description",
	TypeCode:     "type_code",
	ThemeCode:    "theme_code",
	LanguageCode: "language_code",
	DistTypeCode: "dist_type_code",
	SourceLink:   "source_link",
	WhoAddedID:   "who_added_id",
	CreatedAt:    "created_at",
	UpdatedAt:    "updated_at",
}
