// Copyright (c) 2026 Tutoria. All rights reserved.

/*
Package tutorial manages the catalog's tutorial entries.

A tutorial is an external learning resource (a link plus classification
codes) contributed by a registered user. The contributor owns the entry:
edits and deletion are open to the contributor and to moderators, which is
enforced through the authorization guard rather than in this package.
*/
package tutorial

import "time"

// Tutorial represents one catalog entry.
type Tutorial struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	TypeCode     int       `json:"type_code"`
	ThemeCode    int       `json:"theme_code"`
	LanguageCode int       `json:"language_code"`
	DistTypeCode int       `json:"dist_type_code"`
	SourceLink   string    `json:"source_link"`
	WhoAddedID   int64     `json:"who_added_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Editable tells the requesting client whether it may modify this entry.
	// It is derived per request and never stored.
	Editable bool `json:"editable"`
}

// Filter narrows a catalog listing. Zero values mean "any".
type Filter struct {
	TypeCode     int
	ThemeCode    int
	LanguageCode int
	DistTypeCode int
	WhoAddedID   int64
}

// Field identifiers for validation.
const (
	FieldTitle        = "title"
	FieldDescription  = "description"
	FieldTypeCode     = "type_code"
	FieldThemeCode    = "theme_code"
	FieldLanguageCode = "language_code"
	FieldDistTypeCode = "dist_type_code"
	FieldSourceLink   = "source_link"
)
