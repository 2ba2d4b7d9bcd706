// Copyright (c) 2026 Tutoria. All rights reserved.

/*
Package auth implements the user identity and session lifecycle layer.

It defines the core domain entity (User) and the logic for registration,
credential verification, and session token issuance.

# Architecture

This layer is the "Truth" of the system for identity. Sessions themselves are
stateless: the signed token held by the client is the only session artifact,
and the server never persists it.
*/
package auth

import (
	"time"

	"github.com/tutoria-app/tutoria/internal/platform/sec"
)

// # Domain Entities

// User represents a registered member of the Tutoria platform.
//
// The authorization layer treats this record as read-only: credential and
// is_active are always re-read from storage, never taken from a request.
type User struct {
	ID           int64          `json:"id"`
	Name         string         `json:"name"`
	Email        string         `json:"email"`
	PasswordHash string         `json:"-"` // Explicitly omitted from JSON for security.
	Credential   sec.Credential `json:"credential"`
	IsActive     bool           `json:"is_active"`
	Rating       int            `json:"rating"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// DecodedCredential returns the display name of the user's privilege tier
// for API responses. Presentational only.
func (u *User) DecodedCredential() string {
	return u.Credential.String()
}

// Identity returns the token identity claim for this user.
func (u *User) Identity() sec.Identity {
	return sec.Identity{ID: u.ID, Name: u.Name}
}

// # Field Identifiers

// Global field names for validation and identity mapping in the auth domain.
const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldUsername    = "username"
	FieldCredential  = "credential"
	FieldIsActive    = "is_active"
	FieldAccessToken = "access_token"
	FieldTokenType   = "token_type"
	FieldExpiresIn   = "expires_in"
	FieldUser        = "user"
	FieldMessage     = "message"
)
