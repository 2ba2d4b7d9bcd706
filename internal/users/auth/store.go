// Copyright (c) 2026 Tutoria. All rights reserved.

package auth

import (
	"context"

	"github.com/tutoria-app/tutoria/internal/platform/sec"
)

// # User Data Access

// UserRepository defines the data access contract for user accounts.
//
// Every method returns the storage layer's not-found error when the account
// does not exist; callers decide whether that is a 404 or an access denial.
type UserRepository interface {

	// FindByID returns the account with the given ID.
	FindByID(context context.Context, id int64) (*User, error)

	// FindByName returns the account with the given (unique) user name.
	FindByName(context context.Context, name string) (*User, error)

	// FindByEmail returns the account with the given email.
	FindByEmail(context context.Context, email string) (*User, error)

	// Create persists a brand-new user account and fills in its generated ID.
	Create(context context.Context, user *User) error

	// UpdateProfile persists changes to name, email, and password hash.
	UpdateProfile(context context.Context, user *User) error

	// UpdateStatus sets the account's activity flag and privilege tier.
	UpdateStatus(context context.Context, id int64, isActive bool, credential sec.Credential) error

	// Delete removes the account permanently.
	Delete(context context.Context, id int64) error
}
