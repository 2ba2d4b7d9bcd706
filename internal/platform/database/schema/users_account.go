// Copyright (c) 2026 Tutoria. All rights reserved.

/*
Package schema centralizes table and column identifiers for every relation
the repositories touch.

Queries are assembled from these structs instead of inline string literals,
so a column rename is a one-file change and a typo is a compile error at the
call site rather than a runtime SQL failure.
*/
package schema

// UserAccountTable represents the 'users.account' table.
type UserAccountTable struct {
	Table      string
	ID         string
	Name       string
	Email      string
	Password   string
	Credential string
	IsActive   string
	Rating     string
	CreatedAt  string
	UpdatedAt  string
}

// UserAccount is the schema definition for users.account.
var UserAccount = UserAccountTable{
	Table:      "users.account",
	ID:         "id",
	Name:       "name",
	Email:      "email",
	Password:   "hashed_password",
	Credential: "credential",
	IsActive:   "is_active",
	Rating:     "rating",
	CreatedAt:  "created_at",
	UpdatedAt:  "updated_at",
}
