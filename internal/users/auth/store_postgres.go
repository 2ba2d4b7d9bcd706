// Copyright (c) 2026 Tutoria. All rights reserved.

package auth

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tutoria-app/tutoria/internal/platform/database/schema"
	"github.com/tutoria-app/tutoria/internal/platform/dberr"
	"github.com/tutoria-app/tutoria/internal/platform/sec"
)

// PostgresUserRepository implements [UserRepository] using pgx.
type PostgresUserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new Postgres-backed [UserRepository].
func NewUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// selectColumns is the canonical column list scanned into a [User].
func selectColumns() string {
	t := schema.UserAccount
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.Name, t.Email, t.Password, t.Credential, t.IsActive, t.Rating, t.CreatedAt, t.UpdatedAt)
}

// scanUser hydrates a [User] from a single-row query result.
func scanUser(row interface{ Scan(dest ...any) error }) (*User, error) {
	user := &User{}
	var credential int
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&credential, &user.IsActive, &user.Rating,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	user.Credential = sec.Credential(credential)
	return user, nil
}

// FindByID returns the account with the given ID.
func (repository *PostgresUserRepository) FindByID(context context.Context, id int64) (*User, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1;
	`, selectColumns(), schema.UserAccount.Table, schema.UserAccount.ID)

	user, err := scanUser(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find_user_by_id")
	}
	return user, nil
}

// FindByName returns the account with the given user name.
func (repository *PostgresUserRepository) FindByName(context context.Context, name string) (*User, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1;
	`, selectColumns(), schema.UserAccount.Table, schema.UserAccount.Name)

	user, err := scanUser(repository.db.QueryRow(context, query, name))
	if err != nil {
		return nil, dberr.Wrap(err, "find_user_by_name")
	}
	return user, nil
}

// FindByEmail returns the account with the given email.
func (repository *PostgresUserRepository) FindByEmail(context context.Context, email string) (*User, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1;
	`, selectColumns(), schema.UserAccount.Table, schema.UserAccount.Email)

	user, err := scanUser(repository.db.QueryRow(context, query, email))
	if err != nil {
		return nil, dberr.Wrap(err, "find_user_by_email")
	}
	return user, nil
}

// Create persists a brand-new user account and fills in its generated ID.
func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	t := schema.UserAccount
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s, %s, %s;
	`, t.Table, t.Name, t.Email, t.Password, t.Credential, t.IsActive, t.ID, t.CreatedAt, t.UpdatedAt)

	err := repository.db.QueryRow(context, query,
		user.Name, user.Email, user.PasswordHash, int(user.Credential), user.IsActive,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	return dberr.Wrap(err, "create_user")
}

// UpdateProfile persists changes to name, email, and password hash.
func (repository *PostgresUserRepository) UpdateProfile(context context.Context, user *User) error {
	t := schema.UserAccount
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = $2, %s = $3, %s = now()
		WHERE %s = $4;
	`, t.Table, t.Name, t.Email, t.Password, t.UpdatedAt, t.ID)

	tag, err := repository.db.Exec(context, query, user.Name, user.Email, user.PasswordHash, user.ID)
	if err != nil {
		return dberr.Wrap(err, "update_user_profile")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// UpdateStatus sets the account's activity flag and privilege tier.
func (repository *PostgresUserRepository) UpdateStatus(context context.Context, id int64, isActive bool, credential sec.Credential) error {
	t := schema.UserAccount
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = $2, %s = now()
		WHERE %s = $3;
	`, t.Table, t.IsActive, t.Credential, t.UpdatedAt, t.ID)

	tag, err := repository.db.Exec(context, query, isActive, int(credential), id)
	if err != nil {
		return dberr.Wrap(err, "update_user_status")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// Delete removes the account permanently.
func (repository *PostgresUserRepository) Delete(context context.Context, id int64) error {
	t := schema.UserAccount
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE %s = $1;
	`, t.Table, t.ID)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_user")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
