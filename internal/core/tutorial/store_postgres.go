// Copyright (c) 2026 Tutoria. All rights reserved.

package tutorial

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tutoria-app/tutoria/internal/platform/database/schema"
	"github.com/tutoria-app/tutoria/internal/platform/dberr"
	"github.com/tutoria-app/tutoria/pkg/pagination"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

/*
List returns a page of tutorials matching the filter, newest first.

Description: The total row count is computed with a window function in the
same query, so a listing is a single round trip.

Parameters:
  - context: context.Context
  - filter: zero-valued fields are not applied
  - params: page and limit

Returns:
  - []*Tutorial: the requested page
  - int: total matching rows across all pages
  - error: Execution errors
*/
func (repository *PostgresRepository) List(context context.Context, filter Filter, params pagination.Params) ([]*Tutorial, int, error) {
	t := schema.CatalogTutorial

	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, COUNT(*) OVER()
		FROM %s
		WHERE 1=1`,
		t.ID, t.Title, t.Description, t.TypeCode, t.ThemeCode, t.LanguageCode,
		t.DistTypeCode, t.SourceLink, t.WhoAddedID, t.CreatedAt, t.UpdatedAt,
		t.Table,
	))

	args := []any{}
	argID := 1

	if filter.TypeCode > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", t.TypeCode, argID))
		args = append(args, filter.TypeCode)
		argID++
	}
	if filter.ThemeCode > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", t.ThemeCode, argID))
		args = append(args, filter.ThemeCode)
		argID++
	}
	if filter.LanguageCode > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", t.LanguageCode, argID))
		args = append(args, filter.LanguageCode)
		argID++
	}
	if filter.DistTypeCode > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", t.DistTypeCode, argID))
		args = append(args, filter.DistTypeCode)
		argID++
	}
	if filter.WhoAddedID > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", t.WhoAddedID, argID))
		args = append(args, filter.WhoAddedID)
		argID++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s DESC, %s DESC", t.CreatedAt, t.ID))
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d;", argID, argID+1))
	args = append(args, params.Limit, params.Offset())

	rows, err := repository.db.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_tutorials")
	}
	defer rows.Close()

	var tutorials []*Tutorial
	var totalCount int

	for rows.Next() {
		tutorial := &Tutorial{}
		err := rows.Scan(
			&tutorial.ID,
			&tutorial.Title,
			&tutorial.Description,
			&tutorial.TypeCode,
			&tutorial.ThemeCode,
			&tutorial.LanguageCode,
			&tutorial.DistTypeCode,
			&tutorial.SourceLink,
			&tutorial.WhoAddedID,
			&tutorial.CreatedAt,
			&tutorial.UpdatedAt,
			&totalCount,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_tutorial")
		}
		tutorials = append(tutorials, tutorial)
	}

	return tutorials, totalCount, nil
}

func (repository *PostgresRepository) Get(context context.Context, id int64) (*Tutorial, error) {
	t := schema.CatalogTutorial
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1;
	`, t.ID, t.Title, t.Description, t.TypeCode, t.ThemeCode, t.LanguageCode,
		t.DistTypeCode, t.SourceLink, t.WhoAddedID, t.CreatedAt, t.UpdatedAt,
		t.Table, t.ID)

	tutorial := &Tutorial{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&tutorial.ID,
		&tutorial.Title,
		&tutorial.Description,
		&tutorial.TypeCode,
		&tutorial.ThemeCode,
		&tutorial.LanguageCode,
		&tutorial.DistTypeCode,
		&tutorial.SourceLink,
		&tutorial.WhoAddedID,
		&tutorial.CreatedAt,
		&tutorial.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_tutorial")
	}
	return tutorial, nil
}

// OwnerID returns the contributor of a tutorial without loading the row.
func (repository *PostgresRepository) OwnerID(context context.Context, resourceID int64) (int64, error) {
	t := schema.CatalogTutorial
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1;
	`, t.WhoAddedID, t.Table, t.ID)

	var ownerID int64
	if err := repository.db.QueryRow(context, query, resourceID).Scan(&ownerID); err != nil {
		return 0, dberr.Wrap(err, "get_tutorial_owner")
	}
	return ownerID, nil
}

func (repository *PostgresRepository) Create(context context.Context, tutorial *Tutorial) error {
	t := schema.CatalogTutorial
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s, %s, %s;
	`, t.Table, t.Title, t.Description, t.TypeCode, t.ThemeCode, t.LanguageCode,
		t.DistTypeCode, t.SourceLink, t.WhoAddedID,
		t.ID, t.CreatedAt, t.UpdatedAt)

	err := repository.db.QueryRow(context, query,
		tutorial.Title,
		tutorial.Description,
		tutorial.TypeCode,
		tutorial.ThemeCode,
		tutorial.LanguageCode,
		tutorial.DistTypeCode,
		tutorial.SourceLink,
		tutorial.WhoAddedID,
	).Scan(&tutorial.ID, &tutorial.CreatedAt, &tutorial.UpdatedAt)

	return dberr.Wrap(err, "create_tutorial")
}

func (repository *PostgresRepository) Update(context context.Context, tutorial *Tutorial) error {
	t := schema.CatalogTutorial
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = NOW()
		WHERE %s = $8
		RETURNING %s;
	`, t.Table, t.Title, t.Description, t.TypeCode, t.ThemeCode, t.LanguageCode,
		t.DistTypeCode, t.SourceLink, t.UpdatedAt,
		t.ID, t.UpdatedAt)

	err := repository.db.QueryRow(context, query,
		tutorial.Title,
		tutorial.Description,
		tutorial.TypeCode,
		tutorial.ThemeCode,
		tutorial.LanguageCode,
		tutorial.DistTypeCode,
		tutorial.SourceLink,
		tutorial.ID,
	).Scan(&tutorial.UpdatedAt)

	return dberr.Wrap(err, "update_tutorial")
}

func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	t := schema.CatalogTutorial
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE %s = $1;
	`, t.Table, t.ID)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_tutorial")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
