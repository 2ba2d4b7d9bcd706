// Copyright (c) 2026 Tutoria. All rights reserved.

package language

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tutoria-app/tutoria/internal/platform/database/schema"
	"github.com/tutoria-app/tutoria/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListLanguages(context context.Context) ([]*Language, error) {
	t := schema.CatalogLanguage
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC;
	`, t.Code, t.Abbreviation, t.Value, t.IsUILang, t.Table, t.Code)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_languages")
	}
	defer rows.Close()

	var languages []*Language
	for rows.Next() {
		l := &Language{}
		if err := rows.Scan(&l.Code, &l.Abbreviation, &l.Value, &l.IsUILang); err != nil {
			return nil, dberr.Wrap(err, "scan_language")
		}
		languages = append(languages, l)
	}

	return languages, nil
}

func (repository *PostgresRepository) ListUILanguages(context context.Context) ([]*Language, error) {
	t := schema.CatalogLanguage
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		WHERE %s = true
		ORDER BY %s ASC;
	`, t.Code, t.Abbreviation, t.Value, t.IsUILang, t.Table, t.IsUILang, t.Code)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_ui_languages")
	}
	defer rows.Close()

	var languages []*Language
	for rows.Next() {
		l := &Language{}
		if err := rows.Scan(&l.Code, &l.Abbreviation, &l.Value, &l.IsUILang); err != nil {
			return nil, dberr.Wrap(err, "scan_ui_language")
		}
		languages = append(languages, l)
	}

	return languages, nil
}

func (repository *PostgresRepository) GetByAbbreviation(context context.Context, abbreviation string) (*Language, error) {
	t := schema.CatalogLanguage
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		WHERE %s = $1;
	`, t.Code, t.Abbreviation, t.Value, t.IsUILang, t.Table, t.Abbreviation)

	l := &Language{}
	err := repository.db.QueryRow(context, query, abbreviation).
		Scan(&l.Code, &l.Abbreviation, &l.Value, &l.IsUILang)
	if err != nil {
		return nil, dberr.Wrap(err, "get_language")
	}
	return l, nil
}

func (repository *PostgresRepository) Create(context context.Context, language *Language) error {
	t := schema.CatalogLanguage
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s;
	`, t.Table, t.Abbreviation, t.Value, t.IsUILang, t.Code)

	err := repository.db.QueryRow(context, query,
		language.Abbreviation, language.Value, language.IsUILang,
	).Scan(&language.Code)

	return dberr.Wrap(err, "create_language")
}

func (repository *PostgresRepository) Update(context context.Context, language *Language) error {
	t := schema.CatalogLanguage
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = $2, %s = $3
		WHERE %s = $4;
	`, t.Table, t.Abbreviation, t.Value, t.IsUILang, t.Code)

	tag, err := repository.db.Exec(context, query,
		language.Abbreviation, language.Value, language.IsUILang, language.Code)
	if err != nil {
		return dberr.Wrap(err, "update_language")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, code int) error {
	t := schema.CatalogLanguage
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE %s = $1;
	`, t.Table, t.Code)

	tag, err := repository.db.Exec(context, query, code)
	if err != nil {
		return dberr.Wrap(err, "delete_language")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
