// Copyright (c) 2026 Tutoria. All rights reserved.

package classifier

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

// localizedSelect joins the dictionary so each row carries its translation
// for the requested language (empty when none exists).
func localizedSelect() string {
	c := schema.CatalogClassifier
	d := schema.CatalogDictionary
	return fmt.Sprintf(`
		SELECT c.%s, c.%s, c.%s, COALESCE(d.%s, '')
		FROM %s c
		LEFT JOIN %s d ON d.%s = c.%s AND d.%s = $1
	`, c.Code, c.Kind, c.WordCode, d.Value, c.Table, d.Table, d.WordCode, c.WordCode, d.LangCode)
}

func (repository *PostgresRepository) ListByKind(context context.Context, kind Kind, langCode int) ([]*Classifier, error) {
	c := schema.CatalogClassifier
	query := localizedSelect() + fmt.Sprintf(`
		WHERE c.%s = $2
		ORDER BY c.%s ASC;
	`, c.Kind, c.Code)

	rows, err := repository.db.Query(context, query, langCode, string(kind))
	if err != nil {
		return nil, dberr.Wrap(err, "list_classifiers")
	}
	defer rows.Close()

	var entries []*Classifier
	for rows.Next() {
		entry := &Classifier{}
		var kindValue string
		if err := rows.Scan(&entry.Code, &kindValue, &entry.WordCode, &entry.Value); err != nil {
			return nil, dberr.Wrap(err, "scan_classifier")
		}
		entry.Kind = Kind(kindValue)
		entries = append(entries, entry)
	}

	return entries, nil
}

func (repository *PostgresRepository) Get(context context.Context, kind Kind, code int, langCode int) (*Classifier, error) {
	c := schema.CatalogClassifier
	query := localizedSelect() + fmt.Sprintf(`
		WHERE c.%s = $2 AND c.%s = $3;
	`, c.Kind, c.Code)

	entry := &Classifier{}
	var kindValue string
	err := repository.db.QueryRow(context, query, langCode, string(kind), code).
		Scan(&entry.Code, &kindValue, &entry.WordCode, &entry.Value)
	if err != nil {
		return nil, dberr.Wrap(err, "get_classifier")
	}
	entry.Kind = Kind(kindValue)
	return entry, nil
}

func (repository *PostgresRepository) Create(context context.Context, entry *Classifier) error {
	c := schema.CatalogClassifier
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2)
		RETURNING %s;
	`, c.Table, c.Kind, c.WordCode, c.Code)

	err := repository.db.QueryRow(context, query, string(entry.Kind), entry.WordCode).
		Scan(&entry.Code)
	return dberr.Wrap(err, "create_classifier")
}

func (repository *PostgresRepository) Update(context context.Context, entry *Classifier) error {
	c := schema.CatalogClassifier
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1
		WHERE %s = $2 AND %s = $3;
	`, c.Table, c.WordCode, c.Kind, c.Code)

	tag, err := repository.db.Exec(context, query, entry.WordCode, string(entry.Kind), entry.Code)
	if err != nil {
		return dberr.Wrap(err, "update_classifier")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, kind Kind, code int) error {
	c := schema.CatalogClassifier
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE %s = $1 AND %s = $2;
	`, c.Table, c.Kind, c.Code)

	tag, err := repository.db.Exec(context, query, string(kind), code)
	if err != nil {
		return dberr.Wrap(err, "delete_classifier")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
