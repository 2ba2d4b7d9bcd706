// Copyright (c) 2026 Tutoria. All rights reserved.

package dictionary

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

func (repository *PostgresRepository) ListByLanguage(context context.Context, langCode int) ([]*Word, error) {
	d := schema.CatalogDictionary
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC;
	`, d.ID, d.WordCode, d.LangCode, d.Value, d.Table, d.LangCode, d.WordCode)

	return repository.queryWords(context, query, langCode)
}

func (repository *PostgresRepository) ListByWordCode(context context.Context, wordCode int) ([]*Word, error) {
	d := schema.CatalogDictionary
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC;
	`, d.ID, d.WordCode, d.LangCode, d.Value, d.Table, d.WordCode, d.LangCode)

	return repository.queryWords(context, query, wordCode)
}

func (repository *PostgresRepository) queryWords(context context.Context, query string, arg any) ([]*Word, error) {
	rows, err := repository.db.Query(context, query, arg)
	if err != nil {
		return nil, dberr.Wrap(err, "list_words")
	}
	defer rows.Close()

	var words []*Word
	for rows.Next() {
		word := &Word{}
		if err := rows.Scan(&word.ID, &word.WordCode, &word.LangCode, &word.Value); err != nil {
			return nil, dberr.Wrap(err, "scan_word")
		}
		words = append(words, word)
	}

	return words, nil
}

func (repository *PostgresRepository) Get(context context.Context, id int64) (*Word, error) {
	d := schema.CatalogDictionary
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		WHERE %s = $1;
	`, d.ID, d.WordCode, d.LangCode, d.Value, d.Table, d.ID)

	word := &Word{}
	err := repository.db.QueryRow(context, query, id).
		Scan(&word.ID, &word.WordCode, &word.LangCode, &word.Value)
	if err != nil {
		return nil, dberr.Wrap(err, "get_word")
	}
	return word, nil
}

// NextWordCode allocates the next free word code. New words across all
// languages share one code space.
func (repository *PostgresRepository) NextWordCode(context context.Context) (int, error) {
	d := schema.CatalogDictionary
	query := fmt.Sprintf(`
		SELECT COALESCE(MAX(%s), 0) + 1
		FROM %s;
	`, d.WordCode, d.Table)

	var code int
	if err := repository.db.QueryRow(context, query).Scan(&code); err != nil {
		return 0, dberr.Wrap(err, "next_word_code")
	}
	return code, nil
}

func (repository *PostgresRepository) Create(context context.Context, word *Word) error {
	d := schema.CatalogDictionary
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s;
	`, d.Table, d.WordCode, d.LangCode, d.Value, d.ID)

	err := repository.db.QueryRow(context, query, word.WordCode, word.LangCode, word.Value).
		Scan(&word.ID)
	return dberr.Wrap(err, "create_word")
}

func (repository *PostgresRepository) Update(context context.Context, word *Word) error {
	d := schema.CatalogDictionary
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1
		WHERE %s = $2;
	`, d.Table, d.Value, d.ID)

	tag, err := repository.db.Exec(context, query, word.Value, word.ID)
	if err != nil {
		return dberr.Wrap(err, "update_word")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	d := schema.CatalogDictionary
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE %s = $1;
	`, d.Table, d.ID)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_word")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
