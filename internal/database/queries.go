package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"linkbrief/internal/domain"
)

// Set stores the user's language. A single UPSERT keeps concurrent writes
// from the same user atomic; the last write wins.
func (d *Database) Set(ctx context.Context, userID int64, language domain.Language) error {
	query := `insert into user_languages (user_id, language) values (?, ?)
		on conflict(user_id) do update set language = excluded.language`

	_, err := d.db.ExecContext(ctx, query, userID, string(language))

	return err
}

func (d *Database) Get(ctx context.Context, userID int64) (domain.Language, bool, error) {
	query := "select language from user_languages where user_id = ?"

	var raw string
	if err := d.db.QueryRowContext(ctx, query, userID).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}

		return "", false, fmt.Errorf("execute query: %w", err)
	}

	language, ok := domain.ParseLanguage(raw)
	if !ok {
		d.log.WarnContext(ctx, "Stored language is unknown, treating as absent",
			"userID", userID,
			"language", raw)

		return "", false, nil
	}

	return language, true, nil
}
