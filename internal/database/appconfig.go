package database

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// GetSystemValueString reads one appconfig value, falling back to def
// when the key has never been written.
func (q *Queries) GetSystemValueString(ctx context.Context, key string, def string) (string, error) {
	query := `SELECT configvalue FROM appconfig WHERE configkey = $1`

	var value string
	err := q.db.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return def, nil
		}
		return "", err
	}

	return value, nil
}

func (q *Queries) SetSystemValue(ctx context.Context, key string, value string) error {
	query := `
		INSERT INTO appconfig (configkey, configvalue)
		VALUES ($1, $2)
		ON CONFLICT (configkey) DO UPDATE SET configvalue = EXCLUDED.configvalue
	`
	_, err := q.db.Exec(ctx, query, key, value)
	return err
}
