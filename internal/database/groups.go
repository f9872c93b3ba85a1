package database

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var ErrGroupNotFound = errors.New("group does not exist")

// GetGroupUsers returns the uids of all members of the given group.
func (q *Queries) GetGroupUsers(ctx context.Context, gid string) ([]string, error) {
	query := `
		SELECT gu.uid
		FROM group_user gu
		WHERE gu.gid = $1
		ORDER BY gu.uid
	`
	rows, err := q.db.Query(ctx, query, gid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var uids []string
	for rows.Next() {
		var uid string
		if err := rows.Scan(&uid); err != nil {
			return nil, err
		}
		uids = append(uids, uid)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if uids == nil {
		return []string{}, nil
	}

	return uids, nil
}

func (q *Queries) CreateGroup(ctx context.Context, gid string) error {
	query := `INSERT INTO groups (gid) VALUES ($1) ON CONFLICT (gid) DO NOTHING`
	_, err := q.db.Exec(ctx, query, gid)
	return err
}

func (q *Queries) AddUserToGroup(ctx context.Context, gid string, uid string) error {
	query := `INSERT INTO group_user (gid, uid) VALUES ($1, $2)`
	_, err := q.db.Exec(ctx, query, gid, uid)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return ErrGroupNotFound
		}
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil
		}
		return err
	}
	return nil
}
