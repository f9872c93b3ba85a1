package database

import (
	"context"
	"errors"
	"naprawa-udostepnien/internal/models"

	"github.com/jackc/pgx/v5"
)

// ExposingLinkShare is one link share that duplicates a user or group
// share on the same resource and therefore has to be removed.
type ExposingLinkShare struct {
	ID           int64  `json:"id"`
	UIDOwner     string `json:"uid_owner"`
	UIDInitiator string `json:"uid_initiator"`
}

// exposingLinkJoin matches link shares (s1) whose parent (s2) is a
// user or group share on the same item_source. s1 is the row that is
// over-exposing and gets deleted, never s2.
const exposingLinkJoin = `
	FROM (
		SELECT id, parent, item_source, uid_owner, uid_initiator
		FROM shares
		WHERE share_type = $1 AND parent IS NOT NULL
	) s1
	JOIN shares s2 ON s1.parent = s2.id AND s1.item_source = s2.item_source
	WHERE s2.share_type IN ($2, $3)
`

func (q *Queries) CountExposingLinkShares(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*)` + exposingLinkJoin

	var count int64
	err := q.db.QueryRow(ctx, query,
		models.ShareTypeLink, models.ShareTypeUser, models.ShareTypeGroup,
	).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// ForEachExposingLinkShare streams the affected link shares through fn
// one row at a time. The cursor is closed before this returns, on the
// error path as well. A non-nil error from fn stops the stream.
func (q *Queries) ForEachExposingLinkShare(ctx context.Context, fn func(ExposingLinkShare) error) error {
	query := `SELECT s1.id, s1.uid_owner, s1.uid_initiator` + exposingLinkJoin

	rows, err := q.db.Query(ctx, query,
		models.ShareTypeLink, models.ShareTypeUser, models.ShareTypeGroup,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var share ExposingLinkShare
		if err := rows.Scan(&share.ID, &share.UIDOwner, &share.UIDInitiator); err != nil {
			return err
		}
		if err := fn(share); err != nil {
			return err
		}
	}

	return rows.Err()
}

// DeleteShareByID removes a share row. Deleting an id that is already
// gone is not an error, so a re-run of the repair is a no-op.
func (q *Queries) DeleteShareByID(ctx context.Context, shareID int64) error {
	query := `DELETE FROM shares WHERE id = $1`
	_, err := q.db.Exec(ctx, query, shareID)
	return err
}

type CreateShareParams struct {
	Parent       *int64
	ShareType    int16
	ItemSource   string
	UIDOwner     string
	UIDInitiator string
}

func (q *Queries) CreateShare(ctx context.Context, arg CreateShareParams) (*models.Share, error) {
	query := `
		INSERT INTO shares (parent, share_type, item_source, uid_owner, uid_initiator)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, parent, share_type, item_source, uid_owner, uid_initiator, created_at
	`
	row := q.db.QueryRow(ctx, query,
		arg.Parent, arg.ShareType, arg.ItemSource, arg.UIDOwner, arg.UIDInitiator,
	)

	var share models.Share
	err := row.Scan(
		&share.ID,
		&share.Parent,
		&share.ShareType,
		&share.ItemSource,
		&share.UIDOwner,
		&share.UIDInitiator,
		&share.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &share, nil
}

func (q *Queries) GetShareByID(ctx context.Context, shareID int64) (*models.Share, error) {
	query := `
		SELECT id, parent, share_type, item_source, uid_owner, uid_initiator, created_at
		FROM shares
		WHERE id = $1
	`
	var share models.Share
	err := q.db.QueryRow(ctx, query, shareID).Scan(
		&share.ID,
		&share.Parent,
		&share.ShareType,
		&share.ItemSource,
		&share.UIDOwner,
		&share.UIDInitiator,
		&share.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &share, nil
}
