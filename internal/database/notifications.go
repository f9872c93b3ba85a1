package database

import (
	"context"
	"naprawa-udostepnien/internal/models"

	"github.com/google/uuid"
)

// CreateNotification stores one notification row. Delivery to the user
// happens out of process, this only persists the payload.
func (q *Queries) CreateNotification(ctx context.Context, n models.Notification) error {
	query := `
		INSERT INTO notifications (id, app, "user", timestamp, object_type, object_id, subject)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := q.db.Exec(ctx, query,
		uuid.New(), n.App, n.User, n.Timestamp, n.ObjectType, n.ObjectID, n.Subject,
	)
	return err
}

func (q *Queries) ListNotificationsForUser(ctx context.Context, uid string) ([]models.Notification, error) {
	query := `
		SELECT app, "user", timestamp, object_type, object_id, subject
		FROM notifications
		WHERE "user" = $1
		ORDER BY timestamp DESC
	`
	rows, err := q.db.Query(ctx, query, uid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.App, &n.User, &n.Timestamp, &n.ObjectType, &n.ObjectID, &n.Subject); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if notifications == nil {
		return []models.Notification{}, nil
	}

	return notifications, nil
}
