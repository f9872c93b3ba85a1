package repair

import (
	"context"
	"time"

	"naprawa-udostepnien/internal/models"
)

const (
	notificationApp     = "core"
	notificationObject  = "repair"
	notificationID      = "exposing_links"
	notificationSubject = "repair_exposing_links"
)

// AffectedUsers collects the uids that have to be notified. Adding a
// uid twice leaves a single entry.
type AffectedUsers map[string]struct{}

func (u AffectedUsers) Add(uid string) {
	u[uid] = struct{}{}
}

// Notifier accepts a notification for out-of-process delivery.
type Notifier interface {
	CreateNotification(ctx context.Context, n models.Notification) error
}

// NotificationDispatcher fans one notification out to every affected
// user. Submission errors are not retried or swallowed.
type NotificationDispatcher struct {
	notifier Notifier
	now      func() time.Time
}

func NewNotificationDispatcher(notifier Notifier, now func() time.Time) *NotificationDispatcher {
	if now == nil {
		now = time.Now
	}
	return &NotificationDispatcher{notifier: notifier, now: now}
}

// Send submits one notification per user in the set, all carrying the
// same timestamp read once at the start.
func (d *NotificationDispatcher) Send(ctx context.Context, users AffectedUsers) error {
	ts := d.now()

	for uid := range users {
		n := models.Notification{
			App:        notificationApp,
			User:       uid,
			Timestamp:  ts,
			ObjectType: notificationObject,
			ObjectID:   notificationID,
			Subject:    notificationSubject,
		}
		if err := d.notifier.CreateNotification(ctx, n); err != nil {
			return err
		}
	}

	return nil
}
