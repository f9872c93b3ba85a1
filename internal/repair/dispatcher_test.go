package repair

import (
	"context"
	"errors"
	"testing"
	"time"

	"naprawa-udostepnien/internal/models"

	"github.com/stretchr/testify/require"
)

type fakeNotifier struct {
	sent []models.Notification
	err  error
}

func (f *fakeNotifier) CreateNotification(ctx context.Context, n models.Notification) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, n)
	return nil
}

func TestAffectedUsersDeduplicates(t *testing.T) {
	users := make(AffectedUsers)
	users.Add("alice")
	users.Add("alice")
	users.Add("bob")

	require.Len(t, users, 2)
	require.Contains(t, users, "alice")
	require.Contains(t, users, "bob")
}

func TestDispatcherSendsOnePerUser(t *testing.T) {
	notifier := &fakeNotifier{}
	ts := time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)
	dispatcher := NewNotificationDispatcher(notifier, func() time.Time { return ts })

	users := make(AffectedUsers)
	users.Add("alice")
	users.Add("alice")
	users.Add("bob")

	err := dispatcher.Send(context.Background(), users)
	require.NoError(t, err)
	require.Len(t, notifier.sent, 2)

	recipients := map[string]models.Notification{}
	for _, n := range notifier.sent {
		recipients[n.User] = n
	}
	require.Contains(t, recipients, "alice")
	require.Contains(t, recipients, "bob")

	for _, n := range notifier.sent {
		require.Equal(t, "core", n.App)
		require.Equal(t, "repair", n.ObjectType)
		require.Equal(t, "exposing_links", n.ObjectID)
		require.Equal(t, "repair_exposing_links", n.Subject)
		require.Equal(t, ts, n.Timestamp)
	}
}

func TestDispatcherEmptySetSendsNothing(t *testing.T) {
	notifier := &fakeNotifier{}
	dispatcher := NewNotificationDispatcher(notifier, nil)

	err := dispatcher.Send(context.Background(), make(AffectedUsers))
	require.NoError(t, err)
	require.Empty(t, notifier.sent)
}

func TestDispatcherPropagatesSubmissionError(t *testing.T) {
	sendErr := errors.New("notification backend down")
	dispatcher := NewNotificationDispatcher(&fakeNotifier{err: sendErr}, nil)

	users := make(AffectedUsers)
	users.Add("alice")

	err := dispatcher.Send(context.Background(), users)
	require.ErrorIs(t, err, sendErr)
}
