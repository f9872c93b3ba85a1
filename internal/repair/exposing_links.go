// Package repair removes link shares that duplicate a user or group
// share on the same resource. Such links were created by a historical
// defect and grant access equal to or wider than the share they
// shadow. The repair runs once per upgrade and is idempotent.
package repair

import (
	"context"
	"fmt"

	"naprawa-udostepnien/internal/database"
)

// Step is one repair step executed by the upgrade runner.
type Step interface {
	Name() string
	Run(ctx context.Context, out Output) error
}

// ShareStore is the slice of the share table the repair needs: count
// and stream the over-exposing link shares, delete one by id.
type ShareStore interface {
	CountExposingLinkShares(ctx context.Context) (int64, error)
	ForEachExposingLinkShare(ctx context.Context, fn func(database.ExposingLinkShare) error) error
	DeleteShareByID(ctx context.Context, shareID int64) error
}

// GroupDirectory enumerates group members.
type GroupDirectory interface {
	GetGroupUsers(ctx context.Context, gid string) ([]string, error)
}

// ExposingLinks sequences the whole pass: version gate, count, stream
// and delete, admin enumeration, notification fan-out.
type ExposingLinks struct {
	gate       *VersionGate
	shares     ShareStore
	groups     GroupDirectory
	dispatcher *NotificationDispatcher
	adminGroup string
}

func NewExposingLinks(
	gate *VersionGate,
	shares ShareStore,
	groups GroupDirectory,
	dispatcher *NotificationDispatcher,
	adminGroup string,
) *ExposingLinks {
	return &ExposingLinks{
		gate:       gate,
		shares:     shares,
		groups:     groups,
		dispatcher: dispatcher,
		adminGroup: adminGroup,
	}
}

func (r *ExposingLinks) Name() string {
	return "Remove link shares that duplicate a user or group share"
}

// Run executes one full pass. Every user that owned or initiated a
// removed share, plus every member of the admin group, ends up with
// exactly one notification. Deletes commit one by one, so a failed
// run leaves a consistent state that the next run picks up.
func (r *ExposingLinks) Run(ctx context.Context, out Output) error {
	ok, err := r.gate.ShouldRun(ctx)
	if err != nil {
		return err
	}
	if !ok {
		out.Info("Exposing link share repair not needed for this installation")
		return nil
	}

	total, err := r.shares.CountExposingLinkShares(ctx)
	if err != nil {
		return err
	}
	if total == 0 {
		out.Info("No exposing link shares found")
		return nil
	}

	affected := make(AffectedUsers)

	out.StartProgress(total)
	err = r.shares.ForEachExposingLinkShare(ctx, func(share database.ExposingLinkShare) error {
		affected.Add(share.UIDOwner)
		affected.Add(share.UIDInitiator)
		if err := r.shares.DeleteShareByID(ctx, share.ID); err != nil {
			return err
		}
		out.Advance()
		return nil
	})
	if err != nil {
		return err
	}
	out.FinishProgress()

	admins, err := r.groups.GetGroupUsers(ctx, r.adminGroup)
	if err != nil {
		return err
	}
	for _, uid := range admins {
		affected.Add(uid)
	}

	out.Info(fmt.Sprintf("Notifying %d affected users", len(affected)))
	if err := r.dispatcher.Send(ctx, affected); err != nil {
		return err
	}

	out.Info("Exposing link share repair finished")
	return nil
}
