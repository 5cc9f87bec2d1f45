package domain

import (
	"context"
	"fmt"

	"industry-flow/internal/entities"

	"github.com/google/uuid"
)

const (
	defaultNotificationLimit = 50
	maxNotificationLimit     = 200
)

// ListNotifications returns the caller's notifications, newest first.
func (u *Usecase) ListNotifications(ctx context.Context, p entities.Principal, filter entities.NotificationFilter) ([]entities.Notification, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := authorize(p, entities.PermNotificationView); err != nil {
		return nil, err
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultNotificationLimit
	}
	if filter.Limit > maxNotificationLimit {
		filter.Limit = maxNotificationLimit
	}
	return u.repo.ListNotifications(ctx, p.UserID, filter)
}

// MarkNotificationRead flags one of the caller's notifications as read.
func (u *Usecase) MarkNotificationRead(ctx context.Context, p entities.Principal, id string) (*entities.Notification, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := authorize(p, entities.PermNotificationView); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, fmt.Errorf("%w: notification id is required", entities.ErrInvalidArgument)
	}
	return u.repo.MarkNotificationRead(ctx, p.UserID, id)
}

// MarkAllNotificationsRead flags every unread notification of the caller.
func (u *Usecase) MarkAllNotificationsRead(ctx context.Context, p entities.Principal) (int64, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := authorize(p, entities.PermNotificationView); err != nil {
		return 0, err
	}
	return u.repo.MarkAllNotificationsRead(ctx, p.UserID)
}

// notify stores n for userID and hands it to the dispatcher. Actors are never
// notified about their own actions. Failures are logged only.
func (u *Usecase) notify(ctx context.Context, actor entities.Principal, userID string, n entities.Notification) {
	if userID == "" || userID == actor.UserID {
		return
	}

	n.ID = uuid.NewString()
	n.UserID = userID
	created, err := u.repo.CreateNotification(ctx, n)
	if err != nil {
		u.log.Errorw("failed to store notification", "user_id", userID, "type", n.Type, "error", err)
		return
	}
	if u.notifier != nil {
		u.notifier.Dispatch(*created)
	}
}

// memberUserID returns the account linked to a team member, or "".
func (u *Usecase) memberUserID(ctx context.Context, memberID *string) string {
	if memberID == nil {
		return ""
	}
	m, err := u.repo.GetMember(ctx, *memberID)
	if err != nil {
		u.log.Debugw("member lookup for notification failed", "member_id", *memberID, "error", err)
		return ""
	}
	if m.UserID == nil {
		return ""
	}
	return *m.UserID
}
