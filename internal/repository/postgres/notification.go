package postgres

import (
	"context"
	"errors"
	"fmt"

	"industry-flow/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	notificationColumns     = `id, user_id, type, title, message, entity_type, entity_id, is_read, created_at`
	insertNotificationQuery = `
INSERT INTO notifications(id, user_id, type, title, message, entity_type, entity_id)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + notificationColumns
	listNotificationsQuery = `
SELECT ` + notificationColumns + `
FROM notifications
WHERE user_id=$1 AND ($2 = false OR is_read = false)
ORDER BY created_at DESC, id
LIMIT $3`
	markNotificationReadQuery = `
UPDATE notifications
SET is_read = true
WHERE id=$1 AND user_id=$2
RETURNING ` + notificationColumns
	markAllNotificationsReadQuery = `UPDATE notifications SET is_read = true WHERE user_id=$1 AND is_read = false`
)

// CreateNotification stores a notification for one account.
func (p *Postgres) CreateNotification(ctx context.Context, n entities.Notification) (*entities.Notification, error) {
	res, err := scanNotification(p.db.QueryRow(ctx, insertNotificationQuery,
		n.ID, n.UserID, n.Type, n.Title, n.Message, n.EntityType, n.EntityID))
	if err != nil {
		p.log.Errorw("failed to insert notification", "error", err, "user_id", n.UserID, "type", n.Type)
		return nil, fmt.Errorf("insert notification: %w", err)
	}
	return res, nil
}

// ListNotifications returns the newest notifications of an account.
func (p *Postgres) ListNotifications(ctx context.Context, userID string, filter entities.NotificationFilter) ([]entities.Notification, error) {
	rows, err := p.db.Query(ctx, listNotificationsQuery, userID, filter.UnreadOnly, filter.Limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	res := make([]entities.Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		res = append(res, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notifications: %w", err)
	}
	return res, nil
}

// MarkNotificationRead flags one notification of the account as read.
func (p *Postgres) MarkNotificationRead(ctx context.Context, userID, id string) (*entities.Notification, error) {
	res, err := scanNotification(p.db.QueryRow(ctx, markNotificationReadQuery, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("mark notification read: %w", err)
	}
	return res, nil
}

// MarkAllNotificationsRead flags every unread notification of the account and
// returns how many changed.
func (p *Postgres) MarkAllNotificationsRead(ctx context.Context, userID string) (int64, error) {
	tag, err := p.db.Exec(ctx, markAllNotificationsReadQuery, userID)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanNotification(row pgx.Row) (*entities.Notification, error) {
	var n entities.Notification
	if err := row.Scan(&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message, &n.EntityType,
		&n.EntityID, &n.Read, &n.CreatedAt); err != nil {
		return nil, err
	}
	return &n, nil
}
