package entities

import "time"

// NotificationType classifies notifications.
type NotificationType string

const (
	NotifyTaskAssigned  NotificationType = "task_assigned"
	NotifyStageChanged  NotificationType = "stage_changed"
	NotifyTaskCompleted NotificationType = "task_completed"
	NotifyDocumentAdded NotificationType = "document_added"
)

// Notification is a message addressed to one account.
type Notification struct {
	ID         string
	UserID     string
	Type       NotificationType
	Title      string
	Message    string
	EntityType string
	EntityID   string
	Read       bool
	CreatedAt  time.Time
}

// NotificationFilter narrows notification listings.
type NotificationFilter struct {
	UnreadOnly bool
	Limit      int
}
