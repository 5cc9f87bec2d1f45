// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"
	"time"

	"industry-flow/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// UserInterface exposes account operations.
type UserInterface interface {
	UserByEmail(ctx context.Context, email string) (*entities.User, error)
	UserByID(ctx context.Context, id string) (*entities.User, error)
	RegisterUser(ctx context.Context, user entities.User, firstRole entities.Role) (*entities.User, error)
	UpdateUserRole(ctx context.Context, id string, role entities.Role) (*entities.User, error)
}

// MemberInterface exposes team directory operations.
type MemberInterface interface {
	CreateMember(ctx context.Context, member entities.TeamMember) (*entities.TeamMember, error)
	GetMember(ctx context.Context, id string) (*entities.TeamMember, error)
	MemberByUserID(ctx context.Context, userID string) (*entities.TeamMember, error)
	ListMembers(ctx context.Context, filter entities.MemberFilter) ([]entities.TeamMember, error)
	UpdateMember(ctx context.Context, member entities.TeamMember) (*entities.TeamMember, error)
	DeleteMember(ctx context.Context, id string) error
}

// ProjectInterface exposes project operations.
type ProjectInterface interface {
	CreateProject(ctx context.Context, project entities.Project) (*entities.Project, error)
	GetProject(ctx context.Context, id string) (*entities.Project, error)
	ListProjects(ctx context.Context, filter entities.ProjectFilter) ([]entities.Project, error)
	UpdateProject(ctx context.Context, project entities.Project) (*entities.Project, error)
	DeleteProject(ctx context.Context, id string) error
	UpdateProjectStage(ctx context.Context, id string, stage entities.PipelineStage) (entities.StageChange, error)
}

// TaskInterface exposes task operations.
type TaskInterface interface {
	CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error)
	GetTask(ctx context.Context, id string) (*entities.Task, error)
	ListTasks(ctx context.Context, filter entities.TaskFilter) ([]entities.Task, error)
	UpdateTask(ctx context.Context, task entities.Task) (*entities.Task, error)
	MoveTask(ctx context.Context, id string, status entities.TaskStatus, position *int) (*entities.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

// NotificationInterface exposes per-user notification operations.
type NotificationInterface interface {
	CreateNotification(ctx context.Context, n entities.Notification) (*entities.Notification, error)
	ListNotifications(ctx context.Context, userID string, filter entities.NotificationFilter) ([]entities.Notification, error)
	MarkNotificationRead(ctx context.Context, userID, id string) (*entities.Notification, error)
	MarkAllNotificationsRead(ctx context.Context, userID string) (int64, error)
}

// DocumentInterface exposes project document links.
type DocumentInterface interface {
	CreateDocument(ctx context.Context, doc entities.Document) (*entities.Document, error)
	ListDocuments(ctx context.Context, projectID string) ([]entities.Document, error)
	GetDocument(ctx context.Context, id string) (*entities.Document, error)
	DeleteDocument(ctx context.Context, id string) error
}

// AnalyticsInterface exposes aggregated read models.
type AnalyticsInterface interface {
	ProjectsForRevenue(ctx context.Context, filter entities.ProjectFilter) ([]entities.Project, error)
	DashboardSummary(ctx context.Context, now time.Time) (entities.DashboardSummary, error)
}
