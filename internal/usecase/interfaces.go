package usecase

import (
	"context"

	"industry-flow/internal/entities"
)

// AuthUsecaseInterface abstracts account operations for delivery layer.
type AuthUsecaseInterface interface {
	Register(ctx context.Context, email, name, password string) (*entities.User, error)
	Login(ctx context.Context, email, password string) (entities.Session, error)
	Me(ctx context.Context, p entities.Principal) (*entities.User, error)
	SetUserRole(ctx context.Context, p entities.Principal, userID string, role entities.Role) (*entities.User, error)
	ResolvePrincipal(ctx context.Context, p entities.Principal) (entities.Principal, error)
}

// TeamUsecaseInterface abstracts team directory operations.
type TeamUsecaseInterface interface {
	ListMembers(ctx context.Context, p entities.Principal, filter entities.MemberFilter) ([]entities.TeamMember, error)
	GetMember(ctx context.Context, p entities.Principal, id string) (*entities.TeamMember, error)
	CreateMember(ctx context.Context, p entities.Principal, m entities.TeamMember) (*entities.TeamMember, error)
	UpdateMember(ctx context.Context, p entities.Principal, m entities.TeamMember) (*entities.TeamMember, error)
	DeleteMember(ctx context.Context, p entities.Principal, id string) error
}

// ProjectUsecaseInterface abstracts project and pipeline operations.
type ProjectUsecaseInterface interface {
	ListProjects(ctx context.Context, p entities.Principal, filter entities.ProjectFilter) ([]entities.Project, error)
	GetProject(ctx context.Context, p entities.Principal, id string) (*entities.Project, error)
	CreateProject(ctx context.Context, p entities.Principal, pr entities.Project) (*entities.Project, error)
	UpdateProject(ctx context.Context, p entities.Principal, pr entities.Project) (*entities.Project, error)
	DeleteProject(ctx context.Context, p entities.Principal, id string) error
	ChangeProjectStage(ctx context.Context, p entities.Principal, id string, stage entities.PipelineStage) (entities.StageChange, error)
}

// TaskUsecaseInterface abstracts task board operations.
type TaskUsecaseInterface interface {
	ListTasks(ctx context.Context, p entities.Principal, filter entities.TaskFilter) ([]entities.Task, error)
	GetTask(ctx context.Context, p entities.Principal, id string) (*entities.Task, error)
	CreateTask(ctx context.Context, p entities.Principal, t entities.Task) (*entities.Task, error)
	UpdateTask(ctx context.Context, p entities.Principal, t entities.Task) (*entities.Task, error)
	MoveTask(ctx context.Context, p entities.Principal, id string, status entities.TaskStatus, position *int) (*entities.Task, error)
	DeleteTask(ctx context.Context, p entities.Principal, id string) error
}

// NotificationUsecaseInterface abstracts per-user notifications.
type NotificationUsecaseInterface interface {
	ListNotifications(ctx context.Context, p entities.Principal, filter entities.NotificationFilter) ([]entities.Notification, error)
	MarkNotificationRead(ctx context.Context, p entities.Principal, id string) (*entities.Notification, error)
	MarkAllNotificationsRead(ctx context.Context, p entities.Principal) (int64, error)
}

// DocumentUsecaseInterface abstracts project document links.
type DocumentUsecaseInterface interface {
	ListDocuments(ctx context.Context, p entities.Principal, projectID string) ([]entities.Document, error)
	AddDocument(ctx context.Context, p entities.Principal, projectID, name, rawURL string) (*entities.Document, error)
	DeleteDocument(ctx context.Context, p entities.Principal, id string) error
}

// AnalyticsUsecaseInterface abstracts reporting operations.
type AnalyticsUsecaseInterface interface {
	Revenue(ctx context.Context, p entities.Principal, q entities.RevenueQuery) (entities.RevenueReport, error)
	Summary(ctx context.Context, p entities.Principal) (entities.DashboardSummary, error)
	PipelineStages() []entities.PipelineStage
	Currencies() []string
}
