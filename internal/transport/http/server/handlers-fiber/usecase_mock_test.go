package handlers_fiber

import (
	"context"

	"industry-flow/internal/entities"

	"github.com/stretchr/testify/mock"
)

type usecaseMock struct {
	mock.Mock
}

func (m *usecaseMock) Register(ctx context.Context, email, name, password string) (*entities.User, error) {
	args := m.Called(ctx, email, name, password)
	if u := args.Get(0); u != nil {
		return u.(*entities.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *usecaseMock) Login(ctx context.Context, email, password string) (entities.Session, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(entities.Session), args.Error(1)
}

func (m *usecaseMock) Me(ctx context.Context, p entities.Principal) (*entities.User, error) {
	args := m.Called(ctx, p)
	if u := args.Get(0); u != nil {
		return u.(*entities.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *usecaseMock) SetUserRole(ctx context.Context, p entities.Principal, userID string, role entities.Role) (*entities.User, error) {
	args := m.Called(ctx, p, userID, role)
	if u := args.Get(0); u != nil {
		return u.(*entities.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *usecaseMock) ResolvePrincipal(ctx context.Context, p entities.Principal) (entities.Principal, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(entities.Principal), args.Error(1)
}

func (m *usecaseMock) ListMembers(ctx context.Context, p entities.Principal, filter entities.MemberFilter) ([]entities.TeamMember, error) {
	args := m.Called(ctx, p, filter)
	list, _ := args.Get(0).([]entities.TeamMember)
	return list, args.Error(1)
}

func (m *usecaseMock) GetMember(ctx context.Context, p entities.Principal, id string) (*entities.TeamMember, error) {
	args := m.Called(ctx, p, id)
	if v := args.Get(0); v != nil {
		return v.(*entities.TeamMember), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *usecaseMock) CreateMember(ctx context.Context, p entities.Principal, member entities.TeamMember) (*entities.TeamMember, error) {
	args := m.Called(ctx, p, member)
	if v := args.Get(0); v != nil {
		return v.(*entities.TeamMember), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *usecaseMock) UpdateMember(ctx context.Context, p entities.Principal, member entities.TeamMember) (*entities.TeamMember, error) {
	args := m.Called(ctx, p, member)
	if v := args.Get(0); v != nil {
		return v.(*entities.TeamMember), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *usecaseMock) DeleteMember(ctx context.Context, p entities.Principal, id string) error {
	return m.Called(ctx, p, id).Error(0)
}

func (m *usecaseMock) ListProjects(ctx context.Context, p entities.Principal, filter entities.ProjectFilter) ([]entities.Project, error) {
	args := m.Called(ctx, p, filter)
	list, _ := args.Get(0).([]entities.Project)
	return list, args.Error(1)
}

func (m *usecaseMock) GetProject(ctx context.Context, p entities.Principal, id string) (*entities.Project, error) {
	args := m.Called(ctx, p, id)
	if v := args.Get(0); v != nil {
		return v.(*entities.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *usecaseMock) CreateProject(ctx context.Context, p entities.Principal, pr entities.Project) (*entities.Project, error) {
	args := m.Called(ctx, p, pr)
	if v := args.Get(0); v != nil {
		return v.(*entities.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *usecaseMock) UpdateProject(ctx context.Context, p entities.Principal, pr entities.Project) (*entities.Project, error) {
	args := m.Called(ctx, p, pr)
	if v := args.Get(0); v != nil {
		return v.(*entities.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *usecaseMock) DeleteProject(ctx context.Context, p entities.Principal, id string) error {
	return m.Called(ctx, p, id).Error(0)
}

func (m *usecaseMock) ChangeProjectStage(ctx context.Context, p entities.Principal, id string, stage entities.PipelineStage) (entities.StageChange, error) {
	args := m.Called(ctx, p, id, stage)
	return args.Get(0).(entities.StageChange), args.Error(1)
}

func (m *usecaseMock) ListTasks(ctx context.Context, p entities.Principal, filter entities.TaskFilter) ([]entities.Task, error) {
	args := m.Called(ctx, p, filter)
	list, _ := args.Get(0).([]entities.Task)
	return list, args.Error(1)
}

func (m *usecaseMock) GetTask(ctx context.Context, p entities.Principal, id string) (*entities.Task, error) {
	args := m.Called(ctx, p, id)
	if v := args.Get(0); v != nil {
		return v.(*entities.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *usecaseMock) CreateTask(ctx context.Context, p entities.Principal, t entities.Task) (*entities.Task, error) {
	args := m.Called(ctx, p, t)
	if v := args.Get(0); v != nil {
		return v.(*entities.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *usecaseMock) UpdateTask(ctx context.Context, p entities.Principal, t entities.Task) (*entities.Task, error) {
	args := m.Called(ctx, p, t)
	if v := args.Get(0); v != nil {
		return v.(*entities.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *usecaseMock) MoveTask(ctx context.Context, p entities.Principal, id string, status entities.TaskStatus, position *int) (*entities.Task, error) {
	args := m.Called(ctx, p, id, status, position)
	if v := args.Get(0); v != nil {
		return v.(*entities.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *usecaseMock) DeleteTask(ctx context.Context, p entities.Principal, id string) error {
	return m.Called(ctx, p, id).Error(0)
}

func (m *usecaseMock) ListNotifications(ctx context.Context, p entities.Principal, filter entities.NotificationFilter) ([]entities.Notification, error) {
	args := m.Called(ctx, p, filter)
	list, _ := args.Get(0).([]entities.Notification)
	return list, args.Error(1)
}

func (m *usecaseMock) MarkNotificationRead(ctx context.Context, p entities.Principal, id string) (*entities.Notification, error) {
	args := m.Called(ctx, p, id)
	if v := args.Get(0); v != nil {
		return v.(*entities.Notification), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *usecaseMock) MarkAllNotificationsRead(ctx context.Context, p entities.Principal) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *usecaseMock) ListDocuments(ctx context.Context, p entities.Principal, projectID string) ([]entities.Document, error) {
	args := m.Called(ctx, p, projectID)
	list, _ := args.Get(0).([]entities.Document)
	return list, args.Error(1)
}

func (m *usecaseMock) AddDocument(ctx context.Context, p entities.Principal, projectID, name, rawURL string) (*entities.Document, error) {
	args := m.Called(ctx, p, projectID, name, rawURL)
	if v := args.Get(0); v != nil {
		return v.(*entities.Document), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *usecaseMock) DeleteDocument(ctx context.Context, p entities.Principal, id string) error {
	return m.Called(ctx, p, id).Error(0)
}

func (m *usecaseMock) Revenue(ctx context.Context, p entities.Principal, q entities.RevenueQuery) (entities.RevenueReport, error) {
	args := m.Called(ctx, p, q)
	return args.Get(0).(entities.RevenueReport), args.Error(1)
}

func (m *usecaseMock) Summary(ctx context.Context, p entities.Principal) (entities.DashboardSummary, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(entities.DashboardSummary), args.Error(1)
}

func (m *usecaseMock) PipelineStages() []entities.PipelineStage {
	return m.Called().Get(0).([]entities.PipelineStage)
}

func (m *usecaseMock) Currencies() []string {
	return m.Called().Get(0).([]string)
}
