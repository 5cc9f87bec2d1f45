package postgres

import (
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"industry-flow/config"
	"industry-flow/internal/entities"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProjectLifecycleIntegration(t *testing.T) {
	ctx := context.Background()
	repo := startRepo(t)

	manager := createMember(ctx, t, repo, "Ada", "ada@example.com", "Delivery")

	energy, err := repo.CreateProject(ctx, newProject("Solar farm", "Helios", "Energy", "EUR", "120000.50", &manager.ID))
	require.NoError(t, err)
	require.Equal(t, entities.StageLead, energy.Stage)
	require.True(t, decimal.RequireFromString("120000.50").Equal(energy.Revenue))

	_, err = repo.CreateProject(ctx, newProject("Pipeline audit", "Petro", "Oil & Gas", "USD", "5000", nil))
	require.NoError(t, err)

	list, err := repo.ListProjects(ctx, entities.ProjectFilter{Sector: "energy"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, energy.ID, list[0].ID)

	list, err = repo.ListProjects(ctx, entities.ProjectFilter{Search: "audit"})
	require.NoError(t, err)
	require.Len(t, list, 1)

	list, err = repo.ListProjects(ctx, entities.ProjectFilter{Sector: "all", SortBy: "revenue", Order: "desc"})
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, energy.ID, list[0].ID)

	_, err = repo.UpdateProjectStage(ctx, energy.ID, entities.StageProposal)
	require.ErrorIs(t, err, entities.ErrStageSkip)

	change, err := repo.UpdateProjectStage(ctx, energy.ID, entities.StageQualified)
	require.NoError(t, err)
	require.Equal(t, entities.StageLead, change.Previous)
	require.Equal(t, entities.StageQualified, change.Project.Stage)

	_, err = repo.UpdateProjectStage(ctx, uuid.NewString(), entities.StageQualified)
	require.ErrorIs(t, err, entities.ErrProjectNotFound)

	// deleting the manager leaves the project unassigned
	require.NoError(t, repo.DeleteMember(ctx, manager.ID))
	fetched, err := repo.GetProject(ctx, energy.ID)
	require.NoError(t, err)
	require.Nil(t, fetched.ManagerID)

	projects, err := repo.ProjectsForRevenue(ctx, entities.ProjectFilter{})
	require.NoError(t, err)
	require.Len(t, projects, 2)

	require.NoError(t, repo.DeleteProject(ctx, energy.ID))
	require.ErrorIs(t, repo.DeleteProject(ctx, energy.ID), entities.ErrProjectNotFound)
}

func TestTaskBoardIntegration(t *testing.T) {
	ctx := context.Background()
	repo := startRepo(t)

	project, err := repo.CreateProject(ctx, newProject("Plant retrofit", "Acme", "Manufacturing", "USD", "0", nil))
	require.NoError(t, err)
	member := createMember(ctx, t, repo, "Grace", "grace@example.com", "Engineering")

	due := time.Now().Add(-time.Hour).UTC()
	first, err := repo.CreateTask(ctx, entities.Task{ID: uuid.NewString(), ProjectID: project.ID, Title: "Survey",
		Status: entities.TaskTodo, Priority: entities.PriorityHigh, AssigneeID: &member.ID, DueDate: &due})
	require.NoError(t, err)
	second, err := repo.CreateTask(ctx, entities.Task{ID: uuid.NewString(), ProjectID: project.ID, Title: "Design",
		Status: entities.TaskTodo, Priority: entities.PriorityMedium})
	require.NoError(t, err)
	require.Equal(t, 0, first.Position)
	require.Equal(t, 1, second.Position)

	moved, err := repo.MoveTask(ctx, second.ID, entities.TaskInProgress, nil)
	require.NoError(t, err)
	require.Equal(t, entities.TaskInProgress, moved.Status)
	require.Equal(t, 0, moved.Position)

	zero := 0
	moved, err = repo.MoveTask(ctx, first.ID, entities.TaskInProgress, &zero)
	require.NoError(t, err)
	require.Equal(t, 0, moved.Position)

	shifted, err := repo.GetTask(ctx, second.ID)
	require.NoError(t, err)
	require.Equal(t, 1, shifted.Position)

	tasks, err := repo.ListTasks(ctx, entities.TaskFilter{AssigneeID: member.ID})
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	summary, err := repo.DashboardSummary(ctx, time.Now())
	require.NoError(t, err)
	require.Equal(t, int64(1), summary.OverdueTasks)
	require.Equal(t, int64(1), summary.ActiveMembers)
	require.Equal(t, entities.CountStat{Key: "lead", Count: 1}, summary.ProjectsByStage[0])

	require.NoError(t, repo.DeleteProject(ctx, project.ID))
	_, err = repo.GetTask(ctx, first.ID)
	require.ErrorIs(t, err, entities.ErrTaskNotFound)
}

func TestUsersAndNotificationsIntegration(t *testing.T) {
	ctx := context.Background()
	repo := startRepo(t)

	user, err := repo.RegisterUser(ctx, entities.User{ID: uuid.NewString(), Email: "lin@example.com", Name: "Lin",
		Role: entities.RoleMember, PasswordHash: "hash"}, entities.RoleAdmin)
	require.NoError(t, err)
	require.Equal(t, entities.RoleAdmin, user.Role)

	_, err = repo.RegisterUser(ctx, entities.User{ID: uuid.NewString(), Email: "lin@example.com", Name: "Lin 2",
		Role: entities.RoleMember, PasswordHash: "hash"}, entities.RoleAdmin)
	require.ErrorIs(t, err, entities.ErrEmailTaken)

	second, err := repo.RegisterUser(ctx, entities.User{ID: uuid.NewString(), Email: "kai@example.com", Name: "Kai",
		Role: entities.RoleMember, PasswordHash: "hash"}, entities.RoleAdmin)
	require.NoError(t, err)
	require.Equal(t, entities.RoleMember, second.Role)

	demoted, err := repo.UpdateUserRole(ctx, user.ID, entities.RoleManager)
	require.NoError(t, err)
	require.Equal(t, entities.RoleManager, demoted.Role)

	byEmail, err := repo.UserByEmail(ctx, "lin@example.com")
	require.NoError(t, err)
	require.Equal(t, user.ID, byEmail.ID)

	for i := 0; i < 3; i++ {
		_, err := repo.CreateNotification(ctx, entities.Notification{ID: uuid.NewString(), UserID: user.ID,
			Type: entities.NotifyTaskAssigned, Title: "Task " + strconv.Itoa(i)})
		require.NoError(t, err)
	}

	list, err := repo.ListNotifications(ctx, user.ID, entities.NotificationFilter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, list, 2)

	read, err := repo.MarkNotificationRead(ctx, user.ID, list[0].ID)
	require.NoError(t, err)
	require.True(t, read.Read)

	_, err = repo.MarkNotificationRead(ctx, uuid.NewString(), list[1].ID)
	require.ErrorIs(t, err, entities.ErrNotificationNotFound)

	n, err := repo.MarkAllNotificationsRead(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), n)

	unread, err := repo.ListNotifications(ctx, user.ID, entities.NotificationFilter{UnreadOnly: true, Limit: 50})
	require.NoError(t, err)
	require.Empty(t, unread)
}

func TestConcurrentFirstRegistrationIntegration(t *testing.T) {
	ctx := context.Background()
	repo := startRepo(t)

	const n = 8
	roles := make(chan entities.Role, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u, err := repo.RegisterUser(ctx, entities.User{ID: uuid.NewString(), Email: "user" + strconv.Itoa(i) + "@example.com",
				Name: "User", Role: entities.RoleMember, PasswordHash: "hash"}, entities.RoleAdmin)
			if err == nil {
				roles <- u.Role
			}
		}(i)
	}
	wg.Wait()
	close(roles)

	admins, total := 0, 0
	for r := range roles {
		total++
		if r == entities.RoleAdmin {
			admins++
		}
	}
	require.Equal(t, n, total)
	require.Equal(t, 1, admins)
}

func TestDocumentsIntegration(t *testing.T) {
	ctx := context.Background()
	repo := startRepo(t)

	project, err := repo.CreateProject(ctx, newProject("Grid study", "Volt", "Energy", "USD", "0", nil))
	require.NoError(t, err)

	doc, err := repo.CreateDocument(ctx, entities.Document{ID: uuid.NewString(), ProjectID: project.ID,
		Name: "scope.docx", URL: "https://1drv.ms/w/s!abc", Provider: entities.ProviderOneDrive, Size: 2048})
	require.NoError(t, err)

	docs, err := repo.ListDocuments(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, int64(2048), docs[0].Size)

	require.NoError(t, repo.DeleteDocument(ctx, doc.ID))
	_, err = repo.GetDocument(ctx, doc.ID)
	require.ErrorIs(t, err, entities.ErrDocumentNotFound)
}

func newProject(name, client, sector, cur, revenue string, managerID *string) entities.Project {
	return entities.Project{
		ID:        uuid.NewString(),
		Name:      name,
		Client:    client,
		Sector:    sector,
		Status:    entities.ProjectActive,
		Stage:     entities.StageLead,
		Budget:    decimal.Zero,
		Revenue:   decimal.RequireFromString(revenue),
		Cost:      decimal.Zero,
		Currency:  cur,
		ManagerID: managerID,
	}
}

func createMember(ctx context.Context, t *testing.T, repo *Postgres, name, email, department string) *entities.TeamMember {
	t.Helper()

	m, err := repo.CreateMember(ctx, entities.TeamMember{ID: uuid.NewString(), Name: name, Email: email,
		Department: department, IsActive: true})
	require.NoError(t, err)
	return m
}

func startRepo(t *testing.T) *Postgres {
	t.Helper()
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })
	return repo
}

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=industry_flow_db",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	hostPort := resource.GetPort("5432/tcp")

	port, err := strconv.Atoi(hostPort)
	require.NoError(t, err)
	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "0.0.0.0", Port: 8080, ShutdownTimeout: 5 * time.Second},
		HTTP:   config.HTTPConfig{RequestTimeout: 5 * time.Second},
		Postgres: config.PostgresConfig{
			Host:           "localhost",
			Port:           port,
			User:           "postgres",
			Password:       "postgres",
			DBName:         "industry_flow_db",
			SSLMode:        "disable",
			MigrationsDir:  migrationsDir,
			QueryTimeout:   10 * time.Second,
			MigrateTimeout: 20 * time.Second,
			MaxConns:       4,
			MinConns:       1,
		},
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", cfg.Postgres.DSN())
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	cleanup := func() {
		_ = pool.Purge(resource)
	}

	return cfg, cleanup
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}
