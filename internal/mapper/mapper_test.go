package mapper

import (
	"testing"
	"time"

	"industry-flow/internal/entities"
	oapi "industry-flow/internal/oapi"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestFromOAPIProjectDefaults(t *testing.T) {
	p := FromOAPIProject(oapi.ProjectInput{Name: "Refinery"})

	require.Equal(t, "Refinery", p.Name)
	require.True(t, p.Budget.IsZero())
	require.True(t, p.Revenue.IsZero())
	require.True(t, p.Cost.IsZero())
	require.Empty(t, p.Currency)
	require.Empty(t, p.Status)
	require.Nil(t, p.StartDate)
}

func TestFromOAPIProjectValues(t *testing.T) {
	budget := decimal.RequireFromString("1500.25")
	status := oapi.ProjectStatusOnHold
	sector := "Energy"
	start := openapi_types.Date{Time: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}

	p := FromOAPIProject(oapi.ProjectInput{
		Name:      "Refinery",
		Sector:    &sector,
		Status:    &status,
		Budget:    &budget,
		StartDate: &start,
	})

	require.Equal(t, entities.ProjectOnHold, p.Status)
	require.Equal(t, "Energy", p.Sector)
	require.True(t, budget.Equal(p.Budget))
	require.NotNil(t, p.StartDate)
	require.Equal(t, start.Time, *p.StartDate)
}

func TestToOAPITaskOverdue(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	due := now.AddDate(0, 0, -1)

	open := ToOAPITask(entities.Task{ID: "t1", Status: entities.TaskTodo, DueDate: &due}, now)
	require.True(t, open.Overdue)
	require.Equal(t, "2024-05-31", open.DueDate.String())

	done := ToOAPITask(entities.Task{ID: "t2", Status: entities.TaskDone, DueDate: &due}, now)
	require.False(t, done.Overdue)
}

func TestFromOAPIMemberActiveByDefault(t *testing.T) {
	m := FromOAPIMember(oapi.TeamMemberInput{Name: "Ada", Email: "ada@example.com"})
	require.True(t, m.IsActive)

	inactive := false
	m = FromOAPIMember(oapi.TeamMemberInput{Name: "Ada", Email: "ada@example.com", IsActive: &inactive})
	require.False(t, m.IsActive)
}

func TestToOAPIDocumentOmitsEmptyMetadata(t *testing.T) {
	d := ToOAPIDocument(entities.Document{ID: "d1", Provider: entities.ProviderLink})
	require.Nil(t, d.ExternalId)
	require.Nil(t, d.MimeType)
	require.Nil(t, d.Size)

	d = ToOAPIDocument(entities.Document{ID: "d2", Provider: entities.ProviderOneDrive, ExternalID: "x", MimeType: "application/pdf", Size: 42})
	require.Equal(t, "x", *d.ExternalId)
	require.Equal(t, int64(42), *d.Size)
}

func TestProjectFilterFromParams(t *testing.T) {
	sortBy := oapi.ListProjectsParamsSortByRevenue
	order := oapi.Desc
	limit := 10
	sector := "Energy"

	f := ProjectFilterFromParams(oapi.ListProjectsParams{Sector: &sector, SortBy: &sortBy, Order: &order, Limit: &limit})
	require.Equal(t, entities.ProjectFilter{Sector: "Energy", SortBy: "revenue", Order: "desc", Limit: 10}, f)
}
