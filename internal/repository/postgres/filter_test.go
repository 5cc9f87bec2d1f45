package postgres

import (
	"testing"
	"time"

	"industry-flow/internal/entities"

	"github.com/stretchr/testify/require"
)

func TestBuildProjectFilter(t *testing.T) {
	where, args := buildProjectFilter(entities.ProjectFilter{})
	require.Empty(t, where)
	require.Empty(t, args)

	where, args = buildProjectFilter(entities.ProjectFilter{Sector: "all", Status: "all"})
	require.Empty(t, where)
	require.Empty(t, args)

	where, args = buildProjectFilter(entities.ProjectFilter{
		Search:    "50%",
		Sector:    "Energy",
		Stage:     "proposal",
		ManagerID: "m1",
	})
	require.Equal(t,
		"WHERE (name ILIKE $1 OR client ILIKE $1 OR description ILIKE $1) AND LOWER(sector) = LOWER($2) AND stage = $3 AND manager_id = $4",
		where)
	require.Equal(t, []any{`%50\%%`, "Energy", "proposal", "m1"}, args)
}

func TestProjectOrder(t *testing.T) {
	require.Equal(t, "ORDER BY created_at DESC, id", projectOrder(entities.ProjectFilter{}))
	require.Equal(t, "ORDER BY created_at DESC, id", projectOrder(entities.ProjectFilter{SortBy: "id; DROP TABLE projects"}))
	require.Equal(t, "ORDER BY budget DESC NULLS LAST, id", projectOrder(entities.ProjectFilter{SortBy: "budget", Order: "DESC"}))
	require.Equal(t, "ORDER BY name ASC NULLS LAST, id", projectOrder(entities.ProjectFilter{SortBy: "Name"}))
}

func TestBuildTaskFilter(t *testing.T) {
	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	where, args := buildTaskFilter(entities.TaskFilter{
		ProjectID: "p1",
		Status:    "todo",
		Priority:  "all",
		DueFrom:   &from,
		DueTo:     &to,
	})
	require.Equal(t, "WHERE project_id = $1 AND status = $2 AND due_date >= $3 AND due_date <= $4", where)
	require.Equal(t, []any{"p1", "todo", from, to}, args)
}

func TestOrderByPipeline(t *testing.T) {
	res := orderByPipeline([]entities.CountStat{{Key: "contract", Count: 2}, {Key: "lead", Count: 5}})
	require.Len(t, res, len(entities.PipelineStages()))
	require.Equal(t, entities.CountStat{Key: "lead", Count: 5}, res[0])
	require.Equal(t, entities.CountStat{Key: "qualified", Count: 0}, res[1])
	require.Equal(t, entities.CountStat{Key: "contract", Count: 2}, res[4])
}
