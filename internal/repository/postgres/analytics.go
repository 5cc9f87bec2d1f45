package postgres

import (
	"context"
	"fmt"
	"time"

	"industry-flow/internal/entities"
)

const (
	projectsByStatusQuery = `SELECT status, COUNT(*) FROM projects GROUP BY status ORDER BY status`
	projectsByStageQuery  = `SELECT stage, COUNT(*) FROM projects GROUP BY stage`
	tasksByStatusQuery    = `SELECT status, COUNT(*) FROM tasks GROUP BY status ORDER BY status`
	overdueTasksQuery     = `SELECT COUNT(*) FROM tasks WHERE due_date < $1 AND status <> 'done'`
	activeMembersQuery    = `SELECT COUNT(*) FROM team_members WHERE is_active = true`
)

// ProjectsForRevenue returns every project matching the filter, ignoring paging.
func (p *Postgres) ProjectsForRevenue(ctx context.Context, filter entities.ProjectFilter) ([]entities.Project, error) {
	where, args := buildProjectFilter(filter)
	query := `SELECT ` + projectColumns + ` FROM projects ` + where + ` ORDER BY created_at`
	return p.queryProjects(ctx, query, args...)
}

// DashboardSummary counts projects, tasks and members for the dashboard.
func (p *Postgres) DashboardSummary(ctx context.Context, now time.Time) (entities.DashboardSummary, error) {
	res := entities.DashboardSummary{}

	var err error
	if res.ProjectsByStatus, err = p.countBy(ctx, projectsByStatusQuery); err != nil {
		return res, fmt.Errorf("projects by status: %w", err)
	}
	byStage, err := p.countBy(ctx, projectsByStageQuery)
	if err != nil {
		return res, fmt.Errorf("projects by stage: %w", err)
	}
	res.ProjectsByStage = orderByPipeline(byStage)

	if res.TasksByStatus, err = p.countBy(ctx, tasksByStatusQuery); err != nil {
		return res, fmt.Errorf("tasks by status: %w", err)
	}
	if err := p.db.QueryRow(ctx, overdueTasksQuery, now).Scan(&res.OverdueTasks); err != nil {
		return res, fmt.Errorf("overdue tasks: %w", err)
	}
	if err := p.db.QueryRow(ctx, activeMembersQuery).Scan(&res.ActiveMembers); err != nil {
		return res, fmt.Errorf("active members: %w", err)
	}
	return res, nil
}

func (p *Postgres) countBy(ctx context.Context, query string) ([]entities.CountStat, error) {
	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]entities.CountStat, 0)
	for rows.Next() {
		var s entities.CountStat
		if err := rows.Scan(&s.Key, &s.Count); err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, rows.Err()
}

// orderByPipeline lists every stage in pipeline order, including empty ones.
func orderByPipeline(stats []entities.CountStat) []entities.CountStat {
	counts := make(map[string]int64, len(stats))
	for _, s := range stats {
		counts[s.Key] = s.Count
	}
	stages := entities.PipelineStages()
	res := make([]entities.CountStat, 0, len(stages))
	for _, st := range stages {
		res = append(res, entities.CountStat{Key: string(st), Count: counts[string(st)]})
	}
	return res
}
