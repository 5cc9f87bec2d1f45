package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"industry-flow/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	defaultProjectLimit = 100
	maxProjectLimit     = 500
)

const (
	projectColumns = `id, name, client, sector, description, status, stage, budget, revenue, cost,
currency, start_date, deadline, manager_id, created_at, updated_at`
	insertProjectQuery = `
INSERT INTO projects(id, name, client, sector, description, status, stage, budget, revenue, cost,
                     currency, start_date, deadline, manager_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING ` + projectColumns
	selectProjectQuery     = `SELECT ` + projectColumns + ` FROM projects WHERE id=$1`
	selectProjectForUpdate = selectProjectQuery + ` FOR UPDATE`
	updateProjectQuery     = `
UPDATE projects
SET name=$2, client=$3, sector=$4, description=$5, status=$6, budget=$7, revenue=$8, cost=$9,
    currency=$10, start_date=$11, deadline=$12, manager_id=$13, updated_at=NOW()
WHERE id=$1
RETURNING ` + projectColumns
	updateProjectStageQuery = `
UPDATE projects
SET stage=$2, status=$3, updated_at=NOW()
WHERE id=$1
RETURNING ` + projectColumns
	deleteProjectQuery = `DELETE FROM projects WHERE id=$1`
)

var projectSortColumns = map[string]string{
	"name":       "name",
	"client":     "client",
	"created_at": "created_at",
	"deadline":   "deadline",
	"budget":     "budget",
	"revenue":    "revenue",
}

// CreateProject inserts a project.
func (p *Postgres) CreateProject(ctx context.Context, pr entities.Project) (*entities.Project, error) {
	res, err := scanProject(p.db.QueryRow(ctx, insertProjectQuery,
		pr.ID, pr.Name, pr.Client, pr.Sector, pr.Description, pr.Status, pr.Stage,
		pr.Budget, pr.Revenue, pr.Cost, pr.Currency, pr.StartDate, pr.Deadline, pr.ManagerID))
	if err != nil {
		p.log.Errorw("failed to insert project", "error", err, "name", pr.Name)
		return nil, fmt.Errorf("insert project: %w", err)
	}

	p.log.Infow("project created", "project_id", res.ID, "stage", res.Stage)
	return res, nil
}

// GetProject fetches a project by id.
func (p *Postgres) GetProject(ctx context.Context, id string) (*entities.Project, error) {
	res, err := scanProject(p.db.QueryRow(ctx, selectProjectQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrProjectNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return res, nil
}

// ListProjects returns projects matching the filter.
func (p *Postgres) ListProjects(ctx context.Context, filter entities.ProjectFilter) ([]entities.Project, error) {
	where, args := buildProjectFilter(filter)

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultProjectLimit
	}
	if limit > maxProjectLimit {
		limit = maxProjectLimit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + projectColumns + ` FROM projects ` + where + ` ` + projectOrder(filter) +
		` LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	return p.queryProjects(ctx, query, args...)
}

// UpdateProject overwrites the mutable fields of a project. Stage is changed only
// through UpdateProjectStage.
func (p *Postgres) UpdateProject(ctx context.Context, pr entities.Project) (*entities.Project, error) {
	res, err := scanProject(p.db.QueryRow(ctx, updateProjectQuery,
		pr.ID, pr.Name, pr.Client, pr.Sector, pr.Description, pr.Status,
		pr.Budget, pr.Revenue, pr.Cost, pr.Currency, pr.StartDate, pr.Deadline, pr.ManagerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrProjectNotFound
		}
		p.log.Errorw("failed to update project", "error", err, "project_id", pr.ID)
		return nil, fmt.Errorf("update project: %w", err)
	}

	p.log.Infow("project updated", "project_id", pr.ID)
	return res, nil
}

// DeleteProject removes a project together with its tasks and documents.
func (p *Postgres) DeleteProject(ctx context.Context, id string) error {
	tag, err := p.db.Exec(ctx, deleteProjectQuery, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrProjectNotFound
	}
	p.log.Infow("project deleted", "project_id", id)
	return nil
}

// UpdateProjectStage moves a project through the pipeline.
func (p *Postgres) UpdateProjectStage(ctx context.Context, id string, stage entities.PipelineStage) (entities.StageChange, error) {
	var change entities.StageChange

	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return change, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	current, err := scanProject(tx.QueryRow(ctx, selectProjectForUpdate, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return change, entities.ErrProjectNotFound
		}
		return change, fmt.Errorf("lock project: %w", err)
	}

	if err := current.Stage.CanMoveTo(stage); err != nil {
		return change, err
	}

	status := current.Status
	if stage == entities.StageCompleted {
		status = entities.ProjectCompleted
	}

	updated, err := scanProject(tx.QueryRow(ctx, updateProjectStageQuery, id, stage, status))
	if err != nil {
		return change, fmt.Errorf("update stage: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return change, fmt.Errorf("commit stage: %w", err)
	}

	p.log.Infow("project stage changed", "project_id", id, "from", current.Stage, "to", stage)
	return entities.StageChange{Project: *updated, Previous: current.Stage}, nil
}

func (p *Postgres) queryProjects(ctx context.Context, query string, args ...any) ([]entities.Project, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]entities.Project, 0)
	for rows.Next() {
		pr, err := scanProject(rows)
		if err != nil {
			p.log.Errorw("failed to scan project", "error", err)
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, *pr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}
	return projects, nil
}

func buildProjectFilter(filter entities.ProjectFilter) (string, []any) {
	conditions := make([]string, 0)
	args := make([]any, 0)
	idx := 1

	if search := strings.TrimSpace(filter.Search); search != "" {
		ph := "$" + strconv.Itoa(idx)
		conditions = append(conditions, "(name ILIKE "+ph+" OR client ILIKE "+ph+" OR description ILIKE "+ph+")")
		args = append(args, "%"+escapeLike(search)+"%")
		idx++
	}
	if entities.IsFilterSet(filter.Sector) {
		conditions = append(conditions, "LOWER(sector) = LOWER($"+strconv.Itoa(idx)+")")
		args = append(args, filter.Sector)
		idx++
	}
	if entities.IsFilterSet(filter.Client) {
		conditions = append(conditions, "LOWER(client) = LOWER($"+strconv.Itoa(idx)+")")
		args = append(args, filter.Client)
		idx++
	}
	if entities.IsFilterSet(filter.Status) {
		conditions = append(conditions, "status = $"+strconv.Itoa(idx))
		args = append(args, filter.Status)
		idx++
	}
	if entities.IsFilterSet(filter.Stage) {
		conditions = append(conditions, "stage = $"+strconv.Itoa(idx))
		args = append(args, filter.Stage)
		idx++
	}
	if entities.IsFilterSet(filter.ManagerID) {
		conditions = append(conditions, "manager_id = $"+strconv.Itoa(idx))
		args = append(args, filter.ManagerID)
	}

	if len(conditions) == 0 {
		return "", args
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}

func projectOrder(filter entities.ProjectFilter) string {
	column, ok := projectSortColumns[strings.ToLower(filter.SortBy)]
	if !ok {
		return "ORDER BY created_at DESC, id"
	}
	dir := "ASC"
	if strings.EqualFold(filter.Order, "desc") {
		dir = "DESC"
	}
	return "ORDER BY " + column + " " + dir + " NULLS LAST, id"
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func scanProject(row pgx.Row) (*entities.Project, error) {
	var pr entities.Project
	if err := row.Scan(&pr.ID, &pr.Name, &pr.Client, &pr.Sector, &pr.Description, &pr.Status, &pr.Stage,
		&pr.Budget, &pr.Revenue, &pr.Cost, &pr.Currency, &pr.StartDate, &pr.Deadline, &pr.ManagerID,
		&pr.CreatedAt, &pr.UpdatedAt); err != nil {
		return nil, err
	}
	return &pr, nil
}
