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
	taskColumns     = `id, project_id, title, description, status, priority, assignee_id, due_date, position, created_at, updated_at`
	insertTaskQuery = `
INSERT INTO tasks(id, project_id, title, description, status, priority, assignee_id, due_date, position)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8,
        COALESCE((SELECT MAX(position) + 1 FROM tasks WHERE project_id=$2 AND status=$5), 0))
RETURNING ` + taskColumns
	selectTaskQuery     = `SELECT ` + taskColumns + ` FROM tasks WHERE id=$1`
	selectTaskForUpdate = selectTaskQuery + ` FOR UPDATE`
	updateTaskQuery     = `
UPDATE tasks
SET title=$2, description=$3, priority=$4, assignee_id=$5, due_date=$6, updated_at=NOW()
WHERE id=$1
RETURNING ` + taskColumns
	columnTailQuery = `
SELECT COALESCE(MAX(position) + 1, 0)
FROM tasks
WHERE project_id=$1 AND status=$2 AND id<>$3`
	shiftColumnQuery = `
UPDATE tasks
SET position = position + 1
WHERE project_id=$1 AND status=$2 AND id<>$3 AND position >= $4`
	moveTaskQuery = `
UPDATE tasks
SET status=$2, position=$3, updated_at=NOW()
WHERE id=$1
RETURNING ` + taskColumns
	deleteTaskQuery = `DELETE FROM tasks WHERE id=$1`
)

// CreateTask inserts a task at the end of its status column.
func (p *Postgres) CreateTask(ctx context.Context, t entities.Task) (*entities.Task, error) {
	res, err := scanTask(p.db.QueryRow(ctx, insertTaskQuery,
		t.ID, t.ProjectID, t.Title, t.Description, t.Status, t.Priority, t.AssigneeID, t.DueDate))
	if err != nil {
		p.log.Errorw("failed to insert task", "error", err, "project_id", t.ProjectID)
		return nil, fmt.Errorf("insert task: %w", err)
	}

	p.log.Infow("task created", "task_id", res.ID, "project_id", res.ProjectID)
	return res, nil
}

// GetTask fetches a task by id.
func (p *Postgres) GetTask(ctx context.Context, id string) (*entities.Task, error) {
	res, err := scanTask(p.db.QueryRow(ctx, selectTaskQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return res, nil
}

// ListTasks returns tasks matching the filter ordered by board position.
func (p *Postgres) ListTasks(ctx context.Context, filter entities.TaskFilter) ([]entities.Task, error) {
	where, args := buildTaskFilter(filter)
	query := `SELECT ` + taskColumns + ` FROM tasks ` + where + ` ORDER BY status, position, created_at`

	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]entities.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			p.log.Errorw("failed to scan task", "error", err)
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}

// UpdateTask overwrites task details. Status and position change through MoveTask.
func (p *Postgres) UpdateTask(ctx context.Context, t entities.Task) (*entities.Task, error) {
	res, err := scanTask(p.db.QueryRow(ctx, updateTaskQuery,
		t.ID, t.Title, t.Description, t.Priority, t.AssigneeID, t.DueDate))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		p.log.Errorw("failed to update task", "error", err, "task_id", t.ID)
		return nil, fmt.Errorf("update task: %w", err)
	}

	p.log.Infow("task updated", "task_id", t.ID)
	return res, nil
}

// MoveTask puts a task into a status column. A nil position appends it to the column.
func (p *Postgres) MoveTask(ctx context.Context, id string, status entities.TaskStatus, position *int) (*entities.Task, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	current, err := scanTask(tx.QueryRow(ctx, selectTaskForUpdate, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("lock task: %w", err)
	}

	var pos int
	if err := tx.QueryRow(ctx, columnTailQuery, current.ProjectID, status, id).Scan(&pos); err != nil {
		return nil, fmt.Errorf("column tail: %w", err)
	}
	if position != nil && *position < pos {
		pos = *position
		if _, err := tx.Exec(ctx, shiftColumnQuery, current.ProjectID, status, id, pos); err != nil {
			return nil, fmt.Errorf("shift column: %w", err)
		}
	}

	moved, err := scanTask(tx.QueryRow(ctx, moveTaskQuery, id, status, pos))
	if err != nil {
		return nil, fmt.Errorf("move task: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit move: %w", err)
	}

	p.log.Infow("task moved", "task_id", id, "from", current.Status, "to", status, "position", pos)
	return moved, nil
}

// DeleteTask removes a task.
func (p *Postgres) DeleteTask(ctx context.Context, id string) error {
	tag, err := p.db.Exec(ctx, deleteTaskQuery, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrTaskNotFound
	}
	p.log.Infow("task deleted", "task_id", id)
	return nil
}

func buildTaskFilter(filter entities.TaskFilter) (string, []any) {
	conditions := make([]string, 0)
	args := make([]any, 0)
	idx := 1

	if filter.ProjectID != "" {
		conditions = append(conditions, "project_id = $"+strconv.Itoa(idx))
		args = append(args, filter.ProjectID)
		idx++
	}
	if filter.AssigneeID != "" {
		conditions = append(conditions, "assignee_id = $"+strconv.Itoa(idx))
		args = append(args, filter.AssigneeID)
		idx++
	}
	if entities.IsFilterSet(filter.Status) {
		conditions = append(conditions, "status = $"+strconv.Itoa(idx))
		args = append(args, filter.Status)
		idx++
	}
	if entities.IsFilterSet(filter.Priority) {
		conditions = append(conditions, "priority = $"+strconv.Itoa(idx))
		args = append(args, filter.Priority)
		idx++
	}
	if filter.DueFrom != nil {
		conditions = append(conditions, "due_date >= $"+strconv.Itoa(idx))
		args = append(args, *filter.DueFrom)
		idx++
	}
	if filter.DueTo != nil {
		conditions = append(conditions, "due_date <= $"+strconv.Itoa(idx))
		args = append(args, *filter.DueTo)
	}

	if len(conditions) == 0 {
		return "", args
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}

func scanTask(row pgx.Row) (*entities.Task, error) {
	var t entities.Task
	if err := row.Scan(&t.ID, &t.ProjectID, &t.Title, &t.Description, &t.Status, &t.Priority,
		&t.AssigneeID, &t.DueDate, &t.Position, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}
