package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"industry-flow/internal/entities"

	"github.com/google/uuid"
)

// ListTasks returns tasks matching the filter. The board and calendar views
// are both served by this listing.
func (u *Usecase) ListTasks(ctx context.Context, p entities.Principal, filter entities.TaskFilter) ([]entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := authorize(p, entities.PermTaskView); err != nil {
		return nil, err
	}
	if entities.IsFilterSet(filter.Status) && !entities.TaskStatus(filter.Status).Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidArgument, filter.Status)
	}
	if entities.IsFilterSet(filter.Priority) && !entities.TaskPriority(filter.Priority).Valid() {
		return nil, fmt.Errorf("%w: unknown priority %q", entities.ErrInvalidArgument, filter.Priority)
	}
	if filter.DueFrom != nil && filter.DueTo != nil && filter.DueTo.Before(*filter.DueFrom) {
		return nil, fmt.Errorf("%w: due_to is before due_from", entities.ErrInvalidArgument)
	}
	return u.repo.ListTasks(ctx, filter)
}

// GetTask returns one task.
func (u *Usecase) GetTask(ctx context.Context, p entities.Principal, id string) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := authorize(p, entities.PermTaskView); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, fmt.Errorf("%w: task id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetTask(ctx, id)
}

// CreateTask adds a task to a project and notifies the assignee.
func (u *Usecase) CreateTask(ctx context.Context, p entities.Principal, t entities.Task) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := authorize(p, entities.PermTaskWrite); err != nil {
		return nil, err
	}
	if t.ProjectID == "" {
		return nil, fmt.Errorf("%w: project id is required", entities.ErrInvalidArgument)
	}
	if t.Status == "" {
		t.Status = entities.TaskTodo
	}
	if !t.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidArgument, t.Status)
	}
	if err := u.validateTask(ctx, &t); err != nil {
		u.log.Errorw("failed to create task: invalid input", "error", err)
		return nil, err
	}
	if _, err := u.repo.GetProject(ctx, t.ProjectID); err != nil {
		return nil, err
	}

	t.ID = uuid.NewString()
	created, err := u.repo.CreateTask(ctx, t)
	if err != nil {
		return nil, err
	}

	if created.AssigneeID != nil {
		u.notifyAssignment(ctx, p, created)
	}
	return created, nil
}

// UpdateTask replaces a task's details. Callers without task:write may only
// edit tasks assigned to them and cannot reassign them.
func (u *Usecase) UpdateTask(ctx context.Context, p entities.Principal, t entities.Task) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := authorize(p, entities.PermTaskView); err != nil {
		return nil, err
	}
	if t.ID == "" {
		return nil, fmt.Errorf("%w: task id is required", entities.ErrInvalidArgument)
	}

	current, err := u.repo.GetTask(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	if err := u.checkTaskAccess(ctx, p, current); err != nil {
		return nil, err
	}
	if !p.Can(entities.PermTaskWrite) {
		if t.AssigneeID == nil {
			t.AssigneeID = current.AssigneeID
		}
		if !sameID(current.AssigneeID, t.AssigneeID) {
			return nil, fmt.Errorf("%w: only managers can reassign tasks", entities.ErrForbidden)
		}
	}
	if err := u.validateTask(ctx, &t); err != nil {
		return nil, err
	}

	updated, err := u.repo.UpdateTask(ctx, t)
	if err != nil {
		return nil, err
	}

	if updated.AssigneeID != nil && !sameID(current.AssigneeID, updated.AssigneeID) {
		u.notifyAssignment(ctx, p, updated)
	}
	return updated, nil
}

// MoveTask changes the status column and position of a task.
func (u *Usecase) MoveTask(ctx context.Context, p entities.Principal, id string, status entities.TaskStatus, position *int) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := authorize(p, entities.PermTaskView); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, fmt.Errorf("%w: task id is required", entities.ErrInvalidArgument)
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidArgument, status)
	}
	if position != nil && *position < 0 {
		return nil, fmt.Errorf("%w: position must not be negative", entities.ErrInvalidArgument)
	}

	current, err := u.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.checkTaskAccess(ctx, p, current); err != nil {
		return nil, err
	}

	moved, err := u.repo.MoveTask(ctx, id, status, position)
	if err != nil {
		return nil, err
	}

	if moved.Status == entities.TaskDone && current.Status != entities.TaskDone {
		u.notifyCompletion(ctx, p, moved)
	}
	return moved, nil
}

// DeleteTask removes a task.
func (u *Usecase) DeleteTask(ctx context.Context, p entities.Principal, id string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := authorize(p, entities.PermTaskDelete); err != nil {
		return err
	}
	if id == "" {
		return fmt.Errorf("%w: task id is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteTask(ctx, id)
}

func (u *Usecase) validateTask(ctx context.Context, t *entities.Task) error {
	t.Title = strings.TrimSpace(t.Title)
	if t.Title == "" {
		return fmt.Errorf("%w: title is required", entities.ErrInvalidArgument)
	}
	if t.Priority == "" {
		t.Priority = entities.PriorityMedium
	}
	if !t.Priority.Valid() {
		return fmt.Errorf("%w: unknown priority %q", entities.ErrInvalidArgument, t.Priority)
	}
	if t.AssigneeID != nil {
		if *t.AssigneeID == "" {
			t.AssigneeID = nil
			return nil
		}
		if _, err := u.repo.GetMember(ctx, *t.AssigneeID); err != nil {
			return err
		}
	}
	return nil
}

// checkTaskAccess lets holders of task:write through and otherwise requires the
// task to be assigned to the caller's own member record.
func (u *Usecase) checkTaskAccess(ctx context.Context, p entities.Principal, t *entities.Task) error {
	if p.Can(entities.PermTaskWrite) {
		return nil
	}
	if t.AssigneeID == nil {
		return fmt.Errorf("%w: task is not assigned to you", entities.ErrForbidden)
	}
	member, err := u.repo.MemberByUserID(ctx, p.UserID)
	if err != nil {
		if errors.Is(err, entities.ErrMemberNotFound) {
			return fmt.Errorf("%w: task is not assigned to you", entities.ErrForbidden)
		}
		return err
	}
	if member.ID != *t.AssigneeID {
		return fmt.Errorf("%w: task is not assigned to you", entities.ErrForbidden)
	}
	return nil
}

func (u *Usecase) notifyAssignment(ctx context.Context, actor entities.Principal, t *entities.Task) {
	u.notify(ctx, actor, u.memberUserID(ctx, t.AssigneeID), entities.Notification{
		Type:       entities.NotifyTaskAssigned,
		Title:      "New task: " + t.Title,
		Message:    fmt.Sprintf("You were assigned %q (priority %s).", t.Title, t.Priority),
		EntityType: "task",
		EntityID:   t.ID,
	})
}

func (u *Usecase) notifyCompletion(ctx context.Context, actor entities.Principal, t *entities.Task) {
	project, err := u.repo.GetProject(ctx, t.ProjectID)
	if err != nil {
		u.log.Warnw("skip completion notification", "task_id", t.ID, "error", err)
		return
	}
	u.notify(ctx, actor, u.memberUserID(ctx, project.ManagerID), entities.Notification{
		Type:       entities.NotifyTaskCompleted,
		Title:      "Task done: " + t.Title,
		Message:    fmt.Sprintf("%q in %s was completed.", t.Title, project.Name),
		EntityType: "task",
		EntityID:   t.ID,
	})
}

func sameID(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
