package domain

import (
	"context"
	"fmt"
	"strings"

	"industry-flow/internal/analytics"
	"industry-flow/internal/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListProjects returns projects matching the filter.
func (u *Usecase) ListProjects(ctx context.Context, p entities.Principal, filter entities.ProjectFilter) ([]entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := authorize(p, entities.PermProjectView); err != nil {
		return nil, err
	}
	if err := validateProjectFilter(filter); err != nil {
		return nil, err
	}
	return u.repo.ListProjects(ctx, filter)
}

// GetProject returns one project.
func (u *Usecase) GetProject(ctx context.Context, p entities.Principal, id string) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := authorize(p, entities.PermProjectView); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, fmt.Errorf("%w: project id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetProject(ctx, id)
}

// CreateProject stores a new project at the start of the pipeline.
func (u *Usecase) CreateProject(ctx context.Context, p entities.Principal, pr entities.Project) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := authorize(p, entities.PermProjectWrite); err != nil {
		return nil, err
	}

	if pr.Status == "" {
		pr.Status = entities.ProjectActive
	}
	pr.Stage = entities.StageLead
	if pr.Currency == "" {
		pr.Currency = u.defaultCurrency
	}
	if err := u.validateProject(ctx, &pr); err != nil {
		u.log.Errorw("failed to create project: invalid input", "error", err)
		return nil, err
	}

	pr.ID = uuid.NewString()
	return u.repo.CreateProject(ctx, pr)
}

// UpdateProject replaces the project's details. Empty status or currency keep
// the stored value; the stage changes only through ChangeProjectStage.
func (u *Usecase) UpdateProject(ctx context.Context, p entities.Principal, pr entities.Project) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := authorize(p, entities.PermProjectWrite); err != nil {
		return nil, err
	}
	if pr.ID == "" {
		return nil, fmt.Errorf("%w: project id is required", entities.ErrInvalidArgument)
	}

	current, err := u.repo.GetProject(ctx, pr.ID)
	if err != nil {
		return nil, err
	}
	if pr.Status == "" {
		pr.Status = current.Status
	}
	if pr.Currency == "" {
		pr.Currency = current.Currency
	}
	pr.Stage = current.Stage
	if err := u.validateProject(ctx, &pr); err != nil {
		return nil, err
	}
	return u.repo.UpdateProject(ctx, pr)
}

// DeleteProject removes a project with its tasks and documents.
func (u *Usecase) DeleteProject(ctx context.Context, p entities.Principal, id string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := authorize(p, entities.PermProjectDelete); err != nil {
		return err
	}
	if id == "" {
		return fmt.Errorf("%w: project id is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteProject(ctx, id)
}

// ChangeProjectStage moves a project along the pipeline and notifies its manager.
func (u *Usecase) ChangeProjectStage(ctx context.Context, p entities.Principal, id string, stage entities.PipelineStage) (entities.StageChange, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := authorize(p, entities.PermProjectStage); err != nil {
		return entities.StageChange{}, err
	}
	if id == "" {
		return entities.StageChange{}, fmt.Errorf("%w: project id is required", entities.ErrInvalidArgument)
	}
	if !stage.Valid() {
		return entities.StageChange{}, fmt.Errorf("%w: unknown stage %q", entities.ErrInvalidArgument, stage)
	}

	change, err := u.repo.UpdateProjectStage(ctx, id, stage)
	if err != nil {
		return entities.StageChange{}, err
	}

	if change.Previous != change.Project.Stage {
		u.notify(ctx, p, u.memberUserID(ctx, change.Project.ManagerID), entities.Notification{
			Type:       entities.NotifyStageChanged,
			Title:      fmt.Sprintf("%s moved to %s", change.Project.Name, change.Project.Stage),
			Message:    fmt.Sprintf("Pipeline stage changed from %s to %s.", change.Previous, change.Project.Stage),
			EntityType: "project",
			EntityID:   change.Project.ID,
		})
	}
	return change, nil
}

func (u *Usecase) validateProject(ctx context.Context, pr *entities.Project) error {
	pr.Name = strings.TrimSpace(pr.Name)
	if pr.Name == "" {
		return fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	pr.Client = strings.TrimSpace(pr.Client)
	pr.Sector = strings.TrimSpace(pr.Sector)
	if !pr.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", entities.ErrInvalidArgument, pr.Status)
	}
	for field, v := range map[string]decimal.Decimal{"budget": pr.Budget, "revenue": pr.Revenue, "cost": pr.Cost} {
		if v.IsNegative() {
			return fmt.Errorf("%w: %s must not be negative", entities.ErrInvalidArgument, field)
		}
	}

	code, err := analytics.NormalizeCode(pr.Currency)
	if err != nil {
		return err
	}
	if u.rates != nil && !u.rates.Has(code) {
		return fmt.Errorf("%w: no exchange rate for %s", entities.ErrUnsupportedCurrency, code)
	}
	pr.Currency = code

	if pr.StartDate != nil && pr.Deadline != nil && pr.Deadline.Before(*pr.StartDate) {
		return fmt.Errorf("%w: deadline is before start date", entities.ErrInvalidArgument)
	}

	if pr.ManagerID != nil {
		if *pr.ManagerID == "" {
			pr.ManagerID = nil
			return nil
		}
		if _, err := u.repo.GetMember(ctx, *pr.ManagerID); err != nil {
			return err
		}
	}
	return nil
}

func validateProjectFilter(filter entities.ProjectFilter) error {
	if entities.IsFilterSet(filter.Status) && !entities.ProjectStatus(filter.Status).Valid() {
		return fmt.Errorf("%w: unknown status %q", entities.ErrInvalidArgument, filter.Status)
	}
	if entities.IsFilterSet(filter.Stage) && !entities.PipelineStage(filter.Stage).Valid() {
		return fmt.Errorf("%w: unknown stage %q", entities.ErrInvalidArgument, filter.Stage)
	}
	if filter.Limit < 0 || filter.Offset < 0 {
		return fmt.Errorf("%w: limit and offset must not be negative", entities.ErrInvalidArgument)
	}
	return nil
}
