package domain

import (
	"context"
	"fmt"
	"strings"

	"industry-flow/internal/entities"

	"github.com/google/uuid"
)

// ListMembers returns the team directory.
func (u *Usecase) ListMembers(ctx context.Context, p entities.Principal, filter entities.MemberFilter) ([]entities.TeamMember, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := authorize(p, entities.PermTeamView); err != nil {
		return nil, err
	}
	return u.repo.ListMembers(ctx, filter)
}

// GetMember returns one team member.
func (u *Usecase) GetMember(ctx context.Context, p entities.Principal, id string) (*entities.TeamMember, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := authorize(p, entities.PermTeamView); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, fmt.Errorf("%w: member id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetMember(ctx, id)
}

// CreateMember adds a team member.
func (u *Usecase) CreateMember(ctx context.Context, p entities.Principal, m entities.TeamMember) (*entities.TeamMember, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := authorize(p, entities.PermTeamWrite); err != nil {
		return nil, err
	}
	if err := u.validateMember(ctx, &m); err != nil {
		u.log.Errorw("failed to create member: invalid input", "error", err)
		return nil, err
	}

	m.ID = uuid.NewString()
	return u.repo.CreateMember(ctx, m)
}

// UpdateMember replaces a member's details.
func (u *Usecase) UpdateMember(ctx context.Context, p entities.Principal, m entities.TeamMember) (*entities.TeamMember, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := authorize(p, entities.PermTeamWrite); err != nil {
		return nil, err
	}
	if m.ID == "" {
		return nil, fmt.Errorf("%w: member id is required", entities.ErrInvalidArgument)
	}
	if err := u.validateMember(ctx, &m); err != nil {
		return nil, err
	}
	return u.repo.UpdateMember(ctx, m)
}

// DeleteMember removes a member from the directory.
func (u *Usecase) DeleteMember(ctx context.Context, p entities.Principal, id string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := authorize(p, entities.PermTeamWrite); err != nil {
		return err
	}
	if id == "" {
		return fmt.Errorf("%w: member id is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteMember(ctx, id)
}

func (u *Usecase) validateMember(ctx context.Context, m *entities.TeamMember) error {
	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" {
		return fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	email, err := normalizeEmail(m.Email)
	if err != nil {
		return err
	}
	m.Email = email
	m.JobTitle = strings.TrimSpace(m.JobTitle)
	m.Department = strings.TrimSpace(m.Department)
	m.Phone = strings.TrimSpace(m.Phone)

	if m.UserID != nil {
		if *m.UserID == "" {
			m.UserID = nil
			return nil
		}
		if _, err := u.repo.UserByID(ctx, *m.UserID); err != nil {
			return err
		}
	}
	return nil
}
