package postgres

import (
	"context"
	"errors"
	"fmt"

	"industry-flow/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	memberColumns     = `id, user_id, name, email, job_title, department, phone, is_active, created_at, updated_at`
	insertMemberQuery = `
INSERT INTO team_members(id, user_id, name, email, job_title, department, phone, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + memberColumns
	selectMemberQuery       = `SELECT ` + memberColumns + ` FROM team_members WHERE id=$1`
	selectMemberByUserQuery = `SELECT ` + memberColumns + ` FROM team_members WHERE user_id=$1`
	listMembersQuery        = `
SELECT ` + memberColumns + `
FROM team_members
WHERE ($1 = '' OR LOWER(department) = LOWER($1))
  AND ($2 = false OR is_active = true)
ORDER BY name`
	updateMemberQuery = `
UPDATE team_members
SET user_id=$2, name=$3, email=$4, job_title=$5, department=$6, phone=$7, is_active=$8, updated_at=NOW()
WHERE id=$1
RETURNING ` + memberColumns
	deleteMemberQuery = `DELETE FROM team_members WHERE id=$1`
)

// CreateMember inserts a team directory entry.
func (p *Postgres) CreateMember(ctx context.Context, m entities.TeamMember) (*entities.TeamMember, error) {
	res, err := scanMember(p.db.QueryRow(ctx, insertMemberQuery,
		m.ID, m.UserID, m.Name, m.Email, m.JobTitle, m.Department, m.Phone, m.IsActive))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, entities.ErrMemberExists
		}
		p.log.Errorw("failed to insert member", "error", err, "email", m.Email)
		return nil, fmt.Errorf("insert member: %w", err)
	}

	p.log.Infow("member created", "member_id", res.ID)
	return res, nil
}

// GetMember fetches a member by id.
func (p *Postgres) GetMember(ctx context.Context, id string) (*entities.TeamMember, error) {
	res, err := scanMember(p.db.QueryRow(ctx, selectMemberQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrMemberNotFound
		}
		return nil, fmt.Errorf("get member: %w", err)
	}
	return res, nil
}

// MemberByUserID fetches the member linked to an account.
func (p *Postgres) MemberByUserID(ctx context.Context, userID string) (*entities.TeamMember, error) {
	res, err := scanMember(p.db.QueryRow(ctx, selectMemberByUserQuery, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrMemberNotFound
		}
		return nil, fmt.Errorf("get member by user: %w", err)
	}
	return res, nil
}

// ListMembers returns the team directory ordered by name.
func (p *Postgres) ListMembers(ctx context.Context, filter entities.MemberFilter) ([]entities.TeamMember, error) {
	department := ""
	if entities.IsFilterSet(filter.Department) {
		department = filter.Department
	}

	rows, err := p.db.Query(ctx, listMembersQuery, department, filter.ActiveOnly)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	members := make([]entities.TeamMember, 0)
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			p.log.Errorw("failed to scan member", "error", err)
			return nil, fmt.Errorf("scan member: %w", err)
		}
		members = append(members, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate members: %w", err)
	}
	return members, nil
}

// UpdateMember overwrites a member's mutable fields.
func (p *Postgres) UpdateMember(ctx context.Context, m entities.TeamMember) (*entities.TeamMember, error) {
	res, err := scanMember(p.db.QueryRow(ctx, updateMemberQuery,
		m.ID, m.UserID, m.Name, m.Email, m.JobTitle, m.Department, m.Phone, m.IsActive))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrMemberNotFound
		}
		if isUniqueViolation(err) {
			return nil, entities.ErrMemberExists
		}
		return nil, fmt.Errorf("update member: %w", err)
	}

	p.log.Infow("member updated", "member_id", m.ID)
	return res, nil
}

// DeleteMember removes a member; their tasks and projects become unassigned.
func (p *Postgres) DeleteMember(ctx context.Context, id string) error {
	tag, err := p.db.Exec(ctx, deleteMemberQuery, id)
	if err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrMemberNotFound
	}
	p.log.Infow("member deleted", "member_id", id)
	return nil
}

func scanMember(row pgx.Row) (*entities.TeamMember, error) {
	var m entities.TeamMember
	if err := row.Scan(&m.ID, &m.UserID, &m.Name, &m.Email, &m.JobTitle, &m.Department,
		&m.Phone, &m.IsActive, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}
