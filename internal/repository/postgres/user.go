package postgres

import (
	"context"
	"errors"
	"fmt"

	"industry-flow/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	insertUserQuery = `
INSERT INTO users(id, email, name, role, password_hash)
VALUES ($1, $2, $3, $4, $5)
RETURNING created_at`
	selectUserColumns   = `SELECT id, email, name, role, password_hash, created_at FROM users`
	selectUserByEmail   = selectUserColumns + ` WHERE email=$1`
	selectUserByIDQuery = selectUserColumns + ` WHERE id=$1`
	lockUsersQuery      = `LOCK TABLE users IN SHARE ROW EXCLUSIVE MODE`
	anyUserQuery        = `SELECT EXISTS (SELECT 1 FROM users)`
	updateUserRoleQuery = `
UPDATE users SET role=$2 WHERE id=$1
RETURNING id, email, name, role, password_hash, created_at`
)

// UserByEmail looks an account up by its sign-in email.
func (p *Postgres) UserByEmail(ctx context.Context, email string) (*entities.User, error) {
	return p.selectUser(ctx, selectUserByEmail, email)
}

// UserByID looks an account up by id.
func (p *Postgres) UserByID(ctx context.Context, id string) (*entities.User, error) {
	return p.selectUser(ctx, selectUserByIDQuery, id)
}

// RegisterUser inserts a new account. The very first account gets firstRole
// instead of user.Role; the users table is locked so concurrent sign ups see
// each other.
func (p *Postgres) RegisterUser(ctx context.Context, user entities.User, firstRole entities.Role) (*entities.User, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, lockUsersQuery); err != nil {
		return nil, fmt.Errorf("lock users: %w", err)
	}
	var exists bool
	if err := tx.QueryRow(ctx, anyUserQuery).Scan(&exists); err != nil {
		return nil, fmt.Errorf("check users: %w", err)
	}
	if !exists {
		user.Role = firstRole
	}

	if err := tx.QueryRow(ctx, insertUserQuery, user.ID, user.Email, user.Name, user.Role, user.PasswordHash).
		Scan(&user.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, entities.ErrEmailTaken
		}
		p.log.Errorw("failed to insert user", "error", err, "email", user.Email)
		return nil, fmt.Errorf("insert user: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit user: %w", err)
	}

	p.log.Infow("user registered", "user_id", user.ID, "role", user.Role)
	return &user, nil
}

// UpdateUserRole changes the access level of an account.
func (p *Postgres) UpdateUserRole(ctx context.Context, id string, role entities.Role) (*entities.User, error) {
	u, err := p.selectUser(ctx, updateUserRoleQuery, id, role)
	if err != nil {
		return nil, err
	}
	p.log.Infow("user role changed", "user_id", id, "role", role)
	return u, nil
}

func (p *Postgres) selectUser(ctx context.Context, query string, args ...any) (*entities.User, error) {
	var u entities.User
	if err := p.db.QueryRow(ctx, query, args...).
		Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("select user: %w", err)
	}
	return &u, nil
}
