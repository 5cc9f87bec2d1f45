// Package domain contains application Usecases orchestrating domain logic.
package domain

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"industry-flow/internal/auth"
	"industry-flow/internal/entities"

	"github.com/google/uuid"
)

// Register creates an account. The first account becomes admin.
func (u *Usecase) Register(ctx context.Context, email, name, password string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user, err := u.repo.RegisterUser(ctx, entities.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		Role:         entities.RoleMember,
		PasswordHash: hash,
	}, entities.RoleAdmin)
	if err != nil {
		return nil, err
	}
	u.log.Infow("user registered", "user_id", user.ID, "role", user.Role)
	return user, nil
}

// Login checks credentials and issues a session token.
func (u *Usecase) Login(ctx context.Context, email, password string) (entities.Session, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return entities.Session{}, fmt.Errorf("%w: email and password are required", entities.ErrInvalidArgument)
	}

	user, err := u.repo.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return entities.Session{}, entities.ErrInvalidCredentials
		}
		return entities.Session{}, err
	}
	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		u.log.Infow("login rejected", "user_id", user.ID)
		return entities.Session{}, err
	}

	token, expiresAt, err := u.tokens.Issue(*user)
	if err != nil {
		return entities.Session{}, fmt.Errorf("issue token: %w", err)
	}
	return entities.Session{Token: token, ExpiresAt: expiresAt, User: *user}, nil
}

// Me returns the caller's account.
func (u *Usecase) Me(ctx context.Context, p entities.Principal) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if p.UserID == "" {
		return nil, entities.ErrUnauthorized
	}
	return u.repo.UserByID(ctx, p.UserID)
}

// ResolvePrincipal replaces the role carried by a session token with the
// account's current role. Tokens of deleted accounts are rejected.
func (u *Usecase) ResolvePrincipal(ctx context.Context, p entities.Principal) (entities.Principal, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if p.UserID == "" {
		return entities.Principal{}, entities.ErrUnauthorized
	}
	user, err := u.repo.UserByID(ctx, p.UserID)
	if errors.Is(err, entities.ErrUserNotFound) {
		return entities.Principal{}, fmt.Errorf("%w: account %s not found", entities.ErrUnauthorized, p.UserID)
	}
	if err != nil {
		return entities.Principal{}, err
	}
	if user.Role != p.Role {
		u.log.Debugw("token role superseded", "user_id", user.ID, "token_role", p.Role, "role", user.Role)
	}
	return entities.Principal{UserID: user.ID, Role: user.Role}, nil
}

// SetUserRole changes another account's role.
func (u *Usecase) SetUserRole(ctx context.Context, p entities.Principal, userID string, role entities.Role) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := authorize(p, entities.PermTeamWrite); err != nil {
		return nil, err
	}
	if userID == "" || !role.Valid() {
		return nil, fmt.Errorf("%w: user id and a valid role are required", entities.ErrInvalidArgument)
	}
	if userID == p.UserID {
		return nil, fmt.Errorf("%w: cannot change own role", entities.ErrInvalidArgument)
	}
	return u.repo.UpdateUserRole(ctx, userID, role)
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", fmt.Errorf("%w: invalid email %q", entities.ErrInvalidArgument, email)
	}
	return email, nil
}
