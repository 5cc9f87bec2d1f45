// Package entities contains core business entities and errors.
package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound is wrapped by every missing-record error.
	ErrNotFound = errors.New("not found")
	// ErrConflict is wrapped by every uniqueness error.
	ErrConflict = errors.New("conflict")
	// ErrUserNotFound is returned when an account does not exist.
	ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)
	// ErrMemberNotFound is returned when a team member does not exist.
	ErrMemberNotFound = fmt.Errorf("team member %w", ErrNotFound)
	// ErrProjectNotFound signals missing project.
	ErrProjectNotFound = fmt.Errorf("project %w", ErrNotFound)
	// ErrTaskNotFound signals missing task.
	ErrTaskNotFound = fmt.Errorf("task %w", ErrNotFound)
	// ErrNotificationNotFound signals missing notification.
	ErrNotificationNotFound = fmt.Errorf("notification %w", ErrNotFound)
	// ErrDocumentNotFound signals missing document link.
	ErrDocumentNotFound = fmt.Errorf("document %w", ErrNotFound)
	// ErrEmailTaken signals account email conflict.
	ErrEmailTaken = fmt.Errorf("%w: email already registered", ErrConflict)
	// ErrMemberExists signals team member email conflict.
	ErrMemberExists = fmt.Errorf("%w: team member exists", ErrConflict)
	// ErrInvalidCredentials signals a failed sign in.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthorized signals a missing or bad session token.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden signals that the caller's role lacks a permission.
	ErrForbidden = errors.New("forbidden")
	// ErrStageSkip signals an attempt to jump ahead more than one pipeline stage.
	ErrStageSkip = errors.New("pipeline stage skipped")
	// ErrUnsupportedCurrency signals a currency without an exchange rate.
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	// ErrIntegrationDisabled signals that an external integration is not configured.
	ErrIntegrationDisabled = errors.New("integration disabled")
)
