package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectStatus enumerates project lifecycle states.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectOnHold    ProjectStatus = "on_hold"
	ProjectCompleted ProjectStatus = "completed"
	ProjectCancelled ProjectStatus = "cancelled"
)

// Valid reports whether s is a known status.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectActive, ProjectOnHold, ProjectCompleted, ProjectCancelled:
		return true
	}
	return false
}

// Project is a client engagement tracked through the pipeline.
type Project struct {
	ID          string
	Name        string
	Client      string
	Sector      string
	Description string
	Status      ProjectStatus
	Stage       PipelineStage
	Budget      decimal.Decimal
	Revenue     decimal.Decimal
	Cost        decimal.Decimal
	Currency    string
	StartDate   *time.Time
	Deadline    *time.Time
	ManagerID   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProjectFilter narrows and orders project listings.
// Empty values and "all" leave a field unconstrained.
type ProjectFilter struct {
	Search    string
	Sector    string
	Status    string
	Stage     string
	Client    string
	ManagerID string
	SortBy    string
	Order     string
	Limit     int
	Offset    int
}

// StageChange is the outcome of a pipeline move.
type StageChange struct {
	Project  Project
	Previous PipelineStage
}

// IsFilterSet reports whether a filter value constrains the listing.
func IsFilterSet(v string) bool {
	return v != "" && v != "all"
}
