package entities

import "time"

// TeamMember is an entry of the team directory.
type TeamMember struct {
	ID         string
	UserID     *string
	Name       string
	Email      string
	JobTitle   string
	Department string
	Phone      string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// MemberFilter narrows the team directory listing.
type MemberFilter struct {
	Department string
	ActiveOnly bool
}
