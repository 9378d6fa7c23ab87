package entities

import "time"

// Team groups users under a leader.
type Team struct {
	ID          string
	Name        string
	Description *string
	LeaderID    *string
	Leader      *UserRef
	Members     []TeamMember
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TeamMember is a membership row with its user expanded.
type TeamMember struct {
	ID       string
	TeamID   string
	UserID   string
	JoinedAt time.Time
	User     *MemberUser
}

// MemberUser is the user projection carried on memberships.
type MemberUser struct {
	ID    string
	Name  string
	Email string
	Role  Role
}

// TeamFilter narrows team listings.
type TeamFilter struct {
	Search string
	Limit  int
	Offset int
}

// TeamUpdate carries a partial team update; nil fields are left untouched.
type TeamUpdate struct {
	Name        *string
	Description *string
	LeaderID    *string
}
