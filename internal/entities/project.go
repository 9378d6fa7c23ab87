package entities

import "time"

// ProjectStatus is a project lifecycle state.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "Active"
	ProjectCompleted ProjectStatus = "Completed"
	ProjectOnHold    ProjectStatus = "On Hold"
	ProjectCancelled ProjectStatus = "Cancelled"
)

// Project is a unit of client work carried out by a team.
type Project struct {
	ID          string
	Name        string
	Description *string
	ClientID    *string
	Client      *UserRef
	Status      ProjectStatus
	StartDate   *time.Time
	EndDate     *time.Time
	TeamID      *string
	Team        *ProjectTeam
	Tasks       []TaskRef
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProjectTeam is the team projection expanded on projects.
type ProjectTeam struct {
	ID         string
	Name       string
	LeaderName *string
	Members    []MemberUser
}

// ProjectRef is the short projection embedded on tasks.
type ProjectRef struct {
	ID   string
	Name string
}

// ProjectFilter narrows project listings.
type ProjectFilter struct {
	Status ProjectStatus
	Search string
	Limit  int
	Offset int
}

// ProjectUpdate carries a partial project update; nil fields are left untouched.
type ProjectUpdate struct {
	Name        *string
	Description *string
	ClientID    *string
	Status      *ProjectStatus
	StartDate   *time.Time
	EndDate     *time.Time
	TeamID      *string
}
