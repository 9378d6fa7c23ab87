// Package api defines the transport DTOs exchanged over HTTP.
package api

import "time"

// Envelope is the uniform response shape. All three keys are always present.
type Envelope struct {
	Data    any     `json:"data"`
	Error   *string `json:"error"`
	Message *string `json:"message"`
}

// Pagination describes one page of a listing.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int64 `json:"total_pages"`
}

// UserRef is the short user projection embedded in expansions.
type UserRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// User is a full profile representation.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	AvatarURL *string   `json:"avatar_url"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MemberUser is the user projection carried on team memberships.
type MemberUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// TeamMember is a membership row.
type TeamMember struct {
	ID       string      `json:"id"`
	TeamID   string      `json:"team_id"`
	UserID   string      `json:"user_id"`
	JoinedAt time.Time   `json:"joined_at"`
	User     *MemberUser `json:"user"`
}

// Team is a team with leader and members expanded.
type Team struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description *string      `json:"description"`
	LeaderID    *string      `json:"leader_id"`
	Leader      *UserRef     `json:"leader"`
	Members     []TeamMember `json:"members"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// ProjectTeam is the team projection expanded on projects.
type ProjectTeam struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	LeaderName *string      `json:"leader_name"`
	Members    []MemberUser `json:"members,omitempty"`
}

// TaskRef is the short task projection expanded on projects.
type TaskRef struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Status       string  `json:"status"`
	Priority     string  `json:"priority"`
	AssignedTo   *string `json:"assigned_to"`
	AssignedName *string `json:"assigned_name"`
}

// Project is a project with client and team expanded.
type Project struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description *string      `json:"description"`
	ClientID    *string      `json:"client_id"`
	Client      *UserRef     `json:"client"`
	Status      string       `json:"status"`
	StartDate   *string      `json:"start_date"`
	EndDate     *string      `json:"end_date"`
	TeamID      *string      `json:"team_id"`
	Team        *ProjectTeam `json:"team"`
	Tasks       []TaskRef    `json:"tasks,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// CommentUser is the author projection carried on comments.
type CommentUser struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	AvatarURL *string `json:"avatar_url"`
}

// Comment is a task comment with its author expanded.
type Comment struct {
	ID        string       `json:"id"`
	TaskID    string       `json:"task_id"`
	UserID    string       `json:"user_id"`
	Content   string       `json:"content"`
	User      *CommentUser `json:"user"`
	CreatedAt time.Time    `json:"created_at"`
}

// Task is a task with assignee, creator and project expanded.
type Task struct {
	ID             string      `json:"id"`
	Title          string      `json:"title"`
	Description    *string     `json:"description"`
	Status         string      `json:"status"`
	Priority       string      `json:"priority"`
	DueDate        *string     `json:"due_date"`
	EstimatedHours *float64    `json:"estimated_hours"`
	AssignedTo     *string     `json:"assigned_to"`
	AssignedUser   *UserRef    `json:"assigned_user"`
	ProjectID      *string     `json:"project_id"`
	Project        *ProjectRef `json:"project"`
	CreatedBy      string      `json:"created_by"`
	CreatedUser    *UserRef    `json:"created_user"`
	Comments       []Comment   `json:"comments,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// ProjectRef is the short project projection expanded on tasks.
type ProjectRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DashboardStats mirrors the counts shown on the dashboard.
type DashboardStats struct {
	TotalProjects     int64 `json:"total_projects"`
	ActiveProjects    int64 `json:"active_projects"`
	CompletedProjects int64 `json:"completed_projects"`
	OnHoldProjects    int64 `json:"on_hold_projects"`
	TotalTasks        int64 `json:"total_tasks"`
	PendingTasks      int64 `json:"pending_tasks"`
	InProgressTasks   int64 `json:"in_progress_tasks"`
	CompletedTasks    int64 `json:"completed_tasks"`
	UrgentTasks       int64 `json:"urgent_tasks"`
	TotalTeams        int64 `json:"total_teams"`
	ActiveUsers       int64 `json:"active_users"`
}
