// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/alkharfy/cveeez-dash/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// CredentialInterface exposes authentication record operations.
type CredentialInterface interface {
	CreateCredential(ctx context.Context, cred entities.Credential) error
	CredentialByEmail(ctx context.Context, email string) (*entities.Credential, error)
	DeleteCredential(ctx context.Context, id string) error
	CreateSession(ctx context.Context, s entities.Session) error
	SessionByID(ctx context.Context, id string) (*entities.Session, error)
	DeleteSession(ctx context.Context, id string) error
}

// UserInterface exposes user profile operations.
type UserInterface interface {
	ListUsers(ctx context.Context, f entities.UserFilter) ([]entities.User, int64, error)
	UserByID(ctx context.Context, id string) (*entities.User, error)
	RoleByID(ctx context.Context, id string) (entities.Role, error)
	CreateUser(ctx context.Context, u entities.User) (*entities.User, error)
	UpdateUser(ctx context.Context, id string, upd entities.UserUpdate) (*entities.User, error)
	DeactivateUser(ctx context.Context, id string) (*entities.User, error)
}

// TeamInterface exposes team and membership operations.
type TeamInterface interface {
	ListTeams(ctx context.Context, f entities.TeamFilter) ([]entities.Team, int64, error)
	TeamByID(ctx context.Context, id string) (*entities.Team, error)
	CreateTeam(ctx context.Context, t entities.Team) (*entities.Team, error)
	UpdateTeam(ctx context.Context, id string, upd entities.TeamUpdate) (*entities.Team, error)
	DeleteTeam(ctx context.Context, id string) error
	AddTeamMember(ctx context.Context, teamID, userID string) (*entities.TeamMember, error)
	RemoveTeamMember(ctx context.Context, teamID, userID string) error
}

// ProjectInterface exposes project operations.
type ProjectInterface interface {
	ListProjects(ctx context.Context, f entities.ProjectFilter) ([]entities.Project, int64, error)
	ProjectByID(ctx context.Context, id string) (*entities.Project, error)
	CreateProject(ctx context.Context, p entities.Project) (*entities.Project, error)
	UpdateProject(ctx context.Context, id string, upd entities.ProjectUpdate) (*entities.Project, error)
	DeleteProject(ctx context.Context, id string) error
}

// TaskInterface exposes task operations.
type TaskInterface interface {
	ListTasks(ctx context.Context, f entities.TaskFilter) ([]entities.Task, int64, error)
	TaskByID(ctx context.Context, id string) (*entities.Task, error)
	CreateTask(ctx context.Context, t entities.Task) (*entities.Task, error)
	UpdateTask(ctx context.Context, id string, upd entities.TaskUpdate) (*entities.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

// CommentInterface exposes task comment operations.
type CommentInterface interface {
	CommentsByTask(ctx context.Context, taskID string) ([]entities.Comment, error)
	CreateComment(ctx context.Context, c entities.Comment) (*entities.Comment, error)
}

// StatsInterface exposes aggregated dashboard counts.
type StatsInterface interface {
	DashboardStats(ctx context.Context) (entities.DashboardStats, error)
}
