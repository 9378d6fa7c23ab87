package usecase

import (
	"context"

	"github.com/alkharfy/cveeez-dash/internal/entities"
)

// AuthUsecaseInterface abstracts registration and session flows.
type AuthUsecaseInterface interface {
	Register(ctx context.Context, in entities.RegisterInput) (*entities.User, string, error)
	Login(ctx context.Context, email, password string) (*entities.User, string, error)
	Logout(ctx context.Context, sessionID string) error
}

// UserUsecaseInterface abstracts user profile operations.
type UserUsecaseInterface interface {
	ListUsers(ctx context.Context, f entities.UserFilter) ([]entities.User, int64, error)
	User(ctx context.Context, id string) (*entities.User, error)
	CreateUser(ctx context.Context, u entities.User) (*entities.User, error)
	UpdateUser(ctx context.Context, p entities.Principal, id string, upd entities.UserUpdate) (*entities.User, error)
	DeactivateUser(ctx context.Context, id string) (*entities.User, error)
}

// TeamUsecaseInterface abstracts team and membership operations.
type TeamUsecaseInterface interface {
	ListTeams(ctx context.Context, f entities.TeamFilter) ([]entities.Team, int64, error)
	Team(ctx context.Context, id string) (*entities.Team, error)
	CreateTeam(ctx context.Context, t entities.Team) (*entities.Team, error)
	UpdateTeam(ctx context.Context, id string, upd entities.TeamUpdate) (*entities.Team, error)
	DeleteTeam(ctx context.Context, id string) error
	AddTeamMember(ctx context.Context, teamID, userID string) (*entities.TeamMember, error)
	RemoveTeamMember(ctx context.Context, teamID, userID string) error
}

// ProjectUsecaseInterface abstracts project operations.
type ProjectUsecaseInterface interface {
	ListProjects(ctx context.Context, f entities.ProjectFilter) ([]entities.Project, int64, error)
	Project(ctx context.Context, id string) (*entities.Project, error)
	CreateProject(ctx context.Context, p entities.Project) (*entities.Project, error)
	UpdateProject(ctx context.Context, id string, upd entities.ProjectUpdate) (*entities.Project, error)
	DeleteProject(ctx context.Context, id string) error
}

// TaskUsecaseInterface abstracts task and comment operations.
type TaskUsecaseInterface interface {
	ListTasks(ctx context.Context, f entities.TaskFilter) ([]entities.Task, int64, error)
	Task(ctx context.Context, id string) (*entities.Task, error)
	CreateTask(ctx context.Context, t entities.Task) (*entities.Task, error)
	UpdateTask(ctx context.Context, id string, upd entities.TaskUpdate) (*entities.Task, error)
	DeleteTask(ctx context.Context, id string) error
	TaskComments(ctx context.Context, taskID string) ([]entities.Comment, error)
	AddComment(ctx context.Context, taskID, userID, content string) (*entities.Comment, error)
}

// StatsUsecaseInterface abstracts dashboard aggregation.
type StatsUsecaseInterface interface {
	Dashboard(ctx context.Context) (entities.DashboardStats, error)
}
