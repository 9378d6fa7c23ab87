package domain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alkharfy/cveeez-dash/config"
	"github.com/alkharfy/cveeez-dash/internal/auth"
	"github.com/alkharfy/cveeez-dash/internal/entities"
	"github.com/alkharfy/cveeez-dash/internal/repository"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type repoMock struct{ mock.Mock }

var _ repository.Repository = (*repoMock)(nil)

func (m *repoMock) OnStart(_ context.Context) error { return nil }
func (m *repoMock) OnStop(_ context.Context) error  { return nil }

func (m *repoMock) CreateCredential(ctx context.Context, cred entities.Credential) error {
	args := m.Called(ctx, cred)
	return args.Error(0)
}

func (m *repoMock) CredentialByEmail(ctx context.Context, email string) (*entities.Credential, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Credential), args.Error(1)
}

func (m *repoMock) DeleteCredential(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *repoMock) CreateSession(ctx context.Context, s entities.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *repoMock) SessionByID(ctx context.Context, id string) (*entities.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Session), args.Error(1)
}

func (m *repoMock) DeleteSession(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *repoMock) ListUsers(ctx context.Context, f entities.UserFilter) ([]entities.User, int64, error) {
	args := m.Called(ctx, f)
	var users []entities.User
	if args.Get(0) != nil {
		users = args.Get(0).([]entities.User)
	}
	return users, args.Get(1).(int64), args.Error(2)
}

func (m *repoMock) UserByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) RoleByID(ctx context.Context, id string) (entities.Role, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(entities.Role), args.Error(1)
}

func (m *repoMock) CreateUser(ctx context.Context, u entities.User) (*entities.User, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) UpdateUser(ctx context.Context, id string, upd entities.UserUpdate) (*entities.User, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) DeactivateUser(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) ListTeams(ctx context.Context, f entities.TeamFilter) ([]entities.Team, int64, error) {
	args := m.Called(ctx, f)
	var teams []entities.Team
	if args.Get(0) != nil {
		teams = args.Get(0).([]entities.Team)
	}
	return teams, args.Get(1).(int64), args.Error(2)
}

func (m *repoMock) TeamByID(ctx context.Context, id string) (*entities.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *repoMock) CreateTeam(ctx context.Context, t entities.Team) (*entities.Team, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *repoMock) UpdateTeam(ctx context.Context, id string, upd entities.TeamUpdate) (*entities.Team, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *repoMock) DeleteTeam(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *repoMock) AddTeamMember(ctx context.Context, teamID, userID string) (*entities.TeamMember, error) {
	args := m.Called(ctx, teamID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TeamMember), args.Error(1)
}

func (m *repoMock) RemoveTeamMember(ctx context.Context, teamID, userID string) error {
	args := m.Called(ctx, teamID, userID)
	return args.Error(0)
}

func (m *repoMock) ListProjects(ctx context.Context, f entities.ProjectFilter) ([]entities.Project, int64, error) {
	args := m.Called(ctx, f)
	var projects []entities.Project
	if args.Get(0) != nil {
		projects = args.Get(0).([]entities.Project)
	}
	return projects, args.Get(1).(int64), args.Error(2)
}

func (m *repoMock) ProjectByID(ctx context.Context, id string) (*entities.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *repoMock) CreateProject(ctx context.Context, p entities.Project) (*entities.Project, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *repoMock) UpdateProject(ctx context.Context, id string, upd entities.ProjectUpdate) (*entities.Project, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *repoMock) DeleteProject(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *repoMock) ListTasks(ctx context.Context, f entities.TaskFilter) ([]entities.Task, int64, error) {
	args := m.Called(ctx, f)
	var tasks []entities.Task
	if args.Get(0) != nil {
		tasks = args.Get(0).([]entities.Task)
	}
	return tasks, args.Get(1).(int64), args.Error(2)
}

func (m *repoMock) TaskByID(ctx context.Context, id string) (*entities.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *repoMock) CreateTask(ctx context.Context, t entities.Task) (*entities.Task, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *repoMock) UpdateTask(ctx context.Context, id string, upd entities.TaskUpdate) (*entities.Task, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *repoMock) DeleteTask(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *repoMock) CommentsByTask(ctx context.Context, taskID string) ([]entities.Comment, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Comment), args.Error(1)
}

func (m *repoMock) CreateComment(ctx context.Context, c entities.Comment) (*entities.Comment, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Comment), args.Error(1)
}

func (m *repoMock) DashboardStats(ctx context.Context) (entities.DashboardStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(entities.DashboardStats), args.Error(1)
}

func newTestUsecase(repo *repoMock) *Usecase {
	log := zap.NewNop().Sugar()
	authSvc := auth.New(log, repo, config.AuthConfig{
		JWTSecret:  "test-secret",
		TokenTTL:   time.Hour,
		BcryptCost: bcrypt.MinCost,
	})
	return New(log, context.Background(), repo, authSvc, time.Second)
}

func TestUsecase_RegisterValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	_, _, err := uc.Register(context.Background(), entities.RegisterInput{Email: "a@b.c"})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "CreateCredential", mock.Anything, mock.Anything)
}

func TestUsecase_RegisterRejectsUnknownRole(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	_, _, err := uc.Register(context.Background(), entities.RegisterInput{
		Email: "a@b.c", Password: "pw", Username: "a", Name: "A", Role: "Hacker",
	})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestUsecase_RegisterDefaultsRoleAndStartsSession(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	var credID string
	repo.On("CreateCredential", mock.Anything, mock.MatchedBy(func(c entities.Credential) bool {
		credID = c.ID
		return c.Email == "a@b.c" && c.PasswordHash != "pw"
	})).Return(nil)

	created := &entities.User{ID: "cred", Email: "a@b.c", Username: "a", Name: "A", Role: entities.RoleDesigner, IsActive: true}
	repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u entities.User) bool {
		return u.ID == credID && u.Role == entities.RoleDesigner
	})).Return(created, nil)

	repo.On("CreateSession", mock.Anything, mock.Anything).Return(nil)

	user, token, err := uc.Register(context.Background(), entities.RegisterInput{
		Email: "a@b.c", Password: "pw", Username: "a", Name: "A",
	})
	require.NoError(t, err)
	require.Equal(t, created, user)
	require.NotEmpty(t, token)
	repo.AssertExpectations(t)
}

func TestUsecase_RegisterCleansUpCredentialOnProfileFailure(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	profileErr := entities.ErrAlreadyExists
	var credID string
	repo.On("CreateCredential", mock.Anything, mock.MatchedBy(func(c entities.Credential) bool {
		credID = c.ID
		return true
	})).Return(nil)
	repo.On("CreateUser", mock.Anything, mock.Anything).Return(nil, profileErr)
	repo.On("DeleteCredential", mock.Anything, mock.MatchedBy(func(id string) bool {
		return id == credID
	})).Return(nil)

	_, _, err := uc.Register(context.Background(), entities.RegisterInput{
		Email: "a@b.c", Password: "pw", Username: "a", Name: "A",
	})
	require.ErrorIs(t, err, entities.ErrAlreadyExists)
	repo.AssertCalled(t, "DeleteCredential", mock.Anything, credID)
	repo.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything)
}

func TestUsecase_RegisterReturnsProfileErrorWhenCleanupFails(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	repo.On("CreateCredential", mock.Anything, mock.Anything).Return(nil)
	repo.On("CreateUser", mock.Anything, mock.Anything).Return(nil, entities.ErrAlreadyExists)
	repo.On("DeleteCredential", mock.Anything, mock.Anything).Return(errors.New("connection lost"))

	_, _, err := uc.Register(context.Background(), entities.RegisterInput{
		Email: "a@b.c", Password: "pw", Username: "a", Name: "A",
	})
	require.ErrorIs(t, err, entities.ErrAlreadyExists)
}

func TestUsecase_LoginBadPassword(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	hash, err := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.MinCost)
	require.NoError(t, err)

	repo.On("CredentialByEmail", mock.Anything, "a@b.c").
		Return(&entities.Credential{ID: "cred", Email: "a@b.c", PasswordHash: string(hash)}, nil)

	_, _, err = uc.Login(context.Background(), "a@b.c", "wrong")
	require.ErrorIs(t, err, entities.ErrInvalidCredentials)
	repo.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything)
}

func TestUsecase_LoginUnknownEmail(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	repo.On("CredentialByEmail", mock.Anything, "ghost@b.c").Return(nil, entities.ErrNotFound)

	_, _, err := uc.Login(context.Background(), "ghost@b.c", "pw")
	require.ErrorIs(t, err, entities.ErrInvalidCredentials)
}

func TestUsecase_LoginWithoutProfile(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	require.NoError(t, err)

	repo.On("CredentialByEmail", mock.Anything, "a@b.c").
		Return(&entities.Credential{ID: "cred", Email: "a@b.c", PasswordHash: string(hash)}, nil)
	repo.On("UserByID", mock.Anything, "cred").Return(nil, entities.ErrNotFound)

	_, _, err = uc.Login(context.Background(), "a@b.c", "pw")
	require.ErrorIs(t, err, entities.ErrInvalidCredentials)
}

func TestUsecase_CreateUserDefaultsRole(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	created := &entities.User{ID: "u1", Role: entities.RoleDesigner}
	repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u entities.User) bool {
		return u.Role == entities.RoleDesigner && u.ID != ""
	})).Return(created, nil)

	user, err := uc.CreateUser(context.Background(), entities.User{
		Email: "a@b.c", Username: "a", Name: "A",
	})
	require.NoError(t, err)
	require.Equal(t, entities.RoleDesigner, user.Role)
	repo.AssertExpectations(t)
}

func TestUsecase_UpdateUserForbiddenForOthers(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	p := entities.Principal{ID: "u1", Role: entities.RoleDesigner}
	name := "New Name"
	_, err := uc.UpdateUser(context.Background(), p, "u2", entities.UserUpdate{Name: &name})
	require.ErrorIs(t, err, entities.ErrForbidden)
	repo.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_UpdateUserDropsRoleChangeForNonAdmin(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	p := entities.Principal{ID: "u1", Role: entities.RoleManager}
	name := "New Name"
	role := entities.RoleAdmin
	active := false

	updated := &entities.User{ID: "u1", Name: name, Role: entities.RoleManager, IsActive: true}
	repo.On("UpdateUser", mock.Anything, "u1", mock.MatchedBy(func(upd entities.UserUpdate) bool {
		return upd.Role == nil && upd.IsActive == nil && upd.Name != nil
	})).Return(updated, nil)

	user, err := uc.UpdateUser(context.Background(), p, "u1", entities.UserUpdate{
		Name: &name, Role: &role, IsActive: &active,
	})
	require.NoError(t, err)
	require.Equal(t, entities.RoleManager, user.Role)
	repo.AssertExpectations(t)
}

func TestUsecase_UpdateUserAdminKeepsRoleChange(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	p := entities.Principal{ID: "admin", Role: entities.RoleAdmin}
	role := entities.RoleManager

	updated := &entities.User{ID: "u2", Role: entities.RoleManager, IsActive: true}
	repo.On("UpdateUser", mock.Anything, "u2", mock.MatchedBy(func(upd entities.UserUpdate) bool {
		return upd.Role != nil && *upd.Role == entities.RoleManager
	})).Return(updated, nil)

	user, err := uc.UpdateUser(context.Background(), p, "u2", entities.UserUpdate{Role: &role})
	require.NoError(t, err)
	require.Equal(t, entities.RoleManager, user.Role)
}

func TestUsecase_CreateTeamValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	_, err := uc.CreateTeam(context.Background(), entities.Team{})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestUsecase_CreateProjectDefaultsStatus(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	created := &entities.Project{ID: "p1", Name: "Site", Status: entities.ProjectActive}
	repo.On("CreateProject", mock.Anything, mock.MatchedBy(func(p entities.Project) bool {
		return p.Status == entities.ProjectActive
	})).Return(created, nil)

	project, err := uc.CreateProject(context.Background(), entities.Project{Name: "Site"})
	require.NoError(t, err)
	require.Equal(t, entities.ProjectActive, project.Status)
}

func TestUsecase_CreateTaskDefaults(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	created := &entities.Task{ID: "t1", Title: "Design", Status: entities.TaskPending, Priority: entities.PriorityMedium}
	repo.On("CreateTask", mock.Anything, mock.MatchedBy(func(task entities.Task) bool {
		return task.Status == entities.TaskPending && task.Priority == entities.PriorityMedium
	})).Return(created, nil)

	task, err := uc.CreateTask(context.Background(), entities.Task{Title: "Design", CreatedBy: "u1"})
	require.NoError(t, err)
	require.Equal(t, entities.TaskPending, task.Status)
	require.Equal(t, entities.PriorityMedium, task.Priority)
}

func TestUsecase_CreateTaskRequiresCreator(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	_, err := uc.CreateTask(context.Background(), entities.Task{Title: "Design"})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything)
}

func TestUsecase_AddCommentValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	_, err := uc.AddComment(context.Background(), "t1", "u1", "")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestUsecase_ListUsersDefaultLimit(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	repo.On("ListUsers", mock.Anything, mock.MatchedBy(func(f entities.UserFilter) bool {
		return f.Limit == defaultLimit
	})).Return([]entities.User{}, int64(0), nil)

	_, _, err := uc.ListUsers(context.Background(), entities.UserFilter{})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUsecase_LogoutRequiresSession(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	err := uc.Logout(context.Background(), "")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}
