package postgres

import (
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/alkharfy/cveeez-dash/config"
	"github.com/alkharfy/cveeez-dash/internal/entities"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRepositoryIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	adminID := uuid.New().String()
	designerID := uuid.New().String()

	admin, err := repo.CreateUser(ctx, entities.User{
		ID: adminID, Email: "admin@studio.io", Username: "admin", Name: "Alice Admin", Role: entities.RoleAdmin,
	})
	require.NoError(t, err)
	require.True(t, admin.IsActive)

	_, err = repo.CreateUser(ctx, entities.User{
		ID: designerID, Email: "dana@studio.io", Username: "dana", Name: "Dana Designer", Role: entities.RoleDesigner,
	})
	require.NoError(t, err)

	_, err = repo.CreateUser(ctx, entities.User{
		ID: uuid.New().String(), Email: "admin@studio.io", Username: "dup", Name: "Dup", Role: entities.RoleDesigner,
	})
	require.ErrorIs(t, err, entities.ErrAlreadyExists)

	users, total, err := repo.ListUsers(ctx, entities.UserFilter{Search: "dana", Limit: 10})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Len(t, users, 1)
	require.Equal(t, designerID, users[0].ID)

	_, total, err = repo.ListUsers(ctx, entities.UserFilter{Role: entities.RoleAdmin, Limit: 10})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)

	role, err := repo.RoleByID(ctx, adminID)
	require.NoError(t, err)
	require.Equal(t, entities.RoleAdmin, role)

	newName := "Dana D."
	updated, err := repo.UpdateUser(ctx, designerID, entities.UserUpdate{Name: &newName})
	require.NoError(t, err)
	require.Equal(t, newName, updated.Name)

	teamID := uuid.New().String()
	team, err := repo.CreateTeam(ctx, entities.Team{ID: teamID, Name: "Design", LeaderID: &adminID})
	require.NoError(t, err)
	require.NotNil(t, team.Leader)
	require.Equal(t, "Alice Admin", team.Leader.Name)

	member, err := repo.AddTeamMember(ctx, teamID, designerID)
	require.NoError(t, err)
	require.NotNil(t, member.User)
	require.Equal(t, "Dana D.", member.User.Name)

	_, err = repo.AddTeamMember(ctx, teamID, designerID)
	require.ErrorIs(t, err, entities.ErrAlreadyExists)

	fetchedTeam, err := repo.TeamByID(ctx, teamID)
	require.NoError(t, err)
	require.Len(t, fetchedTeam.Members, 1)

	projectID := uuid.New().String()
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	project, err := repo.CreateProject(ctx, entities.Project{
		ID: projectID, Name: "Brand Refresh", ClientID: &designerID,
		Status: entities.ProjectActive, StartDate: &start, TeamID: &teamID,
	})
	require.NoError(t, err)
	require.NotNil(t, project.Client)
	require.NotNil(t, project.Team)
	require.Equal(t, "Design", project.Team.Name)

	taskID := uuid.New().String()
	task, err := repo.CreateTask(ctx, entities.Task{
		ID: taskID, Title: "Logo drafts", Status: entities.TaskPending,
		Priority: entities.PriorityHigh, AssignedTo: &designerID,
		ProjectID: &projectID, CreatedBy: adminID,
	})
	require.NoError(t, err)
	require.NotNil(t, task.AssignedUser)
	require.NotNil(t, task.CreatedUser)
	require.Equal(t, "Brand Refresh", task.Project.Name)

	expandedProject, err := repo.ProjectByID(ctx, projectID)
	require.NoError(t, err)
	require.Len(t, expandedProject.Tasks, 1)
	require.Equal(t, taskID, expandedProject.Tasks[0].ID)
	require.Len(t, expandedProject.Team.Members, 1)

	comment, err := repo.CreateComment(ctx, entities.Comment{
		ID: uuid.New().String(), TaskID: taskID, UserID: designerID, Content: "First pass attached",
	})
	require.NoError(t, err)
	require.NotNil(t, comment.User)
	require.Equal(t, "Dana D.", comment.User.Name)

	second, err := repo.CreateComment(ctx, entities.Comment{
		ID: uuid.New().String(), TaskID: taskID, UserID: adminID, Content: "Looks good",
	})
	require.NoError(t, err)

	comments, err := repo.CommentsByTask(ctx, taskID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	require.Equal(t, comment.ID, comments[0].ID)
	require.Equal(t, second.ID, comments[1].ID)

	expandedTask, err := repo.TaskByID(ctx, taskID)
	require.NoError(t, err)
	require.Len(t, expandedTask.Comments, 2)

	tasks, taskTotal, err := repo.ListTasks(ctx, entities.TaskFilter{AssignedTo: designerID, Limit: 10})
	require.NoError(t, err)
	require.Equal(t, int64(1), taskTotal)
	require.Len(t, tasks, 1)

	status := entities.TaskCompleted
	doneTask, err := repo.UpdateTask(ctx, taskID, entities.TaskUpdate{Status: &status})
	require.NoError(t, err)
	require.Equal(t, entities.TaskCompleted, doneTask.Status)

	stats, err := repo.DashboardStats(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), stats.TotalProjects)
	require.Equal(t, int64(1), stats.ActiveProjects)
	require.Equal(t, int64(1), stats.TotalTasks)
	require.Equal(t, int64(1), stats.CompletedTasks)
	require.Equal(t, int64(1), stats.TotalTeams)
	require.Equal(t, int64(2), stats.ActiveUsers)

	deactivated, err := repo.DeactivateUser(ctx, designerID)
	require.NoError(t, err)
	require.False(t, deactivated.IsActive)

	_, err = repo.UserByID(ctx, designerID)
	require.ErrorIs(t, err, entities.ErrNotFound)

	require.NoError(t, repo.RemoveTeamMember(ctx, teamID, designerID))
	require.ErrorIs(t, repo.RemoveTeamMember(ctx, teamID, designerID), entities.ErrNotFound)

	require.NoError(t, repo.DeleteTask(ctx, taskID))
	_, err = repo.TaskByID(ctx, taskID)
	require.ErrorIs(t, err, entities.ErrNotFound)

	require.NoError(t, repo.DeleteProject(ctx, projectID))
	require.NoError(t, repo.DeleteTeam(ctx, teamID))
	_, err = repo.TeamByID(ctx, teamID)
	require.ErrorIs(t, err, entities.ErrNotFound)
}

func TestCredentialSessionIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	credID := uuid.New().String()
	require.NoError(t, repo.CreateCredential(ctx, entities.Credential{
		ID: credID, Email: "login@studio.io", PasswordHash: "hash", CreatedAt: time.Now().UTC(),
	}))

	require.ErrorIs(t, repo.CreateCredential(ctx, entities.Credential{
		ID: uuid.New().String(), Email: "login@studio.io", PasswordHash: "hash", CreatedAt: time.Now().UTC(),
	}), entities.ErrAlreadyExists)

	cred, err := repo.CredentialByEmail(ctx, "LOGIN@studio.io")
	require.NoError(t, err)
	require.Equal(t, credID, cred.ID)

	_, err = repo.CredentialByEmail(ctx, "ghost@studio.io")
	require.ErrorIs(t, err, entities.ErrNotFound)

	sessID := uuid.New().String()
	require.NoError(t, repo.CreateSession(ctx, entities.Session{
		ID: sessID, CredentialID: credID,
		CreatedAt: time.Now().UTC(), ExpiresAt: time.Now().UTC().Add(time.Hour),
	}))

	sess, err := repo.SessionByID(ctx, sessID)
	require.NoError(t, err)
	require.Equal(t, credID, sess.CredentialID)

	require.NoError(t, repo.DeleteSession(ctx, sessID))
	_, err = repo.SessionByID(ctx, sessID)
	require.ErrorIs(t, err, entities.ErrNotFound)
	require.ErrorIs(t, repo.DeleteSession(ctx, sessID), entities.ErrNotFound)

	require.NoError(t, repo.DeleteCredential(ctx, credID))
	require.ErrorIs(t, repo.DeleteCredential(ctx, credID), entities.ErrNotFound)
}

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=cveeez_dash_db",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	hostPort := resource.GetPort("5432/tcp")

	port, err := strconv.Atoi(hostPort)
	require.NoError(t, err)
	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "0.0.0.0", Port: 8080, ShutdownTimeout: 5 * time.Second},
		HTTP:   config.HTTPConfig{RequestTimeout: 5 * time.Second},
		Postgres: config.PostgresConfig{
			Host:           "localhost",
			Port:           port,
			User:           "postgres",
			Password:       "postgres",
			DBName:         "cveeez_dash_db",
			SSLMode:        "disable",
			MigrationsDir:  migrationsDir,
			QueryTimeout:   10 * time.Second,
			MigrateTimeout: 20 * time.Second,
			MaxConns:       4,
			MinConns:       1,
		},
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", "host=localhost port="+hostPort+" user=postgres password=postgres dbname=cveeez_dash_db sslmode=disable")
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	cleanup := func() {
		_ = pool.Purge(resource)
	}

	return cfg, cleanup
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}
