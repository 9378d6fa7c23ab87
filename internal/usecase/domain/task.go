package domain

import (
	"context"
	"fmt"

	"github.com/alkharfy/cveeez-dash/internal/entities"

	"github.com/google/uuid"
)

// ListTasks returns tasks matching the filter.
func (u *Usecase) ListTasks(ctx context.Context, f entities.TaskFilter) ([]entities.Task, int64, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	return u.repo.ListTasks(ctx, f)
}

// Task returns a task with assignee, creator, project and comments expanded.
func (u *Usecase) Task(ctx context.Context, id string) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: task id is required", entities.ErrInvalidArgument)
	}
	return u.repo.TaskByID(ctx, id)
}

// CreateTask creates a task, defaulting status and priority.
func (u *Usecase) CreateTask(ctx context.Context, t entities.Task) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if t.Title == "" {
		return nil, fmt.Errorf("%w: title is required", entities.ErrInvalidArgument)
	}
	if t.CreatedBy == "" {
		return nil, fmt.Errorf("%w: creator is required", entities.ErrInvalidArgument)
	}
	if t.Status == "" {
		t.Status = entities.TaskPending
	}
	if t.Priority == "" {
		t.Priority = entities.PriorityMedium
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return u.repo.CreateTask(ctx, t)
}

// UpdateTask applies a partial task update.
func (u *Usecase) UpdateTask(ctx context.Context, id string, upd entities.TaskUpdate) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: task id is required", entities.ErrInvalidArgument)
	}
	return u.repo.UpdateTask(ctx, id, upd)
}

// DeleteTask hard-deletes a task.
func (u *Usecase) DeleteTask(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return fmt.Errorf("%w: task id is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteTask(ctx, id)
}

// TaskComments returns a task's comments oldest first.
func (u *Usecase) TaskComments(ctx context.Context, taskID string) ([]entities.Comment, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if taskID == "" {
		return nil, fmt.Errorf("%w: task id is required", entities.ErrInvalidArgument)
	}
	return u.repo.CommentsByTask(ctx, taskID)
}

// AddComment attaches a comment authored by the given user to a task.
func (u *Usecase) AddComment(ctx context.Context, taskID, userID, content string) (*entities.Comment, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if taskID == "" || userID == "" {
		return nil, fmt.Errorf("%w: task id and user id are required", entities.ErrInvalidArgument)
	}
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", entities.ErrInvalidArgument)
	}

	return u.repo.CreateComment(ctx, entities.Comment{
		ID:      uuid.New().String(),
		TaskID:  taskID,
		UserID:  userID,
		Content: content,
	})
}
