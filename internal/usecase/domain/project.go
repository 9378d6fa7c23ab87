package domain

import (
	"context"
	"fmt"

	"github.com/alkharfy/cveeez-dash/internal/entities"

	"github.com/google/uuid"
)

// ListProjects returns projects matching the filter.
func (u *Usecase) ListProjects(ctx context.Context, f entities.ProjectFilter) ([]entities.Project, int64, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	return u.repo.ListProjects(ctx, f)
}

// Project returns a project with its team and tasks expanded.
func (u *Usecase) Project(ctx context.Context, id string) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: project id is required", entities.ErrInvalidArgument)
	}
	return u.repo.ProjectByID(ctx, id)
}

// CreateProject creates a project, defaulting status to Active.
func (u *Usecase) CreateProject(ctx context.Context, p entities.Project) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if p.Name == "" {
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	if p.Status == "" {
		p.Status = entities.ProjectActive
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return u.repo.CreateProject(ctx, p)
}

// UpdateProject applies a partial project update.
func (u *Usecase) UpdateProject(ctx context.Context, id string, upd entities.ProjectUpdate) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: project id is required", entities.ErrInvalidArgument)
	}
	return u.repo.UpdateProject(ctx, id, upd)
}

// DeleteProject hard-deletes a project.
func (u *Usecase) DeleteProject(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return fmt.Errorf("%w: project id is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteProject(ctx, id)
}
