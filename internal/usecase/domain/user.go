package domain

import (
	"context"
	"fmt"

	"github.com/alkharfy/cveeez-dash/internal/authz"
	"github.com/alkharfy/cveeez-dash/internal/entities"

	"github.com/google/uuid"
)

const defaultLimit = 10

// ListUsers returns active users matching the filter.
func (u *Usecase) ListUsers(ctx context.Context, f entities.UserFilter) ([]entities.User, int64, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	return u.repo.ListUsers(ctx, f)
}

// User returns a single active user.
func (u *Usecase) User(ctx context.Context, id string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: user id is required", entities.ErrInvalidArgument)
	}
	return u.repo.UserByID(ctx, id)
}

// CreateUser provisions a profile without credentials (admin-managed accounts).
func (u *Usecase) CreateUser(ctx context.Context, in entities.User) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if in.Email == "" || in.Username == "" || in.Name == "" {
		return nil, fmt.Errorf("%w: missing required fields", entities.ErrInvalidArgument)
	}
	if in.Role == "" {
		in.Role = entities.RoleDesigner
	}
	if !entities.ValidRole(in.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", entities.ErrInvalidArgument, in.Role)
	}
	if in.ID == "" {
		in.ID = uuid.New().String()
	}

	return u.repo.CreateUser(ctx, in)
}

// UpdateUser applies a partial profile update under the ownership policy:
// owners may edit their own name, username and avatar; only admins may edit
// other users or touch role and active status.
func (u *Usecase) UpdateUser(ctx context.Context, p entities.Principal, id string, upd entities.UserUpdate) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: user id is required", entities.ErrInvalidArgument)
	}
	if !authz.CanUpdateUser(p, id) {
		return nil, fmt.Errorf("%w: Cannot update other users", entities.ErrForbidden)
	}
	if !authz.CanChangeRoleOrStatus(p) {
		upd.Role = nil
		upd.IsActive = nil
	}
	if upd.Role != nil && !entities.ValidRole(*upd.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", entities.ErrInvalidArgument, *upd.Role)
	}

	return u.repo.UpdateUser(ctx, id, upd)
}

// DeactivateUser soft-deletes a profile.
func (u *Usecase) DeactivateUser(ctx context.Context, id string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: user id is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeactivateUser(ctx, id)
}
