package domain

import (
	"context"
	"fmt"

	"github.com/alkharfy/cveeez-dash/internal/entities"

	"github.com/google/uuid"
)

// ListTeams returns teams matching the filter.
func (u *Usecase) ListTeams(ctx context.Context, f entities.TeamFilter) ([]entities.Team, int64, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	return u.repo.ListTeams(ctx, f)
}

// Team returns a team with leader and members expanded.
func (u *Usecase) Team(ctx context.Context, id string) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: team id is required", entities.ErrInvalidArgument)
	}
	return u.repo.TeamByID(ctx, id)
}

// CreateTeam creates a team.
func (u *Usecase) CreateTeam(ctx context.Context, t entities.Team) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if t.Name == "" {
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return u.repo.CreateTeam(ctx, t)
}

// UpdateTeam applies a partial team update.
func (u *Usecase) UpdateTeam(ctx context.Context, id string, upd entities.TeamUpdate) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: team id is required", entities.ErrInvalidArgument)
	}
	return u.repo.UpdateTeam(ctx, id, upd)
}

// DeleteTeam hard-deletes a team.
func (u *Usecase) DeleteTeam(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return fmt.Errorf("%w: team id is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteTeam(ctx, id)
}

// AddTeamMember adds a user to a team.
func (u *Usecase) AddTeamMember(ctx context.Context, teamID, userID string) (*entities.TeamMember, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if teamID == "" || userID == "" {
		return nil, fmt.Errorf("%w: team id and user_id are required", entities.ErrInvalidArgument)
	}
	return u.repo.AddTeamMember(ctx, teamID, userID)
}

// RemoveTeamMember removes a user from a team.
func (u *Usecase) RemoveTeamMember(ctx context.Context, teamID, userID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if teamID == "" || userID == "" {
		return fmt.Errorf("%w: team id and user_id are required", entities.ErrInvalidArgument)
	}
	return u.repo.RemoveTeamMember(ctx, teamID, userID)
}
