// Package domain contains application Usecases orchestrating domain logic by concern.
package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/alkharfy/cveeez-dash/internal/entities"
)

// Register creates a credential and its profile, then starts a session.
// If the profile insert fails after the credential was created, the
// credential is removed best-effort and the profile error is returned.
func (u *Usecase) Register(ctx context.Context, in entities.RegisterInput) (*entities.User, string, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if in.Email == "" || in.Password == "" || in.Username == "" || in.Name == "" {
		return nil, "", fmt.Errorf("%w: missing required fields", entities.ErrInvalidArgument)
	}
	if in.Role == "" {
		in.Role = entities.RoleDesigner
	}
	if !entities.ValidRole(in.Role) {
		return nil, "", fmt.Errorf("%w: unknown role %q", entities.ErrInvalidArgument, in.Role)
	}

	credID, err := u.auth.SignUp(ctx, in.Email, in.Password)
	if err != nil {
		return nil, "", err
	}

	user, err := u.repo.CreateUser(ctx, entities.User{
		ID:       credID,
		Email:    in.Email,
		Username: in.Username,
		Name:     in.Name,
		Role:     in.Role,
	})
	if err != nil {
		// Compensating action: the credential would otherwise be orphaned.
		// Best-effort only; the profile error wins either way.
		if delErr := u.auth.DeleteCredential(ctx, credID); delErr != nil {
			u.log.Errorw("credential cleanup failed after profile error",
				"credential_id", credID, "error", delErr)
		}
		return nil, "", err
	}

	token, err := u.auth.StartSession(ctx, credID)
	if err != nil {
		return nil, "", err
	}

	u.log.Infow("user registered", "user_id", user.ID, "role", user.Role)
	return user, token, nil
}

// Login checks credentials, loads the profile and starts a session.
func (u *Usecase) Login(ctx context.Context, email, password string) (*entities.User, string, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: missing required fields", entities.ErrInvalidArgument)
	}

	credID, err := u.auth.SignIn(ctx, email, password)
	if err != nil {
		return nil, "", err
	}

	user, err := u.repo.UserByID(ctx, credID)
	if err != nil {
		// A credential without an active profile cannot log in.
		if errors.Is(err, entities.ErrNotFound) {
			return nil, "", entities.ErrInvalidCredentials
		}
		return nil, "", err
	}

	token, err := u.auth.StartSession(ctx, credID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Logout revokes the session carried by the current request.
func (u *Usecase) Logout(ctx context.Context, sessionID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if sessionID == "" {
		return fmt.Errorf("%w: session id is required", entities.ErrInvalidArgument)
	}
	return u.auth.EndSession(ctx, sessionID)
}
