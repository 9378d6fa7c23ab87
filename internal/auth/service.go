// Package auth implements first-party credential, session and token handling.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alkharfy/cveeez-dash/config"
	"github.com/alkharfy/cveeez-dash/internal/entities"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Store is the slice of the repository the auth service needs.
type Store interface {
	CreateCredential(ctx context.Context, cred entities.Credential) error
	CredentialByEmail(ctx context.Context, email string) (*entities.Credential, error)
	DeleteCredential(ctx context.Context, id string) error
	CreateSession(ctx context.Context, s entities.Session) error
	SessionByID(ctx context.Context, id string) (*entities.Session, error)
	DeleteSession(ctx context.Context, id string) error
	UserByID(ctx context.Context, id string) (*entities.User, error)
}

// Service issues and resolves sessions backed by the credentials and sessions tables.
type Service struct {
	log      *zap.SugaredLogger
	store    Store
	secret   []byte
	tokenTTL time.Duration
	cost     int
}

// New constructs the auth service.
func New(log *zap.SugaredLogger, store Store, cfg config.AuthConfig) *Service {
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &Service{
		log:      log.Named("auth"),
		store:    store,
		secret:   []byte(cfg.JWTSecret),
		tokenTTL: cfg.TokenTTL,
		cost:     cost,
	}
}

// SignUp creates a credential record and returns its id.
func (s *Service) SignUp(ctx context.Context, email, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	cred := entities.Credential{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.store.CreateCredential(ctx, cred); err != nil {
		return "", err
	}
	return cred.ID, nil
}

// DeleteCredential removes a credential record. Used as the compensating
// action when profile creation fails after sign-up.
func (s *Service) DeleteCredential(ctx context.Context, id string) error {
	return s.store.DeleteCredential(ctx, id)
}

// SignIn checks email and password, returning the credential id.
// Lookup misses and hash mismatches both map to ErrInvalidCredentials to
// avoid account enumeration.
func (s *Service) SignIn(ctx context.Context, email, password string) (string, error) {
	cred, err := s.store.CredentialByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return "", entities.ErrInvalidCredentials
		}
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) != nil {
		return "", entities.ErrInvalidCredentials
	}
	return cred.ID, nil
}

// StartSession records a session row and mints its bearer token.
func (s *Service) StartSession(ctx context.Context, credentialID string) (string, error) {
	sess := entities.Session{
		ID:           uuid.New().String(),
		CredentialID: credentialID,
		CreatedAt:    time.Now().UTC(),
		ExpiresAt:    time.Now().UTC().Add(s.tokenTTL),
	}
	if err := s.store.CreateSession(ctx, sess); err != nil {
		return "", err
	}

	token, err := mintToken(s.secret, credentialID, sess.ID, s.tokenTTL)
	if err != nil {
		return "", err
	}

	s.log.Infow("session started", "session_id", sess.ID, "user_id", credentialID)
	return token, nil
}

// EndSession revokes a session row. Tokens carrying its id stop resolving.
func (s *Service) EndSession(ctx context.Context, sessionID string) error {
	if err := s.store.DeleteSession(ctx, sessionID); err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return nil
		}
		return err
	}
	s.log.Infow("session ended", "session_id", sessionID)
	return nil
}

// Resolve turns a bearer token into the request Principal. Any failure along
// the chain (bad token, revoked or expired session, missing or deactivated
// profile) yields ErrUnauthorized.
func (s *Service) Resolve(ctx context.Context, token string) (entities.Principal, error) {
	userID, sessionID, err := parseToken(s.secret, token)
	if err != nil {
		return entities.Principal{}, err
	}

	sess, err := s.store.SessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return entities.Principal{}, entities.ErrUnauthorized
		}
		return entities.Principal{}, err
	}
	if time.Now().After(sess.ExpiresAt) {
		return entities.Principal{}, entities.ErrUnauthorized
	}

	user, err := s.store.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return entities.Principal{}, entities.ErrUnauthorized
		}
		return entities.Principal{}, err
	}

	return entities.Principal{ID: user.ID, Role: user.Role, SessionID: sessionID}, nil
}
