package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alkharfy/cveeez-dash/config"
	"github.com/alkharfy/cveeez-dash/internal/entities"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type storeMock struct{ mock.Mock }

var _ Store = (*storeMock)(nil)

func (m *storeMock) CreateCredential(ctx context.Context, cred entities.Credential) error {
	args := m.Called(ctx, cred)
	return args.Error(0)
}

func (m *storeMock) CredentialByEmail(ctx context.Context, email string) (*entities.Credential, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Credential), args.Error(1)
}

func (m *storeMock) DeleteCredential(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *storeMock) CreateSession(ctx context.Context, s entities.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *storeMock) SessionByID(ctx context.Context, id string) (*entities.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Session), args.Error(1)
}

func (m *storeMock) DeleteSession(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *storeMock) UserByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func newTestService(store Store) *Service {
	return New(zap.NewNop().Sugar(), store, config.AuthConfig{
		JWTSecret:  "test-secret",
		TokenTTL:   time.Hour,
		BcryptCost: bcrypt.MinCost,
	})
}

func TestService_ResolveHappyPath(t *testing.T) {
	store := &storeMock{}
	svc := newTestService(store)

	var sessionID string
	store.On("CreateSession", mock.MatchedBy(func(_ context.Context) bool { return true }), mock.MatchedBy(func(s entities.Session) bool {
		sessionID = s.ID
		return s.CredentialID == "u1"
	})).Return(nil)

	token, err := svc.StartSession(context.Background(), "u1")
	require.NoError(t, err)

	store.On("SessionByID", mock.Anything, mock.MatchedBy(func(id string) bool {
		return id == sessionID
	})).Return(&entities.Session{
		ID:           sessionID,
		CredentialID: "u1",
		ExpiresAt:    time.Now().Add(time.Hour),
	}, nil)
	store.On("UserByID", mock.Anything, "u1").
		Return(&entities.User{ID: "u1", Role: entities.RoleManager, IsActive: true}, nil)

	p, err := svc.Resolve(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, "u1", p.ID)
	require.Equal(t, entities.RoleManager, p.Role)
	require.Equal(t, sessionID, p.SessionID)
}

func TestService_ResolveRevokedSession(t *testing.T) {
	store := &storeMock{}
	svc := newTestService(store)

	store.On("CreateSession", mock.Anything, mock.Anything).Return(nil)
	token, err := svc.StartSession(context.Background(), "u1")
	require.NoError(t, err)

	store.On("SessionByID", mock.Anything, mock.Anything).Return(nil, entities.ErrNotFound)

	_, err = svc.Resolve(context.Background(), token)
	require.ErrorIs(t, err, entities.ErrUnauthorized)
}

func TestService_ResolveExpiredSession(t *testing.T) {
	store := &storeMock{}
	svc := newTestService(store)

	store.On("CreateSession", mock.Anything, mock.Anything).Return(nil)
	token, err := svc.StartSession(context.Background(), "u1")
	require.NoError(t, err)

	store.On("SessionByID", mock.Anything, mock.Anything).Return(&entities.Session{
		ID:           "sess",
		CredentialID: "u1",
		ExpiresAt:    time.Now().Add(-time.Minute),
	}, nil)

	_, err = svc.Resolve(context.Background(), token)
	require.ErrorIs(t, err, entities.ErrUnauthorized)
}

func TestService_ResolveDeactivatedProfile(t *testing.T) {
	store := &storeMock{}
	svc := newTestService(store)

	store.On("CreateSession", mock.Anything, mock.Anything).Return(nil)
	token, err := svc.StartSession(context.Background(), "u1")
	require.NoError(t, err)

	store.On("SessionByID", mock.Anything, mock.Anything).Return(&entities.Session{
		ID:           "sess",
		CredentialID: "u1",
		ExpiresAt:    time.Now().Add(time.Hour),
	}, nil)
	store.On("UserByID", mock.Anything, "u1").Return(nil, entities.ErrNotFound)

	_, err = svc.Resolve(context.Background(), token)
	require.ErrorIs(t, err, entities.ErrUnauthorized)
}

func TestService_EndSessionToleratesMissingRow(t *testing.T) {
	store := &storeMock{}
	svc := newTestService(store)

	store.On("DeleteSession", mock.Anything, "sess").Return(entities.ErrNotFound)

	require.NoError(t, svc.EndSession(context.Background(), "sess"))
}

func TestService_SignInMismatch(t *testing.T) {
	store := &storeMock{}
	svc := newTestService(store)

	hash, err := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.MinCost)
	require.NoError(t, err)

	store.On("CredentialByEmail", mock.Anything, "a@b.c").
		Return(&entities.Credential{ID: "u1", Email: "a@b.c", PasswordHash: string(hash)}, nil)

	_, err = svc.SignIn(context.Background(), "a@b.c", "wrong")
	require.ErrorIs(t, err, entities.ErrInvalidCredentials)
}
