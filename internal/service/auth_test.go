package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pourhouse/config"
	"pourhouse/internal/domain"
	"pourhouse/pkg/auth"
)

type fakeAuthRepo struct {
	sessions map[string]*domain.Session
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{sessions: make(map[string]*domain.Session)}
}

func (r *fakeAuthRepo) CreateSession(ctx context.Context, session domain.Session) error {
	r.sessions[session.RefreshToken] = &session
	return nil
}

func (r *fakeAuthRepo) GetSessionByRefreshToken(ctx context.Context, refreshToken string) (*domain.Session, error) {
	session, ok := r.sessions[refreshToken]
	if !ok {
		return nil, assert.AnError
	}
	return session, nil
}

func (r *fakeAuthRepo) DeleteSession(ctx context.Context, id string) error {
	for token, session := range r.sessions {
		if session.ID == id {
			delete(r.sessions, token)
		}
	}
	return nil
}

func (r *fakeAuthRepo) DeleteSessionsByUserID(ctx context.Context, userID int64) error {
	return nil
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		SigningKey:      "test-signing-key",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
	}
}

func newAuthFixture(t *testing.T) (*AuthServiceImpl, *fakeAuthRepo) {
	t.Helper()

	hash, err := auth.HashPassword("correct horse")
	require.NoError(t, err)

	users := &fakeUserRepo{users: map[int64]*domain.User{
		5: {ID: 5, Email: "manager@example.com", PasswordHash: hash, Role: domain.UserRoleManager, IsActive: true},
	}}
	authRepo := newFakeAuthRepo()

	return NewAuthService(authRepo, users, testJWTConfig(), zap.NewNop()), authRepo
}

func TestAuthServiceLoginAndParseToken(t *testing.T) {
	svc, authRepo := newAuthFixture(t)

	tokens, err := svc.Login(context.Background(), domain.LoginRequest{
		Login:    "manager@example.com",
		Password: "correct horse",
	}, "test-agent", "127.0.0.1")
	require.NoError(t, err)
	require.NotEmpty(t, tokens.AccessToken)
	require.NotEmpty(t, tokens.RefreshToken)
	assert.Len(t, authRepo.sessions, 1)

	userID, role, err := svc.ParseToken(context.Background(), tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(5), userID)
	assert.Equal(t, domain.UserRoleManager, role)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), domain.LoginRequest{
		Login:    "manager@example.com",
		Password: "wrong",
	}, "test-agent", "127.0.0.1")
	require.Error(t, err)
}

func TestAuthServiceParseTokenWrongKey(t *testing.T) {
	svc, _ := newAuthFixture(t)

	tokens, err := svc.Login(context.Background(), domain.LoginRequest{
		Login:    "manager@example.com",
		Password: "correct horse",
	}, "test-agent", "127.0.0.1")
	require.NoError(t, err)

	otherCfg := testJWTConfig()
	otherCfg.SigningKey = "another-key"
	other := NewAuthService(newFakeAuthRepo(), &fakeUserRepo{}, otherCfg, zap.NewNop())

	_, _, err = other.ParseToken(context.Background(), tokens.AccessToken)
	require.Error(t, err)
}

func TestAuthServiceRefreshRotatesSession(t *testing.T) {
	svc, authRepo := newAuthFixture(t)

	tokens, err := svc.Login(context.Background(), domain.LoginRequest{
		Login:    "manager@example.com",
		Password: "correct horse",
	}, "test-agent", "127.0.0.1")
	require.NoError(t, err)

	oldSession, err := authRepo.GetSessionByRefreshToken(context.Background(), tokens.RefreshToken)
	require.NoError(t, err)

	refreshed, err := svc.RefreshTokens(context.Background(), tokens.RefreshToken, "test-agent", "127.0.0.1")
	require.NoError(t, err)
	require.NotEmpty(t, refreshed.RefreshToken)

	// Старая сессия отозвана и заменена новой
	require.Len(t, authRepo.sessions, 1)
	newSession, err := authRepo.GetSessionByRefreshToken(context.Background(), refreshed.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, oldSession.ID, newSession.ID)
}

func TestAuthServiceLogoutUnknownToken(t *testing.T) {
	svc, _ := newAuthFixture(t)

	require.NoError(t, svc.Logout(context.Background(), "unknown-token"))
}
