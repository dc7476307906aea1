// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vidtube/internal/platform/apperr"
	"github.com/taibuivan/vidtube/internal/platform/sec"
	"github.com/taibuivan/vidtube/internal/users/auth"
)

// # Fakes

type memoryUsers struct {
	mu    sync.Mutex
	users map[string]*auth.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{users: map[string]*auth.User{}}
}

func (repo *memoryUsers) FindByID(_ context.Context, id string) (*auth.User, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if user, ok := repo.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, apperr.NotFound("User")
}

func (repo *memoryUsers) FindByLogin(_ context.Context, login string) (*auth.User, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	for _, user := range repo.users {
		if user.Username == login || user.Email == login {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (repo *memoryUsers) Exists(_ context.Context, id string) (bool, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	_, ok := repo.users[id]
	return ok, nil
}

func (repo *memoryUsers) Create(_ context.Context, user *auth.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	for _, existing := range repo.users {
		if existing.Username == user.Username {
			return apperr.Conflict("Username is already taken")
		}
		if existing.Email == user.Email {
			return apperr.Conflict("Email is already registered")
		}
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	copied := *user
	repo.users[user.ID] = &copied
	return nil
}

type memorySessions struct {
	mu       sync.Mutex
	sessions map[string]string
}

func (repo *memorySessions) Save(_ context.Context, tokenHash, userID string, _ time.Duration) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.sessions[tokenHash] = userID
	return nil
}

func (repo *memorySessions) Consume(_ context.Context, tokenHash string) (string, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	userID, ok := repo.sessions[tokenHash]
	if !ok {
		return "", apperr.Unauthorized("Refresh token is invalid or expired")
	}
	delete(repo.sessions, tokenHash)
	return userID, nil
}

func (repo *memorySessions) Delete(_ context.Context, tokenHash string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	delete(repo.sessions, tokenHash)
	return nil
}

func newService(t *testing.T) (*auth.Service, *sec.TokenService, *memorySessions) {
	t.Helper()
	tokens, err := sec.NewTokenService("0123456789abcdef0123456789abcdef", "vidtube.app")
	require.NoError(t, err)

	sessions := &memorySessions{sessions: map[string]string{}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return auth.NewService(newMemoryUsers(), sessions, tokens, logger), tokens, sessions
}

func register(t *testing.T, service *auth.Service) *auth.User {
	t.Helper()
	user, err := service.Register(context.Background(), auth.RegisterInput{
		Username: "Alice",
		Email:    "Alice@Example.com",
		Password: "supersecret",
		Fullname: "Alice Liddell",
	})
	require.NoError(t, err)
	return user
}

// # Tests

func TestRegister_FoldsIdentity(t *testing.T) {
	service, _, _ := newService(t)

	user := register(t, service)

	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "supersecret", user.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("supersecret", user.PasswordHash))
}

func TestRegister_Validation(t *testing.T) {
	service, _, _ := newService(t)

	tests := []struct {
		name  string
		input auth.RegisterInput
	}{
		{"short_username", auth.RegisterInput{Username: "al", Email: "a@b.co", Password: "supersecret", Fullname: "A"}},
		{"bad_email", auth.RegisterInput{Username: "alice", Email: "nope", Password: "supersecret", Fullname: "A"}},
		{"short_password", auth.RegisterInput{Username: "alice", Email: "a@b.co", Password: "short", Fullname: "A"}},
		{"missing_fullname", auth.RegisterInput{Username: "alice", Email: "a@b.co", Password: "supersecret"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Register(context.Background(), tt.input)
			assert.True(t, apperr.HasCode(err, "VALIDATION_ERROR"))
		})
	}
}

func TestRegister_Duplicate(t *testing.T) {
	service, _, _ := newService(t)
	register(t, service)

	_, err := service.Register(context.Background(), auth.RegisterInput{
		Username: "ALICE", Email: "other@example.com", Password: "supersecret", Fullname: "Other",
	})
	assert.True(t, apperr.HasCode(err, "CONFLICT"))
}

func TestLogin(t *testing.T) {
	service, tokens, _ := newService(t)
	user := register(t, service)

	session, err := service.Login(context.Background(), "ALICE@example.com", "supersecret")
	require.NoError(t, err)

	claims, err := tokens.VerifyToken(session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.NotEmpty(t, session.RefreshToken)

	_, err = service.Login(context.Background(), "alice", "wrong-password")
	assert.True(t, apperr.HasCode(err, "UNAUTHORIZED"))

	_, err = service.Login(context.Background(), "nobody", "supersecret")
	assert.True(t, apperr.HasCode(err, "UNAUTHORIZED"))
}

func TestRefresh_RotatesToken(t *testing.T) {
	service, _, _ := newService(t)
	register(t, service)

	first, err := service.Login(context.Background(), "alice", "supersecret")
	require.NoError(t, err)

	second, err := service.Refresh(context.Background(), first.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// The consumed token cannot be replayed
	_, err = service.Refresh(context.Background(), first.RefreshToken)
	assert.True(t, apperr.HasCode(err, "UNAUTHORIZED"))
}

func TestLogout_RevokesRefresh(t *testing.T) {
	service, _, sessions := newService(t)
	register(t, service)

	session, err := service.Login(context.Background(), "alice", "supersecret")
	require.NoError(t, err)

	require.NoError(t, service.Logout(context.Background(), session.RefreshToken))
	assert.Empty(t, sessions.sessions)

	_, err = service.Refresh(context.Background(), session.RefreshToken)
	assert.Error(t, err)
}

func TestGetProfile(t *testing.T) {
	service, _, _ := newService(t)
	user := register(t, service)

	profile, err := service.GetProfile(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, auth.Profile{ID: user.ID, Username: "alice", Fullname: "Alice Liddell"}, *profile)

	_, err = service.GetProfile(context.Background(), "not-an-id")
	assert.True(t, apperr.HasCode(err, "VALIDATION_ERROR"))
}
