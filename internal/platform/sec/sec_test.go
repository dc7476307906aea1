// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vidtube/internal/platform/apperr"
	"github.com/taibuivan/vidtube/internal/platform/sec"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenService_RoundTrip(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, "vidtube")
	require.NoError(t, err)

	token, err := service.GenerateAccessToken("user-1", "alice", time.Minute)
	require.NoError(t, err)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestTokenService_Rejects(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, "vidtube")
	require.NoError(t, err)

	other, err := sec.NewTokenService(strings.Repeat("x", 32), "vidtube")
	require.NoError(t, err)

	foreign, err := other.GenerateAccessToken("user-1", "alice", time.Minute)
	require.NoError(t, err)

	expired, err := service.GenerateAccessToken("user-1", "alice", -time.Minute)
	require.NoError(t, err)

	wrongIssuer, err := sec.NewTokenService(testSecret, "someone-else")
	require.NoError(t, err)
	misissued, err := wrongIssuer.GenerateAccessToken("user-1", "alice", time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"foreign_signature", foreign},
		{"expired", expired},
		{"wrong_issuer", misissued},
		{"garbage", "not.a.jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.VerifyToken(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestNewTokenService_WeakSecret(t *testing.T) {
	_, err := sec.NewTokenService("short", "vidtube")
	assert.ErrorIs(t, err, sec.ErrWeakSecret)
}

func TestPasswordHash(t *testing.T) {
	hash, err := sec.HashPassword("correct horse")
	require.NoError(t, err)

	assert.True(t, sec.CheckPasswordHash("correct horse", hash))
	assert.False(t, sec.CheckPasswordHash("wrong horse", hash))
}

func TestSecureToken(t *testing.T) {
	first, err := sec.GenerateSecureToken(32)
	require.NoError(t, err)
	second, err := sec.GenerateSecureToken(32)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Len(t, sec.HashToken(first), 64)
	assert.Equal(t, sec.HashToken(first), sec.HashToken(first))
}

func TestEnsureOwner(t *testing.T) {
	assert.NoError(t, sec.EnsureOwner("u1", "u1", "nope"))

	err := sec.EnsureOwner("u1", "u2", "You cannot edit this video")
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "FORBIDDEN", ae.Code)
	assert.Equal(t, "You cannot edit this video", ae.Message)

	assert.Error(t, sec.EnsureOwner("", "", "nope"))
}
