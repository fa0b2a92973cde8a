package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reactive-web/reactive-cms/config"
	"github.com/reactive-web/reactive-cms/internal/domain/service"
)

func newTestJWTService(t *testing.T, ttl time.Duration) service.TokenService {
	t.Helper()

	svc, err := NewJWTService(&config.Config{
		SecretKey: config.SecretKey{Session: "test-session-secret"},
		Auth:      &config.AuthConfig{SessionDuration: ttl},
	})
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	require.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)
	userID := uuid.New()

	token, err := svc.GenerateSessionToken(userID, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := newTestJWTService(t, -time.Minute)

	token, err := svc.GenerateSessionToken(uuid.New(), "admin")
	require.NoError(t, err)

	_, err = svc.ValidateSessionToken(token)
	require.Error(t, err)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	other, err := NewJWTService(&config.Config{
		SecretKey: config.SecretKey{Session: "another-secret"},
	})
	require.NoError(t, err)

	token, err := other.GenerateSessionToken(uuid.New(), "admin")
	require.NoError(t, err)

	_, err = svc.ValidateSessionToken(token)
	require.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	_, err := svc.ValidateSessionToken("not-a-token")
	require.Error(t, err)
}

func TestJWTService_SessionDuration(t *testing.T) {
	svc := newTestJWTService(t, 2*time.Hour)
	assert.Equal(t, 2*time.Hour, svc.SessionDuration())

	// A config without an auth section falls back to the one-day default.
	fallback, err := NewJWTService(&config.Config{
		SecretKey: config.SecretKey{Session: "test-session-secret"},
	})
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, fallback.SessionDuration())
}
