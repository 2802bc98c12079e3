package jwt

import (
	"testing"
	"time"

	"medecos/config"
	"medecos/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(expiry time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:      "test-secret",
		TokenExpiry: expiry,
	})
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestService(7 * 24 * time.Hour)
	userID := uuid.New()

	token, tokenID, err := svc.GenerateToken(userID, entity.RoleDoctor)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, tokenID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, entity.RoleDoctor, claims.Role)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := newTestService(-time.Minute)

	token, _, err := svc.GenerateToken(uuid.New(), entity.RolePatient)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc := newTestService(time.Hour)
	token, _, err := svc.GenerateToken(uuid.New(), entity.RolePatient)
	require.NoError(t, err)

	other := NewJWTService(config.JWTConfig{Secret: "different-secret", TokenExpiry: time.Hour})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc := newTestService(time.Hour)
	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}
