package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medecos/config"
	"medecos/internal/domain/entity"
	"medecos/internal/usecase"
	"medecos/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthMiddlewareFixture(t *testing.T) (*AuthMiddleware, *jwt.JWTService, *redis.Client) {
	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:      "test-secret",
		TokenExpiry: time.Hour,
	})

	return NewAuthMiddleware(jwtService, redisClient), jwtService, redisClient
}

func TestAuthenticateAdmitsRegisteredToken(t *testing.T) {
	m, jwtService, redisClient := newAuthMiddlewareFixture(t)
	userID := uuid.New()

	token, tokenID, err := jwtService.GenerateToken(userID, entity.RoleDoctor)
	require.NoError(t, err)

	// Register the token the way login does, under the shared key.
	require.NoError(t, redisClient.Set(context.Background(), usecase.TokenKey(userID, tokenID), "valid", time.Hour).Err())

	var gotUserID uuid.UUID
	var gotRole entity.Role
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = GetUserIDFromContext(r.Context())
		gotRole, _ = GetRoleFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/api/doctors", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	m.Authenticate(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, gotUserID)
	assert.Equal(t, entity.RoleDoctor, gotRole)
}

func TestAuthenticateRejectsRevokedToken(t *testing.T) {
	m, jwtService, redisClient := newAuthMiddlewareFixture(t)
	userID := uuid.New()

	token, tokenID, err := jwtService.GenerateToken(userID, entity.RolePatient)
	require.NoError(t, err)

	key := usecase.TokenKey(userID, tokenID)
	require.NoError(t, redisClient.Set(context.Background(), key, "valid", time.Hour).Err())
	require.NoError(t, redisClient.Del(context.Background(), key).Err())

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("revoked token must not reach the handler")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/doctors", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	m.Authenticate(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token")
}

func TestAuthenticateRejectsMissingHeader(t *testing.T) {
	m, _, _ := newAuthMiddlewareFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/doctors", nil)
	rec := httptest.NewRecorder()
	m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("unauthenticated request must not reach the handler")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "No token provided")
}
