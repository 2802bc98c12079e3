package usecase

import (
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"medecos/config"
	"medecos/internal/delivery/dto"
	"medecos/internal/domain/entity"
	"medecos/pkg/jwt"
	"medecos/pkg/validator"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authFixture struct {
	usecase    AuthUsecase
	userRepo   *mockUserRepo
	audit      *mockAuditService
	redis      *miniredis.Miniredis
	jwtService *jwt.JWTService
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	log := logrus.New()
	log.SetOutput(io.Discard)

	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:      "test-secret",
		TokenExpiry: time.Hour,
	})

	userRepo := &mockUserRepo{}
	audit := &mockAuditService{}

	uc := NewAuthUsecase(
		log,
		validator.NewValidator(),
		userRepo,
		&mockDoctorRepo{},
		&mockPatientRepo{},
		&mockPharmacistRepo{},
		&mockLabTesterRepo{},
		jwtService,
		redisClient,
		audit,
	)

	return &authFixture{
		usecase:    uc,
		userRepo:   userRepo,
		audit:      audit,
		redis:      mr,
		jwtService: jwtService,
	}
}

func patientRegisterRequest() *dto.RegisterRequest {
	info, _ := json.Marshal(dto.PatientInfo{
		DateOfBirth: "1990-05-20",
		Gender:      "female",
		BloodGroup:  "O+",
	})
	return &dto.RegisterRequest{
		Name:           "Jane Doe",
		Email:          "jane@example.com",
		Password:       "secret123",
		UserType:       "patient",
		AdditionalInfo: info,
	}
}

func TestRegisterPatient(t *testing.T) {
	f := newAuthFixture(t)

	result, err := f.usecase.Register(context.Background(), patientRegisterRequest())
	require.NoError(t, err)

	assert.Equal(t, "User registered successfully", result.Message)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "Jane Doe", result.User.Name)
	assert.Equal(t, "patient", result.User.UserType)

	// Token is parseable and bound to the new identity.
	claims, err := f.jwtService.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, claims.UserID)
	assert.Equal(t, entity.RolePatient, claims.Role)

	// Issued token landed in the revocation registry.
	keys := f.redis.Keys()
	require.Len(t, keys, 1)
	assert.Equal(t, TokenKey(claims.UserID, claims.TokenID), keys[0])

	assert.Contains(t, f.audit.actions, entity.AuditActionUserRegister)
}

func TestRegisterInvalidUserType(t *testing.T) {
	f := newAuthFixture(t)

	req := patientRegisterRequest()
	req.UserType = "admin"

	_, err := f.usecase.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidUserType)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newAuthFixture(t)
	f.userRepo.findByEmailFn = func(ctx context.Context, email string) (*entity.User, error) {
		return &entity.User{Email: email}, nil
	}

	_, err := f.usecase.Register(context.Background(), patientRegisterRequest())
	assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)
}

func TestRegisterPatientBadDateOfBirth(t *testing.T) {
	f := newAuthFixture(t)

	req := patientRegisterRequest()
	info, _ := json.Marshal(dto.PatientInfo{DateOfBirth: "20-05-1990"})
	req.AdditionalInfo = info

	_, err := f.usecase.Register(context.Background(), req)

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestLogin(t *testing.T) {
	f := newAuthFixture(t)

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &entity.User{
		ID:       uuid.New(),
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: string(hashed),
		Role:     entity.RolePatient,
	}
	f.userRepo.findByEmailFn = func(ctx context.Context, email string) (*entity.User, error) {
		if email == user.Email {
			return user, nil
		}
		return nil, nil
	}

	t.Run("success", func(t *testing.T) {
		result, err := f.usecase.Login(context.Background(), &dto.LoginRequest{
			Email:    "jane@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.Equal(t, "Login successful", result.Message)
		assert.NotEmpty(t, result.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := f.usecase.Login(context.Background(), &dto.LoginRequest{
			Email:    "jane@example.com",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := f.usecase.Login(context.Background(), &dto.LoginRequest{
			Email:    "nobody@example.com",
			Password: "secret123",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestLogoutRevokesToken(t *testing.T) {
	f := newAuthFixture(t)

	result, err := f.usecase.Register(context.Background(), patientRegisterRequest())
	require.NoError(t, err)

	claims, err := f.jwtService.ValidateToken(result.Token)
	require.NoError(t, err)

	require.NoError(t, f.usecase.Logout(context.Background(), claims.UserID, claims.TokenID))
	assert.Empty(t, f.redis.Keys())
}
