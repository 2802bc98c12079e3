package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"medecos/internal/converter"
	"medecos/internal/delivery/dto"
	"medecos/internal/domain/entity"
	"medecos/internal/domain/repository"
	"medecos/internal/service"
	"medecos/pkg/jwt"
	"medecos/pkg/validator"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// ValidationError carries a client-facing message for a malformed or
// semantically invalid request body. Handlers map it to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Logout(ctx context.Context, userID uuid.UUID, tokenID string) error
}

type authUsecase struct {
	log            *logrus.Logger
	validate       *validator.CustomValidator
	userRepo       repository.UserRepository
	doctorRepo     repository.DoctorProfileRepository
	patientRepo    repository.PatientProfileRepository
	pharmacistRepo repository.PharmacistProfileRepository
	labTesterRepo  repository.LabTesterProfileRepository
	jwtService     *jwt.JWTService
	redisClient    *redis.Client
	audit          service.AuditService
}

func NewAuthUsecase(
	log *logrus.Logger,
	validate *validator.CustomValidator,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorProfileRepository,
	patientRepo repository.PatientProfileRepository,
	pharmacistRepo repository.PharmacistProfileRepository,
	labTesterRepo repository.LabTesterProfileRepository,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
	audit service.AuditService,
) AuthUsecase {
	return &authUsecase{
		log:            log,
		validate:       validate,
		userRepo:       userRepo,
		doctorRepo:     doctorRepo,
		patientRepo:    patientRepo,
		pharmacistRepo: pharmacistRepo,
		labTesterRepo:  labTesterRepo,
		jwtService:     jwtService,
		redisClient:    redisClient,
		audit:          audit,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	role := entity.Role(req.UserType)
	if !role.Valid() {
		return nil, ErrInvalidUserType
	}

	existing, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to check existing email: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyRegistered
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		Role:     role,
		Phone:    req.Phone,
		Address:  req.Address,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrEmailAlreadyRegistered
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	if err := u.createProfile(ctx, user, req.AdditionalInfo); err != nil {
		return nil, err
	}

	token, _, err := u.issueToken(ctx, user)
	if err != nil {
		return nil, err
	}

	u.audit.LogCreate(ctx, &user.ID, entity.AuditActionUserRegister, "user", user.ID.String(), converter.UserToInfo(user))

	return &dto.AuthResponse{
		Message: "User registered successfully",
		Token:   token,
		User:    *converter.UserToInfo(user),
	}, nil
}

// createProfile decodes the role-specific profile document and persists it.
// Each variant is validated independently of the shared identity fields.
func (u *authUsecase) createProfile(ctx context.Context, user *entity.User, info json.RawMessage) error {
	if len(info) == 0 {
		info = json.RawMessage("{}")
	}

	switch user.Role {
	case entity.RoleDoctor:
		var doctorInfo dto.DoctorInfo
		if err := json.Unmarshal(info, &doctorInfo); err != nil {
			return &ValidationError{Message: "Invalid additionalInfo payload"}
		}
		if err := u.validate.Validate(&doctorInfo); err != nil {
			return &ValidationError{Message: u.validate.FormatValidationErrors(err)}
		}
		profile := &entity.DoctorProfile{
			UserID:          user.ID,
			Specialization:  doctorInfo.Specialization,
			Qualifications:  doctorInfo.Qualifications,
			Experience:      doctorInfo.Experience,
			LicenseNumber:   doctorInfo.LicenseNumber,
			ConsultationFee: doctorInfo.ConsultationFee,
			Availability:    doctorInfo.Availability,
		}
		if err := u.doctorRepo.Create(ctx, profile); err != nil {
			if isDuplicateKeyError(err) {
				return ErrLicenseAlreadyExists
			}
			u.log.Warnf("Failed to create doctor profile: %+v", err)
			return err
		}

	case entity.RolePatient:
		var patientInfo dto.PatientInfo
		if err := json.Unmarshal(info, &patientInfo); err != nil {
			return &ValidationError{Message: "Invalid additionalInfo payload"}
		}
		if err := u.validate.Validate(&patientInfo); err != nil {
			return &ValidationError{Message: u.validate.FormatValidationErrors(err)}
		}
		dob, err := time.Parse("2006-01-02", patientInfo.DateOfBirth)
		if err != nil {
			return &ValidationError{Message: ErrInvalidDateFormat.Error()}
		}
		profile := &entity.PatientProfile{
			UserID:           user.ID,
			DateOfBirth:      dob,
			Gender:           patientInfo.Gender,
			BloodGroup:       patientInfo.BloodGroup,
			MedicalHistory:   patientInfo.MedicalHistory,
			Allergies:        patientInfo.Allergies,
			EmergencyContact: patientInfo.EmergencyContact,
		}
		if err := u.patientRepo.Create(ctx, profile); err != nil {
			u.log.Warnf("Failed to create patient profile: %+v", err)
			return err
		}

	case entity.RolePharmacist:
		var pharmacistInfo dto.PharmacistInfo
		if err := json.Unmarshal(info, &pharmacistInfo); err != nil {
			return &ValidationError{Message: "Invalid additionalInfo payload"}
		}
		if err := u.validate.Validate(&pharmacistInfo); err != nil {
			return &ValidationError{Message: u.validate.FormatValidationErrors(err)}
		}
		profile := &entity.PharmacistProfile{
			UserID:          user.ID,
			PharmacyName:    pharmacistInfo.PharmacyName,
			LicenseNumber:   pharmacistInfo.LicenseNumber,
			PharmacyAddress: pharmacistInfo.PharmacyAddress,
			OperatingHours:  pharmacistInfo.OperatingHours,
			ServicesOffered: pharmacistInfo.ServicesOffered,
		}
		if err := u.pharmacistRepo.Create(ctx, profile); err != nil {
			if isDuplicateKeyError(err) {
				return ErrLicenseAlreadyExists
			}
			u.log.Warnf("Failed to create pharmacist profile: %+v", err)
			return err
		}

	case entity.RoleLabTester:
		var testerInfo dto.LabTesterInfo
		if err := json.Unmarshal(info, &testerInfo); err != nil {
			return &ValidationError{Message: "Invalid additionalInfo payload"}
		}
		if err := u.validate.Validate(&testerInfo); err != nil {
			return &ValidationError{Message: u.validate.FormatValidationErrors(err)}
		}
		profile := &entity.LabTesterProfile{
			UserID:         user.ID,
			LabName:        testerInfo.LabName,
			LicenseNumber:  testerInfo.LicenseNumber,
			LabAddress:     testerInfo.LabAddress,
			TestsAvailable: testerInfo.TestsAvailable,
			OperatingHours: testerInfo.OperatingHours,
			Accreditations: testerInfo.Accreditations,
		}
		if err := u.labTesterRepo.Create(ctx, profile); err != nil {
			if isDuplicateKeyError(err) {
				return ErrLicenseAlreadyExists
			}
			u.log.Warnf("Failed to create lab tester profile: %+v", err)
			return err
		}

	default:
		return ErrInvalidUserType
	}

	return nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, _, err := u.issueToken(ctx, user)
	if err != nil {
		return nil, err
	}

	u.audit.LogCreate(ctx, &user.ID, entity.AuditActionUserLogin, "user", user.ID.String(), nil)

	return &dto.AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    *converter.UserToInfo(user),
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, userID uuid.UUID, tokenID string) error {
	key := tokenKey(userID, tokenID)
	if err := u.redisClient.Del(ctx, key).Err(); err != nil {
		u.log.Warnf("Failed to delete token from Redis: %+v", err)
		return err
	}

	u.audit.LogCreate(ctx, &userID, entity.AuditActionUserLogout, "user", userID.String(), nil)
	return nil
}

// issueToken signs a credential and records it in the issued-token registry
// so it can be individually revoked on logout.
func (u *authUsecase) issueToken(ctx context.Context, user *entity.User) (string, string, error) {
	token, tokenID, err := u.jwtService.GenerateToken(user.ID, user.Role)
	if err != nil {
		u.log.Warnf("Failed to generate token: %+v", err)
		return "", "", err
	}

	key := tokenKey(user.ID, tokenID)
	if err := u.redisClient.Set(ctx, key, "valid", u.jwtService.GetTokenExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store token in Redis: %+v", err)
		return "", "", err
	}

	return token, tokenID, nil
}

// TokenKey is the redis key under which an issued token is registered.
func TokenKey(userID uuid.UUID, tokenID string) string {
	return tokenKey(userID, tokenID)
}

func tokenKey(userID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("auth_token:%s:%s", userID.String(), tokenID)
}

// isDuplicateKeyError checks for a PostgreSQL unique constraint violation.
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
