package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/auth"
)

// AuthService handles registration, login and account self-service
type AuthService struct {
	userRepo    repositories.IUserRepository
	studentRepo repositories.IStudentRepository
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	studentRepo repositories.IStudentRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		studentRepo: studentRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// Register creates a new account. Student self-registration is open; admin
// registration requires a valid token of an active admin, except for the very
// first admin account, which bootstraps the system with no prior credentials.
// authHeader is the raw Authorization header of the request, possibly empty.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest, authHeader string) (*dto.AuthResponse, error) {
	if !req.Role.IsValid() {
		return nil, apperrors.NewValidationError("validation failed", map[string]string{
			"role": "role must be either admin or student",
		})
	}
	if err := validateUsername(req.Username); err != nil {
		return nil, err
	}
	if err := validateEmail(req.Email); err != nil {
		return nil, err
	}
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	isFirstAdmin := false
	if req.Role == models.RoleAdmin {
		adminCount, err := s.userRepo.CountAdmins(ctx)
		if err != nil {
			return nil, err
		}
		if adminCount == 0 {
			isFirstAdmin = true
		} else if err := s.requireActiveAdmin(ctx, authHeader); err != nil {
			return nil, err
		}
	}

	// All uniqueness checks run before any write so a rejected request
	// leaves no partial state behind.
	if taken, err := s.userRepo.UsernameExists(ctx, req.Username); err != nil {
		return nil, err
	} else if taken {
		return nil, apperrors.ErrUsernameTaken
	}
	if taken, err := s.userRepo.EmailExists(ctx, req.Email); err != nil {
		return nil, err
	} else if taken {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrInternal, "failed to hash password")
	}

	user := &models.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  hashed,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
		IsActive:  true,
	}

	if req.Role == models.RoleStudent {
		record, err := s.buildStudentRecord(ctx, req.StudentData)
		if err != nil {
			return nil, err
		}
		if err := s.studentRepo.CreateWithUser(ctx, user, record); err != nil {
			return nil, err
		}
		s.logger.Info().
			Int64("userId", user.ID).
			Str("studentId", record.StudentID).
			Msg("Student registered")
	} else {
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
		s.logger.Info().
			Int64("userId", user.ID).
			Bool("firstAdmin", isFirstAdmin).
			Msg("Admin registered")
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrInternal, "failed to generate token")
	}

	return &dto.AuthResponse{
		User:         user,
		Token:        token,
		ExpiresIn:    expiresIn,
		IsFirstAdmin: isFirstAdmin,
	}, nil
}

// requireActiveAdmin verifies that authHeader carries a valid token belonging
// to an active admin user. A missing or invalid token is an authentication
// failure; a valid token of a non-admin is an authorization failure.
func (s *AuthService) requireActiveAdmin(ctx context.Context, authHeader string) error {
	tokenString, err := auth.ExtractBearerToken(authHeader)
	if err != nil {
		return apperrors.NewCustomError(apperrors.ErrUnauthenticated, "admin registration requires an admin token")
	}

	claims, err := s.jwtService.ValidateAndExtractClaims(tokenString)
	if err != nil {
		return apperrors.NewCustomError(apperrors.ErrUnauthenticated, "admin registration requires an admin token")
	}

	caller, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return apperrors.NewCustomError(apperrors.ErrUnauthenticated, "admin registration requires an admin token")
	}
	if !caller.IsActive {
		return apperrors.ErrAccountDisabled
	}
	if caller.Role != models.RoleAdmin {
		return apperrors.NewForbiddenError("only admins can register new admin accounts")
	}

	return nil
}

// buildStudentRecord assembles a student record from the optional seed data,
// filling everything else with documented defaults
func (s *AuthService) buildStudentRecord(ctx context.Context, seed *dto.StudentDataSeed) (*models.StudentRecord, error) {
	record := newStudentRecordWithDefaults(time.Now())

	if seed == nil {
		return record, nil
	}

	if seed.StudentID != "" {
		record.StudentID = seed.StudentID
	}
	if seed.Gender != "" {
		if !models.IsValidGender(seed.Gender) {
			return nil, apperrors.NewValidationError("validation failed", map[string]string{
				"gender": "gender must be male, female or other",
			})
		}
		record.Gender = seed.Gender
	}
	if seed.Phone != "" {
		if err := validatePhone(seed.Phone); err != nil {
			return nil, err
		}
		record.Phone = seed.Phone
	}

	dob, err := parseDateOfBirth(seed.DateOfBirth)
	if err != nil {
		return nil, apperrors.NewValidationError("validation failed", map[string]string{
			"dateOfBirth": "date of birth must be an RFC 3339 timestamp or YYYY-MM-DD date",
		})
	}
	record.DateOfBirth = dob

	record.Address.Apply(seed.Address)
	record.AcademicInfo.Apply(seed.AcademicInfo)
	record.GuardianInfo.Apply(seed.GuardianInfo)
	record.EmergencyContact.Apply(seed.Emergency)

	if exists, err := s.studentRepo.StudentIDExists(ctx, record.StudentID); err != nil {
		return nil, err
	} else if exists {
		return nil, apperrors.ErrStudentIDAlreadyExists
	}

	return record, nil
}

// Login authenticates a user by email and password. Unknown emails and wrong
// passwords produce the same error so callers cannot probe which emails exist.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		// A stale lastLogin stamp must not block the login itself
		s.logger.Warn().Err(err).Int64("userId", user.ID).Msg("Failed to stamp last login")
	} else {
		now := time.Now()
		user.LastLoginAt = &now
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrInternal, "failed to generate token")
	}

	s.logger.Info().Int64("userId", user.ID).Str("role", string(user.Role)).Msg("User logged in")

	return &dto.AuthResponse{
		User:      user,
		Token:     token,
		ExpiresIn: expiresIn,
	}, nil
}

// ChangePassword replaces the calling user's password after verifying the
// current one
func (s *AuthService) ChangePassword(ctx context.Context, userID int64, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(user.Password, req.CurrentPassword) {
		return apperrors.NewValidationError("validation failed", map[string]string{
			"currentPassword": "current password is incorrect",
		})
	}

	if err := validatePassword(req.NewPassword); err != nil {
		return err
	}

	hashed, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.NewCustomError(apperrors.ErrInternal, "failed to hash password")
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, hashed); err != nil {
		return err
	}

	s.logger.Info().Int64("userId", userID).Msg("Password changed")
	return nil
}

// GetProfile returns the calling user's account, with the linked student
// record ID for student-role users
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.ProfileResponse{User: user}
	if user.Role == models.RoleStudent {
		if rec, err := s.studentRepo.GetByUserID(ctx, userID); err == nil {
			resp.StudentRecordID = &rec.ID
		}
	}

	return resp, nil
}

// UpdateAccount updates the calling user's basic account fields
func (s *AuthService) UpdateAccount(ctx context.Context, userID int64, req *dto.UpdateAccountRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
