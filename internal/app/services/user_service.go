package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/auth"
	"github.com/campushub/backend/internal/pkg/helpers"
)

// UserService handles admin user management
type UserService struct {
	userRepo repositories.IUserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.IUserRepository, logger zerolog.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// ListUsers returns a paginated page of users
func (s *UserService) ListUsers(ctx context.Context, page, limit int) (*dto.UserListResponse, error) {
	offset, effectiveLimit := helpers.CalculateOffsetLimit(page, limit)

	total, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	users, err := s.userRepo.List(ctx, offset, effectiveLimit)
	if err != nil {
		return nil, err
	}

	return &dto.UserListResponse{
		Users:      users,
		Pagination: helpers.NewPaginationInfo(total, page, effectiveLimit),
	}, nil
}

// GetUser returns a user by ID
func (s *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// CreateUser creates a user account of either role. No student record is
// created here even for student-role users; the student creation endpoint
// owns that flow.
func (s *UserService) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
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

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userId", user.ID).Str("role", string(user.Role)).Msg("User created by admin")
	return user, nil
}

// UpdateUser updates a user's account fields
func (s *UserService) UpdateUser(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		if err := validateEmail(*req.Email); err != nil {
			return nil, err
		}
		if *req.Email != user.Email {
			if taken, err := s.userRepo.EmailExists(ctx, *req.Email); err != nil {
				return nil, err
			} else if taken {
				return nil, apperrors.ErrEmailAlreadyExists
			}
		}
		user.Email = *req.Email
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userId", id).Msg("User updated by admin")
	return user, nil
}

// DeleteUser removes a user account. Deleting the last remaining admin is a
// business-rule violation; a student's record is removed with its user.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrLastAdminProtection) {
			return apperrors.NewInvalidOperationError("cannot delete the last admin user")
		}
		return err
	}

	s.logger.Info().Int64("userId", id).Msg("User deleted by admin")
	return nil
}
