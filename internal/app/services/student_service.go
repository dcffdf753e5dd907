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
	"github.com/campushub/backend/internal/pkg/helpers"
)

// StudentService handles student-record business logic for both the
// self-service and admin surfaces
type StudentService struct {
	studentRepo repositories.IStudentRepository
	userRepo    repositories.IUserRepository
	logger      zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(
	studentRepo repositories.IStudentRepository,
	userRepo repositories.IUserRepository,
	logger zerolog.Logger,
) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// GetOwnProfile returns the full student record of the calling user
func (s *StudentService) GetOwnProfile(ctx context.Context, userID int64) (*models.StudentRecord, error) {
	return s.studentRepo.GetByUserID(ctx, userID)
}

// GetOwnAcademicRecord returns the academic projection of the calling user
func (s *StudentService) GetOwnAcademicRecord(ctx context.Context, userID int64) (*dto.AcademicRecordResponse, error) {
	rec, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.AcademicRecordResponse{
		StudentID:           rec.StudentID,
		AcademicInfo:        rec.AcademicInfo,
		AcademicPerformance: rec.AcademicPerformance,
		Status:              rec.Status,
	}, nil
}

// GetOwnPersonalInfo returns the personal projection of the calling user
func (s *StudentService) GetOwnPersonalInfo(ctx context.Context, userID int64) (*dto.PersonalInfoResponse, error) {
	rec, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.PersonalInfoResponse{
		StudentID:        rec.StudentID,
		DateOfBirth:      rec.DateOfBirth,
		Gender:           rec.Gender,
		Phone:            rec.Phone,
		Address:          rec.Address,
		GuardianInfo:     rec.GuardianInfo,
		EmergencyContact: rec.EmergencyContact,
	}, nil
}

// GetOwnDocuments returns the document references of the calling user
func (s *StudentService) GetOwnDocuments(ctx context.Context, userID int64) (*models.Documents, error) {
	rec, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &rec.Documents, nil
}

// GetOwnStatus returns the lifecycle projection of the calling user
func (s *StudentService) GetOwnStatus(ctx context.Context, userID int64) (*dto.StatusResponse, error) {
	rec, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.StatusResponse{
		StudentID:          rec.StudentID,
		Status:             rec.Status,
		EnrollmentDate:     rec.EnrollmentDate,
		GraduationDate:     rec.GraduationDate,
		LastAttendanceDate: rec.LastAttendanceDate,
		Remarks:            rec.Remarks,
	}, nil
}

// UpdateOwnProfile applies the restricted self-service update: only phone,
// address and emergency contact can be changed, everything else on the
// request body is ignored.
func (s *StudentService) UpdateOwnProfile(ctx context.Context, userID int64, req *dto.UpdateOwnProfileRequest) (*models.StudentRecord, error) {
	rec, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Phone != nil {
		if err := validatePhone(*req.Phone); err != nil {
			return nil, err
		}
		rec.Phone = *req.Phone
	}
	rec.Address.Apply(req.Address)
	rec.EmergencyContact.Apply(req.EmergencyContact)

	if err := s.studentRepo.Update(ctx, rec); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userId", userID).Str("studentId", rec.StudentID).Msg("Student updated own profile")
	return rec, nil
}

// ListStudents returns a filtered, paginated page of student records
func (s *StudentService) ListStudents(ctx context.Context, filter dto.StudentFilter, page, limit int) (*dto.StudentListResponse, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, apperrors.NewValidationError("validation failed", map[string]string{
			"status": "invalid student status filter",
		})
	}

	offset, effectiveLimit := helpers.CalculateOffsetLimit(page, limit)

	total, err := s.studentRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	students, err := s.studentRepo.List(ctx, filter, offset, effectiveLimit)
	if err != nil {
		return nil, err
	}

	return &dto.StudentListResponse{
		Students:   students,
		Pagination: helpers.NewPaginationInfo(total, page, effectiveLimit),
	}, nil
}

// GetStudent returns a student record by record ID
func (s *StudentService) GetStudent(ctx context.Context, id int64) (*models.StudentRecord, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// CreateStudent creates a student-role user together with its full student
// record. All uniqueness checks run before any write.
func (s *StudentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.StudentRecord, error) {
	if err := validateUsername(req.Username); err != nil {
		return nil, err
	}
	if err := validateEmail(req.Email); err != nil {
		return nil, err
	}
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	record := newStudentRecordWithDefaults(time.Now())

	if req.StudentID != "" {
		record.StudentID = req.StudentID
	}
	if req.Gender != "" {
		if !models.IsValidGender(req.Gender) {
			return nil, apperrors.NewValidationError("validation failed", map[string]string{
				"gender": "gender must be male, female or other",
			})
		}
		record.Gender = req.Gender
	}
	if req.Phone != "" {
		if err := validatePhone(req.Phone); err != nil {
			return nil, err
		}
		record.Phone = req.Phone
	}

	dob, err := parseDateOfBirth(req.DateOfBirth)
	if err != nil {
		return nil, apperrors.NewValidationError("validation failed", map[string]string{
			"dateOfBirth": "date of birth must be an RFC 3339 timestamp or YYYY-MM-DD date",
		})
	}
	record.DateOfBirth = dob
	record.Remarks = req.Remarks

	record.Address.Apply(req.Address)
	record.AcademicInfo.Apply(req.AcademicInfo)
	record.GuardianInfo.Apply(req.GuardianInfo)
	record.EmergencyContact.Apply(req.EmergencyContact)
	record.Documents.Apply(req.Documents)
	record.AcademicPerformance.Apply(req.AcademicPerformance)
	record.FinancialInfo.Apply(req.FinancialInfo)
	record.HostelInfo.Apply(req.HostelInfo)
	record.PlacementInfo.Apply(req.PlacementInfo)

	if !record.FinancialInfo.FeeStructure.IsValid() {
		return nil, apperrors.NewValidationError("validation failed", map[string]string{
			"financialInfo.feeStructure": "invalid fee structure",
		})
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
	if exists, err := s.studentRepo.StudentIDExists(ctx, record.StudentID); err != nil {
		return nil, err
	} else if exists {
		return nil, apperrors.ErrStudentIDAlreadyExists
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
		Role:      models.RoleStudent,
		IsActive:  true,
	}

	if err := s.studentRepo.CreateWithUser(ctx, user, record); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("userId", user.ID).
		Str("studentId", record.StudentID).
		Msg("Student created by admin")

	return record, nil
}

// UpdateStudent applies the admin full-field update. Nested blocks are
// shallow-merged; transitioning into graduated stamps the graduation date.
func (s *StudentService) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.StudentRecord, error) {
	rec, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Gender != nil {
		if !models.IsValidGender(*req.Gender) {
			return nil, apperrors.NewValidationError("validation failed", map[string]string{
				"gender": "gender must be male, female or other",
			})
		}
		rec.Gender = *req.Gender
	}
	if req.Phone != nil {
		if err := validatePhone(*req.Phone); err != nil {
			return nil, err
		}
		rec.Phone = *req.Phone
	}
	if req.DateOfBirth != nil {
		dob, err := parseDateOfBirth(req.DateOfBirth)
		if err != nil {
			return nil, apperrors.NewValidationError("validation failed", map[string]string{
				"dateOfBirth": "date of birth must be an RFC 3339 timestamp or YYYY-MM-DD date",
			})
		}
		rec.DateOfBirth = dob
	}
	if req.LastAttendanceDate != nil {
		rec.LastAttendanceDate = req.LastAttendanceDate
	}
	if req.Remarks != nil {
		rec.Remarks = *req.Remarks
	}
	if req.Status != nil {
		if err := s.applyStatus(rec, *req.Status); err != nil {
			return nil, err
		}
	}

	rec.Address.Apply(req.Address)
	rec.AcademicInfo.Apply(req.AcademicInfo)
	rec.GuardianInfo.Apply(req.GuardianInfo)
	rec.EmergencyContact.Apply(req.EmergencyContact)
	rec.Documents.Apply(req.Documents)
	rec.AcademicPerformance.Apply(req.AcademicPerformance)
	rec.FinancialInfo.Apply(req.FinancialInfo)
	rec.HostelInfo.Apply(req.HostelInfo)
	rec.PlacementInfo.Apply(req.PlacementInfo)

	if !rec.FinancialInfo.FeeStructure.IsValid() {
		return nil, apperrors.NewValidationError("validation failed", map[string]string{
			"financialInfo.feeStructure": "invalid fee structure",
		})
	}

	if err := s.studentRepo.Update(ctx, rec); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("id", id).Str("studentId", rec.StudentID).Msg("Student record updated")
	return rec, nil
}

// DeleteStudent removes a student record. The owning user account survives;
// removing the account itself goes through user deletion, which cascades the
// other way.
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	rec, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("id", id).Str("studentId", rec.StudentID).Msg("Student deleted")
	return nil
}

// SetStatus sets a student's lifecycle status
func (s *StudentService) SetStatus(ctx context.Context, id int64, status models.StudentStatus) (*models.StudentRecord, error) {
	rec, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.applyStatus(rec, status); err != nil {
		return nil, err
	}

	if err := s.studentRepo.Update(ctx, rec); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("id", id).
		Str("studentId", rec.StudentID).
		Str("status", string(status)).
		Msg("Student status changed")

	return rec, nil
}

// applyStatus validates and applies a status transition. Entering graduated
// stamps the graduation date once; re-applying graduated keeps the original
// stamp.
func (s *StudentService) applyStatus(rec *models.StudentRecord, status models.StudentStatus) error {
	if !status.IsValid() {
		return apperrors.NewCustomError(apperrors.ErrInvalidStatus, "invalid student status")
	}

	if status == models.StatusGraduated && rec.Status != models.StatusGraduated {
		now := time.Now()
		rec.GraduationDate = &now
	}
	rec.Status = status

	return nil
}

// Dashboard aggregates admin overview figures
func (s *StudentService) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	totalStudents, err := s.studentRepo.Count(ctx, dto.StudentFilter{})
	if err != nil {
		return nil, err
	}

	totalUsers, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalAdmins, err := s.userRepo.CountAdmins(ctx)
	if err != nil {
		return nil, err
	}

	byStatus, err := s.studentRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.studentRepo.List(ctx, dto.StudentFilter{}, 0, 5)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		TotalStudents:    totalStudents,
		TotalUsers:       totalUsers,
		TotalAdmins:      totalAdmins,
		StudentsByStatus: byStatus,
		RecentStudents:   recent,
	}, nil
}
