package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/auth"
)

func newTestAuthService() (*AuthService, *fakeUserRepo, *fakeStudentRepo) {
	userRepo := newFakeUserRepo()
	studentRepo := newFakeStudentRepo(userRepo)
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test",
	})
	svc := NewAuthService(userRepo, studentRepo, jwtService, zerolog.Nop())
	return svc, userRepo, studentRepo
}

func adminRequest(username, email string) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Username:  username,
		Email:     email,
		Password:  "secret123",
		FirstName: "Ada",
		LastName:  "Admin",
		Role:      models.RoleAdmin,
	}
}

func studentRequest(username, email string) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Username:  username,
		Email:     email,
		Password:  "secret123",
		FirstName: "Sam",
		LastName:  "Student",
		Role:      models.RoleStudent,
	}
}

func TestRegisterFirstAdminBootstrap(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	first, err := svc.Register(ctx, adminRequest("firstadmin", "first@college.edu"), "")
	require.NoError(t, err)
	assert.True(t, first.IsFirstAdmin)
	assert.NotEmpty(t, first.Token)

	// A second admin cannot be registered without credentials
	_, err = svc.Register(ctx, adminRequest("secondadmin", "second@college.edu"), "")
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)

	// But succeeds with the first admin's token
	second, err := svc.Register(ctx, adminRequest("secondadmin", "second@college.edu"), "Bearer "+first.Token)
	require.NoError(t, err)
	assert.False(t, second.IsFirstAdmin)
}

func TestRegisterAdminWithStudentTokenForbidden(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, adminRequest("firstadmin", "first@college.edu"), "")
	require.NoError(t, err)

	student, err := svc.Register(ctx, studentRequest("samstudent", "sam@college.edu"), "")
	require.NoError(t, err)

	_, err = svc.Register(ctx, adminRequest("thirdadmin", "third@college.edu"), "Bearer "+student.Token)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestRegisterStudentOpenEvenWithAdminsPresent(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, adminRequest("firstadmin", "first@college.edu"), "")
	require.NoError(t, err)

	resp, err := svc.Register(ctx, studentRequest("samstudent", "sam@college.edu"), "")
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, resp.User.Role)
	assert.False(t, resp.IsFirstAdmin)
}

func TestRegisterStudentDefaults(t *testing.T) {
	svc, _, studentRepo := newTestAuthService()
	ctx := context.Background()

	resp, err := svc.Register(ctx, studentRequest("samstudent", "sam@college.edu"), "")
	require.NoError(t, err)

	rec, err := studentRepo.GetByUserID(ctx, resp.User.ID)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(rec.StudentID, "STU"))
	assert.Equal(t, "0000000000", rec.Phone)
	assert.Equal(t, models.GenderOther, rec.Gender)
	assert.Equal(t, "N/A", rec.Address.City)
	assert.Equal(t, "N/A", rec.GuardianInfo.Name)
	assert.Equal(t, models.StatusActive, rec.Status)
	assert.Equal(t, models.FeeGeneral, rec.FinancialInfo.FeeStructure)
	assert.False(t, rec.EnrollmentDate.IsZero())
}

func TestRegisterStudentWithSeedData(t *testing.T) {
	svc, _, studentRepo := newTestAuthService()
	ctx := context.Background()

	city := "Pune"
	dob := "2003-05-14"
	req := studentRequest("samstudent", "sam@college.edu")
	req.StudentData = &dto.StudentDataSeed{
		StudentID:   "CS2021001",
		DateOfBirth: &dob,
		Gender:      models.GenderFemale,
		Phone:       "+919812345678",
		Address:     &models.AddressPatch{City: &city},
	}

	resp, err := svc.Register(ctx, req, "")
	require.NoError(t, err)

	rec, err := studentRepo.GetByUserID(ctx, resp.User.ID)
	require.NoError(t, err)

	assert.Equal(t, "CS2021001", rec.StudentID)
	assert.Equal(t, models.GenderFemale, rec.Gender)
	assert.Equal(t, "+919812345678", rec.Phone)
	assert.Equal(t, "Pune", rec.Address.City)
	// Unseeded fields keep their placeholder defaults
	assert.Equal(t, "N/A", rec.Address.Street)
	require.NotNil(t, rec.DateOfBirth)
	assert.Equal(t, 2003, rec.DateOfBirth.Year())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, studentRequest("samstudent", "sam@college.edu"), "")
	require.NoError(t, err)

	_, err = svc.Register(ctx, studentRequest("otherstudent", "sam@college.edu"), "")
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegisterDuplicateStudentID(t *testing.T) {
	svc, userRepo, _ := newTestAuthService()
	ctx := context.Background()

	req := studentRequest("samstudent", "sam@college.edu")
	req.StudentData = &dto.StudentDataSeed{StudentID: "CS2021001"}
	_, err := svc.Register(ctx, req, "")
	require.NoError(t, err)

	dup := studentRequest("otherstudent", "other@college.edu")
	dup.StudentData = &dto.StudentDataSeed{StudentID: "CS2021001"}
	_, err = svc.Register(ctx, dup, "")
	assert.ErrorIs(t, err, apperrors.ErrStudentIDAlreadyExists)

	// The rejected registration left no user behind
	count, err := userRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestLoginDoesNotRevealWhichFieldWasWrong(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, studentRequest("samstudent", "sam@college.edu"), "")
	require.NoError(t, err)

	_, unknownErr := svc.Login(ctx, &dto.LoginRequest{Email: "nobody@college.edu", Password: "secret123"})
	_, wrongErr := svc.Login(ctx, &dto.LoginRequest{Email: "sam@college.edu", Password: "wrongpass"})

	assert.ErrorIs(t, unknownErr, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, apperrors.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestLoginDeactivatedAccount(t *testing.T) {
	svc, userRepo, _ := newTestAuthService()
	ctx := context.Background()

	resp, err := svc.Register(ctx, studentRequest("samstudent", "sam@college.edu"), "")
	require.NoError(t, err)

	resp.User.IsActive = false
	require.NoError(t, userRepo.Update(ctx, resp.User))

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "sam@college.edu", Password: "secret123"})
	assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
}

func TestLoginStampsLastLogin(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	reg, err := svc.Register(ctx, studentRequest("samstudent", "sam@college.edu"), "")
	require.NoError(t, err)
	assert.Nil(t, reg.User.LastLoginAt)

	resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "sam@college.edu", Password: "secret123"})
	require.NoError(t, err)
	assert.NotNil(t, resp.User.LastLoginAt)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
}

func TestChangePassword(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	resp, err := svc.Register(ctx, studentRequest("samstudent", "sam@college.edu"), "")
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, resp.User.ID, &dto.ChangePasswordRequest{
		CurrentPassword: "wrongpass",
		NewPassword:     "newsecret123",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	err = svc.ChangePassword(ctx, resp.User.ID, &dto.ChangePasswordRequest{
		CurrentPassword: "secret123",
		NewPassword:     "newsecret123",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "sam@college.edu", Password: "newsecret123"})
	assert.NoError(t, err)
}

func TestGetProfileIncludesStudentRecordID(t *testing.T) {
	svc, _, studentRepo := newTestAuthService()
	ctx := context.Background()

	admin, err := svc.Register(ctx, adminRequest("firstadmin", "first@college.edu"), "")
	require.NoError(t, err)
	student, err := svc.Register(ctx, studentRequest("samstudent", "sam@college.edu"), "")
	require.NoError(t, err)

	adminProfile, err := svc.GetProfile(ctx, admin.User.ID)
	require.NoError(t, err)
	assert.Nil(t, adminProfile.StudentRecordID)

	studentProfile, err := svc.GetProfile(ctx, student.User.ID)
	require.NoError(t, err)
	require.NotNil(t, studentProfile.StudentRecordID)

	rec, err := studentRepo.GetByUserID(ctx, student.User.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, *studentProfile.StudentRecordID)
}

func TestUpdateAccount(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	resp, err := svc.Register(ctx, studentRequest("samstudent", "sam@college.edu"), "")
	require.NoError(t, err)

	first := "Samuel"
	user, err := svc.UpdateAccount(ctx, resp.User.ID, &dto.UpdateAccountRequest{FirstName: &first})
	require.NoError(t, err)
	assert.Equal(t, "Samuel", user.FirstName)
	assert.Equal(t, "Student", user.LastName)
}
