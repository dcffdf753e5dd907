package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

func newTestUserService() (*UserService, *fakeUserRepo) {
	userRepo := newFakeUserRepo()
	newFakeStudentRepo(userRepo)
	return NewUserService(userRepo, zerolog.Nop()), userRepo
}

func createUserRequest(username, email string, role models.Role) *dto.CreateUserRequest {
	return &dto.CreateUserRequest{
		Username:  username,
		Email:     email,
		Password:  "secret123",
		FirstName: "Test",
		LastName:  "User",
		Role:      role,
	}
}

func TestCreateUser(t *testing.T) {
	svc, _ := newTestUserService()
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, createUserRequest("rootadmin", "root@college.edu", models.RoleAdmin))
	require.NoError(t, err)
	assert.True(t, user.IsActive)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.NotEqual(t, "secret123", user.Password)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	svc, _ := newTestUserService()
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, createUserRequest("rootadmin", "root@college.edu", models.RoleAdmin))
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, createUserRequest("rootadmin", "other@college.edu", models.RoleAdmin))
	assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	svc, _ := newTestUserService()
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, createUserRequest("someone", "someone@college.edu", models.Role("superuser")))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateUserDeactivation(t *testing.T) {
	svc, _ := newTestUserService()
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, createUserRequest("samstudent", "sam@college.edu", models.RoleStudent))
	require.NoError(t, err)

	inactive := false
	updated, err := svc.UpdateUser(ctx, user.ID, &dto.UpdateUserRequest{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
}

func TestUpdateUserEmailConflict(t *testing.T) {
	svc, _ := newTestUserService()
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, createUserRequest("first", "first@college.edu", models.RoleStudent))
	require.NoError(t, err)
	second, err := svc.CreateUser(ctx, createUserRequest("second", "second@college.edu", models.RoleStudent))
	require.NoError(t, err)

	taken := "first@college.edu"
	_, err = svc.UpdateUser(ctx, second.ID, &dto.UpdateUserRequest{Email: &taken})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestDeleteLastAdminRejected(t *testing.T) {
	svc, _ := newTestUserService()
	ctx := context.Background()

	admin, err := svc.CreateUser(ctx, createUserRequest("rootadmin", "root@college.edu", models.RoleAdmin))
	require.NoError(t, err)

	err = svc.DeleteUser(ctx, admin.ID)
	assert.ErrorIs(t, err, apperrors.ErrInvalidOperation)

	// Still there
	_, err = svc.GetUser(ctx, admin.ID)
	assert.NoError(t, err)
}

func TestDeleteDeactivatedAdminAllowed(t *testing.T) {
	svc, _ := newTestUserService()
	ctx := context.Background()

	active, err := svc.CreateUser(ctx, createUserRequest("rootadmin", "root@college.edu", models.RoleAdmin))
	require.NoError(t, err)
	retired, err := svc.CreateUser(ctx, createUserRequest("oldadmin", "old@college.edu", models.RoleAdmin))
	require.NoError(t, err)

	inactive := false
	_, err = svc.UpdateUser(ctx, retired.ID, &dto.UpdateUserRequest{IsActive: &inactive})
	require.NoError(t, err)

	// Removing an inactive admin leaves the active admin count untouched.
	require.NoError(t, svc.DeleteUser(ctx, retired.ID))

	_, err = svc.GetUser(ctx, retired.ID)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	_, err = svc.GetUser(ctx, active.ID)
	assert.NoError(t, err)
}

func TestDeleteAdminWithAnotherRemaining(t *testing.T) {
	svc, _ := newTestUserService()
	ctx := context.Background()

	first, err := svc.CreateUser(ctx, createUserRequest("firstadmin", "first@college.edu", models.RoleAdmin))
	require.NoError(t, err)
	_, err = svc.CreateUser(ctx, createUserRequest("secondadmin", "second@college.edu", models.RoleAdmin))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(ctx, first.ID))

	_, err = svc.GetUser(ctx, first.ID)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestListUsersPagination(t *testing.T) {
	svc, userRepo := newTestUserService()
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		require.NoError(t, userRepo.Create(ctx, &models.User{
			Username: "user" + string(rune('a'+i)),
			Email:    "user" + string(rune('a'+i)) + "@college.edu",
			Role:     models.RoleStudent,
			IsActive: true,
		}))
	}

	resp, err := svc.ListUsers(ctx, 2, 10)
	require.NoError(t, err)
	assert.Len(t, resp.Users, 5)
	assert.Equal(t, int64(15), resp.Pagination.TotalItems)
	assert.False(t, resp.Pagination.HasNextPage)
	assert.True(t, resp.Pagination.HasPrevPage)
}
