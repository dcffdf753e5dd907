package services

import (
	"context"
	"sort"
	"time"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

// In-memory repository fakes backing the service tests. They mirror the
// error contracts of the real repositories, including last-admin protection
// and duplicate-key mapping.

type fakeUserRepo struct {
	users    map[int64]*models.User
	students *fakeStudentRepo
	nextID   int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*models.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	for _, u := range r.users {
		if u.Username == user.Username {
			return apperrors.ErrUsernameTaken
		}
		if u.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	for _, u := range r.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return apperrors.ErrUserNotFound
	}
	user.UpdatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, userID int64, passwordHash string) error {
	user, ok := r.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.Password = passwordHash
	return nil
}

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, userID int64) error {
	user, ok := r.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	now := time.Now()
	user.LastLoginAt = &now
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id int64) error {
	user, ok := r.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}

	if user.Role == models.RoleAdmin && user.IsActive {
		active := int64(0)
		for _, u := range r.users {
			if u.Role == models.RoleAdmin && u.IsActive {
				active++
			}
		}
		if active <= 1 {
			return apperrors.ErrLastAdminProtection
		}
	}

	if user.Role == models.RoleStudent && r.students != nil {
		for recID, rec := range r.students.records {
			if rec.UserID == id {
				delete(r.students.records, recID)
			}
		}
	}

	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) CountAdmins(_ context.Context) (int64, error) {
	count := int64(0)
	for _, u := range r.users {
		if u.Role == models.RoleAdmin {
			count++
		}
	}
	return count, nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) List(_ context.Context, offset uint64, limit int) ([]*models.User, error) {
	all := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		all = append(all, u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })

	start := int(offset)
	if start >= len(all) {
		return []*models.User{}, nil
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}

type fakeStudentRepo struct {
	users   *fakeUserRepo
	records map[int64]*models.StudentRecord
	nextID  int64
}

func newFakeStudentRepo(users *fakeUserRepo) *fakeStudentRepo {
	repo := &fakeStudentRepo{
		users:   users,
		records: make(map[int64]*models.StudentRecord),
	}
	if users != nil {
		users.students = repo
	}
	return repo
}

func (r *fakeStudentRepo) Create(_ context.Context, record *models.StudentRecord) error {
	for _, rec := range r.records {
		if rec.StudentID == record.StudentID {
			return apperrors.ErrStudentIDAlreadyExists
		}
	}
	r.nextID++
	record.ID = r.nextID
	record.CreatedAt = time.Now()
	record.UpdatedAt = record.CreatedAt
	r.records[record.ID] = record
	return nil
}

func (r *fakeStudentRepo) CreateWithUser(ctx context.Context, user *models.User, record *models.StudentRecord) error {
	if err := r.users.Create(ctx, user); err != nil {
		return err
	}
	record.UserID = user.ID
	if err := r.Create(ctx, record); err != nil {
		// Mirror the transactional rollback of the real repository
		delete(r.users.users, user.ID)
		return err
	}
	record.User = user
	return nil
}

func (r *fakeStudentRepo) GetByID(_ context.Context, id int64) (*models.StudentRecord, error) {
	rec, ok := r.records[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return rec, nil
}

func (r *fakeStudentRepo) GetByUserID(_ context.Context, userID int64) (*models.StudentRecord, error) {
	for _, rec := range r.records {
		if rec.UserID == userID {
			return rec, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (r *fakeStudentRepo) StudentIDExists(_ context.Context, studentID string) (bool, error) {
	for _, rec := range r.records {
		if rec.StudentID == studentID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeStudentRepo) Update(_ context.Context, record *models.StudentRecord) error {
	if _, ok := r.records[record.ID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	record.UpdatedAt = time.Now()
	r.records[record.ID] = record
	return nil
}

func (r *fakeStudentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.records[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(r.records, id)
	return nil
}

func (r *fakeStudentRepo) matches(rec *models.StudentRecord, filter dto.StudentFilter) bool {
	if filter.Status != "" && rec.Status != filter.Status {
		return false
	}
	if filter.Department != "" && rec.AcademicInfo.Department != filter.Department {
		return false
	}
	if filter.Year > 0 && rec.AcademicInfo.Year != filter.Year {
		return false
	}
	return true
}

func (r *fakeStudentRepo) List(_ context.Context, filter dto.StudentFilter, offset uint64, limit int) ([]*models.StudentRecord, error) {
	all := make([]*models.StudentRecord, 0, len(r.records))
	for _, rec := range r.records {
		if r.matches(rec, filter) {
			all = append(all, rec)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })

	start := int(offset)
	if start >= len(all) {
		return []*models.StudentRecord{}, nil
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}

func (r *fakeStudentRepo) Count(_ context.Context, filter dto.StudentFilter) (int64, error) {
	count := int64(0)
	for _, rec := range r.records {
		if r.matches(rec, filter) {
			count++
		}
	}
	return count, nil
}

func (r *fakeStudentRepo) CountByStatus(_ context.Context) (map[models.StudentStatus]int64, error) {
	counts := make(map[models.StudentStatus]int64)
	for _, rec := range r.records {
		counts[rec.Status]++
	}
	return counts, nil
}

type fakeContactRepo struct {
	messages []*models.ContactMessage
	nextID   int64
}

func (r *fakeContactRepo) Create(_ context.Context, msg *models.ContactMessage) error {
	r.nextID++
	msg.ID = r.nextID
	msg.CreatedAt = time.Now()
	r.messages = append(r.messages, msg)
	return nil
}

type fakeEmailService struct {
	fail bool
	sent []*models.ContactMessage
}

func (s *fakeEmailService) SendContactMessage(msg *models.ContactMessage) error {
	if s.fail {
		return apperrors.ErrInternal
	}
	s.sent = append(s.sent, msg)
	return nil
}
