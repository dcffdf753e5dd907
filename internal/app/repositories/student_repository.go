package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/dberrors"
)

// IStudentRepository defines the interface for student-record database operations
type IStudentRepository interface {
	Create(ctx context.Context, record *models.StudentRecord) error
	CreateWithUser(ctx context.Context, user *models.User, record *models.StudentRecord) error
	GetByID(ctx context.Context, id int64) (*models.StudentRecord, error)
	GetByUserID(ctx context.Context, userID int64) (*models.StudentRecord, error)
	StudentIDExists(ctx context.Context, studentID string) (bool, error)
	Update(ctx context.Context, record *models.StudentRecord) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter dto.StudentFilter, offset uint64, limit int) ([]*models.StudentRecord, error)
	Count(ctx context.Context, filter dto.StudentFilter) (int64, error)
	CountByStatus(ctx context.Context) (map[models.StudentStatus]int64, error)
}

// StudentRepository handles persistence on the 'student_records' table.
// Nested profile blocks live in JSONB columns.
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

const studentColumns = `
	s.id, s.user_id, s.student_id, s.date_of_birth, s.gender, s.phone,
	s.address, s.academic_info, s.guardian_info, s.emergency_contact, s.documents,
	s.academic_performance, s.financial_info, s.hostel_info, s.placement_info,
	s.status, s.enrollment_date, s.graduation_date, s.last_attendance_date,
	s.remarks, s.created_at, s.updated_at,
	u.id, u.username, u.email, u.first_name, u.last_name, u.role, u.is_active,
	u.last_login_at, u.created_at, u.updated_at`

func scanStudent(row pgx.Row) (*models.StudentRecord, error) {
	rec := &models.StudentRecord{User: &models.User{}}
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.StudentID, &rec.DateOfBirth, &rec.Gender, &rec.Phone,
		&rec.Address, &rec.AcademicInfo, &rec.GuardianInfo, &rec.EmergencyContact, &rec.Documents,
		&rec.AcademicPerformance, &rec.FinancialInfo, &rec.HostelInfo, &rec.PlacementInfo,
		&rec.Status, &rec.EnrollmentDate, &rec.GraduationDate, &rec.LastAttendanceDate,
		&rec.Remarks, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.User.ID, &rec.User.Username, &rec.User.Email, &rec.User.FirstName,
		&rec.User.LastName, &rec.User.Role, &rec.User.IsActive,
		&rec.User.LastLoginAt, &rec.User.CreatedAt, &rec.User.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error scanning student record: %w", err)
	}
	return rec, nil
}

const insertStudentSQL = `
	INSERT INTO student_records (
		user_id, student_id, date_of_birth, gender, phone,
		address, academic_info, guardian_info, emergency_contact, documents,
		academic_performance, financial_info, hostel_info, placement_info,
		status, enrollment_date, remarks)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	RETURNING id, created_at, updated_at`

func insertStudentArgs(rec *models.StudentRecord) []interface{} {
	return []interface{}{
		rec.UserID, rec.StudentID, rec.DateOfBirth, rec.Gender, rec.Phone,
		rec.Address, rec.AcademicInfo, rec.GuardianInfo, rec.EmergencyContact, rec.Documents,
		rec.AcademicPerformance, rec.FinancialInfo, rec.HostelInfo, rec.PlacementInfo,
		rec.Status, rec.EnrollmentDate, rec.Remarks,
	}
}

func mapStudentInsertError(err error) error {
	if dberrors.IsDuplicateConstraintError(err, "student_records_student_id_key") {
		return apperrors.ErrStudentIDAlreadyExists
	}
	if dberrors.IsDuplicateConstraintError(err, "student_records_user_id_key") {
		return apperrors.NewConflictError("student record already exists for this user")
	}
	return fmt.Errorf("error creating student record: %w", err)
}

// Create inserts a new student record and sets its generated ID
func (r *StudentRepository) Create(ctx context.Context, record *models.StudentRecord) error {
	err := r.db.QueryRow(ctx, insertStudentSQL, insertStudentArgs(record)...).
		Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return mapStudentInsertError(err)
	}
	return nil
}

// CreateWithUser creates a user and its student record as one logical unit.
// If the record insert fails the user insert is rolled back with it.
func (r *StudentRepository) CreateWithUser(ctx context.Context, user *models.User, record *models.StudentRecord) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO users (username, email, password, first_name, last_name, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`,
		user.Username, user.Email, user.Password, user.FirstName, user.LastName,
		user.Role, user.IsActive).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_username_key") {
			return apperrors.ErrUsernameTaken
		}
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	record.UserID = user.ID
	err = tx.QueryRow(ctx, insertStudentSQL, insertStudentArgs(record)...).
		Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return mapStudentInsertError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	record.User = user
	return nil
}

// GetByID retrieves a student record (with its owning user) by record ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.StudentRecord, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+studentColumns+`
		FROM student_records s
		JOIN users u ON u.id = s.user_id
		WHERE s.id = $1`, id)
	return scanStudent(row)
}

// GetByUserID retrieves a student record by its owning user ID
func (r *StudentRepository) GetByUserID(ctx context.Context, userID int64) (*models.StudentRecord, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+studentColumns+`
		FROM student_records s
		JOIN users u ON u.id = s.user_id
		WHERE s.user_id = $1`, userID)
	return scanStudent(row)
}

// StudentIDExists checks if a student ID is already in use
func (r *StudentRepository) StudentIDExists(ctx context.Context, studentID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM student_records WHERE student_id = $1)`,
		studentID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking student ID: %w", err)
	}

	return exists, nil
}

// Update writes all mutable columns of a student record
func (r *StudentRepository) Update(ctx context.Context, record *models.StudentRecord) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE student_records
		SET date_of_birth = $1, gender = $2, phone = $3,
			address = $4, academic_info = $5, guardian_info = $6,
			emergency_contact = $7, documents = $8, academic_performance = $9,
			financial_info = $10, hostel_info = $11, placement_info = $12,
			status = $13, graduation_date = $14, last_attendance_date = $15,
			remarks = $16, updated_at = $17
		WHERE id = $18`,
		record.DateOfBirth, record.Gender, record.Phone,
		record.Address, record.AcademicInfo, record.GuardianInfo,
		record.EmergencyContact, record.Documents, record.AcademicPerformance,
		record.FinancialInfo, record.HostelInfo, record.PlacementInfo,
		record.Status, record.GraduationDate, record.LastAttendanceDate,
		record.Remarks, time.Now(), record.ID)

	if err != nil {
		return fmt.Errorf("error updating student record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete removes a student record without touching its owning user
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM student_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// buildStudentFilter assembles the WHERE clause for list/count queries
func buildStudentFilter(filter dto.StudentFilter) (string, []interface{}) {
	clauses := make([]string, 0, 4)
	args := make([]interface{}, 0, 4)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern)
		n := len(args)
		clauses = append(clauses, fmt.Sprintf(
			`(s.student_id ILIKE $%d OR u.first_name ILIKE $%d OR u.last_name ILIKE $%d OR u.email ILIKE $%d)`,
			n, n, n, n))
	}
	if filter.Department != "" {
		args = append(args, "%"+filter.Department+"%")
		clauses = append(clauses, fmt.Sprintf(`s.academic_info->>'department' ILIKE $%d`, len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		clauses = append(clauses, fmt.Sprintf(`s.status = $%d`, len(args)))
	}
	if filter.Year > 0 {
		args = append(args, filter.Year)
		clauses = append(clauses, fmt.Sprintf(`(s.academic_info->>'year')::int = $%d`, len(args)))
	}

	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// List returns a page of student records ordered by creation time descending
func (r *StudentRepository) List(ctx context.Context, filter dto.StudentFilter, offset uint64, limit int) ([]*models.StudentRecord, error) {
	where, args := buildStudentFilter(filter)
	args = append(args, offset, limit)

	query := `
		SELECT ` + studentColumns + `
		FROM student_records s
		JOIN users u ON u.id = s.user_id` + where + fmt.Sprintf(`
		ORDER BY s.created_at DESC
		OFFSET $%d LIMIT $%d`, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing student records: %w", err)
	}
	defer rows.Close()

	records := make([]*models.StudentRecord, 0)
	for rows.Next() {
		rec, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// Count returns the number of student records matching the filter
func (r *StudentRepository) Count(ctx context.Context, filter dto.StudentFilter) (int64, error) {
	where, args := buildStudentFilter(filter)

	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM student_records s
		JOIN users u ON u.id = s.user_id`+where, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting student records: %w", err)
	}

	return count, nil
}

// CountByStatus returns student counts grouped by lifecycle status
func (r *StudentRepository) CountByStatus(ctx context.Context) (map[models.StudentStatus]int64, error) {
	rows, err := r.db.Query(ctx, `
		SELECT status, COUNT(*)
		FROM student_records
		GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("error counting students by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.StudentStatus]int64)
	for rows.Next() {
		var status models.StudentStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("error scanning status count: %w", err)
		}
		counts[status] = count
	}

	return counts, rows.Err()
}
