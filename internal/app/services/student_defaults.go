package services

import (
	"fmt"
	"time"

	"github.com/campushub/backend/internal/app/models"
)

// Placeholder values used when a registration payload omits student fields.
// Incomplete payloads are accepted by design; the record is filled with these
// documented defaults rather than rejected.
const (
	placeholderText  = "N/A"
	placeholderPhone = "0000000000"
)

// generateStudentID produces a student ID of the form STU<timestamp>
func generateStudentID(now time.Time) string {
	return fmt.Sprintf("STU%d", now.UnixMilli())
}

// newStudentRecordWithDefaults builds a student record pre-filled with the
// documented placeholder defaults. Caller-supplied patches are merged on top.
func newStudentRecordWithDefaults(now time.Time) *models.StudentRecord {
	return &models.StudentRecord{
		StudentID: generateStudentID(now),
		Gender:    models.GenderOther,
		Phone:     placeholderPhone,
		Address: models.Address{
			Street:  placeholderText,
			City:    placeholderText,
			State:   placeholderText,
			ZipCode: placeholderText,
			Country: placeholderText,
		},
		AcademicInfo: models.AcademicInfo{
			CollegeName: placeholderText,
			Department:  placeholderText,
			Course:      placeholderText,
			Year:        1,
			Semester:    1,
		},
		GuardianInfo: models.GuardianInfo{
			Name:         placeholderText,
			Relationship: placeholderText,
			Phone:        placeholderPhone,
		},
		EmergencyContact: models.EmergencyContact{
			Name:         placeholderText,
			Relationship: placeholderText,
			Phone:        placeholderPhone,
		},
		FinancialInfo: models.FinancialInfo{
			FeeStructure: models.FeeGeneral,
		},
		Status:         models.StatusActive,
		EnrollmentDate: now,
	}
}

// parseDateOfBirth parses an optional RFC 3339 date string
func parseDateOfBirth(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *value)
	if err != nil {
		// Plain dates are accepted too
		t, err = time.Parse("2006-01-02", *value)
		if err != nil {
			return nil, err
		}
	}
	return &t, nil
}
