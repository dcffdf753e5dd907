package dto

import (
	"time"

	"github.com/campushub/backend/internal/app/models"
)

// UpdateOwnProfileRequest is the restricted self-service update contract.
// Only phone, address and emergencyContact are read from the body; any other
// supplied field is ignored.
type UpdateOwnProfileRequest struct {
	Phone            *string                       `json:"phone,omitempty"`
	Address          *models.AddressPatch          `json:"address,omitempty"`
	EmergencyContact *models.EmergencyContactPatch `json:"emergencyContact,omitempty"`
}

// CreateStudentRequest is the admin full-field creation contract: a User of
// role student plus its StudentRecord, created as one logical unit.
type CreateStudentRequest struct {
	Username    string `json:"username" binding:"required,alphanum,min=3,max=30"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	StudentID   string `json:"studentId,omitempty"`
	DateOfBirth *string `json:"dateOfBirth,omitempty"` // RFC 3339 date
	Gender      string `json:"gender,omitempty"`
	Phone       string `json:"phone,omitempty"`

	Address             *models.AddressPatch             `json:"address,omitempty"`
	AcademicInfo        *models.AcademicInfoPatch        `json:"academicInfo,omitempty"`
	GuardianInfo        *models.GuardianInfoPatch        `json:"guardianInfo,omitempty"`
	EmergencyContact    *models.EmergencyContactPatch    `json:"emergencyContact,omitempty"`
	Documents           *models.DocumentsPatch           `json:"documents,omitempty"`
	AcademicPerformance *models.AcademicPerformancePatch `json:"academicPerformance,omitempty"`
	FinancialInfo       *models.FinancialInfoPatch       `json:"financialInfo,omitempty"`
	HostelInfo          *models.HostelInfoPatch          `json:"hostelInfo,omitempty"`
	PlacementInfo       *models.PlacementInfoPatch       `json:"placementInfo,omitempty"`
	Remarks             string                           `json:"remarks,omitempty"`
}

// UpdateStudentRequest is the admin full-field update contract. Nested blocks
// are shallow-merged onto the stored record, never replaced wholesale.
type UpdateStudentRequest struct {
	DateOfBirth        *string               `json:"dateOfBirth,omitempty"`
	Gender             *string               `json:"gender,omitempty"`
	Phone              *string               `json:"phone,omitempty"`
	Status             *models.StudentStatus `json:"status,omitempty"`
	LastAttendanceDate *time.Time            `json:"lastAttendanceDate,omitempty"`
	Remarks            *string               `json:"remarks,omitempty"`

	Address             *models.AddressPatch             `json:"address,omitempty"`
	AcademicInfo        *models.AcademicInfoPatch        `json:"academicInfo,omitempty"`
	GuardianInfo        *models.GuardianInfoPatch        `json:"guardianInfo,omitempty"`
	EmergencyContact    *models.EmergencyContactPatch    `json:"emergencyContact,omitempty"`
	Documents           *models.DocumentsPatch           `json:"documents,omitempty"`
	AcademicPerformance *models.AcademicPerformancePatch `json:"academicPerformance,omitempty"`
	FinancialInfo       *models.FinancialInfoPatch       `json:"financialInfo,omitempty"`
	HostelInfo          *models.HostelInfoPatch          `json:"hostelInfo,omitempty"`
	PlacementInfo       *models.PlacementInfoPatch       `json:"placementInfo,omitempty"`
}

// SetStatusRequest sets a student's lifecycle status
type SetStatusRequest struct {
	Status models.StudentStatus `json:"status" binding:"required"`
}

// StudentFilter is the admin list filter. Search is a case-insensitive
// substring match OR-combined over studentId, firstName, lastName and email.
type StudentFilter struct {
	Search     string
	Department string
	Status     models.StudentStatus
	Year       int
}

// StudentListResponse is a page of student records with pagination metadata
type StudentListResponse struct {
	Students   []*models.StudentRecord `json:"students"`
	Pagination PaginationInfo          `json:"pagination"`
}

// AcademicRecordResponse is the self-service academic projection
type AcademicRecordResponse struct {
	StudentID           string                     `json:"studentId"`
	AcademicInfo        models.AcademicInfo        `json:"academicInfo"`
	AcademicPerformance models.AcademicPerformance `json:"academicPerformance"`
	Status              models.StudentStatus       `json:"status"`
}

// PersonalInfoResponse is the self-service personal projection
type PersonalInfoResponse struct {
	StudentID        string                  `json:"studentId"`
	DateOfBirth      *time.Time              `json:"dateOfBirth,omitempty"`
	Gender           string                  `json:"gender"`
	Phone            string                  `json:"phone"`
	Address          models.Address          `json:"address"`
	GuardianInfo     models.GuardianInfo     `json:"guardianInfo"`
	EmergencyContact models.EmergencyContact `json:"emergencyContact"`
}

// StatusResponse is the self-service status projection
type StatusResponse struct {
	StudentID          string               `json:"studentId"`
	Status             models.StudentStatus `json:"status"`
	EnrollmentDate     time.Time            `json:"enrollmentDate"`
	GraduationDate     *time.Time           `json:"graduationDate,omitempty"`
	LastAttendanceDate *time.Time           `json:"lastAttendanceDate,omitempty"`
	Remarks            string               `json:"remarks,omitempty"`
}

// DashboardResponse aggregates admin dashboard figures
type DashboardResponse struct {
	TotalStudents    int64                          `json:"totalStudents"`
	TotalUsers       int64                          `json:"totalUsers"`
	TotalAdmins      int64                          `json:"totalAdmins"`
	StudentsByStatus map[models.StudentStatus]int64 `json:"studentsByStatus"`
	RecentStudents   []*models.StudentRecord        `json:"recentStudents"`
}
