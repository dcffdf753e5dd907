package models

import (
	"time"
)

// StudentStatus is the lifecycle state of a student record
type StudentStatus string

// Supported student statuses
const (
	StatusActive      StudentStatus = "active"
	StatusInactive    StudentStatus = "inactive"
	StatusSuspended   StudentStatus = "suspended"
	StatusGraduated   StudentStatus = "graduated"
	StatusTransferred StudentStatus = "transferred"
	StatusDropped     StudentStatus = "dropped"
)

// IsValid reports whether the status is one of the supported values
func (s StudentStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusSuspended, StatusGraduated, StatusTransferred, StatusDropped:
		return true
	}
	return false
}

// Gender values accepted on student records
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// IsValidGender reports whether the value is an accepted gender
func IsValidGender(g string) bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

// FeeStructure is the fee category a student is admitted under
type FeeStructure string

// Supported fee structures
const (
	FeeGeneral FeeStructure = "general"
	FeeOBC     FeeStructure = "obc"
	FeeSC      FeeStructure = "sc"
	FeeST      FeeStructure = "st"
	FeeEWS     FeeStructure = "ews"
)

// IsValid reports whether the fee structure is one of the supported values
func (f FeeStructure) IsValid() bool {
	switch f {
	case FeeGeneral, FeeOBC, FeeSC, FeeST, FeeEWS:
		return true
	}
	return false
}

// Address is the postal address block stored on a student record
type Address struct {
	Street  string `json:"street" example:"12 College Road"`
	City    string `json:"city" example:"Pune"`
	State   string `json:"state" example:"Maharashtra"`
	ZipCode string `json:"zipCode" example:"411001"`
	Country string `json:"country" example:"India"`
}

// AcademicInfo carries enrollment and progress figures
type AcademicInfo struct {
	CollegeName          string  `json:"collegeName" example:"City Engineering College"`
	Department           string  `json:"department" example:"Computer Science"`
	Course               string  `json:"course" example:"B.Tech"`
	Specialization       string  `json:"specialization,omitempty" example:"Data Science"`
	Year                 int     `json:"year" example:"2"`
	Semester             int     `json:"semester" example:"4"`
	CGPA                 float64 `json:"cgpa" example:"8.4"`
	TotalCredits         int     `json:"totalCredits" example:"120"`
	EarnedCredits        int     `json:"earnedCredits" example:"64"`
	AttendancePercentage float64 `json:"attendancePercentage" example:"87.5"`
}

// GuardianInfo identifies the student's guardian
type GuardianInfo struct {
	Name         string `json:"name" example:"Jane Doe"`
	Relationship string `json:"relationship" example:"mother"`
	Phone        string `json:"phone" example:"+919812345678"`
	Email        string `json:"email,omitempty" example:"jane@example.com"`
}

// EmergencyContact is the person to notify in an emergency
type EmergencyContact struct {
	Name         string `json:"name" example:"Jane Doe"`
	Relationship string `json:"relationship" example:"mother"`
	Phone        string `json:"phone" example:"+919812345678"`
}

// Documents holds optional references to uploaded document files
type Documents struct {
	Photo               *string `json:"photo,omitempty"`
	IDProof             *string `json:"idProof,omitempty"`
	Marksheet           *string `json:"marksheet,omitempty"`
	TransferCertificate *string `json:"transferCertificate,omitempty"`
}

// AcademicPerformance carries per-semester outcomes
type AcademicPerformance struct {
	CurrentSemesterGPA  float64 `json:"currentSemesterGPA" example:"8.2"`
	PreviousSemesterGPA float64 `json:"previousSemesterGPA" example:"7.9"`
	TotalBacklogs       int     `json:"totalBacklogs" example:"1"`
	ClearedBacklogs     int     `json:"clearedBacklogs" example:"1"`
}

// FinancialInfo carries fee category and payment state
type FinancialInfo struct {
	FeeStructure      FeeStructure `json:"feeStructure" example:"general"`
	TotalFees         float64      `json:"totalFees" example:"40000"`
	PaidFees          float64      `json:"paidFees" example:"25000"`
	ScholarshipAmount float64      `json:"scholarshipAmount" example:"5000"`
	LastPaymentDate   *time.Time   `json:"lastPaymentDate,omitempty"`
}

// HostelInfo carries hostel residence details
type HostelInfo struct {
	HostelName  string  `json:"hostelName,omitempty" example:"A Block"`
	RoomNumber  string  `json:"roomNumber,omitempty" example:"214"`
	HostelFees  float64 `json:"hostelFees" example:"15000"`
	IsHostelite bool    `json:"isHostelite" example:"true"`
}

// PlacementInfo carries campus placement outcomes
type PlacementInfo struct {
	IsPlaced      bool       `json:"isPlaced" example:"false"`
	CompanyName   string     `json:"companyName,omitempty"`
	Package       float64    `json:"package,omitempty"`
	PlacementDate *time.Time `json:"placementDate,omitempty"`
	JobRole       string     `json:"jobRole,omitempty"`
}

// StudentRecord is the extended academic/personal profile of a student-role
// user, one-to-one with a User. Nested blocks are stored as JSONB columns.
type StudentRecord struct {
	ID                  int64               `json:"id" db:"id"`
	UserID              int64               `json:"userId" db:"user_id"`
	StudentID           string              `json:"studentId" db:"student_id" example:"STU1716118200000"`
	DateOfBirth         *time.Time          `json:"dateOfBirth,omitempty" db:"date_of_birth"`
	Gender              string              `json:"gender" db:"gender" example:"male"`
	Phone               string              `json:"phone" db:"phone" example:"+919812345678"`
	Address             Address             `json:"address" db:"address"`
	AcademicInfo        AcademicInfo        `json:"academicInfo" db:"academic_info"`
	GuardianInfo        GuardianInfo        `json:"guardianInfo" db:"guardian_info"`
	EmergencyContact    EmergencyContact    `json:"emergencyContact" db:"emergency_contact"`
	Documents           Documents           `json:"documents" db:"documents"`
	AcademicPerformance AcademicPerformance `json:"academicPerformance" db:"academic_performance"`
	FinancialInfo       FinancialInfo       `json:"financialInfo" db:"financial_info"`
	HostelInfo          HostelInfo          `json:"hostelInfo" db:"hostel_info"`
	PlacementInfo       PlacementInfo       `json:"placementInfo" db:"placement_info"`
	Status              StudentStatus       `json:"status" db:"status" example:"active"`
	EnrollmentDate      time.Time           `json:"enrollmentDate" db:"enrollment_date"`
	GraduationDate      *time.Time          `json:"graduationDate,omitempty" db:"graduation_date"`
	LastAttendanceDate  *time.Time          `json:"lastAttendanceDate,omitempty" db:"last_attendance_date"`
	Remarks             string              `json:"remarks,omitempty" db:"remarks"`
	CreatedAt           time.Time           `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time           `json:"updatedAt" db:"updated_at"`
	User                *User               `json:"user,omitempty"` // Relation, no db tag
}

// ContactMessage is an append-only record of a public contact submission
type ContactMessage struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Subject   string    `json:"subject" db:"subject"`
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
