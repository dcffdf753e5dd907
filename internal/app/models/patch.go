package models

import "time"

// Patch types implement the shallow-merge update contract: fields present in
// the request override the stored value, absent fields are retained. Each
// Apply merges a patch into the stored nested block in place.

// AddressPatch is a partial update of Address
type AddressPatch struct {
	Street  *string `json:"street,omitempty"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
	ZipCode *string `json:"zipCode,omitempty"`
	Country *string `json:"country,omitempty"`
}

// Apply merges the patch into the address
func (a *Address) Apply(p *AddressPatch) {
	if p == nil {
		return
	}
	if p.Street != nil {
		a.Street = *p.Street
	}
	if p.City != nil {
		a.City = *p.City
	}
	if p.State != nil {
		a.State = *p.State
	}
	if p.ZipCode != nil {
		a.ZipCode = *p.ZipCode
	}
	if p.Country != nil {
		a.Country = *p.Country
	}
}

// AcademicInfoPatch is a partial update of AcademicInfo
type AcademicInfoPatch struct {
	CollegeName          *string  `json:"collegeName,omitempty"`
	Department           *string  `json:"department,omitempty"`
	Course               *string  `json:"course,omitempty"`
	Specialization       *string  `json:"specialization,omitempty"`
	Year                 *int     `json:"year,omitempty"`
	Semester             *int     `json:"semester,omitempty"`
	CGPA                 *float64 `json:"cgpa,omitempty"`
	TotalCredits         *int     `json:"totalCredits,omitempty"`
	EarnedCredits        *int     `json:"earnedCredits,omitempty"`
	AttendancePercentage *float64 `json:"attendancePercentage,omitempty"`
}

// Apply merges the patch into the academic info
func (a *AcademicInfo) Apply(p *AcademicInfoPatch) {
	if p == nil {
		return
	}
	if p.CollegeName != nil {
		a.CollegeName = *p.CollegeName
	}
	if p.Department != nil {
		a.Department = *p.Department
	}
	if p.Course != nil {
		a.Course = *p.Course
	}
	if p.Specialization != nil {
		a.Specialization = *p.Specialization
	}
	if p.Year != nil {
		a.Year = *p.Year
	}
	if p.Semester != nil {
		a.Semester = *p.Semester
	}
	if p.CGPA != nil {
		a.CGPA = *p.CGPA
	}
	if p.TotalCredits != nil {
		a.TotalCredits = *p.TotalCredits
	}
	if p.EarnedCredits != nil {
		a.EarnedCredits = *p.EarnedCredits
	}
	if p.AttendancePercentage != nil {
		a.AttendancePercentage = *p.AttendancePercentage
	}
}

// GuardianInfoPatch is a partial update of GuardianInfo
type GuardianInfoPatch struct {
	Name         *string `json:"name,omitempty"`
	Relationship *string `json:"relationship,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Email        *string `json:"email,omitempty"`
}

// Apply merges the patch into the guardian info
func (g *GuardianInfo) Apply(p *GuardianInfoPatch) {
	if p == nil {
		return
	}
	if p.Name != nil {
		g.Name = *p.Name
	}
	if p.Relationship != nil {
		g.Relationship = *p.Relationship
	}
	if p.Phone != nil {
		g.Phone = *p.Phone
	}
	if p.Email != nil {
		g.Email = *p.Email
	}
}

// EmergencyContactPatch is a partial update of EmergencyContact
type EmergencyContactPatch struct {
	Name         *string `json:"name,omitempty"`
	Relationship *string `json:"relationship,omitempty"`
	Phone        *string `json:"phone,omitempty"`
}

// Apply merges the patch into the emergency contact
func (e *EmergencyContact) Apply(p *EmergencyContactPatch) {
	if p == nil {
		return
	}
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Relationship != nil {
		e.Relationship = *p.Relationship
	}
	if p.Phone != nil {
		e.Phone = *p.Phone
	}
}

// DocumentsPatch is a partial update of Documents
type DocumentsPatch struct {
	Photo               *string `json:"photo,omitempty"`
	IDProof             *string `json:"idProof,omitempty"`
	Marksheet           *string `json:"marksheet,omitempty"`
	TransferCertificate *string `json:"transferCertificate,omitempty"`
}

// Apply merges the patch into the documents block
func (d *Documents) Apply(p *DocumentsPatch) {
	if p == nil {
		return
	}
	if p.Photo != nil {
		d.Photo = p.Photo
	}
	if p.IDProof != nil {
		d.IDProof = p.IDProof
	}
	if p.Marksheet != nil {
		d.Marksheet = p.Marksheet
	}
	if p.TransferCertificate != nil {
		d.TransferCertificate = p.TransferCertificate
	}
}

// AcademicPerformancePatch is a partial update of AcademicPerformance
type AcademicPerformancePatch struct {
	CurrentSemesterGPA  *float64 `json:"currentSemesterGPA,omitempty"`
	PreviousSemesterGPA *float64 `json:"previousSemesterGPA,omitempty"`
	TotalBacklogs       *int     `json:"totalBacklogs,omitempty"`
	ClearedBacklogs     *int     `json:"clearedBacklogs,omitempty"`
}

// Apply merges the patch into the academic performance block
func (a *AcademicPerformance) Apply(p *AcademicPerformancePatch) {
	if p == nil {
		return
	}
	if p.CurrentSemesterGPA != nil {
		a.CurrentSemesterGPA = *p.CurrentSemesterGPA
	}
	if p.PreviousSemesterGPA != nil {
		a.PreviousSemesterGPA = *p.PreviousSemesterGPA
	}
	if p.TotalBacklogs != nil {
		a.TotalBacklogs = *p.TotalBacklogs
	}
	if p.ClearedBacklogs != nil {
		a.ClearedBacklogs = *p.ClearedBacklogs
	}
}

// FinancialInfoPatch is a partial update of FinancialInfo
type FinancialInfoPatch struct {
	FeeStructure      *FeeStructure `json:"feeStructure,omitempty"`
	TotalFees         *float64      `json:"totalFees,omitempty"`
	PaidFees          *float64      `json:"paidFees,omitempty"`
	ScholarshipAmount *float64      `json:"scholarshipAmount,omitempty"`
	LastPaymentDate   *time.Time    `json:"lastPaymentDate,omitempty"`
}

// Apply merges the patch into the financial info
func (f *FinancialInfo) Apply(p *FinancialInfoPatch) {
	if p == nil {
		return
	}
	if p.FeeStructure != nil {
		f.FeeStructure = *p.FeeStructure
	}
	if p.TotalFees != nil {
		f.TotalFees = *p.TotalFees
	}
	if p.PaidFees != nil {
		f.PaidFees = *p.PaidFees
	}
	if p.ScholarshipAmount != nil {
		f.ScholarshipAmount = *p.ScholarshipAmount
	}
	if p.LastPaymentDate != nil {
		f.LastPaymentDate = p.LastPaymentDate
	}
}

// HostelInfoPatch is a partial update of HostelInfo
type HostelInfoPatch struct {
	HostelName  *string  `json:"hostelName,omitempty"`
	RoomNumber  *string  `json:"roomNumber,omitempty"`
	HostelFees  *float64 `json:"hostelFees,omitempty"`
	IsHostelite *bool    `json:"isHostelite,omitempty"`
}

// Apply merges the patch into the hostel info
func (h *HostelInfo) Apply(p *HostelInfoPatch) {
	if p == nil {
		return
	}
	if p.HostelName != nil {
		h.HostelName = *p.HostelName
	}
	if p.RoomNumber != nil {
		h.RoomNumber = *p.RoomNumber
	}
	if p.HostelFees != nil {
		h.HostelFees = *p.HostelFees
	}
	if p.IsHostelite != nil {
		h.IsHostelite = *p.IsHostelite
	}
}

// PlacementInfoPatch is a partial update of PlacementInfo
type PlacementInfoPatch struct {
	IsPlaced      *bool      `json:"isPlaced,omitempty"`
	CompanyName   *string    `json:"companyName,omitempty"`
	Package       *float64   `json:"package,omitempty"`
	PlacementDate *time.Time `json:"placementDate,omitempty"`
	JobRole       *string    `json:"jobRole,omitempty"`
}

// Apply merges the patch into the placement info
func (pl *PlacementInfo) Apply(p *PlacementInfoPatch) {
	if p == nil {
		return
	}
	if p.IsPlaced != nil {
		pl.IsPlaced = *p.IsPlaced
	}
	if p.CompanyName != nil {
		pl.CompanyName = *p.CompanyName
	}
	if p.Package != nil {
		pl.Package = *p.Package
	}
	if p.PlacementDate != nil {
		pl.PlacementDate = p.PlacementDate
	}
	if p.JobRole != nil {
		pl.JobRole = *p.JobRole
	}
}
