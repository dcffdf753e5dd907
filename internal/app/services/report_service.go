package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/report"
)

// Default fee figures applied when a record carries no explicit amount
const (
	DefaultTotalFees  = 40000.0
	DefaultHostelFees = 15000.0
)

// GeneratedDocument is a rendered report ready to be served as a download
type GeneratedDocument struct {
	Data        []byte
	Filename    string
	ContentType string
}

// FeeSummary is the computed fee breakdown for a student
type FeeSummary struct {
	TotalFees         float64
	HostelFees        float64
	ScholarshipAmount float64
	PaidFees          float64
	Balance           float64
}

// ComputeFees derives the authoritative fee breakdown for a record. Records
// without an explicit total fall back to the default figure; hostel fees only
// count for hostelites.
func ComputeFees(rec *models.StudentRecord) FeeSummary {
	total := rec.FinancialInfo.TotalFees
	if total == 0 {
		total = DefaultTotalFees
	}

	hostel := 0.0
	if rec.HostelInfo.IsHostelite {
		hostel = rec.HostelInfo.HostelFees
		if hostel == 0 {
			hostel = DefaultHostelFees
		}
	}

	grandTotal := total + hostel

	return FeeSummary{
		TotalFees:         grandTotal,
		HostelFees:        hostel,
		ScholarshipAmount: rec.FinancialInfo.ScholarshipAmount,
		PaidFees:          rec.FinancialInfo.PaidFees,
		Balance:           grandTotal - rec.FinancialInfo.ScholarshipAmount - rec.FinancialInfo.PaidFees,
	}
}

// ReportService renders per-student PDF documents for the admin surface
type ReportService struct {
	studentRepo repositories.IStudentRepository
	logger      zerolog.Logger
}

// NewReportService creates a new ReportService
func NewReportService(studentRepo repositories.IStudentRepository, logger zerolog.Logger) *ReportService {
	return &ReportService{
		studentRepo: studentRepo,
		logger:      logger,
	}
}

func documentFilename(kind, studentID string) string {
	return fmt.Sprintf("%s-%s.%s", kind, studentID, report.FileExt)
}

// HallTicket renders the examination hall ticket for a student
func (s *ReportService) HallTicket(ctx context.Context, id int64) (*GeneratedDocument, error) {
	rec, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	doc := BuildHallTicket(rec)
	return s.render(doc, "hall-ticket", rec.StudentID)
}

// Result renders the semester result sheet for a student
func (s *ReportService) Result(ctx context.Context, id int64) (*GeneratedDocument, error) {
	rec, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	doc := BuildResult(rec)
	return s.render(doc, "result", rec.StudentID)
}

// FeeStructure renders the fee structure statement for a student
func (s *ReportService) FeeStructure(ctx context.Context, id int64) (*GeneratedDocument, error) {
	rec, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	doc := BuildFeeStructure(rec)
	return s.render(doc, "fee-structure", rec.StudentID)
}

func (s *ReportService) render(doc *report.Document, kind, studentID string) (*GeneratedDocument, error) {
	data, err := report.Render(doc)
	if err != nil {
		s.logger.Error().Err(err).Str("kind", kind).Str("studentId", studentID).Msg("Failed to render document")
		return nil, apperrors.NewCustomError(apperrors.ErrInternal, "failed to render document")
	}

	s.logger.Info().Str("kind", kind).Str("studentId", studentID).Msg("Document generated")

	return &GeneratedDocument{
		Data:        data,
		Filename:    documentFilename(kind, studentID),
		ContentType: report.MIMEType,
	}, nil
}

func studentName(rec *models.StudentRecord) string {
	if rec.User != nil {
		return rec.User.FullName()
	}
	return report.Placeholder
}

// BuildHallTicket assembles the hall ticket layout for a record
func BuildHallTicket(rec *models.StudentRecord) *report.Document {
	info := rec.AcademicInfo

	return &report.Document{
		Title:    report.OrNA(info.CollegeName),
		Subtitle: "Examination Hall Ticket",
		Sections: []report.Section{
			{
				Heading: "Candidate Details",
				Rows: []report.Row{
					{Label: "Name", Value: studentName(rec)},
					{Label: "Student ID", Value: report.OrNA(rec.StudentID)},
					{Label: "Date of Birth", Value: report.DateOrNA(rec.DateOfBirth)},
					{Label: "Department", Value: report.OrNA(info.Department)},
					{Label: "Course", Value: report.OrNA(info.Course)},
					{Label: "Year / Semester", Value: fmt.Sprintf("%d / %d", info.Year, info.Semester)},
				},
			},
			{
				Heading: "Examination",
				Rows: []report.Row{
					{Label: "Semester", Value: strconv.Itoa(info.Semester)},
					{Label: "Status", Value: strings.ToUpper(string(rec.Status))},
					{Label: "Issued On", Value: time.Now().Format("02 Jan 2006")},
				},
			},
		},
		Footer: []string{
			"Carry this hall ticket and a valid photo ID to every examination.",
			"Report to the examination hall at least 30 minutes before the scheduled time.",
			"This is a computer generated document and does not require a signature.",
		},
	}
}

// BuildResult assembles the semester result layout for a record
func BuildResult(rec *models.StudentRecord) *report.Document {
	info := rec.AcademicInfo
	perf := rec.AcademicPerformance

	return &report.Document{
		Title:    report.OrNA(info.CollegeName),
		Subtitle: "Semester Result",
		Sections: []report.Section{
			{
				Heading: "Student Details",
				Rows: []report.Row{
					{Label: "Name", Value: studentName(rec)},
					{Label: "Student ID", Value: report.OrNA(rec.StudentID)},
					{Label: "Department", Value: report.OrNA(info.Department)},
					{Label: "Course", Value: report.OrNA(info.Course)},
					{Label: "Year / Semester", Value: fmt.Sprintf("%d / %d", info.Year, info.Semester)},
				},
			},
			{
				Heading: "Performance",
				Table: &report.Table{
					Headers: []string{"Metric", "Value"},
					Rows: [][]string{
						{"CGPA", fmt.Sprintf("%.2f", info.CGPA)},
						{"Current Semester GPA", fmt.Sprintf("%.2f", perf.CurrentSemesterGPA)},
						{"Previous Semester GPA", fmt.Sprintf("%.2f", perf.PreviousSemesterGPA)},
						{"Credits Earned", fmt.Sprintf("%d / %d", info.EarnedCredits, info.TotalCredits)},
						{"Attendance", fmt.Sprintf("%.1f%%", info.AttendancePercentage)},
						{"Backlogs (cleared / total)", fmt.Sprintf("%d / %d", perf.ClearedBacklogs, perf.TotalBacklogs)},
					},
				},
			},
		},
		Footer: []string{
			"Figures are provisional until confirmed by the controller of examinations.",
			"This is a computer generated document and does not require a signature.",
		},
	}
}

// BuildFeeStructure assembles the fee structure statement layout for a record
func BuildFeeStructure(rec *models.StudentRecord) *report.Document {
	info := rec.AcademicInfo
	fees := ComputeFees(rec)

	feeRows := [][]string{
		{"Tuition Fees", report.Amount(fees.TotalFees - fees.HostelFees)},
	}
	if rec.HostelInfo.IsHostelite {
		feeRows = append(feeRows, []string{"Hostel Fees", report.Amount(fees.HostelFees)})
	}
	feeRows = append(feeRows,
		[]string{"Total Fees", report.Amount(fees.TotalFees)},
		[]string{"Scholarship", report.Amount(fees.ScholarshipAmount)},
		[]string{"Paid", report.Amount(fees.PaidFees)},
		[]string{"Balance Due", report.Amount(fees.Balance)},
	)

	return &report.Document{
		Title:    report.OrNA(info.CollegeName),
		Subtitle: "Fee Structure Statement",
		Sections: []report.Section{
			{
				Heading: "Student Details",
				Rows: []report.Row{
					{Label: "Name", Value: studentName(rec)},
					{Label: "Student ID", Value: report.OrNA(rec.StudentID)},
					{Label: "Department", Value: report.OrNA(info.Department)},
					{Label: "Fee Category", Value: strings.ToUpper(string(rec.FinancialInfo.FeeStructure))},
					{Label: "Last Payment", Value: report.DateOrNA(rec.FinancialInfo.LastPaymentDate)},
				},
			},
			{
				Heading: "Fee Breakdown",
				Table: &report.Table{
					Headers: []string{"Item", "Amount"},
					Rows:    feeRows,
				},
			},
		},
		Footer: []string{
			"Pay the balance due before the end of the current semester to avoid late fees.",
			"This is a computer generated document and does not require a signature.",
		},
	}
}
