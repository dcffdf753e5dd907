package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/backend/internal/app/models"
)

func TestComputeFeesDefaults(t *testing.T) {
	rec := &models.StudentRecord{
		FinancialInfo: models.FinancialInfo{
			ScholarshipAmount: 5000,
			PaidFees:          10000,
		},
	}

	fees := ComputeFees(rec)

	assert.Equal(t, 40000.0, fees.TotalFees)
	assert.Equal(t, 0.0, fees.HostelFees)
	assert.Equal(t, 25000.0, fees.Balance)
}

func TestComputeFeesHosteliteDefault(t *testing.T) {
	rec := &models.StudentRecord{
		HostelInfo: models.HostelInfo{IsHostelite: true},
	}

	fees := ComputeFees(rec)

	assert.Equal(t, 15000.0, fees.HostelFees)
	assert.Equal(t, 55000.0, fees.TotalFees)
	assert.Equal(t, 55000.0, fees.Balance)
}

func TestComputeFeesExplicitAmounts(t *testing.T) {
	rec := &models.StudentRecord{
		FinancialInfo: models.FinancialInfo{
			TotalFees:         60000,
			ScholarshipAmount: 10000,
			PaidFees:          20000,
		},
		HostelInfo: models.HostelInfo{IsHostelite: true, HostelFees: 12000},
	}

	fees := ComputeFees(rec)

	assert.Equal(t, 72000.0, fees.TotalFees)
	assert.Equal(t, 12000.0, fees.HostelFees)
	assert.Equal(t, 42000.0, fees.Balance)
}

// Hostel fees only count for hostelites, even when an amount is stored
func TestComputeFeesIgnoresHostelFeesForNonHostelites(t *testing.T) {
	rec := &models.StudentRecord{
		HostelInfo: models.HostelInfo{IsHostelite: false, HostelFees: 12000},
	}

	fees := ComputeFees(rec)
	assert.Equal(t, 40000.0, fees.TotalFees)
}

func TestBuildHallTicketPlaceholders(t *testing.T) {
	rec := &models.StudentRecord{StudentID: "CS2021001"}

	doc := BuildHallTicket(rec)

	assert.Equal(t, "N/A", doc.Title)
	require.NotEmpty(t, doc.Sections)
	rows := doc.Sections[0].Rows
	assert.Equal(t, "N/A", rows[0].Value) // name, no user loaded
	assert.Equal(t, "CS2021001", rows[1].Value)
	assert.Equal(t, "N/A", rows[2].Value) // date of birth absent
}

func TestBuildFeeStructureBalanceRow(t *testing.T) {
	rec := &models.StudentRecord{
		StudentID: "CS2021001",
		FinancialInfo: models.FinancialInfo{
			FeeStructure:      models.FeeGeneral,
			ScholarshipAmount: 5000,
			PaidFees:          10000,
		},
	}

	doc := BuildFeeStructure(rec)

	require.Len(t, doc.Sections, 2)
	table := doc.Sections[1].Table
	require.NotNil(t, table)

	last := table.Rows[len(table.Rows)-1]
	assert.Equal(t, "Balance Due", last[0])
	assert.Equal(t, "Rs. 25000.00", last[1])
}

func TestGeneratedDocuments(t *testing.T) {
	userRepo := newFakeUserRepo()
	studentRepo := newFakeStudentRepo(userRepo)
	svc := NewReportService(studentRepo, zerolog.Nop())
	ctx := context.Background()

	user := &models.User{
		Username: "samstudent", Email: "sam@college.edu",
		FirstName: "Sam", LastName: "Student",
		Role: models.RoleStudent, IsActive: true,
	}
	rec := newStudentRecordWithDefaults(time.Now())
	rec.StudentID = "CS2021001"
	require.NoError(t, studentRepo.CreateWithUser(ctx, user, rec))

	cases := []struct {
		name     string
		generate func(context.Context, int64) (*GeneratedDocument, error)
		filename string
	}{
		{"hall ticket", svc.HallTicket, "hall-ticket-CS2021001.pdf"},
		{"result", svc.Result, "result-CS2021001.pdf"},
		{"fee structure", svc.FeeStructure, "fee-structure-CS2021001.pdf"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := tc.generate(ctx, rec.ID)
			require.NoError(t, err)

			assert.Equal(t, tc.filename, doc.Filename)
			assert.Equal(t, "application/pdf", doc.ContentType)
			require.NotEmpty(t, doc.Data)
			assert.Equal(t, "%PDF", string(doc.Data[:4]))
		})
	}
}

func TestGenerateForUnknownStudent(t *testing.T) {
	userRepo := newFakeUserRepo()
	studentRepo := newFakeStudentRepo(userRepo)
	svc := NewReportService(studentRepo, zerolog.Nop())

	_, err := svc.HallTicket(context.Background(), 42)
	assert.Error(t, err)
}
