package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAddressApplyMergesOnlyPresentFields(t *testing.T) {
	addr := Address{
		Street:  "12 College Road",
		City:    "Pune",
		State:   "Maharashtra",
		ZipCode: "411001",
		Country: "India",
	}

	city := "Mumbai"
	addr.Apply(&AddressPatch{City: &city})

	assert.Equal(t, "Mumbai", addr.City)
	assert.Equal(t, "12 College Road", addr.Street)
	assert.Equal(t, "Maharashtra", addr.State)
	assert.Equal(t, "411001", addr.ZipCode)
	assert.Equal(t, "India", addr.Country)
}

func TestApplyNilPatchIsNoop(t *testing.T) {
	addr := Address{City: "Pune"}
	addr.Apply(nil)
	assert.Equal(t, "Pune", addr.City)

	info := AcademicInfo{Department: "Computer Science"}
	info.Apply(nil)
	assert.Equal(t, "Computer Science", info.Department)
}

func TestAcademicInfoApplyZeroValuesOverride(t *testing.T) {
	info := AcademicInfo{CGPA: 8.4}

	// An explicitly supplied zero overrides the stored value
	zero := 0.0
	info.Apply(&AcademicInfoPatch{CGPA: &zero})
	assert.Equal(t, 0.0, info.CGPA)
}

func TestFinancialInfoApply(t *testing.T) {
	fin := FinancialInfo{
		FeeStructure: FeeGeneral,
		TotalFees:    40000,
		PaidFees:     10000,
	}

	paid := 25000.0
	when := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	fin.Apply(&FinancialInfoPatch{PaidFees: &paid, LastPaymentDate: &when})

	assert.Equal(t, 25000.0, fin.PaidFees)
	assert.Equal(t, 40000.0, fin.TotalFees)
	assert.Equal(t, FeeGeneral, fin.FeeStructure)
	assert.Equal(t, when, *fin.LastPaymentDate)
}

func TestDocumentsApplyKeepsExistingReferences(t *testing.T) {
	photo := "photo.jpg"
	docs := Documents{Photo: &photo}

	marksheet := "marksheet.pdf"
	docs.Apply(&DocumentsPatch{Marksheet: &marksheet})

	assert.Equal(t, "photo.jpg", *docs.Photo)
	assert.Equal(t, "marksheet.pdf", *docs.Marksheet)
	assert.Nil(t, docs.IDProof)
}

func TestHostelInfoApply(t *testing.T) {
	hostel := HostelInfo{IsHostelite: false}

	yes := true
	fees := 15000.0
	hostel.Apply(&HostelInfoPatch{IsHostelite: &yes, HostelFees: &fees})

	assert.True(t, hostel.IsHostelite)
	assert.Equal(t, 15000.0, hostel.HostelFees)
	assert.Empty(t, hostel.HostelName)
}

func TestStatusAndFeeStructureValidation(t *testing.T) {
	assert.True(t, StatusGraduated.IsValid())
	assert.False(t, StudentStatus("expelled").IsValid())

	assert.True(t, FeeOBC.IsValid())
	assert.False(t, FeeStructure("premium").IsValid())

	assert.True(t, IsValidGender(GenderOther))
	assert.False(t, IsValidGender("unknown"))

	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("superuser").IsValid())
}
