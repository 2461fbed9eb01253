package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"lexcase/models"
)

func TestExportCaseRegister(t *testing.T) {
	cases := []models.Case{
		{
			ID:              "1",
			ReferenceNumber: "LC-2024-001",
			FileNumber:      "F-001-2024",
			CaseNumber:      "C-24-001",
			Title:           "Loan Settlement Dispute",
			ClientNames:     []string{"Johnson & Associates", "ABC Corporation"},
			Category:        "Financial",
			Status:          models.CaseStatusActive,
			Priority:        models.CasePriorityHigh,
			AssignedLawyer:  "Sarah Johnson",
			CreatedDate:     "2024-01-15",
			LastUpdated:     "2024-12-15",
		},
		{
			ID:              "2",
			ReferenceNumber: "LC-2024-002",
			Title:           "Second Case",
			ClientNames:     []string{"Acme Inc"},
			Status:          models.CaseStatusPending,
			Priority:        models.CasePriorityLow,
		},
	}

	buf, err := ExportCaseRegister(cases)
	assert.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	assert.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Cases", "A1")
	assert.NoError(t, err)
	assert.Equal(t, "Reference", header)

	firstRef, err := f.GetCellValue("Cases", "A2")
	assert.NoError(t, err)
	assert.Equal(t, "LC-2024-001", firstRef)

	clients, err := f.GetCellValue("Cases", "E2")
	assert.NoError(t, err)
	assert.Equal(t, "Johnson & Associates, ABC Corporation", clients)

	rows, err := f.GetRows("Cases")
	assert.NoError(t, err)
	assert.Len(t, rows, 3) // header plus one row per case
}

func TestExportCaseRegisterEmpty(t *testing.T) {
	buf, err := ExportCaseRegister(nil)
	assert.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Cases")
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
}
