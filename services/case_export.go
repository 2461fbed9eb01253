package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"lexcase/models"
)

// ExportCaseRegister renders the full case list as a spreadsheet with a
// header row and one row per case, in storage order.
func ExportCaseRegister(cases []models.Case) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Cases"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{
		"Reference", "File Number", "Case Number", "Title", "Clients",
		"Category", "Subcategory", "Status", "Priority", "Assigned Lawyer",
		"Created", "Last Updated", "Next Hearing", "Court", "Judge",
	}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to build header cell: %w", err)
		}
		f.SetCellValue(sheet, cell, h)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheet, "A1", lastHeader, headerStyle)

	for i, c := range cases {
		values := []interface{}{
			c.ReferenceNumber, c.FileNumber, c.CaseNumber, c.Title,
			strings.Join(c.ClientNames, ", "),
			c.Category, c.Subcategory, c.Status, c.Priority, c.AssignedLawyer,
			c.CreatedDate, c.LastUpdated, c.NextHearingDate, c.CourtName,
			c.JudgeAssigned,
		}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("failed to build cell for case %s: %w", c.ID, err)
			}
			f.SetCellValue(sheet, cell, v)
		}
	}

	f.SetColWidth(sheet, "A", "O", 18)

	return f.WriteToBuffer()
}
