package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
	"github.com/zense17/classyncserver/internal/catalog"
	"github.com/zense17/classyncserver/internal/models"
)

// WriteReport writes an extraction report as an XLSX workbook: one sheet with
// the reconciled subject list and one with the quality summary.
func WriteReport(w io.Writer, report *models.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	const subjectsSheet = "Subjects"
	if err := f.SetSheetName("Sheet1", subjectsSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	headers := []any{"Code", "Name", "Lecture Units", "Lab Units", "Total Units", "Year Level", "Term"}
	if err := f.SetSheetRow(subjectsSheet, "A1", &headers); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}
	for i, subject := range report.Subjects {
		row := []any{
			subject.Code,
			subject.Name,
			subject.LectureUnits,
			subject.LabUnits,
			subject.TotalUnits,
			string(subject.YearLevel),
			string(subject.Term),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(subjectsSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write subject row %d: %w", i+1, err)
		}
	}

	const summarySheet = "Summary"
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	summary := [][]any{
		{"Program", report.Program},
		{"Quality Tier", string(report.QualityTier)},
		{"Success", report.Success},
		{"Subjects Recognized", len(report.Subjects)},
		{"Missing Codes", strings.Join(report.MissingCodes, ", ")},
	}
	for _, year := range catalog.YearLevels() {
		summary = append(summary, []any{string(year) + " Subjects", report.CountsByYear[year]})
	}
	for i, row := range summary {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write summary row %d: %w", i+1, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
