// -----------------------------------------------------------------------
// Excel Exporter - Two-sheet report workbook (case detail + summary)
// -----------------------------------------------------------------------

package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/udara780/IT23265660/internal/models"
)

const (
	DetailSheet  = "Test Cases"
	SummarySheet = "Summary"
)

// detailHeaders are the detail-sheet columns, one row per case.
var detailHeaders = []string{"TC ID", "Category", "Input (Singlish)", "Expected Output (Sinhala)", "Description", "Status"}

// ExcelExporter writes the report workbook.
type ExcelExporter struct {
	// Stateless
}

// NewExcelExporter creates a new ExcelExporter.
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// Export writes the two-sheet report to path, overwriting any prior file.
func (e *ExcelExporter) Export(path string, rows []models.ReportRow, summary models.RunSummary) error {
	f := excelize.NewFile()
	defer f.Close()

	styler, err := NewStyler(f)
	if err != nil {
		return fmt.Errorf("failed to register styles: %w", err)
	}

	if err := e.writeDetail(f, styler, rows); err != nil {
		return err
	}
	if err := e.writeSummary(f, styler, summary); err != nil {
		return err
	}

	// Remove default "Sheet1"
	if idx, err := f.GetSheetIndex("Sheet1"); err == nil && idx != -1 {
		f.DeleteSheet("Sheet1")
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save report %s: %w", path, err)
	}
	return nil
}

func (e *ExcelExporter) writeDetail(f *excelize.File, s *Styler, rows []models.ReportRow) error {
	if _, err := f.NewSheet(DetailSheet); err != nil {
		return err
	}

	for i, h := range detailHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(DetailSheet, cell, h)
		f.SetCellStyle(DetailSheet, cell, cell, s.HeaderStyle)
	}

	f.SetPanes(DetailSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	r := 2
	for _, row := range rows {
		f.SetCellValue(DetailSheet, fmt.Sprintf("A%d", r), row.ID)
		f.SetCellValue(DetailSheet, fmt.Sprintf("B%d", r), row.Category)
		f.SetCellValue(DetailSheet, fmt.Sprintf("C%d", r), row.Singlish)
		f.SetCellValue(DetailSheet, fmt.Sprintf("D%d", r), row.ExpectedSinhala)
		f.SetCellValue(DetailSheet, fmt.Sprintf("E%d", r), row.Description)
		f.SetCellValue(DetailSheet, fmt.Sprintf("F%d", r), row.Status)

		f.SetCellStyle(DetailSheet, fmt.Sprintf("A%d", r), fmt.Sprintf("E%d", r), s.DefaultStyle)
		f.SetCellStyle(DetailSheet, fmt.Sprintf("F%d", r), fmt.Sprintf("F%d", r), s.StatusStyle(row.Status))
		r++
	}

	// Widths are cosmetic hints only
	f.SetColWidth(DetailSheet, "B", "B", 16)
	f.SetColWidth(DetailSheet, "C", "D", 35)
	f.SetColWidth(DetailSheet, "E", "E", 40)
	f.SetColWidth(DetailSheet, "F", "F", 12)

	return nil
}

func (e *ExcelExporter) writeSummary(f *excelize.File, s *Styler, summary models.RunSummary) error {
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return err
	}

	headers := []string{"Metric", "Value"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(SummarySheet, cell, h)
		f.SetCellStyle(SummarySheet, cell, cell, s.HeaderStyle)
	}

	metrics := []struct {
		Key string
		Val interface{}
	}{
		{"Total Cases", summary.Total},
		{"Passed", summary.Passed},
		{"Failed", summary.Failed},
		{"Not Run", summary.NotRun},
		{"Pass Rate", summary.PassRate},
		{"Generated At", summary.GeneratedAt},
	}

	r := 2
	for _, m := range metrics {
		f.SetCellValue(SummarySheet, fmt.Sprintf("A%d", r), m.Key)
		f.SetCellValue(SummarySheet, fmt.Sprintf("B%d", r), m.Val)
		f.SetCellStyle(SummarySheet, fmt.Sprintf("A%d", r), fmt.Sprintf("B%d", r), s.DefaultStyle)
		r++
	}

	f.SetColWidth(SummarySheet, "A", "A", 16)
	f.SetColWidth(SummarySheet, "B", "B", 28)

	return nil
}
