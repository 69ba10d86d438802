// -----------------------------------------------------------------------
// PDF Exporter - One-page run summary for sharing outside spreadsheets
// -----------------------------------------------------------------------

package report

import (
	"fmt"
	"strconv"

	"github.com/go-pdf/fpdf"
	"github.com/ternarybob/arbor"

	"github.com/udara780/IT23265660/internal/common"
	"github.com/udara780/IT23265660/internal/models"
)

// PDFExporter writes a compact run summary. The core PDF fonts cannot
// render Sinhala script, so the PDF carries only ASCII-safe fields (ids,
// categories, statuses); the xlsx report remains the full-fidelity output.
type PDFExporter struct {
	logger arbor.ILogger
}

// NewPDFExporter creates a new PDFExporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{
		logger: common.GetLogger(),
	}
}

// Export writes the summary PDF to path, overwriting any prior file.
func (e *PDFExporter) Export(path string, rows []models.ReportRow, summary models.RunSummary) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Transliteration Test Run Summary", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	metrics := [][2]string{
		{"Total Cases", strconv.Itoa(summary.Total)},
		{"Passed", strconv.Itoa(summary.Passed)},
		{"Failed", strconv.Itoa(summary.Failed)},
		{"Not Run", strconv.Itoa(summary.NotRun)},
		{"Pass Rate", summary.PassRate},
		{"Generated At", summary.GeneratedAt},
	}
	for _, m := range metrics {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(40, 7, m[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 7, m[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(30, 7, "TC ID", "1", 0, "L", true, 0, "")
	pdf.CellFormat(100, 7, "Category", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 7, "Status", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, row := range rows {
		pdf.CellFormat(30, 7, row.ID, "1", 0, "L", false, 0, "")
		pdf.CellFormat(100, 7, row.Category, "1", 0, "L", false, 0, "")

		switch row.Status {
		case models.StatusPass:
			pdf.SetTextColor(27, 122, 27)
		case models.StatusFail:
			pdf.SetTextColor(211, 47, 47)
		default:
			pdf.SetTextColor(117, 117, 117)
		}
		pdf.CellFormat(30, 7, row.Status, "1", 1, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		e.logger.Error().Err(err).Str("path", path).Msg("Failed to write summary PDF")
		return fmt.Errorf("failed to write summary PDF %s: %w", path, err)
	}

	e.logger.Info().Str("path", path).Int("cases", len(rows)).Msg("Summary PDF written")
	return nil
}
