// -----------------------------------------------------------------------
// Report Builder - Joins canonical cases against the run ledger
// -----------------------------------------------------------------------

package report

import (
	"fmt"
	"time"

	"github.com/udara780/IT23265660/internal/ledger"
	"github.com/udara780/IT23265660/internal/models"
)

// Build derives one report row per canonical case by recomputing the
// synthesized title and resolving it against the ledger, then aggregates
// the run summary. Cases absent from the ledger report Not Run.
func Build(cases []models.CanonicalCase, l *ledger.RunLedger) ([]models.ReportRow, models.RunSummary) {
	rows := make([]models.ReportRow, 0, len(cases))
	summary := models.RunSummary{
		Total:       len(cases),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}

	for _, c := range cases {
		title := ledger.SynthesizeTitle(c.ID, c.TitleDescription(), c.ExpectedSinhala)
		status := l.Outcome(title)

		switch status {
		case models.StatusPass:
			summary.Passed++
		case models.StatusFail:
			summary.Failed++
		default:
			summary.NotRun++
		}

		rows = append(rows, models.ReportRow{
			ID:              c.ID,
			Category:        c.Category,
			Singlish:        c.Singlish,
			ExpectedSinhala: c.ExpectedSinhala,
			Description:     c.Description,
			Status:          status,
		})
	}

	summary.PassRate = passRate(summary.Passed, summary.Total)
	return rows, summary
}

// passRate formats passed/total as a percentage with one decimal place.
func passRate(passed, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(passed)/float64(total)*100)
}
