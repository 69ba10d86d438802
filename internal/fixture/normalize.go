package fixture

import (
	"github.com/udara780/IT23265660/internal/models"
)

// Normalize maps raw rows into case records, substituting the empty string
// for any missing cell. Exactly one record per row, same order, no
// filtering.
func Normalize(rows []RawRow) []models.TestCase {
	cases := make([]models.TestCase, 0, len(rows))
	for _, row := range rows {
		cases = append(cases, models.TestCase{
			ID:              row[ColID],
			Name:            row[ColName],
			InputLengthType: row[ColInputLength],
			Input:           row[ColInput],
			ExpectedOutput:  row[ColExpected],
			ActualOutput:    row[ColActual],
			Status:          row[ColStatus],
			Justification:   row[ColJustification],
			CoverageNote:    row[ColCoverage],
		})
	}
	return cases
}
