// -----------------------------------------------------------------------
// Spreadsheet Fixture Loader - Reads test cases from the xlsx fixture
// -----------------------------------------------------------------------

package fixture

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/udara780/IT23265660/internal/common"
	"github.com/udara780/IT23265660/internal/models"
)

// Fixture column headers. The loader matches data cells to these by header
// name, not by position, so column reordering in the sheet is harmless.
const (
	ColID            = "TC ID"
	ColName          = "Test case name"
	ColInputLength   = "Input length type"
	ColInput         = "Input"
	ColExpected      = "Expected output"
	ColActual        = "Actual output"
	ColStatus        = "Status"
	ColJustification = "Accuracy justification"
	ColCoverage      = "What is covered"
)

// FixtureColumns lists the nine fixture columns in sheet order.
var FixtureColumns = []string{
	ColID,
	ColName,
	ColInputLength,
	ColInput,
	ColExpected,
	ColActual,
	ColStatus,
	ColJustification,
	ColCoverage,
}

// RawRow is one data row keyed by header name. Cells absent from the sheet
// are absent from the map; no validation happens at this stage.
type RawRow map[string]string

// Loader reads the spreadsheet fixture.
type Loader struct {
	path  string
	sheet string
}

// NewLoader creates a loader for the given fixture path. An empty sheet
// name selects the workbook's first sheet.
func NewLoader(path, sheet string) *Loader {
	return &Loader{
		path:  path,
		sheet: sheet,
	}
}

// Load reads the fixture and returns one raw row per data row, in file
// order. The first row is treated as the header.
func (l *Loader) Load() ([]RawRow, error) {
	f, err := excelize.OpenFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixture %s: %w", l.path, err)
	}
	defer f.Close()

	sheet := l.sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q from %s: %w", sheet, l.path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("fixture %s has no header row", l.path)
	}

	header := rows[0]
	raw := make([]RawRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(RawRow, len(header))
		for i, name := range header {
			if name == "" {
				continue
			}
			if i < len(row) {
				record[name] = row[i]
			}
		}
		raw = append(raw, record)
	}

	return raw, nil
}

// LoadCases runs the full fixture pipeline: load raw rows, normalize them
// into case records, then filter out malformed and duplicate cases.
func LoadCases(path, sheet string) ([]models.TestCase, error) {
	log := common.GetLogger()

	raw, err := NewLoader(path, sheet).Load()
	if err != nil {
		return nil, err
	}

	cases := Filter(Normalize(raw))

	log.Info().
		Str("fixture", path).
		Int("rows", len(raw)).
		Int("cases", len(cases)).
		Msg("Loaded test cases from fixture")

	return cases, nil
}
