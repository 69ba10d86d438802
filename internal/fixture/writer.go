// -----------------------------------------------------------------------
// Fixture Template Writer - Bootstraps the xlsx fixture from canonical cases
// -----------------------------------------------------------------------

package fixture

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/udara780/IT23265660/internal/models"
)

// TemplateSheet is the sheet name used by generated fixtures.
const TemplateSheet = "Test Cases"

// WriteTemplate generates a starter fixture workbook from the canonical
// case list. Result columns (actual output, status, justification) are left
// blank for the tester to fill after a run. Overwrites any existing file.
func WriteTemplate(path string, cases []models.CanonicalCase) error {
	f := excelize.NewFile()
	defer f.Close()

	f.NewSheet(TemplateSheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#000000"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to register header style: %w", err)
	}

	for i, name := range FixtureColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(TemplateSheet, cell, name)
		f.SetCellStyle(TemplateSheet, cell, cell, headerStyle)
	}

	row := 2
	for _, c := range cases {
		f.SetCellValue(TemplateSheet, fmt.Sprintf("A%d", row), c.ID)
		f.SetCellValue(TemplateSheet, fmt.Sprintf("B%d", row), c.TitleDescription())
		f.SetCellValue(TemplateSheet, fmt.Sprintf("C%d", row), inputLengthType(c.Singlish))
		f.SetCellValue(TemplateSheet, fmt.Sprintf("D%d", row), c.Singlish)
		f.SetCellValue(TemplateSheet, fmt.Sprintf("E%d", row), c.ExpectedSinhala)
		f.SetCellValue(TemplateSheet, fmt.Sprintf("I%d", row), c.Category)
		row++
	}

	f.SetColWidth(TemplateSheet, "B", "B", 30)
	f.SetColWidth(TemplateSheet, "D", "E", 35)
	f.SetColWidth(TemplateSheet, "H", "I", 30)
	f.SetPanes(TemplateSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	// Remove default "Sheet1"
	if idx, err := f.GetSheetIndex("Sheet1"); err == nil && idx != -1 {
		f.DeleteSheet("Sheet1")
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save fixture %s: %w", path, err)
	}

	return nil
}

// inputLengthType classifies an input by word count: one word is "Short",
// up to three is "Medium", anything longer is "Long".
func inputLengthType(input string) string {
	switch words := len(strings.Fields(input)); {
	case words <= 1:
		return "Short"
	case words <= 3:
		return "Medium"
	default:
		return "Long"
	}
}
