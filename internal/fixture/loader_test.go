package fixture

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// writeWorkbook builds a throwaway xlsx with the given rows on the default
// sheet and returns its path.
func writeWorkbook(t *testing.T, rows [][]string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for r, row := range rows {
		for c, val := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			f.SetCellValue(sheet, cell, val)
		}
	}

	path := filepath.Join(t.TempDir(), "cases.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save test workbook: %v", err)
	}
	return path
}

func TestLoaderReadsRowsInOrder(t *testing.T) {
	path := writeWorkbook(t, [][]string{
		FixtureColumns,
		{"TC01", "Single word", "Short", "mama", "මම"},
		{"TC02", "Greeting", "Short", "ayubowan", "ආයුබෝවන්"},
		{"TC03", "Sentence", "Long", "mama gedara yanawa", "මම ගෙදර යනවා"},
	})

	raw, err := NewLoader(path, "").Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(raw) != 3 {
		t.Fatalf("Load() returned %d rows, want 3", len(raw))
	}

	wantIDs := []string{"TC01", "TC02", "TC03"}
	for i, want := range wantIDs {
		if got := raw[i][ColID]; got != want {
			t.Errorf("row %d id = %q, want %q", i, got, want)
		}
	}

	if got := raw[2][ColInput]; got != "mama gedara yanawa" {
		t.Errorf("row 2 input = %q, want the full sentence", got)
	}
	if got := raw[0][ColExpected]; got != "මම" {
		t.Errorf("row 0 expected output = %q, want Sinhala text intact", got)
	}
}

func TestLoaderMissingCellsStayAbsent(t *testing.T) {
	path := writeWorkbook(t, [][]string{
		FixtureColumns,
		{"TC01", "Short row only"},
	})

	raw, err := NewLoader(path, "").Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(raw) != 1 {
		t.Fatalf("Load() returned %d rows, want 1", len(raw))
	}

	if _, ok := raw[0][ColInput]; ok {
		t.Errorf("input cell should be absent for a short row, got %q", raw[0][ColInput])
	}
	if got := raw[0][ColName]; got != "Short row only" {
		t.Errorf("name = %q, want %q", got, "Short row only")
	}
}

func TestLoaderNamedSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.NewSheet("Cases")
	f.SetCellValue("Cases", "A1", ColID)
	f.SetCellValue("Cases", "B1", ColInput)
	f.SetCellValue("Cases", "A2", "TC09")
	f.SetCellValue("Cases", "B2", "oyaa")

	path := filepath.Join(t.TempDir(), "named.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save test workbook: %v", err)
	}

	raw, err := NewLoader(path, "Cases").Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(raw) != 1 || raw[0][ColID] != "TC09" {
		t.Errorf("Load() from named sheet = %v, want single TC09 row", raw)
	}
}

func TestLoaderHeaderOnly(t *testing.T) {
	path := writeWorkbook(t, [][]string{FixtureColumns})

	raw, err := NewLoader(path, "").Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(raw) != 0 {
		t.Errorf("Load() returned %d rows, want 0 for a header-only fixture", len(raw))
	}
}

func TestLoaderMissingFile(t *testing.T) {
	_, err := NewLoader("/nonexistent/cases.xlsx", "").Load()
	if err == nil {
		t.Error("Load() should fail for a missing fixture file")
	}
}

func TestLoadCasesPipeline(t *testing.T) {
	path := writeWorkbook(t, [][]string{
		FixtureColumns,
		{"TC01", "Valid", "Short", "mama", "මම"},
		{"", "No id", "Short", "oyaa", "ඔයා"},
		{"TC01", "Duplicate id", "Short", "api", "අපි"},
		{"TC02", "No input", "Short", "", "කොහොමද"},
		{"TC03", "Valid", "Medium", "kohomada sahodaraya", "කොහොමද සහෝදරයා"},
	})

	cases, err := LoadCases(path, "")
	if err != nil {
		t.Fatalf("LoadCases() error = %v", err)
	}

	if len(cases) != 2 {
		t.Fatalf("LoadCases() kept %d cases, want 2", len(cases))
	}
	if cases[0].ID != "TC01" || cases[0].Input != "mama" {
		t.Errorf("first case = %+v, want the original TC01", cases[0])
	}
	if cases[1].ID != "TC03" {
		t.Errorf("second case id = %q, want TC03", cases[1].ID)
	}
}
