package fixture

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/udara780/IT23265660/internal/models"
)

func TestWriteTemplate(t *testing.T) {
	cases := []models.CanonicalCase{
		{ID: "TC01", Category: "Pronouns", Singlish: "mama", ExpectedSinhala: "මම", Description: "basic pronoun"},
		{ID: "TC02", Category: "Sentences", Singlish: "mama gedara yanawa", ExpectedSinhala: "මම ගෙදර යනවා"},
	}

	path := filepath.Join(t.TempDir(), "template.xlsx")
	if err := WriteTemplate(path, cases); err != nil {
		t.Fatalf("WriteTemplate() error = %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to open generated fixture: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != TemplateSheet {
		t.Errorf("sheets = %v, want only %q", sheets, TemplateSheet)
	}

	rows, err := f.GetRows(TemplateSheet)
	if err != nil {
		t.Fatalf("failed to read rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("generated fixture has %d rows, want header + 2 cases", len(rows))
	}

	for i, want := range FixtureColumns {
		if i >= len(rows[0]) || rows[0][i] != want {
			t.Fatalf("header = %v, want %v", rows[0], FixtureColumns)
		}
	}

	first := rows[1]
	if first[0] != "TC01" || first[3] != "mama" || first[4] != "මම" {
		t.Errorf("first data row = %v, want TC01/mama/මම in id/input/expected columns", first)
	}
	if first[1] != "basic pronoun" {
		t.Errorf("name column = %q, want the case description", first[1])
	}
	if first[2] != "Short" {
		t.Errorf("length type = %q, want Short for a one-word input", first[2])
	}
	if len(first) < 9 || first[8] != "Pronouns" {
		t.Errorf("coverage column = %v, want the category in column I", first)
	}

	second := rows[2]
	if second[1] != "mama gedara yanawa" {
		t.Errorf("name column = %q, want singlish fallback when description is empty", second[1])
	}
	if second[2] != "Medium" {
		t.Errorf("length type = %q, want Medium for a three-word input", second[2])
	}
}

func TestWriteTemplateRoundTrip(t *testing.T) {
	cases := []models.CanonicalCase{
		{ID: "TC01", Singlish: "mama", ExpectedSinhala: "මම"},
		{ID: "TC02", Singlish: "oyaa", ExpectedSinhala: "ඔයා"},
		{ID: "TC03", Singlish: "kohomada", ExpectedSinhala: "කොහොමද"},
	}

	path := filepath.Join(t.TempDir(), "roundtrip.xlsx")
	if err := WriteTemplate(path, cases); err != nil {
		t.Fatalf("WriteTemplate() error = %v", err)
	}

	loaded, err := LoadCases(path, "")
	if err != nil {
		t.Fatalf("LoadCases() error = %v", err)
	}

	if len(loaded) != len(cases) {
		t.Fatalf("round trip kept %d cases, want %d", len(loaded), len(cases))
	}
	for i, c := range cases {
		if loaded[i].ID != c.ID {
			t.Errorf("case %d id = %q, want %q", i, loaded[i].ID, c.ID)
		}
		if loaded[i].Input != c.Singlish {
			t.Errorf("case %d input = %q, want %q", i, loaded[i].Input, c.Singlish)
		}
		if loaded[i].ExpectedOutput != c.ExpectedSinhala {
			t.Errorf("case %d expected output = %q, want %q", i, loaded[i].ExpectedOutput, c.ExpectedSinhala)
		}
	}
}

func TestInputLengthType(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"mama", "Short"},
		{"", "Short"},
		{"mama gedara", "Medium"},
		{"mama gedara yanawa", "Medium"},
		{"mama gedara yanawa honda dawasak", "Long"},
	}

	for _, tt := range tests {
		if got := inputLengthType(tt.input); got != tt.want {
			t.Errorf("inputLengthType(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
