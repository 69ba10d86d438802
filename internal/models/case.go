package models

import "strings"

// TestCase is a single transliteration test case loaded from the
// spreadsheet fixture. All fields are plain text taken verbatim from the
// sheet; cases are built once per load and never written back.
type TestCase struct {
	ID              string `json:"id"`                // "TC ID" column, unique across the loaded set
	Name            string `json:"name"`              // "Test case name" column
	InputLengthType string `json:"input_length_type"` // "Input length type" column (short/medium/long)
	Input           string `json:"input"`             // "Input" column, Singlish text typed into the widget
	ExpectedOutput  string `json:"expected_output"`   // "Expected output" column, Sinhala text
	ActualOutput    string `json:"actual_output"`     // "Actual output" column (informational, from manual runs)
	Status          string `json:"status"`            // "Status" column (informational)
	Justification   string `json:"justification"`     // "Accuracy justification" column
	CoverageNote    string `json:"coverage_note"`     // "What is covered" column
}

// Valid reports whether the case carries the minimum data needed to drive
// a browser scenario: a non-blank ID and a non-blank input.
func (c TestCase) Valid() bool {
	return strings.TrimSpace(c.ID) != "" && strings.TrimSpace(c.Input) != ""
}

// Description returns the human description used in synthesized scenario
// titles, falling back to the input text when the name is empty.
func (c TestCase) Description() string {
	if strings.TrimSpace(c.Name) != "" {
		return c.Name
	}
	return c.Input
}

// CanonicalCase is one record of the canonical case list consumed by the
// report pipeline. It is a distinct structure from TestCase: the canonical
// list is the reviewed source of truth for reporting, while the spreadsheet
// fixture drives the browser run.
type CanonicalCase struct {
	ID              string `toml:"id" json:"id" validate:"required"`
	Category        string `toml:"category" json:"category"` // defaults to "General" when empty
	Singlish        string `toml:"singlish" json:"singlish" validate:"required"`
	ExpectedSinhala string `toml:"expected_sinhala" json:"expected_sinhala" validate:"required"`
	Description     string `toml:"description" json:"description"`
}

// DefaultCategory is applied to canonical cases that do not declare one.
const DefaultCategory = "General"

// Description used in synthesized titles; falls back to the Singlish input
// so the title stays non-degenerate for undocumented cases.
func (c CanonicalCase) TitleDescription() string {
	if strings.TrimSpace(c.Description) != "" {
		return c.Description
	}
	return c.Singlish
}
