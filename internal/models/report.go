package models

// Outcome values carried by report rows. NotRun marks canonical cases with
// no matching entry in the run ledger.
const (
	StatusPass   = "PASS"
	StatusFail   = "FAIL"
	StatusNotRun = "Not Run"
)

// ReportRow is one detail-sheet row of the generated report: a canonical
// case joined with its run outcome. Output-side only, never read back.
type ReportRow struct {
	ID              string `json:"id"`
	Category        string `json:"category"`
	Singlish        string `json:"singlish"`
	ExpectedSinhala string `json:"expected_sinhala"`
	Description     string `json:"description"`
	Status          string `json:"status"`
}

// RunSummary is the aggregate block written to the report's summary sheet.
type RunSummary struct {
	Total       int    `json:"total"`
	Passed      int    `json:"passed"`
	Failed      int    `json:"failed"`
	NotRun      int    `json:"not_run"`
	PassRate    string `json:"pass_rate"`    // percentage of total, one decimal, e.g. "33.3%"
	GeneratedAt string `json:"generated_at"` // RFC3339
}
