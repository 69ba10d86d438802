// -----------------------------------------------------------------------
// Run Ledger - Machine-readable pass/fail record of a prior test run
// -----------------------------------------------------------------------

package ledger

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/udara780/IT23265660/internal/common"
	"github.com/udara780/IT23265660/internal/models"
)

// RunLedger is the outcome record one e2e run leaves behind for the
// reporter. Entries are grouped by scenario group and keyed by synthesized
// title.
type RunLedger struct {
	RunID       string    `json:"run_id"`
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
	TargetURL   string    `json:"target_url"`
	Groups      []Group   `json:"groups"`
}

// Group is a named set of scenario outcomes.
type Group struct {
	Name    string  `json:"name"`
	Entries []Entry `json:"entries"`
}

// Entry is a single scenario outcome.
type Entry struct {
	Title  string `json:"title"`
	Passed bool   `json:"passed"`
}

// SynthesizeTitle builds the ledger join key for a case. Both the scenario
// generator and the reporter must produce byte-identical titles or the
// join silently misses and every case reports Not Run.
func SynthesizeTitle(id, description, expectedOutput string) string {
	return fmt.Sprintf("%s: %s → %s", id, description, expectedOutput)
}

// Load reads a ledger file. Absence or malformed content is non-fatal: a
// note is logged and an empty ledger is returned, so every case joins as
// Not Run.
func Load(path string) *RunLedger {
	log := common.GetLogger()

	data, err := os.ReadFile(path)
	if err != nil {
		log.Info().Str("path", path).Msg("No run ledger found, all cases will report Not Run")
		return &RunLedger{}
	}

	var l RunLedger
	if err := json.Unmarshal(data, &l); err != nil {
		log.Info().Str("path", path).Err(err).Msg("Run ledger is malformed, continuing with an empty ledger")
		return &RunLedger{}
	}

	return &l
}

// Outcomes flattens the ledger into a title -> passed index.
func (l *RunLedger) Outcomes() map[string]bool {
	out := make(map[string]bool)
	for _, g := range l.Groups {
		for _, e := range g.Entries {
			out[e.Title] = e.Passed
		}
	}
	return out
}

// Outcome resolves a synthesized title to a report status. Titles absent
// from the ledger report Not Run.
func (l *RunLedger) Outcome(title string) string {
	for _, g := range l.Groups {
		for _, e := range g.Entries {
			if e.Title == title {
				if e.Passed {
					return models.StatusPass
				}
				return models.StatusFail
			}
		}
	}
	return models.StatusNotRun
}

// EntryCount returns the total number of recorded outcomes.
func (l *RunLedger) EntryCount() int {
	n := 0
	for _, g := range l.Groups {
		n += len(g.Entries)
	}
	return n
}
