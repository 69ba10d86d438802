package ledger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/udara780/IT23265660/internal/common"
)

// Recorder collects scenario outcomes during an e2e run and writes the
// ledger on flush. Safe for concurrent use by parallel scenarios.
type Recorder struct {
	mu     sync.Mutex
	path   string
	ledger RunLedger
	index  map[string]int // group name -> position in ledger.Groups
}

// NewRecorder creates a recorder that will write to path on Flush.
func NewRecorder(path, targetURL string) *Recorder {
	return &Recorder{
		path: path,
		ledger: RunLedger{
			RunID:     common.NewRunID(),
			StartedAt: time.Now().UTC(),
			TargetURL: targetURL,
		},
		index: make(map[string]int),
	}
}

// Record adds one scenario outcome under the named group. Groups keep
// first-recorded order; entries keep recording order within a group.
func (r *Recorder) Record(group, title string, passed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[group]
	if !ok {
		i = len(r.ledger.Groups)
		r.ledger.Groups = append(r.ledger.Groups, Group{Name: group})
		r.index[group] = i
	}
	r.ledger.Groups[i].Entries = append(r.ledger.Groups[i].Entries, Entry{
		Title:  title,
		Passed: passed,
	})
}

// Flush stamps the completion time and writes the ledger file, creating
// parent directories as needed. Overwrites any prior ledger.
func (r *Recorder) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ledger.CompletedAt = time.Now().UTC()

	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("failed to create ledger directory: %w", err)
	}

	data, err := json.MarshalIndent(r.ledger, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal ledger: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write ledger %s: %w", r.path, err)
	}

	common.GetLogger().Info().
		Str("path", r.path).
		Int("entries", r.ledger.EntryCount()).
		Msg("Run ledger written")

	return nil
}

// EntryCount returns the number of outcomes recorded so far.
func (r *Recorder) EntryCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ledger.EntryCount()
}
