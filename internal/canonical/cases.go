// -----------------------------------------------------------------------
// Canonical Case List - TOML-backed case definitions for the reporter
// -----------------------------------------------------------------------

package canonical

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"

	"github.com/udara780/IT23265660/internal/models"
)

// caseFile is the TOML document shape: a [[cases]] array.
type caseFile struct {
	Cases []models.CanonicalCase `toml:"cases"`
}

// Load reads the canonical case list. Each case must carry an id, singlish
// input and expected Sinhala output; a missing category defaults to
// "General". Unlike the run ledger, a broken case list is a hard error.
func Load(path string) ([]models.CanonicalCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read case list %s: %w", path, err)
	}

	var file caseFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse case list %s: %w", path, err)
	}

	validate := validator.New()
	for i := range file.Cases {
		if file.Cases[i].Category == "" {
			file.Cases[i].Category = models.DefaultCategory
		}
		if err := validate.Struct(file.Cases[i]); err != nil {
			return nil, fmt.Errorf("invalid case %d (%q) in %s: %w", i+1, file.Cases[i].ID, path, err)
		}
	}

	return file.Cases, nil
}
