package fixture

import (
	"strings"

	"github.com/udara780/IT23265660/internal/common"
	"github.com/udara780/IT23265660/internal/models"
)

// Filter drops malformed and duplicate cases. A case is kept iff its ID
// and input are both non-empty after trimming and no earlier case shares
// its ID. Exclusion is silent apart from a debug line; relative order of
// kept cases is preserved.
func Filter(cases []models.TestCase) []models.TestCase {
	log := common.GetLogger()

	seen := make(map[string]bool, len(cases))
	kept := make([]models.TestCase, 0, len(cases))

	for _, c := range cases {
		if !c.Valid() {
			log.Debug().Str("id", c.ID).Str("input", c.Input).Msg("Dropping case with blank id or input")
			continue
		}
		id := strings.TrimSpace(c.ID)
		if seen[id] {
			log.Debug().Str("id", id).Msg("Dropping duplicate case id, first occurrence wins")
			continue
		}
		seen[id] = true
		kept = append(kept, c)
	}

	return kept
}
