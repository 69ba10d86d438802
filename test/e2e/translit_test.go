package e2e

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/udara780/IT23265660/internal/browser"
	"github.com/udara780/IT23265660/internal/ledger"
)

const translitGroup = "Transliteration"

// TestTransliteration runs one scenario per fixture case: type the Singlish
// input into the widget and compare the rendered Sinhala against the
// expected output, whitespace-trimmed on both sides.
func TestTransliteration(t *testing.T) {
	requireSuite(t)

	for _, c := range suite.Cases {
		title := ledger.SynthesizeTitle(c.ID, c.Description(), c.ExpectedOutput)

		t.Run(title, func(t *testing.T) {
			t.Parallel()
			recordOutcome(t, translitGroup, title)

			ctx := newScenarioTab(t)
			inputSel := openTranslitPage(t, ctx)

			err := browser.Fill(ctx, inputSel, c.Input, suite.Config.Timing.InputSettleDuration())
			require.NoError(t, err, "FAIL: %s: could not type input", c.ID)

			got := strings.TrimSpace(readOutput(t, ctx))
			want := strings.TrimSpace(c.ExpectedOutput)

			if got != want {
				captureScreenshot(ctx, t, c.ID)
			}
			require.Equal(t, want, got, "FAIL: %s: input %q", c.ID, c.Input)

			t.Logf("PASS: %s: %q → %q", c.ID, c.Input, got)
		})
	}
}
