package e2e

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/udara780/IT23265660/internal/browser"
)

const widgetGroup = "Widget behaviour"

// TestTypingMakesOutputVisible checks the widget reacts to typing at all:
// after entering a known word the output surface must become visible.
func TestTypingMakesOutputVisible(t *testing.T) {
	requireSuite(t)
	const title = "typing makes the output surface visible"
	recordOutcome(t, widgetGroup, title)
	t.Parallel()

	ctx := newScenarioTab(t)
	inputSel := openTranslitPage(t, ctx)

	err := browser.Fill(ctx, inputSel, "mama", suite.Config.Timing.InputSettleDuration())
	require.NoError(t, err, "FAIL: could not type input")

	readOutput(t, ctx)
	t.Log("PASS: output surface visible after typing")
}

// TestClearingInputEmptiesOutput types a phrase, clears it again and expects
// the output to come back empty once trimmed.
func TestClearingInputEmptiesOutput(t *testing.T) {
	requireSuite(t)
	const title = "clearing the input empties the output"
	recordOutcome(t, widgetGroup, title)
	t.Parallel()

	ctx := newScenarioTab(t)
	inputSel := openTranslitPage(t, ctx)
	settle := suite.Config.Timing.InputSettleDuration()

	err := browser.Fill(ctx, inputSel, "oyata kohomada", settle)
	require.NoError(t, err, "FAIL: could not type input")
	require.NotEmpty(t, strings.TrimSpace(readOutput(t, ctx)), "FAIL: widget produced no output to clear")

	err = browser.Clear(ctx, inputSel, settle)
	require.NoError(t, err, "FAIL: could not clear input")

	got := strings.TrimSpace(readOutput(t, ctx))
	require.Empty(t, got, "FAIL: output still shows %q after clearing", got)
	t.Log("PASS: output empty after clearing input")
}

// TestLongInputProducesOutput types a long multi-word sentence and expects
// some transliteration to come back, without pinning the exact rendering.
func TestLongInputProducesOutput(t *testing.T) {
	requireSuite(t)
	const title = "long multi-word input produces output"
	recordOutcome(t, widgetGroup, title)
	t.Parallel()

	ctx := newScenarioTab(t)
	inputSel := openTranslitPage(t, ctx)

	const longInput = "mama gedara yanawa honda dawasak"
	err := browser.Fill(ctx, inputSel, longInput, suite.Config.Timing.InputSettleDuration())
	require.NoError(t, err, "FAIL: could not type input")

	got := strings.TrimSpace(readOutput(t, ctx))
	require.NotEmpty(t, got, "FAIL: long input produced no output")
	t.Logf("PASS: long input produced %d characters of output", len([]rune(got)))
}
