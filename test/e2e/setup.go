// setup.go - Shared state and helpers for the browser suite.
// NOTE: This is NOT a test file - it contains shared test infrastructure.

package e2e

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/stretchr/testify/require"
	"github.com/udara780/IT23265660/internal/browser"
	"github.com/udara780/IT23265660/internal/common"
	"github.com/udara780/IT23265660/internal/ledger"
	"github.com/udara780/IT23265660/internal/locator"
	"github.com/udara780/IT23265660/internal/models"
)

// suite holds the state shared by every scenario: one Chrome process, one
// run recorder, one config. Scenarios run in isolated tabs, so they are
// safe to execute in parallel.
var suite struct {
	Config   *common.Config
	Session  *browser.Session
	Recorder *ledger.Recorder
	Cases    []models.TestCase
	Err      error // environment failure captured by TestMain
}

// requireSuite skips the scenario when TestMain could not bring the
// environment up. An unreachable target or a machine without Chrome is an
// environment problem, not a widget defect, so a bare `go test ./...`
// stays green offline and every scenario names the same root cause.
func requireSuite(t *testing.T) {
	t.Helper()
	if suite.Err != nil {
		t.Skipf("Skipping: %v", suite.Err)
	}
}

// newScenarioTab opens an isolated tab bounded by the scenario timeout.
// Closing is registered on test cleanup.
func newScenarioTab(t *testing.T) context.Context {
	t.Helper()

	tab, cancelTab, err := suite.Session.NewTab()
	if err != nil {
		t.Fatalf("Failed to open tab: %v", err)
	}

	ctx, cancelTimeout := context.WithTimeout(tab, suite.Config.Timing.ScenarioTimeoutDuration())
	t.Cleanup(func() {
		cancelTimeout()
		cancelTab()
	})
	return ctx
}

// openTranslitPage runs the shared scenario prefix: navigate to the target,
// wait for the network to go quiet plus the hydration settle, then locate
// the input field and wait for it to become visible.
func openTranslitPage(t *testing.T, ctx context.Context) string {
	t.Helper()
	cfg := suite.Config

	err := suite.Session.NavigateAndSettle(ctx, cfg.Target.BaseURL, cfg.Timing)
	require.NoError(t, err, "FAIL: could not load %s", cfg.Target.BaseURL)

	input, err := locator.Discover(ctx, locator.RoleInput)
	require.NoError(t, err, "FAIL: input discovery failed")
	t.Logf("Input field located via %s", input.Strategy)

	err = browser.WaitVisible(ctx, input.Selector, cfg.Timing.InputVisibleTimeoutDuration())
	require.NoError(t, err, "FAIL: input field not visible (strategy %s)", input.Strategy)

	return input.Selector
}

// readOutput locates the output surface, waits for it to become visible and
// returns its untrimmed text.
func readOutput(t *testing.T, ctx context.Context) string {
	t.Helper()
	cfg := suite.Config

	output, err := locator.Discover(ctx, locator.RoleOutput)
	require.NoError(t, err, "FAIL: output discovery failed")
	t.Logf("Output surface located via %s", output.Strategy)

	err = browser.WaitVisible(ctx, output.Selector, cfg.Timing.OutputVisibleTimeoutDuration())
	require.NoError(t, err, "FAIL: output surface not visible (strategy %s)", output.Strategy)

	text, err := browser.ExtractText(ctx, output.Selector)
	require.NoError(t, err, "FAIL: could not extract output text")
	return text
}

// recordOutcome registers the scenario verdict with the run recorder once
// the subtest finishes, pass or fail.
func recordOutcome(t *testing.T, group, title string) {
	t.Cleanup(func() {
		suite.Recorder.Record(group, title, !t.Failed())
	})
}

// captureScreenshot saves a screenshot into the run's results directory.
// Outside a runner-managed run there is nowhere to put it, so it is a no-op.
func captureScreenshot(ctx context.Context, t *testing.T, name string) {
	t.Helper()

	resultsDir := os.Getenv("TEST_RESULTS_DIR")
	if resultsDir == "" {
		return
	}

	screenshotDir := filepath.Join(resultsDir, "screenshots")
	if err := os.MkdirAll(screenshotDir, 0755); err != nil {
		t.Logf("Warning: failed to create screenshots directory: %v", err)
		return
	}

	var buf []byte
	if err := chromedp.Run(ctx, chromedp.CaptureScreenshot(&buf)); err != nil {
		t.Logf("Warning: failed to capture screenshot: %v", err)
		return
	}

	timestamp := time.Now().Format("15-04-05")
	path := filepath.Join(screenshotDir, fmt.Sprintf("%s-%s.png", sanitizeName(name), timestamp))
	if err := os.WriteFile(path, buf, 0644); err != nil {
		t.Logf("Warning: failed to save screenshot: %v", err)
	}
}

func sanitizeName(name string) string {
	replacer := strings.NewReplacer(
		" ", "_",
		"/", "_",
		"\\", "_",
		":", "_",
	)
	return strings.ToLower(replacer.Replace(name))
}

// resolveRepoPath anchors a config-relative path at the module root. The
// test binary runs with the package directory as its working directory, so
// relative defaults like "test/fixtures/..." would otherwise miss.
func resolveRepoPath(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}

	dir, err := os.Getwd()
	if err != nil {
		return p
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return filepath.Join(dir, p)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return p
		}
		dir = parent
	}
}
