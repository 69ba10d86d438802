package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/ternarybob/arbor"
	"github.com/udara780/IT23265660/internal/canonical"
	"github.com/udara780/IT23265660/internal/common"
	"github.com/udara780/IT23265660/internal/ledger"
	"github.com/udara780/IT23265660/internal/models"
	"github.com/udara780/IT23265660/internal/report"
	"github.com/udara780/IT23265660/internal/target"
)

// translit-runner orchestrates a full run: probe the target page, execute
// the unit and browser suites as go test subprocesses, then build the
// report from the run ledger the browser suite leaves behind. Each suite
// gets its own results directory.

type testSuite struct {
	Name    string
	Args    []string
	Browser bool // needs the target paths and screenshot dir in its environment
}

type suiteResult struct {
	Suite    string
	Success  bool
	Duration time.Duration
}

var (
	configPath   = flag.String("config", "", "Configuration file path")
	targetURL    = flag.String("url", "", "Target page URL (overrides config)")
	headlessFlag = flag.Bool("headless", true, "Run the browser headless (overrides config)")
	schedule     = flag.String("schedule", "", "Cron expression for repeated runs (e.g. \"0 */6 * * *\")")
	skipProbe    = flag.Bool("skip-probe", false, "Skip the static target probe")
	skipUnit     = flag.Bool("skip-unit", false, "Skip the unit suite, run only the browser suite")
	showVersion  = flag.Bool("version", false, "Print version information")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("translit-runner version %s\n", common.GetVersion())
		os.Exit(0)
	}

	common.InstallCrashHandler("logs")
	defer common.RecoverWithCrashFile()

	// Auto-discover the runner config when none was given.
	resolvedConfig := *configPath
	if resolvedConfig == "" {
		if _, err := os.Stat("translit-runner.toml"); err == nil {
			resolvedConfig = "translit-runner.toml"
		}
	}

	config, err := common.LoadFromFile(resolvedConfig)
	if err != nil {
		arbor.NewLogger().Fatal().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	// Only honor -headless when the flag was given on the command line,
	// otherwise the config/env value stands.
	var headless *bool
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "headless" {
			headless = headlessFlag
		}
	})
	common.ApplyFlagOverrides(config, *targetURL, headless)

	logger := common.InitLogger(config)
	common.PrintBanner(common.GetVersion())

	fmt.Printf("Configuration:\n")
	if resolvedConfig != "" {
		fmt.Printf("  Config:   %s\n", resolvedConfig)
	}
	fmt.Printf("  Target:   %s\n", config.Target.BaseURL)
	fmt.Printf("  Fixture:  %s\n", config.Fixture.Path)
	fmt.Printf("  Headless: %t\n\n", config.Browser.Headless)

	if *schedule != "" {
		if err := runScheduled(config, logger, *schedule); err != nil {
			logger.Fatal().Err(err).Msg("Scheduler failed")
			os.Exit(1)
		}
		return
	}

	if err := runOnce(config, logger); err != nil {
		logger.Error().Err(err).Msg("Run failed")
		os.Exit(1)
	}
}

// runScheduled repeats runOnce on a cron schedule until interrupted.
// Overlapping runs are skipped, not queued.
func runScheduled(config *common.Config, logger arbor.ILogger, spec string) error {
	var running atomic.Bool

	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		if !running.CompareAndSwap(false, true) {
			logger.Warn().Msg("Previous run still in progress, skipping scheduled run")
			return
		}
		defer running.Store(false)

		if err := runOnce(config, logger); err != nil {
			logger.Error().Err(err).Msg("Scheduled run failed")
		}
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", spec, err)
	}

	c.Start()
	defer c.Stop()

	if entries := c.Entries(); len(entries) > 0 {
		logger.Info().
			Str("schedule", spec).
			Str("next_run", entries[0].Next.Format(time.RFC3339)).
			Msg("Scheduler started")
	}
	fmt.Println("Scheduler running - Press Ctrl+C to stop")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info().Msg("Interrupt signal received, stopping scheduler")
	return nil
}

func runOnce(config *common.Config, logger arbor.ILogger) error {
	// Step 1: Static probe of the target page
	if !*skipProbe {
		fmt.Println("STEP 1: Probing target page...")
		fmt.Println(strings.Repeat("-", 80))
		probeTarget(config)
		fmt.Println()
	}

	// Step 2: Run the suites
	fmt.Println("STEP 2: Running test suites...")
	fmt.Println(strings.Repeat("-", 80))

	suites := []testSuite{
		{Name: "Unit Tests", Args: []string{"test", "./internal/..."}},
		{Name: "E2E Tests", Args: []string{"test", "-v", "-timeout", "30m", "./test/e2e"}, Browser: true},
	}
	if *skipUnit {
		suites = suites[1:]
	}

	results := make([]suiteResult, 0, len(suites))
	allPassed := true
	var e2eDir string

	for _, suite := range suites {
		fmt.Printf("Running %s...\n", suite.Name)
		fmt.Println(strings.Repeat("-", 80))

		suiteDir, err := prepareSuiteDir("test/results", suite)
		if err != nil {
			return err
		}
		if suite.Browser {
			e2eDir = suiteDir
		}

		duration, runErr := runSuite(config, logger, suite, suiteDir)
		results = append(results, suiteResult{Suite: suite.Name, Success: runErr == nil, Duration: duration})

		if runErr == nil {
			fmt.Printf("✓ %s PASSED (%.2fs)\n\n", suite.Name, duration.Seconds())
		} else {
			fmt.Printf("✗ %s FAILED (%.2fs)\n\n", suite.Name, duration.Seconds())
			allPassed = false
		}
	}

	// Step 3: Build the report from the ledger the browser suite wrote
	fmt.Println("STEP 3: Building report...")
	fmt.Println(strings.Repeat("-", 80))

	summary, err := buildReport(config, logger, e2eDir)
	if err != nil {
		return err
	}

	printSummary(results, summary, e2eDir)

	if !allPassed {
		return fmt.Errorf("one or more suites failed")
	}
	return nil
}

// probeTarget runs the static locator cascade against the fetched page and
// prints what it found. Failures here are warnings only; hydrated pages
// often reveal their fields to live discovery alone.
func probeTarget(config *common.Config) {
	client := target.NewHTTPClient(15 * time.Second)
	diagnosis, err := target.Probe(client, config.Target.BaseURL, config.Browser.UserAgent)
	if err != nil {
		fmt.Printf("WARNING: Target probe failed: %v\n", err)
		fmt.Println("Continuing with the suites...")
		return
	}

	fmt.Printf("  ✓ Target reachable: %s\n", diagnosis.URL)
	for _, s := range diagnosis.Surfaces {
		if !s.Found {
			fmt.Printf("  ⚠ %s surface not in static HTML, live discovery will decide\n", s.Role)
			continue
		}
		fmt.Printf("  ✓ %s surface: %s (strategy %s)\n", s.Role, s.Element, s.Strategy)
	}
}

// prepareSuiteDir creates test/results/{suite}-{timestamp}/ and returns its
// absolute path. Browser suites get a screenshots subdirectory.
func prepareSuiteDir(outputDir string, suite testSuite) (string, error) {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	dir := filepath.Join(outputDir, fmt.Sprintf("%s-%s", sanitizeFilename(suite.Name), timestamp))

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve results directory: %w", err)
	}
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create results directory: %w", err)
	}
	if suite.Browser {
		if err := os.MkdirAll(filepath.Join(absDir, "screenshots"), 0755); err != nil {
			return "", fmt.Errorf("failed to create screenshots directory: %w", err)
		}
	}
	return absDir, nil
}

// runSuite executes one go test invocation with output streaming to the
// console and to test.log in the suite directory.
func runSuite(config *common.Config, logger arbor.ILogger, suite testSuite, suiteDir string) (time.Duration, error) {
	start := time.Now()

	logFile, err := os.Create(filepath.Join(suiteDir, "test.log"))
	if err != nil {
		return 0, fmt.Errorf("failed to create test.log: %w", err)
	}
	defer logFile.Close()

	cmd := exec.Command("go", suite.Args...)
	cmd.Dir = "."
	cmd.Env = os.Environ()

	if suite.Browser {
		fixturePath, err := filepath.Abs(config.Fixture.Path)
		if err != nil {
			fixturePath = config.Fixture.Path
		}
		casesPath, err := filepath.Abs(config.Report.CasesPath)
		if err != nil {
			casesPath = config.Report.CasesPath
		}

		// The test binary runs with its package dir as the working
		// directory, so every path crossing the boundary must be absolute.
		cmd.Env = append(cmd.Env,
			fmt.Sprintf("TRANSLIT_BASE_URL=%s", config.Target.BaseURL),
			fmt.Sprintf("TRANSLIT_HEADLESS=%t", config.Browser.Headless),
			fmt.Sprintf("TRANSLIT_FIXTURE_PATH=%s", fixturePath),
			fmt.Sprintf("TRANSLIT_CASES_PATH=%s", casesPath),
			fmt.Sprintf("TRANSLIT_LEDGER_PATH=%s", filepath.Join(suiteDir, "run-ledger.json")),
			fmt.Sprintf("TEST_RESULTS_DIR=%s", suiteDir),
		)
	}

	output := io.MultiWriter(os.Stdout, logFile)
	cmd.Stdout = output
	cmd.Stderr = output

	done := make(chan struct{})
	common.SafeGo(logger, "suite-heartbeat", func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				fmt.Printf("  ... %s still running (%s elapsed)\n", suite.Name, time.Since(start).Round(time.Second))
			}
		}
	})

	runErr := cmd.Run()
	close(done)

	return time.Since(start), runErr
}

// buildReport joins the canonical cases with the run ledger and writes the
// xlsx report plus the PDF summary into the browser suite's directory.
func buildReport(config *common.Config, logger arbor.ILogger, e2eDir string) (models.RunSummary, error) {
	cases, err := canonical.Load(config.Report.CasesPath)
	if err != nil {
		return models.RunSummary{}, fmt.Errorf("failed to load canonical cases: %w", err)
	}

	ledgerPath := config.Report.LedgerPath
	reportPath := config.Report.OutputPath
	pdfPath := config.Report.PDFPath
	if e2eDir != "" {
		ledgerPath = filepath.Join(e2eDir, "run-ledger.json")
		reportPath = filepath.Join(e2eDir, "translit-report.xlsx")
		pdfPath = filepath.Join(e2eDir, "translit-summary.pdf")
	}

	runLedger := ledger.Load(ledgerPath)
	rows, summary := report.Build(cases, runLedger)

	if err := report.NewExcelExporter().Export(reportPath, rows, summary); err != nil {
		return summary, fmt.Errorf("failed to write report workbook: %w", err)
	}
	fmt.Printf("✓ Report workbook: %s\n", reportPath)

	if pdfPath != "" {
		if err := report.NewPDFExporter().Export(pdfPath, rows, summary); err != nil {
			logger.Error().Err(err).Msg("Failed to write PDF summary")
		} else {
			fmt.Printf("✓ PDF summary:     %s\n", pdfPath)
		}
	}

	logger.Info().
		Int("cases", summary.Total).
		Str("pass_rate", summary.PassRate).
		Str("report", reportPath).
		Msg("Report built")
	return summary, nil
}

func printSummary(results []suiteResult, summary models.RunSummary, e2eDir string) {
	fmt.Println("\n" + strings.Repeat("=", 80))
	fmt.Println("RUN SUMMARY")
	fmt.Println(strings.Repeat("=", 80))

	totalDuration := time.Duration(0)
	for _, result := range results {
		status := "PASS"
		if !result.Success {
			status = "FAIL"
		}
		fmt.Printf("%-30s %s (%.2fs)\n", result.Suite, status, result.Duration.Seconds())
		totalDuration += result.Duration
	}

	fmt.Println(strings.Repeat("-", 80))
	fmt.Printf("Cases: %d  Passed: %d  Failed: %d  Not Run: %d  Pass Rate: %s\n",
		summary.Total, summary.Passed, summary.Failed, summary.NotRun, summary.PassRate)
	if e2eDir != "" {
		fmt.Printf("Results: %s\n", e2eDir)
	}
	fmt.Printf("Total suite time: %.2fs\n", totalDuration.Seconds())
}

func sanitizeFilename(name string) string {
	replacer := strings.NewReplacer(
		" ", "_",
		"/", "_",
		"\\", "_",
		":", "_",
	)
	return strings.ToLower(replacer.Replace(name))
}
