package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/udara780/IT23265660/internal/canonical"
	"github.com/udara780/IT23265660/internal/common"
	"github.com/udara780/IT23265660/internal/ledger"
	"github.com/udara780/IT23265660/internal/models"
	"github.com/udara780/IT23265660/internal/report"
)

// translit-report joins the canonical case list with the latest run ledger
// and writes the two-sheet xlsx report. It never touches the browser, so it
// can rebuild a report from any past ledger.

var (
	configPath  = flag.String("config", "", "Configuration file path")
	casesPath   = flag.String("cases", "", "Canonical case list TOML (overrides config)")
	ledgerPath  = flag.String("ledger", "", "Run ledger JSON (overrides config)")
	outputPath  = flag.String("output", "", "Report xlsx path (overrides config)")
	pdfPath     = flag.String("pdf", "", "Optional PDF summary path (overrides config)")
	showVersion = flag.Bool("version", false, "Print version information")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("translit-report version %s\n", common.GetVersion())
		os.Exit(0)
	}

	common.InstallCrashHandler("logs")
	defer common.RecoverWithCrashFile()

	config, err := common.LoadFromFile(*configPath)
	if err != nil {
		arbor.NewLogger().Fatal().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}
	applyFlags(config)

	logger := common.InitLogger(config)
	common.PrintBanner(common.GetVersion())

	cases, err := canonical.Load(config.Report.CasesPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", config.Report.CasesPath).Msg("Failed to load canonical cases")
		os.Exit(1)
	}

	// A missing or unreadable ledger is not fatal: the report still lists
	// every canonical case, just with no outcomes.
	runLedger := ledger.Load(config.Report.LedgerPath)

	rows, summary := report.Build(cases, runLedger)

	if err := report.NewExcelExporter().Export(config.Report.OutputPath, rows, summary); err != nil {
		logger.Fatal().Err(err).Str("path", config.Report.OutputPath).Msg("Failed to write report workbook")
		os.Exit(1)
	}
	logger.Info().
		Str("path", config.Report.OutputPath).
		Int("rows", len(rows)).
		Str("pass_rate", summary.PassRate).
		Msg("Report workbook written")

	if config.Report.PDFPath != "" {
		if err := report.NewPDFExporter().Export(config.Report.PDFPath, rows, summary); err != nil {
			logger.Error().Err(err).Str("path", config.Report.PDFPath).Msg("Failed to write PDF summary")
		}
	}

	printSummary(rows, summary, config.Report.OutputPath)

	if summary.Failed > 0 {
		os.Exit(1)
	}
}

func applyFlags(config *common.Config) {
	if *casesPath != "" {
		config.Report.CasesPath = *casesPath
	}
	if *ledgerPath != "" {
		config.Report.LedgerPath = *ledgerPath
	}
	if *outputPath != "" {
		config.Report.OutputPath = *outputPath
	}
	if *pdfPath != "" {
		config.Report.PDFPath = *pdfPath
	}
}

func printSummary(rows []models.ReportRow, summary models.RunSummary, reportPath string) {
	fmt.Println("\n" + strings.Repeat("=", 80))
	fmt.Println("TRANSLITERATION TEST REPORT")
	fmt.Println(strings.Repeat("=", 80))

	for _, row := range rows {
		marker := " "
		switch row.Status {
		case models.StatusPass:
			marker = "✓"
		case models.StatusFail:
			marker = "✗"
		case models.StatusNotRun:
			marker = "-"
		}
		fmt.Printf("%s %-8s %-12s %s\n", marker, row.ID, row.Category, row.Status)
	}

	fmt.Println(strings.Repeat("-", 80))
	fmt.Printf("Total: %d  Passed: %d  Failed: %d  Not Run: %d  Pass Rate: %s\n",
		summary.Total, summary.Passed, summary.Failed, summary.NotRun, summary.PassRate)
	fmt.Printf("Report: %s\n", reportPath)
}
