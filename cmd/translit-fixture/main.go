package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ternarybob/arbor"
	"github.com/udara780/IT23265660/internal/canonical"
	"github.com/udara780/IT23265660/internal/common"
	"github.com/udara780/IT23265660/internal/fixture"
)

// translit-fixture generates the starter test-case spreadsheet from the
// canonical case list so testers always begin from the same workbook layout.

var (
	configPath  = flag.String("config", "", "Configuration file path")
	casesPath   = flag.String("cases", "", "Canonical case list TOML (overrides config)")
	outputPath  = flag.String("output", "", "Fixture xlsx path to write (overrides config)")
	showVersion = flag.Bool("version", false, "Print version information")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("translit-fixture version %s\n", common.GetVersion())
		os.Exit(0)
	}

	config, err := common.LoadFromFile(*configPath)
	if err != nil {
		arbor.NewLogger().Fatal().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	logger := common.InitLogger(config)
	common.PrintBanner(common.GetVersion())

	cases := config.Report.CasesPath
	if *casesPath != "" {
		cases = *casesPath
	}
	output := config.Fixture.Path
	if *outputPath != "" {
		output = *outputPath
	}

	list, err := canonical.Load(cases)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cases).Msg("Failed to load canonical cases")
		os.Exit(1)
	}

	if err := fixture.WriteTemplate(output, list); err != nil {
		logger.Fatal().Err(err).Str("path", output).Msg("Failed to write fixture template")
		os.Exit(1)
	}

	logger.Info().
		Int("cases", len(list)).
		Str("path", output).
		Msg("Fixture template written")
	fmt.Printf("✓ Wrote %d cases to %s\n", len(list), output)
}
