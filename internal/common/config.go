package common

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the harness configuration shared by the e2e suite and
// the reporting commands.
type Config struct {
	Environment string        `toml:"environment"` // "development" or "production"
	Target      TargetConfig  `toml:"target"`
	Browser     BrowserConfig `toml:"browser"`
	Timing      TimingConfig  `toml:"timing"`
	Fixture     FixtureConfig `toml:"fixture"`
	Report      ReportConfig  `toml:"report"`
	Logging     LoggingConfig `toml:"logging"`
}

// TargetConfig describes the transliteration page under test.
type TargetConfig struct {
	BaseURL string `toml:"base_url" validate:"required,url"` // Root URL of the transliteration widget page
}

// BrowserConfig controls how Chrome is launched for scenarios.
type BrowserConfig struct {
	Headless     bool   `toml:"headless"`       // Run Chrome headless (default: true)
	NoSandbox    bool   `toml:"no_sandbox"`     // Disable the Chrome sandbox (needed in most containers)
	WindowWidth  int    `toml:"window_width"`   // Viewport width (default: 1920)
	WindowHeight int    `toml:"window_height"`  // Viewport height (default: 1080)
	UserAgent    string `toml:"user_agent"`     // Optional user agent override
	NavPerMinute int    `toml:"nav_per_minute"` // Navigation rate limit against the target site (default: 30)
}

// TimingConfig holds the fixed waits of the scenario pipeline. All values
// are duration strings ("1.5s", "500ms") parsed at use; invalid values fall
// back to the defaults.
type TimingConfig struct {
	HydrationSettle      string `toml:"hydration_settle"`       // Extra wait after network idle for client-side hydration (default: "2s")
	InputSettle          string `toml:"input_settle"`           // Wait after typing for the widget to re-render (default: "1500ms")
	InputVisibleTimeout  string `toml:"input_visible_timeout"`  // Bound on waiting for the input field (default: "15s")
	OutputVisibleTimeout string `toml:"output_visible_timeout"` // Bound on waiting for the output surface (default: "5s")
	NetworkIdleWindow    string `toml:"network_idle_window"`    // Quiet window that counts as network idle (default: "500ms")
	NetworkIdleTimeout   string `toml:"network_idle_timeout"`   // Bound on the whole network-idle wait (default: "10s")
	NavigationTimeout    string `toml:"navigation_timeout"`     // Bound on page navigation (default: "30s")
	ScenarioTimeout      string `toml:"scenario_timeout"`       // Bound on a full scenario (default: "60s")
}

// FixtureConfig locates the spreadsheet fixture.
type FixtureConfig struct {
	Path  string `toml:"path"`  // Path to the .xlsx fixture (default: "test/fixtures/translit-cases.xlsx")
	Sheet string `toml:"sheet"` // Sheet name; empty means the first sheet
}

// ReportConfig holds the reporter-path file locations.
type ReportConfig struct {
	CasesPath  string `toml:"cases_path"`  // Canonical case list TOML (default: "test/fixtures/canonical-cases.toml")
	LedgerPath string `toml:"ledger_path"` // Run ledger JSON written by the e2e suite (default: "test/results/run-ledger.json")
	OutputPath string `toml:"output_path"` // Generated xlsx report (default: "test/results/translit-report.xlsx")
	PDFPath    string `toml:"pdf_path"`    // Optional PDF summary; empty disables PDF export
}

// LoggingConfig mirrors the arbor writer setup.
type LoggingConfig struct {
	Level  string   `toml:"level"`  // "debug", "info", "warn", "error"
	Output []string `toml:"output"` // "stdout", "file"
}

// NewDefaultConfig returns the built-in defaults. File, env and flag layers
// are applied on top of this.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Target: TargetConfig{
			BaseURL: "https://www.easysinhalaunicode.com",
		},
		Browser: BrowserConfig{
			Headless:     true,
			NoSandbox:    true,
			WindowWidth:  1920,
			WindowHeight: 1080,
			NavPerMinute: 30,
		},
		Timing: TimingConfig{
			HydrationSettle:      "2s",
			InputSettle:          "1500ms",
			InputVisibleTimeout:  "15s",
			OutputVisibleTimeout: "5s",
			NetworkIdleWindow:    "500ms",
			NetworkIdleTimeout:   "10s",
			NavigationTimeout:    "30s",
			ScenarioTimeout:      "60s",
		},
		Fixture: FixtureConfig{
			Path: "test/fixtures/translit-cases.xlsx",
		},
		Report: ReportConfig{
			CasesPath:  "test/fixtures/canonical-cases.toml",
			LedgerPath: "test/results/run-ledger.json",
			OutputPath: "test/results/translit-report.xlsx",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Output: []string{"stdout"},
		},
	}
}

// LoadFromFile loads configuration with priority: defaults -> file -> env.
// An empty path skips the file layer; a missing file at an explicit path is
// an error.
func LoadFromFile(path string) (*Config, error) {
	config := NewDefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// applyEnvOverrides applies TRANSLIT_* environment variable overrides.
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("TRANSLIT_ENV"); env != "" {
		config.Environment = env
	}
	if url := os.Getenv("TRANSLIT_BASE_URL"); url != "" {
		config.Target.BaseURL = url
	}
	if headless := os.Getenv("TRANSLIT_HEADLESS"); headless != "" {
		if h, err := strconv.ParseBool(headless); err == nil {
			config.Browser.Headless = h
		}
	}
	if fixture := os.Getenv("TRANSLIT_FIXTURE_PATH"); fixture != "" {
		config.Fixture.Path = fixture
	}
	if cases := os.Getenv("TRANSLIT_CASES_PATH"); cases != "" {
		config.Report.CasesPath = cases
	}
	if ledger := os.Getenv("TRANSLIT_LEDGER_PATH"); ledger != "" {
		config.Report.LedgerPath = ledger
	}
	if level := os.Getenv("TRANSLIT_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}

// ApplyFlagOverrides applies command-line flag values (highest priority).
// Zero values leave the config untouched.
func ApplyFlagOverrides(config *Config, baseURL string, headless *bool) {
	if baseURL != "" {
		config.Target.BaseURL = baseURL
	}
	if headless != nil {
		config.Browser.Headless = *headless
	}
}

// Validate checks the configuration using go-playground/validator tags.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// IsProduction reports whether the harness runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Duration accessors. Each parses its configured string and falls back to
// the default when the value is empty or malformed.

func (t TimingConfig) HydrationSettleDuration() time.Duration {
	return parseDurationOr(t.HydrationSettle, 2*time.Second)
}

func (t TimingConfig) InputSettleDuration() time.Duration {
	return parseDurationOr(t.InputSettle, 1500*time.Millisecond)
}

func (t TimingConfig) InputVisibleTimeoutDuration() time.Duration {
	return parseDurationOr(t.InputVisibleTimeout, 15*time.Second)
}

func (t TimingConfig) OutputVisibleTimeoutDuration() time.Duration {
	return parseDurationOr(t.OutputVisibleTimeout, 5*time.Second)
}

func (t TimingConfig) NetworkIdleWindowDuration() time.Duration {
	return parseDurationOr(t.NetworkIdleWindow, 500*time.Millisecond)
}

func (t TimingConfig) NetworkIdleTimeoutDuration() time.Duration {
	return parseDurationOr(t.NetworkIdleTimeout, 10*time.Second)
}

func (t TimingConfig) NavigationTimeoutDuration() time.Duration {
	return parseDurationOr(t.NavigationTimeout, 30*time.Second)
}

func (t TimingConfig) ScenarioTimeoutDuration() time.Duration {
	return parseDurationOr(t.ScenarioTimeout, 60*time.Second)
}

func parseDurationOr(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
