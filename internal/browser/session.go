// -----------------------------------------------------------------------
// Browser Session - Shared Chrome instance with per-scenario tabs
// -----------------------------------------------------------------------

package browser

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/ternarybob/arbor"
	"golang.org/x/time/rate"

	"github.com/udara780/IT23265660/internal/common"
)

// Session owns one Chrome process for a whole test run. Scenarios get
// isolated tabs via NewTab; navigation against the live target is rate
// limited across all tabs.
type Session struct {
	config  common.BrowserConfig
	logger  arbor.ILogger
	limiter *rate.Limiter

	mu              sync.Mutex
	allocatorCancel context.CancelFunc
	browserCtx      context.Context
	browserCancel   context.CancelFunc
	started         bool
}

// NewSession creates an unstarted session.
func NewSession(config common.BrowserConfig) *Session {
	perMinute := config.NavPerMinute
	if perMinute <= 0 {
		perMinute = 30
	}
	return &Session{
		config:  config,
		logger:  common.GetLogger(),
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 3),
	}
}

// Start launches Chrome and verifies it responds. Safe to call once.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return fmt.Errorf("browser session already started")
	}

	startTime := time.Now()

	opts := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", s.config.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", s.config.NoSandbox),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.WindowSize(s.config.WindowWidth, s.config.WindowHeight),
	)
	if s.config.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(s.config.UserAgent))
	}

	allocatorCtx, allocatorCancel := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocatorCtx)

	// Startup probe: a session that cannot reach about:blank is unusable
	// and every scenario would fail with a confusing timeout later.
	probeCtx, probeCancel := context.WithTimeout(browserCtx, 30*time.Second)
	defer probeCancel()
	if err := chromedp.Run(probeCtx, chromedp.Navigate("about:blank")); err != nil {
		browserCancel()
		allocatorCancel()
		return fmt.Errorf("browser failed startup probe: %w", err)
	}

	s.allocatorCancel = allocatorCancel
	s.browserCtx = browserCtx
	s.browserCancel = browserCancel
	s.started = true

	s.logger.Info().
		Bool("headless", s.config.Headless).
		Int("window_width", s.config.WindowWidth).
		Int("window_height", s.config.WindowHeight).
		Int64("startup_ms", time.Since(startTime).Milliseconds()).
		Msg("Browser session started")

	return nil
}

// NewTab returns an isolated tab context for one scenario. The cancel
// func closes the tab; the shared browser stays up.
func (s *Session) NewTab() (context.Context, context.CancelFunc, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return nil, nil, fmt.Errorf("browser session not started")
	}

	tabCtx, tabCancel := chromedp.NewContext(s.browserCtx)
	return tabCtx, tabCancel, nil
}

// Shutdown closes all tabs and the browser process.
func (s *Session) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.browserCancel()
	s.allocatorCancel()
	s.started = false

	s.logger.Info().Msg("Browser session shut down")
}

// IsStarted reports whether Start has succeeded.
func (s *Session) IsStarted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}
