// -----------------------------------------------------------------------
// Navigation - Page open with network-idle and hydration settling
// -----------------------------------------------------------------------

package browser

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
)

// NavigateAndSettle opens url in the tab and waits for the page to become
// quiet: navigation complete, no network activity for the idle window,
// plus a fixed extra settle delay for client-side hydration. Every wait
// is bounded; hitting a bound is a hard failure for the scenario.
func (s *Session) NavigateAndSettle(ctx context.Context, url string, timing TimingSource) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("navigation rate limit wait cancelled: %w", err)
	}

	idle := newIdleTracker()
	chromedp.ListenTarget(ctx, idle.handle)

	start := time.Now()

	navCtx, cancel := context.WithTimeout(ctx, timing.NavigationTimeoutDuration())
	defer cancel()
	if err := chromedp.Run(navCtx,
		network.Enable(),
		chromedp.Navigate(url),
	); err != nil {
		return fmt.Errorf("navigation to %s failed: %w", url, err)
	}

	if err := idle.wait(ctx, timing.NetworkIdleWindowDuration(), timing.NetworkIdleTimeoutDuration()); err != nil {
		return err
	}

	// Network quiet does not mean the client-side app has finished
	// rendering its widgets.
	if err := chromedp.Run(ctx, chromedp.Sleep(timing.HydrationSettleDuration())); err != nil {
		return fmt.Errorf("hydration settle interrupted: %w", err)
	}

	s.logger.Debug().
		Str("url", url).
		Dur("elapsed", time.Since(start)).
		Msg("Page ready")

	return nil
}

// TimingSource provides the wait bounds NavigateAndSettle needs. Satisfied
// by common.TimingConfig.
type TimingSource interface {
	NavigationTimeoutDuration() time.Duration
	NetworkIdleWindowDuration() time.Duration
	NetworkIdleTimeoutDuration() time.Duration
	HydrationSettleDuration() time.Duration
}

// idleTracker counts in-flight requests from CDP network events.
type idleTracker struct {
	mu       sync.Mutex
	inflight map[network.RequestID]struct{}
	last     time.Time
}

func newIdleTracker() *idleTracker {
	return &idleTracker{
		inflight: make(map[network.RequestID]struct{}),
		last:     time.Now(),
	}
}

func (t *idleTracker) handle(ev interface{}) {
	switch e := ev.(type) {
	case *network.EventRequestWillBeSent:
		t.mu.Lock()
		t.inflight[e.RequestID] = struct{}{}
		t.last = time.Now()
		t.mu.Unlock()
	case *network.EventLoadingFinished:
		t.mu.Lock()
		delete(t.inflight, e.RequestID)
		t.last = time.Now()
		t.mu.Unlock()
	case *network.EventLoadingFailed:
		t.mu.Lock()
		delete(t.inflight, e.RequestID)
		t.last = time.Now()
		t.mu.Unlock()
	}
}

// quietFor reports whether nothing is in flight and no event landed for
// the whole window.
func (t *idleTracker) quietFor(window time.Duration) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.inflight) == 0 && time.Since(t.last) >= window
}

func (t *idleTracker) wait(ctx context.Context, window, timeout time.Duration) error {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline.C:
			return fmt.Errorf("network did not go idle within %s", timeout)
		case <-tick.C:
			if t.quietFor(window) {
				return nil
			}
		}
	}
}
