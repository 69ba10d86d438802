// -----------------------------------------------------------------------
// Interaction Driver - Focus, clear, type, settle
// -----------------------------------------------------------------------

package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

// WaitVisible asserts the element becomes visible within the bound. The
// bound is the scenario's failure detector: discovery tags an element even
// when the page has nothing usable, and this wait is what surfaces that.
func WaitVisible(ctx context.Context, selector string, timeout time.Duration) error {
	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := chromedp.Run(waitCtx, chromedp.WaitVisible(selector, chromedp.ByQuery)); err != nil {
		return fmt.Errorf("element %s not visible within %s: %w", selector, timeout, err)
	}
	return nil
}

// Fill focuses the element, clears any existing content, types text, then
// sleeps the settle interval so the widget's asynchronous re-render can
// finish before the caller reads the output.
func Fill(ctx context.Context, selector, text string, settle time.Duration) error {
	err := chromedp.Run(ctx,
		chromedp.Focus(selector, chromedp.ByQuery),
		clearContent(selector),
		chromedp.SendKeys(selector, text, chromedp.ByQuery),
		chromedp.Sleep(settle),
	)
	if err != nil {
		return fmt.Errorf("failed to fill %s: %w", selector, err)
	}
	return nil
}

// Clear focuses the element, empties it, and settles.
func Clear(ctx context.Context, selector string, settle time.Duration) error {
	err := chromedp.Run(ctx,
		chromedp.Focus(selector, chromedp.ByQuery),
		clearContent(selector),
		chromedp.Sleep(settle),
	)
	if err != nil {
		return fmt.Errorf("failed to clear %s: %w", selector, err)
	}
	return nil
}

// clearContent empties the element's value (or text) and fires a bubbling
// input event so the widget's listeners notice the change. SendKeys alone
// appends to existing content, hence the explicit reset.
func clearContent(selector string) chromedp.Action {
	script := fmt.Sprintf(`(() => {
	const el = document.querySelector(%q);
	if (!el) return false;
	if ('value' in el) {
		el.value = '';
	} else {
		el.textContent = '';
	}
	el.dispatchEvent(new Event('input', { bubbles: true }));
	return true;
})()`, selector)

	var cleared bool
	return chromedp.Evaluate(script, &cleared)
}
