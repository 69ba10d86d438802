// -----------------------------------------------------------------------
// Text Extractor - Reads the displayed text of a located element
// -----------------------------------------------------------------------

package browser

import (
	"context"
	"fmt"

	"github.com/chromedp/chromedp"
)

// ExtractText reads the element's current text, branching on element kind:
// text-entry controls expose their value property, anything else its
// rendered text content. The output surface may legitimately be either, so
// the branch lives here rather than in the locator.
func ExtractText(ctx context.Context, selector string) (string, error) {
	script := fmt.Sprintf(`(() => {
	const el = document.querySelector(%q);
	if (!el) return '';
	const tag = el.tagName.toLowerCase();
	if (tag === 'textarea' || tag === 'input') {
		return el.value;
	}
	return el.textContent || '';
})()`, selector)

	var text string
	if err := chromedp.Run(ctx, chromedp.Evaluate(script, &text)); err != nil {
		return "", fmt.Errorf("failed to extract text from %s: %w", selector, err)
	}
	return text, nil
}
