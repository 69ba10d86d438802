// -----------------------------------------------------------------------
// Static Discovery - Runs the locator cascade against parsed HTML
// -----------------------------------------------------------------------

package locator

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// fieldSelector matches text-entry controls: textareas, text inputs, and
// inputs with no explicit type (which default to text).
const fieldSelector = `textarea, input[type="text"], input:not([type])`

// DiscoverStatic runs the cascade against a parsed document, without a
// browser. Layout is unavailable here, so visibility reduces to markup
// signals (hidden attribute, inline display:none) on the element and its
// ancestors. Used for pre-run diagnostics against fetched page HTML; the
// live in-page walker remains the authority during scenarios.
func DiscoverStatic(doc *goquery.Document, role Role) (*goquery.Selection, string, bool) {
	for _, s := range StrategiesFor(role) {
		if match, ok := firstVisible(staticCandidates(doc, role, s)); ok {
			return match, s.Name, true
		}
	}

	fields := doc.Find(fieldSelector)
	n := fields.Length()
	if n == 0 {
		return nil, FallbackStrategy, false
	}
	idx := 0
	if role == RoleOutput {
		if n >= 2 {
			idx = 1
		} else {
			idx = n - 1
		}
	}
	return fields.Eq(idx), FallbackStrategy, true
}

// staticCandidates gathers a strategy's candidates in document order.
func staticCandidates(doc *goquery.Document, role Role, s Strategy) *goquery.Selection {
	fields := doc.Find(fieldSelector)

	switch s.Kind {
	case KindFirstField:
		return fields.First()

	case KindPlaceholder:
		return fields.FilterFunction(func(_ int, el *goquery.Selection) bool {
			return hasCue(el.AttrOr("placeholder", ""), s.Cues)
		})

	case KindIdentifier:
		candidates := doc.Find("[id], [name]").FilterFunction(func(_ int, el *goquery.Selection) bool {
			switch goquery.NodeName(el) {
			case "script", "style", "link", "meta":
				return false
			}
			return hasCue(el.AttrOr("id", ""), s.Cues) || hasCue(el.AttrOr("name", ""), s.Cues)
		})
		if role == RoleInput {
			candidates = candidates.Filter(fieldSelector)
		}
		return candidates

	case KindContainer:
		nested := fields.FilterFunction(func(_ int, el *goquery.Selection) bool {
			return underCueContainer(el, s.Cues)
		})
		if role == RoleInput {
			return nested
		}
		own := doc.Find("div, span, p, pre, output").FilterFunction(func(_ int, el *goquery.Selection) bool {
			return hasCue(el.AttrOr("class", ""), s.Cues)
		})
		return nested.AddSelection(own)

	case KindReadOnly:
		return fields.FilterFunction(func(_ int, el *goquery.Selection) bool {
			_, readonly := el.Attr("readonly")
			_, disabled := el.Attr("disabled")
			return readonly || disabled
		})

	case KindAnyField:
		return fields
	}

	return nil
}

// firstVisible returns the first candidate without hidden markers.
func firstVisible(candidates *goquery.Selection) (*goquery.Selection, bool) {
	if candidates == nil {
		return nil, false
	}
	match := candidates.FilterFunction(func(_ int, el *goquery.Selection) bool {
		return staticallyVisible(el)
	}).First()
	if match.Length() == 0 {
		return nil, false
	}
	return match, true
}

// staticallyVisible checks the element and its ancestors for markup-level
// hiding.
func staticallyVisible(el *goquery.Selection) bool {
	if el.AttrOr("type", "") == "hidden" {
		return false
	}
	for cur := el; cur.Length() > 0; cur = cur.Parent() {
		if _, hidden := cur.Attr("hidden"); hidden {
			return false
		}
		style := strings.ReplaceAll(strings.ToLower(cur.AttrOr("style", "")), " ", "")
		if strings.Contains(style, "display:none") || strings.Contains(style, "visibility:hidden") {
			return false
		}
	}
	return true
}

// hasCue reports case-insensitive substring containment of any cue.
func hasCue(value string, cues []string) bool {
	v := strings.ToLower(value)
	for _, cue := range cues {
		if strings.Contains(v, cue) {
			return true
		}
	}
	return false
}

// underCueContainer walks ancestors looking for a cue-bearing class.
func underCueContainer(el *goquery.Selection, cues []string) bool {
	for p := el.Parent(); p.Length() > 0; p = p.Parent() {
		if hasCue(p.AttrOr("class", ""), cues) {
			return true
		}
	}
	return false
}

// Describe renders a short element signature like "textarea#in.box" for
// diagnostics.
func Describe(el *goquery.Selection) string {
	if el == nil || el.Length() == 0 {
		return "(none)"
	}
	name := goquery.NodeName(el)
	if id := el.AttrOr("id", ""); id != "" {
		name += "#" + id
	}
	if class := strings.Fields(el.AttrOr("class", "")); len(class) > 0 {
		name += "." + strings.Join(class, ".")
	}
	return name
}
