// -----------------------------------------------------------------------
// Live Discovery - Runs the locator cascade inside a chromedp page
// -----------------------------------------------------------------------

package locator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/chromedp/chromedp"

	"github.com/udara780/IT23265660/internal/common"
)

// Match is the outcome of one discovery pass.
type Match struct {
	Role     Role
	Strategy string // winning strategy name, empty when the page has no candidate at all
	Selector string // selector for follow-up driver actions, valid even when nothing matched
	Found    bool
}

// discoverySpec is the payload handed to the in-page script.
type discoverySpec struct {
	Role         Role       `json:"role"`
	Attr         string     `json:"attr"`
	PreferSecond bool       `json:"preferSecond"`
	Strategies   []Strategy `json:"strategies"`
}

// Discover runs the cascade inside the live page and tags the element it
// settles on with TagAttribute. The returned selector addresses the tagged
// element; when even the structural fallback found nothing, the selector
// matches nothing and the caller's visibility wait surfaces the failure.
func Discover(ctx context.Context, role Role) (Match, error) {
	script, err := discoveryScript(role)
	if err != nil {
		return Match{}, err
	}

	var strategy string
	if err := chromedp.Run(ctx, chromedp.Evaluate(script, &strategy)); err != nil {
		return Match{}, fmt.Errorf("element discovery for %s failed: %w", role, err)
	}

	m := Match{
		Role:     role,
		Strategy: strategy,
		Selector: TaggedSelector(role),
		Found:    strategy != "",
	}

	log := common.GetLogger()
	if m.Found {
		log.Debug().
			Str("role", string(role)).
			Str("strategy", m.Strategy).
			Msg("Element discovery settled")
	} else {
		log.Warn().
			Str("role", string(role)).
			Msg("No candidate element on page, visibility wait will time out")
	}

	return m, nil
}

// discoveryScript renders the in-page cascade walker for a role.
func discoveryScript(role Role) (string, error) {
	spec := discoverySpec{
		Role:         role,
		Attr:         TagAttribute,
		PreferSecond: role == RoleOutput,
		Strategies:   StrategiesFor(role),
	}
	payload, err := json.Marshal(spec)
	if err != nil {
		return "", fmt.Errorf("failed to encode discovery spec: %w", err)
	}
	return fmt.Sprintf(discoveryScriptTemplate, payload), nil
}

// The walker mirrors the cascade semantics documented on StrategiesFor:
// per strategy, first visible candidate in document order wins; the
// structural fallback then applies unconditionally. The input role
// restricts identifier and container candidates to text-entry fields; the
// output role admits display containers since the Sinhala text may render
// in a plain element instead of a field.
const discoveryScriptTemplate = `(() => {
	const spec = %s;
	const FIELD = 'textarea, input[type="text"], input:not([type])';
	const fields = () => Array.from(document.querySelectorAll(FIELD));
	const lower = (v) => (v || '').toLowerCase();
	const hasCue = (value, cues) => (cues || []).some((c) => lower(value).includes(c));
	const isVisible = (el) => {
		if (!el) return false;
		const rect = el.getBoundingClientRect();
		const style = window.getComputedStyle(el);
		return rect.width > 0 && rect.height > 0 && style.display !== 'none' && style.visibility !== 'hidden';
	};
	const underCueContainer = (el, cues) => {
		for (let p = el.parentElement; p; p = p.parentElement) {
			if (hasCue(p.getAttribute('class'), cues)) return true;
		}
		return false;
	};
	const restrict = (list) => spec.role === 'input' ? list.filter((el) => el.matches(FIELD)) : list;
	const candidates = (s) => {
		switch (s.kind) {
		case 'first-field':
			return fields().slice(0, 1);
		case 'placeholder-cue':
			return fields().filter((el) => hasCue(el.getAttribute('placeholder'), s.cues));
		case 'identifier-cue':
			return restrict(Array.from(document.querySelectorAll('[id], [name]')).filter((el) =>
				!/^(script|style|link|meta)$/i.test(el.tagName) &&
				(hasCue(el.getAttribute('id'), s.cues) || hasCue(el.getAttribute('name'), s.cues))));
		case 'container-cue': {
			const nested = fields().filter((el) => underCueContainer(el, s.cues));
			if (spec.role === 'input') return nested;
			const own = Array.from(document.querySelectorAll('div, span, p, pre, output')).filter((el) =>
				hasCue(el.getAttribute('class'), s.cues));
			return nested.concat(own);
		}
		case 'readonly-field':
			return fields().filter((el) => el.readOnly || el.disabled || el.hasAttribute('readonly'));
		case 'any-field':
			return fields();
		default:
			return [];
		}
	};
	let winner = null;
	let strategy = '';
	for (const s of spec.strategies) {
		const match = candidates(s).find(isVisible);
		if (match) { winner = match; strategy = s.name; break; }
	}
	if (!winner) {
		const all = fields();
		if (all.length > 0) {
			if (spec.preferSecond) {
				winner = all.length >= 2 ? all[1] : all[all.length - 1];
			} else {
				winner = all[0];
			}
			strategy = '` + FallbackStrategy + `';
		}
	}
	if (!winner) return '';
	document.querySelectorAll('[' + spec.attr + '="' + spec.role + '"]').forEach((el) => el.removeAttribute(spec.attr));
	winner.setAttribute(spec.attr, spec.role);
	return strategy;
})()`
