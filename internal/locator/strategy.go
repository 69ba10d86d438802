// -----------------------------------------------------------------------
// Locator Strategies - Ordered heuristics for finding the widget fields
// -----------------------------------------------------------------------

package locator

import (
	"fmt"
)

// Role discriminates the two discovery variants. The input role finds the
// text-entry field the scenario types into; the output role finds the
// surface the Sinhala text appears on.
type Role string

const (
	RoleInput  Role = "input"
	RoleOutput Role = "output"
)

// Kind selects how a strategy gathers its candidate elements. The target
// page's markup is not under this harness's control, so strategies are
// predicates over element attributes rather than fixed selectors.
type Kind string

const (
	// KindFirstField matches the document's first text-entry field.
	KindFirstField Kind = "first-field"
	// KindPlaceholder matches fields whose placeholder contains a cue.
	KindPlaceholder Kind = "placeholder-cue"
	// KindIdentifier matches elements whose id or name contains a cue.
	KindIdentifier Kind = "identifier-cue"
	// KindContainer matches fields nested under a container whose class
	// contains a cue, or (output role) cue-classed display containers.
	KindContainer Kind = "container-cue"
	// KindReadOnly matches read-only or disabled text-entry fields.
	KindReadOnly Kind = "readonly-field"
	// KindAnyField matches any text-entry field.
	KindAnyField Kind = "any-field"
)

// Strategy is one step of the cascade. Strategies are tried in order; the
// first one yielding a visible candidate wins. Cue matching is always
// case-insensitive substring containment.
type Strategy struct {
	Name string   `json:"name"`
	Kind Kind     `json:"kind"`
	Cues []string `json:"cues,omitempty"`
}

// FallbackStrategy names the unconditional structural fallback applied
// when no strategy yields a visible element: the first text-entry field
// for the input role, the second (or last) for the output role. The
// fallback skips the visibility check, so the element it tags may still
// fail the caller's visibility wait.
const FallbackStrategy = "structural-fallback"

// TagAttribute marks the element a discovery pass settled on. Follow-up
// driver actions address the element through this attribute so they hit
// exactly the element the cascade chose.
const TagAttribute = "data-translit-role"

// InputStrategies returns the cascade for locating the Singlish entry
// field.
func InputStrategies() []Strategy {
	return []Strategy{
		{Name: "first-field", Kind: KindFirstField},
		{Name: "input-placeholder-cue", Kind: KindPlaceholder, Cues: []string{"singlish", "english", "type"}},
		{Name: "input-identifier-cue", Kind: KindIdentifier, Cues: []string{"singlish", "english", "input"}},
		{Name: "input-container-cue", Kind: KindContainer, Cues: []string{"input"}},
		{Name: "any-field", Kind: KindAnyField},
	}
}

// OutputStrategies returns the cascade for locating the Sinhala output
// surface. There is no first-field step here: the first field is almost
// always the input, so output discovery leans on cues and ends in the
// prefer-second structural fallback instead.
func OutputStrategies() []Strategy {
	return []Strategy{
		{Name: "output-placeholder-cue", Kind: KindPlaceholder, Cues: []string{"sinhala", "unicode", "output"}},
		{Name: "output-identifier-cue", Kind: KindIdentifier, Cues: []string{"sinhala", "unicode", "output", "result"}},
		{Name: "output-container-cue", Kind: KindContainer, Cues: []string{"output", "result", "sinhala"}},
		{Name: "readonly-field", Kind: KindReadOnly},
	}
}

// StrategiesFor returns the cascade for a role.
func StrategiesFor(role Role) []Strategy {
	if role == RoleOutput {
		return OutputStrategies()
	}
	return InputStrategies()
}

// TaggedSelector returns the CSS selector addressing the element a
// discovery pass tagged for the given role.
func TaggedSelector(role Role) string {
	return fmt.Sprintf(`[%s=%q]`, TagAttribute, string(role))
}
