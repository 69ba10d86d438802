package locator

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func parseHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to parse HTML: %v", err)
	}
	return doc
}

func TestDiscoverStaticInput(t *testing.T) {
	tests := []struct {
		name         string
		html         string
		wantStrategy string
		wantDesc     string
	}{
		{
			name: "visible first field wins immediately",
			html: `<body>
				<textarea id="in"></textarea>
				<textarea placeholder="Type Singlish here" id="cued"></textarea>
			</body>`,
			wantStrategy: "first-field",
			wantDesc:     "textarea#in",
		},
		{
			name: "hidden first field falls through to placeholder cue",
			html: `<body>
				<textarea id="decoy" style="display: none"></textarea>
				<textarea placeholder="Type in English" id="in"></textarea>
			</body>`,
			wantStrategy: "input-placeholder-cue",
			wantDesc:     "textarea#in",
		},
		{
			name: "identifier cue on a field",
			html: `<body>
				<input type="hidden" name="csrf">
				<textarea id="singlish-box" hidden></textarea>
				<input type="text" name="singlish">
			</body>`,
			wantStrategy: "input-identifier-cue",
			wantDesc:     "input",
		},
		{
			name: "container cue",
			html: `<body>
				<textarea id="decoy" style="display:none"></textarea>
				<div class="inputArea"><textarea id="in"></textarea></div>
			</body>`,
			wantStrategy: "input-container-cue",
			wantDesc:     "textarea#in",
		},
		{
			name: "text input counts as a field",
			html: `<body>
				<input type="text" id="entry">
			</body>`,
			wantStrategy: "first-field",
			wantDesc:     "input#entry",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parseHTML(t, tt.html)
			el, strategy, found := DiscoverStatic(doc, RoleInput)
			if !found {
				t.Fatal("DiscoverStatic() found nothing")
			}
			if strategy != tt.wantStrategy {
				t.Errorf("strategy = %q, want %q", strategy, tt.wantStrategy)
			}
			if got := Describe(el); got != tt.wantDesc {
				t.Errorf("matched element = %s, want %s", got, tt.wantDesc)
			}
		})
	}
}

func TestDiscoverStaticInputAnyFieldResort(t *testing.T) {
	// First field hidden, no cues anywhere: the any-field step scans all
	// fields and settles on the first visible one.
	doc := parseHTML(t, `<body>
		<textarea id="decoy" style="display:none"></textarea>
		<textarea id="second"></textarea>
	</body>`)

	el, strategy, found := DiscoverStatic(doc, RoleInput)
	if !found {
		t.Fatal("DiscoverStatic() found nothing")
	}
	if strategy != "any-field" {
		t.Errorf("strategy = %q, want any-field", strategy)
	}
	if got := Describe(el); got != "textarea#second" {
		t.Errorf("matched element = %s, want textarea#second", got)
	}
}

func TestDiscoverStaticInputFallback(t *testing.T) {
	// Every field carries a hidden marker: no strategy passes the
	// visibility check, but the structural fallback still tags the first
	// field unconditionally.
	doc := parseHTML(t, `<body>
		<div hidden><textarea id="first"></textarea></div>
		<div hidden><textarea id="second"></textarea></div>
	</body>`)

	el, strategy, found := DiscoverStatic(doc, RoleInput)
	if !found {
		t.Fatal("fallback should still return a handle")
	}
	if strategy != FallbackStrategy {
		t.Errorf("strategy = %q, want %q", strategy, FallbackStrategy)
	}
	if got := Describe(el); got != "textarea#first" {
		t.Errorf("fallback element = %s, want textarea#first", got)
	}
}

func TestDiscoverStaticInputNoFields(t *testing.T) {
	doc := parseHTML(t, `<body><p>no form here</p></body>`)

	el, strategy, found := DiscoverStatic(doc, RoleInput)
	if found {
		t.Errorf("DiscoverStatic() = %s via %q, want not found", Describe(el), strategy)
	}
}

func TestDiscoverStaticOutput(t *testing.T) {
	tests := []struct {
		name         string
		html         string
		wantStrategy string
		wantDesc     string
	}{
		{
			name: "placeholder cue",
			html: `<body>
				<textarea id="in"></textarea>
				<textarea placeholder="Sinhala appears here" id="out"></textarea>
			</body>`,
			wantStrategy: "output-placeholder-cue",
			wantDesc:     "textarea#out",
		},
		{
			name: "identifier cue on a display container",
			html: `<body>
				<textarea id="in"></textarea>
				<div id="unicode-result">මම</div>
			</body>`,
			wantStrategy: "output-identifier-cue",
			wantDesc:     "div#unicode-result",
		},
		{
			name: "container cue on a classed div",
			html: `<body>
				<textarea id="in"></textarea>
				<div class="result-box">මම</div>
			</body>`,
			wantStrategy: "output-container-cue",
			wantDesc:     "div.result-box",
		},
		{
			name: "readonly field",
			html: `<body>
				<textarea id="in"></textarea>
				<textarea id="display" readonly></textarea>
			</body>`,
			wantStrategy: "readonly-field",
			wantDesc:     "textarea#display",
		},
		{
			name: "field nested under cue container beats classed div",
			html: `<body>
				<textarea id="in"></textarea>
				<div class="outputPane"><textarea id="out"></textarea></div>
			</body>`,
			wantStrategy: "output-container-cue",
			wantDesc:     "textarea#out",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parseHTML(t, tt.html)
			el, strategy, found := DiscoverStatic(doc, RoleOutput)
			if !found {
				t.Fatal("DiscoverStatic() found nothing")
			}
			if strategy != tt.wantStrategy {
				t.Errorf("strategy = %q, want %q", strategy, tt.wantStrategy)
			}
			if got := Describe(el); got != tt.wantDesc {
				t.Errorf("matched element = %s, want %s", got, tt.wantDesc)
			}
		})
	}
}

func TestDiscoverStaticOutputFallbackPrefersSecond(t *testing.T) {
	doc := parseHTML(t, `<body>
		<textarea id="first"></textarea>
		<textarea id="second"></textarea>
		<textarea id="third"></textarea>
	</body>`)

	el, strategy, found := DiscoverStatic(doc, RoleOutput)
	if !found {
		t.Fatal("DiscoverStatic() found nothing")
	}
	if strategy != FallbackStrategy {
		t.Errorf("strategy = %q, want %q", strategy, FallbackStrategy)
	}
	if got := Describe(el); got != "textarea#second" {
		t.Errorf("fallback element = %s, want the second field", got)
	}
}

func TestDiscoverStaticOutputFallbackSingleField(t *testing.T) {
	doc := parseHTML(t, `<body><textarea id="only"></textarea></body>`)

	el, _, found := DiscoverStatic(doc, RoleOutput)
	if !found {
		t.Fatal("DiscoverStatic() found nothing")
	}
	if got := Describe(el); got != "textarea#only" {
		t.Errorf("fallback element = %s, want the only field", got)
	}
}

func TestStaticallyVisibleAncestorHiding(t *testing.T) {
	doc := parseHTML(t, `<body>
		<div style="display: none"><textarea id="buried"></textarea></div>
	</body>`)

	el := doc.Find("#buried")
	if staticallyVisible(el) {
		t.Error("field under a display:none ancestor should not count as visible")
	}
}

func TestDescribe(t *testing.T) {
	doc := parseHTML(t, `<body><textarea id="in" class="big wide"></textarea></body>`)

	if got := Describe(doc.Find("textarea")); got != "textarea#in.big.wide" {
		t.Errorf("Describe() = %q", got)
	}
	if got := Describe(nil); got != "(none)" {
		t.Errorf("Describe(nil) = %q, want (none)", got)
	}
	if got := Describe(doc.Find("#missing")); got != "(none)" {
		t.Errorf("Describe(empty) = %q, want (none)", got)
	}
}
