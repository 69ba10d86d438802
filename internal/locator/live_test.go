package locator

import (
	"strings"
	"testing"
)

func TestDiscoveryScript(t *testing.T) {
	tests := []struct {
		role          Role
		wantFragments []string
	}{
		{
			role: RoleInput,
			wantFragments: []string{
				`"role":"input"`,
				`"preferSecond":false`,
				`"name":"first-field"`,
				`"singlish"`,
				FallbackStrategy,
				TagAttribute,
			},
		},
		{
			role: RoleOutput,
			wantFragments: []string{
				`"role":"output"`,
				`"preferSecond":true`,
				`"name":"readonly-field"`,
				`"sinhala"`,
				`"unicode"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			script, err := discoveryScript(tt.role)
			if err != nil {
				t.Fatalf("discoveryScript() error = %v", err)
			}

			if !strings.HasPrefix(script, "(() => {") || !strings.HasSuffix(script, "})()") {
				t.Error("script must be a self-invoking expression so Evaluate returns its value")
			}
			for _, frag := range tt.wantFragments {
				if !strings.Contains(script, frag) {
					t.Errorf("script for %s is missing %q", tt.role, frag)
				}
			}
		})
	}
}

func TestDiscoveryScriptEmbedsEveryStrategy(t *testing.T) {
	for _, role := range []Role{RoleInput, RoleOutput} {
		script, err := discoveryScript(role)
		if err != nil {
			t.Fatalf("discoveryScript(%s) error = %v", role, err)
		}
		for _, s := range StrategiesFor(role) {
			if !strings.Contains(script, `"`+s.Name+`"`) {
				t.Errorf("script for %s is missing strategy %q", role, s.Name)
			}
		}
	}
}
