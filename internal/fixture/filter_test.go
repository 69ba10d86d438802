package fixture

import (
	"reflect"
	"testing"

	"github.com/udara780/IT23265660/internal/models"
)

func TestFilter(t *testing.T) {
	tests := []struct {
		name    string
		cases   []models.TestCase
		wantIDs []string
	}{
		{
			name: "keeps valid cases in order",
			cases: []models.TestCase{
				{ID: "TC01", Input: "mama"},
				{ID: "TC02", Input: "oyaa"},
				{ID: "TC03", Input: "api"},
			},
			wantIDs: []string{"TC01", "TC02", "TC03"},
		},
		{
			name: "drops empty id",
			cases: []models.TestCase{
				{ID: "", Input: "mama"},
				{ID: "TC02", Input: "oyaa"},
			},
			wantIDs: []string{"TC02"},
		},
		{
			name: "drops whitespace-only input",
			cases: []models.TestCase{
				{ID: "TC01", Input: "  "},
				{ID: "TC02", Input: "oyaa"},
			},
			wantIDs: []string{"TC02"},
		},
		{
			name: "first duplicate wins",
			cases: []models.TestCase{
				{ID: "TC01", Input: "mama", Name: "first"},
				{ID: "TC01", Input: "oyaa", Name: "second"},
				{ID: "TC02", Input: "api"},
			},
			wantIDs: []string{"TC01", "TC02"},
		},
		{
			name:    "empty input set",
			cases:   nil,
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kept := Filter(tt.cases)

			gotIDs := make([]string, 0, len(kept))
			for _, c := range kept {
				gotIDs = append(gotIDs, c.ID)
			}
			if !reflect.DeepEqual(gotIDs, tt.wantIDs) {
				t.Errorf("Filter() kept %v, want %v", gotIDs, tt.wantIDs)
			}
		})
	}
}

func TestFilterKeepsFirstOccurrenceFields(t *testing.T) {
	kept := Filter([]models.TestCase{
		{ID: "TC01", Input: "mama", Name: "original"},
		{ID: "TC01", Input: "different", Name: "duplicate"},
	})

	if len(kept) != 1 {
		t.Fatalf("Filter() kept %d cases, want 1", len(kept))
	}
	if kept[0].Name != "original" || kept[0].Input != "mama" {
		t.Errorf("Filter() kept %+v, want the first occurrence", kept[0])
	}
}

func TestFilterIdempotent(t *testing.T) {
	cases := []models.TestCase{
		{ID: "TC01", Input: "mama"},
		{ID: "", Input: "oyaa"},
		{ID: "TC01", Input: "api"},
		{ID: "TC02", Input: "kohomada"},
		{ID: "TC03", Input: "   "},
	}

	once := Filter(cases)
	twice := Filter(once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Filter() is not idempotent:\nonce:  %v\ntwice: %v", once, twice)
	}
}
