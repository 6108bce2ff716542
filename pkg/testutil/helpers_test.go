package testutil

import (
	"testing"

	"github.com/ucb-pesa/pesa-dashboard/internal/dataset"
	"github.com/ucb-pesa/pesa-dashboard/internal/impact"
)

func TestFindScenario(t *testing.T) {
	results, err := impact.CompareScenarios(impact.Default(), dataset.Scenarios())
	if err != nil {
		t.Fatalf("CompareScenarios() error = %v", err)
	}

	tests := []struct {
		name     string
		lookup   string
		found    bool
		retained int
	}{
		{"existing scenario", "Otimista", true, 900},
		{"missing scenario", "Pessimista", false, 0},
		{"empty name", "", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindScenario(results, tt.lookup)
			if (got != nil) != tt.found {
				t.Fatalf("FindScenario(%q) found = %v, expected %v", tt.lookup, got != nil, tt.found)
			}
			if got != nil && got.Impact.RetainedStudents != tt.retained {
				t.Errorf("expected %d retained students, got %d", tt.retained, got.Impact.RetainedStudents)
			}
		})
	}
}

func TestFindScenarioReturnsPointerIntoSlice(t *testing.T) {
	results := []impact.ScenarioImpact{{Scenario: dataset.FinancialScenario{Name: "a"}}}
	got := FindScenario(results, "a")
	got.Impact.RetainedStudents = 7
	if results[0].Impact.RetainedStudents != 7 {
		t.Fatal("expected FindScenario to return a pointer into the slice")
	}
}

func TestDefaultSnapshot(t *testing.T) {
	snap := DefaultSnapshot("2029", "Moderado", "growth")
	if snap.SelectedPhase == nil || snap.SelectedScenario == nil || snap.ActiveSection == nil {
		t.Fatalf("expected every selection to resolve, got %+v", snap)
	}
}
