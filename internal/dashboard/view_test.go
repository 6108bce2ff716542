package dashboard

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/ucb-pesa/pesa-dashboard/internal/impact"
	"go.uber.org/zap"
)

func newTestView() *View {
	return NewView(zap.NewNop(), impact.Default(), State{Year: "2029", Scenario: "Moderado", Section: "growth"})
}

func TestSelectionOperations(t *testing.T) {
	view := newTestView()

	view.SelectYear("2027")
	view.SelectScenario("Otimista")
	view.SelectSection("financial")
	view.ToggleMobileMenu()

	state := view.State()
	if state.Year != "2027" || state.Scenario != "Otimista" || state.Section != "financial" {
		t.Fatalf("unexpected state %+v", state)
	}
	if !state.MobileMenuOpen {
		t.Fatal("expected mobile menu to be open")
	}

	view.ToggleMobileMenu()
	if view.State().MobileMenuOpen {
		t.Fatal("expected mobile menu to be closed after second toggle")
	}

	phase, ok := view.SelectedPhase()
	if !ok || phase.Phase != "Expansão" {
		t.Fatalf("expected Expansão phase, got %+v (found=%v)", phase, ok)
	}
	section, ok := view.ActiveSection()
	if !ok || section.ID != "financial" {
		t.Fatalf("expected financial section, got %+v (found=%v)", section, ok)
	}
}

func TestUnknownKeysYieldAbsentSelections(t *testing.T) {
	view := newTestView()
	view.SelectYear("1999")
	view.SelectScenario("Catastrófico")
	view.SelectSection("nowhere")

	if _, ok := view.SelectedPhase(); ok {
		t.Error("expected no phase for unknown year")
	}
	if _, ok := view.SelectedScenario(); ok {
		t.Error("expected no scenario for unknown name")
	}
	if _, ok := view.ActiveSection(); ok {
		t.Error("expected no section for unknown id")
	}

	result, ok, err := view.SelectedImpact()
	if err != nil {
		t.Fatalf("SelectedImpact() error = %v", err)
	}
	if ok || result != (impact.Impact{}) {
		t.Fatalf("expected absent impact, got %+v", result)
	}

	composition, err := view.ImpactComposition()
	if err != nil {
		t.Fatalf("ImpactComposition() error = %v", err)
	}
	if len(composition) != 0 {
		t.Fatalf("expected empty composition, got %v", composition)
	}

	snap, err := view.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if snap.SelectedPhase != nil || snap.SelectedScenario != nil || snap.SelectedImpact != nil || snap.ActiveSection != nil {
		t.Fatalf("expected nil selections in snapshot, got %+v", snap)
	}
	if len(snap.Scenarios) != 3 {
		t.Fatalf("expected scenario comparison to remain available, got %d rows", len(snap.Scenarios))
	}
}

func TestSelectedImpactFollowsScenario(t *testing.T) {
	view := newTestView()

	result, ok, err := view.SelectedImpact()
	if err != nil || !ok {
		t.Fatalf("SelectedImpact() = %v, %v", ok, err)
	}
	if result.RetainedStudents != 600 {
		t.Fatalf("expected 600 retained students for Moderado, got %d", result.RetainedStudents)
	}

	view.SelectScenario("Conservador")
	result, _, _ = view.SelectedImpact()
	if result.TotalImpact != 5070000 {
		t.Fatalf("expected total impact 5070000 for Conservador, got %.2f", result.TotalImpact)
	}
}

func TestOverridesAreWiredIntoCalculator(t *testing.T) {
	view := newTestView()
	view.SetTotalStudents(10000)
	view.SetMonthlyTuition(1000)

	a := view.Assumptions()
	if a.TotalStudents != 10000 || a.MonthlyTuition != 1000 {
		t.Fatalf("overrides not applied: %+v", a)
	}

	result, ok, err := view.SelectedImpact()
	if err != nil || !ok {
		t.Fatalf("SelectedImpact() = %v, %v", ok, err)
	}
	if result.RetainedStudents != 400 {
		t.Fatalf("expected 400 retained students, got %d", result.RetainedStudents)
	}
	if result.RecoveredRevenue != 400*12000 {
		t.Fatalf("expected recovered revenue 4800000, got %.2f", result.RecoveredRevenue)
	}

	view.ResetOverrides()
	if view.Assumptions() != impact.Default() {
		t.Fatalf("expected default assumptions after reset, got %+v", view.Assumptions())
	}
}

func TestInvalidOverrideSurfacesError(t *testing.T) {
	view := newTestView()
	view.SetTotalStudents(0)

	if _, _, err := view.SelectedImpact(); !errors.Is(err, impact.ErrInvalidAssumptions) {
		t.Fatalf("expected ErrInvalidAssumptions, got %v", err)
	}
	if _, err := view.Snapshot(); !errors.Is(err, impact.ErrInvalidAssumptions) {
		t.Fatalf("expected snapshot to fail with ErrInvalidAssumptions, got %v", err)
	}
}

func TestStateReturnsCopies(t *testing.T) {
	tuition := 900.0
	view := NewView(nil, impact.Default(), State{MonthlyTuition: &tuition})
	tuition = 1

	state := view.State()
	if state.MonthlyTuition == nil || *state.MonthlyTuition != 900 {
		t.Fatalf("initial override was aliased: %+v", state.MonthlyTuition)
	}
	*state.MonthlyTuition = 5
	if view.Assumptions().MonthlyTuition != 900 {
		t.Fatal("State() exposed internal override pointer")
	}
}

func TestSnapshotIsDeterministic(t *testing.T) {
	view := newTestView()
	view.SelectYear("2028")

	first, err := view.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	second, err := view.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Fatal("expected identical snapshots for identical state")
	}

	if first.SelectedPhase == nil || first.SelectedPhase.Year != "2028" {
		t.Fatalf("expected 2028 phase, got %+v", first.SelectedPhase)
	}
	if first.SelectedImpact == nil || len(first.ImpactComposition) != 2 {
		t.Fatalf("expected selected impact and composition, got %+v", first)
	}
	if first.ThematicTotal != 1369 {
		t.Fatalf("expected thematic total 1369, got %d", first.ThematicTotal)
	}
}
