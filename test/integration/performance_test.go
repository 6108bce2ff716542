package integration

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/ucb-pesa/pesa-dashboard/internal/dashboard"
	"github.com/ucb-pesa/pesa-dashboard/internal/impact"
	"go.uber.org/zap"
)

// TestPerformance renders the dashboard repeatedly and checks it stays fast.
func TestPerformance(t *testing.T) {
	view := dashboard.NewView(zap.NewNop(), impact.Default(), dashboard.State{Year: "2029", Scenario: "Moderado"})

	start := time.Now()
	for i := 0; i < 1000; i++ {
		if _, err := view.Snapshot(); err != nil {
			t.Fatalf("Snapshot() error on iteration %d: %v", i, err)
		}
	}
	elapsed := time.Since(start)

	t.Logf("Rendered 1000 snapshots in %v", elapsed)
	if elapsed > 5*time.Second {
		t.Errorf("rendering time %v exceeds 5 second threshold", elapsed)
	}
}

// TestDataConsistency validates that repeated selections produce identical
// results.
func TestDataConsistency(t *testing.T) {
	view := dashboard.NewView(zap.NewNop(), impact.Default(), dashboard.State{})

	render := func() string {
		view.SelectYear("2027")
		view.SelectScenario("Conservador")
		view.SelectSection("maturity")
		snap, err := view.Snapshot()
		if err != nil {
			t.Fatalf("Snapshot() error = %v", err)
		}
		data, err := json.Marshal(snap)
		if err != nil {
			t.Fatalf("json.Marshal() error = %v", err)
		}
		return string(data)
	}

	first := render()
	view.SelectYear("2029")
	view.SelectScenario("Otimista")
	if second := render(); second != first {
		t.Fatal("expected identical snapshots for identical selections")
	}
}

func BenchmarkSnapshot(b *testing.B) {
	view := dashboard.NewView(zap.NewNop(), impact.Default(), dashboard.State{Year: "2029", Scenario: "Moderado"})
	for i := 0; i < b.N; i++ {
		if _, err := view.Snapshot(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCalculate(b *testing.B) {
	a := impact.Default()
	for i := 0; i < b.N; i++ {
		if _, err := impact.Calculate(a, 0.04); err != nil {
			b.Fatal(err)
		}
	}
}
