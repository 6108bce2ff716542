// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/ucb-pesa/pesa-dashboard/internal/dashboard"
	"github.com/ucb-pesa/pesa-dashboard/internal/impact"
	"go.uber.org/zap"
)

// FindScenario finds a scenario by name in the comparison slice.
// Returns a pointer to the result if found, nil otherwise.
func FindScenario(results []impact.ScenarioImpact, name string) *impact.ScenarioImpact {
	for i := range results {
		if results[i].Scenario.Name == name {
			return &results[i]
		}
	}
	return nil
}

// DefaultSnapshot renders the dashboard with default assumptions and the
// given selection. It panics on error since the defaults are known to be valid.
func DefaultSnapshot(year, scenario, section string) dashboard.Snapshot {
	view := dashboard.NewView(zap.NewNop(), impact.Default(), dashboard.State{
		Year:     year,
		Scenario: scenario,
		Section:  section,
	})
	snap, err := view.Snapshot()
	if err != nil {
		panic(err)
	}
	return snap
}
