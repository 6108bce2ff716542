package dashboard

import (
	"fmt"

	"github.com/ucb-pesa/pesa-dashboard/internal/dataset"
	"github.com/ucb-pesa/pesa-dashboard/internal/impact"
	"go.uber.org/zap"
)

// Snapshot is the serializable rendering of a View: the selection, the
// lookups it resolves to and every dataset the page draws. Absent selections
// are nil.
type Snapshot struct {
	State       State              `json:"state" yaml:"state"`
	Assumptions impact.Assumptions `json:"assumptions" yaml:"assumptions"`

	Sections      []dataset.Section `json:"sections" yaml:"sections"`
	ActiveSection *dataset.Section  `json:"activeSection" yaml:"activeSection"`

	Growth        []dataset.GrowthRecord  `json:"growth" yaml:"growth"`
	GrowthSummary []dataset.GrowthMetric  `json:"growthSummary" yaml:"growthSummary"`
	Thematic      []dataset.ThematicShare `json:"thematic" yaml:"thematic"`
	ThematicTotal int                     `json:"thematicTotal" yaml:"thematicTotal"`

	Maturity      []dataset.MaturityPhase `json:"maturity" yaml:"maturity"`
	SelectedPhase *dataset.MaturityPhase  `json:"selectedPhase" yaml:"selectedPhase"`

	Scenarios         []impact.ScenarioImpact    `json:"scenarios" yaml:"scenarios"`
	SelectedScenario  *dataset.FinancialScenario `json:"selectedScenario" yaml:"selectedScenario"`
	SelectedImpact    *impact.Impact             `json:"selectedImpact" yaml:"selectedImpact"`
	ImpactComposition []impact.CompositionItem   `json:"impactComposition" yaml:"impactComposition"`

	Mentorship         []dataset.MentorshipRecord         `json:"mentorship" yaml:"mentorship"`
	Stay360            []dataset.Stay360Record            `json:"stay360" yaml:"stay360"`
	ScholarshipWelcome []dataset.ScholarshipWelcomeRecord `json:"scholarshipWelcome" yaml:"scholarshipWelcome"`
	Research           []dataset.ResearchRecord           `json:"research" yaml:"research"`
	Highlights         []dataset.Highlight                `json:"highlights" yaml:"highlights"`
}

// Snapshot renders the current state. It fails only when the slider
// overrides make the calculator assumptions invalid.
func (v *View) Snapshot() (Snapshot, error) {
	snap := Snapshot{
		State:              v.State(),
		Assumptions:        v.Assumptions(),
		Sections:           dataset.Sections(),
		Growth:             dataset.Growth(),
		GrowthSummary:      dataset.GrowthSummary(),
		Thematic:           dataset.ThematicShares(),
		ThematicTotal:      dataset.ThematicTotal(),
		Maturity:           dataset.Maturity(),
		Mentorship:         dataset.Mentorship(),
		Stay360:            dataset.Stay360(),
		ScholarshipWelcome: dataset.ScholarshipWelcome(),
		Research:           dataset.Research(),
		Highlights:         dataset.Highlights(),
	}

	if section, ok := v.ActiveSection(); ok {
		snap.ActiveSection = &section
	}
	if phase, ok := v.SelectedPhase(); ok {
		snap.SelectedPhase = &phase
	}

	comparison, err := v.ScenarioComparison()
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to compare scenarios: %w", err)
	}
	snap.Scenarios = comparison

	if scenario, ok := v.SelectedScenario(); ok {
		snap.SelectedScenario = &scenario
		for _, row := range comparison {
			if row.Scenario.Name == scenario.Name {
				result := row.Impact
				snap.SelectedImpact = &result
				snap.ImpactComposition = impact.Composition(result)
				break
			}
		}
	}

	v.logger.Debug("snapshot rendered",
		zap.String("op", "dashboard.Snapshot"),
		zap.String("year", snap.State.Year),
		zap.String("scenario", snap.State.Scenario),
		zap.Bool("phaseSelected", snap.SelectedPhase != nil),
		zap.Bool("scenarioSelected", snap.SelectedScenario != nil),
	)

	return snap, nil
}
