// Package dashboard holds the selection state of one dashboard viewer and
// derives every chart-ready dataset from it.
//
// A View belongs to a single caller and is not safe for concurrent use. Each
// setter replaces one piece of state without validation; a key that matches
// no record simply yields an absent derived value.
package dashboard

import (
	"github.com/ucb-pesa/pesa-dashboard/internal/dataset"
	"github.com/ucb-pesa/pesa-dashboard/internal/impact"
	"go.uber.org/zap"
)

// State is the raw selection of a viewer.
type State struct {
	Year           string   `json:"year"`
	Scenario       string   `json:"scenario"`
	Section        string   `json:"section"`
	MobileMenuOpen bool     `json:"mobileMenuOpen"`
	MonthlyTuition *float64 `json:"monthlyTuition,omitempty"` // slider override
	TotalStudents  *int     `json:"totalStudents,omitempty"`  // slider override
}

// View is the view model of the dashboard page.
type View struct {
	logger *zap.Logger
	base   impact.Assumptions
	state  State
}

// NewView creates a view with the given base assumptions and initial
// selection.
func NewView(logger *zap.Logger, base impact.Assumptions, initial State) *View {
	if logger == nil {
		logger = zap.NewNop()
	}
	initial.MonthlyTuition = copyFloat(initial.MonthlyTuition)
	initial.TotalStudents = copyInt(initial.TotalStudents)
	return &View{logger: logger, base: base, state: initial}
}

// State returns a copy of the current selection.
func (v *View) State() State {
	s := v.state
	s.MonthlyTuition = copyFloat(s.MonthlyTuition)
	s.TotalStudents = copyInt(s.TotalStudents)
	return s
}

// SelectYear replaces the selected roadmap year.
func (v *View) SelectYear(year string) {
	v.logger.Debug("year selected", zap.String("op", "dashboard.SelectYear"), zap.String("year", year))
	v.state.Year = year
}

// SelectScenario replaces the selected financial scenario.
func (v *View) SelectScenario(name string) {
	v.logger.Debug("scenario selected", zap.String("op", "dashboard.SelectScenario"), zap.String("scenario", name))
	v.state.Scenario = name
}

// SelectSection replaces the active navigation section.
func (v *View) SelectSection(id string) {
	v.logger.Debug("section selected", zap.String("op", "dashboard.SelectSection"), zap.String("section", id))
	v.state.Section = id
}

// ToggleMobileMenu flips the mobile menu between open and closed.
func (v *View) ToggleMobileMenu() {
	v.state.MobileMenuOpen = !v.state.MobileMenuOpen
}

// SetMonthlyTuition overrides the monthly tuition used by the calculator.
func (v *View) SetMonthlyTuition(tuition float64) {
	v.state.MonthlyTuition = &tuition
}

// SetTotalStudents overrides the student base used by the calculator.
func (v *View) SetTotalStudents(students int) {
	v.state.TotalStudents = &students
}

// ResetOverrides drops the slider overrides.
func (v *View) ResetOverrides() {
	v.state.MonthlyTuition = nil
	v.state.TotalStudents = nil
}

// Assumptions returns the base assumptions with the slider overrides applied.
func (v *View) Assumptions() impact.Assumptions {
	a := v.base
	if v.state.MonthlyTuition != nil {
		a.MonthlyTuition = *v.state.MonthlyTuition
	}
	if v.state.TotalStudents != nil {
		a.TotalStudents = *v.state.TotalStudents
	}
	return a
}

// SelectedPhase returns the maturity phase of the selected year.
func (v *View) SelectedPhase() (dataset.MaturityPhase, bool) {
	return dataset.PhaseByYear(v.state.Year)
}

// SelectedScenario returns the selected financial scenario.
func (v *View) SelectedScenario() (dataset.FinancialScenario, bool) {
	return dataset.ScenarioByName(v.state.Scenario)
}

// ActiveSection returns the active navigation section.
func (v *View) ActiveSection() (dataset.Section, bool) {
	return dataset.SectionByID(v.state.Section)
}

// SelectedImpact computes the impact of the selected scenario. The boolean is
// false when no scenario is selected; the error reports invalid overrides.
func (v *View) SelectedImpact() (impact.Impact, bool, error) {
	scenario, ok := v.SelectedScenario()
	if !ok {
		return impact.Impact{}, false, nil
	}
	result, err := impact.Calculate(v.Assumptions(), scenario.Reduction)
	if err != nil {
		return impact.Impact{}, false, err
	}
	return result, true, nil
}

// ScenarioComparison evaluates every scenario preset under the current
// assumptions.
func (v *View) ScenarioComparison() ([]impact.ScenarioImpact, error) {
	return impact.CompareScenarios(v.Assumptions(), dataset.Scenarios())
}

// ImpactComposition splits the selected scenario's impact into its
// components. It is empty when no scenario is selected.
func (v *View) ImpactComposition() ([]impact.CompositionItem, error) {
	result, ok, err := v.SelectedImpact()
	if err != nil || !ok {
		return nil, err
	}
	return impact.Composition(result), nil
}

func copyFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
