package main

import (
	"github.com/spf13/cobra"
	"github.com/ucb-pesa/pesa-dashboard/internal/config"
	"github.com/ucb-pesa/pesa-dashboard/internal/dashboard"
	"go.uber.org/zap"
)

// selectionFlags are the view selection flags shared by report and export.
type selectionFlags struct {
	year     string
	scenario string
	section  string
	tuition  float64
	students int
}

func (s *selectionFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&s.year, "year", "", "roadmap year to highlight (default from configuration)")
	flags.StringVar(&s.scenario, "scenario", "", "financial scenario to highlight (default from configuration)")
	flags.StringVar(&s.section, "section", "", "active dashboard section (default from configuration)")
	flags.Float64Var(&s.tuition, "tuition", 0, "monthly tuition override in BRL")
	flags.IntVar(&s.students, "students", 0, "total students override")
}

// view builds a dashboard view from the configuration defaults and the flags
// the user actually set.
func (s *selectionFlags) view(cmd *cobra.Command, logger *zap.Logger, conf *config.Configuration) *dashboard.View {
	state := dashboard.State{
		Year:     conf.Defaults.Year,
		Scenario: conf.Defaults.Scenario,
		Section:  conf.Defaults.Section,
	}
	flags := cmd.Flags()
	if flags.Changed("year") {
		state.Year = s.year
	}
	if flags.Changed("scenario") {
		state.Scenario = s.scenario
	}
	if flags.Changed("section") {
		state.Section = s.section
	}

	view := dashboard.NewView(logger, conf.Assumptions, state)
	if flags.Changed("tuition") {
		view.SetMonthlyTuition(s.tuition)
	}
	if flags.Changed("students") {
		view.SetTotalStudents(s.students)
	}
	return view
}
