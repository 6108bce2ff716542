// Package impact computes the financial impact of reducing student attrition:
// students retained, tuition revenue recovered, acquisition cost avoided and
// the resulting return on the program's cost.
package impact

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ucb-pesa/pesa-dashboard/internal/dataset"
	"github.com/ucb-pesa/pesa-dashboard/pkg/constants"
	"github.com/ucb-pesa/pesa-dashboard/pkg/mathutil"
)

var (
	// ErrInvalidReduction is returned when a reduction is not a finite fraction in (0, 1].
	ErrInvalidReduction = errors.New("reduction must be a finite fraction in (0, 1]")

	// ErrInvalidAssumptions is returned when the calculator assumptions fail validation.
	ErrInvalidAssumptions = errors.New("invalid assumptions")
)

var validate = validator.New()

// Assumptions are the institutional constants the calculator runs against.
type Assumptions struct {
	TotalStudents  int     `json:"totalStudents" yaml:"totalStudents" validate:"gt=0,lte=1000000000"`
	MonthlyTuition float64 `json:"monthlyTuition" yaml:"monthlyTuition" validate:"gte=0"`
	CAC            float64 `json:"cac" yaml:"cac" validate:"gte=0"`
	ProgramCost    float64 `json:"programCost" yaml:"programCost" validate:"gt=0"`
}

// Default returns the assumptions of the program's reference model.
func Default() Assumptions {
	return Assumptions{
		TotalStudents:  constants.DefaultTotalStudents,
		MonthlyTuition: constants.DefaultMonthlyTuition,
		CAC:            constants.DefaultCAC,
		ProgramCost:    constants.DefaultProgramCost,
	}
}

// AnnualTuition is twelve months of tuition.
func (a Assumptions) AnnualTuition() float64 {
	return a.MonthlyTuition * constants.MonthsPerYear
}

// Validate checks the assumptions and returns an error wrapping
// ErrInvalidAssumptions that names every offending field.
func (a Assumptions) Validate() error {
	for _, v := range []float64{a.MonthlyTuition, a.CAC, a.ProgramCost} {
		if !mathutil.IsFinite(v) {
			return fmt.Errorf("%w: values must be finite", ErrInvalidAssumptions)
		}
	}

	err := validate.Struct(a)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidAssumptions, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s must be %s %s", fe.Field(), describeTag(fe.Tag()), fe.Param()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidAssumptions, strings.Join(msgs, "; "))
}

func describeTag(tag string) string {
	switch tag {
	case "gt":
		return "greater than"
	case "gte":
		return "at least"
	case "lte":
		return "at most"
	default:
		return tag
	}
}

// Impact is the derived financial outcome of one reduction.
type Impact struct {
	Reduction        float64 `json:"reduction" yaml:"reduction"`
	RetainedStudents int     `json:"retainedStudents" yaml:"retainedStudents"`
	RecoveredRevenue float64 `json:"recoveredRevenue" yaml:"recoveredRevenue"`
	CACSavings       float64 `json:"cacSavings" yaml:"cacSavings"`
	TotalImpact      float64 `json:"totalImpact" yaml:"totalImpact"`
	ROI              float64 `json:"roi" yaml:"roi"` // percent
	// PaybackMonths is only meaningful when PaybackDefined is true; a program
	// that recovers nothing never pays back.
	PaybackMonths  float64 `json:"paybackMonths" yaml:"paybackMonths"`
	PaybackDefined bool    `json:"paybackDefined" yaml:"paybackDefined"`
}

// ValidateReduction reports whether reduction is usable by Calculate.
func ValidateReduction(reduction float64) error {
	if !mathutil.IsFinite(reduction) || reduction <= 0 || reduction > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidReduction, reduction)
	}
	return nil
}

// Calculate evaluates the impact of reducing attrition by the given fraction.
// It is a pure function of its arguments.
func Calculate(a Assumptions, reduction float64) (Impact, error) {
	if err := ValidateReduction(reduction); err != nil {
		return Impact{}, err
	}
	if err := a.Validate(); err != nil {
		return Impact{}, err
	}

	retained := mathutil.FloorCount(float64(a.TotalStudents) * reduction)
	recovered := float64(retained) * a.AnnualTuition()
	savings := float64(retained) * a.CAC
	total := recovered + savings

	result := Impact{
		Reduction:        reduction,
		RetainedStudents: retained,
		RecoveredRevenue: recovered,
		CACSavings:       savings,
		TotalImpact:      total,
		ROI:              (total - a.ProgramCost) / a.ProgramCost * constants.PercentageMultiplier,
	}
	if total > 0 && !mathutil.IsZero(total) {
		result.PaybackMonths = a.ProgramCost / total * constants.MonthsPerYear
		result.PaybackDefined = true
	}
	for _, v := range []float64{recovered, savings, total, result.ROI, result.PaybackMonths} {
		if !mathutil.IsFinite(v) {
			return Impact{}, fmt.Errorf("%w: results overflow for the given values", ErrInvalidAssumptions)
		}
	}
	return result, nil
}

// ScenarioImpact pairs a scenario preset with its computed impact.
type ScenarioImpact struct {
	Scenario dataset.FinancialScenario `json:"scenario" yaml:"scenario"`
	Impact   Impact                    `json:"impact" yaml:"impact"`
}

// CalculateScenario evaluates a scenario preset.
func CalculateScenario(a Assumptions, scenario dataset.FinancialScenario) (ScenarioImpact, error) {
	result, err := Calculate(a, scenario.Reduction)
	if err != nil {
		return ScenarioImpact{}, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}
	return ScenarioImpact{Scenario: scenario, Impact: result}, nil
}

// CompareScenarios evaluates every scenario in order. The first failure aborts
// the comparison.
func CompareScenarios(a Assumptions, scenarios []dataset.FinancialScenario) ([]ScenarioImpact, error) {
	results := make([]ScenarioImpact, 0, len(scenarios))
	for _, scenario := range scenarios {
		result, err := CalculateScenario(a, scenario)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// CompositionItem is one component of the total impact.
type CompositionItem struct {
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
	Share float64 `json:"share" yaml:"share"` // percent of total impact
}

// Composition splits the total impact into recovered revenue and CAC
// savings. Shares are zero when the total impact is zero.
func Composition(result Impact) []CompositionItem {
	return []CompositionItem{
		{
			Name:  "Receita Recuperada",
			Value: result.RecoveredRevenue,
			Share: mathutil.Round(mathutil.CalculatePercentage(result.RecoveredRevenue, result.TotalImpact)),
		},
		{
			Name:  "Economia de CAC",
			Value: result.CACSavings,
			Share: mathutil.Round(mathutil.CalculatePercentage(result.CACSavings, result.TotalImpact)),
		},
	}
}
