// Package dataset holds the static reference data presented by the dashboard:
// participation growth, thematic workshops, the maturity roadmap, the
// financial scenario presets and the program tallies.
//
// Every table is immutable. Accessors return copies so that callers can sort
// or annotate rows without affecting other readers.
package dataset

import (
	"math"

	"github.com/ucb-pesa/pesa-dashboard/pkg/mathutil"
)

// GrowthRecord is the participation tally of one semester.
type GrowthRecord struct {
	Period          string `json:"period" yaml:"period"`
	Participants    int    `json:"participants" yaml:"participants"`
	Workshops       int    `json:"workshops" yaml:"workshops"`
	AvgParticipants int    `json:"avgParticipants" yaml:"avgParticipants"`
}

// ThematicRecord is the participation of one workshop theme.
type ThematicRecord struct {
	Name         string `json:"name" yaml:"name"`
	Participants int    `json:"participants" yaml:"participants"`
	Color        string `json:"color" yaml:"color"`
}

// MaturityPhase is one year of the institutional maturity roadmap.
type MaturityPhase struct {
	Year        string `json:"year" yaml:"year"`
	Phase       string `json:"phase" yaml:"phase"`
	Focus       string `json:"focus" yaml:"focus"`
	Coverage    int    `json:"coverage" yaml:"coverage"` // percent
	Maturity    int    `json:"maturity" yaml:"maturity"` // percent
	Description string `json:"description" yaml:"description"`
}

// FinancialScenario is a preset attrition reduction used by the ROI simulator.
type FinancialScenario struct {
	Name        string  `json:"name" yaml:"name"`
	Reduction   float64 `json:"reduction" yaml:"reduction"` // fraction, 0 < r <= 1
	Color       string  `json:"color" yaml:"color"`
	Description string  `json:"description" yaml:"description"`
}

// MentorshipRecord tallies the peer mentorship program for one period.
type MentorshipRecord struct {
	Period   string `json:"period" yaml:"period"`
	Mentors  int    `json:"mentors" yaml:"mentors"`
	Mentees  int    `json:"mentees" yaml:"mentees"`
	Sessions int    `json:"sessions" yaml:"sessions"`
}

// Stay360Record tallies the Stay 360 monitoring program for one period.
type Stay360Record struct {
	Period        string `json:"period" yaml:"period"`
	Monitored     int    `json:"monitored" yaml:"monitored"`
	AtRisk        int    `json:"atRisk" yaml:"atRisk"`
	Interventions int    `json:"interventions" yaml:"interventions"`
}

// ScholarshipWelcomeRecord tallies the welcome actions for scholarship holders.
type ScholarshipWelcomeRecord struct {
	Period        string `json:"period" yaml:"period"`
	Scholars      int    `json:"scholars" yaml:"scholars"`
	WelcomeEvents int    `json:"welcomeEvents" yaml:"welcomeEvents"`
	Attendees     int    `json:"attendees" yaml:"attendees"`
}

// ResearchRecord tallies research output related to retention for one period.
type ResearchRecord struct {
	Period       string `json:"period" yaml:"period"`
	Projects     int    `json:"projects" yaml:"projects"`
	Researchers  int    `json:"researchers" yaml:"researchers"`
	Publications int    `json:"publications" yaml:"publications"`
}

// Highlight is a headline statistic shown in the footer.
type Highlight struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Section is a navigation entry of the dashboard.
type Section struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
}

func growthRow(period string, participants, workshops int) GrowthRecord {
	return GrowthRecord{
		Period:          period,
		Participants:    participants,
		Workshops:       workshops,
		AvgParticipants: averagePerWorkshop(participants, workshops),
	}
}

func averagePerWorkshop(participants, workshops int) int {
	if workshops <= 0 {
		return 0
	}
	return int(math.Round(float64(participants) / float64(workshops)))
}

var growthData = []GrowthRecord{
	growthRow("2025/1", 207, 12),
	growthRow("2025/2", 1369, 28),
}

var thematicData = []ThematicRecord{
	{Name: "IA em Trabalhos Acadêmicos", Participants: 509, Color: "#3b82f6"},
	{Name: "Gestão do Tempo", Participants: 415, Color: "#8b5cf6"},
	{Name: "Textos Acadêmicos + IA", Participants: 377, Color: "#ec4899"},
	{Name: "Outros Temas", Participants: 68, Color: "#06b6d4"},
}

var maturityData = []MaturityPhase{
	{
		Year:        "2026",
		Phase:       "Consolidação",
		Focus:       "Padronização de indicadores",
		Coverage:    45,
		Maturity:    30,
		Description: "Calendário anual, relatórios periódicos, cobertura em momentos críticos",
	},
	{
		Year:        "2027",
		Phase:       "Expansão",
		Focus:       "Ações segmentadas",
		Coverage:    65,
		Maturity:    50,
		Description: "Segmentação por perfil, devolutivas por curso, grupos prioritários",
	},
	{
		Year:        "2028",
		Phase:       "Qualificação",
		Focus:       "Learning Analytics",
		Coverage:    85,
		Maturity:    75,
		Description: "Painéis e alertas, ciclos regulares de análise e intervenção",
	},
	{
		Year:        "2029",
		Phase:       "Maturidade",
		Focus:       "Referência Nacional",
		Coverage:    100,
		Maturity:    100,
		Description: "Série histórica consolidada, impacto comprovado, posicionamento estratégico",
	},
}

var scenarioData = []FinancialScenario{
	{
		Name:        "Conservador",
		Reduction:   0.02,
		Color:       "#f59e0b",
		Description: "Redução de 2% na evasão com as ações atuais do programa",
	},
	{
		Name:        "Moderado",
		Reduction:   0.04,
		Color:       "#3b82f6",
		Description: "Redução de 4% na evasão com ações segmentadas por perfil",
	},
	{
		Name:        "Otimista",
		Reduction:   0.06,
		Color:       "#10b981",
		Description: "Redução de 6% na evasão com learning analytics e alertas",
	},
}

var mentorshipData = []MentorshipRecord{
	{Period: "2025/1", Mentors: 18, Mentees: 96, Sessions: 140},
	{Period: "2025/2", Mentors: 32, Mentees: 211, Sessions: 365},
}

var stay360Data = []Stay360Record{
	{Period: "2025/1", Monitored: 2480, AtRisk: 390, Interventions: 212},
	{Period: "2025/2", Monitored: 5227, AtRisk: 744, Interventions: 518},
}

var scholarshipWelcomeData = []ScholarshipWelcomeRecord{
	{Period: "2025/1", Scholars: 310, WelcomeEvents: 3, Attendees: 184},
	{Period: "2025/2", Scholars: 402, WelcomeEvents: 5, Attendees: 297},
}

var researchData = []ResearchRecord{
	{Period: "2025/1", Projects: 2, Researchers: 5, Publications: 1},
	{Period: "2025/2", Projects: 4, Researchers: 9, Publications: 3},
}

var highlightData = []Highlight{
	{Label: "Estudantes Monitorados", Value: "5.227"},
	{Label: "Oficinas em 2025/2", Value: "28"},
	{Label: "Eixos de Atuação", Value: "4"},
	{Label: "Meta 2029", Value: "100%"},
}

var sectionData = []Section{
	{ID: "growth", Title: "Crescimento"},
	{ID: "thematic", Title: "Temáticas"},
	{ID: "maturity", Title: "Maturidade"},
	{ID: "financial", Title: "Impacto Financeiro"},
	{ID: "mentorship", Title: "Mentoria"},
	{ID: "stay360", Title: "Stay 360"},
	{ID: "scholarship", Title: "Acolhida de Bolsistas"},
	{ID: "research", Title: "Pesquisa"},
}

// Growth returns the semester participation table.
func Growth() []GrowthRecord { return append([]GrowthRecord(nil), growthData...) }

// Thematic returns the workshop theme table.
func Thematic() []ThematicRecord { return append([]ThematicRecord(nil), thematicData...) }

// Maturity returns the maturity roadmap, ordered by year.
func Maturity() []MaturityPhase { return append([]MaturityPhase(nil), maturityData...) }

// Scenarios returns the financial scenario presets, ordered by reduction.
func Scenarios() []FinancialScenario {
	return append([]FinancialScenario(nil), scenarioData...)
}

// Mentorship returns the mentorship program indicators per period.
func Mentorship() []MentorshipRecord { return append([]MentorshipRecord(nil), mentorshipData...) }

// Stay360 returns the student follow-up indicators per period.
func Stay360() []Stay360Record { return append([]Stay360Record(nil), stay360Data...) }

// ScholarshipWelcome returns the scholarship holder reception indicators per period.
func ScholarshipWelcome() []ScholarshipWelcomeRecord {
	return append([]ScholarshipWelcomeRecord(nil), scholarshipWelcomeData...)
}

// Research returns the research output per period.
func Research() []ResearchRecord { return append([]ResearchRecord(nil), researchData...) }

// Highlights returns the footer statistics.
func Highlights() []Highlight { return append([]Highlight(nil), highlightData...) }

// Sections returns the navigation entries in display order.
func Sections() []Section { return append([]Section(nil), sectionData...) }

// PhaseByYear looks up a maturity phase. The boolean is false when no phase
// exists for the year.
func PhaseByYear(year string) (MaturityPhase, bool) {
	for _, phase := range maturityData {
		if phase.Year == year {
			return phase, true
		}
	}
	return MaturityPhase{}, false
}

// ScenarioByName looks up a financial scenario by its exact name.
func ScenarioByName(name string) (FinancialScenario, bool) {
	for _, scenario := range scenarioData {
		if scenario.Name == name {
			return scenario, true
		}
	}
	return FinancialScenario{}, false
}

// SectionByID looks up a navigation section.
func SectionByID(id string) (Section, bool) {
	for _, section := range sectionData {
		if section.ID == id {
			return section, true
		}
	}
	return Section{}, false
}

// GrowthMetric is the change of one indicator between the first and the last
// semester of the growth table.
type GrowthMetric struct {
	Label   string  `json:"label" yaml:"label"`
	From    int     `json:"from" yaml:"from"`
	To      int     `json:"to" yaml:"to"`
	Percent float64 `json:"percent" yaml:"percent"`
	Defined bool    `json:"defined" yaml:"defined"`
}

// GrowthSummary compares the first and the last semester for participants,
// workshops and average participants per workshop. A metric starting from
// zero is reported with Defined=false.
func GrowthSummary() []GrowthMetric {
	if len(growthData) < 2 {
		return nil
	}
	first, last := growthData[0], growthData[len(growthData)-1]

	metric := func(label string, from, to int) GrowthMetric {
		pct, ok := mathutil.PercentChange(float64(from), float64(to))
		return GrowthMetric{Label: label, From: from, To: to, Percent: mathutil.Round(pct), Defined: ok}
	}

	return []GrowthMetric{
		metric("Crescimento Total", first.Participants, last.Participants),
		metric("Workshops Oferecidos", first.Workshops, last.Workshops),
		metric("Média por Workshop", first.AvgParticipants, last.AvgParticipants),
	}
}

// ThematicShare is a workshop theme with its share of all thematic participants.
type ThematicShare struct {
	ThematicRecord `yaml:",inline"`
	Share          float64 `json:"share" yaml:"share"` // percent
}

// ThematicTotal sums participants across all themes.
func ThematicTotal() int {
	total := 0
	for _, row := range thematicData {
		total += row.Participants
	}
	return total
}

// ThematicShares returns every theme with its percentage of ThematicTotal.
func ThematicShares() []ThematicShare {
	total := float64(ThematicTotal())
	shares := make([]ThematicShare, 0, len(thematicData))
	for _, row := range thematicData {
		shares = append(shares, ThematicShare{
			ThematicRecord: row,
			Share:          mathutil.Round(mathutil.CalculatePercentage(float64(row.Participants), total)),
		})
	}
	return shares
}
