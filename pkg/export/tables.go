package export

import (
	"github.com/ucb-pesa/pesa-dashboard/internal/dashboard"
)

// table is one tabular block of the report, shared by the spreadsheet and
// the PDF renderers.
type table struct {
	Title  string
	Header []string
	Rows   [][]interface{}
}

func tables(snap dashboard.Snapshot) []table {
	growth := table{
		Title:  "Crescimento",
		Header: []string{"Período", "Participantes", "Oficinas", "Média por Oficina"},
	}
	for _, row := range snap.Growth {
		growth.Rows = append(growth.Rows, []interface{}{row.Period, row.Participants, row.Workshops, row.AvgParticipants})
	}

	thematic := table{
		Title:  "Temáticas",
		Header: []string{"Tema", "Participantes", "Participação (%)"},
	}
	for _, row := range snap.Thematic {
		thematic.Rows = append(thematic.Rows, []interface{}{row.Name, row.Participants, row.Share})
	}
	thematic.Rows = append(thematic.Rows, []interface{}{"Total", snap.ThematicTotal, 100.0})

	maturity := table{
		Title:  "Maturidade",
		Header: []string{"Ano", "Fase", "Foco", "Cobertura (%)", "Maturidade (%)"},
	}
	for _, phase := range snap.Maturity {
		maturity.Rows = append(maturity.Rows, []interface{}{phase.Year, phase.Phase, phase.Focus, phase.Coverage, phase.Maturity})
	}

	financial := table{
		Title:  "Impacto Financeiro",
		Header: []string{"Cenário", "Redução (%)", "Estudantes Retidos", "Receita Recuperada", "Economia de CAC", "Impacto Total", "ROI (%)", "Payback (meses)"},
	}
	for _, row := range snap.Scenarios {
		var payback interface{} = "indefinido"
		if row.Impact.PaybackDefined {
			payback = row.Impact.PaybackMonths
		}
		financial.Rows = append(financial.Rows, []interface{}{
			row.Scenario.Name,
			row.Scenario.Reduction * 100,
			row.Impact.RetainedStudents,
			row.Impact.RecoveredRevenue,
			row.Impact.CACSavings,
			row.Impact.TotalImpact,
			row.Impact.ROI,
			payback,
		})
	}

	mentorship := table{
		Title:  "Mentoria",
		Header: []string{"Período", "Mentores", "Mentorados", "Sessões"},
	}
	for _, row := range snap.Mentorship {
		mentorship.Rows = append(mentorship.Rows, []interface{}{row.Period, row.Mentors, row.Mentees, row.Sessions})
	}

	stay := table{
		Title:  "Stay 360",
		Header: []string{"Período", "Monitorados", "Em Risco", "Intervenções"},
	}
	for _, row := range snap.Stay360 {
		stay.Rows = append(stay.Rows, []interface{}{row.Period, row.Monitored, row.AtRisk, row.Interventions})
	}

	scholarship := table{
		Title:  "Acolhida de Bolsistas",
		Header: []string{"Período", "Bolsistas", "Eventos", "Participantes"},
	}
	for _, row := range snap.ScholarshipWelcome {
		scholarship.Rows = append(scholarship.Rows, []interface{}{row.Period, row.Scholars, row.WelcomeEvents, row.Attendees})
	}

	research := table{
		Title:  "Pesquisa",
		Header: []string{"Período", "Projetos", "Pesquisadores", "Publicações"},
	}
	for _, row := range snap.Research {
		research.Rows = append(research.Rows, []interface{}{row.Period, row.Projects, row.Researchers, row.Publications})
	}

	return []table{growth, thematic, maturity, financial, mentorship, stay, scholarship, research}
}
