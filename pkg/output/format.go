// Package output provides utilities for formatting and displaying dashboard reports.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/ucb-pesa/pesa-dashboard/internal/dashboard"
	"github.com/ucb-pesa/pesa-dashboard/pkg/format"
)

// PrettyFormat writes a human-readable rather than machine-readable report.
func PrettyFormat(w io.Writer, snap dashboard.Snapshot) {
	fmt.Fprintf(w, "--- Crescimento ---\n")
	fmt.Fprintf(w, "Período | Participantes | Oficinas | Média\n")
	fmt.Fprintf(w, "_______ | _____________ | ________ | _____\n")
	for _, row := range snap.Growth {
		fmt.Fprintf(w, "%s | %s | %d | %d\n", row.Period, format.Count(row.Participants), row.Workshops, row.AvgParticipants)
	}
	for _, metric := range snap.GrowthSummary {
		value := "n/d"
		if metric.Defined {
			value = format.SignedPercent(metric.Percent, 0)
		}
		fmt.Fprintf(w, "%s: %s (de %s para %s)\n", metric.Label, value, format.Count(metric.From), format.Count(metric.To))
	}

	fmt.Fprintf(w, "\n--- Temáticas ---\n")
	for _, row := range snap.Thematic {
		fmt.Fprintf(w, "%s | %s | %s\n", row.Name, format.Count(row.Participants), format.Percent(row.Share, 1))
	}
	fmt.Fprintf(w, "Total | %s\n", format.Count(snap.ThematicTotal))

	fmt.Fprintf(w, "\n--- Maturidade ---\n")
	for _, phase := range snap.Maturity {
		marker := " "
		if snap.SelectedPhase != nil && snap.SelectedPhase.Year == phase.Year {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %s | %s | %s | cobertura %d%% | maturidade %d%%\n",
			marker, phase.Year, phase.Phase, phase.Focus, phase.Coverage, phase.Maturity)
	}

	fmt.Fprintf(w, "\n--- Impacto Financeiro ---\n")
	fmt.Fprintf(w, "Cenário | Redução | Retidos | Impacto Total | ROI | Payback\n")
	fmt.Fprintf(w, "_______ | _______ | _______ | _____________ | ___ | _______\n")
	for _, row := range snap.Scenarios {
		marker := " "
		if snap.SelectedScenario != nil && snap.SelectedScenario.Name == row.Scenario.Name {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %s | %s | %s | %s | %s | %s\n",
			marker,
			row.Scenario.Name,
			format.Percent(row.Scenario.Reduction*100, 0),
			format.Count(row.Impact.RetainedStudents),
			format.Currency(row.Impact.TotalImpact),
			format.Percent(row.Impact.ROI, 2),
			payback(row.Impact.PaybackMonths, row.Impact.PaybackDefined),
		)
	}
	for _, item := range snap.ImpactComposition {
		fmt.Fprintf(w, "%s: %s (%s)\n", item.Name, format.Currency(item.Value), format.Percent(item.Share, 1))
	}

	fmt.Fprintf(w, "\n--- Destaques ---\n")
	for _, h := range snap.Highlights {
		fmt.Fprintf(w, "%s: %s\n", h.Label, h.Value)
	}
}

func payback(months float64, defined bool) string {
	if !defined {
		return "indefinido"
	}
	return format.Decimal(months, 2) + " meses"
}

// CsvFormat writes the report in comma-separated value format, one metric per
// row: section, key, metric, value.
func CsvFormat(w io.Writer, snap dashboard.Snapshot) error {
	cw := csv.NewWriter(w)
	for _, record := range Records(snap) {
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Records flattens the snapshot into section/key/metric/value rows. The
// header row comes first.
func Records(snap dashboard.Snapshot) [][]string {
	records := [][]string{{"section", "key", "metric", "value"}}
	add := func(section, key, metric string, value string) {
		records = append(records, []string{section, key, metric, value})
	}
	itoa := strconv.Itoa
	ftoa := func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

	for _, row := range snap.Growth {
		add("growth", row.Period, "participants", itoa(row.Participants))
		add("growth", row.Period, "workshops", itoa(row.Workshops))
		add("growth", row.Period, "avgParticipants", itoa(row.AvgParticipants))
	}
	for _, row := range snap.Thematic {
		add("thematic", row.Name, "participants", itoa(row.Participants))
		add("thematic", row.Name, "share", ftoa(row.Share))
	}
	for _, phase := range snap.Maturity {
		add("maturity", phase.Year, "phase", phase.Phase)
		add("maturity", phase.Year, "coverage", itoa(phase.Coverage))
		add("maturity", phase.Year, "maturity", itoa(phase.Maturity))
	}
	for _, row := range snap.Scenarios {
		name := row.Scenario.Name
		add("financial", name, "reduction", strconv.FormatFloat(row.Scenario.Reduction, 'f', -1, 64))
		add("financial", name, "retainedStudents", itoa(row.Impact.RetainedStudents))
		add("financial", name, "recoveredRevenue", ftoa(row.Impact.RecoveredRevenue))
		add("financial", name, "cacSavings", ftoa(row.Impact.CACSavings))
		add("financial", name, "totalImpact", ftoa(row.Impact.TotalImpact))
		add("financial", name, "roi", ftoa(row.Impact.ROI))
		if row.Impact.PaybackDefined {
			add("financial", name, "paybackMonths", ftoa(row.Impact.PaybackMonths))
		} else {
			add("financial", name, "paybackMonths", "")
		}
	}
	for _, row := range snap.Mentorship {
		add("mentorship", row.Period, "mentors", itoa(row.Mentors))
		add("mentorship", row.Period, "mentees", itoa(row.Mentees))
		add("mentorship", row.Period, "sessions", itoa(row.Sessions))
	}
	for _, row := range snap.Stay360 {
		add("stay360", row.Period, "monitored", itoa(row.Monitored))
		add("stay360", row.Period, "atRisk", itoa(row.AtRisk))
		add("stay360", row.Period, "interventions", itoa(row.Interventions))
	}
	for _, row := range snap.ScholarshipWelcome {
		add("scholarship", row.Period, "scholars", itoa(row.Scholars))
		add("scholarship", row.Period, "welcomeEvents", itoa(row.WelcomeEvents))
		add("scholarship", row.Period, "attendees", itoa(row.Attendees))
	}
	for _, row := range snap.Research {
		add("research", row.Period, "projects", itoa(row.Projects))
		add("research", row.Period, "researchers", itoa(row.Researchers))
		add("research", row.Period, "publications", itoa(row.Publications))
	}
	return records
}
