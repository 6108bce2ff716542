package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/ucb-pesa/pesa-dashboard/internal/dashboard"
	"github.com/ucb-pesa/pesa-dashboard/pkg/format"
)

const (
	marginLeft   = 15.0
	marginTop    = 15.0
	marginRight  = 15.0
	marginBottom = 20.0
	contentWidth = 297.0 - marginLeft - marginRight
)

// WritePDF writes a landscape A4 report with the selection summary followed
// by every dashboard table.
func WritePDF(w io.Writer, snap dashboard.Snapshot) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(true, marginBottom)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(contentWidth, 12, tr("PESA - Painel de Permanência Estudantil"), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(80, 80, 80)
	for _, line := range summaryLines(snap) {
		pdf.CellFormat(contentWidth, 6, tr(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	for _, t := range tables(snap) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetTextColor(0, 51, 102)
		pdf.CellFormat(contentWidth, 8, tr(t.Title), "", 1, "L", false, 0, "")

		colWidth := contentWidth / float64(len(t.Header))
		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetFillColor(245, 247, 250)
		pdf.SetDrawColor(200, 200, 200)
		pdf.SetTextColor(50, 50, 50)
		for _, header := range t.Header {
			pdf.CellFormat(colWidth, 6, tr(header), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", 8)
		for _, row := range t.Rows {
			for _, value := range row {
				pdf.CellFormat(colWidth, 6, tr(cellText(value)), "1", 0, "C", false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(4)
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

func summaryLines(snap dashboard.Snapshot) []string {
	lines := []string{
		fmt.Sprintf("Estudantes: %s | Mensalidade: %s | CAC: %s | Custo do Programa: %s",
			format.Count(snap.Assumptions.TotalStudents),
			format.Currency(snap.Assumptions.MonthlyTuition),
			format.Currency(snap.Assumptions.CAC),
			format.Currency(snap.Assumptions.ProgramCost)),
	}
	if snap.SelectedPhase != nil {
		lines = append(lines, fmt.Sprintf("Ano %s: %s (%s)", snap.SelectedPhase.Year, snap.SelectedPhase.Phase, snap.SelectedPhase.Focus))
	}
	if snap.SelectedScenario != nil && snap.SelectedImpact != nil {
		lines = append(lines, fmt.Sprintf("Cenário %s: impacto total %s, ROI %s",
			snap.SelectedScenario.Name,
			format.Currency(snap.SelectedImpact.TotalImpact),
			format.Percent(snap.SelectedImpact.ROI, 2)))
	}
	return lines
}

func cellText(value interface{}) string {
	switch v := value.(type) {
	case int:
		return format.Count(v)
	case float64:
		return format.NumericCurrency(v)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
