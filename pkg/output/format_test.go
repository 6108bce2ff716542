package output

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/ucb-pesa/pesa-dashboard/pkg/testutil"
)

func TestPrettyFormat(t *testing.T) {
	snap := testutil.DefaultSnapshot("2028", "Conservador", "growth")

	var buf bytes.Buffer
	PrettyFormat(&buf, snap)
	output := buf.String()

	expected := []string{
		"--- Crescimento ---",
		"2025/2 | 1.369 | 28 | 49",
		"Crescimento Total: +561% (de 207 para 1.369)",
		"--- Temáticas ---",
		"Total | 1.369",
		"* 2028 | Qualificação",
		"* Conservador | 2% | 300 | R$ 5.070.000,00 | 698,43% | 1,50 meses",
		"Receita Recuperada: R$ 4.320.000,00",
		"Estudantes Monitorados: 5.227",
	}
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("PrettyFormat output missing %q\n%s", want, output)
		}
	}
}

func TestPrettyFormatWithoutSelection(t *testing.T) {
	snap := testutil.DefaultSnapshot("", "", "")

	var buf bytes.Buffer
	PrettyFormat(&buf, snap)
	output := buf.String()

	if strings.Contains(output, "* ") {
		t.Errorf("expected no selection markers, got:\n%s", output)
	}
	if strings.Contains(output, "Receita Recuperada") {
		t.Errorf("expected no impact composition without a scenario")
	}
}

func TestCsvFormat(t *testing.T) {
	snap := testutil.DefaultSnapshot("2029", "Moderado", "financial")

	var buf bytes.Buffer
	if err := CsvFormat(&buf, snap); err != nil {
		t.Fatalf("CsvFormat() error = %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse CSV output: %v", err)
	}
	if len(records) < 2 {
		t.Fatalf("expected header and data rows, got %d", len(records))
	}
	if strings.Join(records[0], ",") != "section,key,metric,value" {
		t.Fatalf("unexpected header %v", records[0])
	}

	found := false
	for _, record := range records {
		if record[0] == "financial" && record[1] == "Moderado" && record[2] == "totalImpact" {
			found = true
			if record[3] != "10140000.00" {
				t.Errorf("expected total impact 10140000.00, got %s", record[3])
			}
		}
	}
	if !found {
		t.Fatal("expected financial total impact row for Moderado")
	}
}

func TestCsvFormatWritesEveryRecord(t *testing.T) {
	snap := testutil.DefaultSnapshot("2029", "Moderado", "growth")

	var buf bytes.Buffer
	if err := CsvFormat(&buf, snap); err != nil {
		t.Fatalf("CsvFormat() error = %v", err)
	}
	parsed, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse CSV output: %v", err)
	}
	if len(parsed) != len(Records(snap)) {
		t.Fatalf("expected %d rows, got %d", len(Records(snap)), len(parsed))
	}
}

func TestRecordsCoverEverySection(t *testing.T) {
	snap := testutil.DefaultSnapshot("2029", "Moderado", "growth")

	sections := map[string]bool{}
	for _, record := range Records(snap)[1:] {
		sections[record[0]] = true
	}
	for _, want := range []string{"growth", "thematic", "maturity", "financial", "mentorship", "stay360", "scholarship", "research"} {
		if !sections[want] {
			t.Errorf("expected records for section %s", want)
		}
	}
}
