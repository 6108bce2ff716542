// Package export renders a dashboard snapshot as a downloadable document.
package export

import (
	"fmt"
	"io"

	"github.com/ucb-pesa/pesa-dashboard/internal/dashboard"
	"github.com/ucb-pesa/pesa-dashboard/internal/dataset"
	"github.com/ucb-pesa/pesa-dashboard/pkg/constants"
	"github.com/ucb-pesa/pesa-dashboard/pkg/output"
	"github.com/ucb-pesa/pesa-dashboard/pkg/validation"
	"gopkg.in/yaml.v3"
)

// Write renders snap in the given export format.
func Write(w io.Writer, format string, snap dashboard.Snapshot) error {
	if err := validation.ValidateExportFormat(format); err != nil {
		return err
	}

	var err error
	switch format {
	case constants.ExportFormatXLSX:
		err = WriteXLSX(w, snap)
	case constants.ExportFormatPDF:
		err = WritePDF(w, snap)
	case constants.ExportFormatYAML:
		err = WriteYAML(w, snap)
	case constants.ExportFormatCSV:
		err = output.CsvFormat(w, snap)
	}
	if err != nil {
		return fmt.Errorf("failed to export %s: %w", format, err)
	}
	return nil
}

// WriteYAML encodes the full snapshot as a YAML document.
func WriteYAML(w io.Writer, snap dashboard.Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		return err
	}
	return enc.Close()
}

// ContentType returns the MIME type served for an export format.
func ContentType(format string) string {
	switch format {
	case constants.ExportFormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case constants.ExportFormatPDF:
		return "application/pdf"
	case constants.ExportFormatYAML:
		return "application/yaml"
	case constants.ExportFormatCSV:
		return "text/csv; charset=utf-8"
	}
	return "application/octet-stream"
}

// FileName returns the download name for an export of the given selection.
// Only a year on the roadmap is carried into the name.
func FileName(format string, state dashboard.State) string {
	name := "pesa-dashboard"
	if phase, ok := dataset.PhaseByYear(state.Year); ok {
		name += "-" + phase.Year
	}
	return name + "." + format
}
