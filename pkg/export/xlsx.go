package export

import (
	"io"

	"github.com/ucb-pesa/pesa-dashboard/internal/dashboard"
	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// WriteXLSX writes one worksheet per dashboard table.
func WriteXLSX(w io.Writer, snap dashboard.Snapshot) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	sheets := tables(snap)
	for _, t := range sheets {
		if _, err := f.NewSheet(t.Title); err != nil {
			return err
		}

		for i, header := range t.Header {
			cell, err := excelize.CoordinatesToCellName(i+1, 1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(t.Title, cell, header); err != nil {
				return err
			}
		}
		last, err := excelize.CoordinatesToCellName(len(t.Header), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(t.Title, "A1", last, headerStyle); err != nil {
			return err
		}

		for r, row := range t.Rows {
			for c, value := range row {
				cell, err := excelize.CoordinatesToCellName(c+1, r+2)
				if err != nil {
					return err
				}
				if err := f.SetCellValue(t.Title, cell, value); err != nil {
					return err
				}
			}
		}
	}

	if err := f.DeleteSheet(defaultSheet); err != nil {
		return err
	}
	index, err := f.GetSheetIndex(sheets[0].Title)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)

	return f.Write(w)
}
