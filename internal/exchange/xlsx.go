package exchange

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/MdRaihanAli/staff-management-system-sub000/internal/staff"
)

const sheetName = "Staff"

// WriteXLSX renders the record list as a single-sheet workbook with the
// header row frozen.
func WriteXLSX(w io.Writer, records []staff.Record) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	header := make([]interface{}, 0, len(Columns))
	for _, h := range Headers() {
		header = append(header, h)
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}

	for i, rec := range records {
		row := make([]interface{}, 0, len(Columns))
		// SL and salary go out as numbers so spreadsheet sorting works.
		row = append(row, rec.SL)
		cells := Row(rec)
		for j := 1; j < len(cells); j++ {
			if Columns[j].Field == "salary" {
				row = append(row, rec.Salary)
				continue
			}
			row = append(row, cells[j])
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return err
		}
	}

	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	}); err != nil {
		return err
	}

	return f.Write(w)
}

// ReadXLSX parses the first sheet of a workbook into records.
func ReadXLSX(r io.Reader) ([]staff.Record, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read xlsx rows: %w", err)
	}
	return RowsToRecords(rows)
}
