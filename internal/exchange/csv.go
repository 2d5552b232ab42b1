package exchange

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/MdRaihanAli/staff-management-system-sub000/internal/staff"
)

// WriteCSV streams the record list as a header row plus one row per
// record in the fixed column order.
func WriteCSV(w io.Writer, records []staff.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Headers()); err != nil {
		return err
	}
	for _, rec := range records {
		if err := cw.Write(Row(rec)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a CSV file into records, applying the tolerant header
// matching and import defaults.
func ReadCSV(r io.Reader) ([]staff.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return RowsToRecords(rows)
}
