package exchange

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/MdRaihanAli/staff-management-system-sub000/internal/staff"
)

// WriteJSON emits the record list pretty-printed with the stable field
// names. This is the system's own interchange format; ReadJSON accepts
// its output unchanged.
func WriteJSON(w io.Writer, records []staff.Record) error {
	if records == nil {
		records = []staff.Record{}
	}
	blob, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(blob, '\n'))
	return err
}

// ReadJSON parses an exported (or hand-written) JSON array of records,
// filling import defaults and rejecting unknown enum values.
func ReadJSON(r io.Reader) ([]staff.Record, error) {
	var records []staff.Record
	dec := json.NewDecoder(r)
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	for i := range records {
		records[i].Normalize()
		if !records[i].Status.Valid() {
			return nil, fmt.Errorf("row %d: unknown status %q", i+1, records[i].Status)
		}
		if !records[i].VisaType.Valid() {
			return nil, fmt.Errorf("row %d: unknown visa type %q", i+1, records[i].VisaType)
		}
		if records[i].Salary < 0 {
			records[i].Salary = 0
		}
	}
	return records, nil
}
