package exchange

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/MdRaihanAli/staff-management-system-sub000/internal/staff"
)

// RowsToRecords turns a header row plus data rows into staff records.
// Header matching is tolerant (export headers or JSON field names, any
// case or spacing); unrecognized columns are ignored. Missing values get
// the import defaults: empty strings, status Working, salary 0. A cell
// that cannot be parsed aborts the whole import with a row-numbered
// error, so a malformed file never half-applies.
func RowsToRecords(rows [][]string) ([]staff.Record, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("file has no rows")
	}
	fields := make([]string, len(rows[0]))
	known := 0
	for i, header := range rows[0] {
		if field, ok := columnIndex[normalizeKey(header)]; ok {
			fields[i] = field
			known++
		}
	}
	if known == 0 {
		return nil, fmt.Errorf("no recognizable columns in header row")
	}

	var out []staff.Record
	for n, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		rec := staff.Record{Status: staff.StatusWorking}
		for i, field := range fields {
			if field == "" || i >= len(row) {
				continue
			}
			if err := setField(&rec, field, strings.TrimSpace(row[i])); err != nil {
				return nil, fmt.Errorf("row %d: %w", n+2, err)
			}
		}
		rec.Normalize()
		out = append(out, rec)
	}
	return out, nil
}

func setField(rec *staff.Record, field, value string) error {
	switch field {
	case "sl":
		// Sequence numbers are reassigned on import; the cell is ignored.
		return nil
	case "batchNo":
		rec.BatchNo = value
	case "name":
		rec.Name = value
	case "department":
		rec.Department = value
	case "company":
		rec.Company = value
	case "visaType":
		v := staff.VisaType(value)
		if !v.Valid() {
			return fmt.Errorf("unknown visa type %q", value)
		}
		rec.VisaType = v
	case "cardNo":
		rec.CardNo = value
	case "issueDate", "expireDate", "passportExpireDate":
		d, err := parseCellDate(value)
		if err != nil {
			return err
		}
		switch field {
		case "issueDate":
			rec.IssueDate = d
		case "expireDate":
			rec.ExpireDate = d
		default:
			rec.PassportExpireDate = d
		}
	case "phone":
		rec.Phone = value
	case "status":
		if value == "" {
			rec.Status = staff.StatusWorking
			return nil
		}
		st := staff.Status(value)
		if !st.Valid() {
			return fmt.Errorf("unknown status %q", value)
		}
		rec.Status = st
	case "hotel":
		rec.Hotel = value
	case "salary":
		if value == "" {
			rec.Salary = 0
			return nil
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid salary %q", value)
		}
		if f < 0 {
			f = 0
		}
		rec.Salary = f
	case "photo":
		rec.Photo = value
	case "remark":
		rec.Remark = value
	}
	return nil
}

var cellDateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"1/2/2006",
	"01/02/2006",
	"2 Jan 2006",
	"Jan 2, 2006",
}

// parseCellDate handles the date spellings spreadsheets produce,
// including raw Excel serial numbers.
func parseCellDate(value string) (staff.Date, error) {
	if value == "" {
		return staff.Date{}, nil
	}
	if d, err := staff.ParseDate(value); err == nil {
		return d, nil
	}
	for _, layout := range cellDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return staff.DateOf(t), nil
		}
	}
	if serial, err := strconv.ParseFloat(value, 64); err == nil && serial > 20000 && serial < 80000 {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return staff.DateOf(t), nil
		}
	}
	return staff.Date{}, fmt.Errorf("invalid date %q", value)
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
