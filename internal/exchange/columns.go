// Package exchange converts between the staff collection and its three
// external serializations: tabular (CSV/XLSX), a word-processor report
// (DOCX) and the canonical JSON interchange format.
package exchange

import (
	"strconv"
	"strings"

	"github.com/MdRaihanAli/staff-management-system-sub000/internal/staff"
)

// Column pairs the human-readable export header with the internal JSON
// field name. Import accepts either spelling for the same column.
type Column struct {
	Header string
	Field  string
}

// Columns is the fixed export column set, in the fixed export order.
var Columns = []Column{
	{"SL", "sl"},
	{"Batch No", "batchNo"},
	{"Name", "name"},
	{"Department", "department"},
	{"Company", "company"},
	{"Visa Type", "visaType"},
	{"Card No", "cardNo"},
	{"Issue Date", "issueDate"},
	{"Expire Date", "expireDate"},
	{"Phone", "phone"},
	{"Status", "status"},
	{"Hotel", "hotel"},
	{"Salary", "salary"},
	{"Passport Expire Date", "passportExpireDate"},
	{"Photo", "photo"},
	{"Remark", "remark"},
}

// Headers returns the export header row.
func Headers() []string {
	out := make([]string, len(Columns))
	for i, c := range Columns {
		out[i] = c.Header
	}
	return out
}

// Row renders one record into the fixed column order.
func Row(r staff.Record) []string {
	return []string{
		strconv.FormatInt(r.SL, 10),
		r.BatchNo,
		r.Name,
		r.Department,
		r.Company,
		string(r.VisaType),
		r.CardNo,
		r.IssueDate.String(),
		r.ExpireDate.String(),
		r.Phone,
		string(r.Status),
		r.Hotel,
		strconv.FormatFloat(r.Salary, 'f', -1, 64),
		r.PassportExpireDate.String(),
		r.Photo,
		r.Remark,
	}
}

// normalizeKey folds a header cell so "Batch No", "batch_no" and
// "batchNo" all land on the same key.
func normalizeKey(header string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(header)) {
		if r == ' ' || r == '_' || r == '-' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// columnIndex maps normalized header keys to field names.
var columnIndex = func() map[string]string {
	idx := make(map[string]string, 2*len(Columns))
	for _, c := range Columns {
		idx[normalizeKey(c.Header)] = c.Field
		idx[normalizeKey(c.Field)] = c.Field
	}
	return idx
}()
