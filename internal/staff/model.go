package staff

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Status is the employment state of a staff record. Exited records are
// hidden from the default view and only show up in the archive view.
type Status string

const (
	StatusWorking Status = "Working"
	StatusJobless Status = "Jobless"
	StatusExited  Status = "Exited"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusWorking, StatusJobless, StatusExited:
		return true
	}
	return false
}

// VisaType classifies the work permit. Empty means unset.
type VisaType string

const (
	VisaEmployment VisaType = "Employment"
	VisaVisit      VisaType = "Visit"
	VisaUnset      VisaType = ""
)

// Valid reports whether v is a known visa type or unset.
func (v VisaType) Valid() bool {
	switch v {
	case VisaEmployment, VisaVisit, VisaUnset:
		return true
	}
	return false
}

const dateLayout = "2006-01-02"

// Date is a calendar date without a time component. The zero value means
// "not set" and marshals as an empty string, which keeps exported JSON
// importable without null handling.
type Date struct {
	time.Time
}

// NewDate builds a Date at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar date in UTC.
func DateOf(t time.Time) Date {
	u := t.UTC()
	y, m, d := u.Date()
	return NewDate(y, m, d)
}

// ParseDate accepts "2006-01-02" as well as RFC3339 timestamps, keeping
// only the date part. Empty input yields the zero Date.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return Date{t}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return DateOf(t), nil
	}
	return Date{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
}

// String renders the date or "" when unset.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

// MarshalJSON renders the date as "YYYY-MM-DD" or "" when unset.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts "", "YYYY-MM-DD" and RFC3339 strings.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Record is one staff document. JSON field names are the interchange
// format: exports, imports and the REST API all use them verbatim.
type Record struct {
	ID                 string   `json:"id"`
	SL                 int64    `json:"sl"`
	BatchNo            string   `json:"batchNo"`
	Name               string   `json:"name"`
	Designation        string   `json:"designation"`
	Department         string   `json:"department"`
	Hotel              string   `json:"hotel"`
	Company            string   `json:"company"`
	VisaType           VisaType `json:"visaType"`
	Status             Status   `json:"status"`
	CardNo             string   `json:"cardNo"`
	Phone              string   `json:"phone"`
	Photo              string   `json:"photo"`
	Remark             string   `json:"remark"`
	IssueDate          Date     `json:"issueDate"`
	ExpireDate         Date     `json:"expireDate"`
	PassportExpireDate Date     `json:"passportExpireDate"`
	Salary             float64  `json:"salary"`
}

// Normalize trims free-text fields and fills enum defaults. It does not
// validate; see Service for that.
func (r *Record) Normalize() {
	r.BatchNo = strings.TrimSpace(r.BatchNo)
	r.Name = strings.TrimSpace(r.Name)
	r.Designation = strings.TrimSpace(r.Designation)
	r.Department = strings.TrimSpace(r.Department)
	r.Hotel = strings.TrimSpace(r.Hotel)
	r.Company = strings.TrimSpace(r.Company)
	r.CardNo = strings.TrimSpace(r.CardNo)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Photo = strings.TrimSpace(r.Photo)
	r.Remark = strings.TrimSpace(r.Remark)
	if r.Status == "" {
		r.Status = StatusWorking
	}
}

// SameBatch compares batch numbers the way uniqueness is enforced:
// case-insensitive, and never matching when either side is empty.
func SameBatch(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.EqualFold(a, b)
}
