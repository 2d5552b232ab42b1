package staff

import (
	"strings"
	"time"
)

// Expiry buckets for the visa expireDate filter, computed relative to a
// caller-supplied "now". "expiring" covers today through thirty days out.
const (
	BucketExpired  = "expired"
	BucketExpiring = "expiring"
	BucketValid    = "valid"

	expiringWindow = 30 * 24 * time.Hour
)

// ViewArchive selects only Exited records; any other view value selects
// the active (non-Exited) records.
const ViewArchive = "archive"

// Filter is a set of independent predicates combined with AND. A zero
// field means "no constraint", so the zero Filter yields the active view.
type Filter struct {
	View     string
	Search   string
	VisaType VisaType
	Hotel    string
	Expire   string

	Department         string
	SalaryMin          *float64
	SalaryMax          *float64
	PassportExpireDate Date
	CardNo             string
}

// Apply returns the records matching every set predicate, preserving the
// input order. It never mutates or reorders the input.
func (f Filter) Apply(records []Record, now time.Time) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if f.matches(r, now) {
			out = append(out, r)
		}
	}
	return out
}

func (f Filter) matches(r Record, now time.Time) bool {
	if f.View == ViewArchive {
		if r.Status != StatusExited {
			return false
		}
	} else if r.Status == StatusExited {
		return false
	}

	if term := strings.TrimSpace(f.Search); term != "" {
		if !anyFieldContains(term, r.Name, r.Phone, r.Designation, r.BatchNo) {
			return false
		}
	}
	if f.VisaType != "" && r.VisaType != f.VisaType {
		return false
	}
	if f.Hotel != "" && r.Hotel != f.Hotel {
		return false
	}
	if f.Expire != "" && !matchesExpireBucket(r.ExpireDate, f.Expire, now) {
		return false
	}

	if f.Department != "" && !containsFold(r.Department, f.Department) {
		return false
	}
	if f.SalaryMin != nil && r.Salary < *f.SalaryMin {
		return false
	}
	if f.SalaryMax != nil && r.Salary > *f.SalaryMax {
		return false
	}
	if !f.PassportExpireDate.IsZero() && !r.PassportExpireDate.Equal(f.PassportExpireDate.Time) {
		return false
	}
	if f.CardNo != "" && !containsFold(r.CardNo, f.CardNo) {
		return false
	}
	return true
}

// matchesExpireBucket places a date into expired/expiring/valid relative
// to now. Records without an expire date never match a non-empty bucket.
func matchesExpireBucket(d Date, bucket string, now time.Time) bool {
	if d.IsZero() {
		return false
	}
	cutoff := now.Add(expiringWindow)
	switch bucket {
	case BucketExpired:
		return d.Before(now)
	case BucketExpiring:
		return !d.Before(now) && !d.After(cutoff)
	case BucketValid:
		return d.After(cutoff)
	}
	return false
}

func anyFieldContains(term string, fields ...string) bool {
	for _, f := range fields {
		if containsFold(f, term) {
			return true
		}
	}
	return false
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
