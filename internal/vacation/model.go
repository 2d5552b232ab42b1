package vacation

import (
	"errors"

	"github.com/MdRaihanAli/staff-management-system-sub000/internal/staff"
)

// Status is a plain label on the request. Any status may be set to any
// other by a direct update; there is no transition graph.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusApproved  Status = "Approved"
	StatusRejected  Status = "Rejected"
	StatusOngoing   Status = "Ongoing"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusOngoing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

var (
	ErrNotFound      = errors.New("vacation request not found")
	ErrStaffRequired = errors.New("staff reference is required")
	ErrDateOrder     = errors.New("end date must not be before start date")
	ErrInvalidStatus = errors.New("invalid vacation status")
)

// Request is one vacation document. Staff name and batch are copied in
// at creation time so listings render without a join.
type Request struct {
	ID               string     `json:"id"`
	StaffID          string     `json:"staffId"`
	StaffName        string     `json:"staffName"`
	StaffBatchNo     string     `json:"staffBatchNo"`
	StartDate        staff.Date `json:"startDate"`
	EndDate          staff.Date `json:"endDate"`
	TotalDays        int        `json:"totalDays"`
	Status           Status     `json:"status"`
	SalaryHold       float64    `json:"salaryHold"`
	SalaryAdvance    float64    `json:"salaryAdvance"`
	Reason           string     `json:"reason"`
	Destination      string     `json:"destination"`
	EmergencyContact string     `json:"emergencyContact"`
}

// InclusiveDays counts calendar days from start through end. Zero when
// either bound is unset.
func InclusiveDays(start, end staff.Date) int {
	if start.IsZero() || end.IsZero() {
		return 0
	}
	return int(end.Sub(start.Time).Hours()/24) + 1
}
