package vacation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MdRaihanAli/staff-management-system-sub000/internal/staff"
)

func newTestService(t *testing.T) (*Service, staff.Record) {
	t.Helper()
	staffStore := staff.NewMemStore()
	staffSvc := staff.NewService(staffStore)
	member, err := staffSvc.Create(context.Background(), staff.Record{Name: "Alice", BatchNo: "A1"})
	if err != nil {
		t.Fatalf("seed staff: %v", err)
	}
	return NewService(NewMemStore(), staffSvc), member
}

func TestCreateDenormalizesStaffAndDerivesDays(t *testing.T) {
	svc, member := newTestService(t)
	req, err := svc.Create(context.Background(), Request{
		StaffID:   member.ID,
		StartDate: staff.NewDate(2025, time.July, 1),
		EndDate:   staff.NewDate(2025, time.July, 10),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if req.StaffName != "Alice" || req.StaffBatchNo != "A1" {
		t.Fatalf("staff fields not copied: %+v", req)
	}
	if req.TotalDays != 10 {
		t.Fatalf("inclusive day count wrong: %d", req.TotalDays)
	}
	if req.Status != StatusPending {
		t.Fatalf("default status should be Pending, got %q", req.Status)
	}
}

func TestCreateAcceptsLegacyStaffIdentity(t *testing.T) {
	svc, _ := newTestService(t)
	req, err := svc.Create(context.Background(), Request{StaffID: "1"})
	if err != nil {
		t.Fatalf("create by legacy sl: %v", err)
	}
	if req.StaffName != "Alice" {
		t.Fatalf("legacy lookup did not resolve: %+v", req)
	}
}

func TestCreateValidation(t *testing.T) {
	svc, member := newTestService(t)

	if _, err := svc.Create(context.Background(), Request{}); !errors.Is(err, ErrStaffRequired) {
		t.Fatalf("want ErrStaffRequired, got %v", err)
	}
	if _, err := svc.Create(context.Background(), Request{StaffID: "unknown"}); !errors.Is(err, staff.ErrNotFound) {
		t.Fatalf("want staff.ErrNotFound, got %v", err)
	}
	if _, err := svc.Create(context.Background(), Request{
		StaffID:   member.ID,
		StartDate: staff.NewDate(2025, time.July, 10),
		EndDate:   staff.NewDate(2025, time.July, 1),
	}); !errors.Is(err, ErrDateOrder) {
		t.Fatalf("want ErrDateOrder, got %v", err)
	}
	if _, err := svc.Create(context.Background(), Request{StaffID: member.ID, Status: "Paused"}); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("want ErrInvalidStatus, got %v", err)
	}
}

func TestUpdateFreezesStaffReferenceAndAllowsAnyStatusMove(t *testing.T) {
	svc, member := newTestService(t)
	created, err := svc.Create(context.Background(), Request{
		StaffID:   member.ID,
		StartDate: staff.NewDate(2025, time.July, 1),
		EndDate:   staff.NewDate(2025, time.July, 3),
		Status:    StatusCompleted,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Completed -> Pending is allowed; there is no transition graph.
	updated, err := svc.Update(context.Background(), created.ID, Request{
		StaffID:   "someone-else",
		StartDate: staff.NewDate(2025, time.August, 1),
		EndDate:   staff.NewDate(2025, time.August, 5),
		Status:    StatusPending,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.StaffID != member.ID || updated.StaffName != "Alice" {
		t.Fatalf("staff reference should be frozen at creation: %+v", updated)
	}
	if updated.TotalDays != 5 {
		t.Fatalf("day count not recomputed: %d", updated.TotalDays)
	}
	if updated.Status != StatusPending {
		t.Fatalf("status move rejected: %q", updated.Status)
	}
}

func TestListFilters(t *testing.T) {
	svc, member := newTestService(t)
	if _, err := svc.Create(context.Background(), Request{StaffID: member.ID, Status: StatusApproved}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Create(context.Background(), Request{StaffID: member.ID}); err != nil {
		t.Fatal(err)
	}

	approved, err := svc.List(context.Background(), "", StatusApproved)
	if err != nil || len(approved) != 1 {
		t.Fatalf("status filter: %v, %d", err, len(approved))
	}
	byStaff, err := svc.List(context.Background(), member.ID, "")
	if err != nil || len(byStaff) != 2 {
		t.Fatalf("staff filter: %v, %d", err, len(byStaff))
	}
	none, err := svc.List(context.Background(), "missing", "")
	if err != nil || len(none) != 0 {
		t.Fatalf("unknown staff should match nothing: %v, %d", err, len(none))
	}
}

func TestDeleteUnknown(t *testing.T) {
	svc, _ := newTestService(t)
	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestInclusiveDays(t *testing.T) {
	cases := []struct {
		name  string
		start staff.Date
		end   staff.Date
		want  int
	}{
		{"same day", staff.NewDate(2025, time.May, 1), staff.NewDate(2025, time.May, 1), 1},
		{"ten days", staff.NewDate(2025, time.July, 1), staff.NewDate(2025, time.July, 10), 10},
		{"across months", staff.NewDate(2025, time.January, 30), staff.NewDate(2025, time.February, 2), 4},
		{"start unset", staff.Date{}, staff.NewDate(2025, time.May, 1), 0},
		{"end unset", staff.NewDate(2025, time.May, 1), staff.Date{}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := InclusiveDays(tc.start, tc.end); got != tc.want {
				t.Fatalf("got %d want %d", got, tc.want)
			}
		})
	}
}
