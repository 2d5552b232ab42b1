package vacation

import (
	"context"

	"github.com/google/uuid"

	"github.com/MdRaihanAli/staff-management-system-sub000/internal/staff"
)

// StaffResolver finds a staff record by native or legacy identity; the
// staff service satisfies this.
type StaffResolver interface {
	Resolve(ctx context.Context, idOrSL string) (staff.Record, error)
}

// Service validates vacation requests and keeps the denormalized staff
// fields consistent at creation time.
type Service struct {
	store Store
	staff StaffResolver
}

// NewService creates a service backed by a store and a staff lookup.
func NewService(store Store, staffResolver StaffResolver) *Service {
	return &Service{store: store, staff: staffResolver}
}

// List returns requests, optionally narrowed to one staff member and/or
// one status. Order is whatever the store yields (start date descending).
func (s *Service) List(ctx context.Context, staffID string, status Status) ([]Request, error) {
	all, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if staffID == "" && status == "" {
		return all, nil
	}
	out := make([]Request, 0, len(all))
	for _, req := range all {
		if staffID != "" && req.StaffID != staffID {
			continue
		}
		if status != "" && req.Status != status {
			continue
		}
		out = append(out, req)
	}
	return out, nil
}

// Get returns one request.
func (s *Service) Get(ctx context.Context, id string) (Request, error) {
	return s.store.Get(ctx, id)
}

// Create validates the request, copies in the referenced staff's name
// and batch, derives the day count and persists.
func (s *Service) Create(ctx context.Context, req Request) (Request, error) {
	if req.StaffID == "" {
		return Request{}, ErrStaffRequired
	}
	member, err := s.staff.Resolve(ctx, req.StaffID)
	if err != nil {
		return Request{}, err
	}
	if err := validate(&req); err != nil {
		return Request{}, err
	}
	req.ID = uuid.NewString()
	req.StaffID = member.ID
	req.StaffName = member.Name
	req.StaffBatchNo = member.BatchNo
	req.TotalDays = InclusiveDays(req.StartDate, req.EndDate)
	if err := s.store.Insert(ctx, req); err != nil {
		return Request{}, err
	}
	return req, nil
}

// Update overwrites a request. The staff reference and its denormalized
// copies are frozen at creation; the day count is re-derived. Status may
// move from any value to any other.
func (s *Service) Update(ctx context.Context, id string, req Request) (Request, error) {
	existing, err := s.store.Get(ctx, id)
	if err != nil {
		return Request{}, err
	}
	if err := validate(&req); err != nil {
		return Request{}, err
	}
	req.ID = existing.ID
	req.StaffID = existing.StaffID
	req.StaffName = existing.StaffName
	req.StaffBatchNo = existing.StaffBatchNo
	req.TotalDays = InclusiveDays(req.StartDate, req.EndDate)
	if err := s.store.Update(ctx, req); err != nil {
		return Request{}, err
	}
	return req, nil
}

// Delete removes a request.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// CountByStatus aggregates request counts for the stats endpoint.
func (s *Service) CountByStatus(ctx context.Context) (map[string]int, error) {
	all, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, req := range all {
		counts[string(req.Status)]++
	}
	return counts, nil
}

func validate(req *Request) error {
	if req.Status == "" {
		req.Status = StatusPending
	}
	if !req.Status.Valid() {
		return ErrInvalidStatus
	}
	if !req.StartDate.IsZero() && !req.EndDate.IsZero() && req.EndDate.Before(req.StartDate.Time) {
		return ErrDateOrder
	}
	if req.SalaryHold < 0 {
		req.SalaryHold = 0
	}
	if req.SalaryAdvance < 0 {
		req.SalaryAdvance = 0
	}
	return nil
}
