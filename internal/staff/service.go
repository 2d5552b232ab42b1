package staff

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Service carries the validation and mutation rules over a Store. It is
// deliberately stateless; every call re-reads whatever it needs, which
// keeps last-write-wins semantics and no cross-request coordination.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService creates a service backed by a store.
func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// WithClock overrides the time source. Tests only.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// List returns the records matching the filter, in stored (sl) order.
func (s *Service) List(ctx context.Context, f Filter) ([]Record, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return f.Apply(records, s.now()), nil
}

// Resolve finds a record by native UUID or by legacy numeric identity.
func (s *Service) Resolve(ctx context.Context, idOrSL string) (Record, error) {
	if _, err := uuid.Parse(idOrSL); err == nil {
		return s.store.Get(ctx, idOrSL)
	}
	if sl, err := strconv.ParseInt(idOrSL, 10, 64); err == nil {
		return s.store.GetBySL(ctx, sl)
	}
	return Record{}, ErrNotFound
}

// Create validates and persists a new record, assigning id and sl.
func (s *Service) Create(ctx context.Context, rec Record) (Record, error) {
	rec.Normalize()
	if err := s.validate(ctx, &rec, ""); err != nil {
		return Record{}, err
	}
	max, err := s.store.MaxSL(ctx)
	if err != nil {
		return Record{}, err
	}
	rec.ID = uuid.NewString()
	rec.SL = max + 1
	if err := s.store.Insert(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Update overwrites the record found by idOrSL with the submitted
// document. Identity and sequence number are immutable.
func (s *Service) Update(ctx context.Context, idOrSL string, rec Record) (Record, error) {
	existing, err := s.Resolve(ctx, idOrSL)
	if err != nil {
		return Record{}, err
	}
	rec.Normalize()
	if err := s.validate(ctx, &rec, existing.ID); err != nil {
		return Record{}, err
	}
	rec.ID = existing.ID
	rec.SL = existing.SL
	if err := s.store.Update(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Delete removes a single record.
func (s *Service) Delete(ctx context.Context, idOrSL string) error {
	existing, err := s.Resolve(ctx, idOrSL)
	if err != nil {
		return err
	}
	return s.store.Delete(ctx, existing.ID)
}

// validate enforces the create/update rules. excludeID skips the record
// being updated in the duplicate scan.
func (s *Service) validate(ctx context.Context, rec *Record, excludeID string) error {
	if rec.Name == "" {
		return ErrNameRequired
	}
	if !rec.Status.Valid() {
		return ErrInvalidStatus
	}
	if !rec.VisaType.Valid() {
		return ErrInvalidVisa
	}
	if rec.Salary < 0 {
		rec.Salary = 0
	}
	if rec.BatchNo == "" {
		return nil
	}
	records, err := s.store.List(ctx)
	if err != nil {
		return err
	}
	for _, other := range records {
		if other.ID == excludeID {
			continue
		}
		if SameBatch(other.BatchNo, rec.BatchNo) {
			return ErrDuplicateBatch
		}
	}
	return nil
}

// BulkAction is one of the supported multi-record mutations.
type BulkAction string

const (
	BulkDelete    BulkAction = "delete"
	BulkSetHotel  BulkAction = "set-hotel"
	BulkSetStatus BulkAction = "set-status"
)

// BulkRequest applies one action to every listed identity.
type BulkRequest struct {
	Action BulkAction
	IDs    []string
	Hotel  string
	Status Status
}

// Bulk applies the request and returns how many records changed. Unknown
// identities are skipped silently.
func (s *Service) Bulk(ctx context.Context, req BulkRequest) (int, error) {
	switch req.Action {
	case BulkDelete, BulkSetHotel:
	case BulkSetStatus:
		if !req.Status.Valid() {
			return 0, ErrInvalidStatus
		}
	default:
		return 0, ErrInvalidAction
	}

	changed := 0
	for _, id := range req.IDs {
		rec, err := s.Resolve(ctx, id)
		if err == ErrNotFound {
			continue
		}
		if err != nil {
			return changed, err
		}
		switch req.Action {
		case BulkDelete:
			err = s.store.Delete(ctx, rec.ID)
		case BulkSetHotel:
			rec.Hotel = req.Hotel
			err = s.store.Update(ctx, rec)
		case BulkSetStatus:
			rec.Status = req.Status
			err = s.store.Update(ctx, rec)
		}
		if err != nil && err != ErrNotFound {
			return changed, err
		}
		if err == nil {
			changed++
		}
	}
	return changed, nil
}

// Stats is an aggregate snapshot of the staff collection.
type Stats struct {
	Total    int            `json:"total"`
	Working  int            `json:"working"`
	Jobless  int            `json:"jobless"`
	Exited   int            `json:"exited"`
	Expired  int            `json:"expired"`
	Expiring int            `json:"expiring"`
	ByHotel  map[string]int `json:"byHotel"`
}

// Snapshot computes counters over the whole collection.
func (s *Service) Snapshot(ctx context.Context) (Stats, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	now := s.now()
	st := Stats{ByHotel: make(map[string]int)}
	for _, r := range records {
		st.Total++
		switch r.Status {
		case StatusWorking:
			st.Working++
		case StatusJobless:
			st.Jobless++
		case StatusExited:
			st.Exited++
		}
		if matchesExpireBucket(r.ExpireDate, BucketExpired, now) {
			st.Expired++
		}
		if matchesExpireBucket(r.ExpireDate, BucketExpiring, now) {
			st.Expiring++
		}
		if r.Hotel != "" {
			st.ByHotel[r.Hotel]++
		}
	}
	return st, nil
}
