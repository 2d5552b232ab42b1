package staff

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Importer runs the two-phase bulk import: scan for duplicate batch
// numbers, then persist either immediately (clean file, or confirm=true)
// or after an explicit confirmation of the valid subset.
type Importer struct {
	store   Store
	pending PendingStore
	holdTTL time.Duration
}

// NewImporter wires the importer to the staff store and a pending stash.
func NewImporter(store Store, pending PendingStore, holdTTL time.Duration) *Importer {
	if holdTTL <= 0 {
		holdTTL = 15 * time.Minute
	}
	return &Importer{store: store, pending: pending, holdTTL: holdTTL}
}

// ImportResult reports what an import (or confirmation) did.
type ImportResult struct {
	Imported   int      `json:"imported"`
	Duplicates []string `json:"duplicates,omitempty"`
	// Token is set when valid rows are parked awaiting confirmation.
	Token   string `json:"token,omitempty"`
	Pending int    `json:"pending,omitempty"`
}

// Import checks every row's batch number against the store and against
// rows accepted earlier in the same file. Duplicate rows are dropped and
// reported by value. When all rows are duplicates the import aborts with
// ErrAllDuplicates; when only some are and confirm is false, the valid
// subset is parked and a token returned instead of persisting.
func (im *Importer) Import(ctx context.Context, rows []Record, confirm bool) (ImportResult, error) {
	existing, err := im.store.List(ctx)
	if err != nil {
		return ImportResult{}, err
	}

	var valid []Record
	var dups []string
	for _, row := range rows {
		row.Normalize()
		if im.duplicate(row.BatchNo, existing, valid) {
			dups = append(dups, row.BatchNo)
			continue
		}
		valid = append(valid, row)
	}

	if len(valid) == 0 && len(dups) > 0 {
		return ImportResult{Duplicates: dups}, ErrAllDuplicates
	}
	if len(dups) > 0 && !confirm {
		token, err := im.pending.Put(ctx, valid, im.holdTTL)
		if err != nil {
			return ImportResult{}, err
		}
		return ImportResult{Duplicates: dups, Token: token, Pending: len(valid)}, nil
	}

	n, err := im.persist(ctx, valid)
	return ImportResult{Imported: n, Duplicates: dups}, err
}

// Confirm persists a previously parked import. The duplicate scan runs
// again because the store may have moved since phase one; rows that
// became duplicates in the meantime are dropped and reported.
func (im *Importer) Confirm(ctx context.Context, token string) (ImportResult, error) {
	rows, err := im.pending.Take(ctx, token)
	if err != nil {
		return ImportResult{}, err
	}
	existing, err := im.store.List(ctx)
	if err != nil {
		return ImportResult{}, err
	}
	var valid []Record
	var dups []string
	for _, row := range rows {
		if im.duplicate(row.BatchNo, existing, valid) {
			dups = append(dups, row.BatchNo)
			continue
		}
		valid = append(valid, row)
	}
	n, err := im.persist(ctx, valid)
	return ImportResult{Imported: n, Duplicates: dups}, err
}

func (im *Importer) duplicate(batchNo string, existing, accepted []Record) bool {
	if batchNo == "" {
		return false
	}
	for _, r := range existing {
		if SameBatch(r.BatchNo, batchNo) {
			return true
		}
	}
	for _, r := range accepted {
		if SameBatch(r.BatchNo, batchNo) {
			return true
		}
	}
	return false
}

func (im *Importer) persist(ctx context.Context, rows []Record) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	max, err := im.store.MaxSL(ctx)
	if err != nil {
		return 0, err
	}
	inserted := 0
	for _, row := range rows {
		row.ID = uuid.NewString()
		max++
		row.SL = max
		if err := im.store.Insert(ctx, row); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}
