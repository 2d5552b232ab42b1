package staff

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// Repository persists staff documents in Postgres. Each record is a JSONB
// document keyed by UUID, with sl mirrored into its own column for
// ordering and legacy numeric lookup.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// List returns the whole collection in sl order.
func (r *Repository) List(ctx context.Context) ([]Record, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT doc FROM staff_docs ORDER BY sl, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var rec Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("decode staff doc: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Get returns a single document by id.
func (r *Repository) Get(ctx context.Context, id string) (Record, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, `SELECT doc FROM staff_docs WHERE id = $1`, id))
}

// GetBySL returns a document by its legacy numeric identity.
func (r *Repository) GetBySL(ctx context.Context, sl int64) (Record, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, `SELECT doc FROM staff_docs WHERE sl = $1 LIMIT 1`, sl))
}

func (r *Repository) scanOne(row *sql.Row) (Record, error) {
	var raw []byte
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Record{}, fmt.Errorf("decode staff doc: %w", err)
	}
	return rec, nil
}

// Insert writes a new document.
func (r *Repository) Insert(ctx context.Context, rec Record) error {
	doc, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO staff_docs (id, sl, doc)
		VALUES ($1, $2, $3)
	`, rec.ID, rec.SL, doc)
	return err
}

// Update overwrites the stored document.
func (r *Repository) Update(ctx context.Context, rec Record) error {
	doc, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE staff_docs SET sl = $2, doc = $3 WHERE id = $1
	`, rec.ID, rec.SL, doc)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Delete removes a document by id.
func (r *Repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM staff_docs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// MaxSL returns the highest assigned sequence number, 0 when empty.
func (r *Repository) MaxSL(ctx context.Context) (int64, error) {
	var max int64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(sl), 0) FROM staff_docs`).Scan(&max)
	return max, err
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
