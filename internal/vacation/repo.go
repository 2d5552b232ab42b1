package vacation

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Store is the vacation document collection.
type Store interface {
	List(ctx context.Context) ([]Request, error)
	Get(ctx context.Context, id string) (Request, error)
	Insert(ctx context.Context, req Request) error
	Update(ctx context.Context, req Request) error
	Delete(ctx context.Context, id string) error
}

// Repository persists vacation documents in Postgres as JSONB.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// List returns all requests ordered by start date descending, newest
// requests first the way the listing screen shows them.
func (r *Repository) List(ctx context.Context) ([]Request, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT doc FROM vacation_docs ORDER BY doc->>'startDate' DESC, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Request
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var req Request
		if err := json.Unmarshal(raw, &req); err != nil {
			return nil, fmt.Errorf("decode vacation doc: %w", err)
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

// Get returns one request by id.
func (r *Repository) Get(ctx context.Context, id string) (Request, error) {
	var raw []byte
	err := r.db.QueryRowContext(ctx, `SELECT doc FROM vacation_docs WHERE id = $1`, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return Request{}, ErrNotFound
	}
	if err != nil {
		return Request{}, err
	}
	var req Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return Request{}, fmt.Errorf("decode vacation doc: %w", err)
	}
	return req, nil
}

// Insert writes a new document.
func (r *Repository) Insert(ctx context.Context, req Request) error {
	doc, err := json.Marshal(req)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO vacation_docs (id, doc) VALUES ($1, $2)
	`, req.ID, doc)
	return err
}

// Update overwrites the stored document.
func (r *Repository) Update(ctx context.Context, req Request) error {
	doc, err := json.Marshal(req)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE vacation_docs SET doc = $2 WHERE id = $1
	`, req.ID, doc)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Delete removes a document.
func (r *Repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vacation_docs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
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

// MemStore is the in-memory Store used by tests.
type MemStore struct {
	mu   sync.Mutex
	docs map[string]Request
}

// NewMemStore creates an empty collection.
func NewMemStore() *MemStore {
	return &MemStore{docs: make(map[string]Request)}
}

// List returns all requests ordered by start date descending.
func (m *MemStore) List(ctx context.Context) ([]Request, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, 0, len(m.docs))
	for _, req := range m.docs {
		out = append(out, req)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartDate.Equal(out[j].StartDate.Time) {
			return out[i].StartDate.After(out[j].StartDate.Time)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Get returns one request by id.
func (m *MemStore) Get(ctx context.Context, id string) (Request, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	req, ok := m.docs[id]
	if !ok {
		return Request{}, ErrNotFound
	}
	return req, nil
}

// Insert writes a new document.
func (m *MemStore) Insert(ctx context.Context, req Request) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[req.ID] = req
	return nil
}

// Update overwrites the stored document.
func (m *MemStore) Update(ctx context.Context, req Request) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[req.ID]; !ok {
		return ErrNotFound
	}
	m.docs[req.ID] = req
	return nil
}

// Delete removes a document.
func (m *MemStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[id]; !ok {
		return ErrNotFound
	}
	delete(m.docs, id)
	return nil
}
