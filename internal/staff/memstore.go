package staff

import (
	"context"
	"sort"
	"sync"
)

// MemStore is an in-memory Store. It backs the unit tests and keeps the
// same ordering and error contract as the Postgres repository.
type MemStore struct {
	mu   sync.Mutex
	docs map[string]Record
}

// NewMemStore creates an empty in-memory collection.
func NewMemStore() *MemStore {
	return &MemStore{docs: make(map[string]Record)}
}

// List returns all documents ordered by sl ascending.
func (m *MemStore) List(ctx context.Context) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Record, 0, len(m.docs))
	for _, rec := range m.docs {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SL != out[j].SL {
			return out[i].SL < out[j].SL
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Get returns a document by id.
func (m *MemStore) Get(ctx context.Context, id string) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.docs[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

// GetBySL returns a document by its legacy numeric identity.
func (m *MemStore) GetBySL(ctx context.Context, sl int64) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, rec := range m.docs {
		if rec.SL == sl {
			return rec, nil
		}
	}
	return Record{}, ErrNotFound
}

// Insert writes a new document.
func (m *MemStore) Insert(ctx context.Context, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[rec.ID] = rec
	return nil
}

// Update overwrites the stored document.
func (m *MemStore) Update(ctx context.Context, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[rec.ID]; !ok {
		return ErrNotFound
	}
	m.docs[rec.ID] = rec
	return nil
}

// Delete removes a document by id.
func (m *MemStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[id]; !ok {
		return ErrNotFound
	}
	delete(m.docs, id)
	return nil
}

// MaxSL returns the highest assigned sequence number, 0 when empty.
func (m *MemStore) MaxSL(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var max int64
	for _, rec := range m.docs {
		if rec.SL > max {
			max = rec.SL
		}
	}
	return max, nil
}
