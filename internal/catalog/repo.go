package catalog

import (
	"context"
	"database/sql"
)

// Repository keeps all catalog kinds in one two-column table.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// List returns the names of one kind in insertion-friendly (name) order.
func (r *Repository) List(ctx context.Context, kind Kind) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT name FROM catalog_entries WHERE kind = $1 ORDER BY name
	`, string(kind))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Add inserts a name; the primary key turns duplicates into ErrExists.
func (r *Repository) Add(ctx context.Context, kind Kind, name string) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO catalog_entries (kind, name)
		VALUES ($1, $2)
		ON CONFLICT (kind, name) DO NOTHING
	`, string(kind), name)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrExists
	}
	return nil
}

// Remove deletes a name.
func (r *Repository) Remove(ctx context.Context, kind Kind, name string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM catalog_entries WHERE kind = $1 AND name = $2
	`, string(kind), name)
	if err != nil {
		return err
	}
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
	sets map[Kind][]string
}

// NewMemStore creates empty collections.
func NewMemStore() *MemStore {
	return &MemStore{sets: make(map[Kind][]string)}
}

// List returns the names of one kind in insertion order.
func (m *MemStore) List(ctx context.Context, kind Kind) ([]string, error) {
	return append([]string(nil), m.sets[kind]...), nil
}

// Add inserts a name; ErrExists on exact duplicates.
func (m *MemStore) Add(ctx context.Context, kind Kind, name string) error {
	for _, existing := range m.sets[kind] {
		if existing == name {
			return ErrExists
		}
	}
	m.sets[kind] = append(m.sets[kind], name)
	return nil
}

// Remove deletes a name; ErrNotFound when absent.
func (m *MemStore) Remove(ctx context.Context, kind Kind, name string) error {
	for i, existing := range m.sets[kind] {
		if existing == name {
			m.sets[kind] = append(m.sets[kind][:i], m.sets[kind][i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
