package staff

import (
	"context"
	"errors"
)

// Validation and lookup failures surfaced to the API layer. Store errors
// other than ErrNotFound bubble up untouched.
var (
	ErrNotFound       = errors.New("staff record not found")
	ErrNameRequired   = errors.New("name is required")
	ErrDuplicateBatch = errors.New("batch number already in use")
	ErrInvalidStatus  = errors.New("invalid status value")
	ErrInvalidVisa    = errors.New("invalid visa type")
	ErrInvalidAction  = errors.New("invalid bulk action")
	ErrAllDuplicates  = errors.New("every imported row duplicates an existing batch number")
	ErrImportExpired  = errors.New("pending import not found or expired")
)

// Store is the staff document collection. Implementations: Postgres JSONB
// (Repository) and the in-memory store used by tests.
type Store interface {
	// List returns all documents ordered by sl ascending.
	List(ctx context.Context) ([]Record, error)
	Get(ctx context.Context, id string) (Record, error)
	GetBySL(ctx context.Context, sl int64) (Record, error)
	Insert(ctx context.Context, rec Record) error
	// Update overwrites the whole document; ErrNotFound when id is unknown.
	Update(ctx context.Context, rec Record) error
	Delete(ctx context.Context, id string) error
	MaxSL(ctx context.Context) (int64, error)
}
