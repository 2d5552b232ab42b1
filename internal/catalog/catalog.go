// Package catalog manages the flat name lists (hotels, companies,
// departments) that classify staff records. Each list is a unique set of
// strings with no structure beyond that; deleting a name never touches
// staff records that reference it.
package catalog

import (
	"context"
	"errors"
	"strings"
)

// Kind names one of the collections.
type Kind string

const (
	Hotels      Kind = "hotel"
	Companies   Kind = "company"
	Departments Kind = "department"
)

// Valid reports whether k is a known collection.
func (k Kind) Valid() bool {
	switch k {
	case Hotels, Companies, Departments:
		return true
	}
	return false
}

var (
	ErrEmptyName = errors.New("name must not be empty")
	ErrExists    = errors.New("name already exists")
	ErrNotFound  = errors.New("name not found")
)

// Store is the persistence contract for one flat set per kind.
type Store interface {
	List(ctx context.Context, kind Kind) ([]string, error)
	// Add inserts name; ErrExists on an exact duplicate.
	Add(ctx context.Context, kind Kind, name string) error
	// Remove deletes name; ErrNotFound when absent.
	Remove(ctx context.Context, kind Kind, name string) error
}

// Service applies the trim/dedup rules in front of a Store.
type Service struct {
	store Store
}

// NewService creates a service backed by a store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// List returns the names of one collection in stored order.
func (s *Service) List(ctx context.Context, kind Kind) ([]string, error) {
	return s.store.List(ctx, kind)
}

// Add inserts a trimmed name. Duplicates are exact, case-sensitive.
func (s *Service) Add(ctx context.Context, kind Kind, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if err := s.store.Add(ctx, kind, name); err != nil {
		return "", err
	}
	return name, nil
}

// Remove deletes a name; removing an absent name is an error.
func (s *Service) Remove(ctx context.Context, kind Kind, name string) error {
	return s.store.Remove(ctx, kind, strings.TrimSpace(name))
}
