package memorystore

import (
	"context"
	"sync"

	"github.com/realmkit/premiumkit/premium"
)

// Store is an in-memory premium.Backend, keyed by subject id. It is
// intended for tests and single-node setups; the map key gives the
// storage-layer uniqueness the Store contract asks for.
type Store struct {
	mu   sync.Mutex
	rows map[uint64]premium.Entitlement
}

// New creates an empty in-memory backend.
func New() *Store {
	return &Store{rows: make(map[uint64]premium.Entitlement)}
}

func (s *Store) Get(ctx context.Context, subjectID uint64) (*premium.Entitlement, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.rows[subjectID]
	if !ok {
		return nil, nil
	}
	cp := e
	return &cp, nil
}

func (s *Store) Insert(ctx context.Context, e premium.Entitlement) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[e.SubjectID] = e
	return nil
}

func (s *Store) Delete(ctx context.Context, subjectID uint64) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rows, subjectID)
	return nil
}

// Len reports the number of stored rows.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}
