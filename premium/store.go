package premium

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidLevel is returned by Create for levels below 1.
// A level of zero is never stored; absence of a row is the canonical
// "no entitlement" state.
var ErrInvalidLevel = errors.New("premium: level must be >= 1")

// Backend is a durable table of entitlements keyed by subject id.
// Get returns (nil, nil) when no row exists for the subject — absence
// is a normal outcome, not an error. Implementations must keep the
// subject key unique at the storage layer (primary key or equivalent);
// the Store's own existence checks are not atomic under concurrent
// writers and rely on that as a last line of defense.
type Backend interface {
	Get(ctx context.Context, subjectID uint64) (*Entitlement, error)
	Insert(ctx context.Context, e Entitlement) error
	Delete(ctx context.Context, subjectID uint64) error
}

// Store provides Get/Create/Delete over a single scope's entitlement
// table. Construct one per scope and share it; the Store itself holds
// no mutable state beyond its backend handle.
type Store struct {
	scope   Scope
	backend Backend
	policy  DurationPolicy
	now     func() time.Time
}

// NewStore builds a store for one scope over the given backend.
func NewStore(scope Scope, backend Backend, policy DurationPolicy) *Store {
	return &Store{
		scope:   scope,
		backend: backend,
		policy:  policy,
		now:     time.Now,
	}
}

// Scope returns the key domain this store serves.
func (s *Store) Scope() Scope { return s.scope }

// Policy returns the duration policy applied to new grants.
func (s *Store) Policy() DurationPolicy { return s.policy }

// Get looks up the subject's entitlement. It returns the stored record
// as-is, including a possibly past ExpiresAt — expiration filtering is
// the sweeper's job, not Get's. A missing row returns (nil, nil).
func (s *Store) Get(ctx context.Context, subjectID uint64) (*Entitlement, error) {
	e, err := s.backend.Get(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("premium: get %s %d: %w", s.scope, subjectID, err)
	}
	return e, nil
}

// Create grants the subject the given level, computing the expiration
// from the store's duration policy. It returns false without touching
// storage when the subject already holds a grant; level changes go
// through Delete then Create.
//
// The existence check and the insert are two round-trips, not one
// atomic operation; the backend's key uniqueness catches the race.
func (s *Store) Create(ctx context.Context, subjectID uint64, level int) (bool, error) {
	if level < 1 {
		return false, ErrInvalidLevel
	}
	existing, err := s.Get(ctx, subjectID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	e := Entitlement{
		SubjectID: subjectID,
		Level:     level,
		ExpiresAt: s.policy.ExpiresAt(s.now()),
	}
	if err := s.backend.Insert(ctx, e); err != nil {
		return false, fmt.Errorf("premium: create %s %d: %w", s.scope, subjectID, err)
	}
	return true, nil
}

// Delete removes the subject's entitlement. It returns false when no
// grant exists, so repeated deletes are a no-op rather than a failure.
func (s *Store) Delete(ctx context.Context, subjectID uint64) (bool, error) {
	existing, err := s.Get(ctx, subjectID)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}
	if err := s.backend.Delete(ctx, subjectID); err != nil {
		return false, fmt.Errorf("premium: delete %s %d: %w", s.scope, subjectID, err)
	}
	return true, nil
}
