package memorystore

import (
	"context"
	"testing"
	"time"

	"github.com/realmkit/premiumkit/premium"
)

func TestBackendRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New()

	e, err := s.Get(ctx, 7)
	if err != nil || e != nil {
		t.Fatalf("empty get = (%+v, %v), want (nil, nil)", e, err)
	}

	exp := time.Unix(5000, 0)
	if err := s.Insert(ctx, premium.Entitlement{SubjectID: 7, Level: 2, ExpiresAt: &exp}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	e, err = s.Get(ctx, 7)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil || e.Level != 2 || e.ExpiresAt == nil || !e.ExpiresAt.Equal(exp) {
		t.Fatalf("get = %+v", e)
	}

	// Mutating the returned record must not leak back into the store.
	e.Level = 99
	again, _ := s.Get(ctx, 7)
	if again.Level != 2 {
		t.Fatal("stored row aliased to returned record")
	}

	if err := s.Delete(ctx, 7); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if e, _ := s.Get(ctx, 7); e != nil {
		t.Fatalf("row survived delete: %+v", e)
	}
	if s.Len() != 0 {
		t.Fatalf("len = %d, want 0", s.Len())
	}
}

func TestBackendWithStore(t *testing.T) {
	ctx := context.Background()
	store := premium.NewStore(premium.ScopeAccount, New(), premium.DurationPolicy{})

	created, err := store.Create(ctx, 1, 3)
	if err != nil || !created {
		t.Fatalf("create = (%v, %v)", created, err)
	}
	created, err = store.Create(ctx, 1, 3)
	if err != nil || created {
		t.Fatalf("repeat create = (%v, %v), want (false, nil)", created, err)
	}
}
