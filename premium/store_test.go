package premium

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fakeBackend is a map-backed Backend; failErr, when set, makes every
// call fail so backend-error propagation can be exercised.
type fakeBackend struct {
	rows    map[uint64]Entitlement
	failErr error
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{rows: map[uint64]Entitlement{}}
}

func (b *fakeBackend) Get(_ context.Context, subjectID uint64) (*Entitlement, error) {
	if b.failErr != nil {
		return nil, b.failErr
	}
	e, ok := b.rows[subjectID]
	if !ok {
		return nil, nil
	}
	cp := e
	return &cp, nil
}

func (b *fakeBackend) Insert(_ context.Context, e Entitlement) error {
	if b.failErr != nil {
		return b.failErr
	}
	b.rows[e.SubjectID] = e
	return nil
}

func (b *fakeBackend) Delete(_ context.Context, subjectID uint64) error {
	if b.failErr != nil {
		return b.failErr
	}
	delete(b.rows, subjectID)
	return nil
}

func fixedClock(unix int64) func() time.Time {
	return func() time.Time { return time.Unix(unix, 0) }
}

func TestCreateGetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewStore(ScopeAccount, newFakeBackend(), DurationPolicy{Days: 30})
	s.now = fixedClock(1000)

	created, err := s.Create(ctx, 7, 2)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !created {
		t.Fatal("expected first create to succeed")
	}

	e, err := s.Get(ctx, 7)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil {
		t.Fatal("expected entitlement after create")
	}
	if e.Level != 2 {
		t.Errorf("level = %d, want 2", e.Level)
	}
	if e.ExpiresAt == nil {
		t.Fatal("expected expiration under 30-day policy")
	}
	if got, want := e.ExpiresAt.Unix(), int64(1000+30*86400); got != want {
		t.Errorf("expiresAt = %d, want %d", got, want)
	}

	deleted, err := s.Delete(ctx, 7)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !deleted {
		t.Fatal("expected delete to report removal")
	}
	e, err = s.Get(ctx, 7)
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if e != nil {
		t.Fatal("expected absence after delete")
	}
}

func TestCreateRejectsExisting(t *testing.T) {
	ctx := context.Background()
	s := NewStore(ScopeAccount, newFakeBackend(), DurationPolicy{})

	if created, _ := s.Create(ctx, 7, 2); !created {
		t.Fatal("first create should succeed")
	}
	created, err := s.Create(ctx, 7, 5)
	if err != nil {
		t.Fatalf("second create: %v", err)
	}
	if created {
		t.Fatal("second create should be refused")
	}
	// The stored level must be untouched by the refused create.
	e, _ := s.Get(ctx, 7)
	if e == nil || e.Level != 2 {
		t.Fatalf("stored level altered by refused create: %+v", e)
	}
}

func TestCreateRejectsInvalidLevel(t *testing.T) {
	ctx := context.Background()
	b := newFakeBackend()
	s := NewStore(ScopeAccount, b, DurationPolicy{})

	for _, level := range []int{0, -1} {
		created, err := s.Create(ctx, 7, level)
		if !errors.Is(err, ErrInvalidLevel) {
			t.Errorf("level %d: err = %v, want ErrInvalidLevel", level, err)
		}
		if created {
			t.Errorf("level %d: create reported success", level)
		}
	}
	if len(b.rows) != 0 {
		t.Fatal("invalid create reached storage")
	}
}

func TestDeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	s := NewStore(ScopeCharacter, newFakeBackend(), DurationPolicy{})

	if _, err := s.Create(ctx, 42, 1); err != nil {
		t.Fatalf("create: %v", err)
	}
	first, err := s.Delete(ctx, 42)
	if err != nil || !first {
		t.Fatalf("first delete = (%v, %v), want (true, nil)", first, err)
	}
	second, err := s.Delete(ctx, 42)
	if err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if second {
		t.Fatal("second delete should report nothing removed")
	}
}

func TestNoExpiryPolicy(t *testing.T) {
	ctx := context.Background()
	s := NewStore(ScopeCharacter, newFakeBackend(), DurationPolicy{Days: 0})
	s.now = fixedClock(1000)

	if _, err := s.Create(ctx, 42, 1); err != nil {
		t.Fatalf("create: %v", err)
	}
	e, _ := s.Get(ctx, 42)
	if e == nil {
		t.Fatal("expected entitlement")
	}
	if e.ExpiresAt != nil {
		t.Fatalf("expiresAt = %v, want never", e.ExpiresAt)
	}
}

func TestBackendErrorPropagates(t *testing.T) {
	ctx := context.Background()
	b := newFakeBackend()
	b.failErr = errors.New("connection refused")
	s := NewStore(ScopeAccount, b, DurationPolicy{})

	if _, err := s.Get(ctx, 7); err == nil {
		t.Error("get should surface the backend error")
	}
	if _, err := s.Create(ctx, 7, 1); err == nil {
		t.Error("create should surface the backend error")
	}
	if _, err := s.Delete(ctx, 7); err == nil {
		t.Error("delete should surface the backend error")
	}
}

func TestGetReturnsRawExpiredRow(t *testing.T) {
	ctx := context.Background()
	b := newFakeBackend()
	past := time.Unix(500, 0)
	b.rows[7] = Entitlement{SubjectID: 7, Level: 3, ExpiresAt: &past}
	s := NewStore(ScopeAccount, b, DurationPolicy{Days: 30})

	// Get does no expiration filtering; eviction is the sweeper's job.
	e, err := s.Get(ctx, 7)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil || e.ExpiresAt == nil || e.ExpiresAt.Unix() != 500 {
		t.Fatalf("expected the raw expired row, got %+v", e)
	}
}
