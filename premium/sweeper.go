package premium

import (
	"context"
	"time"
)

// SweepIfExpired evicts the subject's entitlement when its expiration
// has passed at now. It is meant to be called from entity triggers
// (login, activation) rather than a background schedule: an expired
// grant costs nothing while its subject is inactive.
//
// Reports whether a row was removed. A concurrent delete by another
// path is not an error; the Delete result is consulted only for the
// return value.
func SweepIfExpired(ctx context.Context, store *Store, subjectID uint64, now time.Time) (bool, error) {
	e, err := store.Get(ctx, subjectID)
	if err != nil {
		return false, err
	}
	if e == nil || e.ExpiresAt == nil {
		return false, nil
	}
	if !e.Expired(now) {
		return false, nil
	}
	removed, err := store.Delete(ctx, subjectID)
	if err != nil {
		return false, err
	}
	return removed, nil
}
