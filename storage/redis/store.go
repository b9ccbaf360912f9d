package redisstore

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/realmkit/premiumkit/premium"
)

// Store is a Redis-backed premium.Backend: one JSON blob per subject,
// keyed under a per-scope namespace. Redis keys are unique by
// construction, which satisfies the Backend uniqueness contract.
//
// Rows carry no Redis TTL even when the grant has an expiration —
// expiry stays lazy and sweep-driven so the semantics match the SQL
// backends exactly.
type Store struct {
	rdb   *redis.Client
	keyNS string
}

// NewAccountStore namespaces keys under premium:account:.
func NewAccountStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb, keyNS: "premium:account:"}
}

// NewCharacterStore namespaces keys under premium:character:.
func NewCharacterStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb, keyNS: "premium:character:"}
}

func (s *Store) key(subjectID uint64) string {
	return s.keyNS + strconv.FormatUint(subjectID, 10)
}

func (s *Store) Get(ctx context.Context, subjectID uint64) (*premium.Entitlement, error) {
	val, err := s.rdb.Get(ctx, s.key(subjectID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var e premium.Entitlement
	if err := json.Unmarshal(val, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Store) Insert(ctx context.Context, e premium.Entitlement) error {
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, s.key(e.SubjectID), b, 0).Err()
}

func (s *Store) Delete(ctx context.Context, subjectID uint64) error {
	return s.rdb.Del(ctx, s.key(subjectID)).Err()
}
