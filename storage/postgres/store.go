package pgstore

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/realmkit/premiumkit/premium"
)

// Store is a Postgres-backed premium.Backend over one scope's table.
// The subject column is the table's primary key (see the migrations),
// which is what catches the Store's narrow create/create race.
//
// Expirations are persisted as unix seconds in the duration column,
// 0 meaning "never expires", matching the legacy schema.
type Store struct {
	pg     *pgxpool.Pool
	table  string
	keyCol string
}

// NewAccountStore targets the premium_account table. The two scopes
// may sit on entirely separate pools; nothing here assumes otherwise.
func NewAccountStore(pg *pgxpool.Pool) *Store {
	return &Store{pg: pg, table: "premium_account", keyCol: "account_id"}
}

// NewCharacterStore targets the premium_character table.
func NewCharacterStore(pg *pgxpool.Pool) *Store {
	return &Store{pg: pg, table: "premium_character", keyCol: "character_id"}
}

func (s *Store) Get(ctx context.Context, subjectID uint64) (*premium.Entitlement, error) {
	var level int
	var duration int64
	err := s.pg.QueryRow(ctx,
		`SELECT premium_level, duration FROM `+s.table+` WHERE `+s.keyCol+`=$1`,
		int64(subjectID),
	).Scan(&level, &duration)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	e := &premium.Entitlement{SubjectID: subjectID, Level: level}
	if duration != 0 {
		t := time.Unix(duration, 0)
		e.ExpiresAt = &t
	}
	return e, nil
}

func (s *Store) Insert(ctx context.Context, e premium.Entitlement) error {
	var duration int64
	if e.ExpiresAt != nil {
		duration = e.ExpiresAt.Unix()
	}
	_, err := s.pg.Exec(ctx,
		`INSERT INTO `+s.table+` (`+s.keyCol+`, premium_level, duration) VALUES ($1, $2, $3)`,
		int64(e.SubjectID), e.Level, duration,
	)
	return err
}

func (s *Store) Delete(ctx context.Context, subjectID uint64) error {
	_, err := s.pg.Exec(ctx,
		`DELETE FROM `+s.table+` WHERE `+s.keyCol+`=$1`,
		int64(subjectID),
	)
	return err
}
