package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/realmkit/premiumkit/premium"
)

// Store is a SQLite-backed premium.Backend for single-node hosts that
// don't run Postgres. Each scope gets its own table inside one file;
// open the file once and construct a Store per scope over the shared
// handle.
type Store struct {
	db     *sql.DB
	table  string
	keyCol string
}

// Open opens (or creates) the premium database at dataPath and
// prepares both scope tables. The returned handle is shared by the
// per-scope stores from AccountStore and CharacterStore.
func Open(dataPath string) (*sql.DB, error) {
	dataPath = filepath.Clean(dataPath)
	if strings.TrimSpace(dataPath) == "" {
		return nil, fmt.Errorf("dataPath is required")
	}
	if err := os.MkdirAll(dataPath, 0755); err != nil {
		return nil, fmt.Errorf("create premium data dir: %w", err)
	}

	dbPath := filepath.Join(dataPath, "premium.db")
	dsn := dbPath + "?" + url.Values{
		"_pragma": []string{
			"busy_timeout(30000)",
			"journal_mode(WAL)",
			"synchronous(NORMAL)",
		},
	}.Encode()

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open premium db: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS premium_account (
		account_id INTEGER PRIMARY KEY,
		premium_level INTEGER NOT NULL CHECK (premium_level >= 1),
		duration INTEGER NOT NULL DEFAULT 0
	);
	CREATE TABLE IF NOT EXISTS premium_character (
		character_id INTEGER PRIMARY KEY,
		premium_level INTEGER NOT NULL CHECK (premium_level >= 1),
		duration INTEGER NOT NULL DEFAULT 0
	);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("init premium schema: %w", err)
	}
	return nil
}

// AccountStore wraps db as the account-scope backend.
func AccountStore(db *sql.DB) *Store {
	return &Store{db: db, table: "premium_account", keyCol: "account_id"}
}

// CharacterStore wraps db as the character-scope backend.
func CharacterStore(db *sql.DB) *Store {
	return &Store{db: db, table: "premium_character", keyCol: "character_id"}
}

func (s *Store) Get(ctx context.Context, subjectID uint64) (*premium.Entitlement, error) {
	var level int
	var duration int64
	err := s.db.QueryRowContext(ctx,
		`SELECT premium_level, duration FROM `+s.table+` WHERE `+s.keyCol+`=?`,
		int64(subjectID),
	).Scan(&level, &duration)
	if errors.Is(err, sql.ErrNoRows) {
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
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO `+s.table+` (`+s.keyCol+`, premium_level, duration) VALUES (?, ?, ?)`,
		int64(e.SubjectID), e.Level, duration,
	)
	return err
}

func (s *Store) Delete(ctx context.Context, subjectID uint64) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM `+s.table+` WHERE `+s.keyCol+`=?`,
		int64(subjectID),
	)
	return err
}
