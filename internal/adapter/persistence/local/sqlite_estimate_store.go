package local

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/kaosom/zipquote/internal/domain/entities"
	"github.com/kaosom/zipquote/internal/usecase/interfaces"

	_ "modernc.org/sqlite"
)

// EstimatesKey is the well-known key holding the serialized estimate collection.
const EstimatesKey = "estimates"

// SQLiteEstimateStore keeps the device estimate collection as one JSON value in a
// SQLite key-value table.
//
// Every write is a single committed statement or transaction, so readers either
// see the previous collection or the new one. synchronous=FULL makes the commit
// durable before the call returns.
type SQLiteEstimateStore struct {
	db     *sql.DB
	dbPath string
	mu     sync.Mutex
}

var _ interfaces.ILocalEstimateStore = (*SQLiteEstimateStore)(nil)

// NewSQLiteEstimateStore opens (or creates) the store at dbPath.
// ":memory:" is accepted for tests.
func NewSQLiteEstimateStore(dbPath string) (*SQLiteEstimateStore, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection keeps pragmas (and :memory: databases) stable.
	db.SetMaxOpenConns(1)

	store := &SQLiteEstimateStore{db: db, dbPath: dbPath}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *SQLiteEstimateStore) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *SQLiteEstimateStore) Path() string {
	return s.dbPath
}

func (s *SQLiteEstimateStore) initSchema() error {
	schema := `
	PRAGMA synchronous = FULL;
	PRAGMA busy_timeout = 5000;
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME NOT NULL
	);`
	_, err := s.db.Exec(schema)
	return err
}

// LoadAll returns the stored collection, or an empty slice on first run.
func (s *SQLiteEstimateStore) LoadAll(ctx context.Context) ([]entities.Estimate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx, s.db)
	if err != nil {
		return nil, &entities.LocalStoreError{Op: "load_all", Err: err}
	}
	return list, nil
}

// ReplaceAll overwrites the whole collection in one statement.
func (s *SQLiteEstimateStore) ReplaceAll(ctx context.Context, list []entities.Estimate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.save(ctx, s.db, list); err != nil {
		return &entities.LocalStoreError{Op: "replace_all", Err: err}
	}
	return nil
}

// Upsert replaces the estimate with the same id in place, or appends it.
func (s *SQLiteEstimateStore) Upsert(ctx context.Context, e entities.Estimate) error {
	return s.modify(ctx, "upsert", func(list []entities.Estimate) []entities.Estimate {
		for i := range list {
			if list[i].ID == e.ID {
				list[i] = e
				return list
			}
		}
		return append(list, e)
	})
}

// DeleteByID removes the estimate; a missing id leaves the collection untouched.
func (s *SQLiteEstimateStore) DeleteByID(ctx context.Context, id string) error {
	return s.modify(ctx, "delete_by_id", func(list []entities.Estimate) []entities.Estimate {
		out := list[:0]
		for _, e := range list {
			if e.ID != id {
				out = append(out, e)
			}
		}
		return out
	})
}

type queryExecer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *SQLiteEstimateStore) modify(ctx context.Context, op string, fn func([]entities.Estimate) []entities.Estimate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &entities.LocalStoreError{Op: op, Err: err}
	}
	list, err := s.load(ctx, tx)
	if err != nil {
		_ = tx.Rollback()
		return &entities.LocalStoreError{Op: op, Err: err}
	}
	if err := s.save(ctx, tx, fn(list)); err != nil {
		_ = tx.Rollback()
		return &entities.LocalStoreError{Op: op, Err: err}
	}
	if err := tx.Commit(); err != nil {
		return &entities.LocalStoreError{Op: op, Err: err}
	}
	return nil
}

func (s *SQLiteEstimateStore) load(ctx context.Context, q queryExecer) ([]entities.Estimate, error) {
	var raw string
	err := q.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, EstimatesKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return []entities.Estimate{}, nil
	}
	if err != nil {
		return nil, err
	}

	list := []entities.Estimate{}
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("decode %s: %w", EstimatesKey, err)
	}
	if list == nil {
		list = []entities.Estimate{}
	}
	return list, nil
}

func (s *SQLiteEstimateStore) save(ctx context.Context, q queryExecer, list []entities.Estimate) error {
	if list == nil {
		list = []entities.Estimate{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode %s: %w", EstimatesKey, err)
	}
	_, err = q.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		EstimatesKey, string(raw), time.Now().UTC().Format(time.RFC3339Nano))
	return err
}
