// Package sqlite stores scoreboard snapshots in SQLite, one row per record key.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/tantoak/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/tantoak/internal/services/scoreboard/storage"
	"github.com/louisbranch/tantoak/internal/services/scoreboard/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed snapshot persistence.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// Open opens a scoreboard SQLite store and applies migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if err := sqlitemigrate.ApplyMigrations(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close releases the SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Load reads every record key and rebuilds the snapshot.
func (s *Store) Load(ctx context.Context) (storage.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return storage.Snapshot{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Snapshot{}, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `SELECT key, payload FROM score_records`)
	if err != nil {
		return storage.Snapshot{}, fmt.Errorf("load score records: %w", err)
	}
	defer rows.Close()

	records := make(map[string][]byte, len(storage.Keys))
	for rows.Next() {
		var key, payload string
		if err := rows.Scan(&key, &payload); err != nil {
			return storage.Snapshot{}, fmt.Errorf("scan score record: %w", err)
		}
		records[key] = []byte(payload)
	}
	if err := rows.Err(); err != nil {
		return storage.Snapshot{}, fmt.Errorf("iterate score records: %w", err)
	}

	return storage.DecodeRecords(records, storage.DefaultSnapshot())
}

// Save upserts all record keys in a single transaction.
func (s *Store) Save(ctx context.Context, snapshot storage.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	records, err := storage.EncodeRecords(snapshot)
	if err != nil {
		return err
	}
	updatedAt := s.now().UTC().UnixMilli()

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	for _, key := range storage.Keys {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO score_records (key, payload, updated_at)
VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET
	payload = excluded.payload,
	updated_at = excluded.updated_at
`,
			key,
			string(records[key]),
			updatedAt,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("save %s record: %w", key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

var _ storage.SnapshotStore = (*Store)(nil)
