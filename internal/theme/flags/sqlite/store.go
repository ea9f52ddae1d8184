// Package sqlite provides a SQLite-backed onboarding flag store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/pathway/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/pathway/internal/theme/flags"
	"github.com/louisbranch/pathway/internal/theme/flags/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists onboarding flags in SQLite.
type Store struct {
	sqlDB *sql.DB
}

var _ flags.Store = (*Store)(nil)

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}

// Open opens a SQLite flag store and applies embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	if path == ":memory:" {
		dsn = ":memory:"
	}
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if path == ":memory:" {
		// Every pooled connection would otherwise get its own database.
		sqlDB.SetMaxOpenConns(1)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Load returns the flags of one session.
func (s *Store) Load(ctx context.Context, sessionID string) (flags.Session, bool, error) {
	if err := ctx.Err(); err != nil {
		return flags.Session{}, false, err
	}
	if s == nil || s.sqlDB == nil {
		return flags.Session{}, false, fmt.Errorf("storage is not configured")
	}

	var (
		session      flags.Session
		startWithAI  int
		importDesign int
		updatedAt    int64
	)
	err := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT start_with_ai, import_design, start_source, activation_hash, updated_at
		 FROM onboarding_flags
		 WHERE session_id = ?`,
		sessionID,
	).Scan(&startWithAI, &importDesign, &session.StartSource, &session.ActivationHash, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return flags.Session{}, false, nil
	}
	if err != nil {
		return flags.Session{}, false, fmt.Errorf("load onboarding flags: %w", err)
	}
	session.StartWithAI = startWithAI != 0
	session.ImportDesign = importDesign != 0
	session.UpdatedAt = fromMillis(updatedAt)
	return session, true, nil
}

// Save upserts the flags of one session.
func (s *Store) Save(ctx context.Context, sessionID string, session flags.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(sessionID) == "" {
		return flags.ErrSessionRequired
	}
	updatedAt := session.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO onboarding_flags (
		   session_id,
		   start_with_ai,
		   import_design,
		   start_source,
		   activation_hash,
		   updated_at
		 ) VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(session_id) DO UPDATE SET
		   start_with_ai = excluded.start_with_ai,
		   import_design = excluded.import_design,
		   start_source = excluded.start_source,
		   activation_hash = excluded.activation_hash,
		   updated_at = excluded.updated_at`,
		sessionID,
		boolToInt(session.StartWithAI),
		boolToInt(session.ImportDesign),
		session.StartSource,
		session.ActivationHash,
		toMillis(updatedAt),
	)
	if err != nil {
		return fmt.Errorf("save onboarding flags: %w", err)
	}
	return nil
}

// Prune deletes sessions last updated before olderThan and returns how many
// were removed.
func (s *Store) Prune(ctx context.Context, olderThan time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	result, err := s.sqlDB.ExecContext(ctx, `DELETE FROM onboarding_flags WHERE updated_at < ?`, toMillis(olderThan))
	if err != nil {
		return 0, fmt.Errorf("prune onboarding flags: %w", err)
	}
	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune onboarding flags: %w", err)
	}
	return removed, nil
}
