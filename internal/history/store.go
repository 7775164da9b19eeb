// Package history persists accepted picks in a local SQLite database so
// frequent choices can be resurfaced later. The store lives alongside the
// rest of the user state in ~/.winnow and is strictly optional: callers are
// expected to keep working when it cannot be opened.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver, WAL-friendly

	appErrors "winnow/internal/errors"
)

// FileName is the name of the history database file.
const FileName = "history.db"

// Entry is one remembered pick.
type Entry struct {
	Text     string
	Picks    int
	LastUsed time.Time
}

// Store wraps the SQLite handle for the pick history.
type Store struct {
	dbPath string
	db     *sql.DB
}

// DefaultPath returns the history database path under the user's home.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine user home: %w", err)
	}
	return filepath.Join(home, ".winnow", FileName), nil
}

// Open opens (creating if needed) the history database at dbPath.
func Open(dbPath string) (*Store, error) {
	trimmed := strings.TrimSpace(dbPath)
	if trimmed == "" {
		return nil, appErrors.New(appErrors.CodeHistoryUnavailable, "history path is empty", nil)
	}
	//nolint:gosec // G301: User state directory needs standard permissions
	if err := os.MkdirAll(filepath.Dir(trimmed), 0755); err != nil {
		return nil, appErrors.New(appErrors.CodeHistoryUnavailable,
			fmt.Sprintf("create history directory: %v", err), err)
	}

	db, err := sql.Open("sqlite", buildDSN(trimmed))
	if err != nil {
		return nil, appErrors.New(appErrors.CodeHistoryUnavailable,
			fmt.Sprintf("open history db: %v", err), err)
	}
	// modernc.org/sqlite serializes writes; a single connection avoids
	// SQLITE_BUSY churn entirely for this small store.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, appErrors.New(appErrors.CodeHistoryUnavailable,
			fmt.Sprintf("ping history db: %v", err), err)
	}
	if err := ensureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, appErrors.New(appErrors.CodeHistoryUnavailable,
			fmt.Sprintf("prepare history schema: %v", err), err)
	}

	return &Store{dbPath: trimmed, db: db}, nil
}

// buildDSN creates a read-write WAL DSN for the given path.
func buildDSN(dbPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(dbPath),
	}
	q := url.Values{}
	q.Set("mode", "rwc")
	q.Set("_journal_mode", "WAL")
	q.Set("_busy_timeout", "3000")
	q.Set("_foreign_keys", "on")
	u.RawQuery = q.Encode()
	return u.String()
}

func ensureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS picks (
			text      TEXT PRIMARY KEY,
			picks     INTEGER NOT NULL DEFAULT 1,
			last_used TIMESTAMP NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_picks_last_used ON picks(last_used DESC);
	`)
	return err
}

// Record remembers an accepted pick, bumping its count if already known.
func (s *Store) Record(ctx context.Context, text string) error {
	return s.recordAt(ctx, text, time.Now().UTC())
}

// recordAt is the clock-injected body of Record, split out for tests.
func (s *Store) recordAt(ctx context.Context, text string, when time.Time) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO picks (text, picks, last_used) VALUES (?, 1, ?)
		ON CONFLICT(text) DO UPDATE SET
			picks = picks + 1,
			last_used = excluded.last_used
	`, text, when)
	if err != nil {
		return fmt.Errorf("record pick: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, most recently used first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT text, picks, last_used
		FROM picks
		ORDER BY last_used DESC, picks DESC, text
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query picks: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Text, &e.Picks, &e.LastUsed); err != nil {
			return nil, fmt.Errorf("scan pick: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Prune drops everything beyond the keep most recently used entries.
func (s *Store) Prune(ctx context.Context, keep int) error {
	if keep < 0 {
		keep = 0
	}
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM picks WHERE text NOT IN (
			SELECT text FROM picks ORDER BY last_used DESC, picks DESC, text LIMIT ?
		)
	`, keep)
	if err != nil {
		return fmt.Errorf("prune picks: %w", err)
	}
	return nil
}

// Path returns the database file path the store was opened with.
func (s *Store) Path() string {
	return s.dbPath
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
