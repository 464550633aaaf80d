package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"sublink/internal/config"
)

// Store manages link history backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the ledger database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.LedgerPath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Record stores a created link. A row for the same link path is replaced, so
// the ledger always reflects the latest run that created it.
func (s *Store) Record(ctx context.Context, link Link) (Link, error) {
	if strings.TrimSpace(link.LinkPath) == "" {
		return Link{}, errors.New("link path is required")
	}
	if link.CreatedAt.IsZero() {
		link.CreatedAt = time.Now().UTC()
	}
	row := s.db.QueryRowContext(
		ctx,
		`INSERT INTO links (run_id, directory, video_path, language, source_path, link_path, created_at)
         VALUES (?, ?, ?, ?, ?, ?, ?)
         ON CONFLICT(link_path) DO UPDATE SET
             run_id = excluded.run_id,
             directory = excluded.directory,
             video_path = excluded.video_path,
             language = excluded.language,
             source_path = excluded.source_path,
             created_at = excluded.created_at
         RETURNING id`,
		link.RunID,
		link.Directory,
		link.VideoPath,
		link.Language,
		link.SourcePath,
		link.LinkPath,
		link.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err := row.Scan(&link.ID); err != nil {
		return Link{}, fmt.Errorf("record link: %w", err)
	}
	return link, nil
}

// Recent returns up to limit links, newest first. A non-positive limit returns all rows.
func (s *Store) Recent(ctx context.Context, limit int) ([]Link, error) {
	query := `SELECT ` + linkColumns + ` FROM links ORDER BY created_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	return s.query(ctx, query, args...)
}

// ForDirectory returns the links recorded for an input directory ordered by link path.
func (s *Store) ForDirectory(ctx context.Context, dir string) ([]Link, error) {
	return s.query(ctx, `SELECT `+linkColumns+` FROM links WHERE directory = ? ORDER BY link_path`, dir)
}

// Delete removes a ledger row. Deleting an unknown id is not an error.
func (s *Store) Delete(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM links WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete link %d: %w", id, err)
	}
	return nil
}

func (s *Store) query(ctx context.Context, query string, args ...any) ([]Link, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query links: %w", err)
	}
	defer rows.Close()

	var links []Link
	for rows.Next() {
		link, err := scanLink(rows)
		if err != nil {
			return nil, err
		}
		links = append(links, link)
	}
	return links, rows.Err()
}
