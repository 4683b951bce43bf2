// Package draft keeps confessions composed offline in a local SQLite
// database under the state directory. Drafts never leave the machine until
// the user posts them; content can optionally be sealed with the vault.
package draft

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Draft is a locally stored, unpublished confession.
type Draft struct {
	ID        string
	Mood      string
	Content   string // plaintext, or vault-sealed when Sealed is true
	Sealed    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store wraps the SQLite drafts database.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the default drafts database path (~/.confide/drafts.db).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".confide", "drafts.db"), nil
}

// Open opens or creates the drafts database.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open drafts database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to drafts database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return s, nil
}

// OpenDefault opens the database at the default path.
func OpenDefault() (*Store, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Open(path)
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS drafts (
			id         TEXT PRIMARY KEY,
			mood       TEXT NOT NULL,
			content    TEXT NOT NULL,
			sealed     INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`)
	return err
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts a new draft and returns it with a fresh id.
func (s *Store) Save(ctx context.Context, mood, content string, sealed bool) (*Draft, error) {
	now := time.Now().UTC()
	d := &Draft{
		ID:        uuid.New().String(),
		Mood:      mood,
		Content:   content,
		Sealed:    sealed,
		CreatedAt: now,
		UpdatedAt: now,
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO drafts (id, mood, content, sealed, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		d.ID, d.Mood, d.Content, boolToInt(d.Sealed),
		d.CreatedAt.Format(time.RFC3339), d.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}
	return d, nil
}

// Update replaces a draft's mood and content.
func (s *Store) Update(ctx context.Context, id, mood, content string, sealed bool) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE drafts SET mood = ?, content = ?, sealed = ?, updated_at = ? WHERE id = ?`,
		mood, content, boolToInt(sealed), time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("failed to update draft: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("draft %s not found", id)
	}
	return nil
}

// Get fetches a single draft by id.
func (s *Store) Get(ctx context.Context, id string) (*Draft, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, mood, content, sealed, created_at, updated_at FROM drafts WHERE id = ?`, id)
	d, err := scanDraft(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("draft %s not found", id)
	}
	return d, err
}

// List returns all drafts, newest first.
func (s *Store) List(ctx context.Context) ([]Draft, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, mood, content, sealed, created_at, updated_at FROM drafts ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}
	defer rows.Close()

	var drafts []Draft
	for rows.Next() {
		d, err := scanDraft(rows.Scan)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, *d)
	}
	return drafts, rows.Err()
}

// Delete removes a draft. Used after a successful post and by explicit
// deletion.
func (s *Store) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM drafts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}

func scanDraft(scan func(...interface{}) error) (*Draft, error) {
	var d Draft
	var sealed int
	var createdAt, updatedAt string
	if err := scan(&d.ID, &d.Mood, &d.Content, &sealed, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	d.Sealed = sealed != 0
	d.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	d.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &d, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
