package site

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"
)

// Placeholder is the computed size and blur preview of one public image.
// Size and ModTime record the file they were computed from.
type Placeholder struct {
	Path        string
	Width       int
	Height      int
	BlurDataURL string
	Size        int64
	ModTime     time.Time
}

// Store wraps a SQLite database holding computed image placeholders.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and runs schema migrations.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, eris.Wrapf(err, "create data dir %s", dir)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, eris.Wrapf(err, "open %s", path)
	}
	// WAL lets request handlers read while a placeholder is being saved;
	// writers wait on busy_timeout instead of failing with SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, eris.Wrap(err, "set pragmas")
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS placeholders (
    path TEXT PRIMARY KEY,
    width INTEGER NOT NULL,
    height INTEGER NOT NULL,
    blur TEXT NOT NULL,
    size INTEGER NOT NULL,
    mod_time INTEGER NOT NULL
);
`)
	return eris.Wrap(err, "ensure schema")
}

// GetPlaceholder returns the stored placeholder for path. ok is false when
// none has been saved.
func (s *Store) GetPlaceholder(path string) (p Placeholder, ok bool, err error) {
	var modTime int64
	err = s.db.QueryRow(`SELECT width, height, blur, size, mod_time FROM placeholders WHERE path = ?`, path).
		Scan(&p.Width, &p.Height, &p.BlurDataURL, &p.Size, &modTime)
	if errors.Is(err, sql.ErrNoRows) {
		return Placeholder{}, false, nil
	}
	if err != nil {
		return Placeholder{}, false, eris.Wrapf(err, "get placeholder %s", path)
	}
	p.Path = path
	p.ModTime = time.Unix(0, modTime).UTC()
	return p, true, nil
}

// SavePlaceholder upserts a placeholder.
func (s *Store) SavePlaceholder(p Placeholder) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO placeholders (path, width, height, blur, size, mod_time) VALUES (?, ?, ?, ?, ?, ?)`,
		p.Path, p.Width, p.Height, p.BlurDataURL, p.Size, p.ModTime.UnixNano())
	return eris.Wrapf(err, "save placeholder %s", p.Path)
}

// DeletePlaceholder removes the placeholder for path.
func (s *Store) DeletePlaceholder(path string) error {
	_, err := s.db.Exec(`DELETE FROM placeholders WHERE path = ?`, path)
	return eris.Wrapf(err, "delete placeholder %s", path)
}

// ListPlaceholders returns every stored placeholder ordered by path.
func (s *Store) ListPlaceholders() ([]Placeholder, error) {
	rows, err := s.db.Query(`SELECT path, width, height, blur, size, mod_time FROM placeholders ORDER BY path`)
	if err != nil {
		return nil, eris.Wrap(err, "list placeholders")
	}
	defer rows.Close()

	var out []Placeholder
	for rows.Next() {
		var p Placeholder
		var modTime int64
		if err := rows.Scan(&p.Path, &p.Width, &p.Height, &p.BlurDataURL, &p.Size, &modTime); err != nil {
			return nil, eris.Wrap(err, "scan placeholder")
		}
		p.ModTime = time.Unix(0, modTime).UTC()
		out = append(out, p)
	}
	return out, eris.Wrap(rows.Err(), "list placeholders")
}
