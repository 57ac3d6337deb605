package history

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sahilm/fuzzy"
	_ "modernc.org/sqlite"

	"github.com/sadopc/splitdiff/internal/logx"
)

var (
	// ErrNotFound is returned by Get when no entry matches a ref.
	ErrNotFound = errors.New("history entry not found")
	// ErrAmbiguous is returned by Get when a ref prefix matches several entries.
	ErrAmbiguous = errors.New("history ref is ambiguous")
)

// searchWindow bounds how many recent entries Search ranks.
const searchWindow = 500

// Store manages comparison history persistence.
type Store struct {
	db *sql.DB
}

// NewStore creates a new history store at the given path.
func NewStore(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("creating history dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}
	// A :memory: database exists per connection.
	db.SetMaxOpenConns(1)

	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}

	logx.Debugf("history: opened %s", dbPath)
	return &Store{db: db}, nil
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS comparisons (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			ref         TEXT NOT NULL UNIQUE,
			left_label  TEXT NOT NULL,
			right_label TEXT NOT NULL,
			left_text   TEXT NOT NULL,
			right_text  TEXT NOT NULL,
			algorithm   TEXT NOT NULL,
			normalize_json INTEGER NOT NULL DEFAULT 1,
			row_count   INTEGER NOT NULL,
			matched     INTEGER NOT NULL,
			added       INTEGER NOT NULL,
			removed     INTEGER NOT NULL,
			different   INTEGER NOT NULL,
			timestamp   TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_comparisons_timestamp ON comparisons(timestamp DESC);
	`)
	if err != nil {
		return fmt.Errorf("creating comparisons table: %w", err)
	}
	return migrate(db)
}

// migrate adds columns introduced after the first schema.
func migrate(db *sql.DB) error {
	has, err := hasColumn(db, "comparisons", "normalize_json")
	if err != nil {
		return err
	}
	if has {
		return nil
	}
	if _, err := db.Exec(`ALTER TABLE comparisons ADD COLUMN normalize_json INTEGER NOT NULL DEFAULT 1`); err != nil {
		return fmt.Errorf("adding normalize_json column: %w", err)
	}
	logx.Debugf("history: added normalize_json column")
	return nil
}

func hasColumn(db *sql.DB, table, column string) (bool, error) {
	rows, err := db.Query(`SELECT name FROM pragma_table_info(?)`, table)
	if err != nil {
		return false, fmt.Errorf("reading %s schema: %w", table, err)
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return false, fmt.Errorf("reading %s schema: %w", table, err)
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}

const selectColumns = `
	SELECT id, ref, left_label, right_label, left_text, right_text, algorithm, normalize_json,
	       row_count, matched, added, removed, different, timestamp
	FROM comparisons`

// Add inserts a new entry and returns its row ID. A Ref and Timestamp are
// assigned when missing.
func (s *Store) Add(e Entry) (int64, error) {
	if e.Ref == "" {
		e.Ref = uuid.New().String()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	result, err := s.db.Exec(`
		INSERT INTO comparisons (ref, left_label, right_label, left_text, right_text, algorithm, normalize_json,
		                         row_count, matched, added, removed, different, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Ref, e.LeftLabel, e.RightLabel, e.Left, e.Right, e.Algorithm, e.NormalizeJSON,
		e.Summary.Rows, e.Summary.Matched, e.Summary.Added, e.Summary.Removed, e.Summary.Different,
		e.Timestamp.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting history: %w", err)
	}
	return result.LastInsertId()
}

// List returns the most recent entries.
func (s *Store) List(limit, offset int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(selectColumns+`
		ORDER BY timestamp DESC, id DESC
		LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Get returns the entry whose ref equals or starts with ref. The prefix is
// compared literally and case-sensitively.
func (s *Store) Get(ref string) (Entry, error) {
	if ref == "" {
		return Entry{}, ErrNotFound
	}
	rows, err := s.db.Query(selectColumns+`
		WHERE substr(ref, 1, length(?)) = ?
		ORDER BY timestamp DESC
		LIMIT 2`, ref, ref)
	if err != nil {
		return Entry{}, fmt.Errorf("looking up %s: %w", ref, err)
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return Entry{}, err
	}
	switch len(entries) {
	case 0:
		return Entry{}, fmt.Errorf("%s: %w", ref, ErrNotFound)
	case 1:
		return entries[0], nil
	default:
		return Entry{}, fmt.Errorf("%s: %w", ref, ErrAmbiguous)
	}
}

// Search ranks recent entries by a fuzzy match of query against their
// labels, best match first.
func (s *Store) Search(query string) ([]Entry, error) {
	recent, err := s.List(searchWindow, 0)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return recent, nil
	}

	titles := make([]string, len(recent))
	for i, e := range recent {
		titles[i] = e.Title()
	}

	matches := fuzzy.Find(query, titles)
	out := make([]Entry, 0, len(matches))
	for _, m := range matches {
		out = append(out, recent[m.Index])
	}
	return out, nil
}

// Count returns the number of stored entries.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM comparisons").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting history: %w", err)
	}
	return n, nil
}

// Delete removes one entry by row ID.
func (s *Store) Delete(id int64) error {
	if _, err := s.db.Exec("DELETE FROM comparisons WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting history %d: %w", id, err)
	}
	return nil
}

// Clear removes all history entries.
func (s *Store) Clear() error {
	_, err := s.db.Exec("DELETE FROM comparisons")
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		var ts string
		err := rows.Scan(&e.ID, &e.Ref, &e.LeftLabel, &e.RightLabel, &e.Left, &e.Right, &e.Algorithm, &e.NormalizeJSON,
			&e.Summary.Rows, &e.Summary.Matched, &e.Summary.Added, &e.Summary.Removed, &e.Summary.Different, &ts)
		if err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		e.Timestamp, _ = time.Parse(time.RFC3339Nano, ts)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
