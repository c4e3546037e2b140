// internal/history/store.go
package history

import (
	"database/sql"

	"github.com/adrg/xdg"
	_ "github.com/mattn/go-sqlite3"
)

// Store manages query history persistence
type Store struct {
	db *sql.DB
}

// NewStore creates a new history store with SQLite backend
func NewStore() (*Store, error) {
	dbPath, err := xdg.DataFile("sqlpane/history.db")
	if err != nil {
		return nil, err
	}
	return open(dbPath)
}

// NewStoreAt opens a store at an explicit path. Used by tests.
func NewStoreAt(path string) (*Store, error) {
	return open(path)
}

func open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			connection TEXT NOT NULL,
			query TEXT NOT NULL,
			executed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			duration_ms INTEGER NOT NULL,
			row_count INTEGER NOT NULL,
			status TEXT NOT NULL,
			error_message TEXT,
			preview TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_history_connection ON history(connection);
		CREATE INDEX IF NOT EXISTS idx_history_executed_at ON history(executed_at);
	`)
	if err != nil {
		return nil, err
	}

	store := &Store{db: db}
	// Best effort prune of stale entries on startup.
	_ = store.cleanup()
	return store, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Add inserts a new execution into history
func (s *Store) Add(entry *Entry) error {
	res, err := s.db.Exec(`
		INSERT INTO history (connection, query, executed_at, duration_ms, row_count, status, error_message, preview)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		entry.Connection,
		entry.Query,
		entry.ExecutedAt,
		entry.DurationMs,
		entry.RowCount,
		entry.Status,
		entry.ErrorMessage,
		entry.Preview,
	)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	entry.ID = id

	return s.enforceLimit(entry.Connection, maxEntriesPerConnection)
}

const maxEntriesPerConnection = 1000

// enforceLimit keeps only the most recent N entries per connection
func (s *Store) enforceLimit(connection string, limit int) error {
	_, err := s.db.Exec(`
		DELETE FROM history
		WHERE connection = ?
		AND id NOT IN (
			SELECT id FROM history
			WHERE connection = ?
			ORDER BY executed_at DESC, id DESC
			LIMIT ?
		)
	`, connection, connection, limit)
	return err
}

// List returns paginated history entries for a connection
func (s *Store) List(connection string, limit, offset int) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, connection, query, executed_at, duration_ms, row_count, status, error_message, preview
		FROM history
		WHERE connection = ?
		ORDER BY executed_at DESC, id DESC
		LIMIT ? OFFSET ?
	`, connection, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Search finds history entries by query substring
func (s *Store) Search(connection, querySubstr string, limit int) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, connection, query, executed_at, duration_ms, row_count, status, error_message, preview
		FROM history
		WHERE connection = ? AND query LIKE ?
		ORDER BY executed_at DESC, id DESC
		LIMIT ?
	`, connection, "%"+querySubstr+"%", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		var errMsg, preview sql.NullString
		if err := rows.Scan(&e.ID, &e.Connection, &e.Query, &e.ExecutedAt,
			&e.DurationMs, &e.RowCount, &e.Status, &errMsg, &preview); err != nil {
			return nil, err
		}
		e.ErrorMessage = errMsg.String
		e.Preview = preview.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Delete removes a history entry by ID
func (s *Store) Delete(id int64) error {
	_, err := s.db.Exec("DELETE FROM history WHERE id = ?", id)
	return err
}

// Count returns the total number of history entries for a connection
func (s *Store) Count(connection string) (int, error) {
	var count int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM history WHERE connection = ?
	`, connection).Scan(&count)
	return count, err
}

// cleanup removes history entries older than 90 days
func (s *Store) cleanup() error {
	_, err := s.db.Exec(`
		DELETE FROM history
		WHERE executed_at < datetime('now', '-90 days')
	`)
	return err
}
