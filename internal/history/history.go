// Package history persists REPL input/result pairs in a SQLite
// database so sessions can be reviewed later with :history.
package history

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS entries (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	session    TEXT NOT NULL,
	input      TEXT NOT NULL,
	result     TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS entries_session ON entries(session);
`

// Entry is one evaluated REPL line.
type Entry struct {
	ID        int64
	Session   string
	Input     string
	Result    string
	CreatedAt time.Time
}

// Store appends entries under a session ID generated at open time.
type Store struct {
	db      *sql.DB
	session string
}

// Open creates or opens the history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db, session: uuid.NewString()}, nil
}

// Session returns the ID all entries of this Store are recorded under.
func (s *Store) Session() string {
	return s.session
}

// Append records one evaluated line.
func (s *Store) Append(input, result string) error {
	_, err := s.db.Exec(
		`INSERT INTO entries (session, input, result, created_at) VALUES (?, ?, ?, ?)`,
		s.session, input, result, time.Now().UTC(),
	)
	return err
}

// Recent returns up to limit entries across all sessions, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, session, input, result, created_at
		 FROM entries ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Session, &e.Input, &e.Result, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) Close() error {
	return s.db.Close()
}
