package scoring

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStorage is a RankingStorage kept in a SQLite database. The ranking
// table holds the persisted entries in rank order.
type SQLiteStorage struct {
	db *sql.DB
}

// OpenSQLite creates or opens the database at path, creating parent
// directories and the schema as needed.
func OpenSQLite(path string) (*SQLiteStorage, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("ranking db: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	if err := ensureDir(path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("ranking db: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ranking db: cannot connect to database: %w", err)
	}

	s := &SQLiteStorage{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ranking db: migration failed: %w", err)
	}
	return s, nil
}

func (s *SQLiteStorage) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS ranking (
			position INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			rows INTEGER NOT NULL DEFAULT 0,
			columns INTEGER NOT NULL DEFAULT 0,
			match_id TEXT NOT NULL DEFAULT '',
			timestamp TEXT NOT NULL DEFAULT ''
		);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// LoadAll returns the stored entries in rank order.
func (s *SQLiteStorage) LoadAll() ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT name, score, rows, columns, match_id, timestamp FROM ranking ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("ranking db: cannot query entries: %w", err)
	}
	defer rows.Close()

	entries := make([]Entry, 0)
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Name, &e.Score, &e.Rows, &e.Columns, &e.MatchID, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("ranking db: cannot scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// SaveAll replaces the stored entries in a single transaction.
func (s *SQLiteStorage) SaveAll(entries []Entry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("ranking db: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM ranking`); err != nil {
		return fmt.Errorf("ranking db: cannot clear entries: %w", err)
	}
	for i, e := range entries {
		_, err := tx.Exec(
			`INSERT INTO ranking (position, name, score, rows, columns, match_id, timestamp)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			i, e.Name, e.Score, e.Rows, e.Columns, e.MatchID, e.Timestamp,
		)
		if err != nil {
			return fmt.Errorf("ranking db: cannot insert entry: %w", err)
		}
	}
	return tx.Commit()
}
