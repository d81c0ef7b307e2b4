package session

import (
	"database/sql"
	"log/slog"
	"os"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver" // SQLite driver, pure Go via wazero
	_ "github.com/ncruces/go-sqlite3/embed"  // embedded SQLite binary
)

// SQLiteStore is the local-storage analogue: a persistent key/value table
// surviving client restarts. Failures are logged and degrade to misses,
// matching the Store contract.
type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Get(key string) (string, bool) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false
	}
	if err != nil {
		slog.Error("local store read failed", "key", key, "error", err)
		return "", false
	}
	return value, true
}

func (s *SQLiteStore) Set(key, value string) {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		slog.Error("local store write failed", "key", key, "error", err)
	}
}

func (s *SQLiteStore) Delete(key string) {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		slog.Error("local store delete failed", "key", key, "error", err)
	}
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
