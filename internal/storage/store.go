// Package storage provides the durable key-value store backing the
// tracker. Aggregates are stored as JSON strings under fixed keys in a
// single sqlite table, keeping the last-writer-wins discipline of the
// storage this design assumes.
package storage

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// Store is a sqlite-backed key-value store.
type Store struct {
	DB *sql.DB
}

// Open opens (or creates) the store file and ensures the schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, &StorageError{Op: "open", Err: err}
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, &StorageError{Op: "open", Err: err}
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS store (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`); err != nil {
		_ = db.Close()
		return nil, &StorageError{Op: "create schema", Err: err}
	}
	return &Store{DB: db}, nil
}

// Get returns the value stored under key. The boolean reports whether the
// key was present.
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.DB.QueryRow("SELECT value FROM store WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, &StorageError{Op: "get", Key: key, Err: err}
	}
	return value, true, nil
}

// Set writes value under key, replacing any previous value.
func (s *Store) Set(key, value string) error {
	_, err := s.DB.Exec(
		"INSERT INTO store (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	if err != nil {
		return &StorageError{Op: "set", Key: key, Err: err}
	}
	return nil
}

// Delete removes key if present.
func (s *Store) Delete(key string) error {
	if _, err := s.DB.Exec("DELETE FROM store WHERE key = ?", key); err != nil {
		return &StorageError{Op: "delete", Key: key, Err: err}
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.DB.Close()
}
