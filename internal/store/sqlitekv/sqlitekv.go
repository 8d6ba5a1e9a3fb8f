// Package sqlitekv keeps key-value slots in a SQLite table.
package sqlitekv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// FileName is the database file created inside the data directory.
const FileName = "todo.sqlite"

type KV struct {
	db *sql.DB
}

// Open creates (if needed) and migrates <dir>/todo.sqlite.
func Open(dir string) (*KV, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir: %w", err)
		}
	}
	return OpenPath(filepath.Join(dir, FileName))
}

// OpenPath opens the database at path. ":memory:" is accepted.
func OpenPath(path string) (*KV, error) {
	ctx := context.Background()
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// A single connection keeps ":memory:" databases alive across calls.
	db.SetMaxOpenConns(1)

	// busy_timeout makes a second process wait instead of failing with "database is locked".
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS kv (
		k TEXT PRIMARY KEY,
		v TEXT NOT NULL
	);`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &KV{db: db}, nil
}

func (kv *KV) Get(key string) ([]byte, error) {
	var v string
	err := kv.db.QueryRowContext(context.Background(), `SELECT v FROM kv WHERE k = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("key %q: %w", key, os.ErrNotExist)
	}
	if err != nil {
		return nil, fmt.Errorf("select: %w", err)
	}
	return []byte(v), nil
}

func (kv *KV) Set(key string, value []byte) error {
	_, err := kv.db.ExecContext(context.Background(),
		`INSERT INTO kv(k, v) VALUES(?, ?) ON CONFLICT(k) DO UPDATE SET v = excluded.v`,
		key, string(value))
	if err != nil {
		return fmt.Errorf("upsert: %w", err)
	}
	return nil
}

func (kv *KV) Close() error {
	return kv.db.Close()
}
