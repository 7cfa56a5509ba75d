package database

import (
	"database/sql"
	"fmt"
	"log"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

type SQLiteConfig struct {
	Path        string
	BusyTimeout time.Duration
}

const schema = `CREATE TABLE IF NOT EXISTS applications (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	full_name TEXT NOT NULL,
	phone TEXT NOT NULL,
	email TEXT NOT NULL,
	dob TEXT NOT NULL,
	gender TEXT NOT NULL,
	age INTEGER,
	mothers_maiden_name TEXT,
	mothers_full_name TEXT,
	fathers_full_name TEXT,
	place_of_birth TEXT,
	city_of_birth TEXT,
	city TEXT NOT NULL,
	ssn TEXT NOT NULL,
	past_due_rent REAL,
	applied_before TEXT NOT NULL,
	receiving_ss TEXT NOT NULL,
	verified_idme TEXT NOT NULL,
	dl_front TEXT,
	dl_back TEXT,
	submitted_at TEXT NOT NULL
)`

// NewSQLite opens the database for process startup and fails fast when the
// store is unusable.
func NewSQLite(cfg SQLiteConfig) *sql.DB {
	db, err := Open(cfg)
	if err != nil {
		log.Fatalf("failed to open sqlite: %v", err)
	}
	return db
}

// Open opens a single-file SQLite database and bootstraps the applications
// table. WAL keeps concurrent reads from blocking the insert path.
func Open(cfg SQLiteConfig) (*sql.DB, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("database path is required")
	}
	busyMillis := cfg.BusyTimeout.Milliseconds()
	if busyMillis <= 0 {
		busyMillis = 5000
	}
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=%d&_synchronous=NORMAL", filepath.Clean(cfg.Path), busyMillis)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create applications table: %w", err)
	}
	return db, nil
}
