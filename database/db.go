package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/mattn/go-sqlite3"
)

const (
	DriverSQLite = "sqlite3"
	DriverMySQL  = "mysql"

	// sqliteUnicodeDriver is go-sqlite3 with a ulower() SQL function added.
	// SQLite's own LOWER() and LIKE only fold ASCII letters.
	sqliteUnicodeDriver = "sqlite3_unicode"
)

func init() {
	sql.Register(sqliteUnicodeDriver, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("ulower", strings.ToLower, true)
		},
	})
}

type DB struct {
	*sql.DB
	Driver string
}

// New opens a connection pool for driver ("sqlite3" or "mysql") and verifies it.
// For sqlite3 the dsn is a file path; for mysql it is a go-sql-driver DSN.
func New(driver, dsn string) (*DB, error) {
	switch driver {
	case DriverSQLite:
		if dsn != ":memory:" && !strings.HasPrefix(dsn, "file:") {
			if err := os.MkdirAll(filepath.Dir(dsn), 0755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	case DriverMySQL:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	driverName := driver
	if driver == DriverSQLite {
		driverName = sqliteUnicodeDriver
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if driver == DriverSQLite {
		// Readers never block on the single writer (seed loads).
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db, Driver: driver}, nil
}

func (db *DB) Migrate() error {
	for _, query := range migrations(db.Driver) {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

// migrations returns the schema statements for driver, in order
func migrations(driver string) []string {
	switch driver {
	case DriverMySQL:
		// Filter columns use a binary collation so equality is case-sensitive,
		// as it is on SQLite.
		return []string{
			`CREATE TABLE IF NOT EXISTS exercises (
				id BIGINT AUTO_INCREMENT PRIMARY KEY,
				name VARCHAR(255) NOT NULL,
				description TEXT,
				muscle_group VARCHAR(100) COLLATE utf8mb4_bin,
				equipment VARCHAR(100) COLLATE utf8mb4_bin,
				category VARCHAR(100) COLLATE utf8mb4_bin,
				difficulty VARCHAR(50) COLLATE utf8mb4_bin,
				calories_burned DOUBLE,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				INDEX idx_exercises_name (name)
			) DEFAULT CHARSET=utf8mb4`,
			`CREATE OR REPLACE VIEW exercises_by_category AS
				SELECT category, COUNT(*) AS exercise_count
				FROM exercises GROUP BY category`,
			`CREATE OR REPLACE VIEW exercises_by_difficulty AS
				SELECT difficulty, COUNT(*) AS exercise_count
				FROM exercises GROUP BY difficulty`,
		}
	default:
		return []string{
			`CREATE TABLE IF NOT EXISTS exercises (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL,
				description TEXT,
				muscle_group TEXT,
				equipment TEXT,
				category TEXT,
				difficulty TEXT,
				calories_burned REAL,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE INDEX IF NOT EXISTS idx_exercises_name ON exercises(name)`,
			`CREATE VIEW IF NOT EXISTS exercises_by_category AS
				SELECT category, COUNT(*) AS exercise_count
				FROM exercises GROUP BY category`,
			`CREATE VIEW IF NOT EXISTS exercises_by_difficulty AS
				SELECT difficulty, COUNT(*) AS exercise_count
				FROM exercises GROUP BY difficulty`,
		}
	}
}

func (db *DB) Close() error {
	return db.DB.Close()
}
