// Package sqlite almacena las sesiones de la consola en SQLite (modernc.org/sqlite, sin cgo).
package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Open abre la base de datos con WAL y busy timeout. ":memory:" usa una única conexión
// para que todas las consultas vean la misma base.
func Open(path string) (*sql.DB, error) {
	dsn := path
	if path != ":memory:" {
		dsn = path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(8)
		db.SetMaxIdleConns(8)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func migrate(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS console_sessions (
		id         TEXT PRIMARY KEY,
		token      TEXT NOT NULL,
		email      TEXT NOT NULL,
		created_at TEXT NOT NULL,
		expires_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS console_sessions_expires_at_idx ON console_sessions (expires_at);`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("crear tabla console_sessions: %w", err)
	}
	return nil
}
