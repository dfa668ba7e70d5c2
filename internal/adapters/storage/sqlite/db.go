// Package sqlite es el almacenamiento local por defecto (modernc.org/sqlite, sin CGO).
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// timeLayout es de ancho fijo y siempre UTC: el orden lexicográfico es el cronológico.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type DB struct {
	db   *sql.DB
	path string
}

// Open abre o crea la base en path, aplica pragmas y crea el esquema.
func Open(path string) (*DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// un solo writer; evita SQLITE_BUSY entre el scheduler y los handlers
	db.SetMaxOpenConns(1)

	d := &DB{db: db, path: path}
	if err := d.configurePragmas(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configure pragmas: %w", err)
	}
	// el archivo recién existe después de la primera conexión
	if path != ":memory:" {
		if err := os.Chmod(path, 0o600); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set database permissions: %w", err)
		}
	}
	if err := d.Migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return d, nil
}

// DataDir sigue XDG: $XDG_DATA_HOME/medisafe o ~/.local/share/medisafe.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "medisafe")
}

func DefaultPath() string {
	return filepath.Join(DataDir(), "medisafe.db")
}

func (d *DB) SQL() *sql.DB { return d.db }

func (d *DB) Path() string { return d.path }

func (d *DB) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

func (d *DB) configurePragmas() error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := d.db.Exec(p); err != nil {
			return fmt.Errorf("execute %s: %w", p, err)
		}
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		// filas escritas a mano o por otra herramienta
		t, err = time.Parse(time.RFC3339Nano, s)
	}
	return t, err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
