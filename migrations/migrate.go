// Package migrations embeds the SQL schema of cosmic-brain and applies it
// with goose. Every supported dialect has its own directory.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

// Dialect names a supported SQL dialect. The value is the goose dialect and
// the name of the embedded migrations directory.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite3"
)

// ErrNilDB is returned by Migrate when no database handle is given.
var ErrNilDB = errors.New("db is nil")

// ErrUnknownDialect is returned by Migrate for an unsupported dialect.
var ErrUnknownDialect = errors.New("unknown migrations dialect")

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var dirs = map[Dialect]string{
	Postgres: "postgres",
	SQLite:   "sqlite",
}

// Migrate applies every pending migration of dialect to db.
func Migrate(db *sql.DB, dialect Dialect) error {
	if db == nil {
		return ErrNilDB
	}

	dir, ok := dirs[dialect]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDialect, dialect)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
