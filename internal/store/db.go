package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/cosmic-brain/internal/logger"
	"github.com/MKhiriev/cosmic-brain/migrations"
)

// sqlitePrefix marks a note database DSN that points at a SQLite file.
const sqlitePrefix = "sqlite://"

// DB wraps a *sql.DB with the dialect it speaks, the error classifier of
// that dialect and a logger.
type DB struct {
	*sql.DB
	dialect            migrations.Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// ErrorClassificator decides whether a failed statement may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// NewConnect opens the note database named by dsn. A "sqlite://" prefix
// selects SQLite, anything else is handed to the pgx driver.
func NewConnect(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	if path, ok := strings.CutPrefix(dsn, sqlitePrefix); ok {
		return NewConnectSQLite(ctx, path, log)
	}
	return NewConnectPostgres(ctx, dsn, log)
}

// Dialect returns the SQL dialect of the connection.
func (db *DB) Dialect() migrations.Dialect {
	return db.dialect
}

// Migrate applies the embedded migrations of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// builder returns a squirrel statement builder using the placeholder format
// of the dialect.
func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == migrations.Postgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// maxRetries is the number of repeats of a statement failing with a
// retryable error. Waits grow exponentially from retryBase.
const (
	maxRetries = 2
	retryBase  = 50 * time.Millisecond
)

// withRetry runs op, repeating it while the classifier reports the error as
// retryable.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	var lastErr error
	backoff := retry.WithMaxRetries(maxRetries, retry.NewExponential(retryBase))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		lastErr = op()
		if lastErr == nil || db.errorClassificator == nil || db.errorClassificator.Classify(lastErr) != Retryable {
			return lastErr
		}

		db.logger.Warn().Err(lastErr).Str("func", "*DB.withRetry").Msg("retryable statement error")
		return retry.RetryableError(lastErr)
	})

	if ctxErr := ctx.Err(); ctxErr != nil && lastErr != nil && errors.Is(err, ctxErr) && !errors.Is(lastErr, ctxErr) {
		return fmt.Errorf("%w: %w", lastErr, ctxErr)
	}
	return err
}
