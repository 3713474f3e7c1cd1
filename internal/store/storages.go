package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/cosmic-brain/internal/config"
	"github.com/MKhiriev/cosmic-brain/internal/logger"
	"github.com/MKhiriev/cosmic-brain/migrations"
)

// Storages groups every storage of the server.
type Storages struct {
	// Notes persists captured notes in PostgreSQL or SQLite.
	Notes NoteRepository

	// RemoteState is the best-effort PostgreSQL copy of session state. It is
	// nil when the note database is SQLite.
	RemoteState RemoteStateRepository

	// LocalState is the SQLite cache of session state.
	LocalState *LocalStateStore

	closers []func() error
}

// NewStorages opens the note database and the local state store, applies
// their migrations and builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	notesDB, err := NewConnect(ctx, cfg.DB.DSN, log)
	if err != nil {
		return nil, fmt.Errorf("note database connection error: %w", err)
	}
	if err := notesDB.Migrate(); err != nil {
		_ = notesDB.Close()
		return nil, fmt.Errorf("note database migration failed: %w", err)
	}

	localDB, err := NewConnectSQLite(ctx, cfg.Local.Path, log)
	if err != nil {
		_ = notesDB.Close()
		return nil, fmt.Errorf("local state store connection error: %w", err)
	}
	if err := localDB.Migrate(); err != nil {
		_ = notesDB.Close()
		_ = localDB.Close()
		return nil, fmt.Errorf("local state store migration failed: %w", err)
	}

	storages := &Storages{
		Notes:      NewNoteRepository(notesDB, log),
		LocalState: NewLocalStateStore(localDB, log),
		closers:    []func() error{notesDB.Close, localDB.Close},
	}
	if notesDB.Dialect() == migrations.Postgres {
		storages.RemoteState = NewRemoteStateRepository(notesDB, log)
	}

	return storages, nil
}

// Close closes every database opened by NewStorages.
func (s *Storages) Close() error {
	var errs []error
	for _, closeFn := range s.closers {
		errs = append(errs, closeFn())
	}
	return errors.Join(errs...)
}
