package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/cosmic-brain/internal/logger"
	"github.com/MKhiriev/cosmic-brain/models"
	"github.com/jackc/pgerrcode"
)

// remoteStateRepository writes cycle state and collections to the
// PostgreSQL note database.
type remoteStateRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewRemoteStateRepository constructs a [RemoteStateRepository] backed by a
// PostgreSQL db.
func NewRemoteStateRepository(db *DB, logger *logger.Logger) RemoteStateRepository {
	logger.Debug().Msg("creating remote state repository")
	return &remoteStateRepository{
		db:     db,
		logger: logger,
	}
}

// SaveCycle upserts the cycle state of the session.
func (r *remoteStateRepository) SaveCycle(ctx context.Context, sessionID string, cycle models.CycleState) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Insert("cycle_states").
		Columns("session_id", "day", "phase", "updated_at").
		Values(sessionID, cycle.Day, string(cycle.Phase), cycle.UpdatedAt.UTC()).
		Suffix("ON CONFLICT (session_id) DO UPDATE SET day = EXCLUDED.day, phase = EXCLUDED.phase, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*remoteStateRepository.SaveCycle").Str("session_id", sessionID).Msg("error saving cycle state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// SaveCollection inserts a newly created collection.
func (r *remoteStateRepository) SaveCollection(ctx context.Context, sessionID string, collection models.Collection) error {
	log := logger.FromContext(ctx)

	fields, err := json.Marshal(collection.Fields)
	if err != nil {
		return fmt.Errorf("error encoding collection fields: %w", err)
	}

	query, args, err := r.db.builder().
		Insert("collections").
		Columns("id", "session_id", "name", "type", "item_count", "fields", "created_at").
		Values(collection.ID, sessionID, collection.Name, collection.Type, collection.ItemCount, string(fields), collection.Created.UTC()).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*remoteStateRepository.SaveCollection").Str("collection_id", collection.ID).Msg("error saving collection")
		if postgresError(err) == pgerrcode.UniqueViolation {
			return ErrCollectionAlreadyExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
