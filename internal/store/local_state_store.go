package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/cosmic-brain/internal/logger"
	"github.com/MKhiriev/cosmic-brain/models"
)

const (
	sessionKVTable = "session_kv"

	keyCycle       = "cycle"
	keyCollections = "collections"
)

// LocalStateStore keeps the durable session state as JSON values in the
// SQLite table session_kv. It implements session.StateStore.
type LocalStateStore struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewLocalStateStore constructs a LocalStateStore backed by a SQLite db.
func NewLocalStateStore(db *DB, logger *logger.Logger) *LocalStateStore {
	logger.Debug().Msg("creating local state store")
	return &LocalStateStore{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (s *LocalStateStore) LoadCycle(ctx context.Context, sessionID string) (models.CycleState, bool, error) {
	var cycle models.CycleState
	found, err := s.load(ctx, sessionID, keyCycle, &cycle)
	return cycle, found, err
}

func (s *LocalStateStore) SaveCycle(ctx context.Context, sessionID string, cycle models.CycleState) error {
	return s.save(ctx, sessionID, keyCycle, cycle)
}

func (s *LocalStateStore) LoadCollections(ctx context.Context, sessionID string) ([]models.Collection, error) {
	collections := make([]models.Collection, 0)
	if _, err := s.load(ctx, sessionID, keyCollections, &collections); err != nil {
		return nil, err
	}
	return collections, nil
}

func (s *LocalStateStore) SaveCollections(ctx context.Context, sessionID string, collections []models.Collection) error {
	return s.save(ctx, sessionID, keyCollections, collections)
}

func (s *LocalStateStore) load(ctx context.Context, sessionID, key string, dst any) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.db.builder().
		Select("value").
		From(sessionKVTable).
		Where(sq.Eq{"session_id": sessionID, "key": key}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var raw string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*LocalStateStore.load").Str("key", key).Msg("error reading session value")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		log.Err(err).Str("func", "*LocalStateStore.load").Str("key", key).Msg("error decoding session value")
		return false, fmt.Errorf("%w: %w", ErrDecodingState, err)
	}

	return true, nil
}

func (s *LocalStateStore) save(ctx context.Context, sessionID, key string, value any) error {
	log := logger.FromContext(ctx)

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("error encoding session value: %w", err)
	}

	query, args, err := s.db.builder().
		Insert(sessionKVTable).
		Columns("session_id", "key", "value", "updated_at").
		Values(sessionID, key, string(raw), s.now().UTC()).
		Suffix("ON CONFLICT (session_id, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = s.db.withRetry(ctx, func() error {
		_, execErr := s.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*LocalStateStore.save").Str("key", key).Msg("error writing session value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
