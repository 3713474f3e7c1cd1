package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/cosmic-brain/internal/brain"
	"github.com/MKhiriev/cosmic-brain/internal/logger"
	"github.com/MKhiriev/cosmic-brain/internal/session"
	"github.com/MKhiriev/cosmic-brain/internal/store"
	"github.com/MKhiriev/cosmic-brain/internal/utils"
	"github.com/MKhiriev/cosmic-brain/models"
)

type actionService struct {
	stateStore session.StateStore
	remote     store.RemoteStateRepository
	ids        *utils.UUIDGenerator
	now        func() time.Time

	logger *logger.Logger
}

// NewActionService builds an ActionService. stateStore and remote may both
// be nil; the corresponding writes are then skipped.
func NewActionService(stateStore session.StateStore, remote store.RemoteStateRepository, logger *logger.Logger) ActionService {
	return &actionService{
		stateStore: stateStore,
		remote:     remote,
		ids:        utils.NewUUIDGenerator(),
		now:        time.Now,
		logger:     logger,
	}
}

func (s *actionService) Apply(ctx context.Context, state *session.State, action models.Action) error {
	switch action.Type {
	case models.ActionUpdateCycle:
		_, err := s.UpdateCycle(ctx, state, action.Day, "")
		return err
	case models.ActionCreateDatabase:
		_, err := s.CreateCollection(ctx, state, models.CollectionCreateRequest{Name: action.Name})
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, action.Type)
	}
}

// UpdateCycle sets the cycle day of state. An empty phase is derived from
// day.
func (s *actionService) UpdateCycle(ctx context.Context, state *session.State, day int, phase models.CyclePhase) (models.CycleState, error) {
	if phase == "" {
		phase = brain.CyclePhaseForDay(day)
	} else if !phase.Valid() {
		return models.CycleState{}, fmt.Errorf("%w: %q", ErrInvalidCyclePhase, phase)
	}

	cycle := models.CycleState{Day: day, Phase: phase, UpdatedAt: s.now().UTC()}
	state.SetCycle(cycle)

	if s.stateStore != nil {
		if err := s.stateStore.SaveCycle(ctx, state.ID(), cycle); err != nil {
			s.logger.Err(err).Str("func", "*actionService.UpdateCycle").Str("session_id", state.ID()).Msg("error caching cycle state")
		}
	}
	if s.remote != nil {
		if err := s.remote.SaveCycle(ctx, state.ID(), cycle); err != nil {
			s.logger.Warn().Err(err).Str("func", "*actionService.UpdateCycle").Str("session_id", state.ID()).Msg("remote cycle write failed")
		}
	}

	s.logger.Debug().Str("session_id", state.ID()).Int("day", day).Str("phase", string(phase)).Msg("cycle updated")
	return cycle, nil
}

// CreateCollection appends a new collection to the registry of state. The
// display name and type are derived from req.Name; the fields are those of
// req.Template (or of the type when no template is given) followed by
// req.Fields.
func (s *actionService) CreateCollection(ctx context.Context, state *session.State, req models.CollectionCreateRequest) (models.Collection, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.Collection{}, ErrEmptyCollectionName
	}

	collectionType := brain.CollectionType(name)
	template := req.Template
	if template == "" {
		template = collectionType
	}

	collection := models.Collection{
		ID:        s.ids.Generate(),
		Name:      brain.CollectionDisplayName(name),
		Type:      collectionType,
		ItemCount: 0,
		Fields:    append(brain.CollectionFieldsFor(template), req.Fields...),
		Created:   s.now().UTC(),
	}
	registry := state.AddCollection(collection)

	if s.stateStore != nil {
		if err := s.stateStore.SaveCollections(ctx, state.ID(), registry); err != nil {
			s.logger.Err(err).Str("func", "*actionService.CreateCollection").Str("session_id", state.ID()).Msg("error caching collection registry")
		}
	}
	if s.remote != nil {
		if err := s.remote.SaveCollection(ctx, state.ID(), collection); err != nil {
			s.logger.Warn().Err(err).Str("func", "*actionService.CreateCollection").Str("session_id", state.ID()).Msg("remote collection write failed")
		}
	}

	s.logger.Debug().Str("session_id", state.ID()).Str("collection", collection.Name).Str("id", collection.ID).Msg("collection created")
	return collection, nil
}
