package service

import (
	"context"

	"github.com/MKhiriev/cosmic-brain/internal/logger"
	"github.com/MKhiriev/cosmic-brain/internal/session"
	"github.com/MKhiriev/cosmic-brain/internal/store"
	"github.com/MKhiriev/cosmic-brain/models"
)

// contextNotes is the number of recent notes given to the provider.
const contextNotes = 5

// userContextBuilder computes the context snapshot sent with prompts when
// the client did not provide one.
type userContextBuilder struct {
	cosmic CosmicService
	recent recentLoader
}

func (b userContextBuilder) build(ctx context.Context, state *session.State, provided *models.UserContext) models.UserContext {
	if provided != nil {
		return *provided
	}

	cycle := state.Cycle()
	uc := models.UserContext{Cycle: &cycle}

	if b.cosmic != nil {
		snapshot := b.cosmic.Snapshot(ctx)
		uc.Cosmic = &snapshot
	}

	recent := b.recent.load(ctx, state)
	if len(recent) > contextNotes {
		recent = recent[:contextNotes]
	}
	uc.RecentNotes = recent

	return uc
}

// recentLoader fills the recent window of a session from the note store the
// first time it is read, so a new session starts with the latest notes.
type recentLoader struct {
	notes  store.NoteRepository
	logger *logger.Logger
}

// load returns the recent window of state. A store failure is logged and the
// in-memory window is returned; the next call tries again.
func (l recentLoader) load(ctx context.Context, state *session.State) []models.Note {
	if l.notes == nil || state.RecentLoaded() {
		return state.Recent()
	}

	stored, err := l.notes.List(ctx, models.NoteFilter{Limit: session.RecentWindow})
	if err != nil {
		l.logger.Warn().Err(err).Str("func", "recentLoader.load").Str("session_id", state.ID()).Msg("error loading recent notes")
		return state.Recent()
	}
	state.MergeRecent(stored)

	return state.Recent()
}
