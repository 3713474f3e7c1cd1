package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/MKhiriev/cosmic-brain/internal/brain"
	"github.com/MKhiriev/cosmic-brain/internal/logger"
	"github.com/MKhiriev/cosmic-brain/internal/session"
	"github.com/MKhiriev/cosmic-brain/internal/store"
	"github.com/MKhiriev/cosmic-brain/models"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
	topCategories    = 3
	recentActivity   = 7 * 24 * time.Hour
)

type noteService struct {
	notes   store.NoteRepository
	actions ActionService
	recent  recentLoader
	now     func() time.Time

	logger *logger.Logger
}

func NewNoteService(notes store.NoteRepository, actions ActionService, logger *logger.Logger) NoteService {
	return &noteService{
		notes:   notes,
		actions: actions,
		recent:  recentLoader{notes: notes, logger: logger},
		now:     time.Now,
		logger:  logger,
	}
}

func (s *noteService) Capture(ctx context.Context, state *session.State, req models.CaptureRequest) (models.CaptureResponse, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return models.CaptureResponse{}, ErrEmptyContent
	}

	note, err := s.notes.Insert(ctx, models.Note{
		Content:  content,
		Category: brain.Categorize(content),
	})
	if err != nil {
		s.logger.Err(err).Str("func", "*noteService.Capture").Msg("error saving note")
		return models.CaptureResponse{}, fmt.Errorf("capture note: %w", err)
	}
	state.PushRecent(note)

	resp := models.CaptureResponse{Note: note, Actions: make([]models.Action, 0)}
	for _, action := range brain.ExtractActions(content) {
		if err = s.actions.Apply(ctx, state, action); err != nil {
			s.logger.Err(err).Str("func", "*noteService.Capture").Str("action", string(action.Type)).Msg("error applying action")
			continue
		}
		resp.Actions = append(resp.Actions, action)
	}

	if req.OpenChat {
		greeting := models.ChatMessage{
			Role:      models.RoleAssistant,
			Content:   brain.Greeting(note),
			Timestamp: s.now().UTC(),
		}
		state.Append(models.NoteChatKey(note.ID), greeting)
		resp.Greeting = &greeting
	}

	s.logger.Info().Int64("note_id", note.ID).Str("category", string(note.Category)).Int("actions", len(resp.Actions)).Msg("note captured")
	return resp, nil
}

// List returns the notes matching filter. A zero limit selects the default
// page size; larger limits are capped.
func (s *noteService) List(ctx context.Context, filter models.NoteFilter) ([]models.Note, error) {
	switch {
	case filter.Limit == 0:
		filter.Limit = defaultListLimit
	case filter.Limit > maxListLimit:
		filter.Limit = maxListLimit
	}

	notes, err := s.notes.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// Recent returns the recent window of state, loading the latest stored notes
// into it on first use.
func (s *noteService) Recent(ctx context.Context, state *session.State) []models.Note {
	return s.recent.load(ctx, state)
}

func (s *noteService) SetProcessed(ctx context.Context, state *session.State, id int64, processed bool) error {
	if err := s.notes.SetProcessed(ctx, id, processed); err != nil {
		return fmt.Errorf("set processed: %w", err)
	}
	state.MarkRecentProcessed(id, processed)
	return nil
}

func (s *noteService) Delete(ctx context.Context, state *session.State, id int64) error {
	if err := s.notes.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	state.RemoveRecent(id)
	return nil
}

// Dashboard aggregates the notes created within timeframe. Recent activity
// counts the notes of the last seven days that also fall in timeframe.
func (s *noteService) Dashboard(ctx context.Context, timeframe models.Timeframe) (models.DashboardStats, error) {
	now := s.now()
	since := timeframe.Since(now)

	total, err := s.notes.Count(ctx, models.NoteFilter{Since: since})
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("dashboard total: %w", err)
	}

	processedOnly := true
	processed, err := s.notes.Count(ctx, models.NoteFilter{Since: since, Processed: &processedOnly})
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("dashboard processed: %w", err)
	}

	recentSince := now.Add(-recentActivity)
	if since.After(recentSince) {
		recentSince = since
	}
	recent, err := s.notes.Count(ctx, models.NoteFilter{Since: recentSince})
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("dashboard recent activity: %w", err)
	}

	breakdown, err := s.notes.CountByCategory(ctx, models.NoteFilter{Since: since})
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("dashboard breakdown: %w", err)
	}
	if breakdown == nil {
		breakdown = make([]models.CategoryCount, 0)
	}

	top := breakdown
	if len(top) > topCategories {
		top = top[:topCategories]
	}

	return models.DashboardStats{
		TotalDumps:        total,
		ProcessedDumps:    processed,
		UnprocessedDumps:  total - processed,
		CompletionPercent: completionPercent(processed, total),
		RecentActivity:    recent,
		CategoryBreakdown: breakdown,
		TopCategories:     append([]models.CategoryCount(nil), top...),
	}, nil
}

func completionPercent(processed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(processed) * 100 / float64(total)))
}
