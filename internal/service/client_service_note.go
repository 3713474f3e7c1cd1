package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/cosmic-brain/internal/adapter"
	"github.com/MKhiriev/cosmic-brain/models"
)

type clientNoteService struct {
	serverAdapter adapter.ServerAdapter
}

func NewClientNoteService(serverAdapter adapter.ServerAdapter) ClientNoteService {
	return &clientNoteService{serverAdapter: serverAdapter}
}

func (s *clientNoteService) Capture(ctx context.Context, content string, openChat bool) (models.CaptureResponse, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return models.CaptureResponse{}, ErrEmptyContent
	}

	resp, err := s.serverAdapter.Capture(ctx, models.CaptureRequest{Content: content, OpenChat: openChat})
	if err != nil {
		return models.CaptureResponse{}, mapAdapterError(err)
	}
	return resp, nil
}

func (s *clientNoteService) Recent(ctx context.Context) ([]models.Note, error) {
	notes, err := s.serverAdapter.RecentNotes(ctx)
	return notes, mapAdapterError(err)
}

func (s *clientNoteService) Search(ctx context.Context, query adapter.NotesQuery) ([]models.Note, error) {
	notes, err := s.serverAdapter.ListNotes(ctx, query)
	return notes, mapAdapterError(err)
}

func (s *clientNoteService) SetProcessed(ctx context.Context, id int64, processed bool) error {
	return mapAdapterError(s.serverAdapter.SetProcessed(ctx, id, processed))
}

func (s *clientNoteService) Delete(ctx context.Context, id int64) error {
	return mapAdapterError(s.serverAdapter.DeleteNote(ctx, id))
}

func (s *clientNoteService) Dashboard(ctx context.Context, timeframe models.Timeframe) (models.DashboardStats, error) {
	stats, err := s.serverAdapter.Dashboard(ctx, timeframe)
	return stats, mapAdapterError(err)
}
