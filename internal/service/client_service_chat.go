package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/cosmic-brain/internal/adapter"
	"github.com/MKhiriev/cosmic-brain/models"
)

type clientChatService struct {
	serverAdapter adapter.ServerAdapter
}

func NewClientChatService(serverAdapter adapter.ServerAdapter) ClientChatService {
	return &clientChatService{serverAdapter: serverAdapter}
}

func (s *clientChatService) Send(ctx context.Context, key string, noteID *int64, message string) (models.ChatResponse, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return models.ChatResponse{}, ErrEmptyContent
	}

	req := models.ChatRequest{Message: message, NoteID: noteID}
	if noteID == nil {
		req.ChatType = key
	}

	resp, err := s.serverAdapter.Chat(ctx, req)
	if err != nil {
		return models.ChatResponse{}, mapAdapterError(err)
	}
	return resp, nil
}

func (s *clientChatService) History(ctx context.Context, key string) ([]models.ChatMessage, error) {
	history, err := s.serverAdapter.ChatHistory(ctx, key)
	return history, mapAdapterError(err)
}

func (s *clientChatService) Reset(ctx context.Context, key string) error {
	return mapAdapterError(s.serverAdapter.ResetChat(ctx, key))
}

func (s *clientChatService) Reflect(ctx context.Context, note models.Note) (string, []string, error) {
	resp, err := s.serverAdapter.ProcessDump(ctx, models.ProcessDumpRequest{Content: note.Content, Category: note.Category})
	if err != nil {
		return "", nil, mapAdapterError(err)
	}
	if resp.Fallback != "" {
		return resp.Fallback, nil, nil
	}
	return resp.Response, resp.Suggestions, nil
}
