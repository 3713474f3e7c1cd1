package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/cosmic-brain/internal/adapter"
	"github.com/MKhiriev/cosmic-brain/internal/brain"
	"github.com/MKhiriev/cosmic-brain/internal/logger"
	"github.com/MKhiriev/cosmic-brain/internal/session"
	"github.com/MKhiriev/cosmic-brain/internal/store"
	"github.com/MKhiriev/cosmic-brain/models"
)

const processMaxTokens = 500

type processService struct {
	completion adapter.CompletionAdapter
	contexts   userContextBuilder

	logger *logger.Logger
}

func NewProcessService(completion adapter.CompletionAdapter, cosmic CosmicService, notes store.NoteRepository, logger *logger.Logger) ProcessService {
	return &processService{
		completion: completion,
		contexts:   userContextBuilder{cosmic: cosmic, recent: recentLoader{notes: notes, logger: logger}},
		logger:     logger,
	}
}

// ProcessDump returns the provider's reflection on a note with category
// suggestions. A provider failure yields the category fallback text instead
// of an error. An unknown category is recomputed from the content.
func (s *processService) ProcessDump(ctx context.Context, state *session.State, req models.ProcessDumpRequest) (models.ProcessDumpResponse, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return models.ProcessDumpResponse{}, ErrEmptyContent
	}

	category := req.Category
	if !category.Valid() {
		category = brain.Categorize(content)
	}

	fallback := models.ProcessDumpResponse{
		Message:  brain.ProcessDumpErrorMessage,
		Fallback: brain.FallbackReply(category),
	}

	prompt, err := renderPrompt(processPromptTemplate, processPromptData{
		Category: category,
		Content:  content,
		Context:  s.contexts.build(ctx, state, req.UserContext),
	})
	if err != nil {
		s.logger.Err(err).Str("func", "*processService.ProcessDump").Msg("error rendering process prompt")
		return fallback, nil
	}

	reply, err := s.completion.Complete(ctx, adapter.CompletionRequest{Prompt: prompt, MaxTokens: processMaxTokens})
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "*processService.ProcessDump").Str("category", string(category)).Msg("completion failed, answering with fallback")
		return fallback, nil
	}

	return models.ProcessDumpResponse{
		Response:    reply,
		Suggestions: brain.Suggestions(category),
	}, nil
}
