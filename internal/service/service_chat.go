package service

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/cosmic-brain/internal/adapter"
	"github.com/MKhiriev/cosmic-brain/internal/brain"
	"github.com/MKhiriev/cosmic-brain/internal/logger"
	"github.com/MKhiriev/cosmic-brain/internal/session"
	"github.com/MKhiriev/cosmic-brain/internal/store"
	"github.com/MKhiriev/cosmic-brain/models"
)

const (
	chatMaxTokens     = 800
	noteChatMaxTokens = 400
)

type chatService struct {
	completion adapter.CompletionAdapter
	actions    ActionService
	notes      store.NoteRepository
	contexts   userContextBuilder
	now        func() time.Time

	logger *logger.Logger
}

// NewChatService creates the chat orchestrator. notes may be nil, in which
// case note chats only see notes of the recent window.
func NewChatService(completion adapter.CompletionAdapter, actions ActionService, cosmic CosmicService, notes store.NoteRepository, logger *logger.Logger) ChatService {
	return &chatService{
		completion: completion,
		actions:    actions,
		notes:      notes,
		contexts:   userContextBuilder{cosmic: cosmic, recent: recentLoader{notes: notes, logger: logger}},
		now:        time.Now,
		logger:     logger,
	}
}

// Send runs one chat turn. Turns of the same session are serialized.
func (s *chatService) Send(ctx context.Context, state *session.State, req models.ChatRequest) (models.ChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return models.ChatResponse{}, ErrEmptyContent
	}

	unlock := state.LockChat()
	defer unlock()

	key := req.ChatKey()
	state.Seed(key, req.ChatHistory)

	data := chatPromptData{
		ChatType: chatType(req),
		Context:  s.contexts.build(ctx, state, req.UserContext),
		History:  state.History(key),
		Message:  message,
	}
	maxTokens := chatMaxTokens
	if req.NoteID != nil {
		if note, ok := s.findNote(ctx, state, *req.NoteID); ok {
			data.Note = &note
		}
		maxTokens = noteChatMaxTokens
	}

	state.Append(key, models.ChatMessage{Role: models.RoleUser, Content: message, Timestamp: s.now().UTC()})

	reply := s.complete(ctx, data, maxTokens)

	actions := make([]models.Action, 0)
	for _, action := range brain.ExtractActions(message) {
		if err := s.actions.Apply(ctx, state, action); err != nil {
			s.logger.Err(err).Str("func", "*chatService.Send").Str("action", string(action.Type)).Msg("error applying action")
			continue
		}
		actions = append(actions, action)
	}

	timestamp := s.now().UTC()
	state.Append(key, models.ChatMessage{Role: models.RoleAssistant, Content: reply, Timestamp: timestamp, Actions: actions})

	return models.ChatResponse{Response: reply, Actions: actions, Timestamp: timestamp}, nil
}

// complete returns the provider reply or the fallback text.
func (s *chatService) complete(ctx context.Context, data chatPromptData, maxTokens int) string {
	prompt, err := renderPrompt(chatPromptTemplate, data)
	if err != nil {
		s.logger.Err(err).Str("func", "*chatService.complete").Msg("error rendering chat prompt")
		return brain.ChatFallbackReply
	}

	reply, err := s.completion.Complete(ctx, adapter.CompletionRequest{Prompt: prompt, MaxTokens: maxTokens})
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "*chatService.complete").Msg("completion failed, answering with fallback")
		return brain.ChatFallbackReply
	}
	return reply
}

func (s *chatService) History(ctx context.Context, state *session.State, key string) []models.ChatMessage {
	return state.History(key)
}

func (s *chatService) Reset(ctx context.Context, state *session.State, key string) {
	state.ResetChat(key)
}

func chatType(req models.ChatRequest) string {
	switch {
	case req.NoteID != nil:
		return "note"
	case req.ChatType != "":
		return req.ChatType
	default:
		return models.GeneralChatKey
	}
}

// findNote looks the note up in the recent window, then in the note store.
func (s *chatService) findNote(ctx context.Context, state *session.State, id int64) (models.Note, bool) {
	for _, n := range state.Recent() {
		if n.ID == id {
			return n, true
		}
	}
	if s.notes == nil {
		return models.Note{}, false
	}

	note, err := s.notes.Get(ctx, id)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "*chatService.findNote").Int64("note_id", id).Msg("note of chat not found")
		return models.Note{}, false
	}
	return note, true
}
