package service

import (
	"github.com/MKhiriev/cosmic-brain/internal/adapter"
	"github.com/MKhiriev/cosmic-brain/internal/config"
	"github.com/MKhiriev/cosmic-brain/internal/logger"
	"github.com/MKhiriev/cosmic-brain/internal/session"
	"github.com/MKhiriev/cosmic-brain/internal/store"
)

// Services groups the server-side services and the session manager they
// operate on.
type Services struct {
	Sessions *session.Manager

	NoteService    NoteService
	ChatService    ChatService
	ActionService  ActionService
	ProcessService ProcessService
	CosmicService  CosmicService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	var stateStore session.StateStore
	if storages.LocalState != nil {
		stateStore = storages.LocalState
	}

	completion := adapter.NewCompletionAdapter(cfg.LLM, logger)
	moon := adapter.NewMoonPhaseAdapter(cfg.Cosmic, logger)

	cosmicService := NewCosmicService(moon, logger)
	actionService := NewActionService(stateStore, storages.RemoteState, logger)

	return &Services{
		Sessions:       session.NewManager(stateStore, logger),
		NoteService:    NewNoteService(storages.Notes, actionService, logger),
		ChatService:    NewChatService(completion, actionService, cosmicService, storages.Notes, logger),
		ActionService:  actionService,
		ProcessService: NewProcessService(completion, cosmicService, storages.Notes, logger),
		CosmicService:  cosmicService,
		AppInfoService: appInfoService,
	}, nil
}
