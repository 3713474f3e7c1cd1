package service

import (
	"context"

	"github.com/MKhiriev/cosmic-brain/internal/adapter"
	"github.com/MKhiriev/cosmic-brain/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientNoteService defines the client-side contract for capturing and
// managing notes through the server API. Adapter errors are translated into
// service errors (ErrNoteNotFound, ErrServerUnavailable, ...).
type ClientNoteService interface {
	// Capture sends content to the server. Blank content is rejected locally
	// with ErrEmptyContent. When openChat is set the server opens a chat
	// session for the note and the greeting is part of the response.
	Capture(ctx context.Context, content string, openChat bool) (models.CaptureResponse, error)

	// Recent returns the recent-notes window of the session, newest first.
	Recent(ctx context.Context) ([]models.Note, error)

	// Search lists stored notes matching query.
	Search(ctx context.Context, query adapter.NotesQuery) ([]models.Note, error)

	SetProcessed(ctx context.Context, id int64, processed bool) error
	Delete(ctx context.Context, id int64) error
	Dashboard(ctx context.Context, timeframe models.Timeframe) (models.DashboardStats, error)
}

// ClientChatService defines the client-side contract of the chat screens.
type ClientChatService interface {
	// Send posts message to the chat session identified by key. A non-nil
	// noteID ties the session to a captured note.
	Send(ctx context.Context, key string, noteID *int64, message string) (models.ChatResponse, error)

	History(ctx context.Context, key string) ([]models.ChatMessage, error)
	Reset(ctx context.Context, key string) error

	// Reflect asks the server to process note. The returned text is either
	// the assistant reply or, when the provider failed, the fallback text.
	Reflect(ctx context.Context, note models.Note) (text string, suggestions []string, err error)
}

// ClientHeaderService defines the client-side contract for the session-wide
// data shown around the screens: cosmic snapshot, cycle and collections.
type ClientHeaderService interface {
	// Header fetches the cosmic snapshot, the cycle state and the collection
	// registry concurrently.
	Header(ctx context.Context) (models.HeaderSnapshot, error)

	SetCycleDay(ctx context.Context, day int) (models.CycleState, error)
	CreateCollection(ctx context.Context, name, template string) (models.CollectionCreateResponse, error)
	Version(ctx context.Context) (string, error)
}
