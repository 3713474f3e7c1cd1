// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the outbound HTTP clients of cosmic-brain, all built
// on resty:
//
//   - [CompletionAdapter] talks to the hosted LLM messages API;
//   - [MoonPhaseAdapter] asks a remote moon-phase provider for today's phase;
//   - [ServerAdapter] is used by the terminal client to reach the
//     cosmic-brain server.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling.
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/cosmic-brain/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// CompletionRequest is a single-turn prompt for the completion provider.
type CompletionRequest struct {
	Prompt string
	// MaxTokens overrides the configured limit when positive.
	MaxTokens int
}

// CompletionAdapter requests a text completion. Every failure wraps
// [ErrProvider] or is [ErrProviderNotConfigured].
type CompletionAdapter interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// MoonPhaseAdapter returns the name of the moon phase at t.
type MoonPhaseAdapter interface {
	MoonPhase(ctx context.Context, t time.Time) (string, error)
}

// ServerAdapter is the HTTP client of the cosmic-brain API used by the
// terminal client. Every call carries the configured session id.
type ServerAdapter interface {
	Capture(ctx context.Context, req models.CaptureRequest) (models.CaptureResponse, error)
	ListNotes(ctx context.Context, query NotesQuery) ([]models.Note, error)
	RecentNotes(ctx context.Context) ([]models.Note, error)
	SetProcessed(ctx context.Context, id int64, processed bool) error
	DeleteNote(ctx context.Context, id int64) error
	Dashboard(ctx context.Context, timeframe models.Timeframe) (models.DashboardStats, error)

	Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error)
	ChatHistory(ctx context.Context, key string) ([]models.ChatMessage, error)
	ResetChat(ctx context.Context, key string) error
	ProcessDump(ctx context.Context, req models.ProcessDumpRequest) (models.ProcessDumpResponse, error)

	Cycle(ctx context.Context) (models.CycleState, error)
	UpdateCycle(ctx context.Context, req models.CycleUpdateRequest) (models.CycleState, error)
	Collections(ctx context.Context) ([]models.Collection, error)
	CreateCollection(ctx context.Context, req models.CollectionCreateRequest) (models.CollectionCreateResponse, error)
	Cosmic(ctx context.Context) (models.CosmicSnapshot, error)
	Version(ctx context.Context) (string, error)
}

// NotesQuery are the list filters of GET /api/notes.
type NotesQuery struct {
	Category  models.Category
	Search    string
	Timeframe models.Timeframe
	Limit     int
}
