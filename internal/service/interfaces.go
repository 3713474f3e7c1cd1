// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/cosmic-brain/internal/session"
	"github.com/MKhiriev/cosmic-brain/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// NoteService captures notes and serves the note listings and dashboard.
type NoteService interface {
	// Capture trims and categorizes req.Content, persists the note, pushes it
	// into the recent window of state and applies the actions found in the
	// text. Blank content returns ErrEmptyContent and changes nothing.
	Capture(ctx context.Context, state *session.State, req models.CaptureRequest) (models.CaptureResponse, error)
	List(ctx context.Context, filter models.NoteFilter) ([]models.Note, error)
	Recent(ctx context.Context, state *session.State) []models.Note
	SetProcessed(ctx context.Context, state *session.State, id int64, processed bool) error
	Delete(ctx context.Context, state *session.State, id int64) error
	Dashboard(ctx context.Context, timeframe models.Timeframe) (models.DashboardStats, error)
}

// ChatService runs chat turns against the completion provider.
type ChatService interface {
	// Send appends the user message to the chat session, asks the provider
	// for a reply (falling back to a fixed text on failure) and applies the
	// actions found in the user message. Provider failures are never
	// returned as errors.
	Send(ctx context.Context, state *session.State, req models.ChatRequest) (models.ChatResponse, error)
	History(ctx context.Context, state *session.State, key string) []models.ChatMessage
	Reset(ctx context.Context, state *session.State, key string)
}

// ActionService applies actions to session state. Changes are made locally
// first; the state store and the remote repository are written best-effort.
type ActionService interface {
	Apply(ctx context.Context, state *session.State, action models.Action) error
	UpdateCycle(ctx context.Context, state *session.State, day int, phase models.CyclePhase) (models.CycleState, error)
	CreateCollection(ctx context.Context, state *session.State, req models.CollectionCreateRequest) (models.Collection, error)
}

// ProcessService asks the completion provider to reflect on a single note.
type ProcessService interface {
	ProcessDump(ctx context.Context, state *session.State, req models.ProcessDumpRequest) (models.ProcessDumpResponse, error)
}

// CosmicService computes the cosmic snapshot of the current moment.
type CosmicService interface {
	Snapshot(ctx context.Context) models.CosmicSnapshot
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
