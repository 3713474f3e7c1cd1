package tui

import (
	"github.com/MKhiriev/cosmic-brain/internal/adapter"
	"github.com/MKhiriev/cosmic-brain/internal/workers"
	"github.com/MKhiriev/cosmic-brain/models"
)

// refreshMsg is sent by the refresh worker from outside the program loop.
type refreshMsg workers.Refresh

type noteCapturedMsg struct {
	resp     models.CaptureResponse
	openChat bool
	err      error
}

type recentLoadedMsg struct {
	items []models.Note
	err   error
}

// notesFoundMsg carries the query it answers so stale results are dropped.
type notesFoundMsg struct {
	query adapter.NotesQuery
	notes []models.Note
	err   error
}

type noteChangedMsg struct {
	err error
}

type chatHistoryLoadedMsg struct {
	key      string
	messages []models.ChatMessage
	err      error
}

type chatReplyMsg struct {
	key  string
	resp models.ChatResponse
	err  error
}

type chatResetMsg struct {
	key string
	err error
}

type reflectDoneMsg struct {
	note        models.Note
	text        string
	suggestions []string
	err         error
}

type dashboardLoadedMsg struct {
	timeframe models.Timeframe
	stats     models.DashboardStats
	err       error
}

type cycleUpdatedMsg struct {
	cycle models.CycleState
	err   error
}

type collectionCreatedMsg struct {
	resp models.CollectionCreateResponse
	err  error
}

type versionLoadedMsg struct {
	version string
	err     error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}

type headerLoadedMsg struct {
	header models.HeaderSnapshot
	err    error
}
