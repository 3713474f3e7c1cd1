// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/cosmic-brain/internal/config"
	"github.com/MKhiriev/cosmic-brain/internal/logger"
	"github.com/MKhiriev/cosmic-brain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.Adapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second, SessionID: "tablet"}

	a, err := NewHTTPServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── NewHTTPServerAdapter ───────────────────────────────────────────────────

func TestNewHTTPServerAdapter_EmptyAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.Adapter{}, logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid adapter http address")
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "host and port", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "with scheme", raw: "https://brain.example/", want: "https://brain.example"},
		{name: "surrounding spaces", raw: "  http://127.0.0.1:8080  ", want: "http://127.0.0.1:8080"},
		{name: "empty", raw: "   ", wantErr: true},
		{name: "scheme only", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSessionHeader_SentOnEveryRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tablet", r.Header.Get(SessionHeader))
		writeJSON(t, w, http.StatusOK, models.CycleState{Day: 3, Phase: models.PhaseMenstrual})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Cycle(context.Background())
	require.NoError(t, err)
}

func TestSessionHeader_DefaultWhenUnset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "default", r.Header.Get(SessionHeader))
		writeJSON(t, w, http.StatusOK, models.CycleState{})
	}))
	defer srv.Close()

	a, err := NewHTTPServerAdapter(config.Adapter{HTTPAddress: srv.URL}, logger.Nop())
	require.NoError(t, err)
	_, err = a.Cycle(context.Background())
	require.NoError(t, err)
}

// ── Capture ────────────────────────────────────────────────────────────────

func TestCapture_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/notes", r.URL.Path)

		var req models.CaptureRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "create a crystals database", req.Content)

		writeJSON(t, w, http.StatusCreated, models.CaptureResponse{
			Note:    models.Note{ID: 7, Content: req.Content, Category: models.CategorySpiritual},
			Actions: []models.Action{models.NewCreateDatabaseAction("crystals")},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Capture(context.Background(), models.CaptureRequest{Content: "create a crystals database"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.Note.ID)
	assert.Equal(t, models.CategorySpiritual, got.Note.Category)
	require.Len(t, got.Actions, 1)
	assert.Equal(t, "crystals", got.Actions[0].Name)
}

func TestCapture_NoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Capture(context.Background(), models.CaptureRequest{Content: "  "})

	require.NoError(t, err)
	assert.Zero(t, got.Note.ID)
}

func TestCapture_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusInternalServerError, map[string]string{"error": "could not save note, please try again"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Capture(context.Background(), models.CaptureRequest{Content: "x"})

	require.ErrorIs(t, err, ErrInternalServerError)
	assert.Contains(t, err.Error(), "please try again")
}

func TestCapture_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	_, err := a.Capture(context.Background(), models.CaptureRequest{Content: "x"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "capture request")
}

// ── Notes ──────────────────────────────────────────────────────────────────

func TestListNotes_QueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/notes", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "garden", q.Get("category"))
		assert.Equal(t, "basil", q.Get("q"))
		assert.Equal(t, "week", q.Get("timeframe"))
		assert.Equal(t, "5", q.Get("limit"))

		writeJSON(t, w, http.StatusOK, []models.Note{{ID: 1, Content: "plant basil", Category: models.CategoryGarden}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	notes, err := a.ListNotes(context.Background(), NotesQuery{
		Category:  models.CategoryGarden,
		Search:    "basil",
		Timeframe: models.TimeframeWeek,
		Limit:     5,
	})

	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "plant basil", notes[0].Content)
}

func TestListNotes_NoFilters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		writeJSON(t, w, http.StatusOK, []models.Note{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	notes, err := a.ListNotes(context.Background(), NotesQuery{})

	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestRecentNotes_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/notes/recent", r.URL.Path)
		writeJSON(t, w, http.StatusOK, []models.Note{{ID: 2}, {ID: 1}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	notes, err := a.RecentNotes(context.Background())

	require.NoError(t, err)
	assert.Len(t, notes, 2)
}

func TestSetProcessed_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/notes/42/processed", r.URL.Path)

		var req models.ProcessedRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, req.Processed)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.SetProcessed(context.Background(), 42, true))
}

func TestSetProcessed_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, map[string]string{"error": "note not found"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.SetProcessed(context.Background(), 42, true)

	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "note not found")
}

func TestDeleteNote_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/notes/9", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.DeleteNote(context.Background(), 9))
}

func TestDashboard_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/dashboard", r.URL.Path)
		assert.Equal(t, "today", r.URL.Query().Get("timeframe"))
		writeJSON(t, w, http.StatusOK, models.DashboardStats{TotalDumps: 4, ProcessedDumps: 1, CompletionPercent: 25})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	stats, err := a.Dashboard(context.Background(), models.TimeframeToday)

	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalDumps)
	assert.Equal(t, 25, stats.CompletionPercent)
}

// ── Chat ───────────────────────────────────────────────────────────────────

func TestChat_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/chat", r.URL.Path)

		var req models.ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "I'm on day 5", req.Message)

		writeJSON(t, w, http.StatusOK, models.ChatResponse{
			Response: "Noted.",
			Actions:  []models.Action{models.NewUpdateCycleAction(5)},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Chat(context.Background(), models.ChatRequest{Message: "I'm on day 5"})

	require.NoError(t, err)
	assert.Equal(t, "Noted.", got.Response)
	require.Len(t, got.Actions, 1)
	assert.Equal(t, 5, got.Actions[0].Day)
}

func TestChatHistory_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat/12", r.URL.Path)
		writeJSON(t, w, http.StatusOK, []models.ChatMessage{
			{Role: models.RoleAssistant, Content: "hi"},
			{Role: models.RoleUser, Content: "hello"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	history, err := a.ChatHistory(context.Background(), "12")

	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, models.RoleAssistant, history[0].Role)
}

func TestResetChat_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/chat/general", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.ResetChat(context.Background(), models.GeneralChatKey))
}

func TestProcessDump_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/process-dump", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.ProcessDumpResponse{
			Response:    "Plant on the waxing moon.",
			Suggestions: []string{"Check soil"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.ProcessDump(context.Background(), models.ProcessDumpRequest{Content: "plant basil", Category: models.CategoryGarden})

	require.NoError(t, err)
	assert.Equal(t, "Plant on the waxing moon.", got.Response)
	assert.Equal(t, []string{"Check soil"}, got.Suggestions)
}

func TestProcessDump_FallbackOnErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusInternalServerError, models.ProcessDumpResponse{
			Message:  "could not process",
			Fallback: "Your garden thoughts are saved.",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.ProcessDump(context.Background(), models.ProcessDumpRequest{Content: "x", Category: models.CategoryGarden})

	require.NoError(t, err)
	assert.Equal(t, "Your garden thoughts are saved.", got.Fallback)
}

func TestProcessDump_ErrorWithoutFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, map[string]string{"error": "content is required"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.ProcessDump(context.Background(), models.ProcessDumpRequest{})

	require.ErrorIs(t, err, ErrBadRequest)
}

// ── Cycle / collections / cosmic ───────────────────────────────────────────

func TestUpdateCycle_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/cycle", r.URL.Path)

		var req models.CycleUpdateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 20, req.CycleDay)
		writeJSON(t, w, http.StatusOK, models.CycleState{Day: 20, Phase: models.PhaseLuteal})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.UpdateCycle(context.Background(), models.CycleUpdateRequest{CycleDay: 20})

	require.NoError(t, err)
	assert.Equal(t, models.PhaseLuteal, got.Phase)
}

func TestCollections_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/databases", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.CollectionsResponse{Databases: []models.Collection{{ID: "a", Name: "Crystals", Type: "crystals"}}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Collections(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Crystals", got[0].Name)
}

func TestCreateCollection_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusConflict, map[string]string{"error": "collection already exists"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateCollection(context.Background(), models.CollectionCreateRequest{Name: "Herbs"})

	require.ErrorIs(t, err, ErrConflict)
}

func TestCreateCollection_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.CollectionCreateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "herb", req.Template)
		writeJSON(t, w, http.StatusCreated, models.CollectionCreateResponse{
			Success:  true,
			Database: models.Collection{ID: "b", Name: req.Name, Type: "herbs"},
			Message:  "Created Herbs",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.CreateCollection(context.Background(), models.CollectionCreateRequest{Name: "Herbs", Template: "herb"})

	require.NoError(t, err)
	assert.True(t, got.Success)
	assert.Equal(t, "herbs", got.Database.Type)
}

func TestCosmic_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/cosmic", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.CosmicSnapshot{MoonPhase: "Full Moon", CurrentSign: "Libra"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Cosmic(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Full Moon", got.MoonPhase)
	assert.Equal(t, "Libra", got.CurrentSign)
}

func TestCosmic_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Cosmic(context.Background())

	require.ErrorIs(t, err, ErrServiceUnavailable)
}

func TestVersion_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version/", r.URL.Path)
		_, _ = w.Write([]byte("v1.2.3\n"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "v1.2.3", got)
}

// ── mapHTTPError ───────────────────────────────────────────────────────────

func TestMapHTTPError_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.DeleteNote(context.Background(), 1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
	assert.Contains(t, err.Error(), http.StatusText(http.StatusTeapot))
}

func TestErrorDetail(t *testing.T) {
	assert.Equal(t, "boom", errorDetail([]byte(`{"error":"boom"}`)))
	assert.Equal(t, "plain text", errorDetail([]byte(" plain text\n")))
	assert.Equal(t, `{"other":1}`, errorDetail([]byte(`{"other":1}`)))
}
