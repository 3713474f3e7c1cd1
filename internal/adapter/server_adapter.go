package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/cosmic-brain/internal/config"
	"github.com/MKhiriev/cosmic-brain/internal/logger"
	"github.com/MKhiriev/cosmic-brain/internal/utils"
	"github.com/MKhiriev/cosmic-brain/models"
	"github.com/go-resty/resty/v2"
)

// SessionHeader carries the session identifier of every API request.
const SessionHeader = "X-Session-ID"

type httpServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL, request
// timeout and session header.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	sessionID := adapterCfg.SessionID
	if sessionID == "" {
		sessionID = utils.DefaultSessionID
	}

	client := utils.NewHTTPClient(
		utils.WithBaseURL(baseURL),
		utils.WithTimeout(adapterCfg.RequestTimeout),
		utils.WithHeader(SessionHeader, sessionID),
		utils.WithHeader("Accept", "application/json"),
	)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

// do runs a prepared request and maps transport and status errors. what
// names the call in error messages.
func do(what string, resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%s request: %w", what, err)
	}
	return mapHTTPError(resp)
}

// Capture implements [ServerAdapter]: POST /api/notes. A blank note yields
// 204 and an empty response.
func (h *httpServerAdapter) Capture(ctx context.Context, req models.CaptureRequest) (models.CaptureResponse, error) {
	var out models.CaptureResponse
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&out).
		Post("/api/notes")
	if err = do("capture", resp, err); err != nil {
		return models.CaptureResponse{}, err
	}
	return out, nil
}

// ListNotes implements [ServerAdapter]: GET /api/notes.
func (h *httpServerAdapter) ListNotes(ctx context.Context, query NotesQuery) ([]models.Note, error) {
	req := h.request(ctx)
	if query.Category != "" {
		req.SetQueryParam("category", string(query.Category))
	}
	if query.Search != "" {
		req.SetQueryParam("q", query.Search)
	}
	if query.Timeframe != "" {
		req.SetQueryParam("timeframe", string(query.Timeframe))
	}
	if query.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(query.Limit))
	}

	var notes []models.Note
	resp, err := req.SetResult(&notes).Get("/api/notes")
	if err = do("list notes", resp, err); err != nil {
		return nil, err
	}
	return notes, nil
}

// RecentNotes implements [ServerAdapter]: GET /api/notes/recent.
func (h *httpServerAdapter) RecentNotes(ctx context.Context) ([]models.Note, error) {
	var notes []models.Note
	resp, err := h.request(ctx).SetResult(&notes).Get("/api/notes/recent")
	if err = do("recent notes", resp, err); err != nil {
		return nil, err
	}
	return notes, nil
}

// SetProcessed implements [ServerAdapter]: PUT /api/notes/{id}/processed.
func (h *httpServerAdapter) SetProcessed(ctx context.Context, id int64, processed bool) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(models.ProcessedRequest{Processed: processed}).
		Put("/api/notes/{id}/processed")
	return do("set processed", resp, err)
}

// DeleteNote implements [ServerAdapter]: DELETE /api/notes/{id}.
func (h *httpServerAdapter) DeleteNote(ctx context.Context, id int64) error {
	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/api/notes/{id}")
	return do("delete note", resp, err)
}

// Dashboard implements [ServerAdapter]: GET /api/dashboard.
func (h *httpServerAdapter) Dashboard(ctx context.Context, timeframe models.Timeframe) (models.DashboardStats, error) {
	var stats models.DashboardStats
	resp, err := h.request(ctx).
		SetQueryParam("timeframe", string(timeframe)).
		SetResult(&stats).
		Get("/api/dashboard")
	if err = do("dashboard", resp, err); err != nil {
		return models.DashboardStats{}, err
	}
	return stats, nil
}

// Chat implements [ServerAdapter]: POST /api/chat.
func (h *httpServerAdapter) Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	var out models.ChatResponse
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&out).
		Post("/api/chat")
	if err = do("chat", resp, err); err != nil {
		return models.ChatResponse{}, err
	}
	return out, nil
}

// ChatHistory implements [ServerAdapter]: GET /api/chat/{key}.
func (h *httpServerAdapter) ChatHistory(ctx context.Context, key string) ([]models.ChatMessage, error) {
	var history []models.ChatMessage
	resp, err := h.request(ctx).
		SetPathParam("key", key).
		SetResult(&history).
		Get("/api/chat/{key}")
	if err = do("chat history", resp, err); err != nil {
		return nil, err
	}
	return history, nil
}

// ResetChat implements [ServerAdapter]: DELETE /api/chat/{key}.
func (h *httpServerAdapter) ResetChat(ctx context.Context, key string) error {
	resp, err := h.request(ctx).
		SetPathParam("key", key).
		Delete("/api/chat/{key}")
	return do("reset chat", resp, err)
}

// ProcessDump implements [ServerAdapter]: POST /api/process-dump. The
// fallback body of a failed provider call is returned as a normal response.
func (h *httpServerAdapter) ProcessDump(ctx context.Context, req models.ProcessDumpRequest) (models.ProcessDumpResponse, error) {
	var out models.ProcessDumpResponse
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&out).
		SetError(&out).
		Post("/api/process-dump")
	if err != nil {
		return models.ProcessDumpResponse{}, fmt.Errorf("process dump request: %w", err)
	}
	if out.Fallback != "" {
		return out, nil
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ProcessDumpResponse{}, err
	}
	return out, nil
}

// Cycle implements [ServerAdapter]: GET /api/cycle.
func (h *httpServerAdapter) Cycle(ctx context.Context) (models.CycleState, error) {
	var cycle models.CycleState
	resp, err := h.request(ctx).SetResult(&cycle).Get("/api/cycle")
	if err = do("cycle", resp, err); err != nil {
		return models.CycleState{}, err
	}
	return cycle, nil
}

// UpdateCycle implements [ServerAdapter]: POST /api/cycle.
func (h *httpServerAdapter) UpdateCycle(ctx context.Context, req models.CycleUpdateRequest) (models.CycleState, error) {
	var cycle models.CycleState
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&cycle).
		Post("/api/cycle")
	if err = do("update cycle", resp, err); err != nil {
		return models.CycleState{}, err
	}
	return cycle, nil
}

// Collections implements [ServerAdapter]: GET /api/databases.
func (h *httpServerAdapter) Collections(ctx context.Context) ([]models.Collection, error) {
	var out models.CollectionsResponse
	resp, err := h.request(ctx).SetResult(&out).Get("/api/databases")
	if err = do("collections", resp, err); err != nil {
		return nil, err
	}
	return out.Databases, nil
}

// CreateCollection implements [ServerAdapter]: POST /api/databases.
func (h *httpServerAdapter) CreateCollection(ctx context.Context, req models.CollectionCreateRequest) (models.CollectionCreateResponse, error) {
	var out models.CollectionCreateResponse
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&out).
		Post("/api/databases")
	if err = do("create collection", resp, err); err != nil {
		return models.CollectionCreateResponse{}, err
	}
	return out, nil
}

// Cosmic implements [ServerAdapter]: GET /api/cosmic.
func (h *httpServerAdapter) Cosmic(ctx context.Context) (models.CosmicSnapshot, error) {
	var snapshot models.CosmicSnapshot
	resp, err := h.request(ctx).SetResult(&snapshot).Get("/api/cosmic")
	if err = do("cosmic", resp, err); err != nil {
		return models.CosmicSnapshot{}, err
	}
	return snapshot, nil
}

// Version implements [ServerAdapter]: GET /api/version/.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).Get("/api/version/")
	if err = do("version", resp, err); err != nil {
		return "", err
	}
	return strings.TrimSpace(string(resp.Body())), nil
}
