package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/cosmic-brain/internal/app"
	"github.com/MKhiriev/cosmic-brain/internal/logger"
	"github.com/MKhiriev/cosmic-brain/internal/utils"
	"github.com/MKhiriev/cosmic-brain/models"
)

func (h *Handler) captureNote(w http.ResponseWriter, r *http.Request) {
	var req models.CaptureRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.captureNote").Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	resp, err := h.services.NoteService.Capture(r.Context(), h.state(r), req)
	if err != nil {
		writeError(w, r, "*Handler.captureNote", err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusCreated)
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := models.NoteFilter{
		Search: query.Get("q"),
		Since:  models.ParseTimeframe(query.Get("timeframe")).Since(h.now()),
	}
	if category := models.Category(query.Get("category")); category != "" {
		if !category.Valid() {
			utils.WriteError(w, app.MsgUnknownCategory, http.StatusBadRequest)
			return
		}
		filter.Category = category
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || limit == 0 {
			writeError(w, r, "*Handler.listNotes", ErrInvalidLimit)
			return
		}
		filter.Limit = limit
	}

	notes, err := h.services.NoteService.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, "*Handler.listNotes", err)
		return
	}

	utils.WriteJSON(w, nonNil(notes), http.StatusOK)
}

func (h *Handler) recentNotes(w http.ResponseWriter, r *http.Request) {
	notes := h.services.NoteService.Recent(r.Context(), h.state(r))
	utils.WriteJSON(w, nonNil(notes), http.StatusOK)
}

func (h *Handler) setNoteProcessed(w http.ResponseWriter, r *http.Request) {
	id, err := noteID(r)
	if err != nil {
		writeError(w, r, "*Handler.setNoteProcessed", err)
		return
	}

	var req models.ProcessedRequest
	if err = utils.DecodeJSON(r, &req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.setNoteProcessed").Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err = h.services.NoteService.SetProcessed(r.Context(), h.state(r), id, req.Processed); err != nil {
		writeError(w, r, "*Handler.setNoteProcessed", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := noteID(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteNote", err)
		return
	}

	if err = h.services.NoteService.Delete(r.Context(), h.state(r), id); err != nil {
		writeError(w, r, "*Handler.deleteNote", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.NoteService.Dashboard(r.Context(), models.ParseTimeframe(r.URL.Query().Get("timeframe")))
	if err != nil {
		writeError(w, r, "*Handler.dashboard", err)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

func noteID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidNoteID
	}
	return id, nil
}

// nonNil keeps empty lists encoded as [] instead of null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
