package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/cosmic-brain/internal/app"
	"github.com/MKhiriev/cosmic-brain/internal/logger"
	"github.com/MKhiriev/cosmic-brain/internal/utils"
	"github.com/MKhiriev/cosmic-brain/models"
)

// chat answers 200 even when the completion provider failed; the reply is
// then the fallback text.
func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.chat").Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	resp, err := h.services.ChatService.Send(r.Context(), h.state(r), req)
	if err != nil {
		writeError(w, r, "*Handler.chat", err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) chatHistory(w http.ResponseWriter, r *http.Request) {
	history := h.services.ChatService.History(r.Context(), h.state(r), chi.URLParam(r, "key"))
	utils.WriteJSON(w, nonNil(history), http.StatusOK)
}

func (h *Handler) resetChat(w http.ResponseWriter, r *http.Request) {
	h.services.ChatService.Reset(r.Context(), h.state(r), chi.URLParam(r, "key"))
	w.WriteHeader(http.StatusNoContent)
}

// processDump answers 500 with {message, fallback} when the provider failed,
// so the fallback text still reaches the user.
func (h *Handler) processDump(w http.ResponseWriter, r *http.Request) {
	var req models.ProcessDumpRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.processDump").Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	resp, err := h.services.ProcessService.ProcessDump(r.Context(), h.state(r), req)
	if err != nil {
		writeError(w, r, "*Handler.processDump", err)
		return
	}

	status := http.StatusOK
	if resp.Fallback != "" {
		status = http.StatusInternalServerError
	}
	utils.WriteJSON(w, resp, status)
}
