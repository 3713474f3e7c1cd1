package http

import (
	"net/http"

	"github.com/MKhiriev/cosmic-brain/internal/app"
	"github.com/MKhiriev/cosmic-brain/internal/brain"
	"github.com/MKhiriev/cosmic-brain/internal/logger"
	"github.com/MKhiriev/cosmic-brain/internal/utils"
	"github.com/MKhiriev/cosmic-brain/models"
)

func (h *Handler) getCycle(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.state(r).Cycle(), http.StatusOK)
}

// updateCycle derives the phase from the day when cyclePhase is omitted.
func (h *Handler) updateCycle(w http.ResponseWriter, r *http.Request) {
	var req models.CycleUpdateRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.updateCycle").Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	cycle, err := h.services.ActionService.UpdateCycle(r.Context(), h.state(r), req.CycleDay, req.CyclePhase)
	if err != nil {
		writeError(w, r, "*Handler.updateCycle", err)
		return
	}

	utils.WriteJSON(w, cycle, http.StatusOK)
}

func (h *Handler) listCollections(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.CollectionsResponse{Databases: nonNil(h.state(r).Collections())}, http.StatusOK)
}

func (h *Handler) createCollection(w http.ResponseWriter, r *http.Request) {
	var req models.CollectionCreateRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.createCollection").Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	collection, err := h.services.ActionService.CreateCollection(r.Context(), h.state(r), req)
	if err != nil {
		writeError(w, r, "*Handler.createCollection", err)
		return
	}

	utils.WriteJSON(w, models.CollectionCreateResponse{
		Success:  true,
		Database: collection,
		Message:  brain.DatabaseCreatedMessage(collection.Name),
	}, http.StatusCreated)
}

func (h *Handler) cosmic(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.CosmicService.Snapshot(r.Context()), http.StatusOK)
}
