package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/cosmic-brain/internal/app"
	"github.com/MKhiriev/cosmic-brain/internal/logger"
	"github.com/MKhiriev/cosmic-brain/internal/service"
	"github.com/MKhiriev/cosmic-brain/internal/store"
	"github.com/MKhiriev/cosmic-brain/internal/utils"
)

var errorStatusMap = []struct {
	target error
	status int
}{
	{service.ErrEmptyContent, http.StatusNoContent},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrEmptyCollectionName, http.StatusBadRequest},
	{service.ErrInvalidCyclePhase, http.StatusBadRequest},
	{service.ErrUnknownAction, http.StatusBadRequest},
	{utils.ErrEmptyBody, http.StatusBadRequest},
	{ErrInvalidNoteID, http.StatusBadRequest},
	{ErrInvalidLimit, http.StatusBadRequest},

	{store.ErrNoteNotFound, http.StatusNotFound},
	{store.ErrCollectionAlreadyExists, http.StatusConflict},

	{store.ErrNoteNotSaved, http.StatusInternalServerError},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.target) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with the mapped status. A 204 has no body.
// Server errors carry the retry message instead of the error text.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	switch {
	case status == http.StatusNoContent:
		log.Debug().Str("func", funcName).Msg("nothing to do for empty content")
		w.WriteHeader(status)
	case status >= http.StatusInternalServerError:
		log.Err(err).Str("func", funcName).Int("status", status).Send()
		utils.WriteError(w, app.MsgRetry, status)
	default:
		log.Warn().Err(err).Str("func", funcName).Int("status", status).Send()
		utils.WriteError(w, err.Error(), status)
	}
}
