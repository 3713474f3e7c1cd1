package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/cosmic-brain/internal/app"
	"github.com/MKhiriev/cosmic-brain/internal/logger"
	"github.com/MKhiriev/cosmic-brain/internal/session"
	"github.com/MKhiriev/cosmic-brain/internal/utils"
)

const (
	sessionHeader = "X-Session-ID"

	// maxSessionIDLength keeps arbitrary header values out of the state store.
	maxSessionIDLength = 64
)

// withSession puts the session id of the X-Session-ID header into the
// request context and tags the request logger with it. Requests without the
// header belong to the default session.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := strings.TrimSpace(r.Header.Get(sessionHeader))
		if sessionID == "" {
			sessionID = utils.DefaultSessionID
		}
		if len(sessionID) > maxSessionIDLength {
			logger.FromRequest(r).Warn().Str("func", "*Handler.withSession").Int("length", len(sessionID)).Msg("session id is too long")
			utils.WriteError(w, app.MsgSessionIDTooLong, http.StatusBadRequest)
			return
		}

		ctx := utils.WithSessionID(r.Context(), sessionID)
		ctx = logger.FromContext(ctx).WithSession(sessionID).WithContext(ctx)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// state returns the session state of the request.
func (h *Handler) state(r *http.Request) *session.State {
	return h.services.Sessions.Get(r.Context(), utils.SessionIDOrDefault(r.Context()))
}
