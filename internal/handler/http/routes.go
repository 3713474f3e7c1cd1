package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	router.Use(cors.Handler(h.corsOptions()))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/version/", h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.withSession)

		r.Post("/api/notes", h.captureNote)
		r.Get("/api/notes", h.listNotes)
		r.Get("/api/notes/recent", h.recentNotes)
		r.Put("/api/notes/{id}/processed", h.setNoteProcessed)
		r.Delete("/api/notes/{id}", h.deleteNote)
		r.Get("/api/dashboard", h.dashboard)

		r.Post("/api/chat", h.chat)
		r.Get("/api/chat/{key}", h.chatHistory)
		r.Delete("/api/chat/{key}", h.resetChat)
		r.Post("/api/process-dump", h.processDump)

		r.Get("/api/cycle", h.getCycle)
		r.Post("/api/cycle", h.updateCycle)
		r.Get("/api/databases", h.listCollections)
		r.Post("/api/databases", h.createCollection)
		r.Get("/api/cosmic", h.cosmic)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) corsOptions() cors.Options {
	origins := h.allowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Encoding", sessionHeader, traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}
}
