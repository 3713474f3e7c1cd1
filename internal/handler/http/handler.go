package http

import (
	"time"

	"github.com/MKhiriev/cosmic-brain/internal/logger"
	"github.com/MKhiriev/cosmic-brain/internal/service"
)

type Handler struct {
	services *service.Services

	allowedOrigins []string
	requestTimeout time.Duration
	now            func() time.Time

	logger *logger.Logger
}

// HandlerOption configures optional parts of a Handler.
type HandlerOption func(*Handler)

// WithAllowedOrigins sets the CORS origins. Without it any origin is allowed.
func WithAllowedOrigins(origins []string) HandlerOption {
	return func(h *Handler) {
		h.allowedOrigins = origins
	}
}

// WithRequestTimeout bounds the context of every request. Zero disables it.
func WithRequestTimeout(timeout time.Duration) HandlerOption {
	return func(h *Handler) {
		h.requestTimeout = timeout
	}
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...HandlerOption) *Handler {
	logger.Info().Msg("http handler created")
	h := &Handler{
		services: services,
		now:      time.Now,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}
