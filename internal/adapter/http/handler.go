package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"random-service/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds a RandomUseCase to draw values and a logger for structured
// logging. Every method on every path is routed to the same endpoint.
type Handler struct {
	svc    port.RandomUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. It accepts a
// RandomUseCase implementation and a logger.
func NewHandler(svc port.RandomUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(h.withTrace)

	r.HandleFunc("/", h.handleRandomByte)
	r.HandleFunc("/*", h.handleRandomByte)
	// chi answers methods it does not know with 405.
	r.MethodNotAllowed(h.handleRandomByte)
	r.NotFound(h.handleRandomByte)
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
