package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"random-service/internal/logger"
)

// withTrace tags the request with a generated request id. Every record
// logged through the request context carries the id; it is never sent to
// the client. The request itself is dumped at trace level.
func (h *Handler) withTrace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l := h.logger.With(slog.String("request_id", uuid.NewString()))
		ctx := logger.WithContext(r.Context(), l)

		if l.Enabled(ctx, logger.LevelTrace) {
			logger.Trace(ctx, l, "incoming request",
				slog.String("method", r.Method),
				slog.String("uri", r.RequestURI),
				slog.String("proto", r.Proto),
				slog.String("remote_addr", r.RemoteAddr),
				slog.Any("headers", r.Header),
			)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
