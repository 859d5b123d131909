package httpadapter

import (
	"io"
	"log/slog"
	"net/http"
)

// handleRandomByte writes one random byte as decimal digits with status
// 200. The request itself is ignored.
func (h *Handler) handleRandomByte(w http.ResponseWriter, r *http.Request) {
	value := h.svc.Generate(r.Context())

	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, value.String()); err != nil {
		h.logger.DebugContext(r.Context(), "write response error", slog.Any("error", err))
	}
}
