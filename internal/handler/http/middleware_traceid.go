package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

const (
	traceIDHeader   = "X-Trace-ID"
	maxTraceIDBytes = 128
)

// withTraceID tags the request with a trace id and puts a logger carrying
// it into the request context. A usable id sent by the client is kept,
// anything else is replaced by a fresh UUIDv7. The id is echoed back in
// the X-Trace-ID response header.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if !isUsableTraceID(traceID) {
			traceID = h.traceIDs.Generate()
		}

		reqLogger := h.logger.With().Str("trace_id", traceID).Logger()
		ctx := utils.WithTraceID(r.Context(), traceID)
		ctx = reqLogger.WithContext(ctx)

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// isUsableTraceID accepts short ids made of letters, digits, '-', '_',
// '.' and ':' so that client input cannot forge log structure.
func isUsableTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDBytes {
		return false
	}

	for i := 0; i < len(id); i++ {
		switch c := id[i]; {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.', c == ':':
		default:
			return false
		}
	}

	return true
}
