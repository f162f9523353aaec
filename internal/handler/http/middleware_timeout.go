package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

// withTimeout cancels the request context after timeout. A handler that
// returns after the deadline without writing anything gets a 504 envelope.
//
// Handlers must watch ctx.Done() for the deadline to have any effect.
func withTimeout(timeout time.Duration) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			rec := &responseRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r.WithContext(ctx))

			if !errors.Is(ctx.Err(), context.DeadlineExceeded) || rec.status != 0 {
				return
			}

			logger.FromRequest(r).Error().Dur("timeout", timeout).Str("uri", r.RequestURI).Msg("request timed out")
			writeEnvelope(w, http.StatusGatewayTimeout, true, msgRequestTimeout)
		})
	}
}
