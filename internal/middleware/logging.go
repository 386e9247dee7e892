package middleware

import (
	"net/http"
	"time"

	"kaupapa-calendar/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestLogger loguea cada request con método, path, status, duración,
// request id y entidad que actúa. 4xx => warn, 5xx => error.
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			fields := map[string]any{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      status,
				"duration_ms": time.Since(start).Milliseconds(),
				"request_id":  chimw.GetReqID(r.Context()),
			}
			if eid, ok := ActingEntity(r.Context()); ok {
				fields["entity_id"] = eid
			}

			switch {
			case status >= 500:
				log.Error("request", fields)
			case status >= 400:
				log.Warn("request", fields)
			default:
				log.Info("request", fields)
			}
		})
	}
}
