package middleware

import (
	"net/http"
	"time"

	"dog-walking-app/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestLogger loggea método, path, status y duración de cada request.
// Se apoya en el RequestID de chi si está en la cadena.
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			fields := map[string]any{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      ww.Status(),
				"duration_ms": time.Since(start).Milliseconds(),
			}
			if reqID := chimw.GetReqID(r.Context()); reqID != "" {
				fields["request_id"] = reqID
			}

			log.Info("http request", fields)
		})
	}
}
