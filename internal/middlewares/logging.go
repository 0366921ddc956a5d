package middlewares

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/p2p-loans/internal/logger"
)

// contextKey is an unexported type for request-scoped values.
type contextKey struct{}

var requestIDKey = contextKey{}

// LoggingMiddleware logs every request and its response using the global
// logger. It also stamps a unique request ID into the context and the
// X-Request-ID response header.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.New().String()

		start := time.Now()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		r = r.WithContext(
			context.WithValue(r.Context(), requestIDKey, reqID),
		)
		w.Header().Set("X-Request-ID", reqID)

		next.ServeHTTP(rw, r)

		logger.Log.Infow("http request",
			"request_id", reqID,
			"method", r.Method,
			"uri", r.RequestURI,
			"status", rw.statusCode,
			"response_size", rw.size,
			"duration", time.Since(start),
		)
	})
}

// RequestIDFromContext returns the request ID stamped by LoggingMiddleware,
// or an empty string when absent.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	size, err := rw.ResponseWriter.Write(b)
	rw.size += size
	return size, err
}
