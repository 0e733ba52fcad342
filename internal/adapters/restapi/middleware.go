package restapi

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"near_account_lookup/internal/logger"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// RequestIDFromContext returns the id assigned by withRequestID, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// withRequestID reuses a well-formed incoming X-Request-ID or assigns a fresh UUID,
// echoes it on the response and logs each request on completion.
func withRequestID(next http.Handler, l logger.AppLogger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		start := time.Now()
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
		l.Debug("Request handled", "method", r.Method, "path", r.URL.Path, "requestId", id, "duration", time.Since(start))
	})
}
