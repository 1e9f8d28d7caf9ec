package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/ksarapp/ksar-backend/pkg/ctxutil"
)

// RequestIDHeader carries the correlation ID in both directions.
const RequestIDHeader = "X-Request-Id"

// RequestID returns middleware that reuses the caller's request ID or
// generates a new UUID, stores it in the context and echoes it back.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.New().String()
			}
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
		})
	}
}
