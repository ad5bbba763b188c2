package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/zenkart/backend/logger"
)

// RequestID tags every request with a fresh id, both in the response
// header and in the context logger.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-Id", id)
		ctx := logger.WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
