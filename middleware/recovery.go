// Package middleware holds the http middleware shared by both services.
package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/zenkart/backend/httpjson"
	"github.com/zenkart/backend/logger"
	"github.com/zenkart/backend/srvcerror"
)

// Recovery turns a handler panic into a generic 500 instead of killing
// the process.
func Recovery() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.FromContext(r.Context()).Error("panic recovered",
						"panic", rec,
						"method", r.Method,
						"path", r.URL.Path,
						"stack", string(debug.Stack()),
					)
					httpjson.WriteErrorJson(w,
						http.StatusText(http.StatusInternalServerError),
						http.StatusInternalServerError,
						srvcerror.ErrCodeInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
