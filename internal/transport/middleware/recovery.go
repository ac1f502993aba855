package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/hourglass-hq/hourglass-backend/pkg/ctxutil"
)

// Recovery returns middleware that turns a handler panic into a 500 response.
// The panic value, stack trace and request id are logged so the request can be
// traced back through the access log.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					stack := debug.Stack()
					logger.ErrorContext(r.Context(), "panic recovered",
						slog.Any("error", err),
						slog.String("stack", string(stack)),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
					)
					http.Error(w, "internal server error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
