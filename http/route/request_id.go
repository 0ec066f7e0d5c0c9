package route

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// ctxKey scopes context values set by middleware in this package.
type ctxKey string

const requestIDKey ctxKey = "request_id"

// RequestID stamps each request with a fresh uuid under its context.
// LogRequest picks the uuid up, correlating a request's log lines with
// the failure instance rendered for it.
func RequestID() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), requestIDKey, uuid.NewString())
			h.ServeHTTP(w, r.Clone(ctx))
		})
	}
}

// GetRequestID retrieves the uuid RequestID stamped on ctx,
// or "" when the middleware is not installed.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
