package reqctx

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// This package provides helpers for setting and getting the request id carried through a request context.
// The middleware sets it; handlers and loggers read it.

// contextKey is a private type to avoid key collisions in the context.
type contextKey string

// RequestIDKey is the context key the request id is stored under.
const RequestIDKey = contextKey("request_id")

// HeaderRequestID is both read from the caller and echoed on the response.
const HeaderRequestID = "X-Request-Id"

// SetRequestID returns a new request with the id added to its context.
func SetRequestID(r *http.Request, id string) *http.Request {
	ctx := context.WithValue(r.Context(), RequestIDKey, id)
	return r.WithContext(ctx)
}

// GetRequestID retrieves the request id from the context, or "" when there is none.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// Middleware keeps the caller's X-Request-Id or generates a new UUID for the request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, id)
		next.ServeHTTP(w, SetRequestID(r, id))
	})
}
