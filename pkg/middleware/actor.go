package middleware

import (
	"context"
	"net/http"
	"strconv"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// ActorIDKey is the context key for the acting user ID
	ActorIDKey ContextKey = "actor_id"

	// ActorHeader names the header clients use to say who is acting.
	ActorHeader = "X-Actor-ID"
)

// Actor reads the acting user's ID from the X-Actor-ID header and stores it
// in the request context. There is no authentication behind it; the caller
// is trusted to say who they are, and endpoints that need an actor check
// for one themselves.
func Actor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		idStr := r.Header.Get(ActorHeader)
		if idStr != "" {
			if id, err := strconv.ParseInt(idStr, 10, 64); err == nil && id > 0 {
				ctx := context.WithValue(r.Context(), ActorIDKey, id)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// GetActorID extracts the acting user ID from the request context
func GetActorID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(ActorIDKey).(int64)
	return id, ok
}
