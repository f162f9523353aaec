// Package utils holds small helpers shared by the server layers: request
// context values, password hashing, JWT issuing and validation, UUIDs and
// JSON response writing.
package utils

import (
	"context"
)

type contextKey string

func (c contextKey) String() string {
	return "notes context key " + string(c)
}

const (
	userIDKey  = contextKey("userID")
	traceIDKey = contextKey("traceID")
)

// WithUserID returns ctx carrying the authenticated user's id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext returns the id stored by WithUserID.
// ok is false when the value is missing or empty.
func GetUserIDFromContext(ctx context.Context) (userID string, ok bool) {
	userID, _ = ctx.Value(userIDKey).(string)
	return userID, userID != ""
}

// WithTraceID returns ctx carrying the request trace id.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

// GetTraceIDFromContext returns the trace id or "" when there is none.
func GetTraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(traceIDKey).(string)
	return traceID
}
