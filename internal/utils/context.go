// Package utils provides general-purpose helper utilities used across the
// cosmic-brain packages: type-safe context keys, JSON response writing, the
// shared resty HTTP client and identifier generation.
package utils

import (
	"context"
)

// DefaultSessionID is the session used when a request carries no
// X-Session-ID header.
const DefaultSessionID = "default"

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionIDCtxKey is the key used to store the session identifier in the
// context.
//
//	ctx := utils.WithSessionID(ctx, "phone")
var SessionIDCtxKey = contextKey("sessionID")

// WithSessionID returns a copy of ctx carrying id.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, SessionIDCtxKey, id)
}

// GetSessionIDFromContext retrieves the session identifier from the context.
//
// Returns the session ID and an ok flag:
//   - ok == true: value is found, is a string and is not empty
//   - ok == false: value is missing, empty or has an unexpected type
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDCtxKey).(string)
	return sessionID, ok && sessionID != ""
}

// SessionIDOrDefault is GetSessionIDFromContext falling back to
// DefaultSessionID.
func SessionIDOrDefault(ctx context.Context) string {
	if id, ok := GetSessionIDFromContext(ctx); ok {
		return id
	}
	return DefaultSessionID
}
