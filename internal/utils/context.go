// Package utils holds small helpers shared by the server and the CLI:
// context keys, request hashing, JSON responses, the HTTP client, JWT tokens
// and trace ids.
package utils

import "context"

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// LoginCtxKey stores the authenticated administrator login.
var LoginCtxKey = contextKey("login")

// TraceIDCtxKey stores the request trace id.
var TraceIDCtxKey = contextKey("traceID")

// GetLoginFromContext returns the administrator login placed in ctx by the
// auth middleware.
func GetLoginFromContext(ctx context.Context) (string, bool) {
	login, ok := ctx.Value(LoginCtxKey).(string)
	return login, ok && login != ""
}

// GetTraceIDFromContext returns the trace id of the current request.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(TraceIDCtxKey).(string)
	return id, ok && id != ""
}
