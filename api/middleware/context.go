package middleware

import "context"

type contextKey string

const (
	ctxSessionID  contextKey = "session_id"
	ctxAdminEmail contextKey = "admin_email"
)

// SessionIDFromContext returns the shopper session assigned by Session.
func SessionIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxSessionID).(string); ok {
		return v
	}
	return ""
}

// AdminEmailFromContext returns the authenticated back-office account, if any.
func AdminEmailFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxAdminEmail).(string); ok {
		return v
	}
	return ""
}

// WithSessionID injects the shopper session into the context.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxSessionID, sessionID)
}

// WithAdminEmail injects the admin identity into the context.
func WithAdminEmail(ctx context.Context, email string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxAdminEmail, email)
}
