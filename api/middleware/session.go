package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/emberwick/storefront-api/pkg/logger"
)

const (
	SessionHeader     = "X-Session-Id"
	SessionCookieName = "ew_session"
	maxSessionIDLen   = 64
)

// SessionOptions controls the shopper session cookie.
type SessionOptions struct {
	MaxAge time.Duration
	Secure bool
}

// Session resolves the opaque shopper session from the X-Session-Id header or the
// ew_session cookie, minting a new one when neither carries a usable value. The id is
// echoed in the response header and cookie so clients can persist it.
func Session(opts SessionOptions, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := sanitizeSessionID(r.Header.Get(SessionHeader))
			if sessionID == "" {
				if cookie, err := r.Cookie(SessionCookieName); err == nil {
					sessionID = sanitizeSessionID(cookie.Value)
				}
			}
			if sessionID == "" {
				sessionID = uuid.NewString()
			}

			w.Header().Set(SessionHeader, sessionID)
			cookie := &http.Cookie{
				Name:     SessionCookieName,
				Value:    sessionID,
				Path:     "/",
				HttpOnly: true,
				Secure:   opts.Secure,
				SameSite: http.SameSiteLaxMode,
			}
			if opts.MaxAge > 0 {
				cookie.MaxAge = int(opts.MaxAge.Seconds())
			}
			http.SetCookie(w, cookie)

			ctx := WithSessionID(r.Context(), sessionID)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sessionID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// sanitizeSessionID accepts short tokens of letters, digits, '-' and '_'. Anything
// else yields "" and the caller mints a fresh id.
func sanitizeSessionID(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(raw) > maxSessionIDLen {
		return ""
	}
	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return ""
		}
	}
	return raw
}
