package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureSession(t *testing.T, req *http.Request) (string, *httptest.ResponseRecorder) {
	t.Helper()
	var seen string
	handler := Session(SessionOptions{MaxAge: time.Hour}, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = SessionIDFromContext(r.Context())
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return seen, rec
}

func TestSessionPrefersHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set(SessionHeader, "abc-123")
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "cookie-id"})

	seen, rec := captureSession(t, req)

	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rec.Header().Get(SessionHeader))
}

func TestSessionFallsBackToCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "cookie_id"})

	seen, _ := captureSession(t, req)

	assert.Equal(t, "cookie_id", seen)
}

func TestSessionMintsWhenMissingOrInvalid(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set(SessionHeader, "bad id; drop table")

	seen, rec := captureSession(t, req)

	require.NotEmpty(t, seen)
	assert.NotContains(t, seen, " ")
	assert.Equal(t, seen, rec.Header().Get(SessionHeader))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookieName, cookies[0].Name)
	assert.Equal(t, seen, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, 3600, cookies[0].MaxAge)
}

func TestSanitizeSessionID(t *testing.T) {
	assert.Equal(t, "", sanitizeSessionID(strings.Repeat("a", maxSessionIDLen+1)))
	assert.Equal(t, strings.Repeat("a", maxSessionIDLen), sanitizeSessionID(strings.Repeat("a", maxSessionIDLen)))
	assert.Equal(t, "ok_1", sanitizeSessionID("  ok_1 "))
	assert.Equal(t, "", sanitizeSessionID("näh"))
}
