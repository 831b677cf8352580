package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitMiddlewareDeniesPastBurst(t *testing.T) {
	mw := RateLimitMiddleware(2, time.Minute)
	e := echo.New()

	handled := 0
	handler := func(c echo.Context) error {
		handled++
		return c.String(http.StatusOK, "ok")
	}

	send := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		require.NoError(t, mw(handler)(c))
		return rec
	}

	assert.Equal(t, http.StatusOK, send("203.0.113.7:1111").Code)
	assert.Equal(t, http.StatusOK, send("203.0.113.7:1111").Code)

	rec := send("203.0.113.7:1111")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "RateLimitException")
	assert.Contains(t, rec.Body.String(), "Too many requests")

	// Denied requests never reach the handler
	assert.Equal(t, 2, handled)

	// Another client address has its own budget
	assert.Equal(t, http.StatusOK, send("198.51.100.9:2222").Code)
}

func TestRateLimitMiddlewareInstancesAreIndependent(t *testing.T) {
	loginLimiter := RateLimitMiddleware(1, time.Minute)
	signupLimiter := RateLimitMiddleware(1, time.Minute)
	e := echo.New()

	send := func(mw echo.MiddlewareFunc) int {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = "203.0.113.8:3333"
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		require.NoError(t, mw(okHandler)(c))
		return rec.Code
	}

	// Exhausting one limiter must not consume the other's budget
	assert.Equal(t, http.StatusOK, send(loginLimiter))
	assert.Equal(t, http.StatusTooManyRequests, send(loginLimiter))
	assert.Equal(t, http.StatusOK, send(signupLimiter))
}
