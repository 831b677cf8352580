package middleware

import (
	"net/http"
	"time"

	"github.com/aethelgard/aethelgardapi/pkg/utils/response"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware bounds a client address to `requests` requests per
// `window`. Counters are process-local, so the bound does not hold across
// multiple server instances without an external shared store.
func RateLimitMiddleware(requests int, window time.Duration) echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(float64(requests) / window.Seconds()),
		Burst:     requests,
		ExpiresIn: window,
	})

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return response.ErrorResponse(c, http.StatusForbidden, "ForbiddenException", "Unable to identify client")
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return response.ErrorResponse(c, http.StatusTooManyRequests, "RateLimitException", "Too many requests, try again later")
		},
	})
}
