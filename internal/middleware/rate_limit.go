package middleware

import (
	"time"

	"github.com/deppfellow/estate-listings/internal/errs"
	"github.com/deppfellow/estate-listings/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Public write limits, per client IP.
const (
	submissionRatePerSecond = 0.1 // one every 10s on average
	submissionBurst         = 5
	visitorExpiry           = 10 * time.Minute
)

// RateLimitMiddleware throttles public write endpoints and records every
// rejection as a New Relic custom event.
type RateLimitMiddleware struct {
	server *server.Server
}

func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server: s,
	}
}

// LimitSubmissions guards unauthenticated writes such as the contact form.
// State is in-process, so limits apply per instance.
func (r *RateLimitMiddleware) LimitSubmissions() echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      submissionRatePerSecond,
		Burst:     submissionBurst,
		ExpiresIn: visitorExpiry,
	})

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return errs.NewForbiddenError("Could not identify client", false)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			r.RecordRateLimitHit(c.Path())
			GetLogger(c).Warn().Str("client", identifier).Msg("rate limit exceeded")
			return errs.NewTooManyRequestsError("Too many requests, please try again later")
		},
	})
}

func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	if r.server.LoggerService != nil && r.server.LoggerService.GetApplication() != nil {
		r.server.LoggerService.GetApplication().RecordCustomEvent("RateLimitHit", map[string]interface{}{
			"endpoint": endpoint,
		})
	}
}
