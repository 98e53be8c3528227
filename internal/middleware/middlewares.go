package middleware

import (
	"github.com/deppfellow/estate-listings/internal/server"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Middlewares groups all middleware components so the router is built from
// one value.
type Middlewares struct {
	// Global: CORS, request logging, recovery, secure headers, error handler.
	Global *GlobalMiddlewares

	// Auth guards management routes with Clerk.
	Auth *AuthMiddleware

	// ContextEnhancer attaches the request-scoped logger.
	ContextEnhancer *ContextEnhancer

	// Tracing installs New Relic transactions and custom attributes.
	Tracing *TracingMiddleware

	// RateLimit throttles public writes.
	RateLimit *RateLimitMiddleware
}

// NewMiddlewares constructs all middleware. Without New Relic, nrApp is nil
// and tracing degrades to a no-op.
func NewMiddlewares(s *server.Server) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		Auth:            NewAuthMiddleware(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
		RateLimit:       NewRateLimitMiddleware(s),
	}
}
