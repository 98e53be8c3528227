// Package middleware holds the echo middleware: request ids, the
// request-scoped logger, New Relic tracing, Clerk authentication, the
// contact form rate limit and the global error handler.
package middleware
