// Package errs defines the error types returned to API clients.
//
// Every failure leaving the HTTP layer is an *HTTPError carrying a status,
// a machine-friendly code and a human-readable message. Validation failures
// additionally carry per-field errors naming what was missing or malformed.
package errs
