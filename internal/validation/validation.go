// Package validation contains the logic for validating
// request data.
//
// It uses the `validator` library to enforce rules (like
// required fields or email formats) defined in struct tags,
// and converts both tag failures and hand-written checks into
// field errors the client can understand.
package validation
