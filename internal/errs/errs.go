// Package errs defines custom error types and utilities.
//
// HTTPError is the JSON error shape returned to API clients, and
// BusinessError is the tagged error the service layer returns; the
// HTTP boundary maps every BusinessError Kind onto an HTTPError.
package errs
