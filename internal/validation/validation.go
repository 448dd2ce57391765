// Package validation binds and validates request data.
//
// Request types declare their rules with `validator` struct tags
// (required fields, nested items of replace bodies) and the
// failures are turned into field-level errors the client can read.
package validation
