// Package sqlerr handles database driver errors.
//
// It parses SQLSTATE codes from pgx and converts them into
// user-friendly HTTP errors (e.g. a "check violation" on
// cafes.price becomes a 400 with a readable message).
package sqlerr
