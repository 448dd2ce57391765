// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update cafes, tiendas and their relation, abstracting SQL
// logic away from the service layer.
package repository

import "errors"

// ErrNotFound is returned when an id does not resolve to a row.
var ErrNotFound = errors.New("repository: record not found")
