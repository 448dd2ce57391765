// Package model holds the domain entities and the request payloads
// the HTTP layer binds and validates before calling services.
package model

import "github.com/shopspring/decimal"

func init() {
	// Prices are rendered as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}
