package model

import "github.com/shopspring/decimal"

// Cafe is a coffee product sold by zero or more tiendas.
//
// Tiendas is nil when the relation was not loaded and is then left out of
// the JSON body. A loaded relation is always non-nil, so an unassociated
// cafe renders "tiendas": []. Tiendas nested inside it never carry their
// own cafes.
type Cafe struct {
	ID          string          `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	Description string          `json:"description" db:"description"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Tiendas     []Tienda        `json:"tiendas,omitzero" db:"-"`
}

// HasTienda reports whether tiendaID is in the loaded relation.
func (c *Cafe) HasTienda(tiendaID string) bool {
	return c.FindTienda(tiendaID) != nil
}

// FindTienda returns the associated tienda with the given id, or nil.
func (c *Cafe) FindTienda(tiendaID string) *Tienda {
	for i := range c.Tiendas {
		if c.Tiendas[i].ID == tiendaID {
			return &c.Tiendas[i]
		}
	}
	return nil
}

// TiendaIDs returns the ids of the loaded relation in order.
func (c *Cafe) TiendaIDs() []string {
	ids := make([]string, 0, len(c.Tiendas))
	for _, t := range c.Tiendas {
		ids = append(ids, t.ID)
	}
	return ids
}

// WithoutRelations returns a shallow copy with Tiendas cleared.
func (c Cafe) WithoutRelations() Cafe {
	c.Tiendas = nil
	return c
}
