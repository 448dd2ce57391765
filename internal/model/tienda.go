package model

// Tienda is a shop that sells zero or more cafes.
//
// Cafes follows the same rule as Cafe.Tiendas: nil means not loaded.
type Tienda struct {
	ID      string `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	Address string `json:"address" db:"address"`
	Phone   string `json:"phone" db:"phone"`
	Cafes   []Cafe `json:"cafes,omitzero" db:"-"`
}

// PhoneLength is the exact number of characters a tienda phone must have.
const PhoneLength = 10

// HasCafe reports whether cafeID is in the loaded relation.
func (t *Tienda) HasCafe(cafeID string) bool {
	return t.FindCafe(cafeID) != nil
}

// FindCafe returns the associated cafe with the given id, or nil.
func (t *Tienda) FindCafe(cafeID string) *Cafe {
	for i := range t.Cafes {
		if t.Cafes[i].ID == cafeID {
			return &t.Cafes[i]
		}
	}
	return nil
}

// CafeIDs returns the ids of the loaded relation in order.
func (t *Tienda) CafeIDs() []string {
	ids := make([]string, 0, len(t.Cafes))
	for _, c := range t.Cafes {
		ids = append(ids, c.ID)
	}
	return ids
}

// WithoutRelations returns a shallow copy with Cafes cleared.
func (t Tienda) WithoutRelations() Tienda {
	t.Cafes = nil
	return t
}
