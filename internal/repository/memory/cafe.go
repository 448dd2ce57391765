package memory

import (
	"context"

	"github.com/deppfellow/cafe-tienda/internal/model"
	"github.com/deppfellow/cafe-tienda/internal/repository"
)

// CafeRepository is the cafe side of a Store.
type CafeRepository struct {
	store *Store
}

func (r *CafeRepository) GetByID(_ context.Context, id string) (*model.Cafe, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	cafe, ok := r.store.cafes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &cafe, nil
}

func (r *CafeRepository) GetByIDWithTiendas(_ context.Context, id string) (*model.Cafe, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	cafe, ok := r.store.cafes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cafe.Tiendas = r.store.tiendasOf(id)
	return &cafe, nil
}

func (r *CafeRepository) List(_ context.Context) ([]model.Cafe, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	cafes := make([]model.Cafe, 0, len(r.store.cafeOrder))
	for _, id := range r.store.cafeOrder {
		cafe := r.store.cafes[id]
		cafe.Tiendas = r.store.tiendasOf(id)
		cafes = append(cafes, cafe)
	}
	return cafes, nil
}

func (r *CafeRepository) Create(_ context.Context, cafe *model.Cafe) (*model.Cafe, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	created := cafe.WithoutRelations()
	created.ID = r.store.generateID()

	r.store.cafes[created.ID] = created
	r.store.cafeOrder = append(r.store.cafeOrder, created.ID)
	return &created, nil
}

func (r *CafeRepository) Update(_ context.Context, cafe *model.Cafe) (*model.Cafe, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.cafes[cafe.ID]; !ok {
		return nil, repository.ErrNotFound
	}

	updated := cafe.WithoutRelations()
	r.store.cafes[cafe.ID] = updated
	return &updated, nil
}

func (r *CafeRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.cafes[id]; !ok {
		return repository.ErrNotFound
	}

	delete(r.store.cafes, id)
	r.store.cafeOrder = removeID(r.store.cafeOrder, id)
	r.store.removeLinks(func(l link) bool { return l.cafeID != id })
	return nil
}

func (r *CafeRepository) AddTienda(_ context.Context, cafeID, tiendaID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if err := r.store.checkPair(cafeID, tiendaID); err != nil {
		return err
	}
	r.store.addLink(tiendaID, cafeID)
	return nil
}

func (r *CafeRepository) RemoveTienda(_ context.Context, cafeID, tiendaID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.removeLinks(func(l link) bool { return l.cafeID != cafeID || l.tiendaID != tiendaID })
	return nil
}

func (r *CafeRepository) ReplaceTiendas(_ context.Context, cafeID string, tiendaIDs []string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, tiendaID := range tiendaIDs {
		if err := r.store.checkPair(cafeID, tiendaID); err != nil {
			return err
		}
	}

	r.store.removeLinks(func(l link) bool { return l.cafeID != cafeID })
	for _, tiendaID := range tiendaIDs {
		r.store.addLink(tiendaID, cafeID)
	}
	return nil
}

// checkPair plays the role of the join table foreign keys.
func (s *Store) checkPair(cafeID, tiendaID string) error {
	if _, ok := s.cafes[cafeID]; !ok {
		return repository.ErrNotFound
	}
	if _, ok := s.tiendas[tiendaID]; !ok {
		return repository.ErrNotFound
	}
	return nil
}
