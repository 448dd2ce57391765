package memory

import (
	"context"

	"github.com/deppfellow/cafe-tienda/internal/model"
	"github.com/deppfellow/cafe-tienda/internal/repository"
)

// TiendaRepository is the tienda side of a Store.
type TiendaRepository struct {
	store *Store
}

func (r *TiendaRepository) GetByID(_ context.Context, id string) (*model.Tienda, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	tienda, ok := r.store.tiendas[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &tienda, nil
}

func (r *TiendaRepository) GetByIDWithCafes(_ context.Context, id string) (*model.Tienda, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	tienda, ok := r.store.tiendas[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	tienda.Cafes = r.store.cafesOf(id)
	return &tienda, nil
}

func (r *TiendaRepository) List(_ context.Context) ([]model.Tienda, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	tiendas := make([]model.Tienda, 0, len(r.store.tiendaOrd))
	for _, id := range r.store.tiendaOrd {
		tienda := r.store.tiendas[id]
		tienda.Cafes = r.store.cafesOf(id)
		tiendas = append(tiendas, tienda)
	}
	return tiendas, nil
}

func (r *TiendaRepository) Create(_ context.Context, tienda *model.Tienda) (*model.Tienda, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	created := tienda.WithoutRelations()
	created.ID = r.store.generateID()

	r.store.tiendas[created.ID] = created
	r.store.tiendaOrd = append(r.store.tiendaOrd, created.ID)
	return &created, nil
}

func (r *TiendaRepository) Update(_ context.Context, tienda *model.Tienda) (*model.Tienda, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.tiendas[tienda.ID]; !ok {
		return nil, repository.ErrNotFound
	}

	updated := tienda.WithoutRelations()
	r.store.tiendas[tienda.ID] = updated
	return &updated, nil
}

func (r *TiendaRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.tiendas[id]; !ok {
		return repository.ErrNotFound
	}

	delete(r.store.tiendas, id)
	r.store.tiendaOrd = removeID(r.store.tiendaOrd, id)
	r.store.removeLinks(func(l link) bool { return l.tiendaID != id })
	return nil
}

func (r *TiendaRepository) AddCafe(_ context.Context, tiendaID, cafeID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if err := r.store.checkPair(cafeID, tiendaID); err != nil {
		return err
	}
	r.store.addLink(tiendaID, cafeID)
	return nil
}

func (r *TiendaRepository) RemoveCafe(_ context.Context, tiendaID, cafeID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.removeLinks(func(l link) bool { return l.cafeID != cafeID || l.tiendaID != tiendaID })
	return nil
}

func (r *TiendaRepository) ReplaceCafes(_ context.Context, tiendaID string, cafeIDs []string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, cafeID := range cafeIDs {
		if err := r.store.checkPair(cafeID, tiendaID); err != nil {
			return err
		}
	}

	r.store.removeLinks(func(l link) bool { return l.tiendaID != tiendaID })
	for _, cafeID := range cafeIDs {
		r.store.addLink(tiendaID, cafeID)
	}
	return nil
}
