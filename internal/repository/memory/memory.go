// Package memory is an in-process implementation of the cafe and tienda
// repositories. It mirrors the Postgres schema: one shared join relation,
// ordered by insertion, with rows cascading when either side is deleted.
//
// It backs the service and router tests and can serve a local run without
// a database.
package memory

import (
	"sync"

	"github.com/deppfellow/cafe-tienda/internal/model"
	"github.com/google/uuid"
)

type link struct {
	tiendaID string
	cafeID   string
}

// Store holds every cafe, tienda and association in memory.
type Store struct {
	mu sync.RWMutex

	cafes      map[string]model.Cafe
	cafeOrder  []string
	tiendas    map[string]model.Tienda
	tiendaOrd  []string
	links      []link
	generateID func() string
}

func NewStore() *Store {
	return &Store{
		cafes:      make(map[string]model.Cafe),
		tiendas:    make(map[string]model.Tienda),
		generateID: uuid.NewString,
	}
}

// Cafes returns a cafe repository view over the store.
func (s *Store) Cafes() *CafeRepository {
	return &CafeRepository{store: s}
}

// Tiendas returns a tienda repository view over the store.
func (s *Store) Tiendas() *TiendaRepository {
	return &TiendaRepository{store: s}
}

func (s *Store) hasLink(tiendaID, cafeID string) bool {
	for _, l := range s.links {
		if l.tiendaID == tiendaID && l.cafeID == cafeID {
			return true
		}
	}
	return false
}

func (s *Store) addLink(tiendaID, cafeID string) {
	if s.hasLink(tiendaID, cafeID) {
		return
	}
	s.links = append(s.links, link{tiendaID: tiendaID, cafeID: cafeID})
}

func (s *Store) removeLinks(keep func(l link) bool) {
	kept := s.links[:0]
	for _, l := range s.links {
		if keep(l) {
			kept = append(kept, l)
		}
	}
	s.links = kept
}

// tiendasOf returns the loaded relation, never nil.
func (s *Store) tiendasOf(cafeID string) []model.Tienda {
	out := []model.Tienda{}
	for _, l := range s.links {
		if l.cafeID == cafeID {
			out = append(out, s.tiendas[l.tiendaID])
		}
	}
	return out
}

func (s *Store) cafesOf(tiendaID string) []model.Cafe {
	out := []model.Cafe{}
	for _, l := range s.links {
		if l.tiendaID == tiendaID {
			out = append(out, s.cafes[l.cafeID])
		}
	}
	return out
}

func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
