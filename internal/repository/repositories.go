package repository

import (
	"github.com/deppfellow/cafe-tienda/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Cafe   *CafeRepository
	Tienda *TiendaRepository
}

// NewRepositories constructs the Postgres repositories on top of s.DB.Pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Cafe:   NewCafeRepository(s.DB.Pool),
		Tienda: NewTiendaRepository(s.DB.Pool),
	}
}
