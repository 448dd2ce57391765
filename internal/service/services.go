package service

import (
	"github.com/deppfellow/cafe-tienda/internal/lib/job"
	"github.com/deppfellow/cafe-tienda/internal/repository"
	"github.com/deppfellow/cafe-tienda/internal/server"
)

type Services struct {
	Cafe       *CafeService
	Tienda     *TiendaService
	CafeTienda *CafeTiendaService
	TiendaCafe *TiendaCafeService
	Job        *job.JobService
}

// NewService wires the services onto the Postgres repositories and, when the
// job service is running, publishes relation changes through it.
func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	var publisher AssociationPublisher
	if s.Job != nil {
		publisher = s.Job
	}

	services := New(repos.Cafe, repos.Tienda, publisher)
	services.Job = s.Job

	return services, nil
}

// New builds the services over any repository implementation. publisher may be nil.
func New(cafes CafeRepository, tiendas TiendaRepository, publisher AssociationPublisher) *Services {
	return &Services{
		Cafe:       NewCafeService(cafes),
		Tienda:     NewTiendaService(tiendas),
		CafeTienda: NewCafeTiendaService(cafes, tiendas, publisher),
		TiendaCafe: NewTiendaCafeService(tiendas, cafes, publisher),
	}
}
