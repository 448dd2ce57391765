// Package handler is the HTTP entry point after the router.
//
// Handlers receive requests already bound and validated by the
// shared pipeline in base.go and call the service layer.
package handler

import (
	"github.com/deppfellow/cafe-tienda/internal/server"
	"github.com/deppfellow/cafe-tienda/internal/service"
)

// Handlers groups every HTTP handler so the router receives one value.
type Handlers struct {
	Health     *HealthHandler
	OpenAPI    *OpenAPIHandler
	Cafe       *CafeHandler
	Tienda     *TiendaHandler
	CafeTienda *CafeTiendaHandler
	TiendaCafe *TiendaCafeHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:     NewHealthHandler(s),
		OpenAPI:    NewOpenAPIHandler(s),
		Cafe:       NewCafeHandler(s, services.Cafe),
		Tienda:     NewTiendaHandler(s, services.Tienda),
		CafeTienda: NewCafeTiendaHandler(s, services.CafeTienda),
		TiendaCafe: NewTiendaCafeHandler(s, services.TiendaCafe),
	}
}
