package handler

import (
	"github.com/deppfellow/cafe-tienda/internal/model"
	"github.com/deppfellow/cafe-tienda/internal/server"
	"github.com/deppfellow/cafe-tienda/internal/service"
	"github.com/labstack/echo/v4"
)

// TiendaHandler serves the /tiendas CRUD routes.
type TiendaHandler struct {
	Handler
	tiendas *service.TiendaService
}

func NewTiendaHandler(s *server.Server, tiendas *service.TiendaService) *TiendaHandler {
	return &TiendaHandler{
		Handler: NewHandler(s),
		tiendas: tiendas,
	}
}

func (h *TiendaHandler) ListTiendas(c echo.Context, _ *model.ListTiendasRequest) ([]model.Tienda, error) {
	return h.tiendas.FindAll(c.Request().Context())
}

func (h *TiendaHandler) GetTienda(c echo.Context, req *model.TiendaIDRequest) (*model.Tienda, error) {
	return h.tiendas.FindOne(c.Request().Context(), req.TiendaID)
}

func (h *TiendaHandler) CreateTienda(c echo.Context, req *model.CreateTiendaRequest) (*model.Tienda, error) {
	return h.tiendas.Create(c.Request().Context(), req)
}

func (h *TiendaHandler) UpdateTienda(c echo.Context, req *model.UpdateTiendaRequest) (*model.Tienda, error) {
	return h.tiendas.Update(c.Request().Context(), req)
}

func (h *TiendaHandler) DeleteTienda(c echo.Context, req *model.TiendaIDRequest) error {
	return h.tiendas.Delete(c.Request().Context(), req.TiendaID)
}
