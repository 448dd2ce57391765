package handler

import (
	"github.com/deppfellow/cafe-tienda/internal/model"
	"github.com/deppfellow/cafe-tienda/internal/server"
	"github.com/deppfellow/cafe-tienda/internal/service"
	"github.com/labstack/echo/v4"
)

// CafeTiendaHandler serves /cafes/:cafeId/tiendas.
type CafeTiendaHandler struct {
	Handler
	associations *service.CafeTiendaService
}

func NewCafeTiendaHandler(s *server.Server, associations *service.CafeTiendaService) *CafeTiendaHandler {
	return &CafeTiendaHandler{
		Handler:      NewHandler(s),
		associations: associations,
	}
}

func (h *CafeTiendaHandler) AddTienda(c echo.Context, req *model.CafeTiendaRequest) (*model.Cafe, error) {
	return h.associations.AddTiendaToCafe(c.Request().Context(), req.CafeID, req.TiendaID)
}

func (h *CafeTiendaHandler) GetTienda(c echo.Context, req *model.CafeTiendaRequest) (*model.Tienda, error) {
	return h.associations.FindTiendaByCafeIDTiendaID(c.Request().Context(), req.CafeID, req.TiendaID)
}

func (h *CafeTiendaHandler) ListTiendas(c echo.Context, req *model.CafeIDRequest) ([]model.Tienda, error) {
	return h.associations.FindTiendasByCafeID(c.Request().Context(), req.CafeID)
}

func (h *CafeTiendaHandler) ReplaceTiendas(c echo.Context, req *model.ReplaceCafeTiendasRequest) (*model.Cafe, error) {
	return h.associations.AssociateTiendasToCafe(c.Request().Context(), req.CafeID, req.TiendaIDs())
}

func (h *CafeTiendaHandler) RemoveTienda(c echo.Context, req *model.CafeTiendaRequest) error {
	return h.associations.DeleteTiendaFromCafe(c.Request().Context(), req.CafeID, req.TiendaID)
}
