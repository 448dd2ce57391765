package handler

import (
	"github.com/deppfellow/cafe-tienda/internal/model"
	"github.com/deppfellow/cafe-tienda/internal/server"
	"github.com/deppfellow/cafe-tienda/internal/service"
	"github.com/labstack/echo/v4"
)

// TiendaCafeHandler serves /tiendas/:tiendaId/cafes.
type TiendaCafeHandler struct {
	Handler
	associations *service.TiendaCafeService
}

func NewTiendaCafeHandler(s *server.Server, associations *service.TiendaCafeService) *TiendaCafeHandler {
	return &TiendaCafeHandler{
		Handler:      NewHandler(s),
		associations: associations,
	}
}

func (h *TiendaCafeHandler) AddCafe(c echo.Context, req *model.CafeTiendaRequest) (*model.Tienda, error) {
	return h.associations.AddCafeToTienda(c.Request().Context(), req.TiendaID, req.CafeID)
}

func (h *TiendaCafeHandler) GetCafe(c echo.Context, req *model.CafeTiendaRequest) (*model.Cafe, error) {
	return h.associations.FindCafeByTiendaIDCafeID(c.Request().Context(), req.TiendaID, req.CafeID)
}

func (h *TiendaCafeHandler) ListCafes(c echo.Context, req *model.TiendaIDRequest) ([]model.Cafe, error) {
	return h.associations.FindCafesByTiendaID(c.Request().Context(), req.TiendaID)
}

func (h *TiendaCafeHandler) ReplaceCafes(c echo.Context, req *model.ReplaceTiendaCafesRequest) (*model.Tienda, error) {
	return h.associations.AssociateCafesToTienda(c.Request().Context(), req.TiendaID, req.CafeIDs())
}

func (h *TiendaCafeHandler) RemoveCafe(c echo.Context, req *model.CafeTiendaRequest) error {
	return h.associations.DeleteCafeFromTienda(c.Request().Context(), req.TiendaID, req.CafeID)
}
