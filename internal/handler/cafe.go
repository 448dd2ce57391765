package handler

import (
	"github.com/deppfellow/cafe-tienda/internal/model"
	"github.com/deppfellow/cafe-tienda/internal/server"
	"github.com/deppfellow/cafe-tienda/internal/service"
	"github.com/labstack/echo/v4"
)

// CafeHandler serves the /cafes CRUD routes.
type CafeHandler struct {
	Handler
	cafes *service.CafeService
}

func NewCafeHandler(s *server.Server, cafes *service.CafeService) *CafeHandler {
	return &CafeHandler{
		Handler: NewHandler(s),
		cafes:   cafes,
	}
}

func (h *CafeHandler) ListCafes(c echo.Context, _ *model.ListCafesRequest) ([]model.Cafe, error) {
	return h.cafes.FindAll(c.Request().Context())
}

func (h *CafeHandler) GetCafe(c echo.Context, req *model.CafeIDRequest) (*model.Cafe, error) {
	return h.cafes.FindOne(c.Request().Context(), req.CafeID)
}

func (h *CafeHandler) CreateCafe(c echo.Context, req *model.CreateCafeRequest) (*model.Cafe, error) {
	return h.cafes.Create(c.Request().Context(), req)
}

func (h *CafeHandler) UpdateCafe(c echo.Context, req *model.UpdateCafeRequest) (*model.Cafe, error) {
	return h.cafes.Update(c.Request().Context(), req)
}

func (h *CafeHandler) DeleteCafe(c echo.Context, req *model.CafeIDRequest) error {
	return h.cafes.Delete(c.Request().Context(), req.CafeID)
}
