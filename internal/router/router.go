// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and maps the cafe, tienda and
// association routes to their handlers.
package router

import (
	"net/http"

	"github.com/deppfellow/cafe-tienda/internal/handler"
	"github.com/deppfellow/cafe-tienda/internal/metrics"
	"github.com/deppfellow/cafe-tienda/internal/middleware"
	"github.com/deppfellow/cafe-tienda/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the echo instance with the global middleware chain and
// every route registered.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	if err := metrics.Register(nil); err != nil {
		s.Logger.Warn().Err(err).Msg("failed to register prometheus collectors")
	}

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// Order matters: the request id and the New Relic transaction must exist
	// before the context enhancer builds the request logger.
	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Metrics.Collect(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.RateLimit.Limit(),
	)

	registerSystemRoutes(router, h)
	registerCafeRoutes(router, h)
	registerTiendaRoutes(router, h)

	return router
}

func registerCafeRoutes(r *echo.Echo, h *handler.Handlers) {
	cafes := r.Group("/cafes")

	cafes.GET("", handler.Handle(h.Cafe.ListCafes, http.StatusOK))
	cafes.POST("", handler.Handle(h.Cafe.CreateCafe, http.StatusCreated))
	cafes.GET("/:cafeId", handler.Handle(h.Cafe.GetCafe, http.StatusOK))
	cafes.PUT("/:cafeId", handler.Handle(h.Cafe.UpdateCafe, http.StatusOK))
	cafes.DELETE("/:cafeId", handler.HandleNoContent(h.Cafe.DeleteCafe, http.StatusNoContent))

	cafes.GET("/:cafeId/tiendas", handler.Handle(h.CafeTienda.ListTiendas, http.StatusOK))
	cafes.PUT("/:cafeId/tiendas", handler.Handle(h.CafeTienda.ReplaceTiendas, http.StatusOK))
	cafes.POST("/:cafeId/tiendas/:tiendaId", handler.Handle(h.CafeTienda.AddTienda, http.StatusCreated))
	cafes.GET("/:cafeId/tiendas/:tiendaId", handler.Handle(h.CafeTienda.GetTienda, http.StatusOK))
	cafes.DELETE("/:cafeId/tiendas/:tiendaId", handler.HandleNoContent(h.CafeTienda.RemoveTienda, http.StatusNoContent))
}

func registerTiendaRoutes(r *echo.Echo, h *handler.Handlers) {
	tiendas := r.Group("/tiendas")

	tiendas.GET("", handler.Handle(h.Tienda.ListTiendas, http.StatusOK))
	tiendas.POST("", handler.Handle(h.Tienda.CreateTienda, http.StatusCreated))
	tiendas.GET("/:tiendaId", handler.Handle(h.Tienda.GetTienda, http.StatusOK))
	tiendas.PUT("/:tiendaId", handler.Handle(h.Tienda.UpdateTienda, http.StatusOK))
	tiendas.DELETE("/:tiendaId", handler.HandleNoContent(h.Tienda.DeleteTienda, http.StatusNoContent))

	tiendas.GET("/:tiendaId/cafes", handler.Handle(h.TiendaCafe.ListCafes, http.StatusOK))
	tiendas.PUT("/:tiendaId/cafes", handler.Handle(h.TiendaCafe.ReplaceCafes, http.StatusOK))
	tiendas.POST("/:tiendaId/cafes/:cafeId", handler.Handle(h.TiendaCafe.AddCafe, http.StatusCreated))
	tiendas.GET("/:tiendaId/cafes/:cafeId", handler.Handle(h.TiendaCafe.GetCafe, http.StatusOK))
	tiendas.DELETE("/:tiendaId/cafes/:cafeId", handler.HandleNoContent(h.TiendaCafe.RemoveCafe, http.StatusNoContent))
}
