package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the health check and the versioned ranking API.
func RegisterRoutes(e *echo.Echo, h *RankingHandler) {
	RegisterRoutesWithMiddleware(e, h)
}

// RegisterRoutesWithMiddleware registers routes with middleware applied to
// the /api/v1 group only. The health check never gets it.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *RankingHandler, middleware ...echo.MiddlewareFunc) {
	e.GET("/health", h.Health)

	api := e.Group("/api/v1", middleware...)
	api.GET("/criteria", h.GetCriteria)

	ranking := api.Group("/mabac")
	ranking.GET("", h.GetRanking)
	ranking.POST("/calculate", h.Calculate)
}
