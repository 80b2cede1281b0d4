package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health writes a health check response.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status: "ok",
	})
}

// Ranking writes a 200 OK envelope around a computed ranking.
func Ranking(c echo.Context, data interface{}) error {
	return OK(c, MsgRankingComputed, data)
}

// Criteria writes a 200 OK envelope around the active criteria.
func Criteria(c echo.Context, data interface{}) error {
	return OK(c, MsgCriteriaListed, data)
}
