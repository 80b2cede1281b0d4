package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HTTPObserver records one observation per served request.
type HTTPObserver interface {
	ObserveHTTP(method, path string, status int, d time.Duration)
}

// Metrics returns middleware that reports every request to obs.
// The route template (c.Path) is used as the path label so ids in the
// query or path do not explode label cardinality.
func Metrics(obs HTTPObserver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			status := c.Response().Status
			if status == 0 {
				status = http.StatusOK
			}
			obs.ObserveHTTP(c.Request().Method, path, status, time.Since(start))
			return nil
		}
	}
}
