package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Setup registers all middleware on the Echo instance in the correct order:
//  1. RequestID, so every later log line carries the id
//  2. RequestLogger
//  3. Metrics, when obs is non-nil
//  4. Recover, innermost so panics become 500s that the outer layers still see
//
// Call it before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger, obs HTTPObserver) {
	SetupWithConfig(e, log, obs, DefaultRecoveryConfig())
}

// SetupWithConfig registers middleware with custom recovery configuration.
func SetupWithConfig(e *echo.Echo, log zerolog.Logger, obs HTTPObserver, recoveryConfig RecoveryConfig) {
	for _, mw := range Chain(log, obs, recoveryConfig) {
		e.Use(mw)
	}
}

// Chain returns the middleware as a slice for use with route groups.
func Chain(log zerolog.Logger, obs HTTPObserver, recoveryConfig RecoveryConfig) []echo.MiddlewareFunc {
	chain := []echo.MiddlewareFunc{RequestID(), RequestLogger(log)}
	if obs != nil {
		chain = append(chain, Metrics(obs))
	}
	return append(chain, RecoverWithConfig(log, recoveryConfig))
}
