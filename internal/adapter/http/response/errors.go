package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// BadRequest writes a 400 Bad Request response with the given error message.
func BadRequest(c echo.Context, message string) error {
	return fail(c, http.StatusBadRequest, TypeInvalidRequest, message, nil)
}

// InvalidRequestBody writes a 400 Bad Request response for malformed request bodies.
func InvalidRequestBody(c echo.Context) error {
	return fail(c, http.StatusBadRequest, TypeInvalidRequest, MsgInvalidRequestBody, nil)
}

// ValidationError writes a 400 Bad Request response with validation error details.
func ValidationError(c echo.Context, details map[string]string) error {
	return fail(c, http.StatusBadRequest, TypeValidationError, MsgValidationFailed, details)
}

// ValidationErrorWithMessage writes a 400 Bad Request response with a custom message.
func ValidationErrorWithMessage(c echo.Context, message string) error {
	return fail(c, http.StatusBadRequest, TypeValidationError, message, nil)
}

// InvalidMatrix writes a 400 response for a decision matrix the engine rejected.
func InvalidMatrix(c echo.Context, message string) error {
	return fail(c, http.StatusBadRequest, TypeInvalidMatrix, message, nil)
}

// InvalidCriterion writes a 400 response for a rejected criterion.
func InvalidCriterion(c echo.Context, message string) error {
	return fail(c, http.StatusBadRequest, TypeInvalidCriterion, message, nil)
}

// NotFound writes a 404 Not Found response.
func NotFound(c echo.Context, message string) error {
	return fail(c, http.StatusNotFound, TypeNotFound, message, nil)
}

// NoDestinations writes a 422 response when there is nothing to rank.
func NoDestinations(c echo.Context) error {
	return fail(c, http.StatusUnprocessableEntity, TypeNoDestinations, MsgNoDestinations, nil)
}

// ServiceUnavailable writes a 503 Service Unavailable response.
func ServiceUnavailable(c echo.Context) error {
	return fail(c, http.StatusServiceUnavailable, TypeServiceUnavailable, MsgServiceUnavailable, nil)
}

// GatewayTimeout writes a 504 Gateway Timeout response.
func GatewayTimeout(c echo.Context) error {
	return fail(c, http.StatusGatewayTimeout, TypeTimeout, MsgTimeout, nil)
}

// RequestCancelled writes a 504 Gateway Timeout response for cancelled requests.
func RequestCancelled(c echo.Context) error {
	return fail(c, http.StatusGatewayTimeout, TypeTimeout, MsgRequestCancelled, nil)
}

// InternalServerError writes a 500 Internal Server Error response.
func InternalServerError(c echo.Context) error {
	return fail(c, http.StatusInternalServerError, TypeInternalError, MsgInternalError, nil)
}
