// Package response provides standardized HTTP response builders for the
// ranking API. Every body uses the same envelope: message, status code and
// either data or error.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response represents the API response envelope.
type Response struct {
	// Message is a human-readable summary
	Message string `json:"message"`

	// Code repeats the HTTP status code
	Code int `json:"code"`

	// Data contains the response payload (for successful responses)
	Data interface{} `json:"data,omitempty"`

	// Error contains error details (for error responses)
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail contains structured error information.
type ErrorDetail struct {
	// Type is a machine-readable error code
	Type string `json:"type"`

	// Details contains field-specific error details (for validation errors)
	Details map[string]string `json:"details,omitempty"`
}

// Error types used in API responses.
const (
	TypeInvalidRequest     = "invalid_request"
	TypeValidationError    = "validation_error"
	TypeInvalidMatrix      = "invalid_matrix"
	TypeInvalidCriterion   = "invalid_criterion"
	TypeNotFound           = "not_found"
	TypeNoDestinations     = "no_destinations"
	TypeServiceUnavailable = "service_unavailable"
	TypeTimeout            = "timeout"
	TypeInternalError      = "internal_error"
)

// Messages used in API responses.
const (
	MsgRankingComputed    = "MABAC ranking computed"
	MsgCriteriaListed     = "Active criteria"
	MsgInvalidRequestBody = "Failed to parse request body"
	MsgValidationFailed   = "Request validation failed"
	MsgNoDestinations     = "No destinations available to rank"
	MsgServiceUnavailable = "Destination store is currently unavailable"
	MsgTimeout            = "Request timed out"
	MsgRequestCancelled   = "Request was cancelled"
	MsgInternalError      = "An unexpected error occurred"
)

// Success creates a successful response envelope.
func Success(status int, message string, data interface{}) *Response {
	return &Response{
		Message: message,
		Code:    status,
		Data:    data,
	}
}

// Failure creates a failed response envelope.
func Failure(status int, errType, message string, details map[string]string) *Response {
	return &Response{
		Message: message,
		Code:    status,
		Error: &ErrorDetail{
			Type:    errType,
			Details: details,
		},
	}
}

// OK writes a 200 OK envelope with the given data.
func OK(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusOK, Success(http.StatusOK, message, data))
}

func fail(c echo.Context, status int, errType, message string, details map[string]string) error {
	return c.JSON(status, Failure(status, errType, message, details))
}
