// Package response contains response utility functions and types
package response

import (
	"github.com/labstack/echo/v4"
)

// ErrorBody is the JSON body of every error response.
// Callers must not depend on Message text for behavior.
type ErrorBody struct {
	ErrorType string `json:"error_type"`
	Message   string `json:"message"`
}

// MessageBody is the JSON body of simple acknowledgement responses
type MessageBody struct {
	Msg string `json:"msg"`
}

// SuccessResponse sends data as-is with the given HTTP status
func SuccessResponse(c echo.Context, httpStatus int, data interface{}) error {
	return c.JSON(httpStatus, data)
}

// MessageResponse sends a `{msg}` acknowledgement with the given HTTP status
func MessageResponse(c echo.Context, httpStatus int, msg string) error {
	return c.JSON(httpStatus, MessageBody{Msg: msg})
}

// ErrorResponse sends an error JSON response
func ErrorResponse(c echo.Context, httpStatus int, errorType, message string) error {
	return c.JSON(httpStatus, ErrorBody{
		ErrorType: errorType,
		Message:   message,
	})
}
