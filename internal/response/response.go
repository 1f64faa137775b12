package response

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "bookstack/internal/errors"
	"bookstack/internal/pagination"
)

// Envelope is the uniform response body for every endpoint.
type Envelope struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    interface{}      `json:"data"`
	Meta    *pagination.Meta `json:"meta,omitempty"`
}

// OK writes a success envelope with the given status code.
func OK(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

// Page writes a success envelope carrying list data plus pagination meta.
func Page(c echo.Context, message string, data interface{}, meta pagination.Meta) error {
	return c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data, Meta: &meta})
}

// Fail maps a domain error onto the envelope with the matching status.
func Fail(c echo.Context, err error) error {
	httpErr := apperrors.MapToHTTP(err)
	if httpErr.StatusCode == http.StatusInternalServerError {
		log.Printf("internal error: %v", err)
	}
	return c.JSON(httpErr.StatusCode, Envelope{Success: false, Message: httpErr.Message})
}

// ErrorHandler is a custom echo.HTTPErrorHandler keeping the envelope
// uniform for errors raised by middleware and binding, including the
// 401 from the JWT gate.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "internal server error"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(status)
		}
	} else {
		log.Printf("unhandled error: %v", err)
	}

	_ = c.JSON(status, Envelope{Success: false, Message: message})
}
