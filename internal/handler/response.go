package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kbenzi/trivia/internal/service"
)

// Fixed failure messages, one per supported status code.
const (
	messageNotFound      = "resource not found."
	messageUnprocessable = "unprocessable."
	messageServerError   = "internal server error"
)

// ErrorResponse is the uniform failure envelope
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// HTTPErrorHandler renders every error escaping a handler as the uniform
// envelope. The API produces exactly three failure classes; anything that
// is not a 404 or a 422 collapses into a 500 with no internal detail.
func HTTPErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
	}

	var message string
	switch code {
	case http.StatusNotFound:
		message = messageNotFound
	case http.StatusUnprocessableEntity:
		message = messageUnprocessable
	default:
		code = http.StatusInternalServerError
		message = messageServerError
	}

	if c.Response().Committed {
		return
	}
	if err := c.JSON(code, ErrorResponse{Success: false, Error: code, Message: message}); err != nil {
		c.Logger().Error(err)
	}
}

// httpError translates service errors into HTTP status codes.
func httpError(err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound)
	case errors.Is(err, service.ErrUnprocessable):
		return echo.NewHTTPError(http.StatusUnprocessableEntity)
	default:
		return echo.NewHTTPError(http.StatusInternalServerError)
	}
}
