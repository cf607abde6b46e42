package middleware

import (
	"net/http"

	"github.com/bhanu75/Event-booking/internal/dto"
	"github.com/labstack/echo/v4"
)

// ErrorHandler renders every error echo surfaces as a dto.ErrorResponse, so
// clients see one error shape across all endpoints.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}

	if err := c.JSON(code, dto.ErrorResponse{Message: msg}); err != nil {
		c.Logger().Error(err)
	}
}
