package handler

import (
	"errors"
	"net/http"

	"github.com/bhanu75/Event-booking/internal/service"
	"github.com/labstack/echo/v4"
)

// toHTTPError maps business-rule failures to transport status codes; anything
// unrecognized is an infrastructure fault and reported as a server error.
func toHTTPError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrEventNotFound),
		errors.Is(err, service.ErrUserNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrUnauthorized):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrDuplicateRequest),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrEventUnavailable),
		errors.Is(err, service.ErrInsufficientTickets),
		errors.Is(err, service.ErrCapacityBelowDemand):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrEventExpired):
		return echo.NewHTTPError(http.StatusGone, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
