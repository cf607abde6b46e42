package handler

import (
	"net/http"

	"github.com/bhanu75/Event-booking/internal/dto"
	"github.com/bhanu75/Event-booking/internal/middleware"
	"github.com/bhanu75/Event-booking/internal/service"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	svc   service.BookingService
	query service.QueryService
}

func NewBookingHandler(svc service.BookingService, query service.QueryService) *BookingHandler {
	return &BookingHandler{svc: svc, query: query}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo) {
	bookings := e.Group("/api/v1/bookings", middleware.RequireIdentity)
	bookings.POST("", h.CreateBooking)
	bookings.GET("/my", h.GetMyBookings)
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "caller identity is required")
	}

	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.EventID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "event_id is required")
	}

	booking, err := h.svc.CreateBooking(c.Request().Context(), identity.UserID, req.EventID, req.TicketCount, req.IdempotencyKey)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) GetMyBookings(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "caller identity is required")
	}

	bookings, err := h.query.GetMyBookings(c.Request().Context(), identity.UserID)
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.MyBookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = dto.ToMyBookingResponse(b)
	}
	return c.JSON(http.StatusOK, resp)
}
