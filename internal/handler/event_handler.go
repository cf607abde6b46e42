package handler

import (
	"net/http"

	"github.com/bhanu75/Event-booking/internal/dto"
	"github.com/bhanu75/Event-booking/internal/middleware"
	"github.com/bhanu75/Event-booking/internal/models"
	"github.com/bhanu75/Event-booking/internal/service"
	"github.com/labstack/echo/v4"
)

type EventHandler struct {
	svc   service.EventService
	query service.QueryService
}

func NewEventHandler(svc service.EventService, query service.QueryService) *EventHandler {
	return &EventHandler{svc: svc, query: query}
}

func (h *EventHandler) RegisterRoutes(e *echo.Echo) {
	events := e.Group("/api/v1/events")
	events.GET("", h.ListEvents)
	events.GET("/:id", h.GetEvent)
	events.POST("", h.CreateEvent, middleware.RequireIdentity)
	events.PUT("/:id", h.UpdateEvent, middleware.RequireIdentity)
	events.DELETE("/:id", h.DeleteEvent, middleware.RequireIdentity)
	events.GET("/:id/bookings", h.GetEventBookings, middleware.RequireIdentity)

	e.GET("/api/v1/organizer/summary", h.OrganizerSummary, middleware.RequireIdentity)
}

func (h *EventHandler) CreateEvent(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "caller identity is required")
	}
	if identity.Role != models.RoleOrganizer {
		return echo.NewHTTPError(http.StatusForbidden, "only organizers can create events")
	}

	var req dto.CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	event, err := h.svc.CreateEvent(c.Request().Context(), identity.UserID, req.ToInput())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *EventHandler) UpdateEvent(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "caller identity is required")
	}

	var req dto.UpdateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	event, err := h.svc.UpdateEvent(c.Request().Context(), c.Param("id"), identity.UserID, req.ToInput())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *EventHandler) DeleteEvent(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "caller identity is required")
	}

	if err := h.svc.DeleteEvent(c.Request().Context(), c.Param("id"), identity.UserID); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.DeleteResponse{Deleted: true})
}

func (h *EventHandler) GetEvent(c echo.Context) error {
	event, err := h.svc.GetEvent(c.Request().Context(), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *EventHandler) ListEvents(c echo.Context) error {
	events, err := h.svc.ListEvents(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.EventResponse, len(events))
	for i := range events {
		resp[i] = dto.ToEventResponse(&events[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *EventHandler) GetEventBookings(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "caller identity is required")
	}

	bookings, err := h.query.GetEventBookings(c.Request().Context(), c.Param("id"), identity.UserID)
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.EventBookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = dto.ToEventBookingResponse(b)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *EventHandler) OrganizerSummary(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "caller identity is required")
	}

	report, err := h.query.OrganizerSummary(c.Request().Context(), identity.UserID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToOrganizerSummaryResponse(report))
}
