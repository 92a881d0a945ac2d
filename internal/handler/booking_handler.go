package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/hotelhub/booking-service/internal/dto"
	"github.com/hotelhub/booking-service/internal/middleware"
	"github.com/hotelhub/booking-service/internal/models"
	"github.com/hotelhub/booking-service/internal/repository"
	"github.com/hotelhub/booking-service/internal/service"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo) {
	bookings := e.Group("/api/v1/bookings", middleware.RequireIdentity)
	bookings.POST("", h.CreateBooking)
	bookings.GET("", h.ListBookings)
	bookings.GET("/:id", h.GetBooking)
	bookings.PATCH("/:id/status", h.UpdateStatus)
	bookings.DELETE("/:id", h.DeleteBooking, middleware.RequireAdmin)
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	actor, _ := middleware.ActorFrom(c)

	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.HotelID == 0 || req.RoomID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "hotel_id and room_id are required")
	}

	booking, err := h.svc.CreateBooking(c.Request().Context(), actor, service.CreateBookingInput{
		HotelID:  req.HotelID,
		RoomID:   req.RoomID,
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		Adults:   req.Guests.Adults,
		Children: req.Guests.Children,
	})
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	actor, _ := middleware.ActorFrom(c)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}

	var req dto.UpdateBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	booking, err := h.svc.TransitionStatus(
		c.Request().Context(),
		actor,
		uint(bookingID),
		models.BookingStatus(req.Status),
		req.CancellationReason,
	)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	actor, _ := middleware.ActorFrom(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}

	booking, err := h.svc.GetBooking(c.Request().Context(), actor, uint(id))
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	actor, _ := middleware.ActorFrom(c)

	var filter repository.BookingFilter
	if s := c.QueryParam("status"); s != "" {
		bs := models.BookingStatus(s)
		if !bs.Known() {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown status")
		}
		filter.Status = &bs
	}
	if s := c.QueryParam("start_date"); s != "" {
		from, err := parseDate(s)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid start_date")
		}
		filter.From = &from
	}
	if s := c.QueryParam("end_date"); s != "" {
		to, err := parseDate(s)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid end_date")
		}
		filter.To = &to
	}

	bookings, err := h.svc.ListBookings(c.Request().Context(), actor, filter)
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.BookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = dto.ToBookingResponse(&b)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) DeleteBooking(c echo.Context) error {
	actor, _ := middleware.ActorFrom(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}

	if err := h.svc.DeleteBooking(c.Request().Context(), actor, uint(id)); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "booking deleted"})
}

// parseDate accepts plain dates and full RFC3339 timestamps.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// toHTTPError maps service sentinels onto the HTTP taxonomy: validation 400,
// date conflicts 409, unresolved ids 404, authorization failures 403.
func toHTTPError(err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrInvalidTransition):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrRoomUnavailable),
		errors.Is(err, service.ErrRoomNumberTaken):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrHotelNotFound),
		errors.Is(err, service.ErrRoomNotFound),
		errors.Is(err, service.ErrBookingNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
