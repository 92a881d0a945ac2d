package handler

import (
	"log"
	"net/http"
	"strconv"

	"github.com/hotelhub/booking-service/internal/dto"
	"github.com/hotelhub/booking-service/internal/middleware"
	"github.com/hotelhub/booking-service/internal/models"
	"github.com/hotelhub/booking-service/internal/repository"
	"github.com/hotelhub/booking-service/internal/service"
	"github.com/labstack/echo/v4"
)

type RoomHandler struct {
	svc        service.RoomService
	bookingSvc service.BookingService
}

func NewRoomHandler(svc service.RoomService, bookingSvc service.BookingService) *RoomHandler {
	return &RoomHandler{svc: svc, bookingSvc: bookingSvc}
}

func (h *RoomHandler) RegisterRoutes(e *echo.Echo) {
	rooms := e.Group("/api/v1/rooms")
	rooms.POST("", h.CreateRoom, middleware.RequireAdmin)
	rooms.GET("", h.ListRooms)
	rooms.GET("/:id", h.GetRoom)
	rooms.GET("/:id/availability", h.CheckAvailability)
}

func (h *RoomHandler) CreateRoom(c echo.Context) error {
	var req dto.CreateRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.HotelID == 0 || req.RoomNumber == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "hotel_id and room_number are required")
	}
	if req.PricePerNight < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "price_per_night must be non-negative")
	}
	if req.Capacity < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "capacity must be at least 1")
	}

	room := &models.Room{
		HotelID:       req.HotelID,
		RoomNumber:    req.RoomNumber,
		Type:          req.Type,
		PricePerNight: req.PricePerNight,
		Capacity:      req.Capacity,
		BedType:       req.BedType,
		Floor:         req.Floor,
	}

	if err := h.svc.CreateRoom(c.Request().Context(), room); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToRoomResponse(room, nil))
}

func (h *RoomHandler) GetRoom(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid room id")
	}

	room, err := h.svc.GetRoom(c.Request().Context(), uint(id))
	if err != nil {
		return toHTTPError(err)
	}

	// The hint is advisory; a failure to compute it never fails the lookup.
	var available *bool
	if hint, err := h.bookingSvc.AvailabilityHint(c.Request().Context(), room.ID); err == nil {
		available = &hint
	} else {
		log.Printf("[RoomHandler] availability hint for room %d: %v", room.ID, err)
	}

	return c.JSON(http.StatusOK, dto.ToRoomResponse(room, available))
}

func (h *RoomHandler) ListRooms(c echo.Context) error {
	var filter repository.RoomFilter
	if s := c.QueryParam("hotel_id"); s != "" {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid hotel_id")
		}
		filter.HotelID = uint(id)
	}
	filter.Type = c.QueryParam("type")
	filter.BedType = c.QueryParam("bed_type")
	if s := c.QueryParam("min_price"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid min_price")
		}
		filter.MinPrice = &v
	}
	if s := c.QueryParam("max_price"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid max_price")
		}
		filter.MaxPrice = &v
	}
	if s := c.QueryParam("capacity"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid capacity")
		}
		filter.MinCapacity = v
	}

	rooms, err := h.svc.ListRooms(c.Request().Context(), filter)
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.RoomResponse, len(rooms))
	for i, r := range rooms {
		resp[i] = dto.ToRoomResponse(&r, nil)
	}
	return c.JSON(http.StatusOK, resp)
}

// CheckAvailability exposes the read-only overlap check:
// GET /api/v1/rooms/:id/availability?check_in=2024-01-10&check_out=2024-01-15
func (h *RoomHandler) CheckAvailability(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid room id")
	}

	checkIn, err := parseDate(c.QueryParam("check_in"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "valid check_in date is required")
	}
	checkOut, err := parseDate(c.QueryParam("check_out"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "valid check_out date is required")
	}

	available, err := h.bookingSvc.IsRoomAvailable(c.Request().Context(), uint(id), checkIn, checkOut, 0)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.AvailabilityResponse{
		RoomID:    uint(id),
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Available: available,
	})
}
