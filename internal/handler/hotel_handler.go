package handler

import (
	"net/http"
	"strconv"

	"github.com/hotelhub/booking-service/internal/dto"
	"github.com/hotelhub/booking-service/internal/middleware"
	"github.com/hotelhub/booking-service/internal/models"
	"github.com/hotelhub/booking-service/internal/repository"
	"github.com/hotelhub/booking-service/internal/service"
	"github.com/labstack/echo/v4"
)

type HotelHandler struct {
	svc service.HotelService
}

func NewHotelHandler(svc service.HotelService) *HotelHandler {
	return &HotelHandler{svc: svc}
}

func (h *HotelHandler) RegisterRoutes(e *echo.Echo) {
	hotels := e.Group("/api/v1/hotels")
	hotels.POST("", h.CreateHotel, middleware.RequireAdmin)
	hotels.GET("", h.ListHotels)
	hotels.GET("/:id", h.GetHotel)
}

func (h *HotelHandler) CreateHotel(c echo.Context) error {
	var req dto.CreateHotelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" || req.City == "" || req.Country == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name, city and country are required")
	}

	hotel := &models.Hotel{
		Name:        req.Name,
		Description: req.Description,
		City:        req.City,
		Country:     req.Country,
		Rating:      req.Rating,
		IsActive:    true,
	}

	if err := h.svc.CreateHotel(c.Request().Context(), hotel); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, hotel)
}

func (h *HotelHandler) GetHotel(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid hotel id")
	}

	hotel, err := h.svc.GetHotel(c.Request().Context(), uint(id))
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, hotel)
}

func (h *HotelHandler) ListHotels(c echo.Context) error {
	var filter repository.HotelFilter
	filter.City = c.QueryParam("city")
	filter.Country = c.QueryParam("country")
	if s := c.QueryParam("min_rating"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid min_rating")
		}
		filter.MinRating = &v
	}

	hotels, err := h.svc.ListHotels(c.Request().Context(), filter)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, hotels)
}
