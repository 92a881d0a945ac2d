package dto

import (
	"time"

	"github.com/hotelhub/booking-service/internal/models"
)

type BookingResponse struct {
	ID                 uint                 `json:"id"`
	UserID             string               `json:"user_id"`
	HotelID            uint                 `json:"hotel_id"`
	RoomID             uint                 `json:"room_id"`
	CheckIn            time.Time            `json:"check_in"`
	CheckOut           time.Time            `json:"check_out"`
	Guests             Guests               `json:"guests"`
	TotalPrice         float64              `json:"total_price"`
	Status             models.BookingStatus `json:"status"`
	CancellationReason *string              `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
}

type RoomResponse struct {
	ID            uint    `json:"id"`
	HotelID       uint    `json:"hotel_id"`
	RoomNumber    string  `json:"room_number"`
	Type          string  `json:"type"`
	PricePerNight float64 `json:"price_per_night"`
	Capacity      int     `json:"capacity"`
	BedType       string  `json:"bed_type"`
	Floor         int     `json:"floor"`
	// IsAvailable is a cached hint derived from active bookings, never an
	// independent source of truth.
	IsAvailable *bool `json:"is_available,omitempty"`
}

type AvailabilityResponse struct {
	RoomID    uint      `json:"room_id"`
	CheckIn   time.Time `json:"check_in"`
	CheckOut  time.Time `json:"check_out"`
	Available bool      `json:"available"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:                 b.ID,
		UserID:             b.UserID,
		HotelID:            b.HotelID,
		RoomID:             b.RoomID,
		CheckIn:            b.CheckIn,
		CheckOut:           b.CheckOut,
		Guests:             Guests{Adults: b.Adults, Children: b.Children},
		TotalPrice:         b.TotalPrice,
		Status:             b.Status,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

func ToRoomResponse(r *models.Room, available *bool) RoomResponse {
	return RoomResponse{
		ID:            r.ID,
		HotelID:       r.HotelID,
		RoomNumber:    r.RoomNumber,
		Type:          r.Type,
		PricePerNight: r.PricePerNight,
		Capacity:      r.Capacity,
		BedType:       r.BedType,
		Floor:         r.Floor,
		IsAvailable:   available,
	}
}
