package dto

import "time"

type Guests struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
}

type CreateBookingRequest struct {
	HotelID  uint      `json:"hotel_id"`
	RoomID   uint      `json:"room_id"`
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
	Guests   Guests    `json:"guests"`
}

type UpdateBookingStatusRequest struct {
	Status             string `json:"status"`
	CancellationReason string `json:"cancellation_reason,omitempty"`
}

type CreateHotelRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Rating      float64 `json:"rating"`
}

type CreateRoomRequest struct {
	HotelID       uint    `json:"hotel_id"`
	RoomNumber    string  `json:"room_number"`
	Type          string  `json:"type"`
	PricePerNight float64 `json:"price_per_night"`
	Capacity      int     `json:"capacity"`
	BedType       string  `json:"bed_type"`
	Floor         int     `json:"floor"`
}
