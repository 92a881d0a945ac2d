package models

import "time"

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Known reports whether s is one of the four booking statuses.
func (s BookingStatus) Known() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Active bookings (pending or confirmed) count toward room availability.
func (s BookingStatus) Active() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Terminal statuses admit no further transitions.
func (s BookingStatus) Terminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

type Booking struct {
	ID                 uint          `gorm:"primaryKey" json:"id"`
	UserID             string        `gorm:"not null;index" json:"user_id"`
	HotelID            uint          `gorm:"not null" json:"hotel_id"`
	RoomID             uint          `gorm:"not null;index" json:"room_id"`
	CheckIn            time.Time     `gorm:"not null" json:"check_in"`
	CheckOut           time.Time     `gorm:"not null" json:"check_out"`
	Adults             int           `gorm:"not null" json:"adults"`
	Children           int           `gorm:"not null;default:0" json:"children"`
	TotalPrice         float64       `gorm:"not null" json:"total_price"`
	Status             BookingStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CancellationReason *string       `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`

	Room  *Room  `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Hotel *Hotel `gorm:"foreignKey:HotelID" json:"hotel,omitempty"`
}
