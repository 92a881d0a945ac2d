package models

import "time"

type Room struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	HotelID       uint      `gorm:"not null;index;uniqueIndex:idx_hotel_room_number" json:"hotel_id"`
	RoomNumber    string    `gorm:"not null;uniqueIndex:idx_hotel_room_number" json:"room_number"`
	Type          string    `gorm:"not null" json:"type"`
	PricePerNight float64   `gorm:"not null" json:"price_per_night"`
	Capacity      int       `gorm:"not null" json:"capacity"`
	BedType       string    `json:"bed_type"`
	Floor         int       `json:"floor"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Hotel *Hotel `gorm:"foreignKey:HotelID" json:"hotel,omitempty"`
}
