package models

import "time"

type Hotel struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	City        string    `gorm:"not null;index" json:"city"`
	Country     string    `gorm:"not null" json:"country"`
	Rating      float64   `gorm:"default:0" json:"rating"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
