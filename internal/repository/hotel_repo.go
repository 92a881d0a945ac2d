package repository

import (
	"context"

	"github.com/hotelhub/booking-service/internal/models"
	"gorm.io/gorm"
)

// HotelFilter narrows ListHotels. Zero values mean "no filter".
type HotelFilter struct {
	City      string
	Country   string
	MinRating *float64
}

type HotelRepository interface {
	Create(ctx context.Context, hotel *models.Hotel) error
	FindByID(ctx context.Context, id uint) (*models.Hotel, error)
	List(ctx context.Context, filter HotelFilter) ([]models.Hotel, error)
}

type hotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) HotelRepository {
	return &hotelRepository{db: db}
}

func (r *hotelRepository) Create(ctx context.Context, hotel *models.Hotel) error {
	return r.db.WithContext(ctx).Create(hotel).Error
}

func (r *hotelRepository) FindByID(ctx context.Context, id uint) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := r.db.WithContext(ctx).First(&hotel, id).Error; err != nil {
		return nil, err
	}
	return &hotel, nil
}

// List returns active hotels only, best rated first.
func (r *hotelRepository) List(ctx context.Context, filter HotelFilter) ([]models.Hotel, error) {
	var hotels []models.Hotel
	q := r.db.WithContext(ctx).Where("is_active = ?", true)
	if filter.City != "" {
		q = q.Where("city ILIKE ?", "%"+filter.City+"%")
	}
	if filter.Country != "" {
		q = q.Where("country ILIKE ?", "%"+filter.Country+"%")
	}
	if filter.MinRating != nil {
		q = q.Where("rating >= ?", *filter.MinRating)
	}
	if err := q.Order("rating DESC").Find(&hotels).Error; err != nil {
		return nil, err
	}
	return hotels, nil
}
