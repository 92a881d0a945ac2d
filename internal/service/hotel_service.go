package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/hotelhub/booking-service/internal/models"
	"github.com/hotelhub/booking-service/internal/repository"
	"github.com/hotelhub/booking-service/pkg/rabbitmq"
	"gorm.io/gorm"
)

type HotelService interface {
	CreateHotel(ctx context.Context, hotel *models.Hotel) error
	GetHotel(ctx context.Context, id uint) (*models.Hotel, error)
	ListHotels(ctx context.Context, filter repository.HotelFilter) ([]models.Hotel, error)
}

type hotelService struct {
	repo      repository.HotelRepository
	publisher EventPublisher
}

func NewHotelService(repo repository.HotelRepository, publisher EventPublisher) HotelService {
	return &hotelService{repo: repo, publisher: publisher}
}

func (s *hotelService) CreateHotel(ctx context.Context, hotel *models.Hotel) error {
	if err := s.repo.Create(ctx, hotel); err != nil {
		return fmt.Errorf("create hotel: %w", err)
	}
	if s.publisher != nil {
		if err := s.publisher.Publish(rabbitmq.KeyHotelCreated, hotel); err != nil {
			log.Printf("[HotelService] publish hotel.created for hotel %d failed: %v", hotel.ID, err)
		}
	}
	return nil
}

func (s *hotelService) GetHotel(ctx context.Context, id uint) (*models.Hotel, error) {
	hotel, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	return hotel, nil
}

func (s *hotelService) ListHotels(ctx context.Context, filter repository.HotelFilter) ([]models.Hotel, error) {
	return s.repo.List(ctx, filter)
}
