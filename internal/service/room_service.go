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

type RoomService interface {
	CreateRoom(ctx context.Context, room *models.Room) error
	GetRoom(ctx context.Context, id uint) (*models.Room, error)
	ListRooms(ctx context.Context, filter repository.RoomFilter) ([]models.Room, error)
}

type roomService struct {
	roomRepo  repository.RoomRepository
	hotelRepo repository.HotelRepository
	publisher EventPublisher
}

func NewRoomService(roomRepo repository.RoomRepository, hotelRepo repository.HotelRepository, publisher EventPublisher) RoomService {
	return &roomService{roomRepo: roomRepo, hotelRepo: hotelRepo, publisher: publisher}
}

func (s *roomService) CreateRoom(ctx context.Context, room *models.Room) error {
	if _, err := s.hotelRepo.FindByID(ctx, room.HotelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHotelNotFound
		}
		return err
	}

	// Room numbers are unique within a hotel; the unique index backstops
	// this check.
	_, err := s.roomRepo.FindByHotelAndNumber(ctx, room.HotelID, room.RoomNumber)
	if err == nil {
		return ErrRoomNumberTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err := s.roomRepo.Create(ctx, room); err != nil {
		return fmt.Errorf("create room: %w", err)
	}
	if s.publisher != nil {
		if err := s.publisher.Publish(rabbitmq.KeyRoomCreated, room); err != nil {
			log.Printf("[RoomService] publish room.created for room %d failed: %v", room.ID, err)
		}
	}
	return nil
}

func (s *roomService) GetRoom(ctx context.Context, id uint) (*models.Room, error) {
	room, err := s.roomRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

func (s *roomService) ListRooms(ctx context.Context, filter repository.RoomFilter) ([]models.Room, error) {
	return s.roomRepo.List(ctx, filter)
}
