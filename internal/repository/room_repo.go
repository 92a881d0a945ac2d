package repository

import (
	"context"

	"github.com/hotelhub/booking-service/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RoomFilter narrows ListRooms. Zero values mean "no filter".
type RoomFilter struct {
	HotelID     uint
	Type        string
	BedType     string
	MinPrice    *float64
	MaxPrice    *float64
	MinCapacity int
}

type RoomRepository interface {
	Create(ctx context.Context, room *models.Room) error
	FindByID(ctx context.Context, id uint) (*models.Room, error)
	FindByHotelAndNumber(ctx context.Context, hotelID uint, roomNumber string) (*models.Room, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id, hotelID uint) (*models.Room, error)
	List(ctx context.Context, filter RoomFilter) ([]models.Room, error)
}

type roomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) Create(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *roomRepository) FindByID(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	if err := r.db.WithContext(ctx).First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) FindByHotelAndNumber(ctx context.Context, hotelID uint, roomNumber string) (*models.Room, error) {
	var room models.Room
	err := r.db.WithContext(ctx).
		Where("hotel_id = ? AND room_number = ?", hotelID, roomNumber).
		First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// FindByIDForUpdate acquires a row-level lock on the room within the given
// transaction. Holding the lock across the overlap check and the booking
// insert is what serializes concurrent reservations for the same room.
// The lookup is scoped by hotel so a room id from the wrong hotel misses.
func (r *roomRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id, hotelID uint) (*models.Room, error) {
	var room models.Room
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND hotel_id = ?", id, hotelID).
		First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) List(ctx context.Context, filter RoomFilter) ([]models.Room, error) {
	var rooms []models.Room
	q := r.db.WithContext(ctx).Model(&models.Room{})
	if filter.HotelID != 0 {
		q = q.Where("hotel_id = ?", filter.HotelID)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.BedType != "" {
		q = q.Where("bed_type = ?", filter.BedType)
	}
	if filter.MinPrice != nil {
		q = q.Where("price_per_night >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("price_per_night <= ?", *filter.MaxPrice)
	}
	if filter.MinCapacity > 0 {
		q = q.Where("capacity >= ?", filter.MinCapacity)
	}
	if err := q.Order("price_per_night ASC").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}
