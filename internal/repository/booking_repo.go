package repository

import (
	"context"
	"time"

	"github.com/hotelhub/booking-service/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingFilter narrows ListBookings. Zero values mean "no filter".
type BookingFilter struct {
	UserID string
	Status *models.BookingStatus
	From   *time.Time // check-in on or after
	To     *time.Time // check-in on or before
}

type BookingRepository interface {
	Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	FindByID(ctx context.Context, id uint) (*models.Booking, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Booking, error)
	FindActiveByRoom(ctx context.Context, tx *gorm.DB, roomID uint) ([]models.Booking, error)
	List(ctx context.Context, filter BookingFilter) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, bookingID uint, status models.BookingStatus, reason *string) error
	Delete(ctx context.Context, bookingID uint) error
	GetDB() *gorm.DB
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *bookingRepository) Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	return tx.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// FindByIDForUpdate acquires a row-level lock on the booking within the given
// transaction, serializing concurrent status transitions.
func (r *bookingRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// FindActiveByRoom returns pending and confirmed bookings for the room.
// Cancelled and completed bookings never block availability.
func (r *bookingRepository) FindActiveByRoom(ctx context.Context, tx *gorm.DB, roomID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := tx.WithContext(ctx).
		Where("room_id = ? AND status IN ?", roomID, []models.BookingStatus{models.StatusPending, models.StatusConfirmed}).
		Order("check_in ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) List(ctx context.Context, filter BookingFilter) ([]models.Booking, error) {
	var bookings []models.Booking
	q := r.db.WithContext(ctx).Model(&models.Booking{})
	if filter.UserID != "" {
		q = q.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if filter.From != nil {
		q = q.Where("check_in >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("check_in <= ?", *filter.To)
	}
	if err := q.Order("check_in DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, bookingID uint, status models.BookingStatus, reason *string) error {
	updates := map[string]any{"status": status}
	if reason != nil {
		updates["cancellation_reason"] = *reason
	}
	return tx.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Updates(updates).Error
}

// Delete removes the booking row outright. Administrative escape hatch; the
// status state machine is bypassed on purpose.
func (r *bookingRepository) Delete(ctx context.Context, bookingID uint) error {
	return r.db.WithContext(ctx).Delete(&models.Booking{}, bookingID).Error
}
