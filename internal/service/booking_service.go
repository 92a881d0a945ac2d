package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hotelhub/booking-service/internal/auth"
	"github.com/hotelhub/booking-service/internal/metrics"
	"github.com/hotelhub/booking-service/internal/models"
	"github.com/hotelhub/booking-service/internal/repository"
	"github.com/hotelhub/booking-service/pkg/cache"
	"github.com/hotelhub/booking-service/pkg/rabbitmq"
	"gorm.io/gorm"
)

// EventPublisher is satisfied by pkg/rabbitmq.Publisher. Publishing happens
// after commit and never affects the request outcome.
type EventPublisher interface {
	Publish(routingKey string, payload any) error
}

// HintCache is satisfied by pkg/cache.AvailabilityCache. The hint is
// advisory; every failure degrades to a recompute.
type HintCache interface {
	GetRoomAvailability(ctx context.Context, roomID uint) (bool, error)
	SetRoomAvailability(ctx context.Context, roomID uint, available bool) error
	InvalidateRoom(ctx context.Context, roomID uint) error
}

type CreateBookingInput struct {
	HotelID  uint
	RoomID   uint
	CheckIn  time.Time
	CheckOut time.Time
	Adults   int
	Children int
}

func (in CreateBookingInput) validate() error {
	if !in.CheckIn.Before(in.CheckOut) {
		return fmt.Errorf("%w: check_in must be before check_out", ErrInvalidInput)
	}
	if in.Adults < 1 {
		return fmt.Errorf("%w: at least one adult guest is required", ErrInvalidInput)
	}
	if in.Children < 0 {
		return fmt.Errorf("%w: children count must be non-negative", ErrInvalidInput)
	}
	return nil
}

type BookingService interface {
	CreateBooking(ctx context.Context, actor auth.Actor, in CreateBookingInput) (*models.Booking, error)
	TransitionStatus(ctx context.Context, actor auth.Actor, bookingID uint, target models.BookingStatus, reason string) (*models.Booking, error)
	GetBooking(ctx context.Context, actor auth.Actor, id uint) (*models.Booking, error)
	ListBookings(ctx context.Context, actor auth.Actor, filter repository.BookingFilter) ([]models.Booking, error)
	DeleteBooking(ctx context.Context, actor auth.Actor, id uint) error
	IsRoomAvailable(ctx context.Context, roomID uint, checkIn, checkOut time.Time, excludeBookingID uint) (bool, error)
	AvailabilityHint(ctx context.Context, roomID uint) (bool, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	roomRepo    repository.RoomRepository
	publisher   EventPublisher
	hints       HintCache
}

func NewBookingService(bookingRepo repository.BookingRepository, roomRepo repository.RoomRepository, publisher EventPublisher, hints HintCache) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		publisher:   publisher,
		hints:       hints,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, actor auth.Actor, in CreateBookingInput) (*models.Booking, error) {
	// Input validation runs before any persistence access: a malformed
	// request must not touch the database at all.
	if err := in.validate(); err != nil {
		return nil, err
	}

	var result *models.Booking

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the room row, scoped by hotel. The lock is held across
		// the overlap check and the insert, so concurrent requests for the
		// same room serialize here and at most one of an overlapping pair
		// can commit.
		room, err := s.roomRepo.FindByIDForUpdate(ctx, tx, in.RoomID, in.HotelID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}

		// 2. Overlap check against active bookings only.
		active, err := s.bookingRepo.FindActiveByRoom(ctx, tx, room.ID)
		if err != nil {
			return err
		}
		if overlapsAny(active, in.CheckIn, in.CheckOut, 0) {
			return ErrRoomUnavailable
		}

		// 3. Price: nights round up, so >= 1 once the ordering check passed.
		nights := nightsBetween(in.CheckIn, in.CheckOut)

		booking := &models.Booking{
			UserID:     actor.UserID,
			HotelID:    room.HotelID,
			RoomID:     room.ID,
			CheckIn:    in.CheckIn,
			CheckOut:   in.CheckOut,
			Adults:     in.Adults,
			Children:   in.Children,
			TotalPrice: float64(nights) * room.PricePerNight,
			Status:     models.StatusPending,
		}

		if err := s.bookingRepo.Create(ctx, tx, booking); err != nil {
			return err
		}

		result = booking
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrRoomUnavailable) {
			metrics.BookingConflicts.Inc()
		}
		return nil, err
	}

	metrics.BookingsCreated.Inc()
	s.publish(rabbitmq.KeyBookingCreated, result)
	s.invalidateHint(ctx, result.RoomID)
	return result, nil
}

func (s *bookingService) TransitionStatus(ctx context.Context, actor auth.Actor, bookingID uint, target models.BookingStatus, reason string) (*models.Booking, error) {
	var result *models.Booking

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Row lock serializes concurrent transitions on the same booking.
		booking, err := s.bookingRepo.FindByIDForUpdate(ctx, tx, bookingID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		if err := validateTransition(booking, actor, target, reason); err != nil {
			return err
		}

		var reasonPtr *string
		if target == models.StatusCancelled && reason != "" {
			reasonPtr = &reason
		}

		if err := s.bookingRepo.UpdateStatus(ctx, tx, booking.ID, target, reasonPtr); err != nil {
			return err
		}

		booking.Status = target
		if reasonPtr != nil {
			booking.CancellationReason = reasonPtr
		}
		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	if result.Status == models.StatusCancelled {
		metrics.BookingsCancelled.Inc()
	}
	// Completion also removes the booking from the active set, so the hint
	// goes stale on any transition into a terminal status.
	if result.Status.Terminal() {
		s.invalidateHint(ctx, result.RoomID)
	}
	s.publish(rabbitmq.KeyBookingStatusChanged, result)
	return result, nil
}

// validateTransition is the single rule table for the booking state machine.
// Order matters: the actor check comes first so a non-owning, non-admin user
// is rejected regardless of the requested target.
func validateTransition(booking *models.Booking, actor auth.Actor, target models.BookingStatus, reason string) error {
	if !actor.IsAdmin() && !actor.Owns(booking.UserID) {
		return ErrForbidden
	}

	if !target.Known() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, string(target))
	}

	if booking.Status.Terminal() {
		return fmt.Errorf("%w: booking is already %s", ErrInvalidTransition, booking.Status)
	}

	switch target {
	case models.StatusCancelled:
		// Owner may cancel with a reason; admins may cancel without one.
		if !actor.IsAdmin() && reason == "" {
			return fmt.Errorf("%w: cancellation_reason is required", ErrInvalidInput)
		}
		return nil

	case models.StatusConfirmed:
		if !actor.IsAdmin() {
			return ErrForbidden
		}
		if booking.Status != models.StatusPending {
			return fmt.Errorf("%w: cannot confirm a %s booking", ErrInvalidTransition, booking.Status)
		}
		return nil

	case models.StatusCompleted:
		if !actor.IsAdmin() {
			return ErrForbidden
		}
		return nil

	default: // pending has no inbound edges
		return fmt.Errorf("%w: cannot transition back to %s", ErrInvalidTransition, target)
	}
}

func (s *bookingService) GetBooking(ctx context.Context, actor auth.Actor, id uint) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if !actor.IsAdmin() && !actor.Owns(booking.UserID) {
		return nil, ErrForbidden
	}
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, actor auth.Actor, filter repository.BookingFilter) ([]models.Booking, error) {
	// Non-admins only ever see their own bookings.
	if !actor.IsAdmin() {
		filter.UserID = actor.UserID
	}
	return s.bookingRepo.List(ctx, filter)
}

// DeleteBooking physically removes a booking, bypassing the state machine.
// Admin-only escape hatch.
func (s *bookingService) DeleteBooking(ctx context.Context, actor auth.Actor, id uint) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		return err
	}
	if err := s.bookingRepo.Delete(ctx, booking.ID); err != nil {
		return err
	}
	s.invalidateHint(ctx, booking.RoomID)
	return nil
}

// IsRoomAvailable is the read-only availability check: no locks, no side
// effects, safe to call concurrently. The committer runs the same predicate
// again under the room lock before inserting.
func (s *bookingService) IsRoomAvailable(ctx context.Context, roomID uint, checkIn, checkOut time.Time, excludeBookingID uint) (bool, error) {
	if !checkIn.Before(checkOut) {
		return false, fmt.Errorf("%w: check_in must be before check_out", ErrInvalidInput)
	}
	if _, err := s.roomRepo.FindByID(ctx, roomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrRoomNotFound
		}
		return false, err
	}
	active, err := s.bookingRepo.FindActiveByRoom(ctx, s.bookingRepo.GetDB(), roomID)
	if err != nil {
		return false, err
	}
	return !overlapsAny(active, checkIn, checkOut, excludeBookingID), nil
}

// AvailabilityHint returns the cached "available tonight" flag for a room,
// recomputing it from active bookings on a cache miss. Advisory only.
func (s *bookingService) AvailabilityHint(ctx context.Context, roomID uint) (bool, error) {
	if s.hints != nil {
		if available, err := s.hints.GetRoomAvailability(ctx, roomID); err == nil {
			return available, nil
		} else if !errors.Is(err, cache.ErrMiss) {
			log.Printf("[BookingService] availability hint read failed for room %d: %v", roomID, err)
		}
	}

	now := time.Now().UTC()
	tonight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	available, err := s.IsRoomAvailable(ctx, roomID, tonight, tonight.Add(24*time.Hour), 0)
	if err != nil {
		return false, err
	}

	if s.hints != nil {
		if err := s.hints.SetRoomAvailability(ctx, roomID, available); err != nil {
			log.Printf("[BookingService] availability hint write failed for room %d: %v", roomID, err)
		}
	}
	return available, nil
}

func (s *bookingService) publish(key string, booking *models.Booking) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(key, booking); err != nil {
		log.Printf("[BookingService] publish %s for booking %d failed: %v", key, booking.ID, err)
	}
}

func (s *bookingService) invalidateHint(ctx context.Context, roomID uint) {
	if s.hints == nil {
		return
	}
	if err := s.hints.InvalidateRoom(ctx, roomID); err != nil {
		log.Printf("[BookingService] availability hint invalidation failed for room %d: %v", roomID, err)
	}
}
