package service

import (
	"context"
	"testing"

	"github.com/hotelhub/booking-service/internal/auth"
	"github.com/hotelhub/booking-service/internal/models"
	"github.com/hotelhub/booking-service/internal/repository"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

var (
	owner    = auth.Actor{UserID: "user-1", Role: auth.RoleUser}
	stranger = auth.Actor{UserID: "user-2", Role: auth.RoleUser}
	admin    = auth.Actor{UserID: "admin-1", Role: auth.RoleAdmin}
)

func pendingBooking() *models.Booking {
	return &models.Booking{ID: 1, UserID: "user-1", Status: models.StatusPending}
}

func TestValidateTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    models.BookingStatus
		actor   auth.Actor
		target  models.BookingStatus
		reason  string
		wantErr error
	}{
		{"owner cancels with reason", models.StatusPending, owner, models.StatusCancelled, "change of plans", nil},
		{"owner cancels confirmed booking", models.StatusConfirmed, owner, models.StatusCancelled, "change of plans", nil},
		{"owner cancels without reason", models.StatusPending, owner, models.StatusCancelled, "", ErrInvalidInput},
		{"admin cancels without reason", models.StatusPending, admin, models.StatusCancelled, "", nil},
		{"admin confirms pending", models.StatusPending, admin, models.StatusConfirmed, "", nil},
		{"owner cannot confirm", models.StatusPending, owner, models.StatusConfirmed, "", ErrForbidden},
		{"admin completes pending", models.StatusPending, admin, models.StatusCompleted, "", nil},
		{"admin completes confirmed", models.StatusConfirmed, admin, models.StatusCompleted, "", nil},
		{"owner cannot complete", models.StatusConfirmed, owner, models.StatusCompleted, "", ErrForbidden},
		{"admin cannot confirm a confirmed booking", models.StatusConfirmed, admin, models.StatusConfirmed, "", ErrInvalidTransition},
		{"no transitions out of cancelled", models.StatusCancelled, admin, models.StatusCompleted, "", ErrInvalidTransition},
		{"no transitions out of completed", models.StatusCompleted, admin, models.StatusCancelled, "", ErrInvalidTransition},
		{"no transitions back to pending", models.StatusConfirmed, admin, models.StatusPending, "", ErrInvalidTransition},
		{"unknown target status", models.StatusPending, admin, models.BookingStatus("archived"), "", ErrInvalidInput},
		{"stranger cannot cancel", models.StatusPending, stranger, models.StatusCancelled, "reason", ErrForbidden},
		{"stranger forbidden even for unknown target", models.StatusPending, stranger, models.BookingStatus("archived"), "", ErrForbidden},
		{"stranger forbidden on terminal booking", models.StatusCancelled, stranger, models.StatusCancelled, "reason", ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := pendingBooking()
			booking.Status = tt.from

			err := validateTransition(booking, tt.actor, tt.target, tt.reason)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

// --- validation must run before any persistence access ---

type recordingBookingRepo struct {
	repository.BookingRepository
	getDBCalled bool
}

func (r *recordingBookingRepo) GetDB() *gorm.DB {
	r.getDBCalled = true
	return nil
}

func TestCreateBooking_ValidationBeforePersistence(t *testing.T) {
	tests := []struct {
		name string
		in   CreateBookingInput
	}{
		{"inverted dates", CreateBookingInput{
			HotelID: 1, RoomID: 1,
			CheckIn: day(2024, 3, 10), CheckOut: day(2024, 3, 5),
			Adults: 2,
		}},
		{"equal dates", CreateBookingInput{
			HotelID: 1, RoomID: 1,
			CheckIn: day(2024, 3, 10), CheckOut: day(2024, 3, 10),
			Adults: 2,
		}},
		{"no adults", CreateBookingInput{
			HotelID: 1, RoomID: 1,
			CheckIn: day(2024, 3, 5), CheckOut: day(2024, 3, 10),
			Adults: 0,
		}},
		{"negative children", CreateBookingInput{
			HotelID: 1, RoomID: 1,
			CheckIn: day(2024, 3, 5), CheckOut: day(2024, 3, 10),
			Adults: 1, Children: -1,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &recordingBookingRepo{}
			svc := NewBookingService(repo, nil, nil, nil)

			_, err := svc.CreateBooking(context.Background(), owner, tt.in)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.False(t, repo.getDBCalled, "validation failure must not reach the database")
		})
	}
}

func TestCreateBookingInput_Validate_OK(t *testing.T) {
	in := CreateBookingInput{
		HotelID: 1, RoomID: 1,
		CheckIn: day(2024, 3, 5), CheckOut: day(2024, 3, 10),
		Adults: 2, Children: 0,
	}
	assert.NoError(t, in.validate())
}
