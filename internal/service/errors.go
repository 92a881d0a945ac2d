package service

import "errors"

var (
	// ErrInvalidInput covers malformed or out-of-range request values:
	// inverted dates, non-positive adult count, unknown status value,
	// missing cancellation reason.
	ErrInvalidInput = errors.New("invalid booking request")

	// ErrInvalidTransition covers requests to move a booking along an edge
	// the state machine does not have, including any move out of a terminal
	// status.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrRoomUnavailable is the date-overlap conflict. It is distinct from
	// validation so callers can offer a "try different dates" path.
	ErrRoomUnavailable = errors.New("room is not available for the selected dates")

	ErrHotelNotFound   = errors.New("hotel not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrBookingNotFound = errors.New("booking not found")

	// ErrRoomNumberTaken: the room number already exists within the hotel.
	ErrRoomNumberTaken = errors.New("room number already exists in this hotel")

	ErrForbidden = errors.New("not authorized")
)
