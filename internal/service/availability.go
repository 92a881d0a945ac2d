package service

import (
	"math"
	"time"

	"github.com/hotelhub/booking-service/internal/models"
)

// rangesOverlap tests two half-open date ranges [aIn, aOut) and [bIn, bOut).
// A checkout and a check-in on the same day do not conflict.
func rangesOverlap(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && aOut.After(bIn)
}

// overlapsAny reports whether any of the given bookings overlaps the
// candidate range. excludeID skips one booking, used when re-validating an
// existing booking on update; zero excludes nothing.
func overlapsAny(bookings []models.Booking, checkIn, checkOut time.Time, excludeID uint) bool {
	for _, b := range bookings {
		if excludeID != 0 && b.ID == excludeID {
			continue
		}
		if rangesOverlap(checkIn, checkOut, b.CheckIn, b.CheckOut) {
			return true
		}
	}
	return false
}

// nightsBetween counts billable nights. A stay ending any time after midnight
// of a day still bills that day as a full night, so fractional days round up.
func nightsBetween(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}
