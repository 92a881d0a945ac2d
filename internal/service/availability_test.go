package service

import (
	"testing"
	"time"

	"github.com/hotelhub/booking-service/internal/models"
	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRangesOverlap(t *testing.T) {
	tests := []struct {
		name                   string
		aIn, aOut, bIn, bOut   time.Time
		want                   bool
	}{
		{
			name: "back-to-back stays do not conflict",
			aIn:  day(2024, 1, 10), aOut: day(2024, 1, 15),
			bIn: day(2024, 1, 15), bOut: day(2024, 1, 20),
			want: false,
		},
		{
			name: "partial overlap conflicts",
			aIn:  day(2024, 1, 10), aOut: day(2024, 1, 15),
			bIn: day(2024, 1, 12), bOut: day(2024, 1, 18),
			want: true,
		},
		{
			name: "contained range conflicts",
			aIn:  day(2024, 1, 11), aOut: day(2024, 1, 13),
			bIn: day(2024, 1, 10), bOut: day(2024, 1, 15),
			want: true,
		},
		{
			name: "identical range conflicts",
			aIn:  day(2024, 1, 10), aOut: day(2024, 1, 15),
			bIn: day(2024, 1, 10), bOut: day(2024, 1, 15),
			want: true,
		},
		{
			name: "disjoint ranges do not conflict",
			aIn:  day(2024, 1, 1), aOut: day(2024, 1, 5),
			bIn: day(2024, 1, 10), bOut: day(2024, 1, 15),
			want: false,
		},
		{
			name: "checkout on the other check-in day does not conflict",
			aIn:  day(2024, 1, 5), aOut: day(2024, 1, 10),
			bIn: day(2024, 1, 10), bOut: day(2024, 1, 12),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rangesOverlap(tt.aIn, tt.aOut, tt.bIn, tt.bOut))
			// overlap is symmetric
			assert.Equal(t, tt.want, rangesOverlap(tt.bIn, tt.bOut, tt.aIn, tt.aOut))
		})
	}
}

func TestOverlapsAny(t *testing.T) {
	bookings := []models.Booking{
		{ID: 1, CheckIn: day(2024, 1, 10), CheckOut: day(2024, 1, 15)},
		{ID: 2, CheckIn: day(2024, 2, 1), CheckOut: day(2024, 2, 5)},
	}

	assert.True(t, overlapsAny(bookings, day(2024, 1, 12), day(2024, 1, 18), 0))
	assert.False(t, overlapsAny(bookings, day(2024, 1, 15), day(2024, 1, 20), 0))
	assert.False(t, overlapsAny(nil, day(2024, 1, 1), day(2024, 12, 31), 0))

	// excluding the clashing booking clears the conflict
	assert.False(t, overlapsAny(bookings, day(2024, 1, 12), day(2024, 1, 18), 1))
	assert.True(t, overlapsAny(bookings, day(2024, 1, 12), day(2024, 2, 2), 1))
}

func TestNightsBetween(t *testing.T) {
	assert.Equal(t, 3, nightsBetween(day(2024, 3, 1), day(2024, 3, 4)))
	assert.Equal(t, 1, nightsBetween(day(2024, 3, 1), day(2024, 3, 2)))

	// fractional days round up to a full night
	checkIn := time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC)
	checkOut := time.Date(2024, 3, 4, 11, 0, 0, 0, time.UTC)
	assert.Equal(t, 3, nightsBetween(checkIn, checkOut))

	short := time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)
	nextMorning := time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, nightsBetween(short, nextMorning))
}
