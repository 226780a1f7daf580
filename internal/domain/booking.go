package domain

import (
	"strings"

	"github.com/google/uuid"
)

// BookingStatusConfirmed is the status of every active ledger entry.
// Cancelled bookings are removed from the ledger, not flagged.
const BookingStatusConfirmed = "Confirmed"

// NewBooking populates a booking record with a fresh ID and the final
// total from the price breakdown. It does not touch any seat map; the
// booking service owns the seat transitions.
func NewBooking(showtimeID string, seats []string, email string, price PriceBreakdown) Booking {
	return Booking{
		BookingID:     NewBookingID(),
		ShowtimeID:    showtimeID,
		Seats:         seats,
		CustomerEmail: email,
		TotalPrice:    price.Total,
		Status:        BookingStatusConfirmed,
	}
}

// NewBookingID returns a short booking token: the first eight hex digits of
// a random UUID, uppercased.
func NewBookingID() string {
	return strings.ToUpper(uuid.New().String()[:8])
}
