// Package booking is the ledger: it creates and cancels bookings and keeps
// seat statuses consistent with the ledger entries. Persistence is the
// caller's job; every operation works on the in-memory state container.
package booking

import (
	"github.com/cockroachdb/errors"
	"github.com/robertarktes/cinema-booking-manager/internal/domain"
	"github.com/robertarktes/cinema-booking-manager/internal/observability"
)

type Service struct {
	log observability.Logger
}

func NewService(log observability.Logger) *Service {
	return &Service{log: log}
}

// Create appends a new booking to the ledger and marks every named seat
// sold in the showtime's map. Availability is NOT re-checked here: the
// caller validates it first (the interactive flow does), and the seats may
// legitimately sit in the reserved state from that flow. Returns
// domain.ErrNotFound when the showtime has no seat map and
// domain.ErrInvalidInput when seats is empty.
func (s *Service) Create(st *domain.State, showtimeID string, seats []string, email string, price domain.PriceBreakdown) (domain.Booking, error) {
	if len(seats) == 0 {
		return domain.Booking{}, errors.Wrap(domain.ErrInvalidInput, "booking needs at least one seat")
	}
	sm, ok := st.SeatMaps[showtimeID]
	if !ok {
		return domain.Booking{}, errors.Wrapf(domain.ErrNotFound, "showtime %s has no seat map", showtimeID)
	}

	b := domain.NewBooking(showtimeID, seats, email, price)
	for idTaken(st, b.BookingID) {
		b.BookingID = domain.NewBookingID()
	}

	for _, code := range seats {
		if !sm.Sell(code) {
			s.log.WithField("seat", code).Warn("booked seat not present in seat map")
		}
	}

	st.Bookings = append(st.Bookings, b)
	s.log.WithField("booking_id", b.BookingID).Info("booking created")
	return b, nil
}

// Cancel removes the booking from the ledger and releases its seats back
// to available. Unknown IDs are ordinary user input, so the result is a
// plain false rather than an error. Calling it again for the same ID is
// safe: the entry is gone and nothing is released twice.
func (s *Service) Cancel(st *domain.State, bookingID string) bool {
	for i, b := range st.Bookings {
		if b.BookingID != bookingID {
			continue
		}
		if sm, ok := st.SeatMaps[b.ShowtimeID]; ok {
			for _, code := range b.Seats {
				sm.Release(code)
			}
		}
		st.Bookings = append(st.Bookings[:i], st.Bookings[i+1:]...)
		s.log.WithField("booking_id", bookingID).Info("booking cancelled")
		return true
	}
	return false
}

// ListByCustomer returns the customer's bookings in ledger (insertion)
// order.
func (s *Service) ListByCustomer(st *domain.State, email string) []domain.Booking {
	var out []domain.Booking
	for _, b := range st.Bookings {
		if b.CustomerEmail == email {
			out = append(out, b)
		}
	}
	return out
}

func idTaken(st *domain.State, id string) bool {
	for _, b := range st.Bookings {
		if b.BookingID == id {
			return true
		}
	}
	return false
}
