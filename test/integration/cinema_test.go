package integration_test

import (
	"io"
	"testing"

	"github.com/robertarktes/cinema-booking-manager/internal/adapters/jsonstore"
	"github.com/robertarktes/cinema-booking-manager/internal/booking"
	"github.com/robertarktes/cinema-booking-manager/internal/catalog"
	"github.com/robertarktes/cinema-booking-manager/internal/domain"
	"github.com/robertarktes/cinema-booking-manager/internal/observability"
	"github.com/robertarktes/cinema-booking-manager/internal/reports"
)

// Full booking lifecycle: schedule a 1x2 showtime, book a seat, check
// occupancy, survive a save/load cycle, cancel, and check occupancy again.
func TestBookingLifecycle(t *testing.T) {
	dir := t.TempDir()
	logger := observability.NewLoggerWithOutput(io.Discard)
	store := jsonstore.New(dir, []string{"A", "B", "C", "D"}, 10, logger)
	svc := booking.NewService(logger)

	st, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}

	catalog.AddMovie(st, domain.Movie{ID: "M1", Title: "Inception"})
	show := domain.Showtime{
		ShowtimeID: "ST1", MovieID: "M1", Screen: "Screen 1",
		Date: "2026-01-01", Time: "19:00",
	}
	if err := catalog.ScheduleShowtime(st, show, []string{"A"}, 2); err != nil {
		t.Fatal(err)
	}

	sm := st.SeatMaps["ST1"]
	if !sm.IsAvailable("A1") {
		t.Fatal("A1 should start available")
	}
	if !sm.Reserve("A1") {
		t.Fatal("reserve A1 failed")
	}

	price := domain.CalculateTotal([]string{"A1"}, map[string]float64{"standard": 100}, 0.18, nil)
	b, err := svc.Create(st, "ST1", []string{"A1"}, "customer@example.com", price)
	if err != nil {
		t.Fatal(err)
	}
	if b.TotalPrice != 118.0 {
		t.Fatalf("expected total 118.0, got %v", b.TotalPrice)
	}

	occ := reports.OccupancyByShowtime(st)["ST1"]
	if occ.Sold != 1 || occ.Total != 2 || occ.Rate != 50.0 {
		t.Fatalf("expected 1/2 sold at 50.00%%, got %+v", occ)
	}

	if err := store.Save(st); err != nil {
		t.Fatal(err)
	}

	// A fresh load must rebuild the 1x2 grid and replay the booking.
	reloaded, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	rsm := reloaded.SeatMaps["ST1"]
	if len(rsm) != 2 {
		t.Fatalf("expected 2 seats after reload, got %d", len(rsm))
	}
	if rsm.IsAvailable("A1") {
		t.Fatal("A1 must be sold after reload")
	}
	if !rsm.IsAvailable("A2") {
		t.Fatal("A2 must stay available after reload")
	}

	if !svc.Cancel(reloaded, b.BookingID) {
		t.Fatal("cancel failed")
	}
	if !rsm.IsAvailable("A1") {
		t.Fatal("A1 must be released after cancellation")
	}
	occ = reports.OccupancyByShowtime(reloaded)["ST1"]
	if occ.Sold != 0 {
		t.Fatalf("expected 0 sold after cancellation, got %d", occ.Sold)
	}
	if svc.Cancel(reloaded, b.BookingID) {
		t.Fatal("second cancel must report not found")
	}

	if err := store.Save(reloaded); err != nil {
		t.Fatal(err)
	}
	final, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(final.Bookings) != 0 {
		t.Fatalf("expected empty ledger, got %d entries", len(final.Bookings))
	}
	if !final.SeatMaps["ST1"].IsAvailable("A1") {
		t.Fatal("A1 must be available in the persisted state")
	}
}
