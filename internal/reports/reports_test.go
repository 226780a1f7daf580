package reports_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/robertarktes/cinema-booking-manager/internal/domain"
	"github.com/robertarktes/cinema-booking-manager/internal/reports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stateWithBooking(t *testing.T) *domain.State {
	t.Helper()
	st := domain.NewState()
	st.Showtimes = append(st.Showtimes, domain.Showtime{
		ShowtimeID: "ST1", MovieID: "M1", Screen: "Screen 1",
		Date: "2026-01-01", Time: "19:00", Rows: []string{"A"}, Cols: 2,
	})
	sm, err := domain.NewSeatMap([]string{"A"}, 2)
	require.NoError(t, err)
	sm.Sell("A1")
	st.SeatMaps["ST1"] = sm
	st.Bookings = append(st.Bookings, domain.Booking{
		BookingID: "AB12CD34", ShowtimeID: "ST1", Seats: []string{"A1"},
		CustomerEmail: "customer@example.com", TotalPrice: 118, Status: domain.BookingStatusConfirmed,
	})
	return st
}

func TestOccupancyByShowtime(t *testing.T) {
	st := stateWithBooking(t)
	report := reports.OccupancyByShowtime(st)

	occ, ok := report["ST1"]
	require.True(t, ok)
	assert.Equal(t, 2, occ.Total)
	assert.Equal(t, 1, occ.Sold)
	assert.InDelta(t, 50.0, occ.Rate, 1e-9)
}

func TestOccupancyByShowtime_MissingSeatMapIsZero(t *testing.T) {
	st := domain.NewState()
	st.Showtimes = append(st.Showtimes, domain.Showtime{ShowtimeID: "ST9"})
	occ := reports.OccupancyByShowtime(st)["ST9"]
	assert.Zero(t, occ.Total)
	assert.Zero(t, occ.Rate)
}

func TestRevenue(t *testing.T) {
	st := stateWithBooking(t)
	st.Bookings = append(st.Bookings, domain.Booking{
		BookingID: "11112222", ShowtimeID: "ST1", Seats: []string{"A2", "A3"}, TotalPrice: 236,
	})

	sum := reports.Revenue(st)
	assert.InDelta(t, 354.0, sum.TotalRevenue, 1e-9)
	assert.Equal(t, 3, sum.TicketsSold)
	assert.InDelta(t, 118.0, sum.AverageTicketPrice, 1e-9)
}

func TestRevenue_EmptyLedger(t *testing.T) {
	sum := reports.Revenue(domain.NewState())
	assert.Zero(t, sum.TotalRevenue)
	assert.Zero(t, sum.AverageTicketPrice)
}

func TestTopMovies(t *testing.T) {
	st := stateWithBooking(t)
	st.Showtimes = append(st.Showtimes, domain.Showtime{ShowtimeID: "ST2", MovieID: "M2"})
	st.Bookings = append(st.Bookings,
		domain.Booking{BookingID: "11112222", ShowtimeID: "ST2", Seats: []string{"B1", "B2"}},
		domain.Booking{BookingID: "33334444", ShowtimeID: "UNKNOWN", Seats: []string{"C1"}},
	)

	top := reports.TopMovies(st, 5)
	require.Len(t, top, 2)
	assert.Equal(t, reports.MovieSales{MovieID: "M2", Tickets: 2}, top[0])
	assert.Equal(t, reports.MovieSales{MovieID: "M1", Tickets: 1}, top[1])

	assert.Len(t, reports.TopMovies(st, 1), 1)
}

func TestWriteReport_SortedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	require.NoError(t, reports.WriteReport(path, map[string]string{
		"ST2": "0.00% full",
		"ST1": "50.00% full",
	}))
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ST1: 50.00% full\nST2: 0.00% full\n", string(content))
}
