// Package reports builds read-only views over the state container.
// Sold-seat counts come from the booking ledger, not the seat maps, since
// bookings are the source of truth.
package reports

import (
	"fmt"
	"os"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/robertarktes/cinema-booking-manager/internal/domain"
)

// Occupancy summarises one showtime's seat usage. Rate is a percentage.
type Occupancy struct {
	Total int
	Sold  int
	Rate  float64
}

// OccupancyByShowtime computes occupancy for every scheduled showtime.
func OccupancyByShowtime(st *domain.State) map[string]Occupancy {
	out := make(map[string]Occupancy, len(st.Showtimes))
	for _, show := range st.Showtimes {
		total := len(st.SeatMaps[show.ShowtimeID])
		sold := 0
		for _, b := range st.Bookings {
			if b.ShowtimeID == show.ShowtimeID {
				sold += len(b.Seats)
			}
		}
		rate := 0.0
		if total > 0 {
			rate = float64(sold) / float64(total) * 100
		}
		out[show.ShowtimeID] = Occupancy{Total: total, Sold: sold, Rate: rate}
	}
	return out
}

// RevenueSummary aggregates earnings across the whole ledger.
type RevenueSummary struct {
	TotalRevenue       float64
	TicketsSold        int
	AverageTicketPrice float64
}

// Revenue sums the ledger's totals and ticket counts.
func Revenue(st *domain.State) RevenueSummary {
	var sum RevenueSummary
	for _, b := range st.Bookings {
		sum.TotalRevenue += b.TotalPrice
		sum.TicketsSold += len(b.Seats)
	}
	if sum.TicketsSold > 0 {
		sum.AverageTicketPrice = sum.TotalRevenue / float64(sum.TicketsSold)
	}
	return sum
}

// MovieSales is one row of the top-movies ranking.
type MovieSales struct {
	MovieID string
	Tickets int
}

// TopMovies ranks movies by tickets sold, descending, ties broken by movie
// ID for a stable order. Bookings for showtimes missing from the schedule
// are ignored.
func TopMovies(st *domain.State, limit int) []MovieSales {
	byShowtime := make(map[string]string, len(st.Showtimes))
	for _, show := range st.Showtimes {
		byShowtime[show.ShowtimeID] = show.MovieID
	}
	sales := make(map[string]int)
	for _, b := range st.Bookings {
		movieID, ok := byShowtime[b.ShowtimeID]
		if !ok {
			continue
		}
		sales[movieID] += len(b.Seats)
	}
	out := make([]MovieSales, 0, len(sales))
	for id, n := range sales {
		out = append(out, MovieSales{MovieID: id, Tickets: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Tickets != out[j].Tickets {
			return out[i].Tickets > out[j].Tickets
		}
		return out[i].MovieID < out[j].MovieID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// WriteReport exports key/value report lines to a plain-text file, keys
// sorted for a stable layout.
func WriteReport(path string, lines map[string]string) error {
	keys := make([]string, 0, len(lines))
	for k := range lines {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	content := ""
	for _, k := range keys {
		content += fmt.Sprintf("%s: %s\n", k, lines[k])
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errors.Wrapf(err, "write report %s", path)
	}
	return nil
}
