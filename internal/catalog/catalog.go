// Package catalog manages the movie list and the showtime schedule. It is
// plain CRUD over the state container; the booking core only depends on
// the showtimes and seat maps it produces.
package catalog

import (
	"github.com/cockroachdb/errors"
	"github.com/robertarktes/cinema-booking-manager/internal/domain"
)

// AddMovie appends a movie to the catalog.
func AddMovie(st *domain.State, m domain.Movie) {
	st.Movies = append(st.Movies, m)
}

// ScheduleShowtime validates the record, builds its seat map from the
// requested layout and registers both on the state. The layout is stored
// on the showtime so a reload rebuilds the same grid.
func ScheduleShowtime(st *domain.State, show domain.Showtime, rows []string, cols int) error {
	show.Rows, show.Cols = rows, cols
	if err := show.Validate(); err != nil {
		return err
	}
	for _, existing := range st.Showtimes {
		if existing.ShowtimeID == show.ShowtimeID {
			return errors.Wrapf(domain.ErrInvalidInput, "showtime %s already scheduled", show.ShowtimeID)
		}
	}
	sm, err := domain.NewSeatMap(rows, cols)
	if err != nil {
		return err
	}
	st.Showtimes = append(st.Showtimes, show)
	st.SeatMaps[show.ShowtimeID] = sm
	return nil
}

// ListShowtimes filters the schedule by movie and date. Empty filter
// values match everything.
func ListShowtimes(st *domain.State, movieID, date string) []domain.Showtime {
	var out []domain.Showtime
	for _, show := range st.Showtimes {
		if movieID != "" && show.MovieID != movieID {
			continue
		}
		if date != "" && show.Date != date {
			continue
		}
		out = append(out, show)
	}
	return out
}

// ShowtimeUpdate carries the optional fields of a field-merge update. Nil
// fields are left untouched.
type ShowtimeUpdate struct {
	MovieID *string
	Screen  *string
	Date    *string
	Time    *string
}

// UpdateShowtime merges the update into the named showtime. The second
// return value is false when the ID is unknown. The seat layout is fixed
// at scheduling time and cannot be changed here.
func UpdateShowtime(st *domain.State, showtimeID string, upd ShowtimeUpdate) (domain.Showtime, bool) {
	for i := range st.Showtimes {
		show := &st.Showtimes[i]
		if show.ShowtimeID != showtimeID {
			continue
		}
		if upd.MovieID != nil {
			show.MovieID = *upd.MovieID
		}
		if upd.Screen != nil {
			show.Screen = *upd.Screen
		}
		if upd.Date != nil {
			show.Date = *upd.Date
		}
		if upd.Time != nil {
			show.Time = *upd.Time
		}
		return *show, true
	}
	return domain.Showtime{}, false
}
