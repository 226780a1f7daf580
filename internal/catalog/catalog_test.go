package catalog_test

import (
	"testing"

	"github.com/robertarktes/cinema-booking-manager/internal/catalog"
	"github.com/robertarktes/cinema-booking-manager/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validShowtime(id string) domain.Showtime {
	return domain.Showtime{
		ShowtimeID: id, MovieID: "M1", Screen: "Screen 1",
		Date: "2026-01-01", Time: "19:00",
	}
}

func TestAddMovie(t *testing.T) {
	st := domain.NewState()
	catalog.AddMovie(st, domain.Movie{ID: "M1", Title: "Inception"})
	require.Len(t, st.Movies, 1)
	assert.Equal(t, "Inception", st.Movies[0].Title)
}

func TestScheduleShowtime_CreatesSeatMapAndStoresLayout(t *testing.T) {
	st := domain.NewState()
	require.NoError(t, catalog.ScheduleShowtime(st, validShowtime("ST1"), []string{"A"}, 2))

	require.Len(t, st.Showtimes, 1)
	assert.Equal(t, []string{"A"}, st.Showtimes[0].Rows)
	assert.Equal(t, 2, st.Showtimes[0].Cols)
	require.Len(t, st.SeatMaps["ST1"], 2)
	assert.True(t, st.SeatMaps["ST1"].IsAvailable("A2"))
}

func TestScheduleShowtime_RejectsDuplicateID(t *testing.T) {
	st := domain.NewState()
	require.NoError(t, catalog.ScheduleShowtime(st, validShowtime("ST1"), []string{"A"}, 2))
	err := catalog.ScheduleShowtime(st, validShowtime("ST1"), []string{"A"}, 2)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Len(t, st.Showtimes, 1)
}

func TestScheduleShowtime_RejectsMissingFields(t *testing.T) {
	st := domain.NewState()
	show := validShowtime("ST1")
	show.Date = ""
	err := catalog.ScheduleShowtime(st, show, []string{"A"}, 2)
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, st.Showtimes)
}

func TestScheduleShowtime_RejectsInvalidLayout(t *testing.T) {
	st := domain.NewState()
	err := catalog.ScheduleShowtime(st, validShowtime("ST1"), nil, 2)
	require.ErrorIs(t, err, domain.ErrInvalidLayout)
	assert.Empty(t, st.Showtimes)
	assert.Empty(t, st.SeatMaps)
}

func TestListShowtimes_Filters(t *testing.T) {
	st := domain.NewState()
	first := validShowtime("ST1")
	second := validShowtime("ST2")
	second.MovieID = "M2"
	second.Date = "2026-01-02"
	require.NoError(t, catalog.ScheduleShowtime(st, first, []string{"A"}, 2))
	require.NoError(t, catalog.ScheduleShowtime(st, second, []string{"A"}, 2))

	assert.Len(t, catalog.ListShowtimes(st, "", ""), 2)
	assert.Len(t, catalog.ListShowtimes(st, "M2", ""), 1)
	assert.Len(t, catalog.ListShowtimes(st, "", "2026-01-01"), 1)
	assert.Empty(t, catalog.ListShowtimes(st, "M2", "2026-01-01"))
}

func TestUpdateShowtime_FieldMerge(t *testing.T) {
	st := domain.NewState()
	require.NoError(t, catalog.ScheduleShowtime(st, validShowtime("ST1"), []string{"A"}, 2))

	screen := "Screen 9"
	updated, ok := catalog.UpdateShowtime(st, "ST1", catalog.ShowtimeUpdate{Screen: &screen})
	require.True(t, ok)
	assert.Equal(t, "Screen 9", updated.Screen)
	assert.Equal(t, "M1", updated.MovieID, "untouched fields keep their values")
	assert.Equal(t, "Screen 9", st.Showtimes[0].Screen)

	_, ok = catalog.UpdateShowtime(st, "NOPE", catalog.ShowtimeUpdate{Screen: &screen})
	assert.False(t, ok)
}
