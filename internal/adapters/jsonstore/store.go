// Package jsonstore is the durability layer: one JSON file per collection
// under a base data directory. Showtimes and bookings are the source of
// truth; seat maps are written for inspection but always reconstructed on
// load by replaying bookings onto freshly built grids.
package jsonstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/robertarktes/cinema-booking-manager/internal/domain"
	"github.com/robertarktes/cinema-booking-manager/internal/observability"
	"golang.org/x/sync/errgroup"
)

const (
	showtimesFile = "showtimes.json"
	bookingsFile  = "bookings.json"
	seatMapsFile  = "seat_maps.json"
	moviesFile    = "movies.json"
)

type Store struct {
	baseDir     string
	defaultRows []string
	defaultCols int
	log         observability.Logger
}

// New returns a store rooted at baseDir. The default layout is only used
// to rebuild seat maps for showtime records that predate layout
// persistence.
func New(baseDir string, defaultRows []string, defaultCols int, log observability.Logger) *Store {
	return &Store{baseDir: baseDir, defaultRows: defaultRows, defaultCols: defaultCols, log: log}
}

// Load reads showtimes, bookings and movies from disk, treating a missing
// file as an empty collection, then derives the seat maps: a fresh grid per
// showtime (its persisted layout, or the default grid for legacy records),
// with every booking's seats replayed as sold. Bookings that reference an
// unknown showtime or seat are kept in the ledger but logged.
func (s *Store) Load() (*domain.State, error) {
	st := domain.NewState()
	if err := readArray(filepath.Join(s.baseDir, showtimesFile), &st.Showtimes); err != nil {
		return nil, err
	}
	if err := readArray(filepath.Join(s.baseDir, bookingsFile), &st.Bookings); err != nil {
		return nil, err
	}
	if err := readArray(filepath.Join(s.baseDir, moviesFile), &st.Movies); err != nil {
		return nil, err
	}

	for _, show := range st.Showtimes {
		if !ValidateShowtime(show) {
			s.log.WithField("showtime_id", show.ShowtimeID).Warn("showtime record is missing required fields")
		}
		rows, cols := show.Rows, show.Cols
		if len(rows) == 0 || cols <= 0 {
			rows, cols = s.defaultRows, s.defaultCols
		}
		sm, err := domain.NewSeatMap(rows, cols)
		if err != nil {
			return nil, errors.Wrapf(err, "rebuild seat map for showtime %s", show.ShowtimeID)
		}
		st.SeatMaps[show.ShowtimeID] = sm
	}

	for _, b := range st.Bookings {
		sm, ok := st.SeatMaps[b.ShowtimeID]
		if !ok {
			s.log.WithField("booking_id", b.BookingID).Warn("booking references unknown showtime")
			continue
		}
		for _, code := range b.Seats {
			if !sm.Sell(code) {
				s.log.WithField("booking_id", b.BookingID).WithField("seat", code).Warn("booked seat outside showtime grid")
			}
		}
	}

	return st, nil
}

// Save persists all four collections. Each file is written to a temp path
// and renamed into place, so a load after save always sees complete files.
// There is still no cross-file atomicity; an interruption between renames
// can leave the collections mutually inconsistent.
func (s *Store) Save(st *domain.State) error {
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return errors.Wrapf(err, "create data dir %s", s.baseDir)
	}
	files := map[string]interface{}{
		showtimesFile: st.Showtimes,
		bookingsFile:  st.Bookings,
		seatMapsFile:  st.SeatMaps,
		moviesFile:    st.Movies,
	}
	for name, data := range files {
		if err := writeJSON(filepath.Join(s.baseDir, name), data); err != nil {
			return err
		}
	}
	return nil
}

// Backup copies every *.json data file into backupDir under a timestamped
// name and returns the created paths sorted. The copies are independent,
// so they run concurrently; the backup never touches the live files.
func (s *Store) Backup(backupDir string) ([]string, error) {
	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create backup dir %s", backupDir)
	}
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, errors.Wrapf(err, "read data dir %s", s.baseDir)
	}

	stamp := time.Now().Format("20060102_150405")
	var created []string
	var g errgroup.Group
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		src := filepath.Join(s.baseDir, entry.Name())
		dst := filepath.Join(backupDir, stamp+"_"+entry.Name())
		created = append(created, dst)
		g.Go(func() error {
			return copyFile(src, dst)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.Strings(created)
	return created, nil
}

// ExportTicket writes the plain-text ticket file for a booking into dir
// and returns its path.
func (s *Store) ExportTicket(dir string, b domain.Booking) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "create ticket dir %s", dir)
	}
	content := "TICKET ID: " + b.BookingID + "\n" +
		"SHOW: " + b.ShowtimeID + "\n" +
		"SEATS: " + strings.Join(b.Seats, ",") + "\n" +
		"TOTAL: " + formatAmount(b.TotalPrice) + "\n"
	path := filepath.Join(dir, "ticket_"+b.BookingID+".txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", errors.Wrapf(err, "write ticket %s", path)
	}
	return path, nil
}

// ValidateShowtime reports whether the record carries all required
// business fields.
func ValidateShowtime(s domain.Showtime) bool {
	return s.Validate() == nil
}

func readArray[T any](path string, dst *[]T) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "read %s", path)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return errors.Wrapf(err, "parse %s", filepath.Base(path))
	}
	return nil
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return errors.Wrapf(err, "marshal %s", filepath.Base(path))
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", tmp)
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.Wrapf(err, "rename %s", path)
	}
	return nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return errors.Wrapf(err, "read %s", src)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", dst)
	}
	return nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
