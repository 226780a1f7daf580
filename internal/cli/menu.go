// Package cli is the two-level text menu: role selection on top, customer
// and admin actions below. It owns no business logic; it validates input,
// calls into the catalog, ledger and reports, and persists through the
// store after every mutation.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/robertarktes/cinema-booking-manager/internal/adapters/jsonstore"
	"github.com/robertarktes/cinema-booking-manager/internal/booking"
	"github.com/robertarktes/cinema-booking-manager/internal/catalog"
	"github.com/robertarktes/cinema-booking-manager/internal/config"
	"github.com/robertarktes/cinema-booking-manager/internal/domain"
	"github.com/robertarktes/cinema-booking-manager/internal/observability"
	"github.com/robertarktes/cinema-booking-manager/internal/reports"
)

type Menu struct {
	in    *bufio.Scanner
	out   io.Writer
	cfg   *config.Config
	store *jsonstore.Store
	svc   *booking.Service
	state *domain.State
	log   observability.Logger

	// mu serializes state mutations and saves so SaveState can run from
	// another goroutine while Run is blocked on input.
	mu sync.Mutex
}

func New(in io.Reader, out io.Writer, cfg *config.Config, store *jsonstore.Store, svc *booking.Service, state *domain.State, log observability.Logger) *Menu {
	return &Menu{
		in:    bufio.NewScanner(in),
		out:   out,
		cfg:   cfg,
		store: store,
		svc:   svc,
		state: state,
		log:   log,
	}
}

// Run drives the main loop until the user exits or input ends. Both exit
// paths persist the state first.
func (m *Menu) Run() error {
	for {
		fmt.Fprintln(m.out, "\n=== MOVIE TICKET BOOKING SYSTEM ===")
		fmt.Fprintln(m.out, "1. Customer Menu")
		fmt.Fprintln(m.out, "2. Admin Menu")
		fmt.Fprintln(m.out, "3. Exit")
		choice, ok := m.prompt("Select Role: ")
		if !ok {
			return m.saveAndClose()
		}
		switch choice {
		case "1":
			if !m.customerMenu() {
				return m.saveAndClose()
			}
		case "2":
			if !m.adminMenu() {
				return m.saveAndClose()
			}
		case "3":
			return m.saveAndClose()
		}
	}
}

func (m *Menu) saveAndClose() error {
	if err := m.SaveState(); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "System closed. Data saved.")
	return nil
}

// SaveState persists the current state. It is safe to call from another
// goroutine, such as a signal handler, while Run is active.
func (m *Menu) SaveState() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.Save(m.state)
}

// customerMenu returns false when input ended and the caller should shut
// down.
func (m *Menu) customerMenu() bool {
	for {
		fmt.Fprintln(m.out, "\n--- CUSTOMER MENU ---")
		fmt.Fprintln(m.out, "1. List Showtimes & Book Ticket")
		fmt.Fprintln(m.out, "2. Cancel Booking")
		fmt.Fprintln(m.out, "3. My Bookings")
		fmt.Fprintln(m.out, "4. Back to Main Menu")
		choice, ok := m.prompt("Select: ")
		if !ok {
			return false
		}
		switch choice {
		case "1":
			if !m.bookTicket() {
				return false
			}
		case "2":
			if !m.cancelBooking() {
				return false
			}
		case "3":
			if !m.myBookings() {
				return false
			}
		case "4":
			return true
		}
	}
}

func (m *Menu) bookTicket() bool {
	for _, show := range catalog.ListShowtimes(m.state, "", "") {
		fmt.Fprintf(m.out, "%s %s %s - %s\n", show.ShowtimeID, show.Date, show.Time, show.Screen)
	}

	sid, ok := m.prompt("\nEnter Showtime ID: ")
	if !ok {
		return false
	}
	sm, found := m.state.SeatMaps[sid]
	if !found {
		fmt.Fprintln(m.out, "ERROR: Invalid Showtime ID.")
		return true
	}

	fmt.Fprint(m.out, sm.Render())

	code, ok := m.prompt("Select Seat: ")
	if !ok {
		return false
	}
	code = strings.ToUpper(code)
	if !sm.IsAvailable(code) {
		fmt.Fprintln(m.out, "ERROR: Seat is already sold, reserved, or invalid.")
		return true
	}

	confirm, ok := m.prompt(fmt.Sprintf("Confirm booking for %s? (y/n): ", code))
	if !ok {
		return false
	}
	if !strings.EqualFold(confirm, "y") {
		return true
	}

	m.mu.Lock()
	reserved := sm.Reserve(code)
	m.mu.Unlock()
	if !reserved {
		fmt.Fprintln(m.out, "ERROR: Seat could not be reserved.")
		return true
	}

	email, ok := m.prompt("Enter email: ")
	if !ok {
		m.mu.Lock()
		sm.Release(code)
		m.mu.Unlock()
		return false
	}

	price := domain.CalculateTotal([]string{code}, map[string]float64{"standard": m.cfg.StandardPrice}, m.cfg.TaxRate, nil)
	m.mu.Lock()
	b, err := m.svc.Create(m.state, sid, []string{code}, email, price)
	if err != nil {
		sm.Release(code)
	}
	m.mu.Unlock()
	if err != nil {
		fmt.Fprintf(m.out, "ERROR: %v\n", err)
		return true
	}
	m.persist()

	if path, err := m.store.ExportTicket(m.cfg.TicketDir, b); err != nil {
		m.log.WithField("booking_id", b.BookingID).Warn("ticket export failed: ", err)
	} else {
		fmt.Fprintf(m.out, "Ticket written to %s\n", path)
	}
	fmt.Fprintf(m.out, "Success! Booking ID: %s (total %.2f)\n", b.BookingID, b.TotalPrice)
	return true
}

func (m *Menu) cancelBooking() bool {
	bid, ok := m.prompt("Enter Booking ID to cancel: ")
	if !ok {
		return false
	}
	confirm, ok := m.prompt(fmt.Sprintf("Are you sure you want to cancel %s? (y/n): ", bid))
	if !ok {
		return false
	}
	if !strings.EqualFold(confirm, "y") {
		return true
	}
	m.mu.Lock()
	cancelled := m.svc.Cancel(m.state, bid)
	m.mu.Unlock()
	if cancelled {
		m.persist()
		fmt.Fprintln(m.out, "Cancellation successful.")
	} else {
		fmt.Fprintln(m.out, "ERROR: Booking ID not found.")
	}
	return true
}

func (m *Menu) myBookings() bool {
	email, ok := m.prompt("Enter email: ")
	if !ok {
		return false
	}
	list := m.svc.ListByCustomer(m.state, email)
	if len(list) == 0 {
		fmt.Fprintln(m.out, "No bookings found.")
		return true
	}
	for _, b := range list {
		fmt.Fprintf(m.out, "%s %s seats=%s total=%.2f %s\n",
			b.BookingID, b.ShowtimeID, strings.Join(b.Seats, ","), b.TotalPrice, b.Status)
	}
	return true
}

func (m *Menu) adminMenu() bool {
	for {
		fmt.Fprintln(m.out, "\n--- ADMIN MENU ---")
		fmt.Fprintln(m.out, "1. Add Movie")
		fmt.Fprintln(m.out, "2. Schedule Showtime")
		fmt.Fprintln(m.out, "3. View Occupancy Report")
		fmt.Fprintln(m.out, "4. Revenue Summary")
		fmt.Fprintln(m.out, "5. Backup Data")
		fmt.Fprintln(m.out, "6. Back to Main Menu")
		choice, ok := m.prompt("Select: ")
		if !ok {
			return false
		}
		switch choice {
		case "1":
			if !m.addMovie() {
				return false
			}
		case "2":
			if !m.scheduleShowtime() {
				return false
			}
		case "3":
			m.occupancyReport()
		case "4":
			m.revenueSummary()
		case "5":
			m.backup()
		case "6":
			return true
		}
	}
}

func (m *Menu) addMovie() bool {
	id, ok := m.prompt("ID: ")
	if !ok {
		return false
	}
	title, ok := m.prompt("Title: ")
	if !ok {
		return false
	}
	m.mu.Lock()
	catalog.AddMovie(m.state, domain.Movie{ID: id, Title: title})
	m.mu.Unlock()
	m.persist()
	fmt.Fprintln(m.out, "Movie added.")
	return true
}

func (m *Menu) scheduleShowtime() bool {
	show := domain.Showtime{}
	var ok bool
	if show.ShowtimeID, ok = m.prompt("Showtime ID: "); !ok {
		return false
	}
	if show.MovieID, ok = m.prompt("Movie ID: "); !ok {
		return false
	}
	if show.Screen, ok = m.prompt("Screen Name: "); !ok {
		return false
	}
	if show.Date, ok = m.prompt("Date (YYYY-MM-DD): "); !ok {
		return false
	}
	if show.Time, ok = m.prompt("Time (HH:MM): "); !ok {
		return false
	}

	rowsRaw, ok := m.prompt(fmt.Sprintf("Rows (default %s): ", strings.Join(m.cfg.DefaultRows, ",")))
	if !ok {
		return false
	}
	rows := m.cfg.DefaultRows
	if rowsRaw != "" {
		rows = nil
		for _, part := range strings.Split(rowsRaw, ",") {
			if part = strings.ToUpper(strings.TrimSpace(part)); part != "" {
				rows = append(rows, part)
			}
		}
	}
	colsRaw, ok := m.prompt(fmt.Sprintf("Columns (default %d): ", m.cfg.DefaultCols))
	if !ok {
		return false
	}
	cols := m.cfg.DefaultCols
	if colsRaw != "" {
		parsed, err := strconv.Atoi(colsRaw)
		if err != nil {
			fmt.Fprintln(m.out, "ERROR: Columns must be a number.")
			return true
		}
		cols = parsed
	}

	m.mu.Lock()
	err := catalog.ScheduleShowtime(m.state, show, rows, cols)
	m.mu.Unlock()
	if err != nil {
		fmt.Fprintf(m.out, "ERROR: %v\n", err)
		return true
	}
	m.persist()
	fmt.Fprintln(m.out, "Showtime scheduled.")
	return true
}

func (m *Menu) occupancyReport() {
	report := reports.OccupancyByShowtime(m.state)
	for _, show := range m.state.Showtimes {
		occ := report[show.ShowtimeID]
		fmt.Fprintf(m.out, "Show %s: %.2f%% full (%d/%d seats)\n", show.ShowtimeID, occ.Rate, occ.Sold, occ.Total)
	}
}

func (m *Menu) revenueSummary() {
	sum := reports.Revenue(m.state)
	fmt.Fprintf(m.out, "Total revenue: %.2f\n", sum.TotalRevenue)
	fmt.Fprintf(m.out, "Tickets sold: %d\n", sum.TicketsSold)
	fmt.Fprintf(m.out, "Average ticket price: %.2f\n", sum.AverageTicketPrice)
}

func (m *Menu) backup() {
	files, err := m.store.Backup(m.cfg.BackupDir)
	if err != nil {
		fmt.Fprintf(m.out, "ERROR: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "Backed up %d files to %s\n", len(files), m.cfg.BackupDir)
}

// persist saves the whole state after a mutation; a failed save is
// reported but does not abort the session.
func (m *Menu) persist() {
	if err := m.SaveState(); err != nil {
		m.log.Error("save failed: ", err)
		fmt.Fprintln(m.out, "WARNING: could not save data.")
	}
}

// prompt prints the label and reads one trimmed line. ok is false when
// input has ended.
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}
