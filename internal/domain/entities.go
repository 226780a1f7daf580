package domain

// SeatStatus is the lifecycle state of a single seat. The values are
// persisted verbatim in the JSON files, so they stay lowercase.
type SeatStatus string

const (
	StatusAvailable SeatStatus = "available"
	StatusReserved  SeatStatus = "reserved"
	StatusSold      SeatStatus = "sold"
)

// Seat is one bookable seat inside a showtime's seat map. Seats are never
// deleted; they only move between statuses.
type Seat struct {
	Status          SeatStatus `json:"status"`
	PriceMultiplier float64    `json:"price_multiplier"`
}

// Movie is a catalog entry. The catalog lives in its own JSON file and is
// not part of the booking core.
type Movie struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Showtime is a scheduled screening. Rows and Cols record the seat layout
// configured at scheduling time so that a reload can rebuild the exact grid
// instead of assuming a fixed one. Records written before layout persistence
// leave them empty and fall back to the store's default grid.
type Showtime struct {
	ShowtimeID string   `json:"showtime_id" validate:"required"`
	MovieID    string   `json:"movie_id" validate:"required"`
	Screen     string   `json:"theatre_screen" validate:"required"`
	Date       string   `json:"date" validate:"required"`
	Time       string   `json:"time" validate:"required"`
	Rows       []string `json:"rows,omitempty"`
	Cols       int      `json:"cols,omitempty"`
}

// Booking is one confirmed purchase of seats for a showtime. Only the final
// total is embedded; the full price breakdown is a transient value.
type Booking struct {
	BookingID     string   `json:"booking_id"`
	ShowtimeID    string   `json:"showtime_id"`
	Seats         []string `json:"seats"`
	CustomerEmail string   `json:"customer_email"`
	TotalPrice    float64  `json:"total_price"`
	Status        string   `json:"status"`
}

// State is the single mutable container for everything the system tracks.
// It is passed by pointer to every operation that reads or mutates it, so
// mutation sites are visible in signatures. SeatMaps is keyed by showtime ID
// and is derived state: on load it is reconstructed from showtimes plus
// bookings, never read from disk.
type State struct {
	Movies    []Movie
	Showtimes []Showtime
	SeatMaps  map[string]SeatMap
	Bookings  []Booking
}

// NewState returns an empty state with the seat map index initialized.
func NewState() *State {
	return &State{SeatMaps: make(map[string]SeatMap)}
}
