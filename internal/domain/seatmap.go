package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// SeatMap is the full grid of seats for one showtime, keyed by seat code
// ("A1"). The set of codes is fixed at creation.
type SeatMap map[string]*Seat

// NewSeatMap builds a full grid with one seat per (row, column) pair, all
// available with the default price multiplier. Returns ErrInvalidLayout when
// rows is empty or cols is not positive.
func NewSeatMap(rows []string, cols int) (SeatMap, error) {
	if len(rows) == 0 || cols <= 0 {
		return nil, ErrInvalidLayout
	}
	sm := make(SeatMap, len(rows)*cols)
	for _, row := range rows {
		for col := 1; col <= cols; col++ {
			code := fmt.Sprintf("%s%d", row, col)
			sm[code] = &Seat{Status: StatusAvailable, PriceMultiplier: 1.0}
		}
	}
	return sm, nil
}

// IsAvailable reports whether the seat exists and is available. Unknown
// codes are simply not bookable, never an error.
func (m SeatMap) IsAvailable(code string) bool {
	seat, ok := m[code]
	return ok && seat.Status == StatusAvailable
}

// Reserve transitions an available seat to reserved. It returns false when
// the seat is unknown or not currently available, so callers can react to a
// failed transition instead of relying on a separate availability check.
func (m SeatMap) Reserve(code string) bool {
	if !m.IsAvailable(code) {
		return false
	}
	m[code].Status = StatusReserved
	return true
}

// MarkSold transitions an available seat straight to sold, with the same
// boolean semantics as Reserve.
func (m SeatMap) MarkSold(code string) bool {
	if !m.IsAvailable(code) {
		return false
	}
	m[code].Status = StatusSold
	return true
}

// Sell forces an existing seat to sold regardless of its current status.
// Booking creation uses it: availability has already been checked by the
// caller and the seat may legitimately be in the reserved state. Returns
// false only when the code is absent.
func (m SeatMap) Sell(code string) bool {
	seat, ok := m[code]
	if !ok {
		return false
	}
	seat.Status = StatusSold
	return true
}

// Release forces an existing seat back to available regardless of status.
// Cancellation relies on this. Returns false only when the code is absent.
func (m SeatMap) Release(code string) bool {
	seat, ok := m[code]
	if !ok {
		return false
	}
	seat.Status = StatusAvailable
	return true
}

// Codes returns every seat code sorted by row label, then column number.
func (m SeatMap) Codes() []string {
	codes := make([]string, 0, len(m))
	for code := range m {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		ri, ci := splitSeatCode(codes[i])
		rj, cj := splitSeatCode(codes[j])
		if ri != rj {
			return ri < rj
		}
		return ci < cj
	})
	return codes
}

// CountByStatus returns how many seats are currently in the given status.
func (m SeatMap) CountByStatus(status SeatStatus) int {
	n := 0
	for _, seat := range m {
		if seat.Status == status {
			n++
		}
	}
	return n
}

// Render produces the textual grid shown in the menu, with rows sorted
// lexicographically and columns numerically. Pure; no mutation.
func (m SeatMap) Render() string {
	rowSet := make(map[string]struct{})
	colSet := make(map[int]struct{})
	for code := range m {
		row, col := splitSeatCode(code)
		rowSet[row] = struct{}{}
		colSet[col] = struct{}{}
	}
	rows := make([]string, 0, len(rowSet))
	for row := range rowSet {
		rows = append(rows, row)
	}
	sort.Strings(rows)
	cols := make([]int, 0, len(colSet))
	for col := range colSet {
		cols = append(cols, col)
	}
	sort.Ints(cols)

	var b strings.Builder
	b.WriteString("\nLEGEND: [.] Available  [R] Reserved  [X] Sold\n")
	b.WriteString("   ")
	for i, col := range cols {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%2d", col)
	}
	b.WriteString("\n")
	for _, row := range rows {
		fmt.Fprintf(&b, "%s  ", row)
		for _, col := range cols {
			code := fmt.Sprintf("%s%d", row, col)
			glyph := " "
			if seat, ok := m[code]; ok {
				switch seat.Status {
				case StatusAvailable:
					glyph = "."
				case StatusReserved:
					glyph = "R"
				default:
					glyph = "X"
				}
			}
			b.WriteString(glyph)
			b.WriteString("  ")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// splitSeatCode separates the row label prefix from the numeric column
// suffix. Codes without a numeric suffix sort with column 0.
func splitSeatCode(code string) (string, int) {
	i := len(code)
	for i > 0 && code[i-1] >= '0' && code[i-1] <= '9' {
		i--
	}
	col, _ := strconv.Atoi(code[i:])
	return code[:i], col
}
