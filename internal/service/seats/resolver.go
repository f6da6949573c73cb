// Package seats maps human seat codes such as "14C" onto a plane's seat grid
// and back, populates grids and counts free seats.
package seats

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Domenick1991/airseats/internal/domain"
)

// MaxColumns is the widest grid a single column letter can address.
const MaxColumns = 26

// Code returns the human code for a zero-based grid coordinate: 1-based row
// number followed by an 'A'-based column letter.
func Code(row, column int) string {
	return strconv.Itoa(row+1) + string(rune('A'+column))
}

// Populate fills every grid cell with a seat. Rows below businessRows are
// BUSINESS at baseFare*businessMultiplier, the rest ECONOMY at baseFare.
// businessRows is clamped into [0, plane.Rows].
func Populate(plane *domain.Plane, businessRows int, baseFare, businessMultiplier float64) error {
	if plane == nil {
		return fmt.Errorf("%w: plane is required", domain.ErrValidation)
	}
	if plane.Columns > MaxColumns {
		return fmt.Errorf("%w: plane %s has %d columns, at most %d are addressable", domain.ErrValidation, plane.ID, plane.Columns, MaxColumns)
	}
	if baseFare < 0 {
		return fmt.Errorf("%w: base fare cannot be negative", domain.ErrValidation)
	}
	if businessMultiplier <= 0 {
		return fmt.Errorf("%w: business multiplier must be positive", domain.ErrValidation)
	}

	businessRows = max(0, min(businessRows, plane.Rows))

	for row := 0; row < plane.Rows; row++ {
		class, price := domain.SeatClassEconomy, baseFare
		if row < businessRows {
			class, price = domain.SeatClassBusiness, baseFare*businessMultiplier
		}
		for col := 0; col < plane.Columns; col++ {
			seat, err := domain.NewSeat(row, col, Code(row, col), class, price)
			if err != nil {
				return err
			}
			if err := plane.SetSeat(row, col, seat); err != nil {
				return err
			}
		}
	}
	return nil
}

// Parse splits a seat code into a zero-based coordinate. It reports false for
// malformed input and never validates against a particular grid.
func Parse(code string) (row, column int, ok bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) < 2 {
		return 0, 0, false
	}

	letter := code[len(code)-1]
	if letter < 'A' || letter > 'Z' {
		return 0, 0, false
	}

	number, err := strconv.Atoi(code[:len(code)-1])
	if err != nil || number < 1 {
		return 0, 0, false
	}
	return number - 1, int(letter - 'A'), true
}

// Resolve looks a seat up by code. Malformed codes and coordinates outside the
// grid give a not-found result; it is a lookup, not a validator.
func Resolve(plane *domain.Plane, code string) (*domain.Seat, bool) {
	if plane == nil {
		return nil, false
	}
	row, col, ok := Parse(code)
	if !ok {
		return nil, false
	}
	return plane.Seat(row, col)
}

// AvailableCount counts seats that are not reserved.
func AvailableCount(plane *domain.Plane) int {
	count := 0
	forEach(plane, func(seat *domain.Seat) {
		if !seat.IsReserved() {
			count++
		}
	})
	return count
}

// Available enumerates seats that currently look free, in grid order. The
// answer may be stale by the time the caller acts on it.
func Available(plane *domain.Plane) []*domain.Seat {
	free := make([]*domain.Seat, 0, plane.Capacity())
	forEach(plane, func(seat *domain.Seat) {
		if !seat.IsReserved() {
			free = append(free, seat)
		}
	})
	return free
}

// Occupancy returns the reservation bitmap indexed by row*Columns+column.
// Unpopulated cells count as free.
func Occupancy(plane *domain.Plane) []bool {
	bitmap := make([]bool, plane.Capacity())
	forEach(plane, func(seat *domain.Seat) {
		bitmap[seat.Row*plane.Columns+seat.Column] = seat.IsReserved()
	})
	return bitmap
}

func SeatMap(plane *domain.Plane) []domain.SeatView {
	views := make([]domain.SeatView, 0, plane.Capacity())
	forEach(plane, func(seat *domain.Seat) {
		views = append(views, seat.View())
	})
	return views
}

func forEach(plane *domain.Plane, fn func(*domain.Seat)) {
	if plane == nil {
		return
	}
	for row := 0; row < plane.Rows; row++ {
		for col := 0; col < plane.Columns; col++ {
			if seat, ok := plane.Seat(row, col); ok {
				fn(seat)
			}
		}
	}
}
