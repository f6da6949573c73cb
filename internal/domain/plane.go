package domain

import (
	"fmt"
	"strings"
)

// Plane owns a fixed rows x columns seat grid. The grid is allocated once by
// NewPlane and never resized; cells are filled by the seat resolver.
type Plane struct {
	ID      string
	Model   string
	Rows    int
	Columns int

	seats [][]*Seat
}

func NewPlane(id, model string, rows, columns int) (*Plane, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: plane id is required", ErrValidation)
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("%w: plane model is required", ErrValidation)
	}
	if rows <= 0 || columns <= 0 {
		return nil, fmt.Errorf("%w: plane rows and columns must be positive", ErrValidation)
	}

	seats := make([][]*Seat, rows)
	for i := range seats {
		seats[i] = make([]*Seat, columns)
	}
	return &Plane{ID: id, Model: model, Rows: rows, Columns: columns, seats: seats}, nil
}

func (p *Plane) Capacity() int {
	return p.Rows * p.Columns
}

func (p *Plane) InBounds(row, column int) bool {
	return row >= 0 && row < p.Rows && column >= 0 && column < p.Columns
}

// Seat returns the seat at the given zero-based coordinate. The second result is
// false for out-of-range coordinates and for cells that were never populated.
func (p *Plane) Seat(row, column int) (*Seat, bool) {
	if !p.InBounds(row, column) {
		return nil, false
	}
	seat := p.seats[row][column]
	return seat, seat != nil
}

func (p *Plane) SetSeat(row, column int, seat *Seat) error {
	if !p.InBounds(row, column) {
		return fmt.Errorf("%w: seat coordinate %d,%d outside %dx%d grid", ErrValidation, row, column, p.Rows, p.Columns)
	}
	p.seats[row][column] = seat
	return nil
}
