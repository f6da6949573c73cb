package domain

import (
	"fmt"
	"sync/atomic"
)

type SeatClass string

const (
	SeatClassEconomy  SeatClass = "ECONOMY"
	SeatClassBusiness SeatClass = "BUSINESS"
)

// Seat is one cell of a plane's seat grid. Seats are created once when the grid is
// populated and only their reservation bit changes afterwards, so they are always
// handled by pointer.
//
// The ledger enforces the FREE -> RESERVED -> FREE state machine but not
// cross-request atomicity: a check followed by a mark is only safe inside the
// reservation coordinator's critical section.
type Seat struct {
	Row       int
	Column    int
	Code      string
	Class     SeatClass
	BasePrice float64

	reserved atomic.Bool
}

func NewSeat(row, column int, code string, class SeatClass, basePrice float64) (*Seat, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: seat code is required", ErrValidation)
	}
	if class != SeatClassEconomy && class != SeatClassBusiness {
		return nil, fmt.Errorf("%w: unknown seat class %q", ErrValidation, class)
	}
	if basePrice < 0 {
		return nil, fmt.Errorf("%w: seat price cannot be negative", ErrValidation)
	}
	return &Seat{Row: row, Column: column, Code: code, Class: class, BasePrice: basePrice}, nil
}

func (s *Seat) IsReserved() bool {
	return s.reserved.Load()
}

// MarkReserved moves the seat from FREE to RESERVED.
func (s *Seat) MarkReserved() error {
	if !s.reserved.CompareAndSwap(false, true) {
		return fmt.Errorf("%w: seat %s is already reserved", ErrInvalidSeatState, s.Code)
	}
	return nil
}

// MarkUnreserved moves the seat from RESERVED back to FREE.
func (s *Seat) MarkUnreserved() error {
	if !s.reserved.CompareAndSwap(true, false) {
		return fmt.Errorf("%w: seat %s is not reserved", ErrInvalidSeatState, s.Code)
	}
	return nil
}

func (s *Seat) String() string {
	return fmt.Sprintf("%s (%s, reserved=%t)", s.Code, s.Class, s.IsReserved())
}

// SeatView is a read-only snapshot of a seat for seat maps and transports.
type SeatView struct {
	Code     string    `json:"code"`
	Row      int       `json:"row"`
	Column   int       `json:"column"`
	Class    SeatClass `json:"class"`
	Price    float64   `json:"price"`
	Reserved bool      `json:"reserved"`
}

func (s *Seat) View() SeatView {
	return SeatView{
		Code:     s.Code,
		Row:      s.Row,
		Column:   s.Column,
		Class:    s.Class,
		Price:    s.BasePrice,
		Reserved: s.IsReserved(),
	}
}
