package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeat_StateMachine(t *testing.T) {
	seat, err := NewSeat(0, 0, "1A", SeatClassEconomy, 100)
	require.NoError(t, err)

	assert.False(t, seat.IsReserved())
	assert.ErrorIs(t, seat.MarkUnreserved(), ErrInvalidSeatState)

	require.NoError(t, seat.MarkReserved())
	assert.True(t, seat.IsReserved())
	assert.ErrorIs(t, seat.MarkReserved(), ErrInvalidSeatState)

	require.NoError(t, seat.MarkUnreserved())
	assert.False(t, seat.IsReserved())
}

func TestNewSeat_Validation(t *testing.T) {
	testCases := []struct {
		name  string
		code  string
		class SeatClass
		price float64
	}{
		{name: "blank code", code: "", class: SeatClassEconomy, price: 1},
		{name: "unknown class", code: "1A", class: "FIRST", price: 1},
		{name: "negative price", code: "1A", class: SeatClassBusiness, price: -1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			seat, err := NewSeat(0, 0, tc.code, tc.class, tc.price)
			assert.Nil(t, seat)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestPlane_Grid(t *testing.T) {
	plane, err := NewPlane("TC-JFK", "A320", 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 6, plane.Capacity())

	_, ok := plane.Seat(0, 0)
	assert.False(t, ok, "unpopulated cell")

	seat, err := NewSeat(1, 2, "2C", SeatClassEconomy, 10)
	require.NoError(t, err)
	require.NoError(t, plane.SetSeat(1, 2, seat))

	got, ok := plane.Seat(1, 2)
	assert.True(t, ok)
	assert.Same(t, seat, got)

	_, ok = plane.Seat(2, 0)
	assert.False(t, ok)
	_, ok = plane.Seat(0, -1)
	assert.False(t, ok)
	assert.ErrorIs(t, plane.SetSeat(5, 5, seat), ErrValidation)
}

func TestNewPlane_Validation(t *testing.T) {
	_, err := NewPlane("", "A320", 1, 1)
	assert.ErrorIs(t, err, ErrValidation)
	_, err = NewPlane("P1", " ", 1, 1)
	assert.ErrorIs(t, err, ErrValidation)
	_, err = NewPlane("P1", "A320", 0, 6)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestToRecords(t *testing.T) {
	seat, err := NewSeat(13, 2, "14C", SeatClassEconomy, 100)
	require.NoError(t, err)
	flight := &Flight{Number: "TK101"}
	created := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	active := Reservation{
		Code:      "TK101-P1-14C",
		Flight:    flight,
		Passenger: Passenger{ID: "P1", Name: "Ada", Surname: "Lovelace"},
		Seat:      seat,
		CreatedAt: created,
		Status:    ReservationStatusActive,
	}
	cancelled := active
	cancelled.Code = "TK101-P2-14C"
	cancelled.Passenger.ID = "P2"
	cancelled.Status = ReservationStatusCancelled

	tickets := []Ticket{{
		ID:               "T-TK101-P1-14C",
		ReservationCode:  active.Code,
		Price:            120,
		BaggageAllowance: 15,
		Baggage:          &Baggage{WeightKg: 17},
	}}

	records := ToRecords([]Reservation{active, cancelled}, tickets)
	require.Len(t, records, 2)

	assert.Equal(t, "T-TK101-P1-14C", records[0].TicketID)
	assert.Equal(t, "TK101", records[0].FlightNumber)
	assert.Equal(t, "14C", records[0].SeatCode)
	assert.Equal(t, 17.0, records[0].BaggageWeight)
	assert.True(t, records[0].Active)

	assert.Empty(t, records[1].TicketID)
	assert.False(t, records[1].Active)
}
