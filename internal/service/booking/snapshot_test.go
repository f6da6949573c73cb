package booking

import (
	"context"
	"testing"

	"github.com/Domenick1991/airseats/internal/domain"
	"github.com/Domenick1991/airseats/internal/service/seats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func snapshotReservation(t *testing.T, flight *domain.Flight, passengerID, seatCode string, status domain.ReservationStatus) *domain.Reservation {
	t.Helper()
	seat, ok := seats.Resolve(flight.Plane, seatCode)
	require.True(t, ok)
	return &domain.Reservation{
		Code:      ReservationCode(flight.Number, passengerID, seat.Code),
		Flight:    flight,
		Passenger: passenger(passengerID),
		Seat:      seat,
		CreatedAt: fixedNow,
		Status:    status,
	}
}

func TestBookingService_LoadSnapshot(t *testing.T) {
	flight := newFlight(t, "TK1", 5, 4, 0)
	service := NewBookingService(flightTable{"TK1": flight}, newCalculator(t))
	ctx := context.Background()

	active := snapshotReservation(t, flight, "P1", "1A", domain.ReservationStatusActive)
	gone := snapshotReservation(t, flight, "P2", "2B", domain.ReservationStatusCancelled)
	tickets := []*domain.Ticket{
		{ID: TicketID(active.Code), ReservationCode: active.Code, Price: 1000, BaggageAllowance: 15},
		{ID: TicketID(gone.Code), ReservationCode: gone.Code, Price: 1000, BaggageAllowance: 15},
	}

	err := service.LoadSnapshot([]*domain.Reservation{active, gone}, tickets)

	require.NoError(t, err)
	assert.True(t, active.Seat.IsReserved())
	assert.False(t, gone.Seat.IsReserved())
	assert.Len(t, service.Reservations(), 1)
	assert.Len(t, service.Tickets(), 1)
	assertLedgerInvariant(t, service, flight)

	ticket, err := service.FindTicketByCode(ctx, active.Code)
	require.NoError(t, err)
	assert.Equal(t, active.Code, ticket.Reservation.Code)

	// cancelled history survives the snapshot
	cancelled, err := service.Cancel(ctx, gone.Code)
	assert.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusCancelled, cancelled.Status)

	claim, err := service.Claim(ctx, BookInput{FlightNumber: "TK1", Passenger: passenger("P3"), SeatCode: "1A"})
	require.NoError(t, err)
	assert.Equal(t, ClaimAlreadyReserved, claim.Status)
}

func TestBookingService_LoadSnapshot_ReplacesWorkingSet(t *testing.T) {
	flight := newFlight(t, "TK1", 5, 4, 0)
	service := NewBookingService(flightTable{"TK1": flight}, newCalculator(t))
	ctx := context.Background()

	booked, err := service.Book(ctx, BookInput{FlightNumber: "TK1", Passenger: passenger("P1"), SeatCode: "3C"})
	require.NoError(t, err)

	replacement := snapshotReservation(t, flight, "P9", "4D", domain.ReservationStatusActive)
	require.NoError(t, service.LoadSnapshot([]*domain.Reservation{replacement}, nil))

	old, _ := seats.Resolve(flight.Plane, "3C")
	assert.False(t, old.IsReserved())
	assert.True(t, replacement.Seat.IsReserved())
	_, err = service.FindByCode(ctx, booked.ReservationCode)
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
	assertLedgerInvariant(t, service, flight)
}

func TestBookingService_LoadSnapshot_Rejects(t *testing.T) {
	flight := newFlight(t, "TK1", 5, 4, 0)
	ctx := context.Background()

	testCases := []struct {
		name         string
		reservations func() []*domain.Reservation
		expectedErr  error
	}{
		{
			name: "two holders of one seat",
			reservations: func() []*domain.Reservation {
				return []*domain.Reservation{
					snapshotReservation(t, flight, "P1", "1A", domain.ReservationStatusActive),
					snapshotReservation(t, flight, "P2", "1A", domain.ReservationStatusActive),
				}
			},
			expectedErr: domain.ErrInvalidSeatState,
		},
		{
			name: "duplicate code",
			reservations: func() []*domain.Reservation {
				return []*domain.Reservation{
					snapshotReservation(t, flight, "P1", "1A", domain.ReservationStatusActive),
					snapshotReservation(t, flight, "P1", "1A", domain.ReservationStatusActive),
				}
			},
			expectedErr: domain.ErrInvalidSeatState,
		},
		{
			name: "missing seat",
			reservations: func() []*domain.Reservation {
				r := snapshotReservation(t, flight, "P1", "1A", domain.ReservationStatusActive)
				r.Seat = nil
				return []*domain.Reservation{r}
			},
			expectedErr: domain.ErrValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service := NewBookingService(flightTable{"TK1": flight}, newCalculator(t))

			err := service.LoadSnapshot(tc.reservations(), nil)

			assert.ErrorIs(t, err, tc.expectedErr)
			assert.Empty(t, service.Reservations())
			assert.Zero(t, flight.Plane.Capacity()-seats.AvailableCount(flight.Plane))
			_, err = service.FindByCode(ctx, ReservationCode("TK1", "P1", "1A"))
			assert.ErrorIs(t, err, domain.ErrReservationNotFound)
		})
	}
}

func TestBookingService_Restore(t *testing.T) {
	flight := newFlight(t, "TK1", 5, 4, 0)
	service := NewBookingService(flightTable{"TK1": flight}, newCalculator(t))
	ctx := context.Background()

	records := []domain.ReservationRecord{
		{
			Code: "TK1-P1-1A", TicketID: "T-TK1-P1-1A", FlightNumber: "TK1",
			PassengerID: "P1", PassengerName: "Ada", PassengerSurname: "Lovelace",
			SeatCode: "1A", Price: 1050, BaggageAllowance: 15, BaggageWeight: 20,
			Active: true, CreatedAt: fixedNow,
		},
		{Code: "TK1-P2-2B", FlightNumber: "TK1", PassengerID: "P2", SeatCode: "2B", Active: false, CreatedAt: fixedNow},
		{Code: "XX9-P3-1A", FlightNumber: "XX9", PassengerID: "P3", SeatCode: "1A", Active: true},
		{Code: "TK1-P4-9Z", FlightNumber: "TK1", PassengerID: "P4", SeatCode: "9Z", Active: true},
	}

	require.NoError(t, service.Restore(ctx, records))

	reservations := service.Reservations()
	require.Len(t, reservations, 1)
	assert.Equal(t, "Ada Lovelace", reservations[0].Passenger.FullName())

	ticket, err := service.FindTicketByCode(ctx, "TK1-P1-1A")
	require.NoError(t, err)
	assert.Equal(t, 20.0, ticket.BaggageWeight())
	assert.Equal(t, 1050.0, ticket.Price)

	seat, _ := seats.Resolve(flight.Plane, "1A")
	assert.True(t, seat.IsReserved())

	_, err = service.Cancel(ctx, "TK1-P2-2B")
	assert.NoError(t, err, "cancelled history is restored")
	_, err = service.Cancel(ctx, "TK1-P4-9Z")
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestBookingService_PersistedRecordsRestore(t *testing.T) {
	flight := newFlight(t, "TK1", 5, 4, 0)
	persister := &MockPersister{}
	service := NewBookingService(flightTable{"TK1": flight}, newCalculator(t), WithPersister(persister))
	ctx := context.Background()

	var records []domain.ReservationRecord
	persister.On("SaveAll", ctx, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			records = domain.ToRecords(args.Get(1).([]domain.Reservation), args.Get(2).([]domain.Ticket))
		}).
		Return(nil)

	kept, err := service.Book(ctx, BookInput{FlightNumber: "TK1", Passenger: passenger("P1"), SeatCode: "1A"})
	require.NoError(t, err)
	dropped, err := service.Book(ctx, BookInput{FlightNumber: "TK1", Passenger: passenger("P2"), SeatCode: "1B"})
	require.NoError(t, err)
	_, err = service.Cancel(ctx, dropped.ReservationCode)
	require.NoError(t, err)
	require.Len(t, records, 2)

	fresh := newFlight(t, "TK1", 5, 4, 0)
	restored := NewBookingService(flightTable{"TK1": fresh}, newCalculator(t))
	require.NoError(t, restored.Restore(ctx, records))

	ticket, err := restored.FindTicketByCode(ctx, kept.ReservationCode)
	require.NoError(t, err)
	assert.Equal(t, kept.Price, ticket.Price)
	_, err = restored.Cancel(ctx, dropped.ReservationCode)
	assert.NoError(t, err)
	assertLedgerInvariant(t, restored, fresh)
}

func TestBookingService_LoadSnapshot_LeavesInputsUntouched(t *testing.T) {
	flight := newFlight(t, "TK1", 5, 4, 0)
	service := NewBookingService(flightTable{"TK1": flight}, newCalculator(t))
	ctx := context.Background()

	active := snapshotReservation(t, flight, "P1", "1A", domain.ReservationStatusActive)
	byCode := &domain.Ticket{ID: TicketID(active.Code), ReservationCode: active.Code, Price: 1000, Baggage: &domain.Baggage{WeightKg: 5}}
	byReservation := &domain.Ticket{ID: "T-other", Reservation: active, Price: 1000}

	require.NoError(t, service.LoadSnapshot([]*domain.Reservation{active}, []*domain.Ticket{byCode, byReservation}))

	assert.Nil(t, byCode.Reservation)
	assert.Empty(t, byReservation.ReservationCode)

	ticket, err := service.FindTicketByCode(ctx, active.Code)
	require.NoError(t, err)
	assert.Equal(t, active.Code, ticket.ReservationCode)
	require.NotNil(t, ticket.Reservation)

	_, err = service.Cancel(ctx, active.Code)
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusActive, active.Status)
	assert.Equal(t, 5.0, byCode.BaggageWeight())
}
