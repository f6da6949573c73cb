package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Domenick1991/airseats/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func sampleReservations(t *testing.T) ([]domain.Reservation, []domain.Ticket) {
	t.Helper()
	flight := &domain.Flight{Number: "TK1821"}
	seat, err := domain.NewSeat(0, 1, "1B", domain.SeatClassEconomy, 1000)
	require.NoError(t, err)
	other, err := domain.NewSeat(1, 0, "2A", domain.SeatClassEconomy, 1000)
	require.NoError(t, err)

	active := domain.Reservation{
		Code: "TK1821-P1-1B", Flight: flight, Seat: seat, CreatedAt: createdAt,
		Passenger: domain.Passenger{ID: "P1", Name: "Ada", Surname: "Lovelace"},
		Status:    domain.ReservationStatusActive,
	}
	cancelled := domain.Reservation{
		Code: "TK1821-P2-2A", Flight: flight, Seat: other, CreatedAt: createdAt.Add(time.Minute),
		Passenger: domain.Passenger{ID: "P2", Name: "Alan", Surname: "Turing"},
		Status:    domain.ReservationStatusCancelled,
	}
	ticket := domain.Ticket{ID: "T-TK1821-P1-1B", ReservationCode: active.Code, Price: 1050, BaggageAllowance: 15}
	return []domain.Reservation{active, cancelled}, []domain.Ticket{ticket}
}

func TestPGReservationRepository_SaveAll(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReservationRepository(mock)
	reservations, tickets := sampleReservations(t)

	mock.ExpectBeginTx(pgx.TxOptions{})
	mock.ExpectExec("DELETE FROM reservations").WillReturnResult(pgxmock.NewResult("DELETE", 3))
	mock.ExpectCopyFrom(pgx.Identifier{"reservations"}, reservationColumns).WillReturnResult(2)
	mock.ExpectCommit()

	err = repo.SaveAll(context.Background(), reservations, tickets)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGReservationRepository_SaveAll_Errors(t *testing.T) {
	reservations, tickets := sampleReservations(t)

	t.Run("begin fails", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBeginTx(pgx.TxOptions{}).WillReturnError(errors.New("connection refused"))

		err = NewReservationRepository(mock).SaveAll(context.Background(), reservations, tickets)

		assert.ErrorContains(t, err, "connection refused")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("delete fails and rolls back", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBeginTx(pgx.TxOptions{})
		mock.ExpectExec("DELETE FROM reservations").WillReturnError(errors.New("lock timeout"))
		mock.ExpectRollback()

		err = NewReservationRepository(mock).SaveAll(context.Background(), reservations, tickets)

		assert.ErrorContains(t, err, "clear reservations")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("copy fails and rolls back", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBeginTx(pgx.TxOptions{})
		mock.ExpectExec("DELETE FROM reservations").WillReturnResult(pgxmock.NewResult("DELETE", 0))
		mock.ExpectCopyFrom(pgx.Identifier{"reservations"}, reservationColumns).WillReturnError(errors.New("duplicate key"))
		mock.ExpectRollback()

		err = NewReservationRepository(mock).SaveAll(context.Background(), reservations, tickets)

		assert.ErrorContains(t, err, "copy reservations")
		assert.ErrorContains(t, err, "duplicate key")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPGReservationRepository_LoadAll(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rows := pgxmock.NewRows(reservationColumns).
		AddRow("TK1821-P1-1B", "T-TK1821-P1-1B", "TK1821", "P1", "Ada", "Lovelace",
			"ada@example.com", "", "1B", 1050.0, 15.0, 20.0, true, createdAt).
		AddRow("TK1821-P2-2A", "", "TK1821", "P2", "Alan", "Turing",
			"", "", "2A", 0.0, 0.0, 0.0, false, createdAt.Add(time.Minute))
	mock.ExpectQuery("SELECT code, ticket_id, flight_number").WillReturnRows(rows)

	records, err := NewReservationRepository(mock).LoadAll(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "T-TK1821-P1-1B", records[0].TicketID)
	assert.Equal(t, 20.0, records[0].BaggageWeight)
	assert.True(t, records[0].Active)
	assert.Equal(t, createdAt, records[0].CreatedAt)
	assert.False(t, records[1].Active)
	assert.Empty(t, records[1].TicketID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGReservationRepository_LoadAll_QueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT code").WillReturnError(errors.New("relation does not exist"))

	records, err := NewReservationRepository(mock).LoadAll(context.Background())

	assert.Nil(t, records)
	assert.ErrorContains(t, err, "relation does not exist")
	assert.NoError(t, mock.ExpectationsWereMet())
}
