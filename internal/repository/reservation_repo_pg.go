package repository

import (
	"context"
	"fmt"

	"github.com/Domenick1991/airseats/internal/domain"
	"github.com/jackc/pgx/v5"
)

type ReservationRepository interface {
	SaveAll(ctx context.Context, reservations []domain.Reservation, tickets []domain.Ticket) error
	LoadAll(ctx context.Context) ([]domain.ReservationRecord, error)
}

var reservationColumns = []string{
	"code", "ticket_id", "flight_number", "passenger_id", "passenger_name", "passenger_surname",
	"contact", "passport", "seat_code", "price", "baggage_allowance", "baggage_weight", "active", "created_at",
}

type PGReservationRepository struct {
	db DB
}

func NewReservationRepository(db DB) ReservationRepository {
	return &PGReservationRepository{db: db}
}

// SaveAll replaces the stored reservations with the given set in one transaction.
func (r *PGReservationRepository) SaveAll(ctx context.Context, reservations []domain.Reservation, tickets []domain.Ticket) error {
	records := domain.ToRecords(reservations, tickets)

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM reservations`); err != nil {
		return fmt.Errorf("clear reservations: %w", err)
	}

	rows := make([][]any, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []any{
			rec.Code, rec.TicketID, rec.FlightNumber, rec.PassengerID, rec.PassengerName, rec.PassengerSurname,
			rec.Contact, rec.Passport, rec.SeatCode, rec.Price, rec.BaggageAllowance, rec.BaggageWeight, rec.Active, rec.CreatedAt,
		})
	}
	if _, err := tx.CopyFrom(ctx, pgx.Identifier{"reservations"}, reservationColumns, pgx.CopyFromRows(rows)); err != nil {
		return fmt.Errorf("copy reservations: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *PGReservationRepository) LoadAll(ctx context.Context) ([]domain.ReservationRecord, error) {
	rows, err := r.db.Query(ctx, `SELECT code, ticket_id, flight_number, passenger_id, passenger_name, passenger_surname,
		contact, passport, seat_code, price, baggage_allowance, baggage_weight, active, created_at
		FROM reservations ORDER BY created_at, code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]domain.ReservationRecord, 0)
	for rows.Next() {
		var rec domain.ReservationRecord
		if err := rows.Scan(&rec.Code, &rec.TicketID, &rec.FlightNumber, &rec.PassengerID, &rec.PassengerName, &rec.PassengerSurname,
			&rec.Contact, &rec.Passport, &rec.SeatCode, &rec.Price, &rec.BaggageAllowance, &rec.BaggageWeight, &rec.Active, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

var _ ReservationRepository = (*PGReservationRepository)(nil)
