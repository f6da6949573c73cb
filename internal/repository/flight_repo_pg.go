package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/airseats/internal/domain"
	"github.com/jackc/pgx/v5"
)

// DB is the part of *pgxpool.Pool the repositories use.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type FlightRepository interface {
	List(ctx context.Context) ([]domain.FlightRecord, error)
	GetByNumber(ctx context.Context, number string) (*domain.FlightRecord, error)
}

type PGFlightRepository struct {
	db DB
}

func NewFlightRepository(db DB) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightSelect = `SELECT f.number, f.from_airport, f.to_airport, f.departure_time, f.duration_minutes, f.economy_base_price,
	p.id, p.model, p.rows, p.columns, p.business_rows
	FROM flights f JOIN planes p ON p.id = f.plane_id`

func (r *PGFlightRepository) List(ctx context.Context) ([]domain.FlightRecord, error) {
	rows, err := r.db.Query(ctx, flightSelect+` ORDER BY f.departure_time, f.number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.FlightRecord, 0)
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, *f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) GetByNumber(ctx context.Context, number string) (*domain.FlightRecord, error) {
	f, err := scanFlight(r.db.QueryRow(ctx, flightSelect+` WHERE f.number=$1`, number))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrFlightNotFound, number)
	}
	return f, err
}

func scanFlight(row pgx.Row) (*domain.FlightRecord, error) {
	var f domain.FlightRecord
	if err := row.Scan(&f.Number, &f.From, &f.To, &f.DepartureTime, &f.DurationMinutes, &f.EconomyBasePrice,
		&f.PlaneID, &f.PlaneModel, &f.Rows, &f.Columns, &f.BusinessRows); err != nil {
		return nil, err
	}
	return &f, nil
}

var _ FlightRepository = (*PGFlightRepository)(nil)
