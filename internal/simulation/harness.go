// Package simulation drives concurrent passengers against a single plane to
// check that seat claims stay exclusive, and to show what happens when they
// are not guarded.
package simulation

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Domenick1991/airseats/internal/domain"
	"github.com/Domenick1991/airseats/internal/pricing"
	"github.com/Domenick1991/airseats/internal/service/booking"
	"github.com/Domenick1991/airseats/internal/service/seats"
)

type Config struct {
	Rows               int
	Columns            int
	BusinessRows       int
	Passengers         int
	RaceWindow         time.Duration
	BaseFare           float64
	BusinessMultiplier float64
	FlightNumber       string
}

func (c Config) withDefaults() Config {
	if c.BaseFare == 0 {
		c.BaseFare = 100
	}
	if c.BusinessMultiplier == 0 {
		c.BusinessMultiplier = 1.5
	}
	if c.FlightNumber == "" {
		c.FlightNumber = "SIM001"
	}
	return c
}

func (c Config) validate() error {
	if c.Rows <= 0 || c.Columns <= 0 {
		return fmt.Errorf("%w: rows and columns must be positive", domain.ErrValidation)
	}
	if c.Passengers < 0 {
		return fmt.Errorf("%w: passengers cannot be negative", domain.ErrValidation)
	}
	if c.RaceWindow < 0 {
		return fmt.Errorf("%w: race window cannot be negative", domain.ErrValidation)
	}
	return nil
}

type Result struct {
	Policy     Policy
	Passengers int
	Seats      int
	Reserved   int
	Free       int
	// Occupied is the occupancy bitmap, indexed row*columns+column.
	Occupied []bool
	// Claims counts actors that believe they won a seat.
	Claims int
	// OverClaims counts actors that believed they won a seat somebody else
	// had already marked.
	OverClaims         int
	StateErrors        int
	Errors             int
	ActiveReservations int
	Attempts           int64
	Elapsed            time.Duration
}

// Exclusive reports whether every claim maps to exactly one reserved seat.
func (r *Result) Exclusive() bool {
	return r.OverClaims == 0 && r.StateErrors == 0 && r.Claims == r.Reserved
}

type counters struct {
	attempts    atomic.Int64
	claims      atomic.Int64
	overClaims  atomic.Int64
	stateErrors atomic.Int64
	errors      atomic.Int64
}

func (c *counters) fail(err error) {
	c.errors.Add(1)
	if errors.Is(err, domain.ErrInvalidSeatState) {
		c.stateErrors.Add(1)
	}
}

// Run starts one goroutine per passenger against a fresh plane. Each actor
// picks a random seat among those that look free, tries to claim it and
// retries with another random seat until it wins or no seat looks free.
func Run(ctx context.Context, cfg Config, policy Policy) (*Result, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	plane, err := domain.NewPlane("SIM-"+cfg.FlightNumber, "simulator", cfg.Rows, cfg.Columns)
	if err != nil {
		return nil, err
	}
	if err := seats.Populate(plane, cfg.BusinessRows, cfg.BaseFare, cfg.BusinessMultiplier); err != nil {
		return nil, err
	}
	flight := &domain.Flight{
		Number:           cfg.FlightNumber,
		From:             "SIM",
		To:               "SIM",
		EconomyBasePrice: cfg.BaseFare,
		Plane:            plane,
	}

	quoter, err := pricing.NewCalculator(cfg.BusinessMultiplier, 0)
	if err != nil {
		return nil, err
	}
	service := booking.NewBookingService(singleFlight{flight: flight}, quoter)

	var act func(ctx context.Context, id int, c *counters)
	switch policy {
	case PolicyGuarded:
		act = guardedActor(service, flight)
	case PolicyUnguarded:
		act = unguardedActor(plane, cfg.RaceWindow)
	default:
		return nil, fmt.Errorf("%w: unknown policy %v", domain.ErrValidation, policy)
	}

	var (
		c     counters
		wg    sync.WaitGroup
		start = make(chan struct{})
	)
	for id := 0; id < cfg.Passengers; id++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			<-start
			act(ctx, id, &c)
		}(id)
	}

	began := time.Now()
	close(start)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	occupied := seats.Occupancy(plane)
	reserved := 0
	for _, taken := range occupied {
		if taken {
			reserved++
		}
	}

	return &Result{
		Policy:             policy,
		Passengers:         cfg.Passengers,
		Seats:              plane.Capacity(),
		Reserved:           reserved,
		Free:               plane.Capacity() - reserved,
		Occupied:           occupied,
		Claims:             int(c.claims.Load()),
		OverClaims:         int(c.overClaims.Load()),
		StateErrors:        int(c.stateErrors.Load()),
		Errors:             int(c.errors.Load()),
		ActiveReservations: len(service.Reservations()),
		Attempts:           c.attempts.Load(),
		Elapsed:            time.Since(began),
	}, nil
}

func guardedActor(service *booking.BookingService, flight *domain.Flight) func(context.Context, int, *counters) {
	return func(ctx context.Context, id int, c *counters) {
		passenger := domain.Passenger{ID: fmt.Sprintf("P%04d", id), Name: "Passenger", Surname: fmt.Sprintf("%d", id)}
		for ctx.Err() == nil {
			seat, ok := pickFree(flight.Plane)
			if !ok {
				return
			}

			c.attempts.Add(1)
			claim, err := service.Claim(ctx, booking.BookInput{
				FlightNumber: flight.Number,
				Passenger:    passenger,
				SeatCode:     seat.Code,
			})
			if err != nil {
				c.fail(err)
				return
			}
			if claim.Status == booking.ClaimClaimed {
				c.claims.Add(1)
				return
			}
		}
	}
}

func unguardedActor(plane *domain.Plane, raceWindow time.Duration) func(context.Context, int, *counters) {
	return func(ctx context.Context, _ int, c *counters) {
		for ctx.Err() == nil {
			seat, ok := pickFree(plane)
			if !ok {
				return
			}

			c.attempts.Add(1)
			if seat.IsReserved() {
				continue
			}
			if !sleep(ctx, raceWindow) {
				return
			}

			c.claims.Add(1)
			if err := seat.MarkReserved(); err != nil {
				c.overClaims.Add(1)
				c.fail(err)
			}
			return
		}
	}
}

func pickFree(plane *domain.Plane) (*domain.Seat, bool) {
	free := seats.Available(plane)
	if len(free) == 0 {
		return nil, false
	}
	return free[rand.Intn(len(free))], true
}

func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

type singleFlight struct {
	flight *domain.Flight
}

func (s singleFlight) Resolve(_ context.Context, number string) (*domain.Flight, error) {
	if number != s.flight.Number {
		return nil, fmt.Errorf("%w: %s", domain.ErrFlightNotFound, number)
	}
	return s.flight, nil
}
