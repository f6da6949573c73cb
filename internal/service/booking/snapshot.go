package booking

import (
	"context"
	"fmt"
	"log"

	"github.com/Domenick1991/airseats/internal/domain"
	"github.com/Domenick1991/airseats/internal/service/seats"
)

// LoadSnapshot replaces the working set with the active reservations and their
// tickets, re-marking each active reservation's seat. Cancelled reservations go
// to the cancelled history. The inputs are copied, never modified. It must run
// before concurrent access begins.
func (s *BookingService) LoadSnapshot(reservations []*domain.Reservation, tickets []*domain.Ticket) error {
	active := make(map[string]*domain.Reservation)
	cancelled := make(map[string]*domain.Reservation)
	holders := make(map[*domain.Seat]string)

	for _, r := range reservations {
		if r == nil {
			continue
		}
		if !r.IsActive() {
			cancelled[r.Code] = copyReservation(r)
			continue
		}
		if r.Seat == nil || r.Flight == nil {
			return fmt.Errorf("%w: reservation %s has no flight or seat", domain.ErrValidation, r.Code)
		}
		if _, dup := active[r.Code]; dup {
			return fmt.Errorf("%w: duplicate active reservation %s", domain.ErrInvalidSeatState, r.Code)
		}
		if other, taken := holders[r.Seat]; taken {
			return fmt.Errorf("%w: seat %s held by %s and %s", domain.ErrInvalidSeatState, r.Seat.Code, other, r.Code)
		}
		holders[r.Seat] = r.Code
		active[r.Code] = copyReservation(r)
	}

	activeTickets := make(map[string]*domain.Ticket)
	for _, t := range tickets {
		if t == nil {
			continue
		}
		code := t.ReservationCode
		if code == "" && t.Reservation != nil {
			code = t.Reservation.Code
		}
		r, ok := active[code]
		if !ok {
			continue
		}
		ticket := *t
		ticket.ReservationCode = code
		ticket.Reservation = r
		ticket.Baggage = copyBaggage(t.Baggage)
		activeTickets[code] = &ticket
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.active {
		if _, kept := holders[r.Seat]; !kept && r.Seat.IsReserved() {
			if err := r.Seat.MarkUnreserved(); err != nil {
				return fmt.Errorf("release seat %s of %s: %w", r.Seat.Code, r.Code, err)
			}
		}
	}
	for seat := range holders {
		if !seat.IsReserved() {
			if err := seat.MarkReserved(); err != nil {
				return err
			}
		}
	}

	s.active = active
	s.tickets = activeTickets
	s.cancelled = cancelled
	return nil
}

// Restore rebuilds reservations and tickets from durable records and loads them.
// Records whose flight or seat can no longer be resolved are skipped.
func (s *BookingService) Restore(ctx context.Context, records []domain.ReservationRecord) error {
	reservations := make([]*domain.Reservation, 0, len(records))
	tickets := make([]*domain.Ticket, 0, len(records))
	activeCount := 0

	for _, rec := range records {
		flight, err := s.flights.Resolve(ctx, rec.FlightNumber)
		if err != nil || flight == nil || flight.Plane == nil {
			log.Printf("skip reservation %s: flight %s not found", rec.Code, rec.FlightNumber)
			continue
		}
		seat, ok := seats.Resolve(flight.Plane, rec.SeatCode)
		if !ok {
			log.Printf("skip reservation %s: seat %s not found on flight %s", rec.Code, rec.SeatCode, rec.FlightNumber)
			continue
		}

		status := domain.ReservationStatusCancelled
		if rec.Active {
			status = domain.ReservationStatusActive
		}
		reservation := &domain.Reservation{
			Code:   rec.Code,
			Flight: flight,
			Passenger: domain.Passenger{
				ID:       rec.PassengerID,
				Name:     rec.PassengerName,
				Surname:  rec.PassengerSurname,
				Contact:  rec.Contact,
				Passport: rec.Passport,
			},
			Seat:      seat,
			CreatedAt: rec.CreatedAt,
			Status:    status,
		}
		reservations = append(reservations, reservation)
		if rec.Active {
			activeCount++
		}

		if !rec.Active || rec.TicketID == "" {
			continue
		}
		var baggage *domain.Baggage
		if rec.BaggageWeight > 0 {
			baggage = &domain.Baggage{WeightKg: rec.BaggageWeight}
		}
		tickets = append(tickets, &domain.Ticket{
			ID:               rec.TicketID,
			ReservationCode:  rec.Code,
			Reservation:      reservation,
			Price:            rec.Price,
			BaggageAllowance: rec.BaggageAllowance,
			Baggage:          baggage,
		})
	}

	if err := s.LoadSnapshot(reservations, tickets); err != nil {
		return fmt.Errorf("load reservation snapshot: %w", err)
	}
	log.Printf("restored %d reservations (%d active)", len(reservations), activeCount)
	return nil
}
