package reservations_service_api

import (
	"context"
	"time"

	"github.com/Domenick1991/airseats/internal/api/rpc"
	"github.com/Domenick1991/airseats/internal/domain"
	"github.com/Domenick1991/airseats/internal/service/booking"
)

// Server implements the gRPC interface for reservations.
type Server struct {
	bookings booking.BookingUseCase
}

func NewServer(bookings booking.BookingUseCase) *Server {
	return &Server{bookings: bookings}
}

func (s *Server) Book(ctx context.Context, req *BookRequest) (*Ticket, error) {
	input := booking.BookInput{
		FlightNumber: req.FlightNumber,
		SeatCode:     req.SeatCode,
		Passenger: domain.Passenger{
			ID:       req.Passenger.Id,
			Name:     req.Passenger.Name,
			Surname:  req.Passenger.Surname,
			Contact:  req.Passenger.Contact,
			Passport: req.Passenger.Passport,
		},
	}
	if req.BaggageKg != nil {
		input.Baggage = &domain.Baggage{WeightKg: *req.BaggageKg}
	}

	ticket, err := s.bookings.Book(ctx, input)
	if err != nil {
		return nil, rpc.Error(err)
	}
	return toPBTicket(ticket), nil
}

func (s *Server) CancelReservation(ctx context.Context, req *CodeRequest) (*Reservation, error) {
	reservation, err := s.bookings.Cancel(ctx, req.Code)
	if err != nil {
		return nil, rpc.Error(err)
	}
	return toPBReservation(reservation), nil
}

func (s *Server) GetReservation(ctx context.Context, req *CodeRequest) (*Reservation, error) {
	reservation, err := s.bookings.FindByCode(ctx, req.Code)
	if err != nil {
		return nil, rpc.Error(err)
	}
	return toPBReservation(reservation), nil
}

func (s *Server) GetTicket(ctx context.Context, req *CodeRequest) (*Ticket, error) {
	ticket, err := s.bookings.FindTicketByCode(ctx, req.Code)
	if err != nil {
		return nil, rpc.Error(err)
	}
	return toPBTicket(ticket), nil
}

func toPBReservation(r *domain.Reservation) *Reservation {
	if r == nil {
		return nil
	}

	out := &Reservation{
		Code:          r.Code,
		Status:        string(r.Status),
		PassengerId:   r.Passenger.ID,
		PassengerName: r.Passenger.FullName(),
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
	}
	if r.Flight != nil {
		out.FlightNumber = r.Flight.Number
	}
	if r.Seat != nil {
		out.SeatCode = r.Seat.Code
		out.SeatClass = string(r.Seat.Class)
	}
	return out
}

func toPBTicket(t *domain.Ticket) *Ticket {
	if t == nil {
		return nil
	}

	out := &Ticket{
		TicketId:           t.ID,
		Price:              t.Price,
		BaggageAllowanceKg: t.BaggageAllowance,
		BaggageKg:          t.BaggageWeight(),
		Reservation:        toPBReservation(t.Reservation),
	}
	if out.Reservation == nil {
		out.Reservation = &Reservation{Code: t.ReservationCode}
	}
	return out
}

var _ ReservationsServiceServer = (*Server)(nil)
