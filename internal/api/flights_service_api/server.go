package flights_service_api

import (
	"context"
	"fmt"
	"time"

	"github.com/Domenick1991/airseats/internal/api/rpc"
	"github.com/Domenick1991/airseats/internal/domain"
	"github.com/Domenick1991/airseats/internal/service/flights"
)

// Server implements the gRPC interface for flights.
type Server struct {
	flights flights.FlightUseCase
}

func NewServer(flights flights.FlightUseCase) *Server {
	return &Server{flights: flights}
}

func (s *Server) ListFlights(ctx context.Context, _ *Empty) (*ListFlightsResponse, error) {
	list, err := s.flights.List(ctx)
	if err != nil {
		return nil, rpc.Error(err)
	}
	return toPBFlights(list), nil
}

func (s *Server) SearchFlights(ctx context.Context, req *SearchFlightsRequest) (*ListFlightsResponse, error) {
	var now time.Time
	if req.Now != "" {
		parsed, err := time.Parse(time.RFC3339, req.Now)
		if err != nil {
			return nil, rpc.Error(fmt.Errorf("%w: invalid now %q", domain.ErrValidation, req.Now))
		}
		now = parsed
	}

	list, err := s.flights.Search(ctx, req.From, req.To, now)
	if err != nil {
		return nil, rpc.Error(err)
	}
	return toPBFlights(list), nil
}

func (s *Server) GetFlight(ctx context.Context, req *GetFlightRequest) (*GetFlightResponse, error) {
	flight, err := s.flights.GetByNumber(ctx, req.Number)
	if err != nil {
		return nil, rpc.Error(err)
	}
	return &GetFlightResponse{Flight: toPBFlight(flight)}, nil
}

func (s *Server) GetSeatMap(ctx context.Context, req *GetFlightRequest) (*SeatMapResponse, error) {
	seatMap, err := s.flights.SeatMap(ctx, req.Number)
	if err != nil {
		return nil, rpc.Error(err)
	}
	resp := &SeatMapResponse{Number: req.Number, Seats: make([]*Seat, 0, len(seatMap))}
	for _, v := range seatMap {
		resp.Seats = append(resp.Seats, &Seat{
			Code:     v.Code,
			Row:      int32(v.Row),
			Column:   int32(v.Column),
			Class:    string(v.Class),
			Price:    v.Price,
			Reserved: v.Reserved,
		})
	}
	return resp, nil
}

func toPBFlights(list []domain.FlightSummary) *ListFlightsResponse {
	resp := &ListFlightsResponse{
		Flights: make([]*Flight, 0, len(list)),
	}
	for _, f := range list {
		resp.Flights = append(resp.Flights, toPBFlight(&f))
	}
	return resp
}

func toPBFlight(f *domain.FlightSummary) *Flight {
	if f == nil {
		return nil
	}
	return &Flight{
		Number:           f.Number,
		From:             f.From,
		To:               f.To,
		DepartureTime:    f.DepartureTime.Format(time.RFC3339),
		ArrivalTime:      f.DepartureTime.Add(time.Duration(f.DurationMinutes) * time.Minute).Format(time.RFC3339),
		PlaneModel:       f.PlaneModel,
		Capacity:         int32(f.Capacity),
		AvailableSeats:   int32(f.AvailableSeats),
		EconomyBasePrice: f.EconomyBasePrice,
	}
}

var _ FlightsServiceServer = (*Server)(nil)
